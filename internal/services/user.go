package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/orchestrahub/orchestra-backend/internal/domain"
	"github.com/orchestrahub/orchestra-backend/internal/dto"
	"github.com/orchestrahub/orchestra-backend/internal/logger"
	"github.com/orchestrahub/orchestra-backend/internal/mapper"
	"github.com/orchestrahub/orchestra-backend/internal/repos"
	"github.com/orchestrahub/orchestra-backend/internal/types"
)

type UserService interface {
	GetAll(ctx context.Context) ([]dto.UserDto, error)
	GetByID(ctx context.Context, id uint) (dto.UserDto, error)
	GetByUsername(ctx context.Context, username string) (dto.UserDto, error)
	Update(ctx context.Context, id uint, in *dto.UpdateUserDto) error
	Delete(ctx context.Context, id uint) error
}

type userService struct {
	db             *gorm.DB
	log            *logger.Logger
	userRepo       repos.UserRepo
	conductorRepo  repos.ConductorRepo
	playerRepo     repos.PlayerRepo
	userTokenRepo  repos.UserTokenRepo
	orchestraRepo  repos.OrchestraRepo
	enrollmentRepo repos.EnrollmentRepo
}

func NewUserService(
	db *gorm.DB,
	log *logger.Logger,
	userRepo repos.UserRepo,
	conductorRepo repos.ConductorRepo,
	playerRepo repos.PlayerRepo,
	userTokenRepo repos.UserTokenRepo,
	orchestraRepo repos.OrchestraRepo,
	enrollmentRepo repos.EnrollmentRepo,
) UserService {
	return &userService{
		db:             db,
		log:            log.With("service", "UserService"),
		userRepo:       userRepo,
		conductorRepo:  conductorRepo,
		playerRepo:     playerRepo,
		userTokenRepo:  userTokenRepo,
		orchestraRepo:  orchestraRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

func (s *userService) GetAll(ctx context.Context) ([]dto.UserDto, error) {
	users, err := s.userRepo.GetAll(ctx, nil)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserDto, 0, len(users))
	for _, u := range users {
		out = append(out, mapper.UserToDto(u))
	}
	return out, nil
}

func (s *userService) GetByID(ctx context.Context, id uint) (dto.UserDto, error) {
	user, err := s.userRepo.GetByID(ctx, nil, id)
	if err != nil {
		return dto.UserDto{}, err
	}
	return mapper.UserToDto(user), nil
}

func (s *userService) GetByUsername(ctx context.Context, username string) (dto.UserDto, error) {
	user, err := s.userRepo.GetByUsername(ctx, nil, username)
	if err != nil {
		return dto.UserDto{}, err
	}
	return mapper.UserToDto(user), nil
}

func (s *userService) Update(ctx context.Context, id uint, in *dto.UpdateUserDto) error {
	if err := in.Validate(); err != nil {
		return err
	}
	user, err := s.userRepo.GetByID(ctx, nil, id)
	if err != nil {
		return err
	}
	user.Email = in.Email
	user.Image = in.Image
	return s.userRepo.Update(ctx, nil, user)
}

// Delete removes the account together with its own 1-1 profile and tokens,
// but refuses while the profile is still referenced from the ensemble side
// (a conductor leading an orchestra, a player with enrollment rows).
func (s *userService) Delete(ctx context.Context, id uint) error {
	user, err := s.userRepo.GetByID(ctx, nil, id)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		switch user.Role {
		case types.RoleConductor:
			if err := s.deleteConductorProfile(ctx, tx, user.ID); err != nil {
				return err
			}
		case types.RolePlayer:
			if err := s.deletePlayerProfile(ctx, tx, user.ID); err != nil {
				return err
			}
		}
		if err := s.userTokenRepo.DeleteByUserID(ctx, tx, user.ID); err != nil {
			return err
		}
		return s.userRepo.Delete(ctx, tx, user.ID)
	})
}

func (s *userService) deleteConductorProfile(ctx context.Context, tx *gorm.DB, userID uint) error {
	conductor, err := s.conductorRepo.GetByUserID(ctx, tx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	}
	leading, err := s.orchestraRepo.CountByConductor(ctx, tx, conductor.ID)
	if err != nil {
		return err
	}
	if leading > 0 {
		return fmt.Errorf("conductor still leads an orchestra: %w", domain.ErrConflict)
	}
	return s.conductorRepo.Delete(ctx, tx, conductor.ID)
}

func (s *userService) deletePlayerProfile(ctx context.Context, tx *gorm.DB, userID uint) error {
	player, err := s.playerRepo.GetByUserID(ctx, tx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	}
	requests, err := s.enrollmentRepo.CountByPlayer(ctx, tx, player.ID)
	if err != nil {
		return err
	}
	if requests > 0 {
		return fmt.Errorf("player still has enrollment requests: %w", domain.ErrConflict)
	}
	return s.playerRepo.Delete(ctx, tx, player.ID)
}
