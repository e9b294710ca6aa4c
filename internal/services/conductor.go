package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/orchestrahub/orchestra-backend/internal/domain"
	"github.com/orchestrahub/orchestra-backend/internal/dto"
	"github.com/orchestrahub/orchestra-backend/internal/logger"
	"github.com/orchestrahub/orchestra-backend/internal/mapper"
	"github.com/orchestrahub/orchestra-backend/internal/repos"
	"github.com/orchestrahub/orchestra-backend/internal/types"
)

type ConductorService interface {
	GetAll(ctx context.Context) ([]dto.ConductorDto, error)
	GetByID(ctx context.Context, id uint) (dto.ConductorDto, error)
	Add(ctx context.Context, in *dto.CreateConductorDto) (dto.ConductorDto, error)
	Update(ctx context.Context, id uint, in *dto.UpdateConductorDto) error
	Delete(ctx context.Context, id uint) error
}

type conductorService struct {
	db            *gorm.DB
	log           *logger.Logger
	conductorRepo repos.ConductorRepo
	userRepo      repos.UserRepo
	orchestraRepo repos.OrchestraRepo
}

func NewConductorService(
	db *gorm.DB,
	log *logger.Logger,
	conductorRepo repos.ConductorRepo,
	userRepo repos.UserRepo,
	orchestraRepo repos.OrchestraRepo,
) ConductorService {
	return &conductorService{
		db:            db,
		log:           log.With("service", "ConductorService"),
		conductorRepo: conductorRepo,
		userRepo:      userRepo,
		orchestraRepo: orchestraRepo,
	}
}

func (s *conductorService) GetAll(ctx context.Context) ([]dto.ConductorDto, error) {
	conductors, err := s.conductorRepo.GetAll(ctx, nil)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ConductorDto, 0, len(conductors))
	for _, c := range conductors {
		out = append(out, mapper.ConductorToDto(c))
	}
	return out, nil
}

func (s *conductorService) GetByID(ctx context.Context, id uint) (dto.ConductorDto, error) {
	conductor, err := s.conductorRepo.GetByID(ctx, nil, id)
	if err != nil {
		return dto.ConductorDto{}, err
	}
	return mapper.ConductorToDto(conductor), nil
}

// Add resolves the backing user before writing; a conductor profile for a
// missing or non-conductor account is rejected up front.
func (s *conductorService) Add(ctx context.Context, in *dto.CreateConductorDto) (dto.ConductorDto, error) {
	if err := in.Validate(); err != nil {
		return dto.ConductorDto{}, err
	}
	user, err := s.userRepo.GetByID(ctx, nil, in.UserID)
	if err != nil {
		return dto.ConductorDto{}, fmt.Errorf("user %d: %w", in.UserID, err)
	}
	if user.Role != types.RoleConductor {
		return dto.ConductorDto{}, fmt.Errorf("user %d is not a conductor account: %w", in.UserID, domain.ErrConflict)
	}
	created, err := s.conductorRepo.Create(ctx, nil, &types.Conductor{UserID: in.UserID, Name: in.Name})
	if err != nil {
		return dto.ConductorDto{}, err
	}
	if created.ID == 0 {
		return dto.ConductorDto{}, fmt.Errorf("conductor insert returned no id: %w", domain.ErrStorage)
	}
	stored, err := s.conductorRepo.GetByID(ctx, nil, created.ID)
	if err != nil {
		return dto.ConductorDto{}, err
	}
	return mapper.ConductorToDto(stored), nil
}

func (s *conductorService) Update(ctx context.Context, id uint, in *dto.UpdateConductorDto) error {
	if err := in.Validate(); err != nil {
		return err
	}
	conductor, err := s.conductorRepo.GetByID(ctx, nil, id)
	if err != nil {
		return err
	}
	conductor.Name = in.Name
	return s.conductorRepo.Update(ctx, nil, conductor)
}

func (s *conductorService) Delete(ctx context.Context, id uint) error {
	leading, err := s.orchestraRepo.CountByConductor(ctx, nil, id)
	if err != nil {
		return err
	}
	if leading > 0 {
		return fmt.Errorf("conductor still leads an orchestra: %w", domain.ErrConflict)
	}
	return s.conductorRepo.Delete(ctx, nil, id)
}
