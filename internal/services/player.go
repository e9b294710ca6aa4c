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

type PlayerService interface {
	GetAll(ctx context.Context) ([]dto.PlayerDto, error)
	GetByID(ctx context.Context, id uint) (dto.PlayerDto, error)
	Add(ctx context.Context, in *dto.CreatePlayerDto) (dto.PlayerDto, error)
	Update(ctx context.Context, id uint, in *dto.UpdatePlayerDto) error
	Delete(ctx context.Context, id uint) error
	// LeaderboardBySection lists the section's players by descending score.
	LeaderboardBySection(ctx context.Context, sectionID uint) ([]dto.PlayerDto, error)
}

type playerService struct {
	db             *gorm.DB
	log            *logger.Logger
	playerRepo     repos.PlayerRepo
	userRepo       repos.UserRepo
	sectionRepo    repos.SectionRepo
	concertRepo    repos.ConcertRepo
	enrollmentRepo repos.EnrollmentRepo
}

func NewPlayerService(
	db *gorm.DB,
	log *logger.Logger,
	playerRepo repos.PlayerRepo,
	userRepo repos.UserRepo,
	sectionRepo repos.SectionRepo,
	concertRepo repos.ConcertRepo,
	enrollmentRepo repos.EnrollmentRepo,
) PlayerService {
	return &playerService{
		db:             db,
		log:            log.With("service", "PlayerService"),
		playerRepo:     playerRepo,
		userRepo:       userRepo,
		sectionRepo:    sectionRepo,
		concertRepo:    concertRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

func (s *playerService) GetAll(ctx context.Context) ([]dto.PlayerDto, error) {
	players, err := s.playerRepo.GetAll(ctx, nil)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PlayerDto, 0, len(players))
	for _, p := range players {
		out = append(out, mapper.PlayerToDto(p))
	}
	return out, nil
}

func (s *playerService) GetByID(ctx context.Context, id uint) (dto.PlayerDto, error) {
	player, err := s.playerRepo.GetByID(ctx, nil, id)
	if err != nil {
		return dto.PlayerDto{}, err
	}
	return mapper.PlayerToDto(player), nil
}

func (s *playerService) Add(ctx context.Context, in *dto.CreatePlayerDto) (dto.PlayerDto, error) {
	if err := in.Validate(); err != nil {
		return dto.PlayerDto{}, err
	}
	user, err := s.userRepo.GetByID(ctx, nil, in.UserID)
	if err != nil {
		return dto.PlayerDto{}, fmt.Errorf("user %d: %w", in.UserID, err)
	}
	if user.Role != types.RolePlayer {
		return dto.PlayerDto{}, fmt.Errorf("user %d is not a player account: %w", in.UserID, domain.ErrConflict)
	}
	created, err := s.playerRepo.Create(ctx, nil, &types.Player{
		UserID: in.UserID,
		Name:   in.Name,
		Score:  *in.Score,
	})
	if err != nil {
		return dto.PlayerDto{}, err
	}
	if created.ID == 0 {
		return dto.PlayerDto{}, fmt.Errorf("player insert returned no id: %w", domain.ErrStorage)
	}
	stored, err := s.playerRepo.GetByID(ctx, nil, created.ID)
	if err != nil {
		return dto.PlayerDto{}, err
	}
	return mapper.PlayerToDto(stored), nil
}

// Update overlays the mutable fields only; section/orchestra/instrument
// assignment is owned by the enrollment workflow and never written here.
func (s *playerService) Update(ctx context.Context, id uint, in *dto.UpdatePlayerDto) error {
	if err := in.Validate(); err != nil {
		return err
	}
	player, err := s.playerRepo.GetByID(ctx, nil, id)
	if err != nil {
		return err
	}
	if in.ConcertID != nil {
		if _, err := s.concertRepo.GetByID(ctx, nil, *in.ConcertID); err != nil {
			return fmt.Errorf("concert %d: %w", *in.ConcertID, err)
		}
	}
	player.Name = in.Name
	player.Score = *in.Score
	player.ConcertID = in.ConcertID
	return s.playerRepo.Update(ctx, nil, player)
}

func (s *playerService) Delete(ctx context.Context, id uint) error {
	if _, err := s.playerRepo.GetByID(ctx, nil, id); err != nil {
		return err
	}
	requests, err := s.enrollmentRepo.CountByPlayer(ctx, nil, id)
	if err != nil {
		return err
	}
	if requests > 0 {
		return fmt.Errorf("player still has enrollment requests: %w", domain.ErrConflict)
	}
	return s.playerRepo.Delete(ctx, nil, id)
}

func (s *playerService) LeaderboardBySection(ctx context.Context, sectionID uint) ([]dto.PlayerDto, error) {
	if _, err := s.sectionRepo.GetByID(ctx, nil, sectionID); err != nil {
		return nil, fmt.Errorf("section %d: %w", sectionID, err)
	}
	players, err := s.playerRepo.LeaderboardBySection(ctx, nil, sectionID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PlayerDto, 0, len(players))
	for _, p := range players {
		out = append(out, mapper.PlayerToDto(p))
	}
	return out, nil
}
