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

type ConcertService interface {
	GetAll(ctx context.Context) ([]dto.ConcertDto, error)
	GetByID(ctx context.Context, id uint) (dto.ConcertDto, error)
	GetByName(ctx context.Context, name string) (dto.ConcertDto, error)
	ListByOrchestra(ctx context.Context, orchestraID uint) ([]dto.ConcertDto, error)
	Add(ctx context.Context, in *dto.CreateConcertDto) (dto.ConcertDto, error)
	Update(ctx context.Context, id uint, in *dto.UpdateConcertDto) error
	Delete(ctx context.Context, id uint) error
}

type concertService struct {
	db            *gorm.DB
	log           *logger.Logger
	concertRepo   repos.ConcertRepo
	orchestraRepo repos.OrchestraRepo
	playerRepo    repos.PlayerRepo
}

func NewConcertService(
	db *gorm.DB,
	log *logger.Logger,
	concertRepo repos.ConcertRepo,
	orchestraRepo repos.OrchestraRepo,
	playerRepo repos.PlayerRepo,
) ConcertService {
	return &concertService{
		db:            db,
		log:           log.With("service", "ConcertService"),
		concertRepo:   concertRepo,
		orchestraRepo: orchestraRepo,
		playerRepo:    playerRepo,
	}
}

func (s *concertService) GetAll(ctx context.Context) ([]dto.ConcertDto, error) {
	concerts, err := s.concertRepo.GetAll(ctx, nil)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ConcertDto, 0, len(concerts))
	for _, c := range concerts {
		out = append(out, mapper.ConcertToDto(c))
	}
	return out, nil
}

func (s *concertService) GetByID(ctx context.Context, id uint) (dto.ConcertDto, error) {
	concert, err := s.concertRepo.GetByID(ctx, nil, id)
	if err != nil {
		return dto.ConcertDto{}, err
	}
	return mapper.ConcertToDto(concert), nil
}

func (s *concertService) GetByName(ctx context.Context, name string) (dto.ConcertDto, error) {
	concert, err := s.concertRepo.GetByName(ctx, nil, name)
	if err != nil {
		return dto.ConcertDto{}, err
	}
	return mapper.ConcertToDto(concert), nil
}

func (s *concertService) ListByOrchestra(ctx context.Context, orchestraID uint) ([]dto.ConcertDto, error) {
	if _, err := s.orchestraRepo.GetByID(ctx, nil, orchestraID); err != nil {
		return nil, fmt.Errorf("orchestra %d: %w", orchestraID, err)
	}
	concerts, err := s.concertRepo.ListByOrchestra(ctx, nil, orchestraID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ConcertDto, 0, len(concerts))
	for _, c := range concerts {
		out = append(out, mapper.ConcertToDto(c))
	}
	return out, nil
}

func (s *concertService) Add(ctx context.Context, in *dto.CreateConcertDto) (dto.ConcertDto, error) {
	if err := in.Validate(); err != nil {
		return dto.ConcertDto{}, err
	}
	if _, err := s.orchestraRepo.GetByID(ctx, nil, in.OrchestraID); err != nil {
		return dto.ConcertDto{}, fmt.Errorf("orchestra %d: %w", in.OrchestraID, err)
	}
	created, err := s.concertRepo.Create(ctx, nil, &types.Concert{
		Name:            in.Name,
		Description:     in.Description,
		PerformanceDate: in.PerformanceDate,
		Image:           in.Image,
		OrchestraID:     in.OrchestraID,
	})
	if err != nil {
		return dto.ConcertDto{}, err
	}
	if created.ID == 0 {
		return dto.ConcertDto{}, fmt.Errorf("concert insert returned no id: %w", domain.ErrStorage)
	}
	stored, err := s.concertRepo.GetByID(ctx, nil, created.ID)
	if err != nil {
		return dto.ConcertDto{}, err
	}
	return mapper.ConcertToDto(stored), nil
}

func (s *concertService) Update(ctx context.Context, id uint, in *dto.UpdateConcertDto) error {
	if err := in.Validate(); err != nil {
		return err
	}
	concert, err := s.concertRepo.GetByID(ctx, nil, id)
	if err != nil {
		return err
	}
	concert.Name = in.Name
	concert.Description = in.Description
	concert.PerformanceDate = in.PerformanceDate
	concert.Image = in.Image
	if err := s.concertRepo.Update(ctx, nil, concert); err != nil {
		return fmt.Errorf("failed to update concert %d: %w", id, err)
	}
	return nil
}

func (s *concertService) Delete(ctx context.Context, id uint) error {
	if _, err := s.concertRepo.GetByID(ctx, nil, id); err != nil {
		return err
	}
	players, err := s.playerRepo.CountByConcert(ctx, nil, id)
	if err != nil {
		return err
	}
	if players > 0 {
		return fmt.Errorf("concert still has %d assigned players: %w", players, domain.ErrConflict)
	}
	return s.concertRepo.Delete(ctx, nil, id)
}
