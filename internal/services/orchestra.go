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

type OrchestraService interface {
	GetAll(ctx context.Context) ([]dto.OrchestraDto, error)
	GetByID(ctx context.Context, id uint) (dto.OrchestraDto, error)
	GetByName(ctx context.Context, name string) (dto.OrchestraDto, error)
	Add(ctx context.Context, in *dto.CreateOrchestraDto) (dto.OrchestraDto, error)
	Update(ctx context.Context, id uint, in *dto.UpdateOrchestraDto) error
	Delete(ctx context.Context, id uint) error
}

type orchestraService struct {
	db             *gorm.DB
	log            *logger.Logger
	orchestraRepo  repos.OrchestraRepo
	conductorRepo  repos.ConductorRepo
	concertRepo    repos.ConcertRepo
	playerRepo     repos.PlayerRepo
	enrollmentRepo repos.EnrollmentRepo
}

func NewOrchestraService(
	db *gorm.DB,
	log *logger.Logger,
	orchestraRepo repos.OrchestraRepo,
	conductorRepo repos.ConductorRepo,
	concertRepo repos.ConcertRepo,
	playerRepo repos.PlayerRepo,
	enrollmentRepo repos.EnrollmentRepo,
) OrchestraService {
	return &orchestraService{
		db:             db,
		log:            log.With("service", "OrchestraService"),
		orchestraRepo:  orchestraRepo,
		conductorRepo:  conductorRepo,
		concertRepo:    concertRepo,
		playerRepo:     playerRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

func (s *orchestraService) GetAll(ctx context.Context) ([]dto.OrchestraDto, error) {
	rows, err := s.orchestraRepo.GetAll(ctx, nil)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrchestraDto, 0, len(rows))
	for i := range rows {
		out = append(out, mapper.OrchestraToDto(&rows[i].Orchestra, rows[i].Conductor))
	}
	return out, nil
}

func (s *orchestraService) GetByID(ctx context.Context, id uint) (dto.OrchestraDto, error) {
	row, err := s.orchestraRepo.GetByID(ctx, nil, id)
	if err != nil {
		return dto.OrchestraDto{}, err
	}
	return mapper.OrchestraToDto(&row.Orchestra, row.Conductor), nil
}

func (s *orchestraService) GetByName(ctx context.Context, name string) (dto.OrchestraDto, error) {
	row, err := s.orchestraRepo.GetByName(ctx, nil, name)
	if err != nil {
		return dto.OrchestraDto{}, err
	}
	return mapper.OrchestraToDto(&row.Orchestra, row.Conductor), nil
}

// Add resolves the conductor by id before the write so a dangling
// conductor reference never reaches storage.
func (s *orchestraService) Add(ctx context.Context, in *dto.CreateOrchestraDto) (dto.OrchestraDto, error) {
	if err := in.Validate(); err != nil {
		return dto.OrchestraDto{}, err
	}
	if in.ConductorID != nil {
		if _, err := s.conductorRepo.GetByID(ctx, nil, *in.ConductorID); err != nil {
			return dto.OrchestraDto{}, fmt.Errorf("conductor %d: %w", *in.ConductorID, err)
		}
	}
	created, err := s.orchestraRepo.Create(ctx, nil, &types.Orchestra{
		Name:        in.Name,
		Image:       in.Image,
		Date:        in.Date,
		Description: in.Description,
		ConductorID: in.ConductorID,
	})
	if err != nil {
		return dto.OrchestraDto{}, err
	}
	if created.ID == 0 {
		return dto.OrchestraDto{}, fmt.Errorf("orchestra insert returned no id: %w", domain.ErrStorage)
	}
	stored, err := s.orchestraRepo.GetByID(ctx, nil, created.ID)
	if err != nil {
		return dto.OrchestraDto{}, err
	}
	return mapper.OrchestraToDto(&stored.Orchestra, stored.Conductor), nil
}

func (s *orchestraService) Update(ctx context.Context, id uint, in *dto.UpdateOrchestraDto) error {
	if err := in.Validate(); err != nil {
		return err
	}
	row, err := s.orchestraRepo.GetByID(ctx, nil, id)
	if err != nil {
		return err
	}
	if in.ConductorID != nil {
		if _, err := s.conductorRepo.GetByID(ctx, nil, *in.ConductorID); err != nil {
			return fmt.Errorf("conductor %d: %w", *in.ConductorID, err)
		}
	}
	orchestra := row.Orchestra
	orchestra.Name = in.Name
	orchestra.Image = in.Image
	orchestra.Date = in.Date
	orchestra.Description = in.Description
	orchestra.ConductorID = in.ConductorID
	return s.orchestraRepo.Update(ctx, nil, &orchestra)
}

// Delete refuses while concerts, seated players or enrollment requests still
// reference the orchestra; there is no cascade.
func (s *orchestraService) Delete(ctx context.Context, id uint) error {
	if _, err := s.orchestraRepo.GetByID(ctx, nil, id); err != nil {
		return err
	}
	concerts, err := s.concertRepo.CountByOrchestra(ctx, nil, id)
	if err != nil {
		return err
	}
	players, err := s.playerRepo.CountByOrchestra(ctx, nil, id)
	if err != nil {
		return err
	}
	requests, err := s.enrollmentRepo.CountByOrchestra(ctx, nil, id)
	if err != nil {
		return err
	}
	if concerts > 0 || players > 0 || requests > 0 {
		return fmt.Errorf("orchestra is still referenced (%d concerts, %d players, %d enrollments): %w",
			concerts, players, requests, domain.ErrConflict)
	}
	return s.orchestraRepo.Delete(ctx, nil, id)
}
