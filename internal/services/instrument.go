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

type InstrumentService interface {
	GetAll(ctx context.Context) ([]dto.InstrumentDto, error)
	GetByID(ctx context.Context, id uint) (dto.InstrumentDto, error)
	GetByName(ctx context.Context, name string) (dto.InstrumentDto, error)
	ListBySection(ctx context.Context, sectionID uint) ([]dto.InstrumentDto, error)
	Add(ctx context.Context, in *dto.CreateInstrumentDto) (dto.InstrumentDto, error)
	Update(ctx context.Context, id uint, in *dto.UpdateInstrumentDto) error
	Delete(ctx context.Context, id uint) error
}

type instrumentService struct {
	db             *gorm.DB
	log            *logger.Logger
	instrumentRepo repos.InstrumentRepo
	sectionRepo    repos.SectionRepo
	playerRepo     repos.PlayerRepo
	enrollmentRepo repos.EnrollmentRepo
}

func NewInstrumentService(
	db *gorm.DB,
	log *logger.Logger,
	instrumentRepo repos.InstrumentRepo,
	sectionRepo repos.SectionRepo,
	playerRepo repos.PlayerRepo,
	enrollmentRepo repos.EnrollmentRepo,
) InstrumentService {
	return &instrumentService{
		db:             db,
		log:            log.With("service", "InstrumentService"),
		instrumentRepo: instrumentRepo,
		sectionRepo:    sectionRepo,
		playerRepo:     playerRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

func (s *instrumentService) GetAll(ctx context.Context) ([]dto.InstrumentDto, error) {
	instruments, err := s.instrumentRepo.GetAll(ctx, nil)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InstrumentDto, 0, len(instruments))
	for _, i := range instruments {
		out = append(out, mapper.InstrumentToDto(i))
	}
	return out, nil
}

func (s *instrumentService) GetByID(ctx context.Context, id uint) (dto.InstrumentDto, error) {
	instrument, err := s.instrumentRepo.GetByID(ctx, nil, id)
	if err != nil {
		return dto.InstrumentDto{}, err
	}
	return mapper.InstrumentToDto(instrument), nil
}

func (s *instrumentService) GetByName(ctx context.Context, name string) (dto.InstrumentDto, error) {
	instrument, err := s.instrumentRepo.GetByName(ctx, nil, name)
	if err != nil {
		return dto.InstrumentDto{}, err
	}
	return mapper.InstrumentToDto(instrument), nil
}

func (s *instrumentService) ListBySection(ctx context.Context, sectionID uint) ([]dto.InstrumentDto, error) {
	if _, err := s.sectionRepo.GetByID(ctx, nil, sectionID); err != nil {
		return nil, fmt.Errorf("section %d: %w", sectionID, err)
	}
	instruments, err := s.instrumentRepo.ListBySection(ctx, nil, sectionID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InstrumentDto, 0, len(instruments))
	for _, i := range instruments {
		out = append(out, mapper.InstrumentToDto(i))
	}
	return out, nil
}

func (s *instrumentService) Add(ctx context.Context, in *dto.CreateInstrumentDto) (dto.InstrumentDto, error) {
	if err := in.Validate(); err != nil {
		return dto.InstrumentDto{}, err
	}
	if _, err := s.sectionRepo.GetByID(ctx, nil, in.SectionID); err != nil {
		return dto.InstrumentDto{}, fmt.Errorf("section %d: %w", in.SectionID, err)
	}
	created, err := s.instrumentRepo.Create(ctx, nil, &types.Instrument{Name: in.Name, SectionID: in.SectionID})
	if err != nil {
		return dto.InstrumentDto{}, err
	}
	if created.ID == 0 {
		return dto.InstrumentDto{}, fmt.Errorf("instrument insert returned no id: %w", domain.ErrStorage)
	}
	stored, err := s.instrumentRepo.GetByID(ctx, nil, created.ID)
	if err != nil {
		return dto.InstrumentDto{}, err
	}
	return mapper.InstrumentToDto(stored), nil
}

func (s *instrumentService) Update(ctx context.Context, id uint, in *dto.UpdateInstrumentDto) error {
	if err := in.Validate(); err != nil {
		return err
	}
	instrument, err := s.instrumentRepo.GetByID(ctx, nil, id)
	if err != nil {
		return err
	}
	if in.SectionID != 0 && in.SectionID != instrument.SectionID {
		if _, err := s.sectionRepo.GetByID(ctx, nil, in.SectionID); err != nil {
			return fmt.Errorf("section %d: %w", in.SectionID, err)
		}
		instrument.SectionID = in.SectionID
	}
	instrument.Name = in.Name
	return s.instrumentRepo.Update(ctx, nil, instrument)
}

func (s *instrumentService) Delete(ctx context.Context, id uint) error {
	if _, err := s.instrumentRepo.GetByID(ctx, nil, id); err != nil {
		return err
	}
	players, err := s.playerRepo.CountByInstrument(ctx, nil, id)
	if err != nil {
		return err
	}
	requests, err := s.enrollmentRepo.CountByInstrument(ctx, nil, id)
	if err != nil {
		return err
	}
	if players > 0 || requests > 0 {
		return fmt.Errorf("instrument is still referenced (%d players, %d enrollments): %w",
			players, requests, domain.ErrConflict)
	}
	return s.instrumentRepo.Delete(ctx, nil, id)
}
