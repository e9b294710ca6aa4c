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

type SectionService interface {
	GetAll(ctx context.Context) ([]dto.SectionDto, error)
	GetByID(ctx context.Context, id uint) (dto.SectionDto, error)
	GetByName(ctx context.Context, name string) (dto.SectionDto, error)
	Add(ctx context.Context, in *dto.CreateSectionDto) (dto.SectionDto, error)
	Update(ctx context.Context, id uint, in *dto.UpdateSectionDto) error
	Delete(ctx context.Context, id uint) error
}

type sectionService struct {
	db             *gorm.DB
	log            *logger.Logger
	sectionRepo    repos.SectionRepo
	instrumentRepo repos.InstrumentRepo
	playerRepo     repos.PlayerRepo
	enrollmentRepo repos.EnrollmentRepo
}

func NewSectionService(
	db *gorm.DB,
	log *logger.Logger,
	sectionRepo repos.SectionRepo,
	instrumentRepo repos.InstrumentRepo,
	playerRepo repos.PlayerRepo,
	enrollmentRepo repos.EnrollmentRepo,
) SectionService {
	return &sectionService{
		db:             db,
		log:            log.With("service", "SectionService"),
		sectionRepo:    sectionRepo,
		instrumentRepo: instrumentRepo,
		playerRepo:     playerRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

func (s *sectionService) GetAll(ctx context.Context) ([]dto.SectionDto, error) {
	sections, err := s.sectionRepo.GetAll(ctx, nil)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SectionDto, 0, len(sections))
	for _, sec := range sections {
		out = append(out, mapper.SectionToDto(sec))
	}
	return out, nil
}

func (s *sectionService) GetByID(ctx context.Context, id uint) (dto.SectionDto, error) {
	section, err := s.sectionRepo.GetByID(ctx, nil, id)
	if err != nil {
		return dto.SectionDto{}, err
	}
	return mapper.SectionToDto(section), nil
}

func (s *sectionService) GetByName(ctx context.Context, name string) (dto.SectionDto, error) {
	section, err := s.sectionRepo.GetByName(ctx, nil, name)
	if err != nil {
		return dto.SectionDto{}, err
	}
	return mapper.SectionToDto(section), nil
}

func (s *sectionService) Add(ctx context.Context, in *dto.CreateSectionDto) (dto.SectionDto, error) {
	if err := in.Validate(); err != nil {
		return dto.SectionDto{}, err
	}
	created, err := s.sectionRepo.Create(ctx, nil, &types.Section{Name: in.Name})
	if err != nil {
		return dto.SectionDto{}, err
	}
	if created.ID == 0 {
		return dto.SectionDto{}, fmt.Errorf("section insert returned no id: %w", domain.ErrStorage)
	}
	stored, err := s.sectionRepo.GetByID(ctx, nil, created.ID)
	if err != nil {
		return dto.SectionDto{}, err
	}
	return mapper.SectionToDto(stored), nil
}

func (s *sectionService) Update(ctx context.Context, id uint, in *dto.UpdateSectionDto) error {
	if err := in.Validate(); err != nil {
		return err
	}
	section, err := s.sectionRepo.GetByID(ctx, nil, id)
	if err != nil {
		return err
	}
	section.Name = in.Name
	return s.sectionRepo.Update(ctx, nil, section)
}

func (s *sectionService) Delete(ctx context.Context, id uint) error {
	if _, err := s.sectionRepo.GetByID(ctx, nil, id); err != nil {
		return err
	}
	instruments, err := s.instrumentRepo.CountBySection(ctx, nil, id)
	if err != nil {
		return err
	}
	players, err := s.playerRepo.CountBySection(ctx, nil, id)
	if err != nil {
		return err
	}
	requests, err := s.enrollmentRepo.CountBySection(ctx, nil, id)
	if err != nil {
		return err
	}
	if instruments > 0 || players > 0 || requests > 0 {
		return fmt.Errorf("section is still referenced (%d instruments, %d players, %d enrollments): %w",
			instruments, players, requests, domain.ErrConflict)
	}
	return s.sectionRepo.Delete(ctx, nil, id)
}
