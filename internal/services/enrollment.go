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

// EnrollmentService owns the request/approval workflow: a player files a
// request (pending), the conductor approves it, and materializing copies the
// approved placement onto the player row. Approve and Materialize are
// separately callable; Accept runs both in one transaction for callers that
// want a single step.
type EnrollmentService interface {
	Enroll(ctx context.Context, in *dto.EnrollDto) (dto.EnrollmentDto, error)
	ListPending(ctx context.Context, orchestraID uint) ([]dto.EnrollmentDto, error)
	ListByPlayer(ctx context.Context, playerID uint) ([]dto.EnrollmentDto, error)
	Approve(ctx context.Context, orchestraID, playerID uint) error
	Materialize(ctx context.Context, orchestraID, playerID uint) (dto.PlayerDto, error)
	Accept(ctx context.Context, orchestraID, playerID uint) (dto.PlayerDto, error)
}

type enrollmentService struct {
	db             *gorm.DB
	log            *logger.Logger
	enrollmentRepo repos.EnrollmentRepo
	playerRepo     repos.PlayerRepo
	orchestraRepo  repos.OrchestraRepo
	sectionRepo    repos.SectionRepo
	instrumentRepo repos.InstrumentRepo
}

func NewEnrollmentService(
	db *gorm.DB,
	log *logger.Logger,
	enrollmentRepo repos.EnrollmentRepo,
	playerRepo repos.PlayerRepo,
	orchestraRepo repos.OrchestraRepo,
	sectionRepo repos.SectionRepo,
	instrumentRepo repos.InstrumentRepo,
) EnrollmentService {
	return &enrollmentService{
		db:             db,
		log:            log.With("service", "EnrollmentService"),
		enrollmentRepo: enrollmentRepo,
		playerRepo:     playerRepo,
		orchestraRepo:  orchestraRepo,
		sectionRepo:    sectionRepo,
		instrumentRepo: instrumentRepo,
	}
}

// Enroll files a pending request. All four referenced entities are resolved
// before the insert; a live request for the same player/orchestra pair is a
// conflict (the pair is the row's identity).
func (s *enrollmentService) Enroll(ctx context.Context, in *dto.EnrollDto) (dto.EnrollmentDto, error) {
	if err := in.Validate(); err != nil {
		return dto.EnrollmentDto{}, err
	}
	if _, err := s.playerRepo.GetByID(ctx, nil, in.PlayerID); err != nil {
		return dto.EnrollmentDto{}, fmt.Errorf("player %d: %w", in.PlayerID, err)
	}
	if _, err := s.orchestraRepo.GetByID(ctx, nil, in.OrchestraID); err != nil {
		return dto.EnrollmentDto{}, fmt.Errorf("orchestra %d: %w", in.OrchestraID, err)
	}
	if _, err := s.sectionRepo.GetByID(ctx, nil, in.SectionID); err != nil {
		return dto.EnrollmentDto{}, fmt.Errorf("section %d: %w", in.SectionID, err)
	}
	instrument, err := s.instrumentRepo.GetByID(ctx, nil, in.InstrumentID)
	if err != nil {
		return dto.EnrollmentDto{}, fmt.Errorf("instrument %d: %w", in.InstrumentID, err)
	}
	if instrument.SectionID != in.SectionID {
		return dto.EnrollmentDto{}, fmt.Errorf("instrument %d does not belong to section %d: %w",
			in.InstrumentID, in.SectionID, domain.ErrConflict)
	}

	if _, err := s.enrollmentRepo.Get(ctx, nil, in.PlayerID, in.OrchestraID); err == nil {
		return dto.EnrollmentDto{}, fmt.Errorf("enrollment request already exists for player %d and orchestra %d: %w",
			in.PlayerID, in.OrchestraID, domain.ErrConflict)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return dto.EnrollmentDto{}, err
	}

	created, err := s.enrollmentRepo.Create(ctx, nil, &types.Enrollment{
		PlayerID:     in.PlayerID,
		OrchestraID:  in.OrchestraID,
		SectionID:    in.SectionID,
		InstrumentID: in.InstrumentID,
		Experience:   in.Experience,
		IsApproved:   types.EnrollmentPending,
	})
	if err != nil {
		return dto.EnrollmentDto{}, err
	}
	return mapper.EnrollmentToDto(created), nil
}

func (s *enrollmentService) ListPending(ctx context.Context, orchestraID uint) ([]dto.EnrollmentDto, error) {
	if _, err := s.orchestraRepo.GetByID(ctx, nil, orchestraID); err != nil {
		return nil, fmt.Errorf("orchestra %d: %w", orchestraID, err)
	}
	details, err := s.enrollmentRepo.ListPendingByOrchestra(ctx, nil, orchestraID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EnrollmentDto, 0, len(details))
	for i := range details {
		out = append(out, mapper.EnrollmentDetailToDto(&details[i]))
	}
	return out, nil
}

func (s *enrollmentService) ListByPlayer(ctx context.Context, playerID uint) ([]dto.EnrollmentDto, error) {
	if _, err := s.playerRepo.GetByID(ctx, nil, playerID); err != nil {
		return nil, fmt.Errorf("player %d: %w", playerID, err)
	}
	rows, err := s.enrollmentRepo.ListByPlayer(ctx, nil, playerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EnrollmentDto, 0, len(rows))
	for _, e := range rows {
		out = append(out, mapper.EnrollmentToDto(e))
	}
	return out, nil
}

// Approve flips a pending request to approved. It does not touch the player
// row; that is Materialize's job.
func (s *enrollmentService) Approve(ctx context.Context, orchestraID, playerID uint) error {
	affected, err := s.enrollmentRepo.Approve(ctx, nil, orchestraID, playerID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("no pending enrollment for orchestra %d and player %d: %w",
			orchestraID, playerID, domain.ErrNotFound)
	}
	return nil
}

// Materialize copies an already-approved request's section, orchestra and
// instrument onto the player row and returns the updated player. The read
// and the write run in one transaction so a concurrent change of either row
// cannot produce a half-applied assignment.
func (s *enrollmentService) Materialize(ctx context.Context, orchestraID, playerID uint) (dto.PlayerDto, error) {
	var player *types.Player
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.materializeTx(ctx, tx, orchestraID, playerID, &player)
	})
	if err != nil {
		return dto.PlayerDto{}, err
	}
	return mapper.PlayerToDto(player), nil
}

// Accept is the combined step: approve the pending request and materialize
// it atomically.
func (s *enrollmentService) Accept(ctx context.Context, orchestraID, playerID uint) (dto.PlayerDto, error) {
	var player *types.Player
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		affected, err := s.enrollmentRepo.Approve(ctx, tx, orchestraID, playerID)
		if err != nil {
			return err
		}
		if affected == 0 {
			// Not pending; it may already be approved, in which case
			// materializing is still the right thing to do.
			if _, err := s.enrollmentRepo.GetApproved(ctx, tx, orchestraID, playerID); err != nil {
				return fmt.Errorf("no enrollment for orchestra %d and player %d: %w",
					orchestraID, playerID, domain.ErrNotFound)
			}
		}
		return s.materializeTx(ctx, tx, orchestraID, playerID, &player)
	})
	if err != nil {
		return dto.PlayerDto{}, err
	}
	return mapper.PlayerToDto(player), nil
}

func (s *enrollmentService) materializeTx(ctx context.Context, tx *gorm.DB, orchestraID, playerID uint, out **types.Player) error {
	enrollment, err := s.enrollmentRepo.GetApproved(ctx, tx, orchestraID, playerID)
	if err != nil {
		return fmt.Errorf("no approved enrollment for orchestra %d and player %d: %w",
			orchestraID, playerID, domain.ErrNotFound)
	}
	affected, err := s.playerRepo.AssignFromEnrollment(ctx, tx,
		enrollment.PlayerID, enrollment.SectionID, enrollment.OrchestraID, enrollment.InstrumentID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("player %d no longer exists: %w", playerID, domain.ErrNotFound)
	}
	player, err := s.playerRepo.GetByID(ctx, tx, playerID)
	if err != nil {
		return err
	}
	*out = player
	return nil
}
