package repos

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/orchestrahub/orchestra-backend/internal/domain"
	"github.com/orchestrahub/orchestra-backend/internal/types"
)

func seedEnrollmentFixtures(t *testing.T, db *gorm.DB) {
	t.Helper()
	rows := []interface{}{
		&types.Orchestra{ID: 3, Name: "City Philharmonic"},
		&types.Section{ID: 2, Name: "Strings"},
		&types.Instrument{ID: 5, Name: "Violin", SectionID: 2},
		&types.Player{ID: 7, UserID: 70, Name: "Ana", Score: 12},
		&types.Player{ID: 8, UserID: 80, Name: "Bela", Score: 20},
	}
	for _, row := range rows {
		if err := db.Create(row).Error; err != nil {
			t.Fatalf("seed %T: %v", row, err)
		}
	}
}

func TestEnrollmentRepo_CreateAndListPending(t *testing.T) {
	db := testDB(t)
	seedEnrollmentFixtures(t, db)
	repo := NewEnrollmentRepo(db, testLogger())
	ctx := context.Background()

	_, err := repo.Create(ctx, nil, &types.Enrollment{
		PlayerID: 7, OrchestraID: 3, SectionID: 2, InstrumentID: 5,
		Experience: 4, IsApproved: types.EnrollmentPending,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	pending, err := repo.ListPendingByOrchestra(ctx, nil, 3)
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("expected 1 pending request, got %d", len(pending))
	}
	got := pending[0]
	if got.PlayerID != 7 || got.OrchestraID != 3 || got.SectionID != 2 || got.InstrumentID != 5 {
		t.Fatalf("unexpected row: %+v", got)
	}
	if got.PlayerName != "Ana" || got.SectionName != "Strings" || got.InstrumentName != "Violin" {
		t.Fatalf("join did not resolve names: %+v", got)
	}
}

func TestEnrollmentRepo_DuplicatePairIsConflict(t *testing.T) {
	db := testDB(t)
	seedEnrollmentFixtures(t, db)
	repo := NewEnrollmentRepo(db, testLogger())
	ctx := context.Background()

	first := &types.Enrollment{PlayerID: 7, OrchestraID: 3, SectionID: 2, InstrumentID: 5}
	if _, err := repo.Create(ctx, nil, first); err != nil {
		t.Fatalf("first create: %v", err)
	}
	dup := &types.Enrollment{PlayerID: 7, OrchestraID: 3, SectionID: 2, InstrumentID: 5}
	_, err := repo.Create(ctx, nil, dup)
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected conflict for duplicate pair, got %v", err)
	}
}

func TestEnrollmentRepo_ApproveFlipsOnlyPendingRows(t *testing.T) {
	db := testDB(t)
	seedEnrollmentFixtures(t, db)
	repo := NewEnrollmentRepo(db, testLogger())
	ctx := context.Background()

	if _, err := repo.Create(ctx, nil, &types.Enrollment{
		PlayerID: 7, OrchestraID: 3, SectionID: 2, InstrumentID: 5,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	affected, err := repo.Approve(ctx, nil, 3, 7)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if affected != 1 {
		t.Fatalf("expected 1 affected row, got %d", affected)
	}

	// A second approval has no pending row left to hit.
	affected, err = repo.Approve(ctx, nil, 3, 7)
	if err != nil {
		t.Fatalf("re-approve: %v", err)
	}
	if affected != 0 {
		t.Fatalf("expected 0 affected rows on re-approve, got %d", affected)
	}

	approved, err := repo.GetApproved(ctx, nil, 3, 7)
	if err != nil {
		t.Fatalf("get approved: %v", err)
	}
	if approved.IsApproved != types.EnrollmentApproved {
		t.Fatalf("row not approved: %+v", approved)
	}

	pending, err := repo.ListPendingByOrchestra(ctx, nil, 3)
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("approved row still listed as pending: %+v", pending)
	}
}

func TestEnrollmentRepo_ListByPlayerUsesRequestedPlayer(t *testing.T) {
	db := testDB(t)
	seedEnrollmentFixtures(t, db)
	repo := NewEnrollmentRepo(db, testLogger())
	ctx := context.Background()

	if _, err := repo.Create(ctx, nil, &types.Enrollment{PlayerID: 7, OrchestraID: 3, SectionID: 2, InstrumentID: 5}); err != nil {
		t.Fatalf("create for player 7: %v", err)
	}
	if _, err := repo.Create(ctx, nil, &types.Enrollment{PlayerID: 8, OrchestraID: 3, SectionID: 2, InstrumentID: 5}); err != nil {
		t.Fatalf("create for player 8: %v", err)
	}

	rows, err := repo.ListByPlayer(ctx, nil, 8)
	if err != nil {
		t.Fatalf("list by player: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 request for player 8, got %d", len(rows))
	}
	if rows[0].PlayerID != 8 {
		t.Fatalf("listing returned another player's request: %+v", rows[0])
	}
}

func TestEnrollmentRepo_GetMissingPairIsNotFound(t *testing.T) {
	db := testDB(t)
	repo := NewEnrollmentRepo(db, testLogger())

	_, err := repo.Get(context.Background(), nil, 99, 99)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}
