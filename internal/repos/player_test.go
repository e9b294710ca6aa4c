package repos

import (
	"context"
	"errors"
	"testing"

	"github.com/orchestrahub/orchestra-backend/internal/domain"
	"github.com/orchestrahub/orchestra-backend/internal/types"
)

func TestPlayerRepo_LeaderboardOrdersByScoreDescending(t *testing.T) {
	db := testDB(t)
	repo := NewPlayerRepo(db, testLogger())
	ctx := context.Background()

	sectionID := uint(2)
	if err := db.Create(&types.Section{ID: sectionID, Name: "Strings"}).Error; err != nil {
		t.Fatalf("seed section: %v", err)
	}
	seed := []types.Player{
		{ID: 1, UserID: 10, Name: "Ana", SectionID: &sectionID, Score: 10},
		{ID: 2, UserID: 20, Name: "Bela", SectionID: &sectionID, Score: 30},
		{ID: 3, UserID: 30, Name: "Cora", SectionID: &sectionID, Score: 20},
		{ID: 4, UserID: 40, Name: "Elsewhere", Score: 99},
	}
	for i := range seed {
		if err := db.Create(&seed[i]).Error; err != nil {
			t.Fatalf("seed player %d: %v", seed[i].ID, err)
		}
	}

	board, err := repo.LeaderboardBySection(ctx, nil, sectionID)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(board) != 3 {
		t.Fatalf("expected 3 section members, got %d", len(board))
	}
	wantScores := []float64{30, 20, 10}
	for i, want := range wantScores {
		if board[i].Score != want {
			t.Fatalf("position %d: score %v, want %v", i, board[i].Score, want)
		}
	}
}

func TestPlayerRepo_LeaderboardBreaksTiesByID(t *testing.T) {
	db := testDB(t)
	repo := NewPlayerRepo(db, testLogger())

	sectionID := uint(1)
	if err := db.Create(&types.Section{ID: sectionID, Name: "Brass"}).Error; err != nil {
		t.Fatalf("seed section: %v", err)
	}
	for _, p := range []types.Player{
		{ID: 5, UserID: 50, Name: "Second", SectionID: &sectionID, Score: 15},
		{ID: 3, UserID: 60, Name: "First", SectionID: &sectionID, Score: 15},
	} {
		row := p
		if err := db.Create(&row).Error; err != nil {
			t.Fatalf("seed player %d: %v", p.ID, err)
		}
	}

	board, err := repo.LeaderboardBySection(context.Background(), nil, sectionID)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if board[0].ID != 3 || board[1].ID != 5 {
		t.Fatalf("tie not broken by id: got [%d %d]", board[0].ID, board[1].ID)
	}
}

func TestPlayerRepo_AssignFromEnrollment(t *testing.T) {
	db := testDB(t)
	repo := NewPlayerRepo(db, testLogger())
	ctx := context.Background()

	if err := db.Create(&types.Player{ID: 7, UserID: 70, Name: "Ana", Score: 5}).Error; err != nil {
		t.Fatalf("seed player: %v", err)
	}

	affected, err := repo.AssignFromEnrollment(ctx, nil, 7, 2, 3, 5)
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	if affected != 1 {
		t.Fatalf("expected 1 affected row, got %d", affected)
	}

	got, err := repo.GetByID(ctx, nil, 7)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.SectionID == nil || *got.SectionID != 2 {
		t.Fatalf("section not assigned: %+v", got)
	}
	if got.OrchestraID == nil || *got.OrchestraID != 3 {
		t.Fatalf("orchestra not assigned: %+v", got)
	}
	if got.InstrumentID == nil || *got.InstrumentID != 5 {
		t.Fatalf("instrument not assigned: %+v", got)
	}
	if got.Score != 5 {
		t.Fatalf("score must be untouched, got %v", got.Score)
	}

	affected, err = repo.AssignFromEnrollment(ctx, nil, 404, 2, 3, 5)
	if err != nil {
		t.Fatalf("assign missing player: %v", err)
	}
	if affected != 0 {
		t.Fatalf("expected 0 affected rows for missing player, got %d", affected)
	}
}

func TestPlayerRepo_DeleteMissingIsNotFound(t *testing.T) {
	db := testDB(t)
	repo := NewPlayerRepo(db, testLogger())

	err := repo.Delete(context.Background(), nil, 123)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}
