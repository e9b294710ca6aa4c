package repos

import (
	"context"
	"errors"
	"testing"

	"github.com/orchestrahub/orchestra-backend/internal/domain"
	"github.com/orchestrahub/orchestra-backend/internal/types"
)

func TestOrchestraRepo_GetByIDResolvesConductor(t *testing.T) {
	db := testDB(t)
	repo := NewOrchestraRepo(db, testLogger())
	ctx := context.Background()

	if err := db.Create(&types.Conductor{ID: 4, UserID: 40, Name: "Marin"}).Error; err != nil {
		t.Fatalf("seed conductor: %v", err)
	}
	condID := uint(4)
	if err := db.Create(&types.Orchestra{ID: 1, Name: "City Philharmonic", ConductorID: &condID}).Error; err != nil {
		t.Fatalf("seed orchestra: %v", err)
	}

	got, err := repo.GetByID(ctx, nil, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Orchestra.Name != "City Philharmonic" {
		t.Fatalf("unexpected orchestra: %+v", got.Orchestra)
	}
	if got.Conductor == nil {
		t.Fatalf("expected conductor to be resolved")
	}
	if got.Conductor.ID != 4 || got.Conductor.Name != "Marin" || got.Conductor.UserID != 40 {
		t.Fatalf("unexpected conductor: %+v", got.Conductor)
	}
}

func TestOrchestraRepo_ConductorlessOrchestraHasNilConductor(t *testing.T) {
	db := testDB(t)
	repo := NewOrchestraRepo(db, testLogger())

	if err := db.Create(&types.Orchestra{ID: 2, Name: "Youth Ensemble"}).Error; err != nil {
		t.Fatalf("seed orchestra: %v", err)
	}

	got, err := repo.GetByID(context.Background(), nil, 2)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Conductor != nil {
		t.Fatalf("expected nil conductor, got %+v", got.Conductor)
	}
}

func TestOrchestraRepo_GetAllListsEveryRow(t *testing.T) {
	db := testDB(t)
	repo := NewOrchestraRepo(db, testLogger())

	for _, o := range []types.Orchestra{
		{ID: 1, Name: "First"},
		{ID: 2, Name: "Second"},
	} {
		row := o
		if err := db.Create(&row).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	all, err := repo.GetAll(context.Background(), nil)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(all))
	}
	if all[0].Orchestra.ID != 1 || all[1].Orchestra.ID != 2 {
		t.Fatalf("rows out of order: %d, %d", all[0].Orchestra.ID, all[1].Orchestra.ID)
	}
}

func TestOrchestraRepo_GetByNameAndMissingName(t *testing.T) {
	db := testDB(t)
	repo := NewOrchestraRepo(db, testLogger())
	ctx := context.Background()

	if err := db.Create(&types.Orchestra{ID: 9, Name: "Chamber Group"}).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, err := repo.GetByName(ctx, nil, "Chamber Group")
	if err != nil {
		t.Fatalf("get by name: %v", err)
	}
	if got.Orchestra.ID != 9 {
		t.Fatalf("unexpected row: %+v", got.Orchestra)
	}

	_, err = repo.GetByName(ctx, nil, "No Such Band")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestOrchestraRepo_CountByConductor(t *testing.T) {
	db := testDB(t)
	repo := NewOrchestraRepo(db, testLogger())
	ctx := context.Background()

	condID := uint(4)
	if err := db.Create(&types.Conductor{ID: condID, UserID: 40, Name: "Marin"}).Error; err != nil {
		t.Fatalf("seed conductor: %v", err)
	}
	for _, o := range []types.Orchestra{
		{ID: 1, Name: "Led", ConductorID: &condID},
		{ID: 2, Name: "Unled"},
	} {
		row := o
		if err := db.Create(&row).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	n, err := repo.CountByConductor(ctx, nil, condID)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1, got %d", n)
	}
}
