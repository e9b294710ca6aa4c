package services

import (
	"context"
	"errors"
	"testing"

	"github.com/orchestrahub/orchestra-backend/internal/domain"
	"github.com/orchestrahub/orchestra-backend/internal/dto"
	"github.com/orchestrahub/orchestra-backend/internal/requestdata"
	"github.com/orchestrahub/orchestra-backend/internal/types"
)

func registerPlayer(t *testing.T, f *fixture, username string) dto.UserDto {
	t.Helper()
	u, err := f.auth.Register(context.Background(), &dto.CreateUserDto{
		Username: username,
		Password: "secret",
		Email:    username + "@gmail.com",
		Role:     types.RolePlayer,
		Name:     "Ana",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	return u
}

func TestRegister_CreatesPlayerProfile(t *testing.T) {
	f := newFixture(t)
	u := registerPlayer(t, f, "ana")

	if u.Role != "Player" {
		t.Fatalf("expected Player role label, got %q", u.Role)
	}

	var player types.Player
	if err := f.db.Where("user_id = ?", u.ID).First(&player).Error; err != nil {
		t.Fatalf("player profile missing: %v", err)
	}
	if player.Name != "Ana" {
		t.Fatalf("profile seeded with wrong name: %q", player.Name)
	}
}

func TestRegister_CreatesConductorProfileAndFallsBackToUsername(t *testing.T) {
	f := newFixture(t)
	u, err := f.auth.Register(context.Background(), &dto.CreateUserDto{
		Username: "marin",
		Password: "secret",
		Email:    "marin@gmail.com",
		Role:     types.RoleConductor,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	var conductor types.Conductor
	if err := f.db.Where("user_id = ?", u.ID).First(&conductor).Error; err != nil {
		t.Fatalf("conductor profile missing: %v", err)
	}
	if conductor.Name != "marin" {
		t.Fatalf("expected username fallback, got %q", conductor.Name)
	}
}

func TestRegister_RejectsUnknownRoleAndTakenUsername(t *testing.T) {
	f := newFixture(t)
	registerPlayer(t, f, "ana")
	ctx := context.Background()

	_, err := f.auth.Register(ctx, &dto.CreateUserDto{
		Username: "bela", Password: "secret", Email: "bela@gmail.com", Role: 3,
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for role 3, got %v", err)
	}

	_, err = f.auth.Register(ctx, &dto.CreateUserDto{
		Username: "ana", Password: "secret", Email: "other@gmail.com", Role: types.RolePlayer,
	})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected conflict for taken username, got %v", err)
	}
}

func TestLogin_IssuesUsableTokenPair(t *testing.T) {
	f := newFixture(t)
	u := registerPlayer(t, f, "ana")
	ctx := context.Background()

	pair, err := f.auth.Login(ctx, &dto.LoginDto{Username: "ana", Password: "secret"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("incomplete token pair: %+v", pair)
	}

	authed, err := f.auth.ContextFromToken(ctx, pair.AccessToken)
	if err != nil {
		t.Fatalf("verify access token: %v", err)
	}
	rd := requestdata.GetRequestData(authed)
	if rd == nil {
		t.Fatalf("no request data in context")
	}
	if rd.UserID != u.ID || rd.Role != types.RolePlayer {
		t.Fatalf("unexpected identity: %+v", rd)
	}
}

func TestLogin_WrongPasswordFails(t *testing.T) {
	f := newFixture(t)
	registerPlayer(t, f, "ana")

	_, err := f.auth.Login(context.Background(), &dto.LoginDto{Username: "ana", Password: "nope"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected credential rejection, got %v", err)
	}
}

func TestRefresh_RotatesTheStoredToken(t *testing.T) {
	f := newFixture(t)
	registerPlayer(t, f, "ana")
	ctx := context.Background()

	first, err := f.auth.Login(ctx, &dto.LoginDto{Username: "ana", Password: "secret"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	second, err := f.auth.Refresh(ctx, first.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if second.RefreshToken == first.RefreshToken {
		t.Fatalf("refresh token was not rotated")
	}

	// The old token is gone after rotation.
	if _, err := f.auth.Refresh(ctx, first.RefreshToken); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected stale token rejection, got %v", err)
	}
}

func TestLogout_DropsRefreshTokens(t *testing.T) {
	f := newFixture(t)
	u := registerPlayer(t, f, "ana")
	ctx := context.Background()

	pair, err := f.auth.Login(ctx, &dto.LoginDto{Username: "ana", Password: "secret"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := f.auth.Logout(ctx, u.ID); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := f.auth.Refresh(ctx, pair.RefreshToken); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected token to be dropped, got %v", err)
	}
}

func TestContextFromToken_RejectsGarbage(t *testing.T) {
	f := newFixture(t)
	if _, err := f.auth.ContextFromToken(context.Background(), "not-a-token"); err == nil {
		t.Fatalf("expected rejection of malformed token")
	}
}
