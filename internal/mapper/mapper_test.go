package mapper

import (
	"testing"
	"time"

	"github.com/orchestrahub/orchestra-backend/internal/repos"
	"github.com/orchestrahub/orchestra-backend/internal/types"
)

func TestUserRoleLabel_MapsKnownAndUnknownCodes(t *testing.T) {
	cases := []struct {
		code int
		want string
	}{
		{types.RoleConductor, "Conductor"},
		{types.RolePlayer, "Player"},
		{0, "Unknown"},
		{99, "Unknown"},
		{-1, "Unknown"},
	}
	for _, tc := range cases {
		if got := UserRoleLabel(tc.code); got != tc.want {
			t.Fatalf("UserRoleLabel(%d) = %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestUserRoleCode_InvertsLabelsAndRejectsUnknown(t *testing.T) {
	cases := []struct {
		label string
		want  int
	}{
		{"Conductor", types.RoleConductor},
		{"Player", types.RolePlayer},
		{"Unknown", -1},
		{"conductor", -1},
		{"", -1},
	}
	for _, tc := range cases {
		if got := UserRoleCode(tc.label); got != tc.want {
			t.Fatalf("UserRoleCode(%q) = %d, want %d", tc.label, got, tc.want)
		}
	}
}

func TestUserToDto_RendersRoleAndHidesNothingElse(t *testing.T) {
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	u := &types.User{ID: 4, Username: "ana", Email: "ana@gmail.com", Role: types.RolePlayer, Image: "img.png", CreatedAt: created}

	d := UserToDto(u)

	if d.ID != 4 || d.Username != "ana" || d.Email != "ana@gmail.com" {
		t.Fatalf("unexpected identity fields: %+v", d)
	}
	if d.Role != "Player" {
		t.Fatalf("expected role label Player, got %q", d.Role)
	}
	if !d.CreatedAt.Equal(created) {
		t.Fatalf("CreatedAt not carried over: %v", d.CreatedAt)
	}
}

func TestOrchestraToDto_WithAndWithoutConductor(t *testing.T) {
	o := &types.Orchestra{ID: 2, Name: "Philharmonic", Description: "city orchestra"}

	plain := OrchestraToDto(o, nil)
	if plain.Conductor != nil {
		t.Fatalf("expected nil conductor, got %+v", plain.Conductor)
	}

	c := &types.Conductor{ID: 7, UserID: 12, Name: "Marin"}
	withCond := OrchestraToDto(o, c)
	if withCond.Conductor == nil {
		t.Fatalf("expected conductor to be attached")
	}
	if withCond.Conductor.ID != 7 || withCond.Conductor.Name != "Marin" {
		t.Fatalf("unexpected conductor: %+v", withCond.Conductor)
	}
}

func TestEnrollmentDetailToDto_CarriesJoinedNames(t *testing.T) {
	d := EnrollmentDetailToDto(&repos.EnrollmentDetail{
		PlayerID:       3,
		OrchestraID:    5,
		SectionID:      2,
		InstrumentID:   9,
		Experience:     4,
		IsApproved:     types.EnrollmentPending,
		PlayerName:     "Ana",
		SectionName:    "Strings",
		InstrumentName: "Violin",
	})

	if d.PlayerID != 3 || d.OrchestraID != 5 {
		t.Fatalf("unexpected key fields: %+v", d)
	}
	if d.PlayerName != "Ana" || d.SectionName != "Strings" || d.InstrumentName != "Violin" {
		t.Fatalf("joined names lost: %+v", d)
	}
	if d.IsApproved != types.EnrollmentPending {
		t.Fatalf("expected pending state, got %d", d.IsApproved)
	}
}
