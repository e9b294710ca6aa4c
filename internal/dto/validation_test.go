package dto

import (
	"errors"
	"strings"
	"testing"

	"github.com/orchestrahub/orchestra-backend/internal/domain"
)

func fieldErrors(t *testing.T, err error) []FieldError {
	t.Helper()
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T (%v)", err, err)
	}
	return ve.Fields
}

func hasField(fields []FieldError, name string) bool {
	for _, f := range fields {
		if f.Field == name {
			return true
		}
	}
	return false
}

func TestCreateUserDto_Validate_AcceptsGmailAddress(t *testing.T) {
	d := CreateUserDto{Username: "ana", Password: "secret", Email: "a.b+1@gmail.com", Role: 2}
	if err := d.Validate(); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
}

func TestCreateUserDto_Validate_RejectsNonGmailAndMalformed(t *testing.T) {
	cases := []string{"a@yahoo.com", "not-an-email", "@gmail.com", "a@gmail.com.evil"}
	for _, email := range cases {
		d := CreateUserDto{Username: "ana", Password: "secret", Email: email}
		err := d.Validate()
		if err == nil {
			t.Fatalf("expected rejection for %q", email)
		}
		if !hasField(fieldErrors(t, err), "Email") {
			t.Fatalf("expected Email field error for %q", email)
		}
	}
}

func TestCreateUserDto_Validate_CollectsAllMissingFields(t *testing.T) {
	d := CreateUserDto{}
	fields := fieldErrors(t, d.Validate())
	for _, want := range []string{"Username", "Password", "Email"} {
		if !hasField(fields, want) {
			t.Fatalf("expected %s among field errors, got %+v", want, fields)
		}
	}
}

func TestCreateUserDto_Validate_EnforcesLengthCaps(t *testing.T) {
	long := strings.Repeat("x", 51)
	d := CreateUserDto{Username: long, Password: "secret", Email: "a@gmail.com"}
	if !hasField(fieldErrors(t, d.Validate()), "Username") {
		t.Fatalf("expected Username length rejection")
	}
}

func TestCreateConcertDto_Validate_LengthLimits(t *testing.T) {
	ok := CreateConcertDto{Name: strings.Repeat("n", 50), Description: strings.Repeat("d", 255)}
	if err := ok.Validate(); err != nil {
		t.Fatalf("expected boundary lengths to pass, got %v", err)
	}

	bad := CreateConcertDto{Name: strings.Repeat("n", 51), Description: strings.Repeat("d", 256)}
	fields := fieldErrors(t, bad.Validate())
	if !hasField(fields, "Name") || !hasField(fields, "Description") {
		t.Fatalf("expected Name and Description rejections, got %+v", fields)
	}
}

func TestCreatePlayerDto_Validate_ScoreZeroIsPresent(t *testing.T) {
	zero := 0.0
	d := CreatePlayerDto{UserID: 1, Name: "Ana", Score: &zero}
	if err := d.Validate(); err != nil {
		t.Fatalf("score 0.0 must be accepted, got %v", err)
	}

	missing := CreatePlayerDto{UserID: 1, Name: "Ana"}
	if !hasField(fieldErrors(t, missing.Validate()), "Score") {
		t.Fatalf("expected Score required error")
	}
}

func TestEnrollDto_Validate_RequiresAllIdentifiers(t *testing.T) {
	d := EnrollDto{}
	fields := fieldErrors(t, d.Validate())
	for _, want := range []string{"PlayerID", "OrchestraID", "SectionID", "InstrumentID"} {
		if !hasField(fields, want) {
			t.Fatalf("expected %s among field errors, got %+v", want, fields)
		}
	}

	neg := EnrollDto{PlayerID: 1, OrchestraID: 1, SectionID: 1, InstrumentID: 1, Experience: -2}
	if !hasField(fieldErrors(t, neg.Validate()), "Experience") {
		t.Fatalf("expected Experience rejection for negative value")
	}
}

func TestValidationError_MatchesSentinel(t *testing.T) {
	d := EnrollDto{}
	err := d.Validate()
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("validation failures must match domain.ErrValidation, got %v", err)
	}
}
