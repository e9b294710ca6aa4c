package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/orchestrahub/orchestra-backend/internal/domain"
	"github.com/orchestrahub/orchestra-backend/internal/dto"
)

func performWithError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/x", func(c *gin.Context) {
		RespondServiceError(c, err)
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	router.ServeHTTP(w, req)
	return w
}

func TestRespondServiceError_StatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{fmt.Errorf("row gone: %w", domain.ErrNotFound), http.StatusNotFound, "not_found"},
		{fmt.Errorf("pair taken: %w", domain.ErrConflict), http.StatusConflict, "conflict"},
		{errors.New("driver exploded"), http.StatusInternalServerError, "storage_unavailable"},
	}
	for _, tc := range cases {
		w := performWithError(t, tc.err)
		if w.Code != tc.status {
			t.Fatalf("%v: status %d, want %d", tc.err, w.Code, tc.status)
		}
		var envelope ErrorEnvelope
		if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if envelope.Error.Code != tc.code {
			t.Fatalf("%v: code %q, want %q", tc.err, envelope.Error.Code, tc.code)
		}
	}
}

func TestRespondServiceError_UnknownErrorsDoNotLeak(t *testing.T) {
	w := performWithError(t, errors.New("dial tcp 10.0.0.5: connection refused"))
	var envelope ErrorEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if envelope.Error.Message != "storage unavailable" {
		t.Fatalf("internal detail leaked: %q", envelope.Error.Message)
	}
}

func TestRespondServiceError_ValidationCarriesFields(t *testing.T) {
	w := performWithError(t, &dto.ValidationError{Fields: []dto.FieldError{
		{Field: "Name", Message: "Name is required"},
		{Field: "Score", Message: "Score is required"},
	}})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", w.Code)
	}
	var envelope ErrorEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(envelope.Error.Fields) != 2 {
		t.Fatalf("expected 2 field errors, got %+v", envelope.Error.Fields)
	}
	if envelope.Error.Fields[0].Field != "Name" {
		t.Fatalf("unexpected first field: %+v", envelope.Error.Fields[0])
	}
}

func TestParseIDParam_RejectsBadValues(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/things/:id", func(c *gin.Context) {
		id, ok := parseIDParam(c, "id")
		if !ok {
			return
		}
		RespondOK(c, gin.H{"id": id})
	})

	for raw, want := range map[string]int{
		"42":  http.StatusOK,
		"0":   http.StatusBadRequest,
		"-1":  http.StatusBadRequest,
		"abc": http.StatusBadRequest,
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/things/"+raw, nil)
		router.ServeHTTP(w, req)
		if w.Code != want {
			t.Fatalf("id %q: status %d, want %d", raw, w.Code, want)
		}
	}
}
