package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orchestrahub/orchestra-backend/internal/dto"
	"github.com/orchestrahub/orchestra-backend/internal/services"
)

type EnrollmentHandler struct {
	enrollmentService services.EnrollmentService
}

func NewEnrollmentHandler(enrollmentService services.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentService: enrollmentService}
}

// Enroll files a player's request to join an orchestra.
func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	var in dto.EnrollDto
	if err := c.ShouldBindJSON(&in); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	enrollment, err := h.enrollmentService.Enroll(c.Request.Context(), &in)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, enrollment)
}

// ListPending serves GET /orchestras/:id/enrollments/pending.
func (h *EnrollmentHandler) ListPending(c *gin.Context) {
	orchestraID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	pending, err := h.enrollmentService.ListPending(c.Request.Context(), orchestraID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, pending)
}

// ListByPlayer serves GET /players/:id/enrollments.
func (h *EnrollmentHandler) ListByPlayer(c *gin.Context) {
	playerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	enrollments, err := h.enrollmentService.ListByPlayer(c.Request.Context(), playerID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, enrollments)
}

func (h *EnrollmentHandler) Approve(c *gin.Context) {
	orchestraID, playerID, ok := h.pairParams(c)
	if !ok {
		return
	}
	if err := h.enrollmentService.Approve(c.Request.Context(), orchestraID, playerID); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"approved": true})
}

func (h *EnrollmentHandler) Materialize(c *gin.Context) {
	orchestraID, playerID, ok := h.pairParams(c)
	if !ok {
		return
	}
	player, err := h.enrollmentService.Materialize(c.Request.Context(), orchestraID, playerID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, player)
}

// Accept approves and materializes in one call; this is the endpoint the
// conductor-facing view uses.
func (h *EnrollmentHandler) Accept(c *gin.Context) {
	orchestraID, playerID, ok := h.pairParams(c)
	if !ok {
		return
	}
	player, err := h.enrollmentService.Accept(c.Request.Context(), orchestraID, playerID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, player)
}

func (h *EnrollmentHandler) pairParams(c *gin.Context) (orchestraID, playerID uint, ok bool) {
	orchestraID, ok = parseIDParam(c, "id")
	if !ok {
		return 0, 0, false
	}
	playerID, ok = parseIDParam(c, "playerId")
	if !ok {
		return 0, 0, false
	}
	return orchestraID, playerID, true
}
