package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orchestrahub/orchestra-backend/internal/dto"
	"github.com/orchestrahub/orchestra-backend/internal/services"
)

type ConcertHandler struct {
	concertService services.ConcertService
}

func NewConcertHandler(concertService services.ConcertService) *ConcertHandler {
	return &ConcertHandler{concertService: concertService}
}

func (h *ConcertHandler) GetAll(c *gin.Context) {
	if name := c.Query("name"); name != "" {
		concert, err := h.concertService.GetByName(c.Request.Context(), name)
		if err != nil {
			RespondServiceError(c, err)
			return
		}
		RespondOK(c, concert)
		return
	}
	concerts, err := h.concertService.GetAll(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, concerts)
}

func (h *ConcertHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	concert, err := h.concertService.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, concert)
}

// ListByOrchestra serves GET /orchestras/:id/concerts.
func (h *ConcertHandler) ListByOrchestra(c *gin.Context) {
	orchestraID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	concerts, err := h.concertService.ListByOrchestra(c.Request.Context(), orchestraID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, concerts)
}

func (h *ConcertHandler) Create(c *gin.Context) {
	var in dto.CreateConcertDto
	if err := c.ShouldBindJSON(&in); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	concert, err := h.concertService.Add(c.Request.Context(), &in)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, concert)
}

func (h *ConcertHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var in dto.UpdateConcertDto
	if err := c.ShouldBindJSON(&in); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	if err := h.concertService.Update(c.Request.Context(), id, &in); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"updated": true})
}

func (h *ConcertHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.concertService.Delete(c.Request.Context(), id); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
