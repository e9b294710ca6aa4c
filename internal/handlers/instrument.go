package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orchestrahub/orchestra-backend/internal/dto"
	"github.com/orchestrahub/orchestra-backend/internal/services"
)

type InstrumentHandler struct {
	instrumentService services.InstrumentService
}

func NewInstrumentHandler(instrumentService services.InstrumentService) *InstrumentHandler {
	return &InstrumentHandler{instrumentService: instrumentService}
}

func (h *InstrumentHandler) GetAll(c *gin.Context) {
	if name := c.Query("name"); name != "" {
		instrument, err := h.instrumentService.GetByName(c.Request.Context(), name)
		if err != nil {
			RespondServiceError(c, err)
			return
		}
		RespondOK(c, instrument)
		return
	}
	instruments, err := h.instrumentService.GetAll(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, instruments)
}

func (h *InstrumentHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	instrument, err := h.instrumentService.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, instrument)
}

// ListBySection serves GET /sections/:id/instruments.
func (h *InstrumentHandler) ListBySection(c *gin.Context) {
	sectionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	instruments, err := h.instrumentService.ListBySection(c.Request.Context(), sectionID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, instruments)
}

func (h *InstrumentHandler) Create(c *gin.Context) {
	var in dto.CreateInstrumentDto
	if err := c.ShouldBindJSON(&in); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	instrument, err := h.instrumentService.Add(c.Request.Context(), &in)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, instrument)
}

func (h *InstrumentHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var in dto.UpdateInstrumentDto
	if err := c.ShouldBindJSON(&in); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	if err := h.instrumentService.Update(c.Request.Context(), id, &in); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"updated": true})
}

func (h *InstrumentHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.instrumentService.Delete(c.Request.Context(), id); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
