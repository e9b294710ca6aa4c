package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orchestrahub/orchestra-backend/internal/dto"
	"github.com/orchestrahub/orchestra-backend/internal/services"
)

type ConductorHandler struct {
	conductorService services.ConductorService
}

func NewConductorHandler(conductorService services.ConductorService) *ConductorHandler {
	return &ConductorHandler{conductorService: conductorService}
}

func (h *ConductorHandler) GetAll(c *gin.Context) {
	conductors, err := h.conductorService.GetAll(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, conductors)
}

func (h *ConductorHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	conductor, err := h.conductorService.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, conductor)
}

func (h *ConductorHandler) Create(c *gin.Context) {
	var in dto.CreateConductorDto
	if err := c.ShouldBindJSON(&in); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	conductor, err := h.conductorService.Add(c.Request.Context(), &in)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, conductor)
}

func (h *ConductorHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var in dto.UpdateConductorDto
	if err := c.ShouldBindJSON(&in); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	if err := h.conductorService.Update(c.Request.Context(), id, &in); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"updated": true})
}

func (h *ConductorHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.conductorService.Delete(c.Request.Context(), id); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
