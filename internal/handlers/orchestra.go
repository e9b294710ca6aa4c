package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orchestrahub/orchestra-backend/internal/dto"
	"github.com/orchestrahub/orchestra-backend/internal/services"
)

type OrchestraHandler struct {
	orchestraService services.OrchestraService
}

func NewOrchestraHandler(orchestraService services.OrchestraService) *OrchestraHandler {
	return &OrchestraHandler{orchestraService: orchestraService}
}

func (h *OrchestraHandler) GetAll(c *gin.Context) {
	// ?name= narrows to a single orchestra by exact name.
	if name := c.Query("name"); name != "" {
		orchestra, err := h.orchestraService.GetByName(c.Request.Context(), name)
		if err != nil {
			RespondServiceError(c, err)
			return
		}
		RespondOK(c, orchestra)
		return
	}
	orchestras, err := h.orchestraService.GetAll(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, orchestras)
}

func (h *OrchestraHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	orchestra, err := h.orchestraService.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, orchestra)
}

func (h *OrchestraHandler) Create(c *gin.Context) {
	var in dto.CreateOrchestraDto
	if err := c.ShouldBindJSON(&in); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	orchestra, err := h.orchestraService.Add(c.Request.Context(), &in)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, orchestra)
}

func (h *OrchestraHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var in dto.UpdateOrchestraDto
	if err := c.ShouldBindJSON(&in); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	if err := h.orchestraService.Update(c.Request.Context(), id, &in); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"updated": true})
}

func (h *OrchestraHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.orchestraService.Delete(c.Request.Context(), id); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
