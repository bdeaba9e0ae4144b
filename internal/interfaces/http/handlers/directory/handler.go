// Package directory serves the dropdown reference endpoints.
package directory

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"intervia/internal/application/directory"
	"intervia/internal/shared/logger"
	"intervia/internal/shared/utils"
)

type Handler struct {
	service *directory.Service
	logger  logger.Interface
}

func NewHandler(service *directory.Service) *Handler {
	return &Handler{
		service: service,
		logger:  logger.NewLogger().Named("handler.directory"),
	}
}

func (h *Handler) ListClients(c *gin.Context) {
	clients, err := h.service.ListClients(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "échec du chargement des clients")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "clients chargés", clients)
}

func (h *Handler) ListTechnicians(c *gin.Context) {
	technicians, err := h.service.ListTechnicians(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "échec du chargement des techniciens")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "techniciens chargés", technicians)
}

func (h *Handler) ListChantiers(c *gin.Context) {
	chantiers, err := h.service.ListChantiers(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "échec du chargement des chantiers")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "chantiers chargés", chantiers)
}

func (h *Handler) ListStatuses(c *gin.Context) {
	statuses, err := h.service.ListStatuses(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "échec du chargement des statuts")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "statuts chargés", statuses)
}

func (h *Handler) ListTypes(c *gin.Context) {
	types, err := h.service.ListTypes(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "échec du chargement des types")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "types chargés", types)
}
