// Package intervention serves the legacy dashboard endpoints. Response
// shapes match the historical frontend contract exactly: storage failures
// degrade to 500 with an empty or zeroed payload, and zero-row updates are
// soft {success:false} outcomes, never HTTP errors.
package intervention

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	appdto "intervia/internal/application/intervention/dto"
	"intervia/internal/application/intervention/usecases"
	domain "intervia/internal/domain/intervention"
	"intervia/internal/shared/errors"
	"intervia/internal/shared/logger"
	"intervia/internal/shared/utils"
)

type Handler struct {
	createUC *usecases.CreateInterventionUseCase
	listUC   usecases.ListInterventionsExecutor
	statsUC  usecases.GetStatsExecutor
	assignUC *usecases.AssignTechnicianUseCase
	dateUC   *usecases.AssignDateUseCase
	getUC    *usecases.GetInterventionUseCase
	deleteUC *usecases.DeleteInterventionUseCase
	logger   logger.Interface
}

func NewHandler(
	createUC *usecases.CreateInterventionUseCase,
	listUC usecases.ListInterventionsExecutor,
	statsUC usecases.GetStatsExecutor,
	assignUC *usecases.AssignTechnicianUseCase,
	dateUC *usecases.AssignDateUseCase,
	getUC *usecases.GetInterventionUseCase,
	deleteUC *usecases.DeleteInterventionUseCase,
) *Handler {
	return &Handler{
		createUC: createUC,
		listUC:   listUC,
		statsUC:  statsUC,
		assignUC: assignUC,
		dateUC:   dateUC,
		getUC:    getUC,
		deleteUC: deleteUC,
		logger:   logger.NewLogger().Named("handler.intervention"),
	}
}

// GetStats handles GET /api/stats. A storage failure returns a zeroed
// payload so the dashboard header still renders.
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.statsUC.Execute(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, appdto.StatsDTO{})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ListUrgent handles GET /api/urgent-all.
func (h *Handler) ListUrgent(c *gin.Context) {
	query := h.baseListQuery(c)
	query.Kind = domain.KindUrgentAll
	query.Missing = c.Query("missing")
	query.TimeFilter = c.Query("timeFilter")

	h.respondList(c, query)
}

// ListRecent handles GET /api/all-recent.
func (h *Handler) ListRecent(c *gin.Context) {
	query := h.baseListQuery(c)
	query.Kind = domain.KindAllRecent
	query.Priority = c.Query("priority")
	query.Date = c.Query("date")

	if raw := c.Query("technician"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil && id > 0 {
			techID := uint(id)
			query.TechnicianID = &techID
		}
	}

	h.respondList(c, query)
}

func (h *Handler) baseListQuery(c *gin.Context) usecases.ListInterventionsQuery {
	p := utils.ParsePagination(c)

	return usecases.ListInterventionsQuery{
		Search:    c.Query("search"),
		Status:    c.Query("status"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
		Page:      p.Page,
		Limit:     p.Limit,
	}
}

func (h *Handler) respondList(c *gin.Context, query usecases.ListInterventionsQuery) {
	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ListResponse{Data: []appdto.InterventionDTO{}})
		return
	}

	c.JSON(http.StatusOK, ListResponse{Data: result.Items, Pagination: result.Pagination})
}

// AssignTechnician handles POST /api/assign-technician.
func (h *Handler) AssignTechnician(c *gin.Context) {
	var req AssignTechnicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ActionResponse{Success: false, Message: "interventionId et technicianId sont requis"})
		return
	}

	result, err := h.assignUC.Execute(c.Request.Context(), usecases.AssignTechnicianCommand{
		InterventionID: req.InterventionID,
		TechnicianID:   req.TechnicianID,
	})
	if err != nil {
		h.respondActionError(c, err)
		return
	}

	if !result.Found {
		c.JSON(http.StatusOK, ActionResponse{Success: false, Message: "Intervention introuvable"})
		return
	}

	c.JSON(http.StatusOK, ActionResponse{Success: true, Message: "Technicien affecté"})
}

// AssignDate handles POST /api/assign-date.
func (h *Handler) AssignDate(c *gin.Context) {
	var req AssignDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ActionResponse{Success: false, Message: "interventionId et date sont requis"})
		return
	}

	result, err := h.dateUC.Execute(c.Request.Context(), usecases.AssignDateCommand{
		InterventionID: req.InterventionID,
		Date:           req.Date,
		Time:           req.Time,
	})
	if err != nil {
		h.respondActionError(c, err)
		return
	}

	if !result.Found {
		c.JSON(http.StatusOK, ActionResponse{Success: false, Message: "Intervention introuvable"})
		return
	}

	c.JSON(http.StatusOK, ActionResponse{Success: true, Message: "Date planifiée"})
}

// Create handles POST /api/create-intervention (multipart form).
func (h *Handler) Create(c *gin.Context) {
	cmd := usecases.CreateInterventionCommand{
		Numero:      c.PostForm("numero"),
		Titre:       c.PostForm("titre"),
		Description: c.PostForm("description"),
		Adresse:     c.PostForm("adresse"),
		Ville:       c.PostForm("ville"),
		Batiment:    c.PostForm("batiment"),
		Etage:       c.PostForm("etage"),
		Appartement: c.PostForm("appartement"),
		Priorite:    c.PostForm("priorite"),
		StatusID:    formUint(c, "status_id"),
		TypeID:      formUint(c, "type_id"),
		ClientID:    formUint(c, "client_id"),
		ChantierID:  formUint(c, "chantier_id"),
		Date:        c.PostForm("date"),
		Heure:       c.PostForm("heure"),
	}
	if id := formUint(c, "technicien_id"); id > 0 {
		cmd.TechnicienID = &id
	}

	result, err := h.createUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		if errors.IsValidationError(err) || errors.IsConflictError(err) {
			c.JSON(http.StatusBadRequest, ActionResponse{Success: false, Message: errors.GetAppError(err).Message})
			return
		}
		c.JSON(http.StatusInternalServerError, ActionResponse{Success: false, Message: "Erreur interne du serveur"})
		return
	}

	c.JSON(http.StatusCreated, CreateResponse{
		Success:        true,
		InterventionID: result.InterventionID,
		PublicNumber:   result.PublicNumber,
	})
}

// GetByNumber handles GET /api/interventions/:number.
func (h *Handler) GetByNumber(c *gin.Context) {
	result, err := h.getUC.ByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		if errors.IsNotFoundError(err) {
			c.JSON(http.StatusNotFound, ActionResponse{Success: false, Message: "Intervention introuvable"})
			return
		}
		c.JSON(http.StatusInternalServerError, ActionResponse{Success: false, Message: "Erreur interne du serveur"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetByToken handles GET /api/public/:token, the unauthenticated share view.
func (h *Handler) GetByToken(c *gin.Context) {
	result, err := h.getUC.ByToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		if errors.IsNotFoundError(err) {
			c.JSON(http.StatusNotFound, ActionResponse{Success: false, Message: "Intervention introuvable"})
			return
		}
		c.JSON(http.StatusInternalServerError, ActionResponse{Success: false, Message: "Erreur interne du serveur"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// Delete handles DELETE /api/interventions/:id.
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, ActionResponse{Success: false, Message: "identifiant invalide"})
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), uint(id)); err != nil {
		if errors.IsNotFoundError(err) {
			c.JSON(http.StatusNotFound, ActionResponse{Success: false, Message: "Intervention introuvable"})
			return
		}
		c.JSON(http.StatusInternalServerError, ActionResponse{Success: false, Message: "Erreur interne du serveur"})
		return
	}

	c.JSON(http.StatusOK, ActionResponse{Success: true, Message: "Intervention supprimée"})
}

func (h *Handler) respondActionError(c *gin.Context, err error) {
	if errors.IsValidationError(err) {
		c.JSON(http.StatusBadRequest, ActionResponse{Success: false, Message: errors.GetAppError(err).Message})
		return
	}
	c.JSON(http.StatusInternalServerError, ActionResponse{Success: false, Message: "Erreur interne du serveur"})
}

func formUint(c *gin.Context, field string) uint {
	v, err := strconv.ParseUint(c.PostForm(field), 10, 32)
	if err != nil {
		return 0
	}
	return uint(v)
}
