package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tourist-safety/models"
	"tourist-safety/services"
)

type IncidentController struct {
	incidents *services.IncidentService
	logger    *zap.Logger
}

func NewIncidentController(incidents *services.IncidentService, logger *zap.Logger) *IncidentController {
	return &IncidentController{incidents: incidents, logger: logger}
}

// Panic godoc
// @Summary Raise an SOS alert
// @Description Records an unresolved incident at the tourist's position and notifies responders
// @Tags Incidents
// @Accept json
// @Produce json
// @Param request body models.SOSRequest true "SOS"
// @Success 201 {object} models.Response{data=models.SOSAlert}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /incidents/panic [post]
func (ctrl *IncidentController) Panic(c *gin.Context) {
	var req models.SOSRequest
	if err := c.ShouldBind(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	alert, err := ctrl.incidents.CreateSOS(c.Request.Context(), req)
	if err != nil {
		respondError(c, ctrl.logger, err)
		return
	}

	respond(c, http.StatusCreated, "SOS alert sent", alert)
}

// ListAlerts godoc
// @Summary Active SOS alerts
// @Description Unresolved incidents, newest first, with tourist contact details
// @Tags Incidents
// @Produce json
// @Success 200 {object} models.Response{data=[]models.SOSAlert}
// @Router /alerts [get]
func (ctrl *IncidentController) ListAlerts(c *gin.Context) {
	alerts, err := ctrl.incidents.ListAlerts(c.Request.Context())
	if err != nil {
		respondError(c, ctrl.logger, err)
		return
	}

	respond(c, http.StatusOK, "Alerts retrieved", alerts)
}

// ReportIncident godoc
// @Summary Report an incident
// @Tags Incidents
// @Accept json
// @Produce json
// @Param request body models.IncidentRequest true "Incident"
// @Success 201 {object} models.Response{data=models.Incident}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /incidents [post]
func (ctrl *IncidentController) ReportIncident(c *gin.Context) {
	var req models.IncidentRequest
	if err := c.ShouldBind(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	incident, err := ctrl.incidents.Report(c.Request.Context(), req)
	if err != nil {
		respondError(c, ctrl.logger, err)
		return
	}

	respond(c, http.StatusCreated, "Incident reported", incident)
}

// ListIncidents godoc
// @Summary List incidents
// @Tags Incidents
// @Produce json
// @Param resolved query bool false "Filter by resolution"
// @Success 200 {object} models.Response{data=[]models.Incident}
// @Failure 400 {object} models.ErrorResponse
// @Router /incidents [get]
func (ctrl *IncidentController) ListIncidents(c *gin.Context) {
	incidents, err := ctrl.incidents.List(c.Request.Context(), c.Query("resolved"))
	if err != nil {
		respondError(c, ctrl.logger, err)
		return
	}

	respond(c, http.StatusOK, "Incidents retrieved", incidents)
}

// GetIncident godoc
// @Summary Get incident
// @Tags Incidents
// @Produce json
// @Param id path int true "Incident ID"
// @Success 200 {object} models.Response{data=models.Incident}
// @Failure 404 {object} models.ErrorResponse
// @Router /incidents/{id} [get]
func (ctrl *IncidentController) GetIncident(c *gin.Context) {
	id, err := intParam(c, "id")
	if err != nil {
		respondError(c, ctrl.logger, err)
		return
	}

	incident, err := ctrl.incidents.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, ctrl.logger, err)
		return
	}

	respond(c, http.StatusOK, "Incident retrieved", incident)
}

// ResolveIncident godoc
// @Summary Resolve incident
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path int true "Incident ID"
// @Success 200 {object} models.Response{data=models.Incident}
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/incidents/{id}/resolve [patch]
func (ctrl *IncidentController) ResolveIncident(c *gin.Context) {
	id, err := intParam(c, "id")
	if err != nil {
		respondError(c, ctrl.logger, err)
		return
	}

	incident, err := ctrl.incidents.Resolve(c.Request.Context(), id)
	if err != nil {
		respondError(c, ctrl.logger, err)
		return
	}

	respond(c, http.StatusOK, "Incident resolved", incident)
}
