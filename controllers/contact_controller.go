package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tourist-safety/models"
	"tourist-safety/services"
)

type ContactController struct {
	contacts *services.ContactService
	logger   *zap.Logger
}

func NewContactController(contacts *services.ContactService, logger *zap.Logger) *ContactController {
	return &ContactController{contacts: contacts, logger: logger}
}

// ListContacts godoc
// @Summary List emergency contacts
// @Tags Contacts
// @Produce json
// @Param profile_id query int true "Tourist profile ID"
// @Success 200 {object} models.Response{data=[]models.EmergencyContact}
// @Failure 404 {object} models.ErrorResponse
// @Router /contacts [get]
func (ctrl *ContactController) ListContacts(c *gin.Context) {
	profileID, err := intQuery(c, "profile_id")
	if err != nil {
		respondError(c, ctrl.logger, err)
		return
	}

	contacts, err := ctrl.contacts.List(c.Request.Context(), profileID)
	if err != nil {
		respondError(c, ctrl.logger, err)
		return
	}

	respond(c, http.StatusOK, "Contacts retrieved", contacts)
}

// CreateContact godoc
// @Summary Add an emergency contact
// @Tags Contacts
// @Accept json
// @Produce json
// @Param request body models.ContactRequest true "Contact"
// @Success 201 {object} models.Response{data=models.EmergencyContact}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /contacts [post]
func (ctrl *ContactController) CreateContact(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBind(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	contact, err := ctrl.contacts.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, ctrl.logger, err)
		return
	}

	respond(c, http.StatusCreated, "Contact created", contact)
}

// GetContact godoc
// @Summary Get an emergency contact
// @Tags Contacts
// @Produce json
// @Param id path int true "Contact ID"
// @Success 200 {object} models.Response{data=models.EmergencyContact}
// @Failure 404 {object} models.ErrorResponse
// @Router /contacts/{id} [get]
func (ctrl *ContactController) GetContact(c *gin.Context) {
	id, err := intParam(c, "id")
	if err != nil {
		respondError(c, ctrl.logger, err)
		return
	}

	contact, err := ctrl.contacts.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, ctrl.logger, err)
		return
	}

	respond(c, http.StatusOK, "Contact retrieved", contact)
}

// UpdateContact godoc
// @Summary Update an emergency contact
// @Tags Contacts
// @Accept json
// @Produce json
// @Param id path int true "Contact ID"
// @Param request body models.ContactPatch true "Fields to change"
// @Success 200 {object} models.Response{data=models.EmergencyContact}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /contacts/{id} [patch]
func (ctrl *ContactController) UpdateContact(c *gin.Context) {
	id, err := intParam(c, "id")
	if err != nil {
		respondError(c, ctrl.logger, err)
		return
	}

	var patch models.ContactPatch
	if err := c.ShouldBind(&patch); err != nil {
		invalidRequest(c, err)
		return
	}

	contact, err := ctrl.contacts.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, ctrl.logger, err)
		return
	}

	respond(c, http.StatusOK, "Contact updated", contact)
}

// DeleteContact godoc
// @Summary Delete an emergency contact
// @Tags Contacts
// @Produce json
// @Param id path int true "Contact ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /contacts/{id} [delete]
func (ctrl *ContactController) DeleteContact(c *gin.Context) {
	id, err := intParam(c, "id")
	if err != nil {
		respondError(c, ctrl.logger, err)
		return
	}

	if err := ctrl.contacts.Delete(c.Request.Context(), id); err != nil {
		respondError(c, ctrl.logger, err)
		return
	}

	respond(c, http.StatusOK, "Contact deleted", nil)
}
