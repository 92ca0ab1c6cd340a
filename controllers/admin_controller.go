package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tourist-safety/models"
	"tourist-safety/services"
)

type AdminController struct {
	admin  *services.AdminService
	logger *zap.Logger
}

func NewAdminController(admin *services.AdminService, logger *zap.Logger) *AdminController {
	return &AdminController{admin: admin, logger: logger}
}

// ListAuthorities godoc
// @Summary List authority registrations
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param status query string false "pending (default), verified or all"
// @Success 200 {object} models.Response{data=[]models.AuthorityProfile}
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/authorities [get]
func (ctrl *AdminController) ListAuthorities(c *gin.Context) {
	profiles, err := ctrl.admin.ListAuthorities(c.Request.Context(), c.Query("status"))
	if err != nil {
		respondError(c, ctrl.logger, err)
		return
	}

	respond(c, http.StatusOK, "Authorities retrieved", profiles)
}

// VerifyAuthorities godoc
// @Summary Verify authorities
// @Description Marks the selected authority profiles verified and activates their accounts
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.VerifyAuthoritiesRequest true "Profile IDs"
// @Success 200 {object} models.Response{data=models.VerifyResult}
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/authorities/verify [post]
func (ctrl *AdminController) VerifyAuthorities(c *gin.Context) {
	var req models.VerifyAuthoritiesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	result, err := ctrl.admin.VerifyAuthorities(c.Request.Context(), req.IDs)
	if err != nil {
		respondError(c, ctrl.logger, err)
		return
	}

	respond(c, http.StatusOK, "Authorities verified", result)
}

// DeleteTourist godoc
// @Summary Delete tourist
// @Description Removes the profile, its account, contacts, incidents and photo
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path int true "Tourist profile ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/tourists/{id} [delete]
func (ctrl *AdminController) DeleteTourist(c *gin.Context) {
	id, err := intParam(c, "id")
	if err != nil {
		respondError(c, ctrl.logger, err)
		return
	}

	if err := ctrl.admin.DeleteTourist(c.Request.Context(), id); err != nil {
		respondError(c, ctrl.logger, err)
		return
	}

	respond(c, http.StatusOK, "Tourist deleted", nil)
}
