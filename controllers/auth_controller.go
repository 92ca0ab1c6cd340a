package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tourist-safety/models"
	"tourist-safety/services"
)

type AuthController struct {
	auth          *services.AuthService
	publicBaseURL string
	logger        *zap.Logger
}

func NewAuthController(auth *services.AuthService, publicBaseURL string, logger *zap.Logger) *AuthController {
	return &AuthController{auth: auth, publicBaseURL: publicBaseURL, logger: logger}
}

// RegisterTourist godoc
// @Summary Register tourist
// @Description Create an active tourist account with a profile photo
// @Tags Authentication
// @Accept multipart/form-data
// @Produce json
// @Param full_name formData string true "Full name"
// @Param email formData string true "Email"
// @Param password formData string true "Password (min 8 characters)"
// @Param phone formData string false "Phone"
// @Param country formData string false "Country"
// @Param nationality formData string false "Nationality"
// @Param current_location formData string false "Current location"
// @Param profile_photo formData file true "Profile photo"
// @Success 201 {object} models.Response{data=models.TouristRegistration}
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/tourist/register [post]
func (ctrl *AuthController) RegisterTourist(c *gin.Context) {
	var req models.TouristRegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	photo, file, err := formUpload(c, "profile_photo")
	if err != nil {
		respondError(c, ctrl.logger, err)
		return
	}
	defer closeUpload(file)

	result, err := ctrl.auth.RegisterTourist(c.Request.Context(), req, photo)
	if err != nil {
		respondError(c, ctrl.logger, err)
		return
	}
	result.Profile = withPhotoURL(c, ctrl.publicBaseURL, result.Profile)

	respond(c, http.StatusCreated, "Tourist registered successfully", result)
}

// RegisterAuthority godoc
// @Summary Register authority
// @Description Create an authority account that stays inactive until an administrator verifies it
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.AuthorityRegisterRequest true "Authority registration"
// @Success 201 {object} models.Response{data=models.AuthorityRegistration}
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/authority/register [post]
func (ctrl *AuthController) RegisterAuthority(c *gin.Context) {
	var req models.AuthorityRegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	result, err := ctrl.auth.RegisterAuthority(c.Request.Context(), req)
	if err != nil {
		respondError(c, ctrl.logger, err)
		return
	}

	respond(c, http.StatusCreated, "Registration submitted, pending verification", result)
}

// LoginTourist godoc
// @Summary Tourist login
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} models.Response{data=models.LoginResult}
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /auth/tourist/login [post]
func (ctrl *AuthController) LoginTourist(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	result, err := ctrl.auth.LoginTourist(c.Request.Context(), req)
	if err != nil {
		respondError(c, ctrl.logger, err)
		return
	}
	result.Tourist = withPhotoURL(c, ctrl.publicBaseURL, result.Tourist)

	respond(c, http.StatusOK, "Login successful", result)
}

// LoginAuthority godoc
// @Summary Authority login
// @Description Only verified authorities with an active account can log in
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Credentials (official_email or email)"
// @Success 200 {object} models.Response{data=models.LoginResult}
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /auth/authority/login [post]
func (ctrl *AuthController) LoginAuthority(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	result, err := ctrl.auth.LoginAuthority(c.Request.Context(), req)
	if err != nil {
		respondError(c, ctrl.logger, err)
		return
	}

	respond(c, http.StatusOK, "Login successful", result)
}

// AdminLogin godoc
// @Summary Administrator login
// @Description Returns a JWT for the /admin routes
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} models.Response{data=models.AdminLoginResult}
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/admin/login [post]
func (ctrl *AuthController) AdminLogin(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	result, err := ctrl.auth.AdminLogin(c.Request.Context(), req)
	if err != nil {
		respondError(c, ctrl.logger, err)
		return
	}

	respond(c, http.StatusOK, "Login successful", result)
}
