package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tourist-safety/models"
	"tourist-safety/services"
)

type ProfileController struct {
	profiles      *services.ProfileService
	publicBaseURL string
	logger        *zap.Logger
}

func NewProfileController(profiles *services.ProfileService, publicBaseURL string, logger *zap.Logger) *ProfileController {
	return &ProfileController{profiles: profiles, publicBaseURL: publicBaseURL, logger: logger}
}

// GetTouristProfile godoc
// @Summary Get tourist profile
// @Description Tourist profile of an account, with emergency contacts
// @Tags Profile
// @Produce json
// @Param user_id query int true "Account ID"
// @Success 200 {object} models.Response{data=models.TouristProfile}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /profile/tourist [get]
func (ctrl *ProfileController) GetTouristProfile(c *gin.Context) {
	userID, err := intQuery(c, "user_id")
	if err != nil {
		respondError(c, ctrl.logger, err)
		return
	}

	profile, err := ctrl.profiles.GetTourist(c.Request.Context(), userID)
	if err != nil {
		respondError(c, ctrl.logger, err)
		return
	}

	respond(c, http.StatusOK, "Profile retrieved", withPhotoURL(c, ctrl.publicBaseURL, profile))
}

// UpdateTouristProfile godoc
// @Summary Update tourist profile
// @Description Partial update; omitted fields are left unchanged. An empty date clears it.
// @Tags Profile
// @Accept multipart/form-data
// @Produce json
// @Param user_id formData int true "Account ID"
// @Param full_name formData string false "Full name"
// @Param email formData string false "Email"
// @Param phone formData string false "Phone"
// @Param phone_number formData string false "Phone (alias)"
// @Param country formData string false "Country"
// @Param nationality formData string false "Nationality"
// @Param current_location formData string false "Current location"
// @Param blockchain_id formData string false "Blockchain ID"
// @Param from_address formData string false "Travelling from"
// @Param to_address formData string false "Travelling to"
// @Param arrival_date formData string false "Arrival date (YYYY-MM-DD)"
// @Param departure_date formData string false "Departure date (YYYY-MM-DD)"
// @Param hotel_name formData string false "Hotel name"
// @Param hotel_address formData string false "Hotel address"
// @Param password formData string false "New password"
// @Param confirm_password formData string false "New password confirmation"
// @Param profile_photo formData file false "New profile photo"
// @Success 200 {object} models.Response{data=models.TouristProfile}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /profile/tourist [put]
func (ctrl *ProfileController) UpdateTouristProfile(c *gin.Context) {
	var patch models.TouristProfilePatch
	if err := c.ShouldBind(&patch); err != nil {
		invalidRequest(c, err)
		return
	}

	photo, file, err := formUpload(c, "profile_photo")
	if err != nil {
		respondError(c, ctrl.logger, err)
		return
	}
	defer closeUpload(file)

	profile, err := ctrl.profiles.UpdateTourist(c.Request.Context(), patch, photo)
	if err != nil {
		respondError(c, ctrl.logger, err)
		return
	}

	respond(c, http.StatusOK, "Profile updated successfully", withPhotoURL(c, ctrl.publicBaseURL, profile))
}

// GetAuthorityProfile godoc
// @Summary Get authority profile
// @Tags Profile
// @Produce json
// @Param user_id query int true "Account ID"
// @Success 200 {object} models.Response{data=models.AuthorityProfile}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /profile/authority [get]
func (ctrl *ProfileController) GetAuthorityProfile(c *gin.Context) {
	userID, err := intQuery(c, "user_id")
	if err != nil {
		respondError(c, ctrl.logger, err)
		return
	}

	profile, err := ctrl.profiles.GetAuthority(c.Request.Context(), userID)
	if err != nil {
		respondError(c, ctrl.logger, err)
		return
	}

	respond(c, http.StatusOK, "Profile retrieved", profile)
}

// UpdateAuthorityProfile godoc
// @Summary Update authority profile
// @Description Partial update. Verification status cannot be changed here.
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body models.AuthorityProfilePatch true "Fields to change"
// @Success 200 {object} models.Response{data=models.AuthorityProfile}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /profile/authority [put]
func (ctrl *ProfileController) UpdateAuthorityProfile(c *gin.Context) {
	var patch models.AuthorityProfilePatch
	if err := c.ShouldBind(&patch); err != nil {
		invalidRequest(c, err)
		return
	}

	profile, err := ctrl.profiles.UpdateAuthority(c.Request.Context(), patch)
	if err != nil {
		respondError(c, ctrl.logger, err)
		return
	}

	respond(c, http.StatusOK, "Profile updated successfully", profile)
}

// ListTourists godoc
// @Summary List tourist profiles
// @Tags Profile
// @Produce json
// @Success 200 {object} models.Response{data=[]models.TouristProfile}
// @Router /profiles [get]
func (ctrl *ProfileController) ListTourists(c *gin.Context) {
	profiles, err := ctrl.profiles.ListTourists(c.Request.Context())
	if err != nil {
		respondError(c, ctrl.logger, err)
		return
	}

	out := make([]*models.TouristProfile, 0, len(profiles))
	for i := range profiles {
		out = append(out, withPhotoURL(c, ctrl.publicBaseURL, &profiles[i]))
	}
	respond(c, http.StatusOK, "Profiles retrieved", out)
}

// GetTourist godoc
// @Summary Get tourist profile by ID
// @Tags Profile
// @Produce json
// @Param id path int true "Profile ID"
// @Success 200 {object} models.Response{data=models.TouristProfile}
// @Failure 404 {object} models.ErrorResponse
// @Router /profiles/{id} [get]
func (ctrl *ProfileController) GetTourist(c *gin.Context) {
	id, err := intParam(c, "id")
	if err != nil {
		respondError(c, ctrl.logger, err)
		return
	}

	profile, err := ctrl.profiles.GetTouristByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, ctrl.logger, err)
		return
	}

	respond(c, http.StatusOK, "Profile retrieved", withPhotoURL(c, ctrl.publicBaseURL, profile))
}
