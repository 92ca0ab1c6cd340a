package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tourist-safety/models"
	"tourist-safety/services"
)

type PlaceController struct {
	places *services.PlaceService
	logger *zap.Logger
}

func NewPlaceController(places *services.PlaceService, logger *zap.Logger) *PlaceController {
	return &PlaceController{places: places, logger: logger}
}

// Geofence godoc
// @Summary Places near a point
// @Description Places inside the square of half-width radius degrees (default 0.01) around lat/lng. Values may be numbers or numeric strings.
// @Tags Geofence
// @Accept json
// @Produce json
// @Param request body models.GeofenceRequest true "Point and radius"
// @Success 200 {object} map[string][]models.Place
// @Failure 400 {object} models.ErrorResponse
// @Router /geofence [post]
func (ctrl *PlaceController) Geofence(c *gin.Context) {
	var req models.GeofenceRequest
	if err := c.ShouldBind(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	places, err := ctrl.places.FindNearby(c.Request.Context(), string(req.Lat), string(req.Lng), string(req.Radius))
	if err != nil {
		respondError(c, ctrl.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"nearby_places": places})
}

// NearbyPlaces godoc
// @Summary Places near a point
// @Tags Geofence
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radius query number false "Half-width in degrees" default(0.01)
// @Success 200 {object} models.Response{data=[]models.Place}
// @Failure 400 {object} models.ErrorResponse
// @Router /places/nearby [get]
func (ctrl *PlaceController) NearbyPlaces(c *gin.Context) {
	places, err := ctrl.places.FindNearby(c.Request.Context(), c.Query("lat"), c.Query("lng"), c.Query("radius"))
	if err != nil {
		respondError(c, ctrl.logger, err)
		return
	}

	respond(c, http.StatusOK, "Nearby places retrieved", places)
}

// ReverseGeocode godoc
// @Summary Reverse geocode
// @Description Returns a placeholder address for the point
// @Tags Geofence
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Success 200 {object} models.Response{data=geofence.Address}
// @Failure 400 {object} models.ErrorResponse
// @Router /geocode/reverse [get]
func (ctrl *PlaceController) ReverseGeocode(c *gin.Context) {
	addr, err := ctrl.places.ReverseGeocode(c.Query("lat"), c.Query("lng"))
	if err != nil {
		respondError(c, ctrl.logger, err)
		return
	}

	respond(c, http.StatusOK, "Address resolved", addr)
}

// ListPlaces godoc
// @Summary List places
// @Tags Places
// @Produce json
// @Param type query string false "hospital, restaurant or attraction"
// @Success 200 {object} models.Response{data=[]models.Place}
// @Failure 400 {object} models.ErrorResponse
// @Router /places [get]
func (ctrl *PlaceController) ListPlaces(c *gin.Context) {
	places, err := ctrl.places.List(c.Request.Context(), c.Query("type"))
	if err != nil {
		respondError(c, ctrl.logger, err)
		return
	}

	respond(c, http.StatusOK, "Places retrieved", places)
}

// GetPlace godoc
// @Summary Get place
// @Tags Places
// @Produce json
// @Param id path int true "Place ID"
// @Success 200 {object} models.Response{data=models.Place}
// @Failure 404 {object} models.ErrorResponse
// @Router /places/{id} [get]
func (ctrl *PlaceController) GetPlace(c *gin.Context) {
	id, err := intParam(c, "id")
	if err != nil {
		respondError(c, ctrl.logger, err)
		return
	}

	place, err := ctrl.places.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, ctrl.logger, err)
		return
	}

	respond(c, http.StatusOK, "Place retrieved", place)
}

// CreatePlace godoc
// @Summary Create place
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.PlaceRequest true "Place"
// @Success 201 {object} models.Response{data=models.Place}
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/places [post]
func (ctrl *PlaceController) CreatePlace(c *gin.Context) {
	var req models.PlaceRequest
	if err := c.ShouldBind(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	place, err := ctrl.places.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, ctrl.logger, err)
		return
	}

	respond(c, http.StatusCreated, "Place created", place)
}

// UpdatePlace godoc
// @Summary Update place
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Place ID"
// @Param request body models.PlacePatch true "Fields to change"
// @Success 200 {object} models.Response{data=models.Place}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/places/{id} [patch]
func (ctrl *PlaceController) UpdatePlace(c *gin.Context) {
	id, err := intParam(c, "id")
	if err != nil {
		respondError(c, ctrl.logger, err)
		return
	}

	var patch models.PlacePatch
	if err := c.ShouldBind(&patch); err != nil {
		invalidRequest(c, err)
		return
	}

	place, err := ctrl.places.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, ctrl.logger, err)
		return
	}

	respond(c, http.StatusOK, "Place updated", place)
}

// DeletePlace godoc
// @Summary Delete place
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path int true "Place ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/places/{id} [delete]
func (ctrl *PlaceController) DeletePlace(c *gin.Context) {
	id, err := intParam(c, "id")
	if err != nil {
		respondError(c, ctrl.logger, err)
		return
	}

	if err := ctrl.places.Delete(c.Request.Context(), id); err != nil {
		respondError(c, ctrl.logger, err)
		return
	}

	respond(c, http.StatusOK, "Place deleted", nil)
}
