package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"vdpcza/internal/models/request_models"
	"vdpcza/internal/services"
	"vdpcza/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{tripService: tripService}
}

// ListTrips godoc
// @Summary List trips
// @Description Unrevealed trips keep their dates but lose destination, hotel, image and coordinates for non-admins
// @Tags Trips
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]db_models.Trip}
// @Security BearerAuth
// @Router /trips [get]
func (t *TripController) ListTrips(c *gin.Context) {
	trips, err := t.tripService.List(c.Request.Context(), utils.CurrentSession(c).IsAdmin())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trips, "")
}

// ListMarkers godoc
// @Summary Globe markers for revealed trips
// @Tags Trips
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]response_models.GlobeMarker}
// @Security BearerAuth
// @Router /trips/markers [get]
func (t *TripController) ListMarkers(c *gin.Context) {
	markers, err := t.tripService.Markers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, markers, "")
}

// CreateTrip godoc
// @Summary Create a trip
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body request_models.CreateTripRequest true "Trip"
// @Success 201 {object} utils.APIResponse{data=db_models.Trip}
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/trips [post]
func (t *TripController) CreateTrip(c *gin.Context) {
	var req request_models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := t.tripService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondStatus(c, http.StatusCreated, trip, "Trip created")
}

// UpdateTrip godoc
// @Summary Update a trip
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param request body request_models.UpdateTripRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=db_models.Trip}
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/trips/{id} [put]
func (t *TripController) UpdateTrip(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req request_models.UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := t.tripService.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trip, "Trip updated")
}

// ToggleReveal godoc
// @Summary Flip a trip's revealed flag
// @Tags Admin
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.APIResponse{data=db_models.Trip}
// @Security BearerAuth
// @Router /admin/trips/{id}/reveal [post]
func (t *TripController) ToggleReveal(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	trip, err := t.tripService.ToggleReveal(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trip, "")
}

// DeleteTrip godoc
// @Summary Delete a trip
// @Tags Admin
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/trips/{id} [delete]
func (t *TripController) DeleteTrip(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := t.tripService.Delete(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Trip deleted")
}
