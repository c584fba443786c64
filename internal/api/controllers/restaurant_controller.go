package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"vdpcza/internal/models/request_models"
	"vdpcza/internal/services"
	"vdpcza/pkg/utils"
)

type RestaurantController struct {
	restaurantService services.RestaurantServiceInterface
}

func NewRestaurantController(restaurantService services.RestaurantServiceInterface) *RestaurantController {
	return &RestaurantController{restaurantService: restaurantService}
}

// ListRestaurants godoc
// @Summary List restaurants with review count and average rating
// @Tags Restaurants
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]response_models.RestaurantResponse}
// @Security BearerAuth
// @Router /restaurants [get]
func (r *RestaurantController) ListRestaurants(c *gin.Context) {
	list, err := r.restaurantService.List(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, list, "")
}

// CreateRestaurant godoc
// @Summary Add a restaurant
// @Tags Restaurants
// @Accept json
// @Produce json
// @Param request body request_models.RestaurantRequest true "Restaurant"
// @Success 201 {object} utils.APIResponse{data=db_models.Restaurant}
// @Security BearerAuth
// @Router /restaurants [post]
func (r *RestaurantController) CreateRestaurant(c *gin.Context) {
	var req request_models.RestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	restaurant, err := r.restaurantService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondStatus(c, http.StatusCreated, restaurant, "Restaurant created")
}

// UpdateRestaurant godoc
// @Summary Replace a restaurant
// @Tags Restaurants
// @Accept json
// @Produce json
// @Param id path string true "Restaurant ID"
// @Param request body request_models.RestaurantRequest true "Restaurant"
// @Success 200 {object} utils.APIResponse{data=db_models.Restaurant}
// @Security BearerAuth
// @Router /restaurants/{id} [put]
func (r *RestaurantController) UpdateRestaurant(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req request_models.RestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	restaurant, err := r.restaurantService.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, restaurant, "Restaurant updated")
}

// DeleteRestaurant godoc
// @Summary Delete a restaurant and its reviews
// @Tags Restaurants
// @Param id path string true "Restaurant ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /restaurants/{id} [delete]
func (r *RestaurantController) DeleteRestaurant(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := r.restaurantService.Delete(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Restaurant deleted")
}

// ListReviews godoc
// @Summary Reviews of a restaurant
// @Tags Restaurants
// @Param id path string true "Restaurant ID"
// @Success 200 {object} utils.APIResponse{data=[]db_models.RestaurantReview}
// @Security BearerAuth
// @Router /restaurants/{id}/reviews [get]
func (r *RestaurantController) ListReviews(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	reviews, err := r.restaurantService.ListReviews(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, reviews, "")
}

// AddReview godoc
// @Summary Review a restaurant
// @Tags Restaurants
// @Accept json
// @Param id path string true "Restaurant ID"
// @Param request body request_models.CreateReviewRequest true "Rating 1-5 and comment"
// @Success 201 {object} utils.APIResponse{data=db_models.RestaurantReview}
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /restaurants/{id}/reviews [post]
func (r *RestaurantController) AddReview(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req request_models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	review, err := r.restaurantService.AddReview(c.Request.Context(), utils.CurrentSession(c).UserID, id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondStatus(c, http.StatusCreated, review, "Review added")
}

// DeleteReview godoc
// @Summary Delete a review
// @Tags Restaurants
// @Param reviewId path string true "Review ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /reviews/{reviewId} [delete]
func (r *RestaurantController) DeleteReview(c *gin.Context) {
	id, ok := idParam(c, "reviewId")
	if !ok {
		return
	}
	if err := r.restaurantService.DeleteReview(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Review deleted")
}
