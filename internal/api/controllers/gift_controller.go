package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"vdpcza/internal/models/request_models"
	"vdpcza/internal/services"
	"vdpcza/pkg/utils"
)

type GiftController struct {
	giftService services.GiftServiceInterface
}

func NewGiftController(giftService services.GiftServiceInterface) *GiftController {
	return &GiftController{giftService: giftService}
}

// ListGifts godoc
// @Summary List gifts
// @Description Locked gifts show only their title to non-admins
// @Tags Gifts
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]response_models.GiftResponse}
// @Security BearerAuth
// @Router /gifts [get]
func (g *GiftController) ListGifts(c *gin.Context) {
	gifts, err := g.giftService.List(c.Request.Context(), utils.CurrentSession(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gifts, "")
}

// OpenGift godoc
// @Summary Open a gift and mark it seen
// @Tags Gifts
// @Produce json
// @Param id path string true "Gift ID"
// @Success 200 {object} utils.APIResponse{data=response_models.GiftResponse}
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /gifts/{id}/open [post]
func (g *GiftController) OpenGift(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	gift, err := g.giftService.Open(c.Request.Context(), utils.CurrentSession(c), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gift, "")
}

// UnreadGifts godoc
// @Summary Gifts the caller has not opened yet
// @Tags Gifts
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response_models.UnreadGiftsResponse}
// @Security BearerAuth
// @Router /gifts/unread [get]
func (g *GiftController) UnreadGifts(c *gin.Context) {
	unread, err := g.giftService.Unread(c.Request.Context(), utils.CurrentSession(c).UserID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, unread, "")
}

// CreateGift godoc
// @Summary Create a gift
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body request_models.CreateGiftRequest true "Gift"
// @Success 201 {object} utils.APIResponse{data=db_models.Gift}
// @Security BearerAuth
// @Router /admin/gifts [post]
func (g *GiftController) CreateGift(c *gin.Context) {
	var req request_models.CreateGiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	gift, err := g.giftService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondStatus(c, http.StatusCreated, gift, "Gift created")
}

// UpdateGift godoc
// @Summary Update a gift
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Gift ID"
// @Param request body request_models.UpdateGiftRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=db_models.Gift}
// @Security BearerAuth
// @Router /admin/gifts/{id} [put]
func (g *GiftController) UpdateGift(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req request_models.UpdateGiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	gift, err := g.giftService.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gift, "Gift updated")
}

// ToggleLock godoc
// @Summary Lock or unlock a gift
// @Tags Admin
// @Produce json
// @Param id path string true "Gift ID"
// @Success 200 {object} utils.APIResponse{data=db_models.Gift}
// @Security BearerAuth
// @Router /admin/gifts/{id}/lock [post]
func (g *GiftController) ToggleLock(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	gift, err := g.giftService.ToggleLock(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gift, "")
}

// DeleteGift godoc
// @Summary Delete a gift
// @Tags Admin
// @Produce json
// @Param id path string true "Gift ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/gifts/{id} [delete]
func (g *GiftController) DeleteGift(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := g.giftService.Delete(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Gift deleted")
}
