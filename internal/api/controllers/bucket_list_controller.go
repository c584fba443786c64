package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"vdpcza/internal/models/request_models"
	"vdpcza/internal/services"
	"vdpcza/pkg/utils"
)

type BucketListController struct {
	bucketListService services.BucketListServiceInterface
}

func NewBucketListController(bucketListService services.BucketListServiceInterface) *BucketListController {
	return &BucketListController{bucketListService: bucketListService}
}

// @Summary List bucket list items
// @Tags BucketList
// @Success 200 {object} utils.APIResponse{data=[]db_models.BucketListItem}
// @Security BearerAuth
// @Router /bucket-list [get]
func (b *BucketListController) List(c *gin.Context) {
	items, err := b.bucketListService.List(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, items, "")
}

// @Summary Add a bucket list item
// @Tags BucketList
// @Param request body request_models.CreateBucketItemRequest true "Item"
// @Success 201 {object} utils.APIResponse{data=db_models.BucketListItem}
// @Security BearerAuth
// @Router /bucket-list [post]
func (b *BucketListController) Add(c *gin.Context) {
	var req request_models.CreateBucketItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	item, err := b.bucketListService.Add(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondStatus(c, http.StatusCreated, item, "Item added")
}

// @Summary Toggle an item's completed flag
// @Tags BucketList
// @Param id path string true "Item ID"
// @Success 200 {object} utils.APIResponse{data=db_models.BucketListItem}
// @Security BearerAuth
// @Router /bucket-list/{id}/toggle [post]
func (b *BucketListController) Toggle(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	item, err := b.bucketListService.Toggle(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, item, "")
}

// @Summary Delete a bucket list item
// @Tags BucketList
// @Param id path string true "Item ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bucket-list/{id} [delete]
func (b *BucketListController) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := b.bucketListService.Delete(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Item deleted")
}
