package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"vdpcza/internal/models/request_models"
	"vdpcza/internal/services"
	"vdpcza/pkg/utils"
)

type CapsuleController struct {
	capsuleService services.CapsuleServiceInterface
}

func NewCapsuleController(capsuleService services.CapsuleServiceInterface) *CapsuleController {
	return &CapsuleController{capsuleService: capsuleService}
}

// ListCapsules godoc
// @Summary List time capsules
// @Description Locked capsules carry the time remaining instead of their content
// @Tags Capsules
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]response_models.CapsuleResponse}
// @Security BearerAuth
// @Router /capsules [get]
func (cc *CapsuleController) ListCapsules(c *gin.Context) {
	capsules, err := cc.capsuleService.List(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, capsules, "")
}

// GetCapsule godoc
// @Summary Open a capsule
// @Tags Capsules
// @Produce json
// @Param id path string true "Capsule ID"
// @Success 200 {object} utils.APIResponse{data=response_models.CapsuleResponse}
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /capsules/{id} [get]
func (cc *CapsuleController) GetCapsule(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	capsule, err := cc.capsuleService.Get(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, capsule, "")
}

// CreateCapsule godoc
// @Summary Seal a capsule
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body request_models.CreateCapsuleRequest true "Capsule"
// @Success 201 {object} utils.APIResponse{data=response_models.CapsuleResponse}
// @Security BearerAuth
// @Router /admin/capsules [post]
func (cc *CapsuleController) CreateCapsule(c *gin.Context) {
	var req request_models.CreateCapsuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	capsule, err := cc.capsuleService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondStatus(c, http.StatusCreated, capsule, "Capsule created")
}

// DeleteCapsule godoc
// @Summary Delete a capsule
// @Tags Admin
// @Produce json
// @Param id path string true "Capsule ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/capsules/{id} [delete]
func (cc *CapsuleController) DeleteCapsule(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := cc.capsuleService.Delete(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Capsule deleted")
}
