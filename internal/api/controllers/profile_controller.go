package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"vdpcza/internal/models/request_models"
	"vdpcza/internal/services"
	"vdpcza/pkg/utils"
)

type ProfileController struct {
	profileService services.ProfileServiceInterface
}

func NewProfileController(profileService services.ProfileServiceInterface) *ProfileController {
	return &ProfileController{profileService: profileService}
}

// GetMe godoc
// @Summary Caller's profile
// @Tags Profile
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response_models.ProfileResponse}
// @Security BearerAuth
// @Router /profile/me [get]
func (p *ProfileController) GetMe(c *gin.Context) {
	profile, err := p.profileService.GetMe(c.Request.Context(), utils.CurrentSession(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, profile, "")
}

// UpdateMe godoc
// @Summary Update name or bio
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body request_models.UpdateProfileRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=response_models.ProfileResponse}
// @Security BearerAuth
// @Router /profile/me [put]
func (p *ProfileController) UpdateMe(c *gin.Context) {
	var req request_models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	profile, err := p.profileService.UpdateMe(c.Request.Context(), utils.CurrentSession(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, profile, "Profile updated")
}

// UploadAvatar godoc
// @Summary Replace the avatar
// @Tags Profile
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image"
// @Success 200 {object} utils.APIResponse{data=response_models.ProfileResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /profile/me/avatar [post]
func (p *ProfileController) UploadAvatar(c *gin.Context) {
	fh, err := c.FormFile(uploadField)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "A file is required")
		return
	}
	file, closer, err := openUpload(fh)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Could not read the file")
		return
	}
	defer closer.Close()

	profile, err := p.profileService.UploadAvatar(c.Request.Context(), utils.CurrentSession(c), file)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, profile, "Avatar updated")
}
