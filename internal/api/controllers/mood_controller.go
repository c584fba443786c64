package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"vdpcza/internal/models/request_models"
	"vdpcza/internal/services"
	"vdpcza/pkg/utils"
)

type MoodController struct {
	moodService services.MoodServiceInterface
}

func NewMoodController(moodService services.MoodServiceInterface) *MoodController {
	return &MoodController{moodService: moodService}
}

// ListMoods godoc
// @Summary Recent moods, newest first
// @Tags Moods
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]response_models.MoodResponse}
// @Security BearerAuth
// @Router /moods [get]
func (m *MoodController) ListMoods(c *gin.Context) {
	moods, err := m.moodService.Recent(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, moods, "")
}

// SetMood godoc
// @Summary Set the caller's mood
// @Description Picking the current mood again changes nothing
// @Tags Moods
// @Accept json
// @Produce json
// @Param request body request_models.SetMoodRequest true "happy | love | angry | miss_you"
// @Success 200 {object} utils.APIResponse{data=response_models.MoodResponse}
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /moods [post]
func (m *MoodController) SetMood(c *gin.Context) {
	var req request_models.SetMoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	mood, err := m.moodService.Set(c.Request.Context(), utils.CurrentSession(c).UserID, req.Mood)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	if mood == nil {
		utils.RespondSuccess(c, nil, "Mood unchanged")
		return
	}
	utils.RespondSuccess(c, mood, "Mood updated")
}
