package controllers

import (
	"github.com/gin-gonic/gin"
	"vdpcza/internal/services"
	"vdpcza/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
	navService       services.NavServiceInterface
	playlistService  services.PlaylistServiceInterface
}

func NewDashboardController(
	dashboardService services.DashboardServiceInterface,
	navService services.NavServiceInterface,
	playlistService services.PlaylistServiceInterface,
) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
		navService:       navService,
		playlistService:  playlistService,
	}
}

// GetDashboard godoc
// @Summary Home screen
// @Description Relationship counter, quote of the moment, today's trivia question and both moods
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response_models.DashboardResponse}
// @Failure 401 {object} utils.APIResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (d *DashboardController) GetDashboard(c *gin.Context) {
	resp, err := d.dashboardService.Get(c.Request.Context(), utils.CurrentSession(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "")
}

// GetCounter godoc
// @Summary Relationship counter only
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response_models.CounterResponse}
// @Security BearerAuth
// @Router /dashboard/counter [get]
func (d *DashboardController) GetCounter(c *gin.Context) {
	utils.RespondSuccess(c, d.dashboardService.Counter(), "")
}

// GetNav godoc
// @Summary Navigation chrome
// @Description Menu items, display name, role label and unread gift badge
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response_models.NavResponse}
// @Security BearerAuth
// @Router /nav [get]
func (d *DashboardController) GetNav(c *gin.Context) {
	utils.RespondSuccess(c, d.navService.Get(c.Request.Context(), utils.CurrentSession(c)), "")
}

// GetPlaylist godoc
// @Summary Shared playlist embeds
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response_models.PlaylistResponse}
// @Security BearerAuth
// @Router /playlist [get]
func (d *DashboardController) GetPlaylist(c *gin.Context) {
	utils.RespondSuccess(c, d.playlistService.Get(), "")
}
