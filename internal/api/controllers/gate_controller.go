package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"vdpcza/internal/models/request_models"
	"vdpcza/internal/services"
	"vdpcza/pkg/utils"
)

const (
	GateCookieName   = "vdpcza_unlocked"
	gateCookieMaxAge = 365 * 24 * 60 * 60
)

type GateController struct {
	gateService services.GateServiceInterface
	secure      bool
}

// NewGateController marks the cookie Secure when the app is served over https.
func NewGateController(gateService services.GateServiceInterface, secure bool) *GateController {
	return &GateController{gateService: gateService, secure: secure}
}

// Unlock godoc
// @Summary Unlock the entry gate
// @Description Compares the typed date (DD/MM/YYYY) with the anniversary and sets the unlock cookie
// @Tags Gate
// @Accept json
// @Produce json
// @Param request body request_models.GateUnlockRequest true "Anniversary date"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /gate/unlock [post]
func (g *GateController) Unlock(c *gin.Context) {
	var req request_models.GateUnlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := g.gateService.Unlock(req.Date); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(GateCookieName, "true", gateCookieMaxAge, "/", "", g.secure, true)
	utils.RespondSuccess(c, gin.H{"unlocked": true}, "Unlocked")
}
