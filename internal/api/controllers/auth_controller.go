package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"vdpcza/internal/models/request_models"
	"vdpcza/internal/services"
	"vdpcza/pkg/utils"
)

type AuthController struct {
	authService services.AuthServiceInterface
}

func NewAuthController(authService services.AuthServiceInterface) *AuthController {
	return &AuthController{authService: authService}
}

// RequestOtp godoc
// @Summary Send a sign-in email
// @Description Mails a six digit code and a magic link to an allow-listed address
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.SignInRequest true "Email and optional landing path"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /auth/otp [post]
func (a *AuthController) RequestOtp(c *gin.Context) {
	var req request_models.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.authService.SignIn(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Sign-in email sent")
}

// VerifyOtp godoc
// @Summary Exchange a code or magic token for a session
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.VerifyOtpRequest true "Email and code, or magic token"
// @Success 200 {object} utils.APIResponse{data=response_models.AuthResponse}
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /auth/verify [post]
func (a *AuthController) VerifyOtp(c *gin.Context) {
	var req request_models.VerifyOtpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := a.authService.VerifyOtp(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Signed in")
}

// SignInWithPassword godoc
// @Summary Password sign-in
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.PasswordSignInRequest true "Credentials"
// @Success 200 {object} utils.APIResponse{data=response_models.AuthResponse}
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /auth/password [post]
func (a *AuthController) SignInWithPassword(c *gin.Context) {
	var req request_models.PasswordSignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := a.authService.SignInWithPassword(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Signed in")
}

// Me godoc
// @Summary Current session
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response_models.SessionResponse}
// @Failure 401 {object} utils.APIResponse
// @Security BearerAuth
// @Router /auth/me [get]
func (a *AuthController) Me(c *gin.Context) {
	utils.RespondSuccess(c, services.ToSessionResponse(utils.CurrentSession(c)), "")
}

// Logout godoc
// @Summary Revoke the current token
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (a *AuthController) Logout(c *gin.Context) {
	if err := a.authService.SignOut(c.Request.Context(), utils.CurrentSession(c)); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"redirect": "/login"}, "Signed out")
}
