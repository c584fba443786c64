package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"vdpcza/internal/models/request_models"
	"vdpcza/internal/services"
	"vdpcza/pkg/utils"
)

type ChatController struct {
	chatService services.ChatServiceInterface
}

func NewChatController(chatService services.ChatServiceInterface) *ChatController {
	return &ChatController{chatService: chatService}
}

// Greeting godoc
// @Summary Opening message of the companion chat
// @Tags Chat
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response_models.ChatResponse}
// @Security BearerAuth
// @Router /chat [get]
func (ch *ChatController) Greeting(c *gin.Context) {
	utils.RespondSuccess(c, ch.chatService.Greeting(), "")
}

// Send godoc
// @Summary Talk to the companion
// @Description Replies through the configured model provider, falling back to built-in answers
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body request_models.ChatRequest true "Message"
// @Success 200 {object} utils.APIResponse{data=response_models.ChatResponse}
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /chat [post]
func (ch *ChatController) Send(c *gin.Context) {
	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	utils.RespondSuccess(c, ch.chatService.Reply(c.Request.Context(), req.Message), "")
}
