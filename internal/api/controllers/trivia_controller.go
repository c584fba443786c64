package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"vdpcza/internal/models/request_models"
	"vdpcza/internal/services"
	"vdpcza/pkg/utils"
)

type TriviaController struct {
	triviaService services.TriviaServiceInterface
}

func NewTriviaController(triviaService services.TriviaServiceInterface) *TriviaController {
	return &TriviaController{triviaService: triviaService}
}

// Today godoc
// @Summary Today's trivia question
// @Description The same question is served all day. Data is null when no questions exist.
// @Tags Trivia
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response_models.TriviaQuestionResponse}
// @Security BearerAuth
// @Router /trivia/today [get]
func (t *TriviaController) Today(c *gin.Context) {
	q, err := t.triviaService.Today(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, q, "")
}

// Answer godoc
// @Summary Check an answer
// @Tags Trivia
// @Accept json
// @Produce json
// @Param request body request_models.TriviaAnswerRequest true "Question id and chosen option"
// @Success 200 {object} utils.APIResponse{data=response_models.TriviaAnswerResponse}
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trivia/answer [post]
func (t *TriviaController) Answer(c *gin.Context) {
	var req request_models.TriviaAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	resp, err := t.triviaService.Answer(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "")
}

// ListQuestions godoc
// @Summary List trivia questions in serving order
// @Tags Admin
// @Success 200 {object} utils.APIResponse{data=[]db_models.TriviaQuestion}
// @Security BearerAuth
// @Router /admin/trivia [get]
func (t *TriviaController) ListQuestions(c *gin.Context) {
	questions, err := t.triviaService.List(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, questions, "")
}

// CreateQuestion godoc
// @Summary Add a trivia question
// @Tags Admin
// @Param request body request_models.CreateTriviaRequest true "Question"
// @Success 201 {object} utils.APIResponse{data=db_models.TriviaQuestion}
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/trivia [post]
func (t *TriviaController) CreateQuestion(c *gin.Context) {
	var req request_models.CreateTriviaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	q, err := t.triviaService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondStatus(c, http.StatusCreated, q, "Question created")
}

// DeleteQuestion godoc
// @Summary Delete a trivia question
// @Tags Admin
// @Param id path string true "Question ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/trivia/{id} [delete]
func (t *TriviaController) DeleteQuestion(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := t.triviaService.Delete(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Question deleted")
}
