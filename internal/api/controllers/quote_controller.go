package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"vdpcza/internal/models/request_models"
	"vdpcza/internal/services"
	"vdpcza/pkg/utils"
)

type QuoteController struct {
	quoteService services.QuoteServiceInterface
}

func NewQuoteController(quoteService services.QuoteServiceInterface) *QuoteController {
	return &QuoteController{quoteService: quoteService}
}

// RandomQuote godoc
// @Summary A random quote
// @Description Falls back to a built-in quote when none are stored
// @Tags Quotes
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response_models.QuoteResponse}
// @Security BearerAuth
// @Router /quotes/random [get]
func (q *QuoteController) RandomQuote(c *gin.Context) {
	utils.RespondSuccess(c, q.quoteService.Random(c.Request.Context()), "")
}

// ListQuotes godoc
// @Summary List quotes
// @Tags Admin
// @Success 200 {object} utils.APIResponse{data=[]db_models.Quote}
// @Security BearerAuth
// @Router /admin/quotes [get]
func (q *QuoteController) ListQuotes(c *gin.Context) {
	quotes, err := q.quoteService.List(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, quotes, "")
}

// CreateQuote godoc
// @Summary Add a quote
// @Tags Admin
// @Param request body request_models.CreateQuoteRequest true "Quote"
// @Success 201 {object} utils.APIResponse{data=db_models.Quote}
// @Security BearerAuth
// @Router /admin/quotes [post]
func (q *QuoteController) CreateQuote(c *gin.Context) {
	var req request_models.CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	quote, err := q.quoteService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondStatus(c, http.StatusCreated, quote, "Quote created")
}

// DeleteQuote godoc
// @Summary Delete a quote
// @Tags Admin
// @Param id path string true "Quote ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/quotes/{id} [delete]
func (q *QuoteController) DeleteQuote(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := q.quoteService.Delete(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Quote deleted")
}
