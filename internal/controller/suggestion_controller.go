package controller

import (
	"shona_dict_backend/internal/model"
	"shona_dict_backend/internal/service"
	"shona_dict_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SuggestionController struct {
	SuggestionService *service.SuggestionService
}

func NewSuggestionController(suggestionService *service.SuggestionService) *SuggestionController {
	return &SuggestionController{SuggestionService: suggestionService}
}

// @Summary Submit a word suggestion
// @Description Public contribution endpoint; suggestions enter the review queue as pending
// @Tags suggestions
// @Accept json
// @Produce json
// @Param suggestion body model.WordSuggestion true "Suggestion"
// @Success 201 {object} util.Response{data=model.WordSuggestion}
// @Failure 400 {object} util.Response
// @Router /suggestions [post]
func (c *SuggestionController) Submit(ctx *gin.Context) {
	var suggestion model.WordSuggestion
	if err := ctx.ShouldBindJSON(&suggestion); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.SuggestionService.Submit(&suggestion); err != nil {
		respondError(ctx, err)
		return
	}

	util.Created(ctx, suggestion)
}

// @Summary List suggestions
// @Tags admin-suggestions
// @Security ApiKeyAuth
// @Produce json
// @Param status query string false "pending, approved or rejected"
// @Success 200 {object} util.Response
// @Router /admin/suggestions [get]
func (c *SuggestionController) List(ctx *gin.Context) {
	suggestions, err := c.SuggestionService.List(model.SuggestionStatus(ctx.Query("status")))
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, suggestions)
}

type reviewRequest struct {
	Note string `json:"note"`
}

// @Summary Approve a suggestion
// @Description Marks the suggestion approved and creates the dictionary entry
// @Tags admin-suggestions
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "Suggestion id"
// @Param review body reviewRequest false "Review note"
// @Success 200 {object} util.Response{data=model.WordSuggestion}
// @Failure 404 {object} util.Response
// @Router /admin/suggestions/{id}/approve [post]
func (c *SuggestionController) Approve(ctx *gin.Context) {
	var req reviewRequest
	ctx.ShouldBindJSON(&req)

	suggestion, err := c.SuggestionService.Approve(util.MustParseUint(ctx.Param("id")), req.Note)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, suggestion)
}

// @Summary Reject a suggestion
// @Tags admin-suggestions
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "Suggestion id"
// @Param review body reviewRequest false "Review note"
// @Success 200 {object} util.Response{data=model.WordSuggestion}
// @Failure 404 {object} util.Response
// @Router /admin/suggestions/{id}/reject [post]
func (c *SuggestionController) Reject(ctx *gin.Context) {
	var req reviewRequest
	ctx.ShouldBindJSON(&req)

	suggestion, err := c.SuggestionService.Reject(util.MustParseUint(ctx.Param("id")), req.Note)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, suggestion)
}
