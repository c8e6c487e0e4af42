package controller

import (
	"time"

	"shona_dict_backend/internal/model"
	"shona_dict_backend/internal/service"
	"shona_dict_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// ChallengeAdminController is the back-office surface for challenge content
// and daily assignments.
type ChallengeAdminController struct {
	ChallengeService  *service.ChallengeService
	CompletionService *service.CompletionService
}

func NewChallengeAdminController(challengeService *service.ChallengeService, completionService *service.CompletionService) *ChallengeAdminController {
	return &ChallengeAdminController{
		ChallengeService:  challengeService,
		CompletionService: completionService,
	}
}

// @Summary Create a challenge
// @Tags admin-challenges
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param challenge body model.Challenge true "Challenge"
// @Success 201 {object} util.Response{data=model.Challenge}
// @Failure 400 {object} util.Response
// @Router /admin/challenges [post]
func (c *ChallengeAdminController) CreateChallenge(ctx *gin.Context) {
	var challenge model.Challenge
	if err := ctx.ShouldBindJSON(&challenge); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.ChallengeService.CreateChallenge(&challenge); err != nil {
		respondError(ctx, err)
		return
	}

	util.Created(ctx, challenge)
}

// @Summary List challenges
// @Tags admin-challenges
// @Security ApiKeyAuth
// @Produce json
// @Param kind query string false "multiple_choice, audio_recognition or translation_builder"
// @Param difficulty query string false "beginner, intermediate or advanced"
// @Success 200 {object} util.Response
// @Router /admin/challenges [get]
func (c *ChallengeAdminController) ListChallenges(ctx *gin.Context) {
	kind := model.ChallengeKind(ctx.Query("kind"))
	difficulty := model.Difficulty(ctx.Query("difficulty"))

	challenges, err := c.ChallengeService.ListChallenges(kind, difficulty)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, challenges)
}

// @Summary Get a challenge
// @Tags admin-challenges
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Challenge id"
// @Success 200 {object} util.Response{data=model.Challenge}
// @Failure 404 {object} util.Response
// @Router /admin/challenges/{id} [get]
func (c *ChallengeAdminController) GetChallenge(ctx *gin.Context) {
	challenge, err := c.ChallengeService.GetChallenge(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, challenge)
}

// @Summary Update a challenge
// @Tags admin-challenges
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "Challenge id"
// @Param challenge body service.ChallengeUpdate true "Fields to change"
// @Success 200 {object} util.Response{data=model.Challenge}
// @Failure 404 {object} util.Response
// @Router /admin/challenges/{id} [put]
func (c *ChallengeAdminController) UpdateChallenge(ctx *gin.Context) {
	var update service.ChallengeUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	challenge, err := c.ChallengeService.UpdateChallenge(ctx.Param("id"), &update)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, challenge)
}

// @Summary Delete a challenge
// @Tags admin-challenges
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Challenge id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /admin/challenges/{id} [delete]
func (c *ChallengeAdminController) DeleteChallenge(ctx *gin.Context) {
	if err := c.ChallengeService.DeleteChallenge(ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

// @Summary Assignment dates referencing a challenge
// @Description Reverse lookup used to gauge the impact of deleting a challenge
// @Tags admin-challenges
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Challenge id"
// @Success 200 {object} util.Response
// @Router /admin/challenges/{id}/usage [get]
func (c *ChallengeAdminController) GetChallengeUsage(ctx *gin.Context) {
	dates, err := c.ChallengeService.ChallengeUsage(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"usedInDates": dates,
		"count":       len(dates),
	})
}

type assignDailyChallengeRequest struct {
	Date         string     `json:"date" binding:"required"`
	ChallengeIDs []string   `json:"challengeIds" binding:"required"`
	Status       string     `json:"status" binding:"required"`
	PublishAt    *time.Time `json:"publishAt"`
}

// @Summary Assign challenges to a date
// @Description Upserts the assignment for the date, replacing list and status wholesale
// @Tags admin-daily-challenges
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param assignment body assignDailyChallengeRequest true "Assignment"
// @Success 200 {object} util.Response{data=model.DailyChallenge}
// @Failure 400 {object} util.Response
// @Router /admin/daily-challenges [post]
func (c *ChallengeAdminController) AssignDailyChallenge(ctx *gin.Context) {
	var req assignDailyChallengeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	assignment, err := c.ChallengeService.AssignDailyChallenge(req.Date, req.ChallengeIDs, req.Status, req.PublishAt)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, assignment)
}

// @Summary List all daily assignments
// @Tags admin-daily-challenges
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} util.Response
// @Router /admin/daily-challenges [get]
func (c *ChallengeAdminController) ListDailyChallenges(ctx *gin.Context) {
	assignments, err := c.ChallengeService.ListDailyChallenges()
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, assignments)
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// @Summary Update an assignment's draft/published status
// @Tags admin-daily-challenges
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param date path string true "Date key (YYYY-MM-DD)"
// @Param status body updateStatusRequest true "New status"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /admin/daily-challenges/{date}/status [patch]
func (c *ChallengeAdminController) UpdateDailyChallengeStatus(ctx *gin.Context) {
	var req updateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.ChallengeService.UpdateDailyChallengeStatus(ctx.Param("date"), req.Status); err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "status updated"})
}

// @Summary List completion events
// @Tags admin-completions
// @Security ApiKeyAuth
// @Produce json
// @Param from query string false "Start date (inclusive)"
// @Param to query string false "End date (inclusive)"
// @Success 200 {object} util.Response
// @Router /admin/completions [get]
func (c *ChallengeAdminController) ListCompletions(ctx *gin.Context) {
	completions, err := c.CompletionService.ListCompletions(ctx.Query("from"), ctx.Query("to"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, completions)
}

// @Summary Per-date completion aggregates
// @Tags admin-completions
// @Security ApiKeyAuth
// @Produce json
// @Param from query string false "Start date (inclusive)"
// @Param to query string false "End date (inclusive)"
// @Success 200 {object} util.Response
// @Router /admin/completions/summary [get]
func (c *ChallengeAdminController) SummarizeCompletions(ctx *gin.Context) {
	summaries, err := c.CompletionService.SummarizeCompletions(ctx.Query("from"), ctx.Query("to"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, summaries)
}
