package controller

import (
	"shona_dict_backend/internal/model"
	"shona_dict_backend/internal/service"
	"shona_dict_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// ChallengeController serves the public gameplay endpoints.
type ChallengeController struct {
	ChallengeService  *service.ChallengeService
	CompletionService *service.CompletionService
}

func NewChallengeController(challengeService *service.ChallengeService, completionService *service.CompletionService) *ChallengeController {
	return &ChallengeController{
		ChallengeService:  challengeService,
		CompletionService: completionService,
	}
}

// @Summary Today's daily challenge
// @Description Resolves the published challenge set for the given date, or for today in the client's timezone
// @Tags daily-challenge
// @Produce json
// @Param date query string false "Date key (YYYY-MM-DD)"
// @Param timezone query string false "IANA timezone, used when date is absent"
// @Success 200 {object} util.Response{data=model.DailyChallengePayload}
// @Failure 404 {object} util.Response
// @Router /daily-challenge [get]
func (c *ChallengeController) GetDailyChallenge(ctx *gin.Context) {
	date := ctx.Query("date")
	if date == "" {
		date = util.ResolveTodayDate(ctx.Query("timezone"))
	}

	payload, err := c.ChallengeService.GetDailyChallenge(date)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, payload)
}

// @Summary Record a daily challenge completion
// @Tags daily-challenge
// @Accept json
// @Produce json
// @Param completion body service.CompletionInput true "Completion summary"
// @Success 201 {object} util.Response{data=model.CompletionReceipt}
// @Failure 400 {object} util.Response
// @Router /challenge/complete [post]
func (c *ChallengeController) RecordCompletion(ctx *gin.Context) {
	var input service.CompletionInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	completion, err := c.CompletionService.Record(&input, requestMeta(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Created(ctx, model.CompletionReceipt{ID: completion.ID})
}

// requestMeta collects the request-derived context merged into completion
// events. Geolocation headers are set by the edge/CDN layer when present;
// all fields are best-effort.
func requestMeta(ctx *gin.Context) service.RequestMeta {
	return service.RequestMeta{
		City:      firstHeader(ctx, "X-Vercel-IP-City", "X-Geo-City"),
		Country:   firstHeader(ctx, "X-Vercel-IP-Country", "CF-IPCountry", "X-Geo-Country"),
		Region:    firstHeader(ctx, "X-Vercel-IP-Country-Region", "X-Geo-Region"),
		Latitude:  firstHeader(ctx, "X-Vercel-IP-Latitude", "X-Geo-Latitude"),
		Longitude: firstHeader(ctx, "X-Vercel-IP-Longitude", "X-Geo-Longitude"),
		UserAgent: ctx.Request.UserAgent(),
	}
}

func firstHeader(ctx *gin.Context, names ...string) string {
	for _, name := range names {
		if v := ctx.GetHeader(name); v != "" {
			return v
		}
	}
	return ""
}
