package controller

import (
	"shona_dict_backend/internal/service"
	"shona_dict_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TranslationController struct {
	TranslationService *service.TranslationService
}

func NewTranslationController(translationService *service.TranslationService) *TranslationController {
	return &TranslationController{TranslationService: translationService}
}

type translateRequest struct {
	Text      string `json:"text" binding:"required"`
	Direction string `json:"direction" binding:"required"`
}

// @Summary AI-assisted translation
// @Tags translate
// @Accept json
// @Produce json
// @Param request body translateRequest true "Text and direction (en-sn or sn-en)"
// @Success 200 {object} util.Response
// @Failure 502 {object} util.Response
// @Router /translate [post]
func (c *TranslationController) Translate(ctx *gin.Context) {
	var req translateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	translation, err := c.TranslationService.Translate(req.Text, req.Direction)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"text":        req.Text,
		"direction":   req.Direction,
		"translation": translation,
	})
}

type examplesRequest struct {
	Shona   string `json:"shona" binding:"required"`
	English string `json:"english"`
	Count   int    `json:"count"`
}

// @Summary Generate example sentences for a word
// @Tags translate
// @Accept json
// @Produce json
// @Param request body examplesRequest true "Word to illustrate"
// @Success 200 {object} util.Response
// @Failure 502 {object} util.Response
// @Router /translate/examples [post]
func (c *TranslationController) GenerateExamples(ctx *gin.Context) {
	var req examplesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	examples, err := c.TranslationService.GenerateExamples(req.Shona, req.English, req.Count)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"examples": examples})
}
