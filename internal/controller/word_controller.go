package controller

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"shona_dict_backend/internal/model"
	"shona_dict_backend/internal/service"
	"shona_dict_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type WordController struct {
	WordService    *service.WordService
	StorageService *service.StorageService
}

func NewWordController(wordService *service.WordService, storageService *service.StorageService) *WordController {
	return &WordController{
		WordService:    wordService,
		StorageService: storageService,
	}
}

// @Summary Search the dictionary
// @Tags words
// @Produce json
// @Param search query string false "Search term"
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /words [get]
func (c *WordController) SearchWords(ctx *gin.Context) {
	page, limit := util.ParsePage(ctx.DefaultQuery("page", "1"), ctx.DefaultQuery("limit", "20"))

	words, total, err := c.WordService.SearchWords(ctx.Query("search"), page, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  words,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// @Summary Word detail
// @Tags words
// @Produce json
// @Param id path string true "Word id"
// @Success 200 {object} util.Response{data=model.Word}
// @Failure 404 {object} util.Response
// @Router /words/{id} [get]
func (c *WordController) GetWord(ctx *gin.Context) {
	word, err := c.WordService.GetWord(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, word)
}

// @Summary Create a word
// @Tags admin-words
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param word body model.Word true "Word"
// @Success 201 {object} util.Response{data=model.Word}
// @Router /admin/words [post]
func (c *WordController) CreateWord(ctx *gin.Context) {
	var word model.Word
	if err := ctx.ShouldBindJSON(&word); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.WordService.CreateWord(&word); err != nil {
		respondError(ctx, err)
		return
	}

	util.Created(ctx, word)
}

// @Summary Update a word
// @Tags admin-words
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "Word id"
// @Param word body service.WordUpdate true "Fields to change"
// @Success 200 {object} util.Response{data=model.Word}
// @Failure 404 {object} util.Response
// @Router /admin/words/{id} [put]
func (c *WordController) UpdateWord(ctx *gin.Context) {
	var update service.WordUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	word, err := c.WordService.UpdateWord(ctx.Param("id"), &update)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, word)
}

// @Summary Delete a word
// @Tags admin-words
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Word id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /admin/words/{id} [delete]
func (c *WordController) DeleteWord(ctx *gin.Context) {
	if err := c.WordService.DeleteWord(ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

// @Summary Upload a pronunciation clip
// @Description Accepts an audio file, normalizes it to mp3 and attaches it to the word
// @Tags admin-words
// @Security ApiKeyAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Word id"
// @Param audio formData file true "Audio file"
// @Success 200 {object} util.Response{data=model.Word}
// @Router /admin/words/{id}/audio [post]
func (c *WordController) UploadAudio(ctx *gin.Context) {
	id := ctx.Param("id")

	file, err := ctx.FormFile("audio")
	if err != nil {
		util.BadRequest(ctx, "audio file is required")
		return
	}
	if file.Size > util.MaxAudioBytes {
		util.BadRequest(ctx, "audio file too large")
		return
	}
	if !util.AllowedAudioExtension(file.Filename) {
		util.BadRequest(ctx, "unsupported audio format")
		return
	}

	src, err := file.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	_, err = util.ValidateMimeType(src, []string{util.MimeAudio, "video/webm", util.MimeOctetStream})
	src.Close()
	if err != nil {
		util.BadRequest(ctx, "file is not a readable audio clip")
		return
	}

	tmpDir, err := os.MkdirTemp("", "audio-upload")
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer os.RemoveAll(tmpDir)

	srcPath := filepath.Join(tmpDir, filepath.Base(file.Filename))
	if err := ctx.SaveUploadedFile(file, srcPath); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	if _, err := util.ProbeAudio(srcPath); err != nil {
		util.BadRequest(ctx, "file is not a readable audio clip")
		return
	}

	mp3Path := filepath.Join(tmpDir, "normalized.mp3")
	if err := util.TranscodeToMP3(srcPath, mp3Path); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	objectName := fmt.Sprintf("audio/words/%s_%d.mp3", id, time.Now().Unix())
	url, err := c.StorageService.UploadFile(context.Background(), objectName, mp3Path, "audio/mpeg")
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	word, err := c.WordService.AttachAudio(id, url)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, word)
}
