package controller

import (
	"errors"

	"shona_dict_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto the response envelope so handlers do
// not have to guess status codes.
func respondError(c *gin.Context, err error) {
	switch {
	case util.IsValidation(err):
		util.BadRequest(c, err.Error())
	case errors.Is(err, util.ErrChallengeNotFound),
		errors.Is(err, util.ErrAssignmentNotFound),
		errors.Is(err, util.ErrWordNotFound),
		errors.Is(err, util.ErrSuggestionNotFound),
		errors.Is(err, util.ErrUserNotFound):
		util.NotFoundMessage(c, err.Error())
	case errors.Is(err, util.ErrSuggestionReviewed):
		util.BadRequest(c, err.Error())
	case errors.Is(err, util.ErrInvalidCredentials):
		util.Unauthorized(c)
	case errors.Is(err, util.ErrTranslationUpstream):
		util.Error(c, 502, err.Error())
	default:
		util.LogInternalError(c, err)
	}
}
