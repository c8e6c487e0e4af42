package util

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUserNotFound        = errors.New("user not found")
	ErrWordNotFound        = errors.New("word not found")
	ErrSuggestionNotFound  = errors.New("suggestion not found")
	ErrSuggestionReviewed  = errors.New("suggestion already reviewed")
	ErrChallengeNotFound   = errors.New("challenge not found")
	ErrAssignmentNotFound  = errors.New("no daily challenge assignment for date")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrTranslationUpstream = errors.New("translation service unavailable")
)

// ValidationError marks a request that failed field validation. Controllers
// map it to a 400 with the field-level message intact.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is a field validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
