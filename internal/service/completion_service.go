package service

import (
	"shona_dict_backend/internal/model"
	"shona_dict_backend/internal/repository"
	"shona_dict_backend/internal/util"
	"shona_dict_backend/pkg/monitoring"
)

type CompletionService struct {
	CompletionRepo *repository.CompletionRepository
}

func NewCompletionService(completionRepo *repository.CompletionRepository) *CompletionService {
	return &CompletionService{CompletionRepo: completionRepo}
}

// CompletionInput is the client-reported completion summary. Numeric fields
// are pointers so that a legitimate zero (score 0, accuracy 0) still counts
// as present.
type CompletionInput struct {
	Date            string   `json:"date"`
	TotalScore      *int     `json:"totalScore"`
	CorrectAnswers  *int     `json:"correctAnswers"`
	TotalChallenges *int     `json:"totalChallenges"`
	Accuracy        *float64 `json:"accuracy"`
	TimeSpent       *int     `json:"timeSpent"`
	UserID          string   `json:"userId"`
	ClientTimestamp string   `json:"timestamp"`
}

// RequestMeta is the request-derived context merged into the stored event:
// coarse geolocation from edge headers plus the client's user agent.
type RequestMeta struct {
	City      string
	Country   string
	Region    string
	Latitude  string
	Longitude string
	UserAgent string
}

func (in *CompletionInput) validate() error {
	if !util.DateKeyPattern.MatchString(in.Date) {
		return util.NewValidationError("date", "must be YYYY-MM-DD")
	}
	if in.TotalScore == nil {
		return util.NewValidationError("totalScore", "is required")
	}
	if in.CorrectAnswers == nil {
		return util.NewValidationError("correctAnswers", "is required")
	}
	if in.TotalChallenges == nil {
		return util.NewValidationError("totalChallenges", "is required")
	}
	if in.Accuracy == nil {
		return util.NewValidationError("accuracy", "is required")
	}
	if in.TimeSpent == nil {
		return util.NewValidationError("timeSpent", "is required")
	}
	return nil
}

// Record persists one immutable completion event. Repeated submissions are
// stored as separate rows; deduplication is deliberately not this layer's
// concern.
func (s *CompletionService) Record(input *CompletionInput, meta RequestMeta) (*model.ChallengeCompletion, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	completion := &model.ChallengeCompletion{
		Date:            input.Date,
		UserID:          input.UserID,
		TotalScore:      *input.TotalScore,
		CorrectAnswers:  *input.CorrectAnswers,
		TotalChallenges: *input.TotalChallenges,
		Accuracy:        *input.Accuracy,
		TimeSpent:       *input.TimeSpent,
		City:            meta.City,
		Country:         meta.Country,
		Region:          meta.Region,
		Latitude:        meta.Latitude,
		Longitude:       meta.Longitude,
		UserAgent:       meta.UserAgent,
		ClientTimestamp: input.ClientTimestamp,
	}

	if err := s.CompletionRepo.Create(completion); err != nil {
		return nil, err
	}
	monitoring.CompletionsRecorded.Inc()
	return completion, nil
}

func (s *CompletionService) ListCompletions(from, to string) ([]model.ChallengeCompletion, error) {
	return s.CompletionRepo.ListByDateRange(from, to)
}

func (s *CompletionService) SummarizeCompletions(from, to string) ([]model.CompletionSummary, error) {
	return s.CompletionRepo.SummarizeByDate(from, to)
}
