package repository

import (
	"shona_dict_backend/internal/model"

	"gorm.io/gorm"
)

// CompletionRepository is intentionally append-only: completions are
// immutable events, so no update or delete methods exist.
type CompletionRepository struct {
	DB *gorm.DB
}

func NewCompletionRepository(db *gorm.DB) *CompletionRepository {
	return &CompletionRepository{DB: db}
}

func (r *CompletionRepository) Create(completion *model.ChallengeCompletion) error {
	return r.DB.Create(completion).Error
}

func (r *CompletionRepository) ListByDateRange(from, to string) ([]model.ChallengeCompletion, error) {
	query := r.DB.Model(&model.ChallengeCompletion{})
	if from != "" {
		query = query.Where("date >= ?", from)
	}
	if to != "" {
		query = query.Where("date <= ?", to)
	}

	var completions []model.ChallengeCompletion
	err := query.Order("created_at desc").Find(&completions).Error
	return completions, err
}

// SummarizeByDate aggregates completion counts and averages per date key.
func (r *CompletionRepository) SummarizeByDate(from, to string) ([]model.CompletionSummary, error) {
	query := r.DB.Model(&model.ChallengeCompletion{}).
		Select("date, COUNT(*) as completions, COALESCE(AVG(accuracy), 0) as avg_accuracy, COALESCE(AVG(total_score), 0) as avg_score, COALESCE(AVG(time_spent_seconds), 0) as avg_time")
	if from != "" {
		query = query.Where("date >= ?", from)
	}
	if to != "" {
		query = query.Where("date <= ?", to)
	}

	var summaries []model.CompletionSummary
	err := query.Group("date").Order("date desc").Scan(&summaries).Error
	return summaries, err
}
