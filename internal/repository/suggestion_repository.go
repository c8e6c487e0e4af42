package repository

import (
	"shona_dict_backend/internal/model"

	"gorm.io/gorm"
)

type SuggestionRepository struct {
	DB *gorm.DB
}

func NewSuggestionRepository(db *gorm.DB) *SuggestionRepository {
	return &SuggestionRepository{DB: db}
}

func (r *SuggestionRepository) Create(suggestion *model.WordSuggestion) error {
	return r.DB.Create(suggestion).Error
}

func (r *SuggestionRepository) FindByID(id uint) (*model.WordSuggestion, error) {
	var suggestion model.WordSuggestion
	err := r.DB.First(&suggestion, id).Error
	if err != nil {
		return nil, err
	}
	return &suggestion, nil
}

func (r *SuggestionRepository) Save(suggestion *model.WordSuggestion) error {
	return r.DB.Save(suggestion).Error
}

func (r *SuggestionRepository) ListByStatus(status model.SuggestionStatus) ([]model.WordSuggestion, error) {
	query := r.DB.Model(&model.WordSuggestion{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var suggestions []model.WordSuggestion
	err := query.Order("created_at desc").Find(&suggestions).Error
	return suggestions, err
}
