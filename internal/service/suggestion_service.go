package service

import (
	"errors"

	"shona_dict_backend/internal/model"
	"shona_dict_backend/internal/repository"
	"shona_dict_backend/internal/util"

	"gorm.io/gorm"
)

type SuggestionService struct {
	SuggestionRepo *repository.SuggestionRepository
	WordRepo       *repository.WordRepository
}

func NewSuggestionService(suggestionRepo *repository.SuggestionRepository, wordRepo *repository.WordRepository) *SuggestionService {
	return &SuggestionService{
		SuggestionRepo: suggestionRepo,
		WordRepo:       wordRepo,
	}
}

// Submit accepts a public contribution; it always enters the queue as
// pending regardless of what the client sent.
func (s *SuggestionService) Submit(suggestion *model.WordSuggestion) error {
	if suggestion.Shona == "" {
		return util.NewValidationError("shona", "is required")
	}
	if suggestion.English == "" {
		return util.NewValidationError("english", "is required")
	}
	suggestion.Status = model.SuggestionPending
	suggestion.ReviewNote = ""
	suggestion.WordID = nil
	return s.SuggestionRepo.Create(suggestion)
}

func (s *SuggestionService) List(status model.SuggestionStatus) ([]model.WordSuggestion, error) {
	return s.SuggestionRepo.ListByStatus(status)
}

// Approve marks the suggestion approved and materializes it into a
// dictionary entry in the same transaction.
func (s *SuggestionService) Approve(id uint, note string) (*model.WordSuggestion, error) {
	suggestion, err := s.SuggestionRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrSuggestionNotFound
	}
	if err != nil {
		return nil, err
	}
	if suggestion.Status != model.SuggestionPending {
		return nil, util.ErrSuggestionReviewed
	}

	word := &model.Word{
		Shona:        suggestion.Shona,
		English:      suggestion.English,
		Definition:   suggestion.Definition,
		PartOfSpeech: suggestion.PartOfSpeech,
		Examples:     suggestion.Examples,
	}

	err = s.SuggestionRepo.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(word).Error; err != nil {
			return err
		}
		suggestion.Status = model.SuggestionApproved
		suggestion.ReviewNote = note
		suggestion.WordID = &word.ID
		return tx.Save(suggestion).Error
	})
	if err != nil {
		return nil, err
	}
	return suggestion, nil
}

func (s *SuggestionService) Reject(id uint, note string) (*model.WordSuggestion, error) {
	suggestion, err := s.SuggestionRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrSuggestionNotFound
	}
	if err != nil {
		return nil, err
	}
	if suggestion.Status != model.SuggestionPending {
		return nil, util.ErrSuggestionReviewed
	}

	suggestion.Status = model.SuggestionRejected
	suggestion.ReviewNote = note
	if err := s.SuggestionRepo.Save(suggestion); err != nil {
		return nil, err
	}
	return suggestion, nil
}
