package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"shona_dict_backend/internal/model"
	"shona_dict_backend/internal/repository"
	"shona_dict_backend/internal/util"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const wordCacheTTL = 10 * time.Minute

type WordService struct {
	WordRepo *repository.WordRepository
	Redis    *redis.Client
}

func NewWordService(wordRepo *repository.WordRepository, rdb *redis.Client) *WordService {
	return &WordService{WordRepo: wordRepo, Redis: rdb}
}

// WordUpdate carries a partial dictionary edit; nil fields are left alone.
type WordUpdate struct {
	Shona        *string           `json:"shona"`
	English      *string           `json:"english"`
	Definition   *string           `json:"definition"`
	PartOfSpeech *string           `json:"partOfSpeech"`
	Examples     *model.StringList `json:"examples"`
	AudioURL     *string           `json:"audioUrl"`
	Tags         *model.StringList `json:"tags"`
}

func (s *WordService) CreateWord(word *model.Word) error {
	if word.Shona == "" {
		return util.NewValidationError("shona", "is required")
	}
	if word.English == "" {
		return util.NewValidationError("english", "is required")
	}
	return s.WordRepo.Create(word)
}

func (s *WordService) SearchWords(search string, page, limit int) ([]model.Word, int64, error) {
	return s.WordRepo.Search(search, page, limit)
}

func (s *WordService) GetWord(id string) (*model.Word, error) {
	if cached := s.cachedWord(id); cached != nil {
		return cached, nil
	}

	word, err := s.WordRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrWordNotFound
	}
	if err != nil {
		return nil, err
	}

	s.cacheWord(word)
	return word, nil
}

func (s *WordService) UpdateWord(id string, update *WordUpdate) (*model.Word, error) {
	word, err := s.WordRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrWordNotFound
	}
	if err != nil {
		return nil, err
	}

	if update.Shona != nil {
		word.Shona = *update.Shona
	}
	if update.English != nil {
		word.English = *update.English
	}
	if update.Definition != nil {
		word.Definition = *update.Definition
	}
	if update.PartOfSpeech != nil {
		word.PartOfSpeech = *update.PartOfSpeech
	}
	if update.Examples != nil {
		word.Examples = *update.Examples
	}
	if update.AudioURL != nil {
		word.AudioURL = *update.AudioURL
	}
	if update.Tags != nil {
		word.Tags = *update.Tags
	}

	if word.Shona == "" || word.English == "" {
		return nil, util.NewValidationError("shona", "headword and gloss cannot be emptied")
	}

	if err := s.WordRepo.Save(word); err != nil {
		return nil, err
	}
	s.invalidateWordCache(id)
	return word, nil
}

func (s *WordService) DeleteWord(id string) error {
	removed, err := s.WordRepo.Delete(id)
	if err != nil {
		return err
	}
	if !removed {
		return util.ErrWordNotFound
	}
	s.invalidateWordCache(id)
	return nil
}

// AttachAudio records the stored pronunciation clip URL on the word.
func (s *WordService) AttachAudio(id string, audioURL string) (*model.Word, error) {
	return s.UpdateWord(id, &WordUpdate{AudioURL: &audioURL})
}

func (s *WordService) wordCacheKey(id string) string {
	return "word:" + id
}

func (s *WordService) cachedWord(id string) *model.Word {
	if s.Redis == nil {
		return nil
	}
	data, err := s.Redis.Get(context.Background(), s.wordCacheKey(id)).Bytes()
	if err != nil {
		return nil
	}
	var word model.Word
	if err := json.Unmarshal(data, &word); err != nil {
		return nil
	}
	return &word
}

func (s *WordService) cacheWord(word *model.Word) {
	if s.Redis == nil {
		return
	}
	data, err := json.Marshal(word)
	if err != nil {
		return
	}
	s.Redis.Set(context.Background(), s.wordCacheKey(word.ID), data, wordCacheTTL)
}

func (s *WordService) invalidateWordCache(id string) {
	if s.Redis == nil {
		return
	}
	s.Redis.Del(context.Background(), s.wordCacheKey(id))
}
