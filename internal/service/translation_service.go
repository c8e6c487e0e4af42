package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"shona_dict_backend/internal/config"
	"shona_dict_backend/internal/util"
	"shona_dict_backend/pkg/logger"

	"go.uber.org/zap"
)

// Translation directions.
const (
	DirectionEnglishToShona = "en-sn"
	DirectionShonaToEnglish = "sn-en"
)

// TranslationService calls an OpenAI-compatible chat completion endpoint for
// machine translation and example-sentence generation.
type TranslationService struct {
	mu     sync.RWMutex
	config config.AIConfig
	client *http.Client
}

func NewTranslationService(cfg config.AIConfig) *TranslationService {
	return &TranslationService{
		config: cfg,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// SetConfig swaps the upstream endpoint settings, used by config hot reload.
func (s *TranslationService) SetConfig(cfg config.AIConfig) {
	s.mu.Lock()
	s.config = cfg
	s.mu.Unlock()
}

func (s *TranslationService) currentConfig() config.AIConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Translate returns the translation of text in the given direction.
func (s *TranslationService) Translate(text, direction string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", util.NewValidationError("text", "is required")
	}

	var system string
	switch direction {
	case DirectionEnglishToShona:
		system = "You are a translator for the Shona language of Zimbabwe. Translate the user's English text into natural Shona. Reply with the translation only, no commentary."
	case DirectionShonaToEnglish:
		system = "You are a translator for the Shona language of Zimbabwe. Translate the user's Shona text into natural English. Reply with the translation only, no commentary."
	default:
		return "", util.NewValidationError("direction", "must be en-sn or sn-en")
	}

	result, err := s.chat(system, text)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(result), nil
}

// GenerateExamples asks the model for example sentences using the given word,
// one per line, returned as a cleaned list.
func (s *TranslationService) GenerateExamples(shona, english string, count int) ([]string, error) {
	if shona == "" {
		return nil, util.NewValidationError("shona", "is required")
	}
	if count < 1 || count > 10 {
		count = 3
	}

	system := "You are a Shona language teacher. Write short, natural example sentences in Shona, each followed by its English translation in parentheses. Output one example per line with no numbering."
	prompt := fmt.Sprintf("Write %d example sentences using the Shona word %q (English: %q).", count, shona, english)

	result, err := s.chat(system, prompt)
	if err != nil {
		return nil, err
	}

	examples := []string{}
	for _, line := range strings.Split(result, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(line, "-*0123456789. "))
		if line != "" {
			examples = append(examples, line)
		}
	}
	return examples, nil
}

func (s *TranslationService) chat(system, prompt string) (string, error) {
	cfg := s.currentConfig()
	reqBody := chatCompletionRequest{
		Model: cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest("POST", cfg.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+cfg.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		logger.Log.Error("AI request failed", zap.Error(err))
		return "", util.ErrTranslationUpstream
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		logger.Log.Error("AI API error",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body))
		return "", util.ErrTranslationUpstream
	}

	var result chatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}
	if result.Error != nil {
		logger.Log.Error("AI API returned error", zap.String("message", result.Error.Message))
		return "", util.ErrTranslationUpstream
	}

	if len(result.Choices) > 0 {
		return result.Choices[0].Message.Content, nil
	}

	logger.Log.Error("AI returned no choices")
	return "", util.ErrTranslationUpstream
}
