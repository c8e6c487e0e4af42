package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"shona_dict_backend/internal/model"
	"shona_dict_backend/internal/repository"
	"shona_dict_backend/internal/util"
	"shona_dict_backend/pkg/logger"
	"shona_dict_backend/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const assignmentCacheTTL = 5 * time.Minute

type ChallengeService struct {
	ChallengeRepo *repository.ChallengeRepository
	Redis         *redis.Client
}

func NewChallengeService(challengeRepo *repository.ChallengeRepository, rdb *redis.Client) *ChallengeService {
	return &ChallengeService{
		ChallengeRepo: challengeRepo,
		Redis:         rdb,
	}
}

// ChallengeUpdate carries a partial challenge edit; nil fields are left
// untouched.
type ChallengeUpdate struct {
	Kind          *model.ChallengeKind `json:"kind"`
	Question      *string              `json:"question"`
	CorrectAnswer *model.AnswerKey     `json:"correctAnswer"`
	Options       *model.StringList    `json:"options"`
	Distractors   *model.StringList    `json:"distractors"`
	AudioURL      *string              `json:"audioUrl"`
	Explanation   *string              `json:"explanation"`
	Difficulty    *model.Difficulty    `json:"difficulty"`
	Points        *int                 `json:"points"`
	Tags          *model.StringList    `json:"tags"`
}

func validateChallenge(c *model.Challenge) error {
	if !c.Kind.Valid() {
		return util.NewValidationError("kind", "must be multiple_choice, audio_recognition or translation_builder")
	}
	if c.Question == "" {
		return util.NewValidationError("question", "is required")
	}
	if len(c.CorrectAnswer) == 0 || c.CorrectAnswer.Single() == "" {
		return util.NewValidationError("correctAnswer", "is required")
	}
	if !c.Difficulty.Valid() {
		return util.NewValidationError("difficulty", "must be beginner, intermediate or advanced")
	}
	if c.Points <= 0 {
		return util.NewValidationError("points", "must be a positive integer")
	}
	if c.Kind.HasOptions() {
		if len(c.Options) < 2 {
			return util.NewValidationError("options", "at least two options are required")
		}
		found := false
		for _, opt := range c.Options {
			if opt == c.CorrectAnswer.Single() {
				found = true
				break
			}
		}
		if !found {
			return util.NewValidationError("correctAnswer", "must appear among options")
		}
	}
	return nil
}

func (s *ChallengeService) CreateChallenge(challenge *model.Challenge) error {
	if err := validateChallenge(challenge); err != nil {
		return err
	}
	return s.ChallengeRepo.Create(challenge)
}

func (s *ChallengeService) GetChallenge(id string) (*model.Challenge, error) {
	challenge, err := s.ChallengeRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrChallengeNotFound
	}
	return challenge, err
}

func (s *ChallengeService) UpdateChallenge(id string, update *ChallengeUpdate) (*model.Challenge, error) {
	challenge, err := s.GetChallenge(id)
	if err != nil {
		return nil, err
	}

	if update.Kind != nil {
		challenge.Kind = *update.Kind
	}
	if update.Question != nil {
		challenge.Question = *update.Question
	}
	if update.CorrectAnswer != nil {
		challenge.CorrectAnswer = *update.CorrectAnswer
	}
	if update.Options != nil {
		challenge.Options = *update.Options
	}
	if update.Distractors != nil {
		challenge.Distractors = *update.Distractors
	}
	if update.AudioURL != nil {
		challenge.AudioURL = *update.AudioURL
	}
	if update.Explanation != nil {
		challenge.Explanation = *update.Explanation
	}
	if update.Difficulty != nil {
		challenge.Difficulty = *update.Difficulty
	}
	if update.Points != nil {
		challenge.Points = *update.Points
	}
	if update.Tags != nil {
		challenge.Tags = *update.Tags
	}

	if err := validateChallenge(challenge); err != nil {
		return nil, err
	}
	if err := s.ChallengeRepo.Save(challenge); err != nil {
		return nil, err
	}
	return challenge, nil
}

func (s *ChallengeService) DeleteChallenge(id string) error {
	removed, err := s.ChallengeRepo.Delete(id)
	if err != nil {
		return err
	}
	if !removed {
		return util.ErrChallengeNotFound
	}
	return nil
}

func (s *ChallengeService) ListChallenges(kind model.ChallengeKind, difficulty model.Difficulty) ([]model.Challenge, error) {
	if kind != "" && !kind.Valid() {
		return nil, util.NewValidationError("kind", "unknown challenge kind")
	}
	if difficulty != "" && !difficulty.Valid() {
		return nil, util.NewValidationError("difficulty", "unknown difficulty")
	}
	return s.ChallengeRepo.List(kind, difficulty)
}

// ChallengeUsage reports every assignment date that references the challenge.
func (s *ChallengeService) ChallengeUsage(id string) ([]string, error) {
	return s.ChallengeRepo.DatesReferencing(id)
}

// AssignDailyChallenge upserts the assignment for date, replacing its
// challenge list and status wholesale.
func (s *ChallengeService) AssignDailyChallenge(date string, challengeIDs []string, status string, publishAt *time.Time) (*model.DailyChallenge, error) {
	if !util.DateKeyPattern.MatchString(date) {
		return nil, util.NewValidationError("date", "must be YYYY-MM-DD")
	}
	parsed, err := model.ParseDailyChallengeStatus(status)
	if err != nil {
		return nil, util.NewValidationError("status", err.Error())
	}

	assignment := &model.DailyChallenge{
		Date:         date,
		ChallengeIDs: model.StringList(challengeIDs),
		Status:       parsed,
		PublishAt:    publishAt,
	}
	stored, err := s.ChallengeRepo.UpsertAssignment(assignment)
	if err != nil {
		return nil, err
	}
	s.invalidateAssignmentCache(date)
	return stored, nil
}

func (s *ChallengeService) UpdateDailyChallengeStatus(date string, status string) error {
	parsed, err := model.ParseDailyChallengeStatus(status)
	if err != nil {
		return util.NewValidationError("status", err.Error())
	}
	updated, err := s.ChallengeRepo.UpdateAssignmentStatus(date, parsed)
	if err != nil {
		return err
	}
	if !updated {
		return util.ErrAssignmentNotFound
	}
	s.invalidateAssignmentCache(date)
	return nil
}

func (s *ChallengeService) ListDailyChallenges() ([]model.DailyChallenge, error) {
	return s.ChallengeRepo.ListAssignments()
}

// GetDailyChallenge resolves the published assignment for date into a
// client-ready payload. Drafts are indistinguishable from missing
// assignments. References that no longer resolve are skipped and counted
// rather than failing the request, and option order is reshuffled on every
// call while the challenge list itself keeps its stored order.
func (s *ChallengeService) GetDailyChallenge(date string) (*model.DailyChallengePayload, error) {
	if !util.DateKeyPattern.MatchString(date) {
		return nil, util.NewValidationError("date", "must be YYYY-MM-DD")
	}

	assignment, err := s.loadPublishedAssignment(date)
	if err != nil {
		return nil, err
	}

	byID, err := s.ChallengeRepo.FindByIDs(assignment.ChallengeIDs)
	if err != nil {
		return nil, err
	}

	payload := &model.DailyChallengePayload{
		Date:       date,
		Challenges: []model.ResolvedChallenge{},
	}
	for _, id := range assignment.ChallengeIDs {
		challenge, ok := byID[id]
		if !ok {
			payload.Skipped++
			monitoring.SkippedChallengeRefs.Inc()
			logger.Log.Warn("daily challenge references missing challenge",
				zap.String("date", date),
				zap.String("challengeId", id))
			continue
		}
		payload.Challenges = append(payload.Challenges, resolveChallenge(challenge))
	}

	monitoring.DailyChallengesServed.Inc()
	return payload, nil
}

// resolveChallenge projects a stored challenge into its delivery form. The
// answer key stays server-side; only the shuffled presentation lists go out.
func resolveChallenge(c *model.Challenge) model.ResolvedChallenge {
	resolved := model.ResolvedChallenge{
		ID:          c.ID,
		Kind:        c.Kind,
		Question:    c.Question,
		Difficulty:  c.Difficulty,
		Points:      c.Points,
		Explanation: c.Explanation,
		AudioURL:    c.AudioURL,
	}

	switch {
	case c.Kind.HasOptions():
		resolved.Options = util.Shuffle([]string(c.Options))
	case c.Kind == model.KindTranslationBuilder:
		bank := make([]string, 0, len(c.CorrectAnswer)+len(c.Distractors))
		bank = append(bank, c.CorrectAnswer.Words()...)
		bank = append(bank, c.Distractors...)
		resolved.WordBank = util.Shuffle(bank)
	}
	return resolved
}

// ProcessScheduledPublishes promotes drafts whose publish time has passed.
// Called from the app's background ticker.
func (s *ChallengeService) ProcessScheduledPublishes() error {
	due, err := s.ChallengeRepo.FindDuePublishes(time.Now())
	if err != nil {
		return err
	}
	for _, assignment := range due {
		if _, err := s.ChallengeRepo.UpdateAssignmentStatus(assignment.Date, model.StatusPublished); err != nil {
			return err
		}
		s.invalidateAssignmentCache(assignment.Date)
		logger.Log.Info("published scheduled daily challenge", zap.String("date", assignment.Date))
	}
	return nil
}

func (s *ChallengeService) loadPublishedAssignment(date string) (*model.DailyChallenge, error) {
	if cached := s.cachedAssignment(date); cached != nil {
		return cached, nil
	}

	assignment, err := s.ChallengeRepo.FindPublishedByDate(date)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrAssignmentNotFound
	}
	if err != nil {
		return nil, err
	}

	s.cacheAssignment(assignment)
	return assignment, nil
}

func (s *ChallengeService) assignmentCacheKey(date string) string {
	return "daily_challenge:" + date
}

func (s *ChallengeService) cachedAssignment(date string) *model.DailyChallenge {
	if s.Redis == nil {
		return nil
	}
	data, err := s.Redis.Get(context.Background(), s.assignmentCacheKey(date)).Bytes()
	if err != nil {
		return nil
	}
	var assignment model.DailyChallenge
	if err := json.Unmarshal(data, &assignment); err != nil {
		return nil
	}
	return &assignment
}

func (s *ChallengeService) cacheAssignment(assignment *model.DailyChallenge) {
	if s.Redis == nil {
		return
	}
	data, err := json.Marshal(assignment)
	if err != nil {
		return
	}
	s.Redis.Set(context.Background(), s.assignmentCacheKey(assignment.Date), data, assignmentCacheTTL)
}

func (s *ChallengeService) invalidateAssignmentCache(date string) {
	if s.Redis == nil {
		return
	}
	s.Redis.Del(context.Background(), s.assignmentCacheKey(date))
}
