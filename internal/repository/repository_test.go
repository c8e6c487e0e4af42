package repository

import (
	"testing"

	"shona_dict_backend/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named shared-cache database keeps gorm's pooled connections on the
	// same in-memory store while isolating tests from each other.
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Word{},
		&model.WordSuggestion{},
		&model.Challenge{},
		&model.DailyChallenge{},
		&model.ChallengeCompletion{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return db
}

func mustCreateChallenge(t *testing.T, repo *ChallengeRepository, kind model.ChallengeKind, answer model.AnswerKey) *model.Challenge {
	t.Helper()

	challenge := &model.Challenge{
		Kind:          kind,
		Question:      "What does 'mhoro' mean?",
		CorrectAnswer: answer,
		Options:       model.StringList{"hello", "goodbye", "thanks"},
		Difficulty:    model.DifficultyBeginner,
		Points:        10,
	}
	if err := repo.Create(challenge); err != nil {
		t.Fatalf("create challenge: %v", err)
	}
	return challenge
}
