package service

import (
	"os"
	"testing"

	"shona_dict_backend/internal/model"
	"shona_dict_backend/internal/repository"
	"shona_dict_backend/pkg/logger"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
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

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func newChallengeService(t *testing.T) *ChallengeService {
	t.Helper()
	return NewChallengeService(repository.NewChallengeRepository(newTestDB(t)), newTestRedis(t))
}

func validMultipleChoice() *model.Challenge {
	return &model.Challenge{
		Kind:          model.KindMultipleChoice,
		Question:      "What does 'mhoro' mean?",
		CorrectAnswer: model.AnswerKey{"hello"},
		Options:       model.StringList{"hello", "goodbye", "thanks", "please"},
		Explanation:   "Mhoro is the standard informal greeting.",
		Difficulty:    model.DifficultyBeginner,
		Points:        10,
	}
}

func validTranslationBuilder() *model.Challenge {
	return &model.Challenge{
		Kind:          model.KindTranslationBuilder,
		Question:      "Translate: I am walking home",
		CorrectAnswer: model.AnswerKey{"ndiri", "kufamba", "kumba"},
		Distractors:   model.StringList{"sadza", "mvura"},
		Difficulty:    model.DifficultyIntermediate,
		Points:        20,
	}
}
