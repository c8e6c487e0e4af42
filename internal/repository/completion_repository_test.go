package repository

import (
	"testing"

	"shona_dict_backend/internal/model"
)

func seedCompletion(t *testing.T, repo *CompletionRepository, date string, score int, accuracy float64) {
	t.Helper()

	err := repo.Create(&model.ChallengeCompletion{
		Date:            date,
		TotalScore:      score,
		CorrectAnswers:  3,
		TotalChallenges: 5,
		Accuracy:        accuracy,
		TimeSpent:       60,
	})
	if err != nil {
		t.Fatalf("seed completion: %v", err)
	}
}

func TestCompletionListByDateRange(t *testing.T) {
	repo := NewCompletionRepository(newTestDB(t))

	seedCompletion(t, repo, "2026-04-01", 30, 0.6)
	seedCompletion(t, repo, "2026-04-02", 40, 0.8)
	seedCompletion(t, repo, "2026-04-05", 50, 1.0)

	all, err := repo.ListByDateRange("", "")
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3, got %d", len(all))
	}

	window, err := repo.ListByDateRange("2026-04-02", "2026-04-04")
	if err != nil {
		t.Fatalf("list window: %v", err)
	}
	if len(window) != 1 || window[0].Date != "2026-04-02" {
		t.Fatalf("range filter wrong: %+v", window)
	}
}

func TestCompletionSummarizeByDate(t *testing.T) {
	repo := NewCompletionRepository(newTestDB(t))

	seedCompletion(t, repo, "2026-04-01", 30, 0.6)
	seedCompletion(t, repo, "2026-04-01", 50, 1.0)
	seedCompletion(t, repo, "2026-04-02", 40, 0.8)

	summaries, err := repo.SummarizeByDate("", "")
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 dates, got %d", len(summaries))
	}

	// Ordered date desc.
	if summaries[0].Date != "2026-04-02" || summaries[1].Date != "2026-04-01" {
		t.Fatalf("unexpected order: %+v", summaries)
	}

	first := summaries[1]
	if first.Completions != 2 {
		t.Fatalf("expected 2 completions, got %d", first.Completions)
	}
	if first.AvgScore != 40 {
		t.Fatalf("expected avg score 40, got %f", first.AvgScore)
	}
	if first.AvgAccuracy != 0.8 {
		t.Fatalf("expected avg accuracy 0.8, got %f", first.AvgAccuracy)
	}
}
