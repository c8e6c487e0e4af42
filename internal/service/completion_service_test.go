package service

import (
	"testing"

	"shona_dict_backend/internal/repository"
	"shona_dict_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCompletionService(t *testing.T) *CompletionService {
	t.Helper()
	return NewCompletionService(repository.NewCompletionRepository(newTestDB(t)))
}

func validCompletionInput() *CompletionInput {
	score, correct, total, spent := 30, 3, 5, 120
	accuracy := 0.6
	return &CompletionInput{
		Date:            "2026-08-01",
		TotalScore:      &score,
		CorrectAnswers:  &correct,
		TotalChallenges: &total,
		Accuracy:        &accuracy,
		TimeSpent:       &spent,
		UserID:          "user-1",
		ClientTimestamp: "2026-08-01T18:04:00Z",
	}
}

func TestRecordCompletion(t *testing.T) {
	svc := newCompletionService(t)

	stored, err := svc.Record(validCompletionInput(), RequestMeta{
		City:      "Harare",
		Country:   "ZW",
		UserAgent: "test-agent",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, stored.ID)
	assert.Equal(t, "2026-08-01", stored.Date)
	assert.Equal(t, 30, stored.TotalScore)
	assert.Equal(t, 0.6, stored.Accuracy)
	assert.Equal(t, "Harare", stored.City)
	assert.Equal(t, "test-agent", stored.UserAgent)
}

func TestRecordCompletionAcceptsZeroValues(t *testing.T) {
	svc := newCompletionService(t)

	// A failed run with zero score and zero accuracy is still a valid event.
	input := validCompletionInput()
	zero := 0
	zeroF := 0.0
	input.TotalScore = &zero
	input.CorrectAnswers = &zero
	input.Accuracy = &zeroF

	stored, err := svc.Record(input, RequestMeta{})
	require.NoError(t, err)
	assert.Equal(t, 0, stored.TotalScore)
	assert.Equal(t, 0.0, stored.Accuracy)
}

func TestRecordCompletionValidation(t *testing.T) {
	svc := newCompletionService(t)

	cases := []struct {
		name   string
		mutate func(*CompletionInput)
	}{
		{"bad date", func(in *CompletionInput) { in.Date = "august first" }},
		{"missing score", func(in *CompletionInput) { in.TotalScore = nil }},
		{"missing correct count", func(in *CompletionInput) { in.CorrectAnswers = nil }},
		{"missing total", func(in *CompletionInput) { in.TotalChallenges = nil }},
		{"missing accuracy", func(in *CompletionInput) { in.Accuracy = nil }},
		{"missing time spent", func(in *CompletionInput) { in.TimeSpent = nil }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validCompletionInput()
			tc.mutate(input)
			_, err := svc.Record(input, RequestMeta{})
			require.Error(t, err)
			assert.True(t, util.IsValidation(err), "got %v", err)
		})
	}
}

func TestRepeatedCompletionsAreSeparateRows(t *testing.T) {
	svc := newCompletionService(t)

	for i := 0; i < 3; i++ {
		_, err := svc.Record(validCompletionInput(), RequestMeta{})
		require.NoError(t, err)
	}

	events, err := svc.ListCompletions("2026-08-01", "2026-08-01")
	require.NoError(t, err)
	assert.Len(t, events, 3)

	summaries, err := svc.SummarizeCompletions("", "")
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, int64(3), summaries[0].Completions)
}
