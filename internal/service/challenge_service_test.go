package service

import (
	"sort"
	"testing"
	"time"

	"shona_dict_backend/internal/model"
	"shona_dict_backend/internal/repository"
	"shona_dict_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateChallengeValidation(t *testing.T) {
	svc := newChallengeService(t)

	cases := []struct {
		name   string
		mutate func(*model.Challenge)
	}{
		{"unknown kind", func(c *model.Challenge) { c.Kind = "essay" }},
		{"empty question", func(c *model.Challenge) { c.Question = "" }},
		{"empty answer", func(c *model.Challenge) { c.CorrectAnswer = nil }},
		{"bad difficulty", func(c *model.Challenge) { c.Difficulty = "impossible" }},
		{"zero points", func(c *model.Challenge) { c.Points = 0 }},
		{"negative points", func(c *model.Challenge) { c.Points = -5 }},
		{"single option", func(c *model.Challenge) { c.Options = model.StringList{"hello"} }},
		{"answer not among options", func(c *model.Challenge) { c.CorrectAnswer = model.AnswerKey{"zebra"} }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			challenge := validMultipleChoice()
			tc.mutate(challenge)
			err := svc.CreateChallenge(challenge)
			require.Error(t, err)
			assert.True(t, util.IsValidation(err), "expected validation error, got %v", err)
		})
	}

	require.NoError(t, svc.CreateChallenge(validMultipleChoice()))

	// Translation builders have no option list to validate against.
	require.NoError(t, svc.CreateChallenge(validTranslationBuilder()))
}

func TestUpdateChallengePartial(t *testing.T) {
	svc := newChallengeService(t)

	challenge := validMultipleChoice()
	require.NoError(t, svc.CreateChallenge(challenge))

	points := 50
	question := "What does 'mangwanani' mean?"
	answer := model.AnswerKey{"good morning"}
	options := model.StringList{"good morning", "good night"}

	updated, err := svc.UpdateChallenge(challenge.ID, &ChallengeUpdate{
		Question:      &question,
		CorrectAnswer: &answer,
		Options:       &options,
		Points:        &points,
	})
	require.NoError(t, err)

	assert.Equal(t, question, updated.Question)
	assert.Equal(t, 50, updated.Points)
	// Untouched fields survive.
	assert.Equal(t, model.KindMultipleChoice, updated.Kind)
	assert.Equal(t, model.DifficultyBeginner, updated.Difficulty)

	// An edit that breaks validation is rejected outright.
	bad := model.AnswerKey{"not an option"}
	_, err = svc.UpdateChallenge(challenge.ID, &ChallengeUpdate{CorrectAnswer: &bad})
	require.Error(t, err)
	assert.True(t, util.IsValidation(err))

	_, err = svc.UpdateChallenge("no-such-id", &ChallengeUpdate{Points: &points})
	assert.ErrorIs(t, err, util.ErrChallengeNotFound)
}

func TestDeleteChallengeNotFound(t *testing.T) {
	svc := newChallengeService(t)

	challenge := validMultipleChoice()
	require.NoError(t, svc.CreateChallenge(challenge))

	require.NoError(t, svc.DeleteChallenge(challenge.ID))
	assert.ErrorIs(t, svc.DeleteChallenge(challenge.ID), util.ErrChallengeNotFound)
}

func TestGetDailyChallengeHidesDrafts(t *testing.T) {
	svc := newChallengeService(t)

	challenge := validMultipleChoice()
	require.NoError(t, svc.CreateChallenge(challenge))

	_, err := svc.AssignDailyChallenge("2026-06-01", []string{challenge.ID}, "draft", nil)
	require.NoError(t, err)

	_, err = svc.GetDailyChallenge("2026-06-01")
	assert.ErrorIs(t, err, util.ErrAssignmentNotFound)

	// Publishing makes the same date visible.
	require.NoError(t, svc.UpdateDailyChallengeStatus("2026-06-01", "published"))

	payload, err := svc.GetDailyChallenge("2026-06-01")
	require.NoError(t, err)
	assert.Equal(t, "2026-06-01", payload.Date)
	require.Len(t, payload.Challenges, 1)
	assert.Equal(t, 0, payload.Skipped)
}

func TestGetDailyChallengeRejectsBadDate(t *testing.T) {
	svc := newChallengeService(t)

	for _, date := range []string{"", "2026-6-1", "not-a-date", "2026/06/01"} {
		_, err := svc.GetDailyChallenge(date)
		require.Error(t, err, "date %q", date)
		assert.True(t, util.IsValidation(err), "date %q: %v", date, err)
	}

	_, err := svc.GetDailyChallenge("2026-06-01")
	assert.ErrorIs(t, err, util.ErrAssignmentNotFound)
}

func TestGetDailyChallengeSkipsMissingRefs(t *testing.T) {
	svc := newChallengeService(t)

	a := validMultipleChoice()
	b := validTranslationBuilder()
	require.NoError(t, svc.CreateChallenge(a))
	require.NoError(t, svc.CreateChallenge(b))

	_, err := svc.AssignDailyChallenge("2026-06-02", []string{a.ID, "deleted-1", b.ID, "deleted-2"}, "published", nil)
	require.NoError(t, err)

	payload, err := svc.GetDailyChallenge("2026-06-02")
	require.NoError(t, err)

	assert.Equal(t, 2, payload.Skipped)
	require.Len(t, payload.Challenges, 2)
	// Stored order of surviving references is preserved.
	assert.Equal(t, a.ID, payload.Challenges[0].ID)
	assert.Equal(t, b.ID, payload.Challenges[1].ID)
}

func TestResolvedChallengeWithholdsAnswerKey(t *testing.T) {
	svc := newChallengeService(t)

	mc := validMultipleChoice()
	tb := validTranslationBuilder()
	require.NoError(t, svc.CreateChallenge(mc))
	require.NoError(t, svc.CreateChallenge(tb))

	_, err := svc.AssignDailyChallenge("2026-06-03", []string{mc.ID, tb.ID}, "published", nil)
	require.NoError(t, err)

	payload, err := svc.GetDailyChallenge("2026-06-03")
	require.NoError(t, err)
	require.Len(t, payload.Challenges, 2)

	choice := payload.Challenges[0]
	assert.ElementsMatch(t, []string(mc.Options), choice.Options)
	assert.Empty(t, choice.WordBank)

	builder := payload.Challenges[1]
	assert.Empty(t, builder.Options)
	// Word bank is the union of answer words and distractors, shuffled.
	want := append(append([]string{}, tb.CorrectAnswer.Words()...), tb.Distractors...)
	assert.ElementsMatch(t, want, builder.WordBank)
}

func TestGetDailyChallengeReshufflesOptions(t *testing.T) {
	svc := newChallengeService(t)

	challenge := validMultipleChoice()
	challenge.Options = model.StringList{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	challenge.CorrectAnswer = model.AnswerKey{"a"}
	require.NoError(t, svc.CreateChallenge(challenge))

	_, err := svc.AssignDailyChallenge("2026-06-04", []string{challenge.ID}, "published", nil)
	require.NoError(t, err)

	stored := append([]string{}, challenge.Options...)
	sort.Strings(stored)

	varied := false
	var prev []string
	for i := 0; i < 20; i++ {
		payload, err := svc.GetDailyChallenge("2026-06-04")
		require.NoError(t, err)
		got := payload.Challenges[0].Options

		check := append([]string{}, got...)
		sort.Strings(check)
		require.Equal(t, stored, check)

		if prev != nil {
			for j := range got {
				if got[j] != prev[j] {
					varied = true
					break
				}
			}
		}
		prev = got
	}
	assert.True(t, varied, "option order never changed across calls")
}

func TestAssignDailyChallengeReplacesAndInvalidatesCache(t *testing.T) {
	svc := newChallengeService(t)

	a := validMultipleChoice()
	b := validTranslationBuilder()
	require.NoError(t, svc.CreateChallenge(a))
	require.NoError(t, svc.CreateChallenge(b))

	_, err := svc.AssignDailyChallenge("2026-06-05", []string{a.ID}, "published", nil)
	require.NoError(t, err)

	// Prime the assignment cache.
	payload, err := svc.GetDailyChallenge("2026-06-05")
	require.NoError(t, err)
	require.Len(t, payload.Challenges, 1)

	// Reassigning the date must serve the new list immediately.
	_, err = svc.AssignDailyChallenge("2026-06-05", []string{b.ID}, "published", nil)
	require.NoError(t, err)

	payload, err = svc.GetDailyChallenge("2026-06-05")
	require.NoError(t, err)
	require.Len(t, payload.Challenges, 1)
	assert.Equal(t, b.ID, payload.Challenges[0].ID)

	assignments, err := svc.ListDailyChallenges()
	require.NoError(t, err)
	assert.Len(t, assignments, 1)
}

func TestAssignDailyChallengeValidation(t *testing.T) {
	svc := newChallengeService(t)

	_, err := svc.AssignDailyChallenge("june 5th", []string{"c1"}, "published", nil)
	require.Error(t, err)
	assert.True(t, util.IsValidation(err))

	_, err = svc.AssignDailyChallenge("2026-06-05", []string{"c1"}, "archived", nil)
	require.Error(t, err)
	assert.True(t, util.IsValidation(err))
}

func TestUpdateDailyChallengeStatus(t *testing.T) {
	svc := newChallengeService(t)

	err := svc.UpdateDailyChallengeStatus("2026-06-06", "published")
	assert.ErrorIs(t, err, util.ErrAssignmentNotFound)

	err = svc.UpdateDailyChallengeStatus("2026-06-06", "live")
	require.Error(t, err)
	assert.True(t, util.IsValidation(err))

	_, err = svc.AssignDailyChallenge("2026-06-06", nil, "published", nil)
	require.NoError(t, err)

	// Round trip published -> draft -> published.
	require.NoError(t, svc.UpdateDailyChallengeStatus("2026-06-06", "draft"))
	_, err = svc.GetDailyChallenge("2026-06-06")
	assert.ErrorIs(t, err, util.ErrAssignmentNotFound)

	require.NoError(t, svc.UpdateDailyChallengeStatus("2026-06-06", "published"))
	payload, err := svc.GetDailyChallenge("2026-06-06")
	require.NoError(t, err)
	assert.Equal(t, 0, len(payload.Challenges))
}

func TestProcessScheduledPublishes(t *testing.T) {
	svc := newChallengeService(t)

	past := time.Now().Add(-time.Minute)
	future := time.Now().Add(time.Hour)

	_, err := svc.AssignDailyChallenge("2026-06-07", nil, "draft", &past)
	require.NoError(t, err)
	_, err = svc.AssignDailyChallenge("2026-06-08", nil, "draft", &future)
	require.NoError(t, err)

	require.NoError(t, svc.ProcessScheduledPublishes())

	_, err = svc.GetDailyChallenge("2026-06-07")
	require.NoError(t, err, "past-due draft should be published")

	_, err = svc.GetDailyChallenge("2026-06-08")
	assert.ErrorIs(t, err, util.ErrAssignmentNotFound, "future draft must stay hidden")
}

func TestRedraftedAssignmentStaysHidden(t *testing.T) {
	svc := newChallengeService(t)

	past := time.Now().Add(-time.Minute)
	_, err := svc.AssignDailyChallenge("2026-06-09", nil, "draft", &past)
	require.NoError(t, err)

	require.NoError(t, svc.ProcessScheduledPublishes())
	_, err = svc.GetDailyChallenge("2026-06-09")
	require.NoError(t, err)

	// Re-drafting consumes the stale schedule; the sweep must not
	// republish.
	require.NoError(t, svc.UpdateDailyChallengeStatus("2026-06-09", "draft"))
	require.NoError(t, svc.ProcessScheduledPublishes())

	_, err = svc.GetDailyChallenge("2026-06-09")
	assert.ErrorIs(t, err, util.ErrAssignmentNotFound)
}

func TestChallengeUsage(t *testing.T) {
	svc := newChallengeService(t)

	challenge := validMultipleChoice()
	require.NoError(t, svc.CreateChallenge(challenge))

	for _, date := range []string{"2026-07-01", "2026-07-02"} {
		_, err := svc.AssignDailyChallenge(date, []string{challenge.ID}, "draft", nil)
		require.NoError(t, err)
	}

	dates, err := svc.ChallengeUsage(challenge.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"2026-07-01", "2026-07-02"}, dates)

	none, err := svc.ChallengeUsage("unused")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestListChallengesRejectsUnknownFilters(t *testing.T) {
	svc := newChallengeService(t)

	_, err := svc.ListChallenges("essay", "")
	require.Error(t, err)
	assert.True(t, util.IsValidation(err))

	_, err = svc.ListChallenges("", "impossible")
	require.Error(t, err)
	assert.True(t, util.IsValidation(err))

	all, err := svc.ListChallenges("", "")
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestGetDailyChallengeEndToEnd(t *testing.T) {
	db := newTestDB(t)
	svc := NewChallengeService(repository.NewChallengeRepository(db), newTestRedis(t))
	completions := NewCompletionService(repository.NewCompletionRepository(db))

	mc := validMultipleChoice()
	tb := validTranslationBuilder()
	require.NoError(t, svc.CreateChallenge(mc))
	require.NoError(t, svc.CreateChallenge(tb))

	_, err := svc.AssignDailyChallenge("2026-08-30", []string{mc.ID, tb.ID}, "published", nil)
	require.NoError(t, err)

	payload, err := svc.GetDailyChallenge("2026-08-30")
	require.NoError(t, err)
	require.Len(t, payload.Challenges, 2)

	score, correct, total, accuracy, spent := 30, 2, 2, 1.0, 95
	stored, err := completions.Record(&CompletionInput{
		Date:            payload.Date,
		TotalScore:      &score,
		CorrectAnswers:  &correct,
		TotalChallenges: &total,
		Accuracy:        &accuracy,
		TimeSpent:       &spent,
	}, RequestMeta{Country: "ZW", City: "Harare"})
	require.NoError(t, err)
	assert.NotEmpty(t, stored.ID)
	assert.Equal(t, "Harare", stored.City)
}
