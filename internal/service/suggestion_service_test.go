package service

import (
	"testing"

	"shona_dict_backend/internal/model"
	"shona_dict_backend/internal/repository"
	"shona_dict_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSuggestionFixture(t *testing.T) (*SuggestionService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewSuggestionService(repository.NewSuggestionRepository(db), repository.NewWordRepository(db)), db
}

func TestSubmitForcesPendingStatus(t *testing.T) {
	svc, _ := newSuggestionFixture(t)

	// A client cannot smuggle in a pre-approved state.
	wordID := "forged"
	suggestion := &model.WordSuggestion{
		Shona:      "bhazi",
		English:    "bus",
		Status:     model.SuggestionApproved,
		ReviewNote: "looks great",
		WordID:     &wordID,
	}
	require.NoError(t, svc.Submit(suggestion))

	assert.Equal(t, model.SuggestionPending, suggestion.Status)
	assert.Empty(t, suggestion.ReviewNote)
	assert.Nil(t, suggestion.WordID)
}

func TestSubmitValidation(t *testing.T) {
	svc, _ := newSuggestionFixture(t)

	err := svc.Submit(&model.WordSuggestion{English: "bus"})
	require.Error(t, err)
	assert.True(t, util.IsValidation(err))

	err = svc.Submit(&model.WordSuggestion{Shona: "bhazi"})
	require.Error(t, err)
	assert.True(t, util.IsValidation(err))
}

func TestApproveMaterializesWord(t *testing.T) {
	svc, db := newSuggestionFixture(t)

	suggestion := &model.WordSuggestion{
		Shona:      "bhazi",
		English:    "bus",
		Definition: "public transport vehicle",
		Examples:   model.StringList{"Ndakakwira bhazi kuenda kutaundi."},
	}
	require.NoError(t, svc.Submit(suggestion))

	approved, err := svc.Approve(suggestion.ID, "good entry")
	require.NoError(t, err)

	assert.Equal(t, model.SuggestionApproved, approved.Status)
	assert.Equal(t, "good entry", approved.ReviewNote)
	require.NotNil(t, approved.WordID)

	var word model.Word
	require.NoError(t, db.First(&word, "id = ?", *approved.WordID).Error)
	assert.Equal(t, "bhazi", word.Shona)
	assert.Equal(t, "bus", word.English)
	assert.Equal(t, "public transport vehicle", word.Definition)
	assert.Len(t, word.Examples, 1)
}

func TestReviewIsTerminal(t *testing.T) {
	svc, _ := newSuggestionFixture(t)

	suggestion := &model.WordSuggestion{Shona: "bhazi", English: "bus"}
	require.NoError(t, svc.Submit(suggestion))

	_, err := svc.Reject(suggestion.ID, "duplicate of an existing entry")
	require.NoError(t, err)

	_, err = svc.Approve(suggestion.ID, "changed my mind")
	assert.ErrorIs(t, err, util.ErrSuggestionReviewed)

	_, err = svc.Reject(suggestion.ID, "again")
	assert.ErrorIs(t, err, util.ErrSuggestionReviewed)
}

func TestReviewUnknownSuggestion(t *testing.T) {
	svc, _ := newSuggestionFixture(t)

	_, err := svc.Approve(999, "")
	assert.ErrorIs(t, err, util.ErrSuggestionNotFound)

	_, err = svc.Reject(999, "")
	assert.ErrorIs(t, err, util.ErrSuggestionNotFound)
}

func TestListSuggestionsByStatus(t *testing.T) {
	svc, _ := newSuggestionFixture(t)

	first := &model.WordSuggestion{Shona: "bhazi", English: "bus"}
	second := &model.WordSuggestion{Shona: "chikoro", English: "school"}
	require.NoError(t, svc.Submit(first))
	require.NoError(t, svc.Submit(second))

	_, err := svc.Reject(first.ID, "duplicate")
	require.NoError(t, err)

	pending, err := svc.List(model.SuggestionPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "chikoro", pending[0].Shona)

	all, err := svc.List("")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
