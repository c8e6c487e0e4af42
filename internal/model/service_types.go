package model

// ResolvedChallenge is the per-request, answer-order-randomized projection of
// a Challenge sent to players. The answer key is deliberately absent: answers
// stay server-side and never ride along with the question payload.
// swagger:model ResolvedChallenge
type ResolvedChallenge struct {
	ID          string        `json:"id"`
	Kind        ChallengeKind `json:"kind"`
	Question    string        `json:"question"`
	Difficulty  Difficulty    `json:"difficulty"`
	Points      int           `json:"points"`
	Explanation string        `json:"explanation,omitempty"`
	AudioURL    string        `json:"audioUrl,omitempty"`
	// Options is the freshly shuffled option list for multiple_choice and
	// audio_recognition kinds.
	Options []string `json:"options,omitempty"`
	// WordBank is the shuffled union of answer words and distractors for
	// translation_builder kinds.
	WordBank []string `json:"wordBank,omitempty"`
}

// DailyChallengePayload is the client-ready projection of one date's
// assignment. Skipped counts challenge references that no longer resolve;
// partial availability is preferred over failing the whole request.
// swagger:model DailyChallengePayload
type DailyChallengePayload struct {
	Date       string              `json:"date"`
	Challenges []ResolvedChallenge `json:"challenges"`
	Skipped    int                 `json:"skipped"`
}

// CompletionReceipt acknowledges a recorded completion event.
// swagger:model CompletionReceipt
type CompletionReceipt struct {
	ID string `json:"id"`
}

// CompletionSummary aggregates completion events for the back office.
// swagger:model CompletionSummary
type CompletionSummary struct {
	Date        string  `json:"date"`
	Completions int64   `json:"completions"`
	AvgAccuracy float64 `json:"avgAccuracy"`
	AvgScore    float64 `json:"avgScore"`
	AvgTime     float64 `json:"avgTimeSpent"`
}
