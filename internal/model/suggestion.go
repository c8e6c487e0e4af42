package model

type SuggestionStatus string

const (
	SuggestionPending  SuggestionStatus = "pending"
	SuggestionApproved SuggestionStatus = "approved"
	SuggestionRejected SuggestionStatus = "rejected"
)

// WordSuggestion is a community-contributed word addition or correction
// waiting for admin review. Approving a suggestion may materialize it into
// a Word.
// swagger:model WordSuggestion
type WordSuggestion struct {
	BaseModel
	Shona        string     `gorm:"size:191;not null" json:"shona"`
	English      string     `gorm:"size:191;not null" json:"english"`
	Definition   string     `gorm:"type:text" json:"definition,omitempty"`
	PartOfSpeech string     `gorm:"size:50" json:"partOfSpeech,omitempty"`
	Examples     StringList `gorm:"type:json" json:"examples,omitempty"`

	ContributorName  string `gorm:"size:100" json:"contributorName,omitempty"`
	ContributorEmail string `gorm:"size:100" json:"contributorEmail,omitempty"`

	Status     SuggestionStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	ReviewNote string           `gorm:"type:text" json:"reviewNote,omitempty"`
	// WordID links to the dictionary entry created on approval.
	WordID *string `gorm:"type:varchar(36)" json:"wordId,omitempty"`
}

func (WordSuggestion) TableName() string {
	return "word_suggestions"
}
