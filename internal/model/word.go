package model

// Word is one Shona dictionary entry.
// swagger:model Word
type Word struct {
	UUIDBase
	Shona        string     `gorm:"size:191;not null;index" json:"shona"`
	English      string     `gorm:"size:191;not null;index" json:"english"`
	Definition   string     `gorm:"type:text" json:"definition,omitempty"`
	PartOfSpeech string     `gorm:"size:50" json:"partOfSpeech,omitempty"`
	Examples     StringList `gorm:"type:json" json:"examples,omitempty"`
	AudioURL     string     `gorm:"size:512" json:"audioUrl,omitempty"`
	Tags         StringList `gorm:"type:json" json:"tags,omitempty"`
}

func (Word) TableName() string {
	return "words"
}
