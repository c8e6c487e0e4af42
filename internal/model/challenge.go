package model

type ChallengeKind string

const (
	KindMultipleChoice     ChallengeKind = "multiple_choice"
	KindAudioRecognition   ChallengeKind = "audio_recognition"
	KindTranslationBuilder ChallengeKind = "translation_builder"
)

func (k ChallengeKind) Valid() bool {
	switch k {
	case KindMultipleChoice, KindAudioRecognition, KindTranslationBuilder:
		return true
	}
	return false
}

// HasOptions reports whether the kind presents a fixed option list.
func (k ChallengeKind) HasOptions() bool {
	return k == KindMultipleChoice || k == KindAudioRecognition
}

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// Challenge is a single quiz question with its answer key and presentation
// metadata.
// swagger:model Challenge
type Challenge struct {
	UUIDBase
	Kind          ChallengeKind `gorm:"type:varchar(30);not null;index" json:"kind"`
	Question      string        `gorm:"type:text;not null" json:"question"`
	CorrectAnswer AnswerKey     `gorm:"type:json" json:"correctAnswer"`
	Options       StringList    `gorm:"type:json" json:"options,omitempty"`
	Distractors   StringList    `gorm:"type:json" json:"distractors,omitempty"`
	AudioURL      string        `gorm:"size:512" json:"audioUrl,omitempty"`
	Explanation   string        `gorm:"type:text" json:"explanation,omitempty"`
	Difficulty    Difficulty    `gorm:"type:varchar(20);not null;index" json:"difficulty"`
	Points        int           `gorm:"not null" json:"points"`
	Tags          StringList    `gorm:"type:json" json:"tags,omitempty"`
}

func (Challenge) TableName() string {
	return "challenges"
}
