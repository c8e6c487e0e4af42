package model

// ChallengeCompletion is an immutable record of a user finishing a day's
// assignment. Rows are append-only: no update or delete path exists, and
// repeated submissions for the same date produce distinct rows.
// swagger:model ChallengeCompletion
type ChallengeCompletion struct {
	UUIDBase
	Date            string  `gorm:"type:varchar(10);index;not null" json:"date"`
	UserID          string  `gorm:"type:varchar(36);index" json:"userId,omitempty"`
	TotalScore      int     `json:"totalScore"`
	CorrectAnswers  int     `json:"correctAnswers"`
	TotalChallenges int     `json:"totalChallenges"`
	Accuracy        float64 `json:"accuracy"`
	TimeSpent       int     `gorm:"column:time_spent_seconds" json:"timeSpent"`

	// Best-effort coarse geolocation from edge headers; may be empty.
	City      string `gorm:"size:100" json:"city,omitempty"`
	Country   string `gorm:"size:100" json:"country,omitempty"`
	Region    string `gorm:"size:100" json:"region,omitempty"`
	Latitude  string `gorm:"size:32" json:"latitude,omitempty"`
	Longitude string `gorm:"size:32" json:"longitude,omitempty"`

	UserAgent       string `gorm:"size:512" json:"userAgent,omitempty"`
	ClientTimestamp string `gorm:"size:40" json:"clientTimestamp,omitempty"`
}

func (ChallengeCompletion) TableName() string {
	return "challenge_completions"
}
