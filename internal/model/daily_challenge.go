package model

import (
	"fmt"
	"time"
)

// DailyChallengeStatus is the closed draft/published lifecycle of a daily
// assignment. Only published assignments are ever visible on the delivery
// path; every visibility check goes through IsVisible.
type DailyChallengeStatus string

const (
	StatusDraft     DailyChallengeStatus = "draft"
	StatusPublished DailyChallengeStatus = "published"
)

func ParseDailyChallengeStatus(s string) (DailyChallengeStatus, error) {
	switch DailyChallengeStatus(s) {
	case StatusDraft:
		return StatusDraft, nil
	case StatusPublished:
		return StatusPublished, nil
	}
	return "", fmt.Errorf("invalid status %q, must be %q or %q", s, StatusDraft, StatusPublished)
}

func (s DailyChallengeStatus) IsVisible() bool {
	return s == StatusPublished
}

// DailyChallenge binds a calendar date to an ordered set of challenge ids.
// One row per date; assignments are replaced wholesale on upsert.
// swagger:model DailyChallenge
type DailyChallenge struct {
	BaseModel
	Date         string               `gorm:"type:varchar(10);uniqueIndex;not null" json:"date"`
	ChallengeIDs StringList           `gorm:"type:json" json:"challengeIds"`
	Status       DailyChallengeStatus `gorm:"type:varchar(20);default:'draft'" json:"status"`
	// PublishAt schedules an automatic draft -> published transition.
	PublishAt *time.Time `json:"publishAt,omitempty"`
}

func (DailyChallenge) TableName() string {
	return "daily_challenges"
}
