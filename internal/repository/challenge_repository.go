package repository

import (
	"time"

	"shona_dict_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ChallengeRepository owns challenge items and the per-date daily challenge
// assignments that reference them.
type ChallengeRepository struct {
	DB *gorm.DB
}

func NewChallengeRepository(db *gorm.DB) *ChallengeRepository {
	return &ChallengeRepository{DB: db}
}

func (r *ChallengeRepository) Create(challenge *model.Challenge) error {
	return r.DB.Create(challenge).Error
}

func (r *ChallengeRepository) FindByID(id string) (*model.Challenge, error) {
	var challenge model.Challenge
	err := r.DB.First(&challenge, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &challenge, nil
}

// FindByIDs returns the subset of ids that still resolve, keyed by id.
// Missing ids are simply absent from the result.
func (r *ChallengeRepository) FindByIDs(ids []string) (map[string]*model.Challenge, error) {
	if len(ids) == 0 {
		return map[string]*model.Challenge{}, nil
	}
	var challenges []model.Challenge
	if err := r.DB.Where("id IN ?", ids).Find(&challenges).Error; err != nil {
		return nil, err
	}
	byID := make(map[string]*model.Challenge, len(challenges))
	for i := range challenges {
		byID[challenges[i].ID] = &challenges[i]
	}
	return byID, nil
}

func (r *ChallengeRepository) Save(challenge *model.Challenge) error {
	return r.DB.Save(challenge).Error
}

// Delete removes a challenge and reports whether a row was actually removed.
func (r *ChallengeRepository) Delete(id string) (bool, error) {
	result := r.DB.Delete(&model.Challenge{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// List filters by kind and difficulty; empty filter fields match everything,
// non-empty fields are ANDed.
func (r *ChallengeRepository) List(kind model.ChallengeKind, difficulty model.Difficulty) ([]model.Challenge, error) {
	query := r.DB.Model(&model.Challenge{})
	if kind != "" {
		query = query.Where("kind = ?", kind)
	}
	if difficulty != "" {
		query = query.Where("difficulty = ?", difficulty)
	}

	var challenges []model.Challenge
	err := query.Order("created_at desc").Find(&challenges).Error
	return challenges, err
}

// UpsertAssignment replaces the assignment for its date wholesale: the
// challenge-id list, status and publish schedule are written as one
// date-keyed upsert, so no partial state is ever visible.
func (r *ChallengeRepository) UpsertAssignment(assignment *model.DailyChallenge) (*model.DailyChallenge, error) {
	err := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"challenge_ids", "status", "publish_at", "updated_at"}),
	}).Create(assignment).Error
	if err != nil {
		return nil, err
	}
	return r.FindAssignmentByDate(assignment.Date)
}

func (r *ChallengeRepository) FindAssignmentByDate(date string) (*model.DailyChallenge, error) {
	var assignment model.DailyChallenge
	err := r.DB.Where("date = ?", date).First(&assignment).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// FindPublishedByDate returns the assignment for date only when it is
// published; drafts behave exactly like missing rows here.
func (r *ChallengeRepository) FindPublishedByDate(date string) (*model.DailyChallenge, error) {
	var assignment model.DailyChallenge
	err := r.DB.Where("date = ? AND status = ?", date, model.StatusPublished).First(&assignment).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// UpdateAssignmentStatus reports whether an assignment for date existed.
// Any status change consumes the publish schedule, so a re-drafted
// assignment stays a draft until an admin acts on it again.
func (r *ChallengeRepository) UpdateAssignmentStatus(date string, status model.DailyChallengeStatus) (bool, error) {
	result := r.DB.Model(&model.DailyChallenge{}).Where("date = ?", date).Updates(map[string]interface{}{
		"status":     status,
		"publish_at": nil,
	})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *ChallengeRepository) ListAssignments() ([]model.DailyChallenge, error) {
	var assignments []model.DailyChallenge
	err := r.DB.Order("date desc").Find(&assignments).Error
	return assignments, err
}

// DatesReferencing is the reverse lookup used by admins to gauge the blast
// radius of deleting a challenge. The id list lives in a JSON column, so the
// scan happens in Go; the table holds one row per calendar date.
func (r *ChallengeRepository) DatesReferencing(challengeID string) ([]string, error) {
	assignments, err := r.ListAssignments()
	if err != nil {
		return nil, err
	}
	dates := []string{}
	for _, a := range assignments {
		for _, id := range a.ChallengeIDs {
			if id == challengeID {
				dates = append(dates, a.Date)
				break
			}
		}
	}
	return dates, nil
}

// FindDuePublishes lists drafts whose scheduled publish time has passed.
func (r *ChallengeRepository) FindDuePublishes(now time.Time) ([]model.DailyChallenge, error) {
	var assignments []model.DailyChallenge
	err := r.DB.
		Where("status = ? AND publish_at IS NOT NULL AND publish_at <= ?", model.StatusDraft, now).
		Find(&assignments).Error
	return assignments, err
}
