package repository

import (
	"shona_dict_backend/internal/model"

	"gorm.io/gorm"
)

type WordRepository struct {
	DB *gorm.DB
}

func NewWordRepository(db *gorm.DB) *WordRepository {
	return &WordRepository{DB: db}
}

func (r *WordRepository) Create(word *model.Word) error {
	return r.DB.Create(word).Error
}

func (r *WordRepository) FindByID(id string) (*model.Word, error) {
	var word model.Word
	err := r.DB.First(&word, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &word, nil
}

func (r *WordRepository) Save(word *model.Word) error {
	return r.DB.Save(word).Error
}

func (r *WordRepository) Delete(id string) (bool, error) {
	result := r.DB.Delete(&model.Word{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Search matches the query against the Shona headword, the English gloss and
// the definition text, paginated.
func (r *WordRepository) Search(search string, page, limit int) ([]model.Word, int64, error) {
	query := r.DB.Model(&model.Word{})
	if search != "" {
		term := "%" + search + "%"
		query = query.Where("shona LIKE ? OR english LIKE ? OR definition LIKE ?", term, term, term)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var words []model.Word
	offset := (page - 1) * limit
	err := query.Order("shona asc").Offset(offset).Limit(limit).Find(&words).Error
	return words, total, err
}
