package promotion

import (
	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(m *Promotion) error {
	return r.DB.Create(m).Error
}

func (r *Repository) FindByID(id uint) (*Promotion, error) {
	var m Promotion
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// List returns promotions newest first, optionally restricted to featured rows.
func (r *Repository) List(featuredOnly bool) ([]Promotion, error) {
	var promotions []Promotion
	query := r.DB.Order("created_at DESC")
	if featuredOnly {
		query = query.Where("featured = ?", true)
	}
	err := query.Find(&promotions).Error
	return promotions, err
}

func (r *Repository) Update(m *Promotion) error {
	return r.DB.Save(m).Error
}

func (r *Repository) Delete(id uint) (int64, error) {
	res := r.DB.Delete(&Promotion{}, id)
	return res.RowsAffected, res.Error
}
