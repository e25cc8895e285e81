package listing

import (
	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(m *Listing) error {
	return r.DB.Create(m).Error
}

func (r *Repository) FindByID(id uint) (*Listing, error) {
	var m Listing
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// List returns listings newest first, optionally restricted to featured rows.
func (r *Repository) List(featuredOnly bool) ([]Listing, error) {
	var listings []Listing
	query := r.DB.Order("created_at DESC")
	if featuredOnly {
		query = query.Where("featured = ?", true)
	}
	err := query.Find(&listings).Error
	return listings, err
}

func (r *Repository) Update(m *Listing) error {
	return r.DB.Save(m).Error
}

func (r *Repository) Delete(id uint) (int64, error) {
	res := r.DB.Delete(&Listing{}, id)
	return res.RowsAffected, res.Error
}
