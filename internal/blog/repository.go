package blog

import (
	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(m *Blog) error {
	return r.DB.Create(m).Error
}

func (r *Repository) FindByID(id uint) (*Blog, error) {
	var m Blog
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// List returns published posts newest first, optionally restricted to
// featured rows. Drafts never leave this layer.
func (r *Repository) List(featuredOnly bool) ([]Blog, error) {
	var blogs []Blog
	query := r.DB.Where("published = ?", true).Order("created_at DESC")
	if featuredOnly {
		query = query.Where("featured = ?", true)
	}
	err := query.Find(&blogs).Error
	return blogs, err
}

func (r *Repository) Update(m *Blog) error {
	return r.DB.Save(m).Error
}

func (r *Repository) Delete(id uint) (int64, error) {
	res := r.DB.Delete(&Blog{}, id)
	return res.RowsAffected, res.Error
}
