package category

import (
	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(m *Category) error {
	return r.DB.Create(m).Error
}

func (r *Repository) FindByID(id uint) (*Category, error) {
	var m Category
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// List returns all categories ordered by name.
func (r *Repository) List() ([]Category, error) {
	var categories []Category
	err := r.DB.Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *Repository) Update(m *Category) error {
	return r.DB.Save(m).Error
}

func (r *Repository) Delete(id uint) (int64, error) {
	res := r.DB.Delete(&Category{}, id)
	return res.RowsAffected, res.Error
}
