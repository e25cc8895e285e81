package item

import (
	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(i *Item) error {
	return r.DB.Create(i).Error
}

func (r *Repository) FindByID(id uint) (*Item, error) {
	var i Item
	err := r.DB.First(&i, id).Error
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// List returns all items, newest first.
func (r *Repository) List() ([]Item, error) {
	var items []Item
	err := r.DB.Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *Repository) Update(i *Item) error {
	return r.DB.Save(i).Error
}

func (r *Repository) Delete(id uint) (int64, error) {
	res := r.DB.Delete(&Item{}, id)
	return res.RowsAffected, res.Error
}
