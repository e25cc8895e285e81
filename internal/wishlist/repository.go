package wishlist

import (
	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(m *Wishlist) error {
	return r.DB.Create(m).Error
}

func (r *Repository) ListByUser(userID uint) ([]Wishlist, error) {
	var rows []Wishlist
	err := r.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&rows).Error
	return rows, err
}

func (r *Repository) Find(userID uint, itemType ItemType, itemID uint) (*Wishlist, error) {
	var m Wishlist
	err := r.DB.Where("user_id = ? AND item_type = ? AND item_id = ?", userID, itemType, itemID).First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repository) Delete(userID uint, itemType ItemType, itemID uint) (int64, error) {
	res := r.DB.Where("user_id = ? AND item_type = ? AND item_id = ?", userID, itemType, itemID).Delete(&Wishlist{})
	return res.RowsAffected, res.Error
}
