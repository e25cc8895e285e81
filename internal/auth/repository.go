package auth

import (
	"gorm.io/gorm"
)

type Repository interface {
	CreateWithProfile(user *User, profile *Profile) error
	FindByUsername(username string) (*User, error)
	FindByID(userID uint) (User, error)
	UsernameTaken(username string, excludeID uint) (bool, error)
	Update(user *User) error
	UpdateLanguage(userID uint, language string) error
}

type repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

// Create a new user and their profile row in one transaction
func (r *repository) CreateWithProfile(user *User, profile *Profile) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		profile.UserID = user.ID
		return tx.Create(profile).Error
	})
}

// Find user by username (used in login)
func (r *repository) FindByUsername(username string) (*User, error) {
	var u User
	err := r.db.Preload("Profile").Where("username = ?", username).First(&u).Error
	return &u, err
}

// Find user by ID (with profile preload)
func (r *repository) FindByID(userID uint) (User, error) {
	var user User
	err := r.db.Preload("Profile").First(&user, userID).Error
	return user, err
}

func (r *repository) UsernameTaken(username string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&User{}).
		Where("username = ? AND id <> ?", username, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(user *User) error {
	return r.db.Save(user).Error
}

func (r *repository) UpdateLanguage(userID uint, language string) error {
	return r.db.Model(&Profile{}).
		Where("user_id = ?", userID).
		Update("language", language).Error
}
