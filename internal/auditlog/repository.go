package auditlog

import (
	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(entry *AuditLog) error {
	return r.DB.Create(entry).Error
}

// RecentByUser returns the latest entries for one user, newest first.
func (r *Repository) RecentByUser(userID uint, limit int) ([]AuditLog, error) {
	var logs []AuditLog
	err := r.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}
