package event

import (
	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(m *Event) error {
	return r.DB.Create(m).Error
}

func (r *Repository) FindByID(id uint) (*Event, error) {
	var m Event
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// List returns events newest first, optionally restricted to featured rows.
func (r *Repository) List(featuredOnly bool) ([]Event, error) {
	var events []Event
	query := r.DB.Order("created_at DESC")
	if featuredOnly {
		query = query.Where("featured = ?", true)
	}
	err := query.Find(&events).Error
	return events, err
}

func (r *Repository) Update(m *Event) error {
	return r.DB.Save(m).Error
}

func (r *Repository) Delete(id uint) (int64, error) {
	res := r.DB.Delete(&Event{}, id)
	return res.RowsAffected, res.Error
}

// ===========================
// Join records

func (r *Repository) FindJoin(eventID, userID uint) (*EventJoin, error) {
	var join EventJoin
	err := r.DB.Where("event_id = ? AND user_id = ?", eventID, userID).First(&join).Error
	if err != nil {
		return nil, err
	}
	return &join, nil
}

func (r *Repository) CreateJoin(join *EventJoin) error {
	return r.DB.Create(join).Error
}

func (r *Repository) DeleteJoin(eventID, userID uint) error {
	return r.DB.
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Delete(&EventJoin{}).Error
}

// CountJoins is the source of truth for join_count on the authenticated
// path: an exact recount instead of an increment, so concurrent joins
// cannot lose updates.
func (r *Repository) CountJoins(eventID uint) (int, error) {
	var count int64
	err := r.DB.Model(&EventJoin{}).Where("event_id = ?", eventID).Count(&count).Error
	return int(count), err
}

func (r *Repository) SetJoinCount(eventID uint, count int) error {
	return r.DB.Model(&Event{}).Where("id = ?", eventID).Update("join_count", count).Error
}
