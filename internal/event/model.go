package event

import (
	"time"

	"github.com/gogevgelija/gogevgelija-backend/internal/i18n"
)

// ============================
// 🔷 GORM Event Model
type Event struct {
	ID uint `gorm:"primaryKey"`

	Title   string `gorm:"type:varchar(255);not null"`
	TitleEN string `gorm:"column:title_en;type:varchar(255)"`
	TitleMK string `gorm:"column:title_mk;type:varchar(255)"`

	Description   string `gorm:"type:text"`
	DescriptionEN string `gorm:"column:description_en;type:text"`
	DescriptionMK string `gorm:"column:description_mk;type:text"`

	Location   string `gorm:"type:varchar(255)"`
	LocationEN string `gorm:"column:location_en;type:varchar(255)"`
	LocationMK string `gorm:"column:location_mk;type:varchar(255)"`

	DateTime     string `gorm:"column:date_time;type:varchar(100)"` // display text, e.g. "Fri, 20:00"
	CoverImage   string `gorm:"column:cover_image;type:varchar(1000)"`
	EntryPrice   string `gorm:"column:entry_price;type:varchar(100)"` // display text, e.g. "200 MKD"
	AgeLimit     string `gorm:"column:age_limit;type:varchar(50)"`
	Expectations string `gorm:"type:text"`

	// Mutated only through join/unjoin.
	JoinCount int  `gorm:"column:join_count;default:0"`
	Featured  bool `gorm:"default:false;index"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// ============================
// 🔷 GORM Event Join Model
// One row per authenticated user who joined an event.
type EventJoin struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	EventID   uint      `gorm:"not null;uniqueIndex:idx_event_join_event_user" json:"event_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_event_join_event_user" json:"user_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// Response is the language-resolved client projection.
type Response struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	DateTime     string    `json:"date_time"`
	Location     string    `json:"location"`
	CoverImage   string    `json:"cover_image"`
	EntryPrice   string    `json:"entry_price"`
	AgeLimit     string    `json:"age_limit"`
	Expectations string    `json:"expectations"`
	JoinCount    int       `json:"join_count"`
	Featured     bool      `json:"featured"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (m *Event) Localize(lang i18n.Lang) Response {
	return Response{
		ID:           m.ID,
		Title:        i18n.Text{EN: m.TitleEN, MK: m.TitleMK, Legacy: m.Title}.Resolve(lang),
		Description:  i18n.Text{EN: m.DescriptionEN, MK: m.DescriptionMK, Legacy: m.Description}.Resolve(lang),
		DateTime:     m.DateTime,
		Location:     i18n.Text{EN: m.LocationEN, MK: m.LocationMK, Legacy: m.Location}.Resolve(lang),
		CoverImage:   m.CoverImage,
		EntryPrice:   m.EntryPrice,
		AgeLimit:     m.AgeLimit,
		Expectations: m.Expectations,
		JoinCount:    m.JoinCount,
		Featured:     m.Featured,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// ============================
// 🟡 Create Event Request
type CreateEventRequest struct {
	Title         string `json:"title" binding:"required,max=255" example:"Gevgelija Music Festival"`
	TitleEN       string `json:"title_en" binding:"omitempty,max=255"`
	TitleMK       string `json:"title_mk" binding:"omitempty,max=255"`
	Description   string `json:"description"`
	DescriptionEN string `json:"description_en"`
	DescriptionMK string `json:"description_mk"`
	Location      string `json:"location" binding:"omitempty,max=255" example:"City Park, Gevgelija"`
	LocationEN    string `json:"location_en" binding:"omitempty,max=255"`
	LocationMK    string `json:"location_mk" binding:"omitempty,max=255"`
	DateTime      string `json:"date_time" binding:"omitempty,max=100" example:"Fri, 20:00"`
	CoverImage    string `json:"cover_image" binding:"omitempty,url,max=1000"`
	EntryPrice    string `json:"entry_price" binding:"omitempty,max=100" example:"Free entry"`
	AgeLimit      string `json:"age_limit" binding:"omitempty,max=50" example:"18+"`
	Expectations  string `json:"expectations"`
	Featured      bool   `json:"featured"`
}

// ============================
// 🟠 Update Event Request
type UpdateEventRequest struct {
	Title         *string `json:"title,omitempty"`
	TitleEN       *string `json:"title_en,omitempty"`
	TitleMK       *string `json:"title_mk,omitempty"`
	Description   *string `json:"description,omitempty"`
	DescriptionEN *string `json:"description_en,omitempty"`
	DescriptionMK *string `json:"description_mk,omitempty"`
	Location      *string `json:"location,omitempty"`
	LocationEN    *string `json:"location_en,omitempty"`
	LocationMK    *string `json:"location_mk,omitempty"`
	DateTime      *string `json:"date_time,omitempty"`
	CoverImage    *string `json:"cover_image,omitempty"`
	EntryPrice    *string `json:"entry_price,omitempty"`
	AgeLimit      *string `json:"age_limit,omitempty"`
	Expectations  *string `json:"expectations,omitempty"`
	Featured      *bool   `json:"featured,omitempty"`
}
