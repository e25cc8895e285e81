package promotion

import (
	"time"

	"gorm.io/datatypes"

	"github.com/gogevgelija/gogevgelija-backend/internal/i18n"
)

const dateLayout = "2006-01-02"

// ============================
// 🔷 GORM Promotion Model
type Promotion struct {
	ID uint `gorm:"primaryKey"`

	Title   string `gorm:"type:varchar(255);not null"`
	TitleEN string `gorm:"column:title_en;type:varchar(255)"`
	TitleMK string `gorm:"column:title_mk;type:varchar(255)"`

	Description   string `gorm:"type:text"`
	DescriptionEN string `gorm:"column:description_en;type:text"`
	DescriptionMK string `gorm:"column:description_mk;type:text"`

	Address   string `gorm:"type:varchar(500)"`
	AddressEN string `gorm:"column:address_en;type:varchar(500)"`
	AddressMK string `gorm:"column:address_mk;type:varchar(500)"`

	DiscountCode string `gorm:"column:discount_code;type:varchar(50)"`

	Tags   datatypes.JSONSlice[string] `gorm:"column:tags"` // e.g. ["Today", "Dine-in", "50% off"]
	TagsMK datatypes.JSONSlice[string] `gorm:"column:tags_mk"`

	Image      string     `gorm:"type:varchar(1000)"`
	ValidUntil *time.Time `gorm:"column:valid_until;type:date"`
	Featured   bool       `gorm:"default:false;index"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// Response is the language-resolved client projection.
type Response struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Address      string    `json:"address"`
	DiscountCode string    `json:"discount_code"`
	Tags         []string  `json:"tags"`
	Image        string    `json:"image"`
	ValidUntil   *string   `json:"valid_until"`
	Featured     bool      `json:"featured"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (m *Promotion) Localize(lang i18n.Lang) Response {
	var validUntil *string
	if m.ValidUntil != nil {
		s := m.ValidUntil.Format(dateLayout)
		validUntil = &s
	}

	return Response{
		ID:           m.ID,
		Title:        i18n.Text{EN: m.TitleEN, MK: m.TitleMK, Legacy: m.Title}.Resolve(lang),
		Description:  i18n.Text{EN: m.DescriptionEN, MK: m.DescriptionMK, Legacy: m.Description}.Resolve(lang),
		Address:      i18n.Text{EN: m.AddressEN, MK: m.AddressMK, Legacy: m.Address}.Resolve(lang),
		DiscountCode: m.DiscountCode,
		Tags:         i18n.List(lang, m.Tags, m.TagsMK),
		Image:        m.Image,
		ValidUntil:   validUntil,
		Featured:     m.Featured,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// ============================
// 🟡 Create Promotion Request
type CreatePromotionRequest struct {
	Title         string   `json:"title" binding:"required,max=255" example:"Weekend brunch deal"`
	TitleEN       string   `json:"title_en" binding:"omitempty,max=255"`
	TitleMK       string   `json:"title_mk" binding:"omitempty,max=255"`
	Description   string   `json:"description"`
	DescriptionEN string   `json:"description_en"`
	DescriptionMK string   `json:"description_mk"`
	Address       string   `json:"address" binding:"omitempty,max=500"`
	AddressEN     string   `json:"address_en" binding:"omitempty,max=500"`
	AddressMK     string   `json:"address_mk" binding:"omitempty,max=500"`
	DiscountCode  string   `json:"discount_code" binding:"omitempty,max=50" example:"BRUNCH50"`
	Tags          []string `json:"tags"`
	TagsMK        []string `json:"tags_mk"`
	Image         string   `json:"image" binding:"omitempty,url,max=1000"`
	ValidUntil    *string  `json:"valid_until" example:"2026-12-31"` // YYYY-MM-DD or null
	Featured      bool     `json:"featured"`
}

// ============================
// 🟠 Update Promotion Request
type UpdatePromotionRequest struct {
	Title         *string   `json:"title,omitempty"`
	TitleEN       *string   `json:"title_en,omitempty"`
	TitleMK       *string   `json:"title_mk,omitempty"`
	Description   *string   `json:"description,omitempty"`
	DescriptionEN *string   `json:"description_en,omitempty"`
	DescriptionMK *string   `json:"description_mk,omitempty"`
	Address       *string   `json:"address,omitempty"`
	AddressEN     *string   `json:"address_en,omitempty"`
	AddressMK     *string   `json:"address_mk,omitempty"`
	DiscountCode  *string   `json:"discount_code,omitempty"`
	Tags          *[]string `json:"tags,omitempty"`
	TagsMK        *[]string `json:"tags_mk,omitempty"`
	Image         *string   `json:"image,omitempty"`
	ValidUntil    *string   `json:"valid_until,omitempty"`
	Featured      *bool     `json:"featured,omitempty"`
}
