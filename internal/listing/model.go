package listing

import (
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/gogevgelija/gogevgelija-backend/internal/i18n"
)

// ============================
// 🔖 Listing Category (sum type)
type Category string

const (
	CategoryRestaurant Category = "restaurant"
	CategoryCafe       Category = "cafe"
	CategoryBar        Category = "bar"
	CategoryHotel      Category = "hotel"
	CategoryShop       Category = "shop"
	CategoryService    Category = "service"
	CategoryAttraction Category = "attraction"
	CategoryOther      Category = "other"
)

// ParseCategory rejects unknown tags at construction time.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryRestaurant, CategoryCafe, CategoryBar, CategoryHotel,
		CategoryShop, CategoryService, CategoryAttraction, CategoryOther:
		return Category(s), nil
	case "":
		return CategoryOther, nil
	}
	return "", fmt.Errorf("unknown listing category %q", s)
}

const (
	RatingMin = 0.0
	RatingMax = 5.0
)

// ============================
// 🔷 GORM Listing Model
type Listing struct {
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

	OpenTime   string `gorm:"column:open_time;type:varchar(100)"` // e.g. "Open until 23:00"
	OpenTimeEN string `gorm:"column:open_time_en;type:varchar(100)"`
	OpenTimeMK string `gorm:"column:open_time_mk;type:varchar(100)"`

	Category Category `gorm:"type:varchar(20);default:'other';index"`
	Rating   float64  `gorm:"type:decimal(3,1);default:0.0"`

	Tags   datatypes.JSONSlice[string] `gorm:"column:tags"` // e.g. ["Grill", "Family", "Outdoor"]
	TagsMK datatypes.JSONSlice[string] `gorm:"column:tags_mk"`

	Image    string `gorm:"type:varchar(1000)"`
	Phone    string `gorm:"type:varchar(50)"`
	Website  string `gorm:"type:varchar(1000)"`
	Featured bool   `gorm:"default:false;index"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// Response is the language-resolved client projection.
type Response struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Rating      float64   `json:"rating"`
	Address     string    `json:"address"`
	OpenTime    string    `json:"open_time"`
	Category    Category  `json:"category"`
	Tags        []string  `json:"tags"`
	Image       string    `json:"image"`
	Phone       string    `json:"phone"`
	Website     string    `json:"website"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (m *Listing) Localize(lang i18n.Lang) Response {
	return Response{
		ID:          m.ID,
		Title:       i18n.Text{EN: m.TitleEN, MK: m.TitleMK, Legacy: m.Title}.Resolve(lang),
		Description: i18n.Text{EN: m.DescriptionEN, MK: m.DescriptionMK, Legacy: m.Description}.Resolve(lang),
		Rating:      m.Rating,
		Address:     i18n.Text{EN: m.AddressEN, MK: m.AddressMK, Legacy: m.Address}.Resolve(lang),
		OpenTime:    i18n.Text{EN: m.OpenTimeEN, MK: m.OpenTimeMK, Legacy: m.OpenTime}.Resolve(lang),
		Category:    m.Category,
		Tags:        i18n.List(lang, m.Tags, m.TagsMK),
		Image:       m.Image,
		Phone:       m.Phone,
		Website:     m.Website,
		Featured:    m.Featured,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ============================
// 🟡 Create Listing Request
type CreateListingRequest struct {
	Title         string   `json:"title" binding:"required,max=255" example:"Restaurant Destan"`
	TitleEN       string   `json:"title_en" binding:"omitempty,max=255"`
	TitleMK       string   `json:"title_mk" binding:"omitempty,max=255"`
	Description   string   `json:"description"`
	DescriptionEN string   `json:"description_en"`
	DescriptionMK string   `json:"description_mk"`
	Address       string   `json:"address" binding:"omitempty,max=500" example:"Main Street 123, Gevgelija"`
	AddressEN     string   `json:"address_en" binding:"omitempty,max=500"`
	AddressMK     string   `json:"address_mk" binding:"omitempty,max=500"`
	OpenTime      string   `json:"open_time" binding:"omitempty,max=100" example:"Open until 23:00"`
	OpenTimeEN    string   `json:"open_time_en" binding:"omitempty,max=100"`
	OpenTimeMK    string   `json:"open_time_mk" binding:"omitempty,max=100"`
	Category      string   `json:"category" example:"restaurant"`
	Rating        float64  `json:"rating" example:"4.5"`
	Tags          []string `json:"tags"`
	TagsMK        []string `json:"tags_mk"`
	Image         string   `json:"image" binding:"omitempty,url,max=1000"`
	Phone         string   `json:"phone" binding:"omitempty,max=50"`
	Website       string   `json:"website" binding:"omitempty,url,max=1000"`
	Featured      bool     `json:"featured"`
}

// ============================
// 🟠 Update Listing Request
type UpdateListingRequest struct {
	Title         *string   `json:"title,omitempty"`
	TitleEN       *string   `json:"title_en,omitempty"`
	TitleMK       *string   `json:"title_mk,omitempty"`
	Description   *string   `json:"description,omitempty"`
	DescriptionEN *string   `json:"description_en,omitempty"`
	DescriptionMK *string   `json:"description_mk,omitempty"`
	Address       *string   `json:"address,omitempty"`
	AddressEN     *string   `json:"address_en,omitempty"`
	AddressMK     *string   `json:"address_mk,omitempty"`
	OpenTime      *string   `json:"open_time,omitempty"`
	OpenTimeEN    *string   `json:"open_time_en,omitempty"`
	OpenTimeMK    *string   `json:"open_time_mk,omitempty"`
	Category      *string   `json:"category,omitempty"`
	Rating        *float64  `json:"rating,omitempty"`
	Tags          *[]string `json:"tags,omitempty"`
	TagsMK        *[]string `json:"tags_mk,omitempty"`
	Image         *string   `json:"image,omitempty"`
	Phone         *string   `json:"phone,omitempty"`
	Website       *string   `json:"website,omitempty"`
	Featured      *bool     `json:"featured,omitempty"`
}
