package category

import (
	"time"

	"github.com/gogevgelija/gogevgelija-backend/internal/i18n"
)

// ============================
// 🔷 GORM Category Model
// Name carries the legacy value and stays unique; the suffixed columns hold
// the per-language variants.
type Category struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	NameEN    string    `gorm:"column:name_en;type:varchar(50)"`
	NameMK    string    `gorm:"column:name_mk;type:varchar(50)"`
	Icon      string    `gorm:"type:varchar(50);not null"` // Ionicon name, e.g. "restaurant-outline"
	Trending  bool      `gorm:"default:false"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// Response is the language-resolved client projection.
type Response struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon"`
	Trending  bool      `json:"trending"`
	CreatedAt time.Time `json:"created_at"`
}

func (m *Category) Localize(lang i18n.Lang) Response {
	return Response{
		ID:        m.ID,
		Name:      i18n.Text{EN: m.NameEN, MK: m.NameMK, Legacy: m.Name}.Resolve(lang),
		Icon:      m.Icon,
		Trending:  m.Trending,
		CreatedAt: m.CreatedAt,
	}
}

// ============================
// 🟡 Create Category Request
type CreateCategoryRequest struct {
	Name     string `json:"name" binding:"required,max=50" example:"Restaurants"`
	NameEN   string `json:"name_en" binding:"omitempty,max=50" example:"Restaurants"`
	NameMK   string `json:"name_mk" binding:"omitempty,max=50" example:"Ресторани"`
	Icon     string `json:"icon" binding:"required,max=50" example:"restaurant-outline"`
	Trending bool   `json:"trending"`
}

// ============================
// 🟠 Update Category Request
type UpdateCategoryRequest struct {
	Name     *string `json:"name,omitempty"`
	NameEN   *string `json:"name_en,omitempty"`
	NameMK   *string `json:"name_mk,omitempty"`
	Icon     *string `json:"icon,omitempty"`
	Trending *bool   `json:"trending,omitempty"`
}
