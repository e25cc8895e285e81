package blog

import (
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/gogevgelija/gogevgelija-backend/internal/i18n"
)

// ============================
// 🔖 Blog Category (sum type)
type Category string

const (
	CategoryGuide     Category = "guide"
	CategoryFood      Category = "food"
	CategoryCulture   Category = "culture"
	CategoryEvents    Category = "events"
	CategoryTips      Category = "tips"
	CategoryNews      Category = "news"
	CategoryLifestyle Category = "lifestyle"
	CategoryOther     Category = "other"
)

// ParseCategory rejects unknown tags at construction time.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryGuide, CategoryFood, CategoryCulture, CategoryEvents,
		CategoryTips, CategoryNews, CategoryLifestyle, CategoryOther:
		return Category(s), nil
	case "":
		return CategoryOther, nil
	}
	return "", fmt.Errorf("unknown blog category %q", s)
}

// ============================
// 🔷 GORM Blog Model
type Blog struct {
	ID uint `gorm:"primaryKey"`

	Title   string `gorm:"type:varchar(255);not null"`
	TitleEN string `gorm:"column:title_en;type:varchar(255)"`
	TitleMK string `gorm:"column:title_mk;type:varchar(255)"`

	Subtitle   string `gorm:"type:varchar(500)"`
	SubtitleEN string `gorm:"column:subtitle_en;type:varchar(500)"`
	SubtitleMK string `gorm:"column:subtitle_mk;type:varchar(500)"`

	Content   string `gorm:"type:text"`
	ContentEN string `gorm:"column:content_en;type:text"`
	ContentMK string `gorm:"column:content_mk;type:text"`

	Author   string `gorm:"type:varchar(100)"`
	AuthorEN string `gorm:"column:author_en;type:varchar(100)"`
	AuthorMK string `gorm:"column:author_mk;type:varchar(100)"`

	Category Category `gorm:"type:varchar(20);default:'other';index"`

	Tags   datatypes.JSONSlice[string] `gorm:"column:tags"`
	TagsMK datatypes.JSONSlice[string] `gorm:"column:tags_mk"`

	CoverImage      string `gorm:"column:cover_image;type:varchar(1000)"`
	ReadTimeMinutes int    `gorm:"column:read_time_minutes"`
	Featured        bool   `gorm:"default:false;index"`
	Published       bool   `gorm:"index"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// Response is the language-resolved client projection.
type Response struct {
	ID              uint      `json:"id"`
	Title           string    `json:"title"`
	Subtitle        string    `json:"subtitle"`
	Content         string    `json:"content"`
	Author          string    `json:"author"`
	Category        Category  `json:"category"`
	Tags            []string  `json:"tags"`
	CoverImage      string    `json:"cover_image"`
	ReadTimeMinutes int       `json:"read_time_minutes"`
	Featured        bool      `json:"featured"`
	Published       bool      `json:"published"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (m *Blog) Localize(lang i18n.Lang) Response {
	return Response{
		ID:              m.ID,
		Title:           i18n.Text{EN: m.TitleEN, MK: m.TitleMK, Legacy: m.Title}.Resolve(lang),
		Subtitle:        i18n.Text{EN: m.SubtitleEN, MK: m.SubtitleMK, Legacy: m.Subtitle}.Resolve(lang),
		Content:         i18n.Text{EN: m.ContentEN, MK: m.ContentMK, Legacy: m.Content}.Resolve(lang),
		Author:          i18n.Text{EN: m.AuthorEN, MK: m.AuthorMK, Legacy: m.Author}.Resolve(lang),
		Category:        m.Category,
		Tags:            i18n.List(lang, m.Tags, m.TagsMK),
		CoverImage:      m.CoverImage,
		ReadTimeMinutes: m.ReadTimeMinutes,
		Featured:        m.Featured,
		Published:       m.Published,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// ============================
// 🟡 Create Blog Request
type CreateBlogRequest struct {
	Title           string   `json:"title" binding:"required,max=255" example:"A weekend guide to Gevgelija"`
	TitleEN         string   `json:"title_en" binding:"omitempty,max=255"`
	TitleMK         string   `json:"title_mk" binding:"omitempty,max=255"`
	Subtitle        string   `json:"subtitle" binding:"omitempty,max=500"`
	SubtitleEN      string   `json:"subtitle_en" binding:"omitempty,max=500"`
	SubtitleMK      string   `json:"subtitle_mk" binding:"omitempty,max=500"`
	Content         string   `json:"content"`
	ContentEN       string   `json:"content_en"`
	ContentMK       string   `json:"content_mk"`
	Author          string   `json:"author" binding:"omitempty,max=100" example:"GoGevgelija Team"`
	AuthorEN        string   `json:"author_en" binding:"omitempty,max=100"`
	AuthorMK        string   `json:"author_mk" binding:"omitempty,max=100"`
	Category        string   `json:"category" example:"guide"`
	Tags            []string `json:"tags"`
	TagsMK          []string `json:"tags_mk"`
	CoverImage      string   `json:"cover_image" binding:"omitempty,url,max=1000"`
	ReadTimeMinutes int      `json:"read_time_minutes" example:"7"`
	Featured        bool     `json:"featured"`
	// Published defaults to true when omitted; send false to keep a draft.
	Published *bool `json:"published"`
}

// ============================
// 🟠 Update Blog Request
type UpdateBlogRequest struct {
	Title           *string   `json:"title,omitempty"`
	TitleEN         *string   `json:"title_en,omitempty"`
	TitleMK         *string   `json:"title_mk,omitempty"`
	Subtitle        *string   `json:"subtitle,omitempty"`
	SubtitleEN      *string   `json:"subtitle_en,omitempty"`
	SubtitleMK      *string   `json:"subtitle_mk,omitempty"`
	Content         *string   `json:"content,omitempty"`
	ContentEN       *string   `json:"content_en,omitempty"`
	ContentMK       *string   `json:"content_mk,omitempty"`
	Author          *string   `json:"author,omitempty"`
	AuthorEN        *string   `json:"author_en,omitempty"`
	AuthorMK        *string   `json:"author_mk,omitempty"`
	Category        *string   `json:"category,omitempty"`
	Tags            *[]string `json:"tags,omitempty"`
	TagsMK          *[]string `json:"tags_mk,omitempty"`
	CoverImage      *string   `json:"cover_image,omitempty"`
	ReadTimeMinutes *int      `json:"read_time_minutes,omitempty"`
	Featured        *bool     `json:"featured,omitempty"`
	Published       *bool     `json:"published,omitempty"`
}
