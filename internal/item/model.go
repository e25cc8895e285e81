package item

import (
	"time"
)

// ============================
// 🔷 GORM Item Model
// Bare named record kept for backward compatibility with the first app
// release; newer content lives in the richer entity tables.
type Item struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

// ============================
// 🟡 Create / Update Requests
type CreateItemRequest struct {
	Name string `json:"name" binding:"required" example:"Welcome board"`
}

type UpdateItemRequest struct {
	Name *string `json:"name,omitempty"`
}
