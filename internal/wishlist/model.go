package wishlist

import (
	"time"
)

// ============================
// 🔷 GORM Wishlist Model
//
// One row per saved item. The (user, type, id) triple is unique so a user
// can save a given thing at most once; the target itself lives in the
// table named by ItemType and is resolved at read time.
type Wishlist struct {
	ID       uint     `gorm:"primaryKey"`
	UserID   uint     `gorm:"not null;uniqueIndex:idx_wishlist_user_item"`
	ItemType ItemType `gorm:"type:varchar(20);not null;uniqueIndex:idx_wishlist_user_item"`
	ItemID   uint     `gorm:"not null;uniqueIndex:idx_wishlist_user_item"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// Entry is one wishlist row with its target resolved and localized.
// Item is null when the target has since been deleted.
type Entry struct {
	ID        uint        `json:"id"`
	ItemType  ItemType    `json:"item_type"`
	ItemID    uint        `json:"item_id"`
	Item      interface{} `json:"item"`
	CreatedAt time.Time   `json:"created_at"`
}

// ============================
// 🟡 Wishlist Requests
type ItemRequest struct {
	ItemType string `json:"item_type" binding:"required" example:"listing"`
	ItemID   uint   `json:"item_id" binding:"required" example:"42"`
}
