package auditlog

import (
	"time"

	"gorm.io/datatypes"
)

// ============================
// 🔷 GORM Audit Log Model
type AuditLog struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    *uint          `gorm:"index" json:"user_id,omitempty"` // nil for anonymous actions
	Action    string         `gorm:"type:varchar(100);not null;index" json:"action"`
	IPAddress string         `gorm:"type:varchar(45)" json:"ip_address"`
	Details   datatypes.JSON `json:"details,omitempty"`
	Status    string         `gorm:"type:varchar(20);default:'success'" json:"status"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
}
