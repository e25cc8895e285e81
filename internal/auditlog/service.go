package auditlog

import (
	"encoding/json"
	"log"
)

// Actions recorded across the API.
const (
	ActionRegister       = "auth.register"
	ActionLogin          = "auth.login"
	ActionEventJoin      = "event.join"
	ActionEventUnjoin    = "event.unjoin"
	ActionWishlistAdd    = "wishlist.add"
	ActionWishlistRemove = "wishlist.remove"
)

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Log persists one audit entry. Audit failures are logged and swallowed —
// the trail never fails the request that produced it.
func (s *Service) Log(userID *uint, action, ip string, details map[string]interface{}) {
	entry := &AuditLog{
		UserID:    userID,
		Action:    action,
		IPAddress: ip,
		Status:    "success",
	}

	if len(details) > 0 {
		payload, err := json.Marshal(details)
		if err == nil {
			entry.Details = payload
		}
	}

	if err := s.repo.Create(entry); err != nil {
		log.Printf("⚠️ Failed to write audit log (%s): %v", action, err)
	}
}

func (s *Service) RecentByUser(userID uint, limit int) ([]AuditLog, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.repo.RecentByUser(userID, limit)
}
