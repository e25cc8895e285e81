package wishlist

import (
	"errors"

	"gorm.io/gorm"

	"github.com/gogevgelija/gogevgelija-backend/internal/auditlog"
	"github.com/gogevgelija/gogevgelija-backend/internal/i18n"
	"github.com/gogevgelija/gogevgelija-backend/utils"
)

var (
	ErrAlreadyExists = errors.New("item is already in the wishlist")
	ErrNotFound      = errors.New("item is not in the wishlist")
)

type Service struct {
	repo     *Repository
	resolver *Resolver
	audit    *auditlog.Service
}

func NewService(repo *Repository, resolver *Resolver, audit *auditlog.Service) *Service {
	return &Service{repo: repo, resolver: resolver, audit: audit}
}

func parseItemRequest(req *ItemRequest) (ItemType, error) {
	itemType, err := ParseItemType(req.ItemType)
	if err != nil {
		return "", utils.FieldErrors{"item_type": err.Error()}
	}
	return itemType, nil
}

// Add saves an item to the user's wishlist. The target must exist at the
// time of saving; it may still disappear later, which List tolerates.
func (s *Service) Add(userID uint, req *ItemRequest, lang i18n.Lang, ip string) (*Entry, error) {
	itemType, err := parseItemRequest(req)
	if err != nil {
		return nil, err
	}

	item, err := s.resolver.Resolve(itemType, req.ItemID, lang)
	if err != nil {
		return nil, err
	}

	m := &Wishlist{UserID: userID, ItemType: itemType, ItemID: req.ItemID}
	if err := s.repo.Create(m); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyExists
		}
		return nil, err
	}

	s.audit.Log(&userID, auditlog.ActionWishlistAdd, ip, map[string]interface{}{
		"item_type": string(itemType),
		"item_id":   req.ItemID,
	})
	return &Entry{
		ID:        m.ID,
		ItemType:  m.ItemType,
		ItemID:    m.ItemID,
		Item:      item,
		CreatedAt: m.CreatedAt,
	}, nil
}

func (s *Service) Remove(userID uint, req *ItemRequest, ip string) error {
	itemType, err := parseItemRequest(req)
	if err != nil {
		return err
	}

	affected, err := s.repo.Delete(userID, itemType, req.ItemID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	s.audit.Log(&userID, auditlog.ActionWishlistRemove, ip, map[string]interface{}{
		"item_type": string(itemType),
		"item_id":   req.ItemID,
	})
	return nil
}

func (s *Service) Check(userID uint, req *ItemRequest) (bool, error) {
	itemType, err := parseItemRequest(req)
	if err != nil {
		return false, err
	}

	if _, err := s.repo.Find(userID, itemType, req.ItemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// List returns the user's wishlist with each target resolved and localized.
// Rows whose target has been deleted come back with a null item rather than
// being dropped, so the client can prune them.
func (s *Service) List(userID uint, lang i18n.Lang) ([]Entry, error) {
	rows, err := s.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		item, err := s.resolver.Resolve(row.ItemType, row.ItemID, lang)
		if err != nil && !errors.Is(err, ErrTargetNotFound) {
			return nil, err
		}
		entries = append(entries, Entry{
			ID:        row.ID,
			ItemType:  row.ItemType,
			ItemID:    row.ItemID,
			Item:      item,
			CreatedAt: row.CreatedAt,
		})
	}
	return entries, nil
}
