package wishlist

import (
	"errors"
	"fmt"

	"github.com/gogevgelija/gogevgelija-backend/internal/blog"
	"github.com/gogevgelija/gogevgelija-backend/internal/event"
	"github.com/gogevgelija/gogevgelija-backend/internal/i18n"
	"github.com/gogevgelija/gogevgelija-backend/internal/listing"
	"github.com/gogevgelija/gogevgelija-backend/internal/promotion"
)

// ============================
// 🔖 Wishlist Item Type (sum type)
type ItemType string

const (
	ItemListing   ItemType = "listing"
	ItemEvent     ItemType = "event"
	ItemPromotion ItemType = "promotion"
	ItemBlog      ItemType = "blog"
)

// ParseItemType rejects unknown tags at construction time.
func ParseItemType(s string) (ItemType, error) {
	switch ItemType(s) {
	case ItemListing, ItemEvent, ItemPromotion, ItemBlog:
		return ItemType(s), nil
	}
	return "", fmt.Errorf("must be one of: %s, %s, %s, %s", ItemListing, ItemEvent, ItemPromotion, ItemBlog)
}

var ErrTargetNotFound = errors.New("wishlist target not found")

// Resolver turns an (item_type, item_id) pair into the localized projection
// of whatever it points at. Dispatch is an explicit switch over the four
// saveable kinds so a new kind cannot sneak in without a case here.
type Resolver struct {
	Listings   *listing.Service
	Events     *event.Service
	Promotions *promotion.Service
	Blogs      *blog.Service
}

func NewResolver(listings *listing.Service, events *event.Service, promotions *promotion.Service, blogs *blog.Service) *Resolver {
	return &Resolver{Listings: listings, Events: events, Promotions: promotions, Blogs: blogs}
}

func (r *Resolver) Resolve(itemType ItemType, itemID uint, lang i18n.Lang) (interface{}, error) {
	switch itemType {
	case ItemListing:
		m, err := r.Listings.GetByID(itemID)
		if err != nil {
			if errors.Is(err, listing.ErrNotFound) {
				return nil, ErrTargetNotFound
			}
			return nil, err
		}
		return m.Localize(lang), nil
	case ItemEvent:
		m, err := r.Events.GetByID(itemID)
		if err != nil {
			if errors.Is(err, event.ErrNotFound) {
				return nil, ErrTargetNotFound
			}
			return nil, err
		}
		return m.Localize(lang), nil
	case ItemPromotion:
		m, err := r.Promotions.GetByID(itemID)
		if err != nil {
			if errors.Is(err, promotion.ErrNotFound) {
				return nil, ErrTargetNotFound
			}
			return nil, err
		}
		return m.Localize(lang), nil
	case ItemBlog:
		m, err := r.Blogs.GetByID(itemID)
		if err != nil {
			if errors.Is(err, blog.ErrNotFound) {
				return nil, ErrTargetNotFound
			}
			return nil, err
		}
		return m.Localize(lang), nil
	}
	return nil, fmt.Errorf("unknown wishlist item type %q", itemType)
}
