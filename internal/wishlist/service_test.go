package wishlist

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/gogevgelija/gogevgelija-backend/internal/auditlog"
	"github.com/gogevgelija/gogevgelija-backend/internal/blog"
	"github.com/gogevgelija/gogevgelija-backend/internal/event"
	"github.com/gogevgelija/gogevgelija-backend/internal/i18n"
	"github.com/gogevgelija/gogevgelija-backend/internal/listing"
	"github.com/gogevgelija/gogevgelija-backend/internal/promotion"
	"github.com/gogevgelija/gogevgelija-backend/utils"
)

type fixture struct {
	svc        *Service
	listings   *listing.Service
	events     *event.Service
	promotions *promotion.Service
	blogs      *blog.Service
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&listing.Listing{},
		&event.Event{},
		&event.EventJoin{},
		&promotion.Promotion{},
		&blog.Blog{},
		&Wishlist{},
		&auditlog.AuditLog{},
	))

	audit := auditlog.NewService(auditlog.NewRepository(db))
	listings := listing.NewService(listing.NewRepository(db))
	events := event.NewService(event.NewRepository(db), audit)
	promotions := promotion.NewService(promotion.NewRepository(db))
	blogs := blog.NewService(blog.NewRepository(db))

	resolver := NewResolver(listings, events, promotions, blogs)
	svc := NewService(NewRepository(db), resolver, audit)

	return &fixture{
		svc:        svc,
		listings:   listings,
		events:     events,
		promotions: promotions,
		blogs:      blogs,
	}
}

func (f *fixture) createListing(t *testing.T, title string) *listing.Listing {
	t.Helper()
	m, err := f.listings.Create(&listing.CreateListingRequest{Title: title})
	require.NoError(t, err)
	return m
}

func TestAddToWishlist(t *testing.T) {
	f := setup(t)
	m := f.createListing(t, "Hotel Apollonia")

	entry, err := f.svc.Add(1, &ItemRequest{ItemType: "listing", ItemID: m.ID}, i18n.LangEN, "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, ItemListing, entry.ItemType)
	assert.Equal(t, m.ID, entry.ItemID)

	item, ok := entry.Item.(listing.Response)
	require.True(t, ok)
	assert.Equal(t, "Hotel Apollonia", item.Title)
}

func TestAddDuplicate(t *testing.T) {
	f := setup(t)
	m := f.createListing(t, "Cafe Central")

	req := &ItemRequest{ItemType: "listing", ItemID: m.ID}
	_, err := f.svc.Add(1, req, i18n.LangEN, "127.0.0.1")
	require.NoError(t, err)

	_, err = f.svc.Add(1, req, i18n.LangEN, "127.0.0.1")
	assert.ErrorIs(t, err, ErrAlreadyExists)

	// A different user saving the same item is fine.
	_, err = f.svc.Add(2, req, i18n.LangEN, "127.0.0.1")
	assert.NoError(t, err)
}

func TestAddInvalidType(t *testing.T) {
	f := setup(t)

	_, err := f.svc.Add(1, &ItemRequest{ItemType: "restaurant", ItemID: 1}, i18n.LangEN, "127.0.0.1")
	var fields utils.FieldErrors
	require.True(t, errors.As(err, &fields))
	assert.Contains(t, fields, "item_type")
}

func TestAddMissingTarget(t *testing.T) {
	f := setup(t)

	_, err := f.svc.Add(1, &ItemRequest{ItemType: "event", ItemID: 999}, i18n.LangEN, "127.0.0.1")
	assert.ErrorIs(t, err, ErrTargetNotFound)
}

func TestRemoveFromWishlist(t *testing.T) {
	f := setup(t)
	m := f.createListing(t, "Short stay")

	req := &ItemRequest{ItemType: "listing", ItemID: m.ID}
	_, err := f.svc.Add(1, req, i18n.LangEN, "127.0.0.1")
	require.NoError(t, err)

	require.NoError(t, f.svc.Remove(1, req, "127.0.0.1"))
	assert.ErrorIs(t, f.svc.Remove(1, req, "127.0.0.1"), ErrNotFound)
}

func TestCheckWishlist(t *testing.T) {
	f := setup(t)
	m := f.createListing(t, "Checked place")

	req := &ItemRequest{ItemType: "listing", ItemID: m.ID}

	wishlisted, err := f.svc.Check(1, req)
	require.NoError(t, err)
	assert.False(t, wishlisted)

	_, err = f.svc.Add(1, req, i18n.LangEN, "127.0.0.1")
	require.NoError(t, err)

	wishlisted, err = f.svc.Check(1, req)
	require.NoError(t, err)
	assert.True(t, wishlisted)

	// Another user's wishlist is untouched.
	wishlisted, err = f.svc.Check(2, req)
	require.NoError(t, err)
	assert.False(t, wishlisted)
}

func TestListResolvesMixedTypes(t *testing.T) {
	f := setup(t)

	l := f.createListing(t, "Saved listing")
	e, err := f.events.Create(&event.CreateEventRequest{Title: "Saved event"})
	require.NoError(t, err)
	b, err := f.blogs.Create(&blog.CreateBlogRequest{Title: "Saved post"})
	require.NoError(t, err)

	for _, req := range []*ItemRequest{
		{ItemType: "listing", ItemID: l.ID},
		{ItemType: "event", ItemID: e.ID},
		{ItemType: "blog", ItemID: b.ID},
	} {
		_, err := f.svc.Add(1, req, i18n.LangEN, "127.0.0.1")
		require.NoError(t, err)
	}

	entries, err := f.svc.List(1, i18n.LangEN)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	types := map[ItemType]bool{}
	for _, entry := range entries {
		assert.NotNil(t, entry.Item)
		types[entry.ItemType] = true
	}
	assert.Len(t, types, 3)
}

func TestListKeepsOrphanedEntriesWithNullItem(t *testing.T) {
	f := setup(t)
	m := f.createListing(t, "Doomed listing")

	_, err := f.svc.Add(1, &ItemRequest{ItemType: "listing", ItemID: m.ID}, i18n.LangEN, "127.0.0.1")
	require.NoError(t, err)

	require.NoError(t, f.listings.Delete(m.ID))

	entries, err := f.svc.List(1, i18n.LangEN)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Nil(t, entries[0].Item)
	assert.Equal(t, m.ID, entries[0].ItemID)
}
