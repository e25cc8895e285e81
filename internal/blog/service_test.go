package blog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/gogevgelija/gogevgelija-backend/utils"
)

func setupService(t *testing.T) *Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Blog{}))
	return NewService(NewRepository(db))
}

func TestListReturnsOnlyPublished(t *testing.T) {
	svc := setupService(t)

	draft := false
	_, err := svc.Create(&CreateBlogRequest{Title: "Live post"})
	require.NoError(t, err)
	_, err = svc.Create(&CreateBlogRequest{Title: "Draft post", Published: &draft})
	require.NoError(t, err)

	posts, err := svc.List()
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Live post", posts[0].Title)
}

func TestFeaturedRequiresPublished(t *testing.T) {
	svc := setupService(t)

	draft := false
	_, err := svc.Create(&CreateBlogRequest{Title: "Featured draft", Featured: true, Published: &draft})
	require.NoError(t, err)
	_, err = svc.Create(&CreateBlogRequest{Title: "Featured live", Featured: true})
	require.NoError(t, err)

	posts, err := svc.Featured()
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Featured live", posts[0].Title)
}

func TestGetDraftIsNotFound(t *testing.T) {
	svc := setupService(t)

	unpublished := false
	draft, err := svc.Create(&CreateBlogRequest{Title: "Hidden", Published: &unpublished})
	require.NoError(t, err)

	_, err = svc.GetByID(draft.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Publishing makes it visible.
	published := true
	_, err = svc.Update(draft.ID, &UpdateBlogRequest{Published: &published})
	require.NoError(t, err)

	m, err := svc.GetByID(draft.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hidden", m.Title)
}

func TestCreateBlogDefaults(t *testing.T) {
	svc := setupService(t)

	m, err := svc.Create(&CreateBlogRequest{Title: "Bare minimum"})
	require.NoError(t, err)
	assert.Equal(t, CategoryOther, m.Category)
	assert.Equal(t, 5, m.ReadTimeMinutes)
	assert.True(t, m.Published)
	assert.Equal(t, "GoGevgelija Team", m.Author)
}

func TestCreateBlogUnknownCategory(t *testing.T) {
	svc := setupService(t)

	_, err := svc.Create(&CreateBlogRequest{Title: "Odd", Category: "gossip"})
	var fields utils.FieldErrors
	require.True(t, errors.As(err, &fields))
	assert.Contains(t, fields, "category")
}

func TestReadTimeMustBePositive(t *testing.T) {
	svc := setupService(t)

	_, err := svc.Create(&CreateBlogRequest{Title: "Instant read", ReadTimeMinutes: -1})
	var fields utils.FieldErrors
	require.True(t, errors.As(err, &fields))
	assert.Contains(t, fields, "read_time_minutes")

	m, err := svc.Create(&CreateBlogRequest{Title: "Long read", ReadTimeMinutes: 12})
	require.NoError(t, err)

	bad := 0
	_, err = svc.Update(m.ID, &UpdateBlogRequest{ReadTimeMinutes: &bad})
	require.True(t, errors.As(err, &fields))
	assert.Contains(t, fields, "read_time_minutes")
}
