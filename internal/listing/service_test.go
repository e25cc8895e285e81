package listing

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
	require.NoError(t, db.AutoMigrate(&Listing{}))
	return NewService(NewRepository(db))
}

func TestCreateListing(t *testing.T) {
	svc := setupService(t)

	m, err := svc.Create(&CreateListingRequest{
		Title:    "Restaurant Destan",
		TitleMK:  "Ресторан Дестан",
		Category: "restaurant",
		Rating:   4.5,
		Tags:     []string{"Grill", "Family"},
	})
	require.NoError(t, err)
	assert.NotZero(t, m.ID)
	assert.Equal(t, CategoryRestaurant, m.Category)
	assert.Equal(t, 4.5, m.Rating)
}

func TestCreateListingDefaultsCategory(t *testing.T) {
	svc := setupService(t)

	m, err := svc.Create(&CreateListingRequest{Title: "Mystery place"})
	require.NoError(t, err)
	assert.Equal(t, CategoryOther, m.Category)
}

func TestCreateListingUnknownCategory(t *testing.T) {
	svc := setupService(t)

	_, err := svc.Create(&CreateListingRequest{Title: "Spa", Category: "wellness"})
	var fields utils.FieldErrors
	require.True(t, errors.As(err, &fields))
	assert.Contains(t, fields, "category")
}

func TestCreateListingRatingBounds(t *testing.T) {
	svc := setupService(t)

	for _, rating := range []float64{-0.1, 5.1, 10} {
		_, err := svc.Create(&CreateListingRequest{Title: "Bad rating", Rating: rating})
		var fields utils.FieldErrors
		require.True(t, errors.As(err, &fields), "rating %v should be rejected", rating)
		assert.Contains(t, fields, "rating")
	}

	for _, rating := range []float64{0, 2.5, 5} {
		_, err := svc.Create(&CreateListingRequest{Title: "Good rating", Rating: rating})
		assert.NoError(t, err, "rating %v should be accepted", rating)
	}
}

func TestUpdateListingPartial(t *testing.T) {
	svc := setupService(t)

	m, err := svc.Create(&CreateListingRequest{Title: "Cafe Central", Category: "cafe", Rating: 4.0})
	require.NoError(t, err)

	newRating := 4.8
	updated, err := svc.Update(m.ID, &UpdateListingRequest{Rating: &newRating})
	require.NoError(t, err)
	assert.Equal(t, 4.8, updated.Rating)
	assert.Equal(t, "Cafe Central", updated.Title)
	assert.Equal(t, CategoryCafe, updated.Category)
}

func TestUpdateListingNotFound(t *testing.T) {
	svc := setupService(t)

	title := "ghost"
	_, err := svc.Update(999, &UpdateListingRequest{Title: &title})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFeaturedListings(t *testing.T) {
	svc := setupService(t)

	_, err := svc.Create(&CreateListingRequest{Title: "Plain"})
	require.NoError(t, err)
	_, err = svc.Create(&CreateListingRequest{Title: "Promoted", Featured: true})
	require.NoError(t, err)

	all, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	featured, err := svc.Featured()
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "Promoted", featured[0].Title)
}

func TestDeleteListing(t *testing.T) {
	svc := setupService(t)

	m, err := svc.Create(&CreateListingRequest{Title: "Short-lived"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(m.ID))
	assert.ErrorIs(t, svc.Delete(m.ID), ErrNotFound)

	_, err = svc.GetByID(m.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
