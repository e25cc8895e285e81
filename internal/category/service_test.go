package category

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/gogevgelija/gogevgelija-backend/internal/i18n"
	"github.com/gogevgelija/gogevgelija-backend/utils"
)

func setupService(t *testing.T) *Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Category{}))
	return NewService(NewRepository(db))
}

func TestCreateCategory(t *testing.T) {
	svc := setupService(t)

	m, err := svc.Create(&CreateCategoryRequest{
		Name:   "Restaurants",
		NameMK: "Ресторани",
		Icon:   "restaurant-outline",
	})
	require.NoError(t, err)
	assert.NotZero(t, m.ID)

	assert.Equal(t, "Restaurants", m.Localize(i18n.LangEN).Name)
	assert.Equal(t, "Ресторани", m.Localize(i18n.LangMK).Name)
}

func TestCreateCategoryDuplicateName(t *testing.T) {
	svc := setupService(t)

	_, err := svc.Create(&CreateCategoryRequest{Name: "Cafes", Icon: "cafe-outline"})
	require.NoError(t, err)

	_, err = svc.Create(&CreateCategoryRequest{Name: "Cafes", Icon: "cafe-outline"})
	var fields utils.FieldErrors
	require.True(t, errors.As(err, &fields))
	assert.Contains(t, fields, "name")
}

func TestListCategoriesOrderedByName(t *testing.T) {
	svc := setupService(t)

	for _, name := range []string{"Shops", "Bars", "Hotels"} {
		_, err := svc.Create(&CreateCategoryRequest{Name: name, Icon: "pricetag-outline"})
		require.NoError(t, err)
	}

	categories, err := svc.List()
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "Bars", categories[0].Name)
	assert.Equal(t, "Hotels", categories[1].Name)
	assert.Equal(t, "Shops", categories[2].Name)
}

func TestUpdateCategory(t *testing.T) {
	svc := setupService(t)

	m, err := svc.Create(&CreateCategoryRequest{Name: "Events", Icon: "calendar-outline"})
	require.NoError(t, err)

	trending := true
	updated, err := svc.Update(m.ID, &UpdateCategoryRequest{Trending: &trending})
	require.NoError(t, err)
	assert.True(t, updated.Trending)
	assert.Equal(t, "Events", updated.Name)
}

func TestDeleteCategory(t *testing.T) {
	svc := setupService(t)

	m, err := svc.Create(&CreateCategoryRequest{Name: "Temp", Icon: "trash-outline"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(m.ID))
	assert.ErrorIs(t, svc.Delete(m.ID), ErrNotFound)
}
