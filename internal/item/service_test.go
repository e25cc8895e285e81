package item

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupService(t *testing.T) *Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Item{}))
	return NewService(NewRepository(db))
}

func TestItemCRUD(t *testing.T) {
	svc := setupService(t)

	created, err := svc.Create(&CreateItemRequest{Name: "Welcome board"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	name := "Info board"
	updated, err := svc.Update(created.ID, &UpdateItemRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Info board", updated.Name)

	items, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, items, 1)

	require.NoError(t, svc.Delete(created.ID))
	assert.ErrorIs(t, svc.Delete(created.ID), ErrNotFound)
}

func TestItemNotFound(t *testing.T) {
	svc := setupService(t)

	_, err := svc.GetByID(42)
	assert.ErrorIs(t, err, ErrNotFound)
}
