package promotion

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
	require.NoError(t, db.AutoMigrate(&Promotion{}))
	return NewService(NewRepository(db))
}

func strPtr(s string) *string { return &s }

func TestCreatePromotionWithExpiry(t *testing.T) {
	svc := setupService(t)

	m, err := svc.Create(&CreatePromotionRequest{
		Title:      "Weekend brunch deal",
		ValidUntil: strPtr("2026-12-31"),
	})
	require.NoError(t, err)
	require.NotNil(t, m.ValidUntil)
	assert.Equal(t, "2026-12-31", m.ValidUntil.Format(dateLayout))

	resp := m.Localize(i18n.LangEN)
	require.NotNil(t, resp.ValidUntil)
	assert.Equal(t, "2026-12-31", *resp.ValidUntil)
}

func TestCreatePromotionWithoutExpiry(t *testing.T) {
	svc := setupService(t)

	m, err := svc.Create(&CreatePromotionRequest{Title: "Standing offer"})
	require.NoError(t, err)
	assert.Nil(t, m.ValidUntil)
	assert.Nil(t, m.Localize(i18n.LangEN).ValidUntil)
}

func TestCreatePromotionBadExpiry(t *testing.T) {
	svc := setupService(t)

	for _, raw := range []string{"31-12-2026", "2026/12/31", "tomorrow"} {
		_, err := svc.Create(&CreatePromotionRequest{Title: "Bad date", ValidUntil: strPtr(raw)})
		var fields utils.FieldErrors
		require.True(t, errors.As(err, &fields), "%q should be rejected", raw)
		assert.Contains(t, fields, "valid_until")
	}
}

func TestUpdatePromotionClearsExpiry(t *testing.T) {
	svc := setupService(t)

	m, err := svc.Create(&CreatePromotionRequest{Title: "Ends soon", ValidUntil: strPtr("2026-10-01")})
	require.NoError(t, err)

	updated, err := svc.Update(m.ID, &UpdatePromotionRequest{ValidUntil: strPtr("")})
	require.NoError(t, err)
	assert.Nil(t, updated.ValidUntil)
}

func TestFeaturedPromotions(t *testing.T) {
	svc := setupService(t)

	_, err := svc.Create(&CreatePromotionRequest{Title: "Plain"})
	require.NoError(t, err)
	_, err = svc.Create(&CreatePromotionRequest{Title: "Promoted", Featured: true})
	require.NoError(t, err)

	featured, err := svc.Featured()
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "Promoted", featured[0].Title)
}

func TestDeletePromotion(t *testing.T) {
	svc := setupService(t)

	m, err := svc.Create(&CreatePromotionRequest{Title: "One-off"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(m.ID))
	assert.ErrorIs(t, svc.Delete(m.ID), ErrNotFound)
}
