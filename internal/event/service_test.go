package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/gogevgelija/gogevgelija-backend/internal/auditlog"
)

func setupService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Event{}, &EventJoin{}, &auditlog.AuditLog{}))

	audit := auditlog.NewService(auditlog.NewRepository(db))
	return NewService(NewRepository(db), audit), db
}

func createEvent(t *testing.T, svc *Service) *Event {
	t.Helper()
	m, err := svc.Create(&CreateEventRequest{Title: "Wine Night", DateTime: "Fri, 20:00"})
	require.NoError(t, err)
	return m
}

func ptr(v uint) *uint { return &v }

func TestJoinAuthenticated(t *testing.T) {
	svc, db := setupService(t)
	m := createEvent(t, svc)

	joined, err := svc.Join(m.ID, ptr(1), "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, 1, joined.JoinCount)

	var count int64
	require.NoError(t, db.Model(&EventJoin{}).Where("event_id = ?", m.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestJoinAuthenticatedTwice(t *testing.T) {
	svc, _ := setupService(t)
	m := createEvent(t, svc)

	_, err := svc.Join(m.ID, ptr(1), "127.0.0.1")
	require.NoError(t, err)

	_, err = svc.Join(m.ID, ptr(1), "127.0.0.1")
	assert.ErrorIs(t, err, ErrAlreadyJoined)

	fresh, err := svc.GetByID(m.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, fresh.JoinCount)
}

func TestJoinCountIsExactForAuthenticatedUsers(t *testing.T) {
	svc, _ := setupService(t)
	m := createEvent(t, svc)

	for userID := uint(1); userID <= 3; userID++ {
		_, err := svc.Join(m.ID, ptr(userID), "127.0.0.1")
		require.NoError(t, err)
	}

	fresh, err := svc.GetByID(m.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, fresh.JoinCount)

	unjoined, err := svc.Unjoin(m.ID, ptr(2), "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, 2, unjoined.JoinCount)
}

func TestJoinAnonymous(t *testing.T) {
	svc, db := setupService(t)
	m := createEvent(t, svc)

	joined, err := svc.Join(m.ID, nil, "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, 1, joined.JoinCount)

	// Anonymous joins leave no record behind.
	var count int64
	require.NoError(t, db.Model(&EventJoin{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	// And nothing stops the same caller from joining again.
	joined, err = svc.Join(m.ID, nil, "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, 2, joined.JoinCount)
}

func TestUnjoinAnonymousFloorsAtZero(t *testing.T) {
	svc, _ := setupService(t)
	m := createEvent(t, svc)

	unjoined, err := svc.Unjoin(m.ID, nil, "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, 0, unjoined.JoinCount)
}

func TestUnjoinWithoutJoin(t *testing.T) {
	svc, _ := setupService(t)
	m := createEvent(t, svc)

	_, err := svc.Unjoin(m.ID, ptr(1), "127.0.0.1")
	assert.ErrorIs(t, err, ErrNotJoined)
}

func TestJoinMissingEvent(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.Join(999, ptr(1), "127.0.0.1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJoinWritesAuditTrail(t *testing.T) {
	svc, db := setupService(t)
	m := createEvent(t, svc)

	_, err := svc.Join(m.ID, ptr(7), "10.0.0.1")
	require.NoError(t, err)

	var entries []auditlog.AuditLog
	require.NoError(t, db.Where("action = ?", auditlog.ActionEventJoin).Find(&entries).Error)
	require.Len(t, entries, 1)
	require.NotNil(t, entries[0].UserID)
	assert.Equal(t, uint(7), *entries[0].UserID)
	assert.Equal(t, "10.0.0.1", entries[0].IPAddress)
}
