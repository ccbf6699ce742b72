package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pos-kasir/models"
)

func TestSessionSaveAndLoad(t *testing.T) {
	sessions, err := NewSessionRepository(t.TempDir())
	require.NoError(t, err)

	loginTime := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	saved := models.Session{
		User: models.User{
			ID:         1,
			Username:   "admin",
			Role:       models.RoleAdmin,
			IsLoggedIn: true,
			LoginTime:  loginTime,
		},
		Timestamp: loginTime,
	}
	require.NoError(t, sessions.Save(saved))

	loaded, err := sessions.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "admin", loaded.User.Username)
	assert.Equal(t, models.RoleAdmin, loaded.User.Role)
	assert.True(t, loaded.User.IsLoggedIn)

	// The timestamp survives at millisecond precision.
	assert.Equal(t, loginTime.UnixMilli(), loaded.Timestamp.UnixMilli())
}

func TestSessionLoadWhenNoneExists(t *testing.T) {
	sessions, err := NewSessionRepository(t.TempDir())
	require.NoError(t, err)

	loaded, err := sessions.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestSessionDelete(t *testing.T) {
	sessions, err := NewSessionRepository(t.TempDir())
	require.NoError(t, err)

	now := time.Now()
	require.NoError(t, sessions.Save(models.Session{
		User:      models.User{ID: 1, Username: "admin", Role: models.RoleAdmin},
		Timestamp: now,
	}))

	require.NoError(t, sessions.Delete())

	loaded, err := sessions.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)

	// Deleting again is not an error.
	require.NoError(t, sessions.Delete())
}

func TestSessionOverwrite(t *testing.T) {
	sessions, err := NewSessionRepository(t.TempDir())
	require.NoError(t, err)

	first := time.Now().Add(-time.Hour)
	require.NoError(t, sessions.Save(models.Session{
		User:      models.User{ID: 1, Username: "admin", Role: models.RoleAdmin},
		Timestamp: first,
	}))

	second := time.Now()
	require.NoError(t, sessions.Save(models.Session{
		User:      models.User{ID: 1, Username: "admin", Role: models.RoleAdmin},
		Timestamp: second,
	}))

	loaded, err := sessions.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, second.UnixMilli(), loaded.Timestamp.UnixMilli())
}
