package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pos-kasir/config"
	"pos-kasir/models"
	"pos-kasir/repositories"
)

func TestLoginSuccess(t *testing.T) {
	auth := newTestAuth(t)

	result, err := auth.Login("admin", "admin123")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.NotEmpty(t, result.Token)
	require.NotNil(t, result.User)
	assert.Equal(t, "admin", result.User.Username)
	assert.Equal(t, models.RoleAdmin, result.User.Role)
	assert.True(t, result.User.IsLoggedIn)

	user, err := auth.CurrentUser()
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "admin", user.Username)
}

func TestLoginInvalidCredentials(t *testing.T) {
	auth := newTestAuth(t)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "admin", "wrong-password"},
		{"wrong username", "someone", "admin123"},
		{"both wrong", "someone", "wrong-password"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := auth.Login(tt.username, tt.password)
			require.NoError(t, err)
			assert.False(t, result.Success)
			assert.Equal(t, models.CodeInvalidCredentials, result.Code)
			assert.Empty(t, result.Token)
		})
	}

	// A failed attempt leaves no session behind.
	user, err := auth.CurrentUser()
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestLoginTokenIsValid(t *testing.T) {
	auth := newTestAuth(t)

	result, err := auth.Login("admin", "admin123")
	require.NoError(t, err)
	require.True(t, result.Success)

	claims, err := auth.ValidateToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestCurrentUserExpiry(t *testing.T) {
	auth := newTestAuth(t)

	loginTime := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	auth.now = func() time.Time { return loginTime }

	result, err := auth.Login("admin", "admin123")
	require.NoError(t, err)
	require.True(t, result.Success)

	// Just inside the 30 minute window.
	auth.now = func() time.Time { return loginTime.Add(30*time.Minute - time.Millisecond) }
	user, err := auth.CurrentUser()
	require.NoError(t, err)
	assert.NotNil(t, user)

	// Past the window: session is deleted, not just hidden.
	auth.now = func() time.Time { return loginTime.Add(30*time.Minute + time.Millisecond) }
	user, err = auth.CurrentUser()
	require.NoError(t, err)
	assert.Nil(t, user)

	// Back inside the window the session stays gone.
	auth.now = func() time.Time { return loginTime.Add(time.Minute) }
	user, err = auth.CurrentUser()
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestCurrentUserExpiryExactBoundary(t *testing.T) {
	auth := newTestAuth(t)

	loginTime := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	auth.now = func() time.Time { return loginTime }

	_, err := auth.Login("admin", "admin123")
	require.NoError(t, err)

	// Elapsed == timeout counts as expired.
	auth.now = func() time.Time { return loginTime.Add(30 * time.Minute) }
	user, err := auth.CurrentUser()
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestLogout(t *testing.T) {
	auth := newTestAuth(t)

	_, err := auth.Login("admin", "admin123")
	require.NoError(t, err)

	require.NoError(t, auth.Logout())

	user, err := auth.CurrentUser()
	require.NoError(t, err)
	assert.Nil(t, user)

	// Logging out twice is harmless.
	require.NoError(t, auth.Logout())
}

func TestResumeSessionRestartsIdleCountdown(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		AdminUsername:  "admin",
		AdminPassword:  "admin123",
		JWTSecret:      "test-secret",
		JWTExpiry:      time.Hour,
		SessionTimeout: 30 * time.Minute,
	}

	sessions, err := repositories.NewSessionRepository(dir)
	require.NoError(t, err)
	first := NewAuthService(cfg, sessions)
	result, err := first.Login("admin", "admin123")
	require.NoError(t, err)
	require.True(t, result.Success)

	// A fresh service over the same data directory, as after a restart.
	sessions, err = repositories.NewSessionRepository(dir)
	require.NoError(t, err)
	restarted := NewAuthService(cfg, sessions)

	timedOut := make(chan struct{})
	restarted.SetIdleTimer(NewIdleTimer(20*time.Millisecond, func() {
		close(timedOut)
	}))
	restarted.ResumeSession()

	select {
	case <-timedOut:
	case <-time.After(time.Second):
		t.Fatal("idle countdown did not resume for the surviving session")
	}
}

func TestResumeSessionWithoutSession(t *testing.T) {
	auth := newTestAuth(t)

	fired := make(chan struct{}, 1)
	auth.SetIdleTimer(NewIdleTimer(20*time.Millisecond, func() {
		fired <- struct{}{}
	}))
	auth.ResumeSession()

	time.Sleep(60 * time.Millisecond)
	select {
	case <-fired:
		t.Fatal("countdown started with no session on disk")
	default:
	}
}

func TestIdleTimerForcesLogout(t *testing.T) {
	auth := newTestAuth(t)

	timedOut := make(chan struct{})
	auth.SetIdleTimer(NewIdleTimer(20*time.Millisecond, func() {
		close(timedOut)
	}))

	_, err := auth.Login("admin", "admin123")
	require.NoError(t, err)

	select {
	case <-timedOut:
	case <-time.After(time.Second):
		t.Fatal("idle timer did not fire")
	}
}

func TestIdleTimerTouchResetsCountdown(t *testing.T) {
	fired := make(chan struct{}, 1)
	timer := NewIdleTimer(60*time.Millisecond, func() {
		fired <- struct{}{}
	})
	timer.Start()
	defer timer.Stop()

	// Keep touching inside the window; the callback must not fire.
	for i := 0; i < 5; i++ {
		time.Sleep(20 * time.Millisecond)
		timer.Touch()
	}
	select {
	case <-fired:
		t.Fatal("timer fired despite activity")
	default:
	}

	// Stop touching and it fires.
	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("timer did not fire after activity stopped")
	}
}

func TestIdleTimerStop(t *testing.T) {
	fired := make(chan struct{}, 1)
	timer := NewIdleTimer(20*time.Millisecond, func() {
		fired <- struct{}{}
	})
	timer.Start()
	timer.Stop()

	time.Sleep(60 * time.Millisecond)
	select {
	case <-fired:
		t.Fatal("stopped timer fired")
	default:
	}
}
