package services

import (
	"crypto/subtle"
	"time"

	"pos-kasir/config"
	"pos-kasir/models"
	"pos-kasir/repositories"
	"pos-kasir/utils"

	"github.com/matthewhartstonge/argon2"
)

// LoginResult is a structured outcome: a credential mismatch is data, not
// an error. Only unexpected I/O failure is returned as an error.
type LoginResult struct {
	Success bool         `json:"success"`
	Code    string       `json:"code,omitempty"`
	Message string       `json:"message,omitempty"`
	Token   string       `json:"token,omitempty"`
	User    *models.User `json:"user,omitempty"`
}

type AuthService struct {
	cfg      *config.Config
	sessions *repositories.SessionRepository
	idle     *IdleTimer

	// now is swappable so expiry behavior is testable.
	now func() time.Time
}

func NewAuthService(cfg *config.Config, sessions *repositories.SessionRepository) *AuthService {
	return &AuthService{
		cfg:      cfg,
		sessions: sessions,
		now:      time.Now,
	}
}

// SetIdleTimer attaches the activity countdown started on login and
// cancelled on logout.
func (s *AuthService) SetIdleTimer(idle *IdleTimer) {
	s.idle = idle
}

// Login verifies the configured admin credential pair and persists a new
// session. The pair is a placeholder for a real identity provider.
func (s *AuthService) Login(username, password string) (LoginResult, error) {
	if !s.verifyCredentials(username, password) {
		return LoginResult{
			Success: false,
			Code:    models.CodeInvalidCredentials,
			Message: "Invalid username or password",
		}, nil
	}

	now := s.now()
	user := models.User{
		ID:         1,
		Username:   username,
		Role:       models.RoleAdmin,
		IsLoggedIn: true,
		LoginTime:  now,
	}

	if err := s.sessions.Save(models.Session{User: user, Timestamp: now}); err != nil {
		return LoginResult{}, err
	}

	token, err := utils.GenerateToken(user.Username, user.Role, s.cfg.JWTSecret, s.cfg.JWTExpiry)
	if err != nil {
		return LoginResult{}, err
	}

	if s.idle != nil {
		s.idle.Start()
	}

	return LoginResult{
		Success: true,
		Message: "Login successful",
		Token:   token,
		User:    &user,
	}, nil
}

func (s *AuthService) verifyCredentials(username, password string) bool {
	if subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.AdminUsername)) != 1 {
		return false
	}
	if s.cfg.AdminPasswordHash != "" {
		ok, _ := argon2.VerifyEncoded([]byte(password), []byte(s.cfg.AdminPasswordHash))
		return ok
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.AdminPassword)) == 1
}

// ResumeSession restarts the idle countdown when a still-valid session
// survives a process restart. Without it, no countdown would run until
// the next login.
func (s *AuthService) ResumeSession() {
	user, err := s.CurrentUser()
	if err != nil || user == nil {
		return
	}
	if s.idle != nil {
		s.idle.Start()
	}
}

// CurrentUser reads the persisted session. An expired session is deleted
// as a side effect, not just hidden: the next read finds nothing.
func (s *AuthService) CurrentUser() (*models.User, error) {
	session, err := s.sessions.Load()
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil
	}

	if s.now().Sub(session.Timestamp) >= s.cfg.SessionTimeout {
		if err := s.sessions.Delete(); err != nil {
			return nil, err
		}
		return nil, nil
	}

	user := session.User
	return &user, nil
}

// Logout deletes the session unconditionally and cancels the idle timer.
func (s *AuthService) Logout() error {
	if s.idle != nil {
		s.idle.Stop()
	}
	return s.sessions.Delete()
}

// TouchActivity resets the idle countdown. Called by the auth middleware
// on every authenticated request.
func (s *AuthService) TouchActivity() {
	if s.idle != nil {
		s.idle.Touch()
	}
}

func (s *AuthService) ValidateToken(token string) (*utils.TokenClaims, error) {
	return utils.ValidateToken(token, s.cfg.JWTSecret)
}
