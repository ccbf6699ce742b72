package repositories

import (
	"time"

	"pos-kasir/models"
)

// SessionRepository persists the single active session in the local
// key-value files, regardless of which backend holds products and
// transactions. One session at a time, single-terminal model.
type SessionRepository struct {
	kv *fileKV
}

func NewSessionRepository(dataDir string) (*SessionRepository, error) {
	kv, err := newFileKV(dataDir)
	if err != nil {
		return nil, err
	}
	return &SessionRepository{kv: kv}, nil
}

func (r *SessionRepository) Save(session models.Session) error {
	if err := r.kv.set(keyUser, session.User); err != nil {
		return err
	}
	return r.kv.set(keySessionTimestamp, session.Timestamp.UnixMilli())
}

// Load returns the persisted session, or nil when none exists. Expiry is
// the caller's concern.
func (r *SessionRepository) Load() (*models.Session, error) {
	var user models.User
	ok, err := r.kv.get(keyUser, &user)
	if err != nil || !ok {
		return nil, err
	}

	var timestampMillis int64
	ok, err = r.kv.get(keySessionTimestamp, &timestampMillis)
	if err != nil || !ok {
		return nil, err
	}

	return &models.Session{
		User:      user,
		Timestamp: time.UnixMilli(timestampMillis),
	}, nil
}

func (r *SessionRepository) Delete() error {
	if err := r.kv.delete(keyUser); err != nil {
		return err
	}
	return r.kv.delete(keySessionTimestamp)
}
