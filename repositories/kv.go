package repositories

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// fileKV is a small JSON key-value store over a data directory, one file
// per key. It mirrors browser local storage: every write replaces the
// whole value. A single process owns the directory; concurrent processes
// can race and overwrite each other, which is an accepted limitation of
// the local backend.
type fileKV struct {
	dir string
	mu  sync.Mutex
}

func newFileKV(dir string) (*fileKV, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, err
	}
	return &fileKV{dir: dir}, nil
}

func (kv *fileKV) path(key string) string {
	return filepath.Join(kv.dir, key+".json")
}

// get reads the value stored under key into out. It reports false when
// the key does not exist.
func (kv *fileKV) get(key string, out interface{}) (bool, error) {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	return kv.getLocked(key, out)
}

func (kv *fileKV) getLocked(key string, out interface{}) (bool, error) {
	data, err := os.ReadFile(kv.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, err
	}
	return true, nil
}

func (kv *fileKV) set(key string, value interface{}) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	return kv.setLocked(key, value)
}

func (kv *fileKV) setLocked(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return os.WriteFile(kv.path(key), data, 0644)
}

func (kv *fileKV) delete(key string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	err := os.Remove(kv.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// update runs a read-modify-write cycle on key under the lock, so a whole
// collection snapshot is replaced atomically with respect to this process.
func (kv *fileKV) update(key string, out interface{}, mutate func() (interface{}, error)) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	if _, err := kv.getLocked(key, out); err != nil {
		return err
	}
	value, err := mutate()
	if err != nil {
		return err
	}
	return kv.setLocked(key, value)
}
