package kv

import (
	"encoding/json"

	"github.com/sirupsen/logrus"
)

// Store is the persisted key-value store backing the storefront session,
// the equivalent of the browser's local storage. Values are opaque bytes;
// callers encode JSON through Load and Save.
type Store interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Close() error
}

// Load reads and decodes the JSON value stored under key. A missing key,
// a read failure or corrupted JSON all fall back to def: persistence
// problems degrade silently and are only logged.
func Load[T any](s Store, key string, def T) T {
	raw, ok, err := s.Get(key)
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("kv: read failed, using default")
		return def
	}
	if !ok {
		return def
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("kv: corrupted value, using default")
		return def
	}
	return v
}

// Save encodes v as JSON and stores it under key. A write failure is
// logged and reported; callers keep their in-memory state either way.
func Save(s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("kv: encode failed")
		return err
	}
	if err := s.Set(key, raw); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("kv: write failed")
		return err
	}
	return nil
}
