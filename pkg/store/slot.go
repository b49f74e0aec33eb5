package store

import (
	"github.com/goccy/go-yaml"

	"github.com/wikiai/wikiai/pkg/errors"
	"github.com/wikiai/wikiai/pkg/logging"
)

// Load reads and decodes the slot for key. A missing or unreadable slot
// returns a StorageReadError so the caller can decide to substitute a
// default; it is never a reason to crash.
func Load[T any](s Store, key string) (T, error) {
	var value T

	data, err := s.Read(key)
	if err != nil {
		return value, errors.NewStorageReadError(key, err)
	}
	if err := yaml.Unmarshal(data, &value); err != nil {
		return value, errors.NewStorageReadError(key, err)
	}
	return value, nil
}

// LoadOr reads and decodes the slot for key, falling back to def when the
// slot is absent or its contents cannot be decoded. The failure is logged
// and swallowed per the store's soft-read contract.
func LoadOr[T any](s Store, key string, def T) T {
	value, err := Load[T](s, key)
	if err != nil {
		logging.Debug().Err(err).Str("key", key).Msg("Slot unreadable, using default")
		return def
	}
	return value
}

// Save encodes value and replaces the slot for key. Persistence failures
// are returned for logging; in-memory state remains the source of truth
// until the next successful save.
func Save[T any](s Store, key string, value T) error {
	data, err := yaml.Marshal(value)
	if err != nil {
		return errors.WrapParse("yaml", key, err)
	}
	return s.Write(key, data)
}
