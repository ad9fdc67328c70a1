package settings

import (
	"errors"
	"fmt"

	"desktop-clock/internal/logger"
	"desktop-clock/internal/storage"
)

// Key is the single storage name the record lives under.
const Key = "clockSettings"

// Service owns the in-memory record and mirrors it to durable storage on
// explicit saves. It is not safe for concurrent use; the overlay loop is
// its only caller.
type Service struct {
	store   storage.Store
	current ClockSettings
}

// New creates a settings service holding the defaults until Load is called.
func New(store storage.Store) *Service {
	return &Service{
		store:   store,
		current: Defaults(),
	}
}

// Load reads the stored record. Absent or malformed data yields the
// defaults; it never fails.
func (s *Service) Load() ClockSettings {
	data, err := s.store.Get(Key)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		logger.Info("no stored settings, using defaults")
		s.current = Defaults()
	case err != nil:
		logger.Warn("failed to read settings, using defaults", "err", err)
		s.current = Defaults()
	default:
		c, err := Decode(data)
		if err != nil {
			logger.Warn("stored settings are malformed, using defaults", "err", err)
		}
		s.current = c
	}
	return s.current
}

// Get returns the current record.
func (s *Service) Get() ClockSettings {
	return s.current
}

// Set replaces the in-memory record without persisting it.
func (s *Service) Set(c ClockSettings) {
	s.current = c.Normalize()
}

// Save normalizes c, writes it as a whole and makes it current. On a write
// failure the in-memory record is left unchanged.
func (s *Service) Save(c ClockSettings) error {
	c = c.Normalize()
	data, err := Encode(c)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := s.store.Put(Key, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	s.current = c
	return nil
}
