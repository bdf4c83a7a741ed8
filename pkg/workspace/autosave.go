package workspace

import (
	"time"

	"github.com/rs/zerolog"
)

// DefaultAutosaveInterval is how often the scheduler checks the active
// document.
const DefaultAutosaveInterval = 30 * time.Second

// Scheduler periodically persists the active document when it is dirty
// and has a path. The owner's event loop drives it by calling Tick on an
// interval; the scheduler decides whether a save is warranted and guards
// against overlapping saves.
type Scheduler struct {
	store    *Store
	interval time.Duration
	logger   zerolog.Logger

	saving  bool
	stopped bool
}

// NewScheduler creates a scheduler for the given store.
func NewScheduler(store *Store, interval time.Duration, logger zerolog.Logger) *Scheduler {
	if interval <= 0 {
		interval = DefaultAutosaveInterval
	}
	return &Scheduler{
		store:    store,
		interval: interval,
		logger:   logger.With().Str("component", "autosave").Logger(),
	}
}

// Interval returns the tick interval.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Stop cancels the scheduler; subsequent ticks are no-ops.
func (s *Scheduler) Stop() {
	s.stopped = true
}

// Stopped reports whether the scheduler has been cancelled.
func (s *Scheduler) Stopped() bool {
	return s.stopped
}

// Tick saves the active document if it is dirty and has a path. Ticks
// with no active document, a clean document, or a pathless document do
// nothing; autosave never prompts for a location. A save already in
// flight suppresses a new one.
func (s *Scheduler) Tick() error {
	if s.stopped || s.saving {
		return nil
	}

	doc := s.store.ActiveDocument()
	if doc == nil || !doc.Dirty || !doc.HasPath() {
		return nil
	}

	s.saving = true
	defer func() { s.saving = false }()

	if err := s.store.SaveDocument(doc.ID); err != nil {
		s.logger.Warn().Str("path", doc.Path).Err(err).Msg("autosave failed")
		return err
	}
	s.logger.Debug().Str("path", doc.Path).Msg("autosaved")
	return nil
}
