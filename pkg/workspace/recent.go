package workspace

import (
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/inkwell-md/inkwell/pkg/models"
)

// DefaultMaxRecent bounds the most-recently-used list.
const DefaultMaxRecent = 10

// RecentStore persists the recent-files list between sessions.
type RecentStore interface {
	LoadRecent() ([]models.RecentFile, error)
	SaveRecent([]models.RecentFile) error
}

// RecentFiles is a bounded most-recent-first list of file paths. Reads are
// served from memory; every mutation writes through to the store.
type RecentFiles struct {
	entries []models.RecentFile
	max     int
	persist RecentStore
	logger  zerolog.Logger
	now     func() time.Time
}

// NewRecentFiles loads the persisted list. A nil store keeps the list
// in-memory only.
func NewRecentFiles(persist RecentStore, max int, logger zerolog.Logger) *RecentFiles {
	if max <= 0 {
		max = DefaultMaxRecent
	}
	r := &RecentFiles{
		max:     max,
		persist: persist,
		logger:  logger.With().Str("component", "recent").Logger(),
		now:     time.Now,
	}
	if persist != nil {
		entries, err := persist.LoadRecent()
		if err != nil {
			r.logger.Warn().Err(err).Msg("failed to load recent files")
		}
		if len(entries) > max {
			entries = entries[:max]
		}
		r.entries = entries
	}
	return r
}

// Add moves path to the front of the list, inserting it if absent, and
// truncates to the bound.
func (r *RecentFiles) Add(path string) {
	clean := filepath.Clean(path)

	for i, entry := range r.entries {
		if entry.Path == clean {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			break
		}
	}

	entry := models.RecentFile{Path: clean, LastUsed: r.now()}
	r.entries = append([]models.RecentFile{entry}, r.entries...)
	if len(r.entries) > r.max {
		r.entries = r.entries[:r.max]
	}

	if r.persist != nil {
		if err := r.persist.SaveRecent(r.entries); err != nil {
			r.logger.Warn().Err(err).Msg("failed to persist recent files")
		}
	}
}

// Paths returns the recent paths, most recent first.
func (r *RecentFiles) Paths() []string {
	paths := make([]string, 0, len(r.entries))
	for _, entry := range r.entries {
		paths = append(paths, entry.Path)
	}
	return paths
}

// Entries returns the full recent-file records.
func (r *RecentFiles) Entries() []models.RecentFile {
	return r.entries
}
