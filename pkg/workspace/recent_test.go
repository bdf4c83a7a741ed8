package workspace

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/inkwell-md/inkwell/pkg/models"
)

type fakeRecentStore struct {
	entries []models.RecentFile
	loadErr error
	saveErr error
	saves   int
}

func (f *fakeRecentStore) LoadRecent() ([]models.RecentFile, error) {
	return f.entries, f.loadErr
}

func (f *fakeRecentStore) SaveRecent(entries []models.RecentFile) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.entries = entries
	f.saves++
	return nil
}

func TestAddMovesExistingToFront(t *testing.T) {
	recents := NewRecentFiles(nil, 5, zerolog.Nop())

	recents.Add("/a.md")
	recents.Add("/b.md")
	recents.Add("/c.md")
	recents.Add("/a.md")

	want := []string{"/a.md", "/c.md", "/b.md"}
	if got := recents.Paths(); !reflect.DeepEqual(got, want) {
		t.Errorf("Paths() = %v, want %v", got, want)
	}
}

func TestAddCleansPathsBeforeDeduping(t *testing.T) {
	recents := NewRecentFiles(nil, 5, zerolog.Nop())

	recents.Add("/notes/a.md")
	recents.Add("/notes/../notes/a.md")

	if got := len(recents.Paths()); got != 1 {
		t.Errorf("len(Paths()) = %d, want 1 after cleaning", got)
	}
}

func TestAddTruncatesToBound(t *testing.T) {
	recents := NewRecentFiles(nil, 3, zerolog.Nop())

	recents.Add("/a.md")
	recents.Add("/b.md")
	recents.Add("/c.md")
	recents.Add("/d.md")

	want := []string{"/d.md", "/c.md", "/b.md"}
	if got := recents.Paths(); !reflect.DeepEqual(got, want) {
		t.Errorf("Paths() = %v, want %v", got, want)
	}
}

func TestAddWritesThrough(t *testing.T) {
	store := &fakeRecentStore{}
	recents := NewRecentFiles(store, 5, zerolog.Nop())

	recents.Add("/a.md")
	recents.Add("/b.md")

	if store.saves != 2 {
		t.Errorf("saves = %d, want 2", store.saves)
	}
	if len(store.entries) != 2 || store.entries[0].Path != "/b.md" {
		t.Errorf("persisted entries = %+v", store.entries)
	}
}

func TestPersistFailureKeepsMemoryList(t *testing.T) {
	store := &fakeRecentStore{saveErr: errors.New("disk full")}
	recents := NewRecentFiles(store, 5, zerolog.Nop())

	recents.Add("/a.md")

	if got := recents.Paths(); len(got) != 1 || got[0] != "/a.md" {
		t.Errorf("Paths() = %v, want the in-memory entry kept", got)
	}
}

func TestNewRecentFilesLoadsAndTrims(t *testing.T) {
	now := time.Now()
	store := &fakeRecentStore{entries: []models.RecentFile{
		{Path: "/a.md", LastUsed: now},
		{Path: "/b.md", LastUsed: now},
		{Path: "/c.md", LastUsed: now},
	}}

	recents := NewRecentFiles(store, 2, zerolog.Nop())

	want := []string{"/a.md", "/b.md"}
	if got := recents.Paths(); !reflect.DeepEqual(got, want) {
		t.Errorf("Paths() = %v, want %v", got, want)
	}
}

func TestNewRecentFilesLoadFailureStartsEmpty(t *testing.T) {
	store := &fakeRecentStore{loadErr: errors.New("corrupt file")}
	recents := NewRecentFiles(store, 5, zerolog.Nop())

	if got := len(recents.Paths()); got != 0 {
		t.Errorf("len(Paths()) = %d, want 0", got)
	}
}
