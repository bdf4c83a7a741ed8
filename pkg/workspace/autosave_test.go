package workspace

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func newTestScheduler(io FileIO) (*Scheduler, *Store) {
	store := newTestStore(io)
	return NewScheduler(store, time.Second, zerolog.Nop()), store
}

func TestTickSavesDirtyDocumentWithPath(t *testing.T) {
	io := newFakeIO()
	sched, store := newTestScheduler(io)

	doc := store.NewDocument()
	doc.Path = "/notes/a.md"
	store.UpdateContent(doc.ID, "draft")

	if err := sched.Tick(); err != nil {
		t.Fatalf("Tick() error = %v", err)
	}
	if io.files["/notes/a.md"] != "draft" {
		t.Errorf("written = %q, want %q", io.files["/notes/a.md"], "draft")
	}
	if doc.Dirty {
		t.Error("document should be clean after autosave")
	}
}

func TestTickSkipsCleanDocument(t *testing.T) {
	io := newFakeIO()
	sched, store := newTestScheduler(io)

	doc := store.NewDocument()
	doc.Path = "/notes/a.md"

	if err := sched.Tick(); err != nil {
		t.Fatalf("Tick() error = %v", err)
	}
	if io.writes != 0 {
		t.Errorf("writes = %d, want 0 for a clean document", io.writes)
	}
}

func TestTickNeverPromptsForPath(t *testing.T) {
	io := newFakeIO()
	sched, store := newTestScheduler(io)

	doc := store.NewDocument()
	store.UpdateContent(doc.ID, "untitled draft")

	if err := sched.Tick(); err != nil {
		t.Fatalf("Tick() error = %v", err)
	}
	if io.writes != 0 {
		t.Errorf("writes = %d, want 0 for a pathless document", io.writes)
	}
	if !doc.Dirty {
		t.Error("pathless document must stay dirty")
	}
}

func TestTickWithEmptyWorkspace(t *testing.T) {
	sched, _ := newTestScheduler(newFakeIO())
	if err := sched.Tick(); err != nil {
		t.Errorf("Tick() error = %v, want nil", err)
	}
}

func TestStoppedSchedulerIgnoresTicks(t *testing.T) {
	io := newFakeIO()
	sched, store := newTestScheduler(io)

	doc := store.NewDocument()
	doc.Path = "/notes/a.md"
	store.UpdateContent(doc.ID, "draft")

	sched.Stop()
	if !sched.Stopped() {
		t.Fatal("Stopped() = false after Stop()")
	}
	if err := sched.Tick(); err != nil {
		t.Fatalf("Tick() error = %v", err)
	}
	if io.writes != 0 {
		t.Errorf("writes = %d, want 0 after stop", io.writes)
	}
}

func TestTickReportsSaveFailure(t *testing.T) {
	io := newFakeIO()
	io.writeErr = errors.New("disk full")
	sched, store := newTestScheduler(io)

	doc := store.NewDocument()
	doc.Path = "/notes/a.md"
	store.UpdateContent(doc.ID, "draft")

	if err := sched.Tick(); err == nil {
		t.Error("expected the save error to propagate")
	}
	if !doc.Dirty {
		t.Error("failed autosave must leave the document dirty")
	}
}

func TestSchedulerDefaultInterval(t *testing.T) {
	sched := NewScheduler(newTestStore(newFakeIO()), 0, zerolog.Nop())
	if sched.Interval() != DefaultAutosaveInterval {
		t.Errorf("Interval() = %v, want %v", sched.Interval(), DefaultAutosaveInterval)
	}
}
