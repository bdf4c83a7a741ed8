package workspace

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type fakeIO struct {
	files    map[string]string
	readErr  error
	writeErr error
	writes   int
}

func newFakeIO() *fakeIO {
	return &fakeIO{files: make(map[string]string)}
}

func (f *fakeIO) ReadDocument(path string) (string, error) {
	if f.readErr != nil {
		return "", f.readErr
	}
	content, ok := f.files[path]
	if !ok {
		return "", errors.New("no such file")
	}
	return content, nil
}

func (f *fakeIO) WriteDocument(path string, content string) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.files[path] = content
	f.writes++
	return nil
}

func newTestStore(io FileIO) *Store {
	recents := NewRecentFiles(nil, DefaultMaxRecent, zerolog.Nop())
	return NewStore(io, recents, zerolog.Nop())
}

func TestNewDocumentBecomesActive(t *testing.T) {
	store := newTestStore(newFakeIO())

	doc := store.NewDocument()
	if doc.ID == "" {
		t.Fatal("expected a generated id")
	}
	if store.ActiveID() != doc.ID {
		t.Errorf("ActiveID() = %q, want %q", store.ActiveID(), doc.ID)
	}
	if doc.HasPath() {
		t.Error("new document should have no path")
	}
}

func TestLoadDocumentDedupesByPath(t *testing.T) {
	io := newFakeIO()
	io.files["/notes/a.md"] = "# A"
	store := newTestStore(io)

	first, err := store.LoadDocument("/notes/a.md")
	if err != nil {
		t.Fatalf("LoadDocument() error = %v", err)
	}
	store.NewDocument()

	second, err := store.LoadDocument("/notes/a.md")
	if err != nil {
		t.Fatalf("LoadDocument() error = %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("expected the existing document to be reused, got new id %q", second.ID)
	}
	if store.ActiveID() != first.ID {
		t.Errorf("ActiveID() = %q, want %q", store.ActiveID(), first.ID)
	}
	if got := len(store.Documents()); got != 2 {
		t.Errorf("len(Documents()) = %d, want 2", got)
	}
}

func TestLoadDocumentFailureLeavesWorkspaceUntouched(t *testing.T) {
	io := newFakeIO()
	io.readErr = errors.New("disk gone")
	store := newTestStore(io)
	store.NewDocument()
	active := store.ActiveID()

	if _, err := store.LoadDocument("/notes/a.md"); err == nil {
		t.Fatal("expected an error")
	}
	if got := len(store.Documents()); got != 1 {
		t.Errorf("len(Documents()) = %d, want 1", got)
	}
	if store.ActiveID() != active {
		t.Errorf("active document changed to %q", store.ActiveID())
	}
	if got := len(store.recents.Paths()); got != 0 {
		t.Errorf("failed load should not touch recents, got %v", store.recents.Paths())
	}
}

func TestLoadDocumentRecordsRecent(t *testing.T) {
	io := newFakeIO()
	io.files["/notes/a.md"] = "# A"
	store := newTestStore(io)

	if _, err := store.LoadDocument("/notes/a.md"); err != nil {
		t.Fatalf("LoadDocument() error = %v", err)
	}
	paths := store.recents.Paths()
	if len(paths) != 1 || paths[0] != "/notes/a.md" {
		t.Errorf("recents = %v, want [/notes/a.md]", paths)
	}
}

func TestUpdateContentMarksDirty(t *testing.T) {
	store := newTestStore(newFakeIO())
	doc := store.NewDocument()

	store.UpdateContent(doc.ID, "hello")

	if doc.Content != "hello" {
		t.Errorf("Content = %q, want %q", doc.Content, "hello")
	}
	if !doc.Dirty {
		t.Error("document should be dirty after an update")
	}

	// unknown ids are dropped without touching anything
	store.UpdateContent("nope", "x")
	if doc.Content != "hello" {
		t.Errorf("unknown-id update mutated content: %q", doc.Content)
	}
}

func TestSaveDocumentPersistsAndClearsDirty(t *testing.T) {
	io := newFakeIO()
	store := newTestStore(io)
	saved := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return saved }

	doc := store.NewDocument()
	doc.Path = "/notes/a.md"
	store.UpdateContent(doc.ID, "content")

	if err := store.SaveDocument(doc.ID); err != nil {
		t.Fatalf("SaveDocument() error = %v", err)
	}

	if io.files["/notes/a.md"] != "content" {
		t.Errorf("written content = %q, want %q", io.files["/notes/a.md"], "content")
	}
	if doc.Dirty {
		t.Error("document should be clean after save")
	}
	if !doc.LastSaved.Equal(saved) {
		t.Errorf("LastSaved = %v, want %v", doc.LastSaved, saved)
	}
	paths := store.recents.Paths()
	if len(paths) != 1 || paths[0] != "/notes/a.md" {
		t.Errorf("recents = %v, want [/notes/a.md]", paths)
	}
}

func TestSaveDocumentWithoutPath(t *testing.T) {
	store := newTestStore(newFakeIO())
	doc := store.NewDocument()

	if err := store.SaveDocument(doc.ID); !errors.Is(err, ErrNoPath) {
		t.Errorf("SaveDocument() error = %v, want ErrNoPath", err)
	}
}

func TestSaveDocumentFailureKeepsDirty(t *testing.T) {
	io := newFakeIO()
	io.writeErr = errors.New("disk full")
	store := newTestStore(io)

	doc := store.NewDocument()
	doc.Path = "/notes/a.md"
	store.UpdateContent(doc.ID, "content")

	if err := store.SaveDocument(doc.ID); err == nil {
		t.Fatal("expected an error")
	}
	if !doc.Dirty {
		t.Error("failed save must leave the document dirty")
	}
}

func TestSaveDocumentAsRestoresPathOnFailure(t *testing.T) {
	io := newFakeIO()
	io.writeErr = errors.New("read-only filesystem")
	store := newTestStore(io)

	doc := store.NewDocument()
	doc.Path = "/notes/old.md"
	store.UpdateContent(doc.ID, "content")

	if err := store.SaveDocumentAs(doc.ID, "/notes/new.md"); err == nil {
		t.Fatal("expected an error")
	}
	if doc.Path != "/notes/old.md" {
		t.Errorf("Path = %q, want the previous path restored", doc.Path)
	}
}

func TestSaveDocumentAsAssignsPath(t *testing.T) {
	io := newFakeIO()
	store := newTestStore(io)

	doc := store.NewDocument()
	store.UpdateContent(doc.ID, "content")

	if err := store.SaveDocumentAs(doc.ID, "/notes/new.md"); err != nil {
		t.Fatalf("SaveDocumentAs() error = %v", err)
	}
	if doc.Path != "/notes/new.md" {
		t.Errorf("Path = %q, want /notes/new.md", doc.Path)
	}
	if doc.Dirty {
		t.Error("document should be clean after save-as")
	}
}

func TestCloseActiveDocumentPicksSuccessor(t *testing.T) {
	io := newFakeIO()
	io.files["/a.md"] = "a"
	io.files["/b.md"] = "b"
	io.files["/c.md"] = "c"
	store := newTestStore(io)

	a, _ := store.LoadDocument("/a.md")
	b, _ := store.LoadDocument("/b.md")
	c, _ := store.LoadDocument("/c.md")

	if err := store.SetActiveDocument(b.ID); err != nil {
		t.Fatalf("SetActiveDocument() error = %v", err)
	}

	// closing the middle tab activates the one that slides into its slot
	store.CloseDocument(b.ID)
	if store.ActiveID() != c.ID {
		t.Errorf("ActiveID() = %q, want %q", store.ActiveID(), c.ID)
	}

	// closing the last tab clamps to the new last position
	store.CloseDocument(c.ID)
	if store.ActiveID() != a.ID {
		t.Errorf("ActiveID() = %q, want %q", store.ActiveID(), a.ID)
	}

	store.CloseDocument(a.ID)
	if store.ActiveID() != "" {
		t.Errorf("ActiveID() = %q, want empty workspace", store.ActiveID())
	}
}

func TestCloseInactiveDocumentKeepsActive(t *testing.T) {
	io := newFakeIO()
	io.files["/a.md"] = "a"
	io.files["/b.md"] = "b"
	store := newTestStore(io)

	a, _ := store.LoadDocument("/a.md")
	b, _ := store.LoadDocument("/b.md")

	store.CloseDocument(a.ID)
	if store.ActiveID() != b.ID {
		t.Errorf("ActiveID() = %q, want %q", store.ActiveID(), b.ID)
	}
}

func TestSetActiveDocumentUnknown(t *testing.T) {
	store := newTestStore(newFakeIO())
	store.NewDocument()

	if err := store.SetActiveDocument("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("SetActiveDocument() error = %v, want ErrNotFound", err)
	}
}

func TestReloadDocumentStaysClean(t *testing.T) {
	io := newFakeIO()
	io.files["/a.md"] = "old"
	store := newTestStore(io)

	doc, _ := store.LoadDocument("/a.md")
	io.files["/a.md"] = "new"

	if err := store.ReloadDocument(doc.ID); err != nil {
		t.Fatalf("ReloadDocument() error = %v", err)
	}
	if doc.Content != "new" {
		t.Errorf("Content = %q, want %q", doc.Content, "new")
	}
	if doc.Dirty {
		t.Error("reload must not mark the document dirty")
	}
}
