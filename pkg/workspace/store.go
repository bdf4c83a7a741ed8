package workspace

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/inkwell-md/inkwell/pkg/models"
)

var (
	// ErrNoPath is returned when saving a document that has never been
	// assigned a location. The caller must resolve one via save-as first.
	ErrNoPath = errors.New("document has no path")
	// ErrNotFound is returned for operations on an unknown document id.
	ErrNotFound = errors.New("document not found")
)

// FileIO is the disk collaborator. The store is the only component that
// reads or writes document files.
type FileIO interface {
	ReadDocument(path string) (string, error)
	WriteDocument(path string, content string) error
}

// Store owns the ordered set of open documents and the active-document
// pointer. It is constructed by the composition root and passed by
// reference; all mutations run on the owning event loop.
type Store struct {
	io      FileIO
	recents *RecentFiles
	logger  zerolog.Logger
	now     func() time.Time

	documents []*models.Document
	activeID  string
}

// NewStore creates an empty workspace.
func NewStore(io FileIO, recents *RecentFiles, logger zerolog.Logger) *Store {
	return &Store{
		io:      io,
		recents: recents,
		logger:  logger.With().Str("component", "workspace").Logger(),
		now:     time.Now,
	}
}

// Documents returns the open documents in tab order.
func (s *Store) Documents() []*models.Document {
	return s.documents
}

// ActiveID returns the id of the active document, or "" when the
// workspace is empty.
func (s *Store) ActiveID() string {
	return s.activeID
}

// ActiveDocument returns the active document, or nil when the workspace
// is empty.
func (s *Store) ActiveDocument() *models.Document {
	return s.find(s.activeID)
}

// Get returns the document with the given id, or nil.
func (s *Store) Get(id string) *models.Document {
	return s.find(id)
}

// NewDocument appends a fresh untitled document and makes it active.
func (s *Store) NewDocument() *models.Document {
	doc := &models.Document{ID: uuid.NewString()}
	s.documents = append(s.documents, doc)
	s.activeID = doc.ID
	s.logger.Debug().Str("id", doc.ID).Msg("created document")
	return doc
}

// OpenDocument adds doc to the workspace and activates it. If a document
// with the same path is already open, that one is activated instead and
// the incoming doc is discarded.
func (s *Store) OpenDocument(doc *models.Document) *models.Document {
	if doc.Path != "" {
		for _, existing := range s.documents {
			if existing.Path == doc.Path {
				s.activeID = existing.ID
				return existing
			}
		}
	}
	s.documents = append(s.documents, doc)
	s.activeID = doc.ID
	return doc
}

// LoadDocument reads path from disk and opens it. A read failure leaves
// the workspace untouched.
func (s *Store) LoadDocument(path string) (*models.Document, error) {
	content, err := s.io.ReadDocument(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}

	s.recents.Add(path)

	doc := &models.Document{
		ID:      uuid.NewString(),
		Path:    path,
		Content: content,
	}
	opened := s.OpenDocument(doc)
	s.logger.Info().Str("path", path).Str("id", opened.ID).Msg("loaded document")
	return opened, nil
}

// ReloadDocument re-reads a document's file and replaces its content
// without marking it dirty. Used when the file changed on disk and the
// document has no local edits.
func (s *Store) ReloadDocument(id string) error {
	doc := s.find(id)
	if doc == nil {
		return ErrNotFound
	}
	if !doc.HasPath() {
		return ErrNoPath
	}

	content, err := s.io.ReadDocument(doc.Path)
	if err != nil {
		return fmt.Errorf("failed to reload document: %w", err)
	}
	doc.Content = content
	doc.Dirty = false
	s.logger.Info().Str("path", doc.Path).Msg("reloaded document")
	return nil
}

// UpdateContent replaces a document's content and marks it dirty. An
// unknown id is a logged no-op.
func (s *Store) UpdateContent(id string, content string) {
	doc := s.find(id)
	if doc == nil {
		s.logger.Debug().Str("id", id).Msg("update for unknown document dropped")
		return
	}
	doc.Content = content
	doc.Dirty = true
}

// SaveDocument persists a document to its path. The dirty flag only
// clears when the content is still the snapshot that was written, so a
// save that completes after a newer edit never hides that edit.
func (s *Store) SaveDocument(id string) error {
	doc := s.find(id)
	if doc == nil {
		return ErrNotFound
	}
	if !doc.HasPath() {
		return ErrNoPath
	}

	snapshot := doc.Content
	if err := s.io.WriteDocument(doc.Path, snapshot); err != nil {
		s.logger.Error().Str("path", doc.Path).Err(err).Msg("save failed")
		return fmt.Errorf("failed to save document: %w", err)
	}

	s.recents.Add(doc.Path)
	if doc.Content == snapshot {
		doc.Dirty = false
	}
	doc.LastSaved = s.now()
	s.logger.Info().Str("path", doc.Path).Msg("saved document")
	return nil
}

// SaveDocumentAs assigns a new path to a document and saves it there. On
// failure the previous path is restored.
func (s *Store) SaveDocumentAs(id string, path string) error {
	doc := s.find(id)
	if doc == nil {
		return ErrNotFound
	}

	previous := doc.Path
	doc.Path = path
	if err := s.SaveDocument(id); err != nil {
		doc.Path = previous
		return err
	}
	return nil
}

// CloseDocument removes a document. When the active document closes, the
// successor is the document that slides into its index, clamped to the
// new last position; an empty workspace clears the active pointer.
func (s *Store) CloseDocument(id string) {
	idx := -1
	for i, doc := range s.documents {
		if doc.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	s.documents = append(s.documents[:idx], s.documents[idx+1:]...)
	s.logger.Debug().Str("id", id).Msg("closed document")

	if s.activeID != id {
		return
	}
	if len(s.documents) == 0 {
		s.activeID = ""
		return
	}
	if idx >= len(s.documents) {
		idx = len(s.documents) - 1
	}
	s.activeID = s.documents[idx].ID
}

// SetActiveDocument switches the active document. Unknown ids are
// rejected rather than silently ignored.
func (s *Store) SetActiveDocument(id string) error {
	if s.find(id) == nil {
		return ErrNotFound
	}
	s.activeID = id
	return nil
}

func (s *Store) find(id string) *models.Document {
	if id == "" {
		return nil
	}
	for _, doc := range s.documents {
		if doc.ID == id {
			return doc
		}
	}
	return nil
}
