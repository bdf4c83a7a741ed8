package workspace

import (
	"time"
)

// DefaultDebounce is the quiet period after the last surface edit before
// the content is pulled back into the store.
const DefaultDebounce = 500 * time.Millisecond

// Surface is the mutable rich-text editing buffer. The synchronizer treats
// it as opaque beyond serialization and wholesale replacement.
type Surface interface {
	Value() string
	SetValue(string)
}

type syncState int

const (
	syncIdle syncState = iota
	syncPending
)

// Synchronizer reconciles the editing surface with the canonical document
// content. Pushes are guarded by comparing against the surface's current
// serialized content; pulls are debounced trailing-edge through an
// explicit Idle -> Pending(payload, deadline) -> Idle state machine.
type Synchronizer struct {
	store *Store
	delay time.Duration
	now   func() time.Time

	docID      string
	surface    Surface
	lastPushed string

	state    syncState
	payload  string
	deadline time.Time
}

// NewSynchronizer creates a synchronizer with no surface attached.
func NewSynchronizer(store *Store, delay time.Duration) *Synchronizer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Synchronizer{
		store: store,
		delay: delay,
		now:   time.Now,
	}
}

// Attach binds the synchronizer to a document and its fresh surface. Any
// debounce pending for the previous document is discarded, never carried
// over.
func (s *Synchronizer) Attach(docID string, surface Surface) {
	s.cancel()
	s.docID = docID
	s.surface = surface
	s.lastPushed = ""
}

// Detach tears the surface down, discarding any pending payload.
func (s *Synchronizer) Detach() {
	s.cancel()
	s.docID = ""
	s.surface = nil
	s.lastPushed = ""
}

// Attached reports whether a surface is currently bound.
func (s *Synchronizer) Attached() bool {
	return s.surface != nil
}

// DocumentID returns the id of the document the surface is bound to.
func (s *Synchronizer) DocumentID() string {
	return s.docID
}

// PushContent replaces the surface content when it differs from content.
// The comparison is the loop guard: pushing identical content would only
// echo back through the edit notification as a redundant dirty write.
// A push supersedes whatever the surface held, so any pending payload is
// discarded with it.
func (s *Synchronizer) PushContent(content string) {
	if s.surface == nil {
		return
	}
	s.cancel()
	if s.surface.Value() != content {
		s.surface.SetValue(content)
	}
	s.lastPushed = content
}

// NoteEdit records a surface edit notification. A notification carrying
// exactly the content of the last push means the surface is back at the
// canonical content, whether as the echo of that push or as an edit that
// reverted to it; either way any pending payload is stale and is cancelled.
// Otherwise the payload replaces any pending one and the deadline restarts
// (trailing-edge debounce).
func (s *Synchronizer) NoteEdit(content string) {
	if s.docID == "" {
		return
	}
	if content == s.lastPushed {
		s.cancel()
		return
	}
	s.state = syncPending
	s.payload = content
	s.deadline = s.now().Add(s.delay)
}

// Pending reports whether an edit is waiting to be committed.
func (s *Synchronizer) Pending() bool {
	return s.state == syncPending
}

// Deadline returns when the pending edit is due. Only meaningful while
// Pending.
func (s *Synchronizer) Deadline() time.Time {
	return s.deadline
}

// Due reports whether the pending edit's quiet period has elapsed.
func (s *Synchronizer) Due(now time.Time) bool {
	return s.state == syncPending && !now.Before(s.deadline)
}

// Flush commits the pending payload to the store and returns to idle.
// It reports whether a commit happened. Flushing with no pending edit,
// or after the document went away, is a no-op.
func (s *Synchronizer) Flush() bool {
	if s.state != syncPending {
		return false
	}

	payload := s.payload
	s.cancel()

	if s.docID == "" || s.store.Get(s.docID) == nil {
		return false
	}
	s.store.UpdateContent(s.docID, payload)
	s.lastPushed = payload
	return true
}

func (s *Synchronizer) cancel() {
	s.state = syncIdle
	s.payload = ""
	s.deadline = time.Time{}
}
