package models

import (
	"path/filepath"
	"time"
)

// Document is a single open markdown file. Content is the canonical text:
// the editing surface only holds uncommitted keystrokes and is reconciled
// against this through the synchronizer.
type Document struct {
	ID        string
	Path      string // empty until the document has been saved somewhere
	Content   string
	Dirty     bool
	LastSaved time.Time
}

// HasPath reports whether the document has been assigned a location on disk.
func (d *Document) HasPath() bool {
	return d.Path != ""
}

// Title returns a short display name for tabs and status lines.
func (d *Document) Title() string {
	if d.Path == "" {
		return "untitled"
	}
	return filepath.Base(d.Path)
}

// RecentFile is one entry in the persisted most-recently-used list.
type RecentFile struct {
	Path     string    `yaml:"path"`
	LastUsed time.Time `yaml:"last_used"`
}
