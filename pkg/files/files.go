package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	// DefaultFileMode is used for every markdown file we write.
	DefaultFileMode = 0644
	// DefaultDirMode is used when creating parent directories.
	DefaultDirMode = 0755
)

// Disk is the production file I/O collaborator. The workspace store takes
// it as an interface so tests can substitute an in-memory fake.
type Disk struct{}

func (Disk) ReadDocument(path string) (string, error) { return ReadDocument(path) }

func (Disk) WriteDocument(path string, content string) error { return WriteDocument(path, content) }

// ReadDocument reads a markdown file from disk.
func ReadDocument(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read document %s: %w", path, err)
	}
	return string(content), nil
}

// WriteDocument writes a markdown file, creating parent directories as needed.
func WriteDocument(path string, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, DefaultDirMode); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), DefaultFileMode); err != nil {
		return fmt.Errorf("failed to write document %s: %w", path, err)
	}
	return nil
}

// CreateDocument creates an empty markdown file at path.
func CreateDocument(path string) error {
	return WriteDocument(path, "")
}

// DeleteDocument removes a file from disk.
func DeleteDocument(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete document %s: %w", path, err)
	}
	return nil
}

// RenameDocument moves a file to a new path.
func RenameDocument(oldPath, newPath string) error {
	if err := os.Rename(oldPath, newPath); err != nil {
		return fmt.Errorf("failed to rename document %s: %w", oldPath, err)
	}
	return nil
}

// Exists reports whether a file or directory exists at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsMarkdown reports whether path has a markdown extension.
func IsMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// DirEntry is a single row of a directory listing.
type DirEntry struct {
	Name  string
	Path  string
	IsDir bool
}

// ListDirectory lists the contents of a directory, skipping hidden entries.
// Directories sort before files, each group case-insensitively by name.
func ListDirectory(path string) ([]DirEntry, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", path, err)
	}

	var listing []DirEntry
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		listing = append(listing, DirEntry{
			Name:  name,
			Path:  filepath.Join(path, name),
			IsDir: entry.IsDir(),
		})
	}

	sort.Slice(listing, func(i, j int) bool {
		if listing[i].IsDir != listing[j].IsDir {
			return listing[i].IsDir
		}
		return strings.ToLower(listing[i].Name) < strings.ToLower(listing[j].Name)
	})

	return listing, nil
}
