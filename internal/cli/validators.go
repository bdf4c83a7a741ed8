package cli

import (
	"fmt"
	"os"

	"github.com/inkwell-md/inkwell/pkg/files"
)

// ValidateMarkdownPath checks that path exists and is a markdown file
func ValidateMarkdownPath(path string) error {
	if path == "" {
		return fmt.Errorf("file path cannot be empty")
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("file does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("cannot access file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", path)
	}
	if !files.IsMarkdown(path) {
		return fmt.Errorf("not a markdown file: %s", path)
	}
	return nil
}

// ValidateDirectoryPath checks that path exists and is a directory
func ValidateDirectoryPath(path string) error {
	if path == "" {
		return fmt.Errorf("directory path cannot be empty")
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("directory does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("cannot access directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", path)
	}
	return nil
}

// ValidateOutputFormat checks the --output flag value
func ValidateOutputFormat(format string) error {
	switch format {
	case "", "text", "json", "yaml":
		return nil
	}
	return fmt.Errorf("invalid output format %q (valid: text, json, yaml)", format)
}
