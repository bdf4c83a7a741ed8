package files

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/inkwell-md/inkwell/pkg/models"
)

func withTempConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	orig := configDir
	configDir = func() (string, error) { return dir, nil }
	t.Cleanup(func() { configDir = orig })
	return dir
}

func TestLoadSettingsFirstLaunch(t *testing.T) {
	withTempConfigDir(t)

	settings, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() error = %v, want nil on first launch", err)
	}
	defaults := models.DefaultSettings()
	if *settings != *defaults {
		t.Errorf("settings = %+v, want defaults %+v", settings, defaults)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	withTempConfigDir(t)

	settings := models.DefaultSettings()
	settings.UI.Theme = "light"
	settings.Editor.AutosaveSeconds = 60

	if err := SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings() error = %v", err)
	}

	loaded, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if loaded.UI.Theme != "light" {
		t.Errorf("Theme = %q, want %q", loaded.UI.Theme, "light")
	}
	if loaded.Editor.AutosaveSeconds != 60 {
		t.Errorf("AutosaveSeconds = %d, want 60", loaded.Editor.AutosaveSeconds)
	}
}

func TestLoadSettingsCorruptFileFallsBack(t *testing.T) {
	dir := withTempConfigDir(t)

	path := filepath.Join(dir, SettingsFile)
	if err := os.WriteFile(path, []byte("{{{not yaml"), 0644); err != nil {
		t.Fatal(err)
	}

	settings, err := LoadSettings()
	if err == nil {
		t.Error("expected an error for a corrupt settings file")
	}
	if *settings != *models.DefaultSettings() {
		t.Errorf("settings = %+v, want defaults", settings)
	}
}

func TestLoadSettingsInvalidValuesFallBack(t *testing.T) {
	dir := withTempConfigDir(t)

	path := filepath.Join(dir, SettingsFile)
	content := "editor:\n  autosave_seconds: 0\nui:\n  theme: dark\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	settings, err := LoadSettings()
	if err == nil {
		t.Error("expected a validation error")
	}
	if settings.Editor.AutosaveSeconds != models.DefaultSettings().Editor.AutosaveSeconds {
		t.Errorf("AutosaveSeconds = %d, want the default", settings.Editor.AutosaveSeconds)
	}
}

func TestRecentRoundTrip(t *testing.T) {
	withTempConfigDir(t)

	entries := []models.RecentFile{
		{Path: "/notes/a.md", LastUsed: time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)},
		{Path: "/notes/b.md", LastUsed: time.Date(2026, 1, 15, 18, 30, 0, 0, time.UTC)},
	}
	if err := SaveRecent(entries); err != nil {
		t.Fatalf("SaveRecent() error = %v", err)
	}

	loaded, err := LoadRecent()
	if err != nil {
		t.Fatalf("LoadRecent() error = %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("len(loaded) = %d, want 2", len(loaded))
	}
	for i := range entries {
		if loaded[i].Path != entries[i].Path {
			t.Errorf("loaded[%d].Path = %q, want %q", i, loaded[i].Path, entries[i].Path)
		}
		if !loaded[i].LastUsed.Equal(entries[i].LastUsed) {
			t.Errorf("loaded[%d].LastUsed = %v, want %v", i, loaded[i].LastUsed, entries[i].LastUsed)
		}
	}
}

func TestLoadRecentMissingFile(t *testing.T) {
	withTempConfigDir(t)

	entries, err := LoadRecent()
	if err != nil {
		t.Fatalf("LoadRecent() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("len(entries) = %d, want 0", len(entries))
	}
}
