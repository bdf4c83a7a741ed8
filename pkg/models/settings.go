package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Settings represents the persisted application configuration.
type Settings struct {
	Editor EditorSettings `yaml:"editor"`
	UI     UISettings     `yaml:"ui"`
}

// EditorSettings controls save and sync timing.
type EditorSettings struct {
	AutosaveSeconds int `yaml:"autosave_seconds"`
	DebounceMillis  int `yaml:"debounce_millis"`
	MaxRecentFiles  int `yaml:"max_recent_files"`
}

// UISettings controls UI preferences.
type UISettings struct {
	Theme       string `yaml:"theme"` // "light" or "dark"
	ShowSidebar bool   `yaml:"show_sidebar"`
	ShowPreview bool   `yaml:"show_preview"`
}

// DefaultSettings returns the default configuration.
func DefaultSettings() *Settings {
	return &Settings{
		Editor: EditorSettings{
			AutosaveSeconds: 30,
			DebounceMillis:  500,
			MaxRecentFiles:  10,
		},
		UI: UISettings{
			Theme:       "dark",
			ShowSidebar: false,
			ShowPreview: false,
		},
	}
}

// Validate checks that the settings are usable.
func (s *Settings) Validate() error {
	// Required rejects the zero value; Min alone would skip it.
	if err := validation.ValidateStruct(&s.Editor,
		validation.Field(&s.Editor.AutosaveSeconds, validation.Required, validation.Min(1)),
		validation.Field(&s.Editor.DebounceMillis, validation.Required, validation.Min(1)),
		validation.Field(&s.Editor.MaxRecentFiles, validation.Required, validation.Min(1), validation.Max(100)),
	); err != nil {
		return err
	}
	return validation.ValidateStruct(&s.UI,
		validation.Field(&s.UI.Theme, validation.Required, validation.In("light", "dark")),
	)
}
