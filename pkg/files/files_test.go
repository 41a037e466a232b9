package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tallypad/tallypad-cli/pkg/models"
)

func TestReadSettingsFromMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	settings, err := ReadSettingsFrom(path)
	if err != nil {
		t.Fatalf("ReadSettingsFrom() error = %v", err)
	}

	defaults := models.DefaultSettings()
	if *settings != *defaults {
		t.Errorf("settings = %+v, want defaults %+v", settings, defaults)
	}
}

func TestWriteAndReadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")

	settings := models.DefaultSettings()
	settings.UI.AccentColor = "39"
	settings.UI.ShowTape = false
	settings.Tape.MaxEntries = 10

	if err := WriteSettingsTo(path, settings); err != nil {
		t.Fatalf("WriteSettingsTo() error = %v", err)
	}

	loaded, err := ReadSettingsFrom(path)
	if err != nil {
		t.Fatalf("ReadSettingsFrom() error = %v", err)
	}
	if *loaded != *settings {
		t.Errorf("loaded = %+v, want %+v", loaded, settings)
	}
}

func TestReadSettingsFromPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := []byte("ui:\n  accent_color: \"205\"\n")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	settings, err := ReadSettingsFrom(path)
	if err != nil {
		t.Fatalf("ReadSettingsFrom() error = %v", err)
	}

	if settings.UI.AccentColor != "205" {
		t.Errorf("accent color = %q, want %q", settings.UI.AccentColor, "205")
	}
	// Unset sections keep their defaults.
	if settings.Tape.MaxEntries != models.DefaultSettings().Tape.MaxEntries {
		t.Errorf("max entries = %d, want default %d", settings.Tape.MaxEntries, models.DefaultSettings().Tape.MaxEntries)
	}
}
