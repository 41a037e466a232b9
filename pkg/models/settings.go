package models

// Settings represents the application configuration
type Settings struct {
	UI   UISettings   `yaml:"ui"`
	Tape TapeSettings `yaml:"tape"`
}

// UISettings controls UI preferences
type UISettings struct {
	AccentColor string `yaml:"accent_color"` // ANSI 256 color for the display and armed operator
	ShowTape    bool   `yaml:"show_tape"`    // show the session tape pane on startup
}

// TapeSettings controls the in-memory session tape
type TapeSettings struct {
	MaxEntries int `yaml:"max_entries"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		UI: UISettings{
			AccentColor: "170",
			ShowTape:    true,
		},
		Tape: TapeSettings{
			MaxEntries: 50,
		},
	}
}
