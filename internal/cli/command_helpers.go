// Package cli provides shared helper functionality for CLI commands
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/tallypad/tallypad-cli/pkg/files"
	"github.com/tallypad/tallypad-cli/pkg/models"
)

// CommandContext provides common command functionality
type CommandContext struct {
	Out io.Writer
	Err io.Writer
}

// NewCommandContext creates a context writing to stdout/stderr
func NewCommandContext() *CommandContext {
	return &CommandContext{
		Out: os.Stdout,
		Err: os.Stderr,
	}
}

// LoadSettingsWithDefault loads settings or returns default if error
func (c *CommandContext) LoadSettingsWithDefault() *models.Settings {
	settings, err := files.ReadSettings()
	if err != nil {
		return models.DefaultSettings()
	}
	return settings
}

// Printf writes formatted output to the context's output writer
func (c *CommandContext) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.Out, format, args...)
}
