package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tallypad/tallypad-cli/cmd/commands"
	"github.com/tallypad/tallypad-cli/internal/cli"
	"github.com/tallypad/tallypad-cli/pkg/files"
	"github.com/tallypad/tallypad-cli/pkg/models"
	"github.com/tallypad/tallypad-cli/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "tallypad",
	Short: "Terminal calculator with a keypad, running total and session tape",
	Long:  `Tallypad is a terminal calculator: a numeric keypad, the four basic operations with left-to-right chaining, a sign toggle, percent, and a session tape of completed calculations.`,
	Run: func(cmd *cobra.Command, args []string) {
		settings := cli.NewCommandContext().LoadSettingsWithDefault()

		tui.Version = version
		app := tui.NewApp(settings)
		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to start the terminal user interface: %v\n", err)
			fmt.Fprintf(os.Stderr, "This could be due to terminal compatibility issues. Try running in a different terminal.\n")
			os.Exit(1)
		}
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default Tallypad settings file",
	Long:  `Creates the settings file in your user config directory so the defaults can be edited`,
	Run: func(cmd *cobra.Command, args []string) {
		path, err := files.SettingsPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to locate settings path: %v\n", err)
			os.Exit(1)
		}

		if _, err := os.Stat(path); err == nil {
			fmt.Printf("Settings file already exists at %s\n", path)
			return
		}

		if err := files.WriteSettings(models.DefaultSettings()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to write settings: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("✓ Wrote default settings to %s\n", path)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Tallypad",
	Long:  `Display the current version of the Tallypad CLI tool`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Tallypad version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewEvalCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Command execution failed: %v\n", err)
		os.Exit(1)
	}
}
