// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/luoxiaozero/icondata/internal/config"
	"github.com/luoxiaozero/icondata/internal/issue"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// rootFlags holds the persistent flags shared by every subcommand.
type rootFlags struct {
	verbose    bool
	configPath string
}

// NewRootCommand builds the command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "icondata",
		Short: "Turns SVG icon packages into feature-named icon sets",
		Long: TitleStyle.Render("icondata") + SubtitleStyle.Render(" - Turns SVG icon packages into feature-named icon sets") + `

icondata walks the source tree of an icon package, keeps the SVG files
the package family accepts, and names every icon after its family,
categories and size (AiHomeOutlined, FaGithubBrands, OcAlertSm).

` + SubtitleStyle.Render("Examples:") + `
  icondata types                                   List supported package families
  icondata scan --type AntDesignIcons --dir ./svg  Scan a single package
  icondata scan --manifest icons.toml              Scan configured packages
  icondata watch                                   Rebuild when SVG files change
  icondata config init                             Create a configuration file`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/icondata/config.cue)")

	rootCmd.AddCommand(
		newScanCommand(app, flags),
		newWatchCommand(app, flags),
		newTypesCommand(app),
		newConfigCommand(app, flags),
	)
	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the CLI and exits with the command's exit code.
// This is called by main.main().
func Execute() {
	app, err := NewApp(Dependencies{})
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error:"), err)
		os.Exit(ExitFailure)
	}

	if err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(ExitFailure)
	}
}

// formatErrorForDisplay formats an error for user display.
// ActionableErrors use their Format method, which shows the full error
// chain in verbose mode.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// fail renders err and converts it into an ExitError so that the error is
// not printed a second time. Cancellation is returned untouched.
func (a *App) fail(cmd *cobra.Command, err error, verbose bool, scheme config.ColorScheme, code int) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	a.renderError(err, verbose, scheme)
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	return &ExitError{Code: code, Err: err}
}
