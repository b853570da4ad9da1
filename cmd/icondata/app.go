// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/luoxiaozero/icondata/internal/build"
	"github.com/luoxiaozero/icondata/internal/config"
	"github.com/luoxiaozero/icondata/internal/issue"
	"github.com/luoxiaozero/icondata/internal/reader"
)

type (
	// App wires CLI services and shared dependencies. Every command handler
	// receives it and goes through its service interfaces.
	App struct {
		Config      ConfigProvider
		Builds      BuildService
		Diagnostics DiagnosticRenderer
		stdout      io.Writer
		stderr      io.Writer
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config      ConfigProvider
		Builds      BuildService
		Diagnostics DiagnosticRenderer
		Stdout      io.Writer
		Stderr      io.Writer
	}

	// BuildRequest captures the inputs of one build.
	BuildRequest struct {
		Targets []build.Target
		// Concurrency bounds the packages read at once; zero uses the
		// builder default.
		Concurrency int
		Verbose     bool
	}

	// BuildService reads icon packages. Implementations return diagnostics
	// inside the report instead of printing them.
	BuildService interface {
		Build(ctx context.Context, req BuildRequest) (*build.Report, error)
	}

	// DiagnosticRenderer renders structured diagnostics.
	DiagnosticRenderer interface {
		Render(ctx context.Context, diags []reader.Diagnostic, w io.Writer)
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		LoadWithPath(ctx context.Context, opts config.LoadOptions) (*config.Config, string, error)
	}

	builderService struct {
		stderr io.Writer
	}

	defaultDiagnosticRenderer struct{}
)

// NewApp creates an App, filling nil dependencies with defaults.
func NewApp(deps Dependencies) (*App, error) {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Builds == nil {
		deps.Builds = &builderService{stderr: deps.Stderr}
	}
	if deps.Diagnostics == nil {
		deps.Diagnostics = defaultDiagnosticRenderer{}
	}

	return &App{
		Config:      deps.Config,
		Builds:      deps.Builds,
		Diagnostics: deps.Diagnostics,
		stdout:      deps.Stdout,
		stderr:      deps.Stderr,
	}, nil
}

// Build runs the build pipeline with a logger on stderr.
func (s *builderService) Build(ctx context.Context, req BuildRequest) (*build.Report, error) {
	b := build.New(
		build.WithConcurrency(req.Concurrency),
		build.WithLogger(newLogger(s.stderr, "build", req.Verbose)),
	)
	return b.Run(ctx, req.Targets)
}

// Render prints one line per diagnostic.
func (defaultDiagnosticRenderer) Render(_ context.Context, diags []reader.Diagnostic, w io.Writer) {
	for _, d := range diags {
		line := WarningStyle.Render("! "+d.Code) + " " + d.Message
		if d.Path != "" {
			line += " " + SubtitleStyle.Render(d.Path)
		}
		fmt.Fprintln(w, line)
	}
}

// newLogger returns a component logger. Non-verbose runs only surface errors
// because warnings already reach the user as diagnostics.
func newLogger(w io.Writer, prefix string, verbose bool) *log.Logger {
	level := log.ErrorLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{Prefix: prefix, Level: level})
}

// renderError writes err to stderr. When err links an issue, its guide is
// rendered below the message.
func (a *App) renderError(err error, verbose bool, scheme config.ColorScheme) {
	fmt.Fprintf(a.stderr, "\n%s %s\n", ErrorStyle.Render("Error:"), formatErrorForDisplay(err, verbose))

	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		return
	}
	guide := ae.Issue()
	if guide == nil {
		return
	}
	out, renderErr := guide.Render(glamourStyle(scheme))
	if renderErr != nil {
		fmt.Fprintln(a.stderr, guide.Markdown())
		return
	}
	fmt.Fprint(a.stderr, out)
}

// glamourStyle maps a color scheme onto a glamour standard style.
func glamourStyle(scheme config.ColorScheme) string {
	switch scheme {
	case config.ColorSchemeDark:
		return "dark"
	case config.ColorSchemeLight:
		return "light"
	default:
		return "auto"
	}
}
