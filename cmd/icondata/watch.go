// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/luoxiaozero/icondata/internal/build"
	"github.com/luoxiaozero/icondata/internal/issue"
	"github.com/luoxiaozero/icondata/internal/watch"
)

type watchFlags struct {
	targetFlags
	manifest string
	debounce time.Duration
}

func newWatchCommand(app *App, root *rootFlags) *cobra.Command {
	flags := &watchFlags{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Rebuild icon packages whenever their SVG files change",
		Long: `Read the icon packages once, then watch their directories and read
them again whenever SVG files change.

Rapid changes are collapsed into one rebuild after the debounce period.
Press Ctrl+C to stop.`,
		Example: `  icondata watch
  icondata watch --type Lucide --dir ./lucide/icons --manifest icons.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWatch(cmd, app, root, flags)
		},
	}

	bindTargetFlags(cmd, &flags.targetFlags)
	cmd.Flags().StringVar(&flags.manifest, "manifest", "", "rewrite a TOML manifest after every build")
	cmd.Flags().DurationVar(&flags.debounce, "debounce", 0, "quiet period before rebuilding (default from config)")

	return cmd
}

func runWatch(cmd *cobra.Command, app *App, root *rootFlags, flags *watchFlags) error {
	ctx := cmd.Context()

	plan, err := app.resolvePlan(ctx, root, &flags.targetFlags)
	if err != nil {
		return app.fail(cmd, err, root.verbose, "", ExitFailure)
	}
	scheme := plan.cfg.UI.ColorScheme

	manifest := flags.manifest
	if manifest == "" {
		manifest = plan.cfg.Output.Manifest
	}

	// Build failures are shown and watching continues, so fixing the
	// offending file triggers the next attempt.
	rebuild := func(ctx context.Context) {
		report, err := app.Builds.Build(ctx, plan.request())
		if err != nil {
			if ctx.Err() == nil {
				app.renderError(err, plan.verbose, scheme)
			}
			return
		}
		app.printReport(ctx, report, false)
		if manifest == "" {
			return
		}
		if err := build.WriteManifestFile(manifest, report); err != nil {
			app.renderError(err, plan.verbose, scheme)
			return
		}
		fmt.Fprintf(app.stdout, "%s Wrote manifest %s\n", SuccessStyle.Render("✓"), CmdStyle.Render(manifest))
	}

	rebuild(ctx)

	debounce := flags.debounce
	if debounce <= 0 {
		debounce = plan.cfg.Watch.Debounce
	}

	roots := make([]string, 0, len(plan.targets))
	for _, target := range plan.targets {
		roots = append(roots, target.Path)
	}

	w, err := watch.New(watch.Config{
		Roots:    roots,
		Ignore:   plan.cfg.Watch.Ignore,
		Debounce: debounce,
		Logger:   newLogger(app.stderr, "watch", plan.verbose),
		OnChange: func(ctx context.Context, changed []string) error {
			fmt.Fprintf(app.stdout, "\n%s Detected %d change(s)\n", CmdStyle.Render("→"), len(changed))
			if plan.verbose {
				for _, path := range changed {
					fmt.Fprintf(app.stdout, "    %s\n", VerboseStyle.Render(path))
				}
			}
			rebuild(ctx)
			return nil
		},
	})
	if err != nil {
		return app.fail(cmd, watchError(err), plan.verbose, scheme, ExitFailure)
	}

	fmt.Fprintf(app.stdout, "\n%s %d package(s), press Ctrl+C to stop\n", TitleStyle.Render("Watching"), len(roots))

	if err := w.Run(ctx); err != nil {
		return app.fail(cmd, watchError(err), plan.verbose, scheme, ExitFailure)
	}
	return nil
}

func watchError(err error) error {
	return issue.NewErrorContext().
		WithOperation("watch icon packages").
		WithIssue(issue.WatchFailedId).
		WithSuggestion("Check the package directories still exist").
		Wrap(err).
		BuildError()
}
