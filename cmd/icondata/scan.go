// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/luoxiaozero/icondata/internal/build"
	"github.com/luoxiaozero/icondata/internal/config"
	"github.com/luoxiaozero/icondata/internal/issue"
	"github.com/luoxiaozero/icondata/internal/reader"
	"github.com/luoxiaozero/icondata/pkg/icon"
	"github.com/luoxiaozero/icondata/pkg/iconpkg"
)

// errTargetFlagsWithoutDir is returned when package flags are given without --dir.
var errTargetFlagsWithoutDir = errors.New("--type, --short-name and --size require --dir")

type (
	// targetFlags select a single package from the command line instead of
	// the configured package list.
	targetFlags struct {
		dir         string
		pkgType     string
		shortName   string
		size        string
		concurrency int
	}

	scanFlags struct {
		targetFlags
		manifest string
		strict   bool
		list     bool
	}

	// buildPlan is the resolved input of a scan or watch run.
	buildPlan struct {
		cfg         *config.Config
		targets     []build.Target
		concurrency int
		verbose     bool
	}
)

func newScanCommand(app *App, root *rootFlags) *cobra.Command {
	flags := &scanFlags{}

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Read icon packages and report their feature names",
		Long: `Read one or more icon packages and report the icons they contain.

Without --dir the packages listed in the configuration file are read.
With --dir a single package of the given --type is read instead.`,
		Example: `  icondata scan --type AntDesignIcons --dir ./ant-design-icons/svg --list
  icondata scan --type GithubOcticons --dir ./octicons/icons --short-name Go
  icondata scan --manifest icons.toml --strict`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScan(cmd, app, root, flags)
		},
	}

	bindTargetFlags(cmd, &flags.targetFlags)
	cmd.Flags().StringVar(&flags.manifest, "manifest", "", "write a TOML manifest of all feature names to this path")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "fail when two icons share a feature name")
	cmd.Flags().BoolVar(&flags.list, "list", false, "print every feature name")

	return cmd
}

func bindTargetFlags(cmd *cobra.Command, f *targetFlags) {
	cmd.Flags().StringVarP(&f.dir, "dir", "d", "", "root directory of a single icon package")
	cmd.Flags().StringVarP(&f.pkgType, "type", "t", "", "package family of --dir (see 'icondata types')")
	cmd.Flags().StringVar(&f.shortName, "short-name", "", "feature-name prefix overriding the family default")
	cmd.Flags().StringVar(&f.size, "size", "", "default size numeral for icons without one (12, 16, 20, 24, 48, 96)")
	cmd.Flags().IntVarP(&f.concurrency, "concurrency", "j", 0, "packages read at once (default from config)")
}

func runScan(cmd *cobra.Command, app *App, root *rootFlags, flags *scanFlags) error {
	ctx := cmd.Context()

	plan, err := app.resolvePlan(ctx, root, &flags.targetFlags)
	if err != nil {
		return app.fail(cmd, err, root.verbose, config.ColorSchemeAuto, ExitFailure)
	}
	scheme := plan.cfg.UI.ColorScheme

	report, err := app.Builds.Build(ctx, plan.request())
	if err != nil {
		return app.fail(cmd, err, plan.verbose, scheme, ExitFailure)
	}
	app.printReport(ctx, report, flags.list)

	manifest := flags.manifest
	if manifest == "" {
		manifest = plan.cfg.Output.Manifest
	}
	if manifest != "" {
		if err := build.WriteManifestFile(manifest, report); err != nil {
			return app.fail(cmd, err, plan.verbose, scheme, ExitFailure)
		}
		fmt.Fprintf(app.stdout, "%s Wrote manifest %s\n", SuccessStyle.Render("✓"), CmdStyle.Render(manifest))
	}

	if flags.strict {
		if err := report.DuplicatesError(); err != nil {
			return app.fail(cmd, err, plan.verbose, scheme, ExitDuplicates)
		}
	}
	return nil
}

// resolvePlan loads the configuration and picks the targets: the --dir
// package when given, otherwise every configured package.
func (a *App) resolvePlan(ctx context.Context, root *rootFlags, f *targetFlags) (buildPlan, error) {
	cfg, _, err := a.loadConfig(ctx, root)
	if err != nil {
		return buildPlan{}, err
	}

	plan := buildPlan{
		cfg:         cfg,
		concurrency: cfg.Concurrency,
		verbose:     root.verbose || cfg.UI.Verbose,
	}
	if f.concurrency > 0 {
		plan.concurrency = f.concurrency
	}

	if f.dir != "" {
		target, err := f.target()
		if err != nil {
			return buildPlan{}, err
		}
		plan.targets = []build.Target{target}
		return plan, nil
	}

	if f.pkgType != "" || f.shortName != "" || f.size != "" {
		return buildPlan{}, errTargetFlagsWithoutDir
	}

	if len(cfg.Packages) == 0 {
		return buildPlan{}, issue.NewErrorContext().
			WithOperation("select icon packages").
			WithIssue(issue.ConfigNotFoundId).
			WithSuggestions(
				"Pass --type and --dir to scan a single package",
				"Run 'icondata config init' and add entries to packages",
			).
			Wrap(errors.New("no packages configured")).
			BuildError()
	}

	plan.targets, err = build.TargetsFromConfig(cfg)
	if err != nil {
		return buildPlan{}, err
	}
	return plan, nil
}

// target resolves the command-line package.
func (f *targetFlags) target() (build.Target, error) {
	if f.pkgType == "" {
		return build.Target{}, issue.NewErrorContext().
			WithOperation("select icon package").
			WithResource(f.dir).
			WithIssue(issue.UnknownPackageTypeId).
			WithSuggestion("Pass --type; 'icondata types' lists the families").
			Wrap(errors.New("--dir requires --type")).
			BuildError()
	}

	pt, err := iconpkg.ParsePackageType(f.pkgType)
	if err != nil {
		return build.Target{}, issue.NewErrorContext().
			WithOperation("select icon package").
			WithResource(f.dir).
			WithIssue(issue.UnknownPackageTypeId).
			WithSuggestion("Run 'icondata types' to list the families").
			Wrap(err).
			BuildError()
	}
	pkg, err := iconpkg.NewPackage(pt, f.shortName)
	if err != nil {
		return build.Target{}, err
	}

	size := icon.IconSizeNone
	if f.size != "" {
		size, err = reader.ParseSize(f.size)
		if err != nil {
			return build.Target{}, issue.NewErrorContext().
				WithOperation("select icon package").
				WithResource(f.dir).
				WithIssue(issue.UnrecognizedSizeId).
				Wrap(err).
				BuildError()
		}
	}

	return build.Target{Package: pkg, Path: f.dir, DefaultSize: size}, nil
}

func (p buildPlan) request() BuildRequest {
	return BuildRequest{Targets: p.targets, Concurrency: p.concurrency, Verbose: p.verbose}
}

// printReport writes one line per package to stdout and the diagnostics to
// stderr.
func (a *App) printReport(ctx context.Context, report *build.Report, list bool) {
	for _, pkg := range report.Packages {
		fmt.Fprintf(a.stdout, "%s %s %s %s\n",
			SuccessStyle.Render("✓"),
			TitleStyle.Render(pkg.Target.Package.ShortName),
			fmt.Sprintf("%d icons", len(pkg.Icons)),
			SubtitleStyle.Render(pkg.Target.Path),
		)
		if list {
			for _, ic := range pkg.Icons {
				fmt.Fprintf(a.stdout, "    %s\n", CmdStyle.Render(ic.Name))
			}
		}
	}

	a.Diagnostics.Render(ctx, report.Diagnostics(), a.stderr)

	fmt.Fprintf(a.stdout, "%s %d icons in %d package(s)\n",
		SuccessStyle.Render("Done:"), report.IconCount(), len(report.Packages))
	if n := len(report.Duplicates); n > 0 {
		fmt.Fprintf(a.stdout, "%s %d duplicate feature name(s)\n", WarningStyle.Render("Warning:"), n)
	}
}
