// SPDX-License-Identifier: MPL-2.0

package build

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/luoxiaozero/icondata/internal/issue"
	"github.com/luoxiaozero/icondata/internal/reader"
	"github.com/luoxiaozero/icondata/pkg/icon"
)

// CodeDuplicateFeatureName is reported when two icons share a feature name.
const CodeDuplicateFeatureName = "duplicate_feature_name"

// ErrDuplicateFeatureName is wrapped by Report.DuplicatesError.
var ErrDuplicateFeatureName = errors.New("duplicate feature name")

type (
	// Option configures a Builder.
	Option func(*Builder)

	// Builder reads a set of targets with bounded concurrency.
	Builder struct {
		concurrency int
		logger      *log.Logger
		readerOpts  []reader.Option
	}

	// PackageResult holds the icons of one target sorted by feature name.
	PackageResult struct {
		Target      Target
		Icons       []icon.SvgIcon
		Diagnostics []reader.Diagnostic
	}

	// Occurrence locates one icon file carrying a duplicated feature name.
	Occurrence struct {
		ShortName string
		Path      string
	}

	// Duplicate is a feature name produced more than once.
	Duplicate struct {
		Name        string
		Occurrences []Occurrence
	}

	// Report is the outcome of a successful Run. Packages keep target order.
	Report struct {
		Packages   []PackageResult
		Duplicates []Duplicate
	}
)

// New creates a Builder. Concurrency defaults to runtime.NumCPU().
func New(opts ...Option) *Builder {
	b := &Builder{
		concurrency: runtime.NumCPU(),
		logger:      log.NewWithOptions(os.Stderr, log.Options{Prefix: "build"}),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// WithConcurrency bounds the number of packages read at once. Values below 1
// are ignored.
func WithConcurrency(n int) Option {
	return func(b *Builder) {
		if n >= 1 {
			b.concurrency = n
		}
	}
}

// WithLogger sets the build logger. Readers log through it with the
// "reader" prefix.
func WithLogger(l *log.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithReaderOptions appends options applied to every package reader.
func WithReaderOptions(opts ...reader.Option) Option {
	return func(b *Builder) {
		b.readerOpts = append(b.readerOpts, opts...)
	}
}

// Run reads every target. The first failing package cancels the others and
// its error is returned as an *issue.ActionableError; no partial report is
// produced.
func (b *Builder) Run(ctx context.Context, targets []Target) (*Report, error) {
	results := make([]PackageResult, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)

	for i, target := range targets {
		g.Go(func() error {
			res, err := b.readTarget(gctx, target)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{Packages: results, Duplicates: FindDuplicates(results)}
	for _, dup := range report.Duplicates {
		b.logger.Warn("duplicate feature name", "name", dup.Name, "count", len(dup.Occurrences))
	}
	return report, nil
}

func (b *Builder) readTarget(ctx context.Context, target Target) (PackageResult, error) {
	start := time.Now()
	logger := b.logger.With("package", target.Package.ShortName)

	opts := make([]reader.Option, 0, len(b.readerOpts)+2)
	opts = append(opts, reader.WithLogger(b.logger.WithPrefix("reader")))
	opts = append(opts, b.readerOpts...)
	if target.DefaultSize.IsSet() {
		opts = append(opts, reader.WithDefaultSize(target.DefaultSize))
	}

	res, err := reader.New(opts...).ReadIconsWithDiagnostics(ctx, target.Package, target.Path)
	if err != nil {
		return PackageResult{}, packageError(target, err)
	}

	slices.SortStableFunc(res.Icons, func(a, b icon.SvgIcon) int {
		return cmp.Compare(a.Name, b.Name)
	})

	logger.Info("read package", "type", target.Package.Type, "icons", len(res.Icons), "took", time.Since(start).Round(time.Millisecond))
	return PackageResult{Target: target, Icons: res.Icons, Diagnostics: res.Diagnostics}, nil
}

// packageError attaches user guidance to a reader failure.
func packageError(target Target, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	ec := issue.NewErrorContext().
		WithOperation(fmt.Sprintf("read icon package %s", target.Package.Type)).
		WithResource(target.Path).
		Wrap(err)

	switch reader.KindOf(err) {
	case reader.KindIO:
		switch {
		case errors.Is(err, fs.ErrNotExist):
			ec.WithIssue(issue.IconsDirNotFoundId).
				WithSuggestion("Check that the package sources are checked out at this path")
		case errors.Is(err, fs.ErrPermission):
			ec.WithIssue(issue.PermissionDeniedId)
		}
	case reader.KindParse:
		ec.WithIssue(issue.SvgParseFailedId).
			WithSuggestion("Fix or remove the malformed svg file and rebuild")
	case reader.KindMissingName:
		ec.WithIssue(issue.MissingIconNameId)
	case reader.KindUnrecognizedSize:
		ec.WithIssue(issue.UnrecognizedSizeId)
	}

	return ec.BuildError()
}

// FindDuplicates returns every feature name emitted more than once across
// results, sorted by name. Occurrences keep package order.
func FindDuplicates(results []PackageResult) []Duplicate {
	seen := make(map[string][]Occurrence)
	for _, res := range results {
		for _, ic := range res.Icons {
			seen[ic.Name] = append(seen[ic.Name], Occurrence{
				ShortName: res.Target.Package.ShortName,
				Path:      ic.Path,
			})
		}
	}

	var dups []Duplicate
	for name, occ := range seen {
		if len(occ) > 1 {
			dups = append(dups, Duplicate{Name: name, Occurrences: occ})
		}
	}
	slices.SortFunc(dups, func(a, b Duplicate) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return dups
}

// Diagnostics returns every package diagnostic plus one per duplicate name.
func (r *Report) Diagnostics() []reader.Diagnostic {
	var out []reader.Diagnostic
	for _, pkg := range r.Packages {
		out = append(out, pkg.Diagnostics...)
	}
	for _, dup := range r.Duplicates {
		out = append(out, reader.Diagnostic{
			Severity: reader.SeverityWarning,
			Code:     CodeDuplicateFeatureName,
			Message:  fmt.Sprintf("feature name %s is produced %d times", dup.Name, len(dup.Occurrences)),
			Path:     dup.Occurrences[0].Path,
		})
	}
	return out
}

// IconCount returns the number of icons across all packages.
func (r *Report) IconCount() int {
	n := 0
	for _, pkg := range r.Packages {
		n += len(pkg.Icons)
	}
	return n
}

// DuplicatesError turns the report's duplicates into an actionable error, or
// nil when every name is unique.
func (r *Report) DuplicatesError() error {
	if len(r.Duplicates) == 0 {
		return nil
	}
	limit := min(len(r.Duplicates), 5)
	names := make([]string, 0, limit)
	for _, dup := range r.Duplicates[:limit] {
		names = append(names, dup.Name)
	}
	return issue.NewErrorContext().
		WithOperation("build unique feature names").
		WithIssue(issue.DuplicateFeatureNameId).
		WithSuggestion("Give each package a distinct short_name").
		Wrap(fmt.Errorf("%w: %d name(s), e.g. %v", ErrDuplicateFeatureName, len(r.Duplicates), names)).
		BuildError()
}
