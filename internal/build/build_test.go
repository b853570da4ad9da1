// SPDX-License-Identifier: MPL-2.0

package build

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"

	"github.com/luoxiaozero/icondata/internal/config"
	"github.com/luoxiaozero/icondata/internal/issue"
	"github.com/luoxiaozero/icondata/internal/reader"
	"github.com/luoxiaozero/icondata/internal/testutil"
	"github.com/luoxiaozero/icondata/pkg/icon"
	"github.com/luoxiaozero/icondata/pkg/iconpkg"
)

func writeTree(t *testing.T, files ...string) string {
	t.Helper()

	root := t.TempDir()
	contents := make(map[string]string, len(files))
	for _, rel := range files {
		contents[rel] = testutil.SVG
		if strings.Contains(rel, "broken") {
			contents[rel] = "<svg"
		}
	}
	testutil.WriteFiles(t, root, contents)
	return root
}

func target(t *testing.T, pt iconpkg.PackageType, shortName, path string) Target {
	t.Helper()

	pkg, err := iconpkg.NewPackage(pt, shortName)
	if err != nil {
		t.Fatal(err)
	}
	return Target{Package: pkg, Path: path}
}

func newTestBuilder(opts ...Option) *Builder {
	return New(append([]Option{WithLogger(log.New(io.Discard))}, opts...)...)
}

func names(icons []icon.SvgIcon) []string {
	out := make([]string, len(icons))
	for i, ic := range icons {
		out[i] = ic.Name
	}
	return out
}

func TestRun(t *testing.T) {
	t.Parallel()

	ant := writeTree(t, "outlined/home.svg", "filled/home.svg", "twotone/home.svg")
	feather := writeTree(t, "x.svg", "home.svg")

	report, err := newTestBuilder(WithConcurrency(2)).Run(context.Background(), []Target{
		target(t, iconpkg.AntDesignIcons, "", ant),
		target(t, iconpkg.Feather, "", feather),
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(report.Packages) != 2 {
		t.Fatalf("len(Packages) = %d, want 2", len(report.Packages))
	}
	if got, want := names(report.Packages[0].Icons), []string{"AiHomeFilled", "AiHomeOutlined", "AiHomeTwotone"}; !slices.Equal(got, want) {
		t.Errorf("ant icons = %v, want %v", got, want)
	}
	if got, want := names(report.Packages[1].Icons), []string{"FiHome", "FiX"}; !slices.Equal(got, want) {
		t.Errorf("feather icons = %v, want %v", got, want)
	}
	if report.IconCount() != 5 {
		t.Errorf("IconCount() = %d, want 5", report.IconCount())
	}
	if len(report.Duplicates) != 0 || report.DuplicatesError() != nil {
		t.Errorf("Duplicates = %v, want none", report.Duplicates)
	}
}

func TestRun_DefaultSize(t *testing.T) {
	t.Parallel()

	root := writeTree(t, "home.svg", "16/home.svg")
	tgt := target(t, iconpkg.Other, "X", root)
	tgt.DefaultSize = icon.IconSizeLg

	report, err := newTestBuilder().Run(context.Background(), []Target{tgt})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got, want := names(report.Packages[0].Icons), []string{"XHomeLg", "XHomeSm"}; !slices.Equal(got, want) {
		t.Errorf("icons = %v, want %v", got, want)
	}
}

func TestRun_ReaderDefaultSize(t *testing.T) {
	t.Parallel()

	root := writeTree(t, "home.svg")
	b := newTestBuilder(WithReaderOptions(reader.WithDefaultSize(icon.IconSizeXl)))

	tests := []struct {
		name string
		size icon.IconSize
		want string
	}{
		{name: "target without size keeps reader option", size: icon.IconSizeNone, want: "XHomeXl"},
		{name: "target size replaces reader option", size: icon.IconSizeSm, want: "XHomeSm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tgt := target(t, iconpkg.Other, "X", root)
			tgt.DefaultSize = tt.size
			report, err := b.Run(context.Background(), []Target{tgt})
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if got := names(report.Packages[0].Icons); !slices.Equal(got, []string{tt.want}) {
				t.Errorf("icons = %v, want [%s]", got, tt.want)
			}
		})
	}
}

func TestRun_Duplicates(t *testing.T) {
	t.Parallel()

	root := writeTree(t, "a/home.svg", "b/home.svg", "c/star.svg")

	report, err := newTestBuilder().Run(context.Background(), []Target{target(t, iconpkg.Feather, "", root)})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(report.Duplicates) != 1 {
		t.Fatalf("Duplicates = %v, want one", report.Duplicates)
	}
	dup := report.Duplicates[0]
	if dup.Name != "FiHome" || len(dup.Occurrences) != 2 || dup.Occurrences[0].ShortName != "Fi" {
		t.Fatalf("duplicate = %+v", dup)
	}
	paths := []string{dup.Occurrences[0].Path, dup.Occurrences[1].Path}
	slices.Sort(paths)
	wantPaths := []string{filepath.Join(root, "a", "home.svg"), filepath.Join(root, "b", "home.svg")}
	if !slices.Equal(paths, wantPaths) {
		t.Errorf("occurrence paths = %v, want %v", paths, wantPaths)
	}

	diags := report.Diagnostics()
	if len(diags) != 1 || diags[0].Code != CodeDuplicateFeatureName {
		t.Fatalf("Diagnostics() = %+v", diags)
	}
	if !slices.Contains(wantPaths, diags[0].Path) {
		t.Errorf("diagnostic path = %q, want one of %v", diags[0].Path, wantPaths)
	}

	err = report.DuplicatesError()
	if !errors.Is(err, ErrDuplicateFeatureName) {
		t.Fatalf("DuplicatesError() = %v, want ErrDuplicateFeatureName", err)
	}
	var ae *issue.ActionableError
	if !errors.As(err, &ae) || ae.IssueId != issue.DuplicateFeatureNameId {
		t.Errorf("DuplicatesError() = %#v, want DuplicateFeatureNameId", err)
	}
}

func TestFindDuplicates_AcrossPackages(t *testing.T) {
	t.Parallel()

	results := []PackageResult{
		{Target: target(t, iconpkg.Other, "A", "a"), Icons: []icon.SvgIcon{{Name: "Zed"}, {Name: "Same"}}},
		{Target: target(t, iconpkg.Other, "B", "b"), Icons: []icon.SvgIcon{{Name: "Same"}, {Name: "Alpha"}}},
		{Target: target(t, iconpkg.Other, "C", "c"), Icons: []icon.SvgIcon{{Name: "Alpha"}}},
	}

	dups := FindDuplicates(results)
	if len(dups) != 2 || dups[0].Name != "Alpha" || dups[1].Name != "Same" {
		t.Fatalf("FindDuplicates() = %+v", dups)
	}
	if got := dups[1].Occurrences; got[0].ShortName != "A" || got[1].ShortName != "B" {
		t.Errorf("occurrences = %+v, want package order", got)
	}
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    func(t *testing.T) string
		issueId issue.Id
		is      error
	}{
		{
			name:    "missing directory",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "missing") },
			issueId: issue.IconsDirNotFoundId,
			is:      fs.ErrNotExist,
		},
		{
			name:    "broken svg",
			path:    func(t *testing.T) string { return writeTree(t, "ok.svg", "broken.svg") },
			issueId: issue.SvgParseFailedId,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			good := writeTree(t, "home.svg")
			report, err := newTestBuilder(WithConcurrency(1)).Run(context.Background(), []Target{
				target(t, iconpkg.Feather, "", good),
				target(t, iconpkg.Lucide, "", tt.path(t)),
			})
			if err == nil {
				t.Fatal("Run() error = nil, want error")
			}
			if report != nil {
				t.Error("Run() returned a partial report")
			}

			var ae *issue.ActionableError
			if !errors.As(err, &ae) {
				t.Fatalf("error %T is not an ActionableError", err)
			}
			if ae.IssueId != tt.issueId {
				t.Errorf("IssueId = %d, want %d", ae.IssueId, tt.issueId)
			}
			if !strings.Contains(ae.Operation, "Lucide") {
				t.Errorf("Operation = %q, want package type", ae.Operation)
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("error %v is not %v", err, tt.is)
			}
		})
	}
}

func TestRun_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestBuilder().Run(ctx, []Target{target(t, iconpkg.Feather, "", writeTree(t, "a.svg"))})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() error = %v, want context.Canceled", err)
	}
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		t.Error("cancellation should not be wrapped as an ActionableError")
	}
}

func TestRun_NoTargets(t *testing.T) {
	t.Parallel()

	report, err := newTestBuilder().Run(context.Background(), nil)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(report.Packages) != 0 || report.IconCount() != 0 {
		t.Errorf("report = %+v, want empty", report)
	}
}

func TestWriteManifestFile(t *testing.T) {
	t.Parallel()

	report, err := newTestBuilder().Run(context.Background(), []Target{
		target(t, iconpkg.Lucide, "", writeTree(t, "b.svg", "a.svg")),
		target(t, iconpkg.Feather, "", writeTree(t, "c.svg")),
	})
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "icons.toml")
	if err := WriteManifestFile(path, report); err != nil {
		t.Fatalf("WriteManifestFile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		t.Fatalf("manifest is not valid TOML: %v\n%s", err, data)
	}

	if len(m.Packages) != 2 || m.Packages[0].ShortName != "Fi" || m.Packages[1].ShortName != "Lu" {
		t.Fatalf("packages = %+v, want Fi then Lu", m.Packages)
	}
	if got, want := m.Packages[1].Icons, []string{"LuA", "LuB"}; !slices.Equal(got, want) {
		t.Errorf("Lu icons = %v, want %v", got, want)
	}
	if m.Packages[1].Type != string(iconpkg.Lucide) {
		t.Errorf("type = %q", m.Packages[1].Type)
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("temporary files left behind: %v", entries)
	}
}

func TestWriteManifestFile_MissingDir(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "icons.toml")
	err := WriteManifestFile(path, &Report{})
	var ae *issue.ActionableError
	if !errors.As(err, &ae) || ae.IssueId != issue.ManifestWriteFailedId {
		t.Fatalf("WriteManifestFile() = %v, want ManifestWriteFailedId", err)
	}
}

func TestTargetsFromConfig(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Packages = []config.PackageEntry{
		{Type: iconpkg.BoxIcons, Path: "box"},
		{Type: iconpkg.Other, ShortName: "Mine", Path: "mine", DefaultSize: "20"},
	}

	targets, err := TargetsFromConfig(cfg)
	if err != nil {
		t.Fatalf("TargetsFromConfig() error = %v", err)
	}
	if targets[0].Package.ShortName != "Bi" || targets[0].DefaultSize != icon.IconSizeNone {
		t.Errorf("targets[0] = %+v", targets[0])
	}
	if targets[1].Package.ShortName != "Mine" || targets[1].DefaultSize != icon.IconSizeMd {
		t.Errorf("targets[1] = %+v", targets[1])
	}

	cfg.Packages = []config.PackageEntry{{Type: "Bogus", Path: "x"}}
	if _, err := TargetsFromConfig(cfg); !errors.Is(err, iconpkg.ErrInvalidPackageType) {
		t.Errorf("TargetsFromConfig(bogus) = %v, want ErrInvalidPackageType", err)
	}
}
