// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

type Id int

const (
	ConfigLoadFailedId Id = iota + 1
	ConfigNotFoundId
	IconsDirNotFoundId
	UnknownPackageTypeId
	UnrecognizedSizeId
	SvgParseFailedId
	MissingIconNameId
	DuplicateFeatureNameId
	ManifestWriteFailedId
	WatchFailedId
	PermissionDeniedId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // must never be empty
	extLinks []HttpLink
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Markdown returns the full markdown body, including the "See also" links.
func (i *Issue) Markdown() string {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		md.WriteString("\n\n## See also:\n")
		for _, link := range i.docLinks {
			md.WriteString("- <" + string(link) + ">\n")
		}
		for _, link := range i.extLinks {
			md.WriteString("- <" + string(link) + ">\n")
		}
	}
	return md.String()
}

func (i *Issue) Render(stylePath string) (string, error) {
	return render(i.Markdown(), stylePath)
}

const docsBase = "https://github.com/luoxiaozero/icondata/blob/main/docs/"

var (
	render = glamour.Render

	configLoadFailedIssue = &Issue{
		id:       ConfigLoadFailedId,
		docLinks: []HttpLink{docsBase + "configuration.md"},
		mdMsg: `
# Failed to load configuration!

The configuration file could not be read or does not match the schema.

## Things you can try:
- Check the error message above for the offending field and line
- Print the effective configuration:
~~~
$ icondata config show
~~~

- Regenerate a default file and start over:
~~~
$ icondata config init --force
~~~

## Example configuration:
~~~cue
packages: [
  {type: "AntDesignIcons", path: "./packages/ant-design-icons/packages/icons-svg/svg"},
  {type: "BoxIcons", short_name: "Bi", path: "./packages/boxicons/svg"},
]
concurrency: 4
output: manifest: "icons.toml"
~~~`,
	}

	configNotFoundIssue = &Issue{
		id:       ConfigNotFoundId,
		docLinks: []HttpLink{docsBase + "configuration.md"},
		mdMsg: `
# No configuration found!

No packages were given on the command line and no configuration file lists any.

## Things you can try:
- Create a configuration file in the default location:
~~~
$ icondata config init
~~~

- Or scan a single package directly:
~~~
$ icondata scan --type AntDesignIcons --dir ./svg
~~~`,
	}

	iconsDirNotFoundIssue = &Issue{
		id:       IconsDirNotFoundId,
		docLinks: []HttpLink{docsBase + "packages.md"},
		mdMsg: `
# Icon package directory not found!

The icons path configured for a package does not exist or is not a directory.

## Things you can try:
- Check that the package sources have been downloaded
- Verify the ` + "`path`" + ` of the package in your configuration
- Paths are resolved relative to the working directory`,
	}

	unknownPackageTypeIssue = &Issue{
		id:       UnknownPackageTypeId,
		docLinks: []HttpLink{docsBase + "packages.md"},
		mdMsg: `
# Unknown package type!

The package type is not one of the supported icon families.

## Things you can try:
- List the supported package types:
~~~
$ icondata types
~~~

- Use ` + "`Other`" + ` for packages that need no naming rule`,
	}

	unrecognizedSizeIssue = &Issue{
		id:       UnrecognizedSizeId,
		docLinks: []HttpLink{docsBase + "packages.md"},
		mdMsg: `
# Unrecognized icon size!

Sizes are given as the pixel numeral used by icon packages.

## Accepted values:
- ` + "`12`" + ` (Xs), ` + "`16`" + ` (Sm), ` + "`20`" + ` (Md), ` + "`24`" + ` (Lg), ` + "`48`" + ` (Xl), ` + "`96`" + ` (Xxl)`,
	}

	svgParseFailedIssue = &Issue{
		id:       SvgParseFailedId,
		docLinks: []HttpLink{docsBase + "packages.md"},
		extLinks: []HttpLink{"https://www.w3.org/TR/SVG2/struct.html#SVGElement"},
		mdMsg: `
# Failed to parse an SVG file!

An icon file could not be parsed; the whole package build was aborted.

## Things you can try:
- Open the file named above and check that it is well-formed XML
- Check that the document root is an ` + "`<svg>`" + ` element
- Re-download the package sources if the file is truncated`,
	}

	missingIconNameIssue = &Issue{
		id:       MissingIconNameId,
		docLinks: []HttpLink{docsBase + "packages.md"},
		mdMsg: `
# Icon file has no name!

A file path given to the build has no usable file name.

## Things you can try:
- Pass the path of an ` + "`.svg`" + ` file, not a directory`,
	}

	duplicateFeatureNameIssue = &Issue{
		id:       DuplicateFeatureNameId,
		docLinks: []HttpLink{docsBase + "packages.md"},
		mdMsg: `
# Duplicate feature names!

Two icons resolved to the same feature name, so one would shadow the other.

## Things you can try:
- Give each package a distinct ` + "`short_name`" + `
- Check that a package directory was not configured twice
- Check the package type; a wrong type applies the wrong naming rule`,
	}

	manifestWriteFailedIssue = &Issue{
		id:       ManifestWriteFailedId,
		docLinks: []HttpLink{docsBase + "configuration.md"},
		mdMsg: `
# Failed to write the manifest!

## Things you can try:
- Check that the parent directory of ` + "`output.manifest`" + ` exists
- Check that you can write to it`,
	}

	watchFailedIssue = &Issue{
		id:       WatchFailedId,
		docLinks: []HttpLink{docsBase + "watch.md"},
		extLinks: []HttpLink{"https://github.com/fsnotify/fsnotify#platform-specific-notes"},
		mdMsg: `
# Watch mode stopped!

The filesystem watcher could not be started or failed while running.

## Things you can try:
- On Linux, raise the inotify watch limit:
~~~
$ sudo sysctl fs.inotify.max_user_watches=524288
~~~

- Narrow the watched paths with ` + "`watch.ignore`" + ` patterns`,
	}

	permissionDeniedIssue = &Issue{
		id:       PermissionDeniedId,
		docLinks: []HttpLink{docsBase + "packages.md"},
		mdMsg: `
# Permission denied!

You don't have permission to read an icon package or write an output file.

## Things you can try:
- Check file and directory permissions
- Run icondata from a directory you own`,
	}

	issues = map[Id]*Issue{
		configLoadFailedIssue.Id():     configLoadFailedIssue,
		configNotFoundIssue.Id():       configNotFoundIssue,
		iconsDirNotFoundIssue.Id():     iconsDirNotFoundIssue,
		unknownPackageTypeIssue.Id():   unknownPackageTypeIssue,
		unrecognizedSizeIssue.Id():     unrecognizedSizeIssue,
		svgParseFailedIssue.Id():       svgParseFailedIssue,
		missingIconNameIssue.Id():      missingIconNameIssue,
		duplicateFeatureNameIssue.Id(): duplicateFeatureNameIssue,
		manifestWriteFailedIssue.Id():  manifestWriteFailedIssue,
		watchFailedIssue.Id():          watchFailedIssue,
		permissionDeniedIssue.Id():     permissionDeniedIssue,
	}
)

// Values returns every catalog entry ordered by Id.
func Values() []*Issue {
	ids := make([]Id, 0, len(issues))
	for id := range issues {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	out := make([]*Issue, 0, len(ids))
	for _, id := range ids {
		out = append(out, issues[id])
	}
	return out
}

func Get(id Id) *Issue {
	return issues[id]
}
