// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

// Id identifies an entry in the issue catalog.
type Id int

const (
	ManifestNotFoundId Id = iota + 1
	EnvNotSetId
	AmbiguousScopeId
	ShowNotSetId
	AmbiguousVcsId
	UnknownVcsId
	InvalidValueId
	InvalidRecipeNameId
	ExecutionFailedId
	CommandNotFoundId
	ShellNotFoundId
	ConfigLoadFailedId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // pk documentation pages
	extLinks []HttpLink  // external links that might be useful for the user
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

// Render renders the issue as terminal markdown using the glamour style at
// stylePath ("" selects the default style).
func (i *Issue) Render(stylePath string) (string, error) {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		md.WriteString("\n\n## See also\n")
		for _, link := range i.docLinks {
			md.WriteString("\n- <" + string(link) + ">")
		}
		for _, link := range i.extLinks {
			md.WriteString("\n- <" + string(link) + ">")
		}
	}
	return render(md.String(), stylePath)
}

var (
	render = glamour.Render

	manifestNotFoundIssue = &Issue{
		id: ManifestNotFoundId,
		mdMsg: `
# No package manifest found!

pk-make compiles commands for a package checkout and could not find a
package manifest in the package root. Parent directories are not searched.

## Looked for (in order):
1. manifest.yaml
2. pk.yaml
3. manifest/manifest

## Things you can try:
- Change into the package checkout and retry:
~~~
$ cd /path/to/package
$ pk-make install --dry-run
~~~

- Or point at the checkout explicitly:
~~~
$ pk-make install --package-root /path/to/package --dry-run
~~~`,
	}

	envNotSetIssue = &Issue{
		id: EnvNotSetId,
		mdMsg: `
# Build platform not set!

The ` + "`DD_OS`" + ` environment variable names the host platform and is
required for every command, even when ` + "`--platform`" + ` selects the targets.

## Things you can try:
- Export it for the current shell:
~~~
$ export DD_OS=cent7_64
~~~`,
	}

	ambiguousScopeIssue = &Issue{
		id: AmbiguousScopeId,
		mdMsg: `
# Ambiguous install scope!

` + "`--level`" + ` cannot be combined with ` + "`--context`" + ` or ` + "`--show`" + `.
The level is derived from the context and show when those are given.

## Things you can try:
- Use only ` + "`--level=facility`" + `, ` + "`--level=user`" + ` or ` + "`--level=<show>`" + `
- Or use ` + "`--context`" + ` together with ` + "`--show`" + ``,
	}

	showNotSetIssue = &Issue{
		id: ShowNotSetId,
		mdMsg: `
# No show selected!

The shared context installs into a show, but neither ` + "`--show`" + ` nor the
` + "`DD_SHOW`" + ` environment variable names one.

## Things you can try:
- Pass the show explicitly:
~~~
$ pk-make install --context=shared --show=dev01
~~~

- Or set ` + "`DD_SHOW`" + ` for the current shell.`,
	}

	ambiguousVcsIssue = &Issue{
		id: AmbiguousVcsId,
		mdMsg: `
# Both git and svn metadata found!

The package checkout contains both ` + "`.git`" + ` and ` + "`.svn`" + `, so the tag
command for a facility install cannot be chosen automatically.

## Things you can try:
- Choose one explicitly:
~~~
$ pk-make install --level=facility --vcs=git
~~~`,
	}

	unknownVcsIssue = &Issue{
		id: UnknownVcsId,
		mdMsg: `
# No version control detected!

A facility install tags the release, but the package checkout has neither
` + "`.git`" + ` nor ` + "`.svn`" + ` metadata and no ` + "`--vcs`" + ` was given.

## Things you can try:
- Run from a version controlled checkout
- Pass ` + "`--vcs=git`" + ` or ` + "`--vcs=svn`" + ``,
	}

	invalidValueIssue = &Issue{
		id: InvalidValueId,
		mdMsg: `
# Invalid option value!

One of the values passed on the command line is not recognised.

## Accepted values:
- Platforms: ` + "`win7_64`" + `, ` + "`win10_64`" + `, ` + "`cent6_64`" + `, ` + "`cent7_64`" + `, ` + "`cent8_64`" + `
- Flavors: ` + "`^`" + ` (vanilla) or a name made of letters, digits, ` + "`_`" + ` and ` + "`.`" + `
- Contexts: ` + "`facility`" + `, ` + "`shared`" + `, ` + "`user`" + `
- Sites: ` + "`local`" + `, ` + "`all`" + ` or a site name such as ` + "`portland`" + `
- Overrides: ` + "`name=version`" + ``,
	}

	invalidRecipeNameIssue = &Issue{
		id: InvalidRecipeNameId,
		mdMsg: `
# Invalid recipe name!

Recipe names must be non-empty and contain no whitespace.

## Things you can try:
~~~
$ pk-make run my_recipe -- --extra-arg
~~~`,
	}

	executionFailedIssue = &Issue{
		id: ExecutionFailedId,
		mdMsg: `
# Command plan failed!

One of the compiled commands exited with a non-zero status.

## Things you can try:
- Inspect the commands without running them:
~~~
$ pk-make <target> --dry-run
~~~

- Re-run with ` + "`--verbose`" + ` for more output from pk`,
	}

	commandNotFoundIssue = &Issue{
		id: CommandNotFoundId,
		mdMsg: `
# pk not found!

The compiled plan calls ` + "`pk`" + `, which could not be found on your PATH.

## Things you can try:
- Check the package tool is installed and on your PATH:
~~~
$ which pk
~~~`,
	}

	shellNotFoundIssue = &Issue{
		id: ShellNotFoundId,
		mdMsg: `
# Shell not found!

The native runtime could not find a shell to run the plan with.

## Things you can try:
- Set the shell in your configuration:
~~~yaml
shell: /bin/bash
~~~

- Use the built-in interpreter instead:
~~~yaml
runtime: virtual
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

The pk-make configuration file exists but could not be read or validated.

## Things you can try:
- Print the effective configuration:
~~~
$ pk-make config show
~~~

- Recreate a default configuration:
~~~
$ pk-make config init --force
~~~`,
	}

	issues = map[Id]*Issue{
		manifestNotFoundIssue.Id():  manifestNotFoundIssue,
		envNotSetIssue.Id():         envNotSetIssue,
		ambiguousScopeIssue.Id():    ambiguousScopeIssue,
		showNotSetIssue.Id():        showNotSetIssue,
		ambiguousVcsIssue.Id():      ambiguousVcsIssue,
		unknownVcsIssue.Id():        unknownVcsIssue,
		invalidValueIssue.Id():      invalidValueIssue,
		invalidRecipeNameIssue.Id(): invalidRecipeNameIssue,
		executionFailedIssue.Id():   executionFailedIssue,
		commandNotFoundIssue.Id():   commandNotFoundIssue,
		shellNotFoundIssue.Id():     shellNotFoundIssue,
		configLoadFailedIssue.Id():  configLoadFailedIssue,
	}
)

// Values returns every catalog entry ordered by Id.
func Values() []*Issue {
	values := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		values = append(values, i)
	}
	slices.SortFunc(values, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return values
}

func Get(id Id) *Issue {
	return issues[id]
}
