// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/spf13/pflag"

// commonFlags holds the options shared by every recipe command. Each
// command registers only the subset it accepts.
type commonFlags struct {
	dryRun      bool
	verbose     bool
	packageRoot string
	distDir     string
	platforms   []string
	flavors     []string
	defines     []string
}

func (f *commonFlags) addDryRun(fs *pflag.FlagSet) {
	fs.BoolVarP(&f.dryRun, "dry-run", "n", false, "print the commands instead of running them")
}

func (f *commonFlags) addVerbose(fs *pflag.FlagSet) {
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "print the request table, the commands and the exit status")
}

func (f *commonFlags) addPackageRoot(fs *pflag.FlagSet) {
	fs.StringVarP(&f.packageRoot, "package-root", "r", "", "package checkout to work in (default is the current directory)")
}

func (f *commonFlags) addDistDir(fs *pflag.FlagSet) {
	fs.StringVarP(&f.distDir, "dist-dir", "d", "", "distribution directory")
}

func (f *commonFlags) addPlatforms(fs *pflag.FlagSet) {
	fs.StringArrayVarP(&f.platforms, "platform", "P", nil, "target platform (repeatable, default $DD_OS)")
}

func (f *commonFlags) addFlavors(fs *pflag.FlagSet) {
	fs.StringArrayVarP(&f.flavors, "flavor", "f", nil, "package flavor (repeatable, ^ is the vanilla flavor)")
}

func (f *commonFlags) addDefines(fs *pflag.FlagSet) {
	fs.StringArrayVarP(&f.defines, "define", "D", nil, "recipe define passed to pk (repeatable)")
}

// isVerbose reports whether verbose output is on, from the flag or the
// ui.verbose configuration key.
func (f *commonFlags) isVerbose(app *App) bool {
	return f.verbose || app.settings().UI.Verbose
}
