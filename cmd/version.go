package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
	"golang.org/x/mod/module"
	"golang.org/x/mod/semver"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		v := resolvedVersion()
		if !isRelease(v) {
			fmt.Fprintln(cmd.OutOrStdout(), "masteryforge", v, "(development build)")
			return
		}
		fmt.Fprintln(cmd.OutOrStdout(), "masteryforge", semver.Canonical(v))
	},
}

// resolvedVersion falls back to the module version recorded by
// `go install` when no -ldflags value was given.
func resolvedVersion() string {
	if version != "(devel)" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return version
}

// isRelease reports whether v is a tagged release rather than a local or
// pseudo-version build.
func isRelease(v string) bool {
	return semver.IsValid(v) && !module.IsPseudoVersion(v)
}
