package cmd

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Version is set via ldflags at build time.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the portfolio version and build details",
	Run: func(cmd *cobra.Command, args []string) {
		info, _ := debug.ReadBuildInfo()
		fmt.Fprintln(cmd.OutOrStdout(), versionString(Version, info))
	},
}

// versionString reports the release version followed by the Go toolchain
// and, when the binary was built from a checkout, the VCS revision.
func versionString(version string, info *debug.BuildInfo) string {
	s := fmt.Sprintf("portfolio %s (%s %s/%s)", version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	if info == nil {
		return s
	}

	var revision, modified string
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			modified = setting.Value
		}
	}
	if revision == "" {
		return s
	}
	if len(revision) > 12 {
		revision = revision[:12]
	}
	if modified == "true" {
		revision += "-dirty"
	}
	return s + " commit " + revision
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
