package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Long: `Print the version. With --require, fail unless this build is at
least the given semantic version.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "refreshdemo %s\n", Version)
		required, _ := cmd.Flags().GetString("require")
		return checkVersion(Version, required)
	},
}

// checkVersion returns an error unless have >= want. An empty want always
// passes.
func checkVersion(have, want string) error {
	if want == "" {
		return nil
	}
	if !semver.IsValid(want) {
		return fmt.Errorf("invalid required version %q (want vMAJOR.MINOR.PATCH)", want)
	}
	if !semver.IsValid(have) {
		return fmt.Errorf("build version %q is not a semantic version", have)
	}
	if semver.Compare(have, want) < 0 {
		return fmt.Errorf("refreshdemo %s is older than required %s", have, want)
	}
	return nil
}

func init() {
	versionCmd.Flags().String("require", "", "minimum required version, e.g. v0.1.0")
}
