// Package cmd implements the refreshdemo commands.
//
// The root command loads settings (defaults, --config file, REFRESHDEMO_*
// environment, flags) once before any subcommand runs.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/go-drift/refresh/cmd/refreshdemo/internal/config"
)

// Version is the demo version, set at build time.
var Version = "v0.1.0"

var (
	cfgFile  string
	v        *viper.Viper
	settings *config.Settings
)

var rootCmd = &cobra.Command{
	Use:   "refreshdemo",
	Short: "Pull-to-refresh control demo",
	Long: `refreshdemo shows the pull-to-refresh control on a terminal list.

Drag the list down with the mouse (or press p) past the header to refresh;
press r to refresh without pulling.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		v, err = config.New(cfgFile)
		if err != nil {
			return err
		}
		bindFlags(cmd)
		settings, err = config.Load(v)
		return err
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

// bindFlags binds the flags cmd defines to their settings keys.
func bindFlags(cmd *cobra.Command) {
	for flag, key := range flagKeys {
		if f := cmd.Flags().Lookup(flag); f != nil {
			_ = v.BindPFlag(key, f)
		}
	}
}

var flagKeys = map[string]string{
	"backend":         "backend",
	"theme":           "refresh.theme",
	"content-view":    "refresh.content_view",
	"expanded-height": "refresh.expanded_height",
	"load-delay":      "load_delay",
	"log-file":        "log_file",
	"debug":           "debug",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "settings file (YAML)")
	rootCmd.PersistentFlags().String("theme", "dark", "header theme (dark or light)")
	rootCmd.PersistentFlags().String("content-view", "default", "header view (default or simple)")
	rootCmd.PersistentFlags().Float64("expanded-height", 64, "header height in offset units")

	rootCmd.AddCommand(runCmd, replayCmd, snapshotCmd, configCmd, versionCmd)
}
