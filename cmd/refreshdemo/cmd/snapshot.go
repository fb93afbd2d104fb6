package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-drift/refresh/cmd/refreshdemo/internal/snapshot"
	"github.com/go-drift/refresh/pkg/refresh"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Write PNG renders of every content view in every state",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		width, _ := cmd.Flags().GetInt("width")

		theme, err := refresh.ThemeByName(settings.Refresh.Theme)
		if err != nil {
			return err
		}
		paths, err := snapshot.Write(snapshot.Options{
			Dir:           out,
			Theme:         theme,
			Width:         width,
			Height:        int(settings.Refresh.ExpandedHeight),
			LastUpdatedAt: time.Now(),
		})
		for _, p := range paths {
			fmt.Fprintln(cmd.OutOrStdout(), p)
		}
		return err
	},
}

func init() {
	snapshotCmd.Flags().StringP("out", "o", "snapshots", "output directory")
	snapshotCmd.Flags().Int("width", snapshot.DefaultWidth, "image width in pixels")
}
