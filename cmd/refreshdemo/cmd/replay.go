package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-drift/refresh/cmd/refreshdemo/internal/scenario"
)

var replayCmd = &cobra.Command{
	Use:   "replay <scenario.yaml>",
	Short: "Replay a scripted scenario and print the transcript",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := scenario.Load(args[0])
		if err != nil {
			return err
		}
		tr, err := scenario.Run(s)
		if tr != nil {
			fmt.Fprint(cmd.OutOrStdout(), tr.String())
		}
		return err
	},
}
