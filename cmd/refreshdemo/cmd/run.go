package cmd

import (
	"fmt"
	"io"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/go-drift/refresh/cmd/refreshdemo/internal/config"
	"github.com/go-drift/refresh/cmd/refreshdemo/internal/host"
	"github.com/go-drift/refresh/cmd/refreshdemo/internal/screen"
	"github.com/go-drift/refresh/pkg/errors"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the interactive list",
	Long: `Run the interactive list in the terminal.

Keys: p pulls to refresh, r refreshes without pulling, q quits.
Logs go to --log-file so the terminal stays clean.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logFile, err := tea.LogToFile(settings.LogFile, "refreshdemo")
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer logFile.Close()

		prev := errors.SetHandler(&errors.LogHandler{Out: logFile, Verbose: settings.Debug})
		defer errors.SetHandler(prev)

		var logger *log.Logger
		if settings.Debug {
			logger = log.Default()
		} else {
			logger = log.New(io.Discard, "", 0)
		}

		s, err := screen.New(settings, 80, 24, logger)
		if err != nil {
			return err
		}
		defer s.Close()

		switch settings.Backend {
		case config.BackendTview:
			return host.RunTview(s)
		default:
			return host.RunTea(s)
		}
	},
}

func init() {
	runCmd.Flags().StringP("backend", "b", config.BackendTea, "terminal UI backend (tea or tview)")
	runCmd.Flags().Duration("load-delay", 1500*time.Millisecond, "simulated load time")
	runCmd.Flags().String("log-file", "refreshdemo.log", "log file")
	runCmd.Flags().Bool("debug", false, "log transitions and stack traces")
}
