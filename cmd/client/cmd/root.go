// cmd/client/cmd/root.go
package cmd

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/exp/slog"

	"postdeck/cmd/client/cmd/types"
	"postdeck/internal/app/client"
	"postdeck/internal/app/client/config"
	"postdeck/internal/utils/logger"

	"github.com/spf13/cobra"
)

var (
	cfg    *config.Config
	log    *slog.Logger
	app    *client.App
	apiURL string
)

var rootCmd = &cobra.Command{
	Use:   "postdeck",
	Short: "Postdeck - terminal client for the company posts board",
	Long: `Postdeck browses and edits posts from the remote board.

Edits are kept locally and overlaid on the remote collection, so your
changes survive even though the demo API does not retain writes. The
collection itself is cached for an hour for offline reading.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if apiURL != "" {
		cfg.APIBaseURL = apiURL
	}

	log = logger.New(cfg.Env)

	app, err = client.New(cfg, log, os.Stdout)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	cmd.SetContext(context.WithValue(cmd.Context(), types.ClientAppKey, app))

	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "override the remote API base URL")
}
