package cli

import (
	"fmt"

	"github.com/formgate/formgate/internal/config"
	"github.com/formgate/formgate/internal/logging"
	"github.com/formgate/formgate/internal/server"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logConfig := &logging.Config{
			Level:      cfg.LogLevel,
			File:       cfg.LogFile,
			MaxSize:    100,
			MaxBackups: 3,
			MaxAge:     7,
		}
		if err := logging.InitLogger(logConfig); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger := logging.GetLogger()
		defer logger.Close()

		logger.Info("Starting formgate in %s mode", cfg.Environment)

		srv := server.NewServer(cfg)
		if err := srv.Init(); err != nil {
			return fmt.Errorf("failed to initialize server: %w", err)
		}

		return srv.Start()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
