package cli

import (
	"github.com/spf13/cobra"

	"github.com/vastuhome/layoutengine/internal/config"
	"github.com/vastuhome/layoutengine/internal/server"
)

// newServeCmd creates the serve command, which runs the HTTP service
// until interrupted.
func newServeCmd() *cobra.Command {
	var configPath string
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP optimization service",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := loggerFromContext(cmd.Context())

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Server.Port = port
			}

			app := server.New(cfg, log)
			log.Info("starting layout engine", "port", cfg.Server.Port, "env", cfg.Server.Environment)
			return app.Listen(":" + cfg.Server.Port)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to TOML config file")
	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides config)")
	return cmd
}
