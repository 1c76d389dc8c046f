package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/harlowe/docket/internal/config"
	"github.com/harlowe/docket/internal/db"
	"github.com/harlowe/docket/internal/logger"
	"github.com/harlowe/docket/internal/web"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Server.Port = port
			}

			log, err := logger.New(cfg.Log.Mode)
			if err != nil {
				return err
			}
			defer log.Sync()

			conn, err := db.Connect(cfg.Database)
			if err != nil {
				return err
			}
			if err := db.AutoMigrate(conn); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return web.Start(ctx, web.StartOpts{
				DB:   conn,
				Port: cfg.Server.Port,
				Log:  log,
			})
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "override the configured port")
	return cmd
}
