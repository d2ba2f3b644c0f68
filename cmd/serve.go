package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/desertthunder/guildboard/internal/server"
	"github.com/desertthunder/guildboard/internal/web"
	"github.com/urfave/cli/v3"
)

// Serve runs the dashboard until interrupted.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	if port := int(cmd.Int("port")); port != 0 {
		r.config.Server.Port = port
	}

	if err := r.config.Validate(); err != nil {
		return err
	}

	discord, err := r.discordClient()
	if err != nil {
		return err
	}

	templates, err := web.New(r.config.Site)
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}

	router := server.NewRouter(server.Options{
		Discord:      discord,
		Renderer:     templates,
		CDN:          r.cdn(),
		CallbackPath: r.config.Server.CallbackPath,
		Logger:       r.logger,
	})

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	r.logger.Info("starting dashboard", "addr", r.config.Server.Addr(), "callback", r.config.Server.CallbackPath)
	return server.NewServer(r.config.Server.Addr(), router, r.logger).Run(ctx)
}
