package main

import (
	"context"

	"github.com/desertthunder/guildboard/internal/shared"
	"github.com/urfave/cli/v3"
)

// AuthURL prints the Discord authorization URL and optionally opens it.
func (r *Runner) AuthURL(ctx context.Context, cmd *cli.Command) error {
	discord, err := r.discordClient()
	if err != nil {
		return err
	}

	url := discord.AuthURL("")
	if err := r.writePlain("%s\n", url); err != nil {
		return err
	}

	if cmd.Bool("open") {
		if err := shared.OpenBrowser(url); err != nil {
			r.logger.Warn("failed to open browser", "error", err)
		}
	}
	return nil
}
