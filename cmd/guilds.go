package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/guildboard/internal/formatter"
	"github.com/desertthunder/guildboard/internal/models"
	"github.com/desertthunder/guildboard/internal/shared"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

// GuildsBot lists every server the bot has joined.
func (r *Runner) GuildsBot(ctx context.Context, cmd *cli.Command) error {
	discord, err := r.discordClient()
	if err != nil {
		return err
	}

	guilds, err := discord.BotGuilds(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", shared.ErrBotGuildFetch, err)
	}

	r.logger.Debug("fetched bot guilds", "count", len(guilds))
	return r.writeGuilds(cmd, &models.GuildExport{Title: "Bot servers", Guilds: guilds})
}

// GuildsCommon lists the servers the token's user shares with the bot.
func (r *Runner) GuildsCommon(ctx context.Context, cmd *cli.Command) error {
	token := cmd.String("token")
	if token == "" {
		return fmt.Errorf("%w: --token", shared.ErrMissingArgument)
	}

	discord, err := r.discordClient()
	if err != nil {
		return err
	}

	user, err := discord.UserProfile(ctx, token)
	if err != nil {
		return fmt.Errorf("%w: %w", shared.ErrProfileFetch, err)
	}

	var userGuilds, botGuilds []models.Guild
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if userGuilds, err = discord.UserGuilds(gctx, token); err != nil {
			return fmt.Errorf("%w: %w", shared.ErrGuildFetch, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if botGuilds, err = discord.BotGuilds(gctx); err != nil {
			return fmt.Errorf("%w: %w", shared.ErrBotGuildFetch, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	common := models.CommonGuilds(userGuilds, botGuilds)
	r.logger.Debug("intersected guilds", "user", len(userGuilds), "bot", len(botGuilds), "common", len(common))

	return r.writeGuilds(cmd, &models.GuildExport{
		Title:  fmt.Sprintf("Servers shared with %s", user.Tag()),
		Guilds: common,
	})
}

// writeGuilds renders export in the --format and writes it to --output or stdout.
func (r *Runner) writeGuilds(cmd *cli.Command, export *models.GuildExport) error {
	format := cmd.String("format")

	if path := cmd.String("output"); path != "" {
		if err := formatter.WriteExport(path, format, export, r.cdn()); err != nil {
			return err
		}
		return r.writePlain("✓ Wrote %d servers to %s\n", len(export.Guilds), path)
	}

	data, err := formatter.Export(format, export, r.cdn())
	if err != nil {
		return err
	}

	if _, err := r.output.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
