package services

import (
	"context"
	"fmt"

	"github.com/desertthunder/guildboard/internal/models"
	"github.com/desertthunder/guildboard/internal/shared"
	"golang.org/x/sync/errgroup"
)

// LoadDashboard fetches everything the dashboard shows for accessToken.
//
// The profile is fetched first and gates the guild calls. The two guild lists are fetched concurrently;
// a user-guild failure cancels the bot fetch and is reported ahead of any bot-guild error.
func LoadDashboard(ctx context.Context, d Discord, accessToken string, cdn models.CDN) (*models.Dashboard, error) {
	if accessToken == "" {
		return nil, shared.ErrAuthMissing
	}

	user, err := d.UserProfile(ctx, accessToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", shared.ErrProfileFetch, err)
	}

	botCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		userGuilds, botGuilds []models.Guild
		userErr               error
		g                     errgroup.Group
	)

	g.Go(func() error {
		var err error
		if userGuilds, err = d.UserGuilds(ctx, accessToken); err != nil {
			userErr = fmt.Errorf("%w: %w", shared.ErrGuildFetch, err)
			cancel()
			return userErr
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if botGuilds, err = d.BotGuilds(botCtx); err != nil {
			return fmt.Errorf("%w: %w", shared.ErrBotGuildFetch, err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		if userErr != nil {
			return nil, userErr
		}
		return nil, err
	}

	return models.NewDashboard(*user, userGuilds, botGuilds, cdn), nil
}
