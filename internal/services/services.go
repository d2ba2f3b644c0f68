// package services defines interface Discord for interacting with the identity provider
package services

import (
	"context"
	"fmt"

	"github.com/desertthunder/guildboard/internal/models"
	"github.com/desertthunder/guildboard/internal/shared"
)

// Discord defines the provider calls the dashboard depends on.
type Discord interface {
	// AuthURL returns the authorize URL the user is sent to for login.
	AuthURL(state string) string

	// Exchange trades an authorization code for tokens.
	Exchange(ctx context.Context, code string) (*models.Tokens, error)

	// UserProfile fetches the user the access token belongs to.
	UserProfile(ctx context.Context, accessToken string) (*models.UserProfile, error)

	// UserGuilds lists the guilds the access token's user belongs to.
	UserGuilds(ctx context.Context, accessToken string) ([]models.Guild, error)

	// BotGuilds lists the guilds the configured bot belongs to.
	BotGuilds(ctx context.Context) ([]models.Guild, error)
}

// APIError is a non-2xx answer from the Discord API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("discord API error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("discord API error: status %d: %s", e.StatusCode, e.Body)
}

func (e *APIError) Unwrap() error {
	return shared.ErrAPIRequest
}
