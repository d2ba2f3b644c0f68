// Discord API implementation of [Discord]
//
// Endpoint reference: https://discord.com/developers/docs/resources/user
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/desertthunder/guildboard/internal/models"
	"github.com/desertthunder/guildboard/internal/shared"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

const (
	DefaultAPIURL = "https://discord.com/api/v10"

	// guildPageSize is the largest page the guild list endpoint returns.
	guildPageSize   = 200
	defaultTimeout  = 10 * time.Second
	maxErrorBody    = 4096
	userAgent       = "DiscordBot (https://github.com/desertthunder/guildboard, 0.1.0)"
	defaultRedirect = "http://localhost:3000/api/auth/discord/redirect"
)

var defaultScopes = []string{"identify", "guilds"}

// DiscordService implements the [Discord] interface over Discord's REST API.
type DiscordService struct {
	config     *oauth2.Config
	apiURL     string
	botToken   string
	httpClient *http.Client
	limiter    *rate.Limiter
	pageSize   int
}

// NewDiscordService creates a Discord client from the application's credentials.
//
// A nil client gets a fresh [http.Client] with the configured timeout.
func NewDiscordService(cfg shared.DiscordConfig, client *http.Client) (*DiscordService, error) {
	apiURL := strings.TrimRight(cfg.APIURL, "/")
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	if u, err := url.Parse(apiURL); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: discord api_url %q", shared.ErrInvalidConfig, cfg.APIURL)
	}

	redirectURI := cfg.RedirectURI
	if redirectURI == "" {
		redirectURI = defaultRedirect
	}

	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = defaultScopes
	}

	if client == nil {
		timeout := cfg.Timeout.Duration
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}

	return &DiscordService{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  redirectURI,
			Scopes:       scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:   apiURL + "/oauth2/authorize",
				TokenURL:  apiURL + "/oauth2/token",
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		apiURL:     apiURL,
		botToken:   cfg.BotToken,
		httpClient: client,
		limiter:    rate.NewLimiter(limit, 1),
		pageSize:   guildPageSize,
	}, nil
}

// AuthURL returns the OAuth2 authorization URL for user login.
func (s *DiscordService) AuthURL(state string) string {
	return s.config.AuthCodeURL(state, oauth2.SetAuthURLParam("prompt", "consent"))
}

// Exchange performs the authorization code grant.
func (s *DiscordService) Exchange(ctx context.Context, code string) (*models.Tokens, error) {
	if code == "" {
		return nil, fmt.Errorf("%w: empty authorization code", shared.ErrInvalidInput)
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, s.httpClient)
	token, err := s.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange auth code: %w", err)
	}

	return &models.Tokens{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
	}, nil
}

// UserProfile retrieves the profile of the user the access token was issued to.
func (s *DiscordService) UserProfile(ctx context.Context, accessToken string) (*models.UserProfile, error) {
	var user discordgo.User
	if err := s.doRequest(ctx, bearer(accessToken), "/users/@me", &user); err != nil {
		return nil, err
	}

	return &models.UserProfile{
		ID:            user.ID,
		Username:      user.Username,
		Discriminator: user.Discriminator,
		GlobalName:    user.GlobalName,
		Avatar:        user.Avatar,
	}, nil
}

// UserGuilds retrieves every guild the user belongs to.
func (s *DiscordService) UserGuilds(ctx context.Context, accessToken string) ([]models.Guild, error) {
	return s.guilds(ctx, bearer(accessToken))
}

// BotGuilds retrieves every guild the bot belongs to, authenticating with the bot token rather than a user's.
func (s *DiscordService) BotGuilds(ctx context.Context) ([]models.Guild, error) {
	if s.botToken == "" {
		return nil, fmt.Errorf("%w: bot token not configured", shared.ErrMissingCredentials)
	}
	return s.guilds(ctx, "Bot "+s.botToken)
}

// guilds walks the guild list endpoint page by page until a short page comes back.
func (s *DiscordService) guilds(ctx context.Context, authorization string) ([]models.Guild, error) {
	var all []models.Guild
	after := ""

	for {
		query := url.Values{}
		query.Set("limit", fmt.Sprint(s.pageSize))
		if after != "" {
			query.Set("after", after)
		}

		var page []*discordgo.UserGuild
		if err := s.doRequest(ctx, authorization, "/users/@me/guilds?"+query.Encode(), &page); err != nil {
			return nil, err
		}

		for _, g := range page {
			all = append(all, models.Guild{
				ID:    g.ID,
				Name:  g.Name,
				Icon:  g.Icon,
				Owner: g.Owner,
			})
		}

		if len(page) < s.pageSize {
			break
		}
		after = page[len(page)-1].ID
	}

	if all == nil {
		all = []models.Guild{}
	}
	return all, nil
}

// doRequest performs an authenticated GET against the Discord API and decodes the JSON body into result.
func (s *DiscordService) doRequest(ctx context.Context, authorization, endpoint string, result any) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.apiURL+endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", authorization)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func bearer(token string) string {
	return "Bearer " + token
}
