package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/guildboard/internal/models"
	"github.com/desertthunder/guildboard/internal/services"
	"github.com/desertthunder/guildboard/internal/shared"
)

// DefaultCallbackPath is where Discord sends the user back after authorization.
const DefaultCallbackPath = "/api/auth/discord/redirect"

// Plain-text bodies for every failure the callback can report.
const (
	msgAuthRequired   = "Authorization required"
	msgInvalidToken   = "Invalid token or token expired"
	msgOAuthFailed    = "Error during OAuth process"
	msgUserGuildsErr  = "Error fetching user guilds"
	msgBotGuildsErr   = "Error fetching bot guilds"
	msgInternalServer = "Internal server error"
	msgNotAllowed     = "Method not allowed"
)

// CallbackHandler completes the OAuth2 authorization code flow and serves the guild dashboard.
// Implements the Handler interface for registration with a Router.
type CallbackHandler struct {
	discord  services.Discord
	renderer Renderer
	cdn      models.CDN
	path     string
	logger   *log.Logger
}

// CallbackOpts contains the collaborators for a [CallbackHandler].
type CallbackOpts struct {
	Discord  services.Discord
	Renderer Renderer
	CDN      models.CDN
	Path     string
	Logger   *log.Logger
}

// NewCallbackHandler creates a callback handler; Path defaults to [DefaultCallbackPath].
func NewCallbackHandler(opts CallbackOpts) *CallbackHandler {
	if opts.Path == "" {
		opts.Path = DefaultCallbackPath
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.CDN.BaseURL == "" {
		opts.CDN = models.NewCDN("")
	}

	return &CallbackHandler{
		discord:  opts.Discord,
		renderer: opts.Renderer,
		cdn:      opts.CDN,
		path:     opts.Path,
		logger:   opts.Logger,
	}
}

// Routes returns the HTTP routes this handler serves.
func (h *CallbackHandler) Routes() []string {
	return []string{h.path}
}

// ServeHTTP handles one callback request.
//
// A session cookie wins over a code: with an access token in hand the dashboard is rendered, otherwise a code is
// exchanged for tokens and the user is redirected to the site root with both session cookies set.
func (h *CallbackHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if accessToken := cookieValue(r, models.AccessTokenCookie); accessToken != "" {
		h.serveDashboard(w, r, accessToken)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		h.fail(w, r, http.StatusUnauthorized, msgAuthRequired, shared.ErrAuthMissing)
		return
	}

	// A code is single-use; HEAD requests from link prefetchers must not spend it.
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		h.fail(w, r, http.StatusMethodNotAllowed, msgNotAllowed, fmt.Errorf("%w: %s with code", shared.ErrInvalidInput, r.Method))
		return
	}

	tokens, err := h.discord.Exchange(r.Context(), code)
	if err != nil {
		h.fail(w, r, http.StatusInternalServerError, msgOAuthFailed, fmt.Errorf("%w: %w", shared.ErrTokenExchange, err))
		return
	}

	setSessionCookies(w, r, tokens)
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *CallbackHandler) serveDashboard(w http.ResponseWriter, r *http.Request, accessToken string) {
	dashboard, err := services.LoadDashboard(r.Context(), h.discord, accessToken, h.cdn)
	if err != nil {
		status, msg := classify(err)
		h.fail(w, r, status, msg, err)
		return
	}

	h.renderDashboard(w, r, dashboard)
}

func (h *CallbackHandler) renderDashboard(w http.ResponseWriter, r *http.Request, dashboard *models.Dashboard) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Dashboard(w, dashboard); err != nil {
		h.fail(w, r, http.StatusInternalServerError, msgInternalServer, err)
	}
}

// fail logs err with the provider's detail and answers with a fixed plain-text body.
func (h *CallbackHandler) fail(w http.ResponseWriter, r *http.Request, status int, msg string, err error) {
	logger := LoggerFrom(r.Context(), h.logger)
	if status >= http.StatusInternalServerError {
		logger.Error(msg, "status", status, "err", err)
	} else {
		logger.Warn(msg, "status", status, "err", err)
	}

	w.Header().Del("Content-Type")
	http.Error(w, msg, status)
}

// classify maps a dashboard loading failure to its response.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, shared.ErrAuthMissing):
		return http.StatusUnauthorized, msgAuthRequired
	case errors.Is(err, shared.ErrProfileFetch):
		return http.StatusUnauthorized, msgInvalidToken
	case errors.Is(err, shared.ErrGuildFetch):
		return http.StatusInternalServerError, msgUserGuildsErr
	case errors.Is(err, shared.ErrBotGuildFetch):
		return http.StatusInternalServerError, msgBotGuildsErr
	default:
		return http.StatusInternalServerError, msgInternalServer
	}
}
