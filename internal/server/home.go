package server

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/guildboard/internal/models"
	"github.com/desertthunder/guildboard/internal/services"
	"github.com/desertthunder/guildboard/internal/shared"
)

const (
	RootPath   = "/{$}"
	LoginPath  = "/login"
	HealthPath = "/healthz"
)

// Notices shown on the landing page.
const (
	noticeLoggedOut = "You have been logged out."
	noticeExpired   = "Your session has expired. Log in again to continue."
)

// HomeHandler serves the site root: the dashboard for a signed-in visitor, the login page for everyone else.
//
// Unlike the callback, a rejected session here falls back to the login page so the visitor can sign in again.
type HomeHandler struct {
	callback *CallbackHandler
	renderer Renderer
}

// NewHomeHandler creates a [HomeHandler] that shares collaborators with callback.
func NewHomeHandler(callback *CallbackHandler, renderer Renderer) *HomeHandler {
	return &HomeHandler{callback: callback, renderer: renderer}
}

func (h *HomeHandler) Routes() []string {
	return []string{RootPath}
}

func (h *HomeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Has(models.LoggedOutParam) {
		h.landing(w, r, noticeLoggedOut)
		return
	}

	accessToken := cookieValue(r, models.AccessTokenCookie)
	if accessToken == "" {
		h.landing(w, r, "")
		return
	}

	dashboard, err := services.LoadDashboard(r.Context(), h.callback.discord, accessToken, h.callback.cdn)
	switch {
	case errors.Is(err, shared.ErrProfileFetch):
		LoggerFrom(r.Context(), h.callback.logger).Warn("session rejected, showing login", "err", err)
		h.landing(w, r, noticeExpired)
	case err != nil:
		status, msg := classify(err)
		h.callback.fail(w, r, status, msg, err)
	default:
		h.callback.renderDashboard(w, r, dashboard)
	}
}

func (h *HomeHandler) landing(w http.ResponseWriter, r *http.Request, notice string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Landing(w, &models.Landing{LoginURL: LoginPath, Notice: notice}); err != nil {
		h.callback.fail(w, r, http.StatusInternalServerError, msgInternalServer, err)
	}
}

// LoginHandler redirects to Discord's authorization page.
type LoginHandler struct {
	discord services.Discord
}

func NewLoginHandler(discord services.Discord) *LoginHandler {
	return &LoginHandler{discord: discord}
}

func (h *LoginHandler) Routes() []string {
	return []string{LoginPath}
}

func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.discord.AuthURL(""), http.StatusFound)
}

// Options contains everything [NewRouter] wires together.
type Options struct {
	Discord      services.Discord
	Renderer     Renderer
	CDN          models.CDN
	CallbackPath string
	Logger       *log.Logger
}

// NewRouter builds the dashboard's routes behind request logging and panic recovery.
func NewRouter(opts Options) *BasicRouter {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}

	router := NewBasicRouter()
	router.Use(RequestLogger(opts.Logger), Recoverer(opts.Logger))

	callback := NewCallbackHandler(CallbackOpts{
		Discord:  opts.Discord,
		Renderer: opts.Renderer,
		CDN:      opts.CDN,
		Path:     opts.CallbackPath,
		Logger:   opts.Logger,
	})

	router.Handler(http.MethodGet, callback)
	router.Handler(http.MethodGet, NewHomeHandler(callback, opts.Renderer))
	router.Handler(http.MethodGet, NewLoginHandler(opts.Discord))
	router.Handle(http.MethodGet, HealthPath, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	}))

	return router
}
