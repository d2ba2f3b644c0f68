package testing

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"testing"

	"github.com/desertthunder/guildboard/internal/models"
)

// Call keys recorded by [FakeDiscord].
const (
	CallToken      = "token"
	CallProfile    = "profile"
	CallUserGuilds = "user_guilds"
	CallBotGuilds  = "bot_guilds"
)

// FakeDiscord is an in-process stand-in for the Discord REST API.
//
// It accepts exactly one authorization code, one user access token and one bot token,
// and counts every call by kind so tests can assert which requests were made.
type FakeDiscord struct {
	*httptest.Server

	ClientID     string
	ClientSecret string
	Code         string
	AccessToken  string
	RefreshToken string
	BotToken     string

	User       models.UserProfile
	UserGuilds []models.Guild
	BotGuilds  []models.Guild

	FailUserGuilds bool
	FailBotGuilds  bool

	mu        sync.Mutex
	calls     map[string]int
	tokenForm url.Values
}

// NewFakeDiscord starts a fake API with default credentials and no guilds. The server is closed on test cleanup.
func NewFakeDiscord(t *testing.T) *FakeDiscord {
	t.Helper()

	f := &FakeDiscord{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		Code:         "valid-code",
		AccessToken:  "user-access-token",
		RefreshToken: "user-refresh-token",
		BotToken:     "bot-token",
		User:         models.UserProfile{ID: "1001", Username: "pilot", Discriminator: "0001"},
		calls:        map[string]int{},
	}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.Server.Close)
	return f
}

// Calls returns how many requests of the given kind were received.
func (f *FakeDiscord) Calls(kind string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[kind]
}

// TotalCalls returns the number of requests received of any kind.
func (f *FakeDiscord) TotalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.calls {
		total += n
	}
	return total
}

// TokenForm returns the form body of the last token request.
func (f *FakeDiscord) TokenForm() url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tokenForm
}

func (f *FakeDiscord) record(kind string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[kind]++
}

func (f *FakeDiscord) serve(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/oauth2/token":
		f.serveToken(w, r)
	case r.Method == http.MethodGet && r.URL.Path == "/users/@me":
		f.record(CallProfile)
		if r.Header.Get("Authorization") != "Bearer "+f.AccessToken {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "401: Unauthorized", "code": 0})
			return
		}
		writeJSON(w, http.StatusOK, f.User)
	case r.Method == http.MethodGet && r.URL.Path == "/users/@me/guilds":
		f.serveGuilds(w, r)
	default:
		writeJSON(w, http.StatusNotFound, map[string]any{"message": "404: Not Found", "code": 0})
	}
}

func (f *FakeDiscord) serveToken(w http.ResponseWriter, r *http.Request) {
	f.record(CallToken)
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_request"})
		return
	}

	f.mu.Lock()
	f.tokenForm = r.PostForm
	f.mu.Unlock()

	if r.PostForm.Get("grant_type") != "authorization_code" ||
		r.PostForm.Get("client_id") != f.ClientID ||
		r.PostForm.Get("client_secret") != f.ClientSecret {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid_client"})
		return
	}
	if r.PostForm.Get("code") != f.Code {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":             "invalid_grant",
			"error_description": `Invalid "code" in request.`,
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"access_token":  f.AccessToken,
		"token_type":    "Bearer",
		"expires_in":    604800,
		"refresh_token": f.RefreshToken,
		"scope":         "identify guilds",
	})
}

func (f *FakeDiscord) serveGuilds(w http.ResponseWriter, r *http.Request) {
	var (
		list []models.Guild
		fail bool
	)

	switch r.Header.Get("Authorization") {
	case "Bearer " + f.AccessToken:
		f.record(CallUserGuilds)
		list, fail = f.UserGuilds, f.FailUserGuilds
	case "Bot " + f.BotToken:
		f.record(CallBotGuilds)
		list, fail = f.BotGuilds, f.FailBotGuilds
	default:
		writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "401: Unauthorized", "code": 0})
		return
	}

	if fail {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"message": "500: Internal Server Error", "code": 0})
		return
	}

	writeJSON(w, http.StatusOK, paginate(list, r.URL.Query()))
}

// paginate applies Discord's limit/after query semantics to list.
func paginate(list []models.Guild, q url.Values) []models.Guild {
	start := 0
	if after := q.Get("after"); after != "" {
		for i, g := range list {
			if g.ID == after {
				start = i + 1
				break
			}
		}
	}

	limit := 200
	if n, err := strconv.Atoi(q.Get("limit")); err == nil && n > 0 {
		limit = n
	}

	end := min(start+limit, len(list))
	if start >= end {
		return []models.Guild{}
	}
	return list[start:end]
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Guilds builds a guild fixture per ID, named "Guild <id>".
func Guilds(ids ...string) []models.Guild {
	out := make([]models.Guild, len(ids))
	for i, id := range ids {
		out[i] = models.Guild{ID: id, Name: "Guild " + id}
	}
	return out
}
