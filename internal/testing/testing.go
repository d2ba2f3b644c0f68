// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/desertthunder/guildboard/internal/models"
)

// MockDiscord is a test double for [services.Discord] backed by canned values.
type MockDiscord struct {
	Tokens     *models.Tokens
	User       *models.UserProfile
	UserGuilds []models.Guild
	BotGuilds  []models.Guild

	ExchangeErr  error
	ProfileErr   error
	UserGuildErr error
	BotGuildErr  error
}

func (m *MockDiscord) AuthURL(state string) string {
	return "https://discord.test/oauth2/authorize?state=" + state
}

func (m *MockDiscord) Exchange(ctx context.Context, code string) (*models.Tokens, error) {
	return m.Tokens, m.ExchangeErr
}

func (m *MockDiscord) UserProfile(ctx context.Context, accessToken string) (*models.UserProfile, error) {
	return m.User, m.ProfileErr
}

func (m *MockDiscord) UserGuilds(ctx context.Context, accessToken string) ([]models.Guild, error) {
	return m.UserGuilds, m.UserGuildErr
}

func (m *MockDiscord) BotGuilds(ctx context.Context) ([]models.Guild, error) {
	return m.BotGuilds, m.BotGuildErr
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

var _ io.ReadCloser = (*FCloser)(nil)
