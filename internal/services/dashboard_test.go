package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/desertthunder/guildboard/internal/models"
	"github.com/desertthunder/guildboard/internal/shared"
	tu "github.com/desertthunder/guildboard/internal/testing"
)

func TestLoadDashboard(t *testing.T) {
	cdn := models.NewCDN("")

	t.Run("intersects user and bot guilds", func(t *testing.T) {
		fake := tu.NewFakeDiscord(t)
		fake.UserGuilds = tu.Guilds("1", "2", "3")
		fake.BotGuilds = tu.Guilds("2", "4")
		srv := newTestService(t, fake)

		d, err := LoadDashboard(context.Background(), srv, fake.AccessToken, cdn)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(d.Guilds) != 1 || d.Guilds[0].ID != "2" {
			t.Errorf("expected only guild 2, got %+v", d.Guilds)
		}
		if d.User.Username != fake.User.Username {
			t.Errorf("unexpected user %+v", d.User)
		}
	})

	t.Run("missing token", func(t *testing.T) {
		mock := &tu.MockDiscord{}
		if _, err := LoadDashboard(context.Background(), mock, "", cdn); !errors.Is(err, shared.ErrAuthMissing) {
			t.Errorf("expected ErrAuthMissing, got %v", err)
		}
	})

	t.Run("rejected token skips guild calls", func(t *testing.T) {
		fake := tu.NewFakeDiscord(t)
		srv := newTestService(t, fake)

		_, err := LoadDashboard(context.Background(), srv, "expired", cdn)
		if !errors.Is(err, shared.ErrProfileFetch) {
			t.Fatalf("expected ErrProfileFetch, got %v", err)
		}
		if fake.Calls(tu.CallUserGuilds)+fake.Calls(tu.CallBotGuilds) != 0 {
			t.Error("expected no guild calls after profile failure")
		}
	})

	t.Run("failure mapping", func(t *testing.T) {
		user := &models.UserProfile{ID: "1", Username: "pilot"}
		boom := errors.New("boom")

		tc := []struct {
			name string
			mock *tu.MockDiscord
			want error
		}{
			{name: "user guilds", mock: &tu.MockDiscord{User: user, UserGuildErr: boom}, want: shared.ErrGuildFetch},
			{name: "bot guilds", mock: &tu.MockDiscord{User: user, BotGuildErr: boom}, want: shared.ErrBotGuildFetch},
			{name: "both report user side", mock: &tu.MockDiscord{User: user, UserGuildErr: boom, BotGuildErr: boom}, want: shared.ErrGuildFetch},
			{name: "profile", mock: &tu.MockDiscord{ProfileErr: boom}, want: shared.ErrProfileFetch},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				_, err := LoadDashboard(context.Background(), tt.mock, "token", cdn)
				if !errors.Is(err, tt.want) {
					t.Errorf("expected %v, got %v", tt.want, err)
				}
				if !errors.Is(err, boom) {
					t.Errorf("expected cause to be kept, got %v", err)
				}
			})
		}
	})
}

// blockingBot is a [Discord] whose bot guild fetch waits for its context to end.
type blockingBot struct {
	tu.MockDiscord
	botCtxErr chan error
}

func (b *blockingBot) BotGuilds(ctx context.Context) ([]models.Guild, error) {
	<-ctx.Done()
	b.botCtxErr <- ctx.Err()
	return nil, ctx.Err()
}

func TestLoadDashboardCancellation(t *testing.T) {
	boom := errors.New("boom")
	d := &blockingBot{
		MockDiscord: tu.MockDiscord{User: &models.UserProfile{ID: "1"}, UserGuildErr: boom},
		botCtxErr:   make(chan error, 1),
	}

	done := make(chan error, 1)
	go func() {
		_, err := LoadDashboard(context.Background(), d, "token", models.NewCDN(""))
		done <- err
	}()

	select {
	case err := <-done:
		if !errors.Is(err, shared.ErrGuildFetch) || !errors.Is(err, boom) {
			t.Errorf("expected user guild failure, got %v", err)
		}
		if errors.Is(err, shared.ErrBotGuildFetch) {
			t.Errorf("cancelled bot fetch should not be reported, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("user guild failure did not cancel the bot fetch")
	}

	if err := <-d.botCtxErr; !errors.Is(err, context.Canceled) {
		t.Errorf("expected bot fetch to see context.Canceled, got %v", err)
	}
}
