package shared

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Server.Port != 3000 {
			t.Errorf("expected server port 3000, got %d", config.Server.Port)
		}

		if config.Server.CallbackPath != "/api/auth/discord/redirect" {
			t.Errorf("expected callback path /api/auth/discord/redirect, got %s", config.Server.CallbackPath)
		}

		if config.Discord.APIURL != "https://discord.com/api/v10" {
			t.Errorf("expected discord API URL https://discord.com/api/v10, got %s", config.Discord.APIURL)
		}

		if config.Discord.Timeout.Duration != 10*time.Second {
			t.Errorf("expected timeout 10s, got %v", config.Discord.Timeout.Duration)
		}

		if config.Site.Title != "Aerophobia" {
			t.Errorf("expected site title Aerophobia, got %s", config.Site.Title)
		}

		if len(config.Discord.Scopes) != 2 {
			t.Errorf("expected 2 default scopes, got %v", config.Discord.Scopes)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		if config.Server.Port != DefaultConfig().Server.Port {
			t.Errorf("created config server port doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[server]
host = "0.0.0.0"
port = 8080

[discord]
client_id = "test_client_id"
client_secret = "test_secret"
redirect_uri = "http://localhost:8080/api/auth/discord/redirect"
bot_token = "test_bot_token"
timeout = "2s"
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Server.Addr() != "0.0.0.0:8080" {
			t.Errorf("expected addr 0.0.0.0:8080, got %s", config.Server.Addr())
		}

		if config.Discord.ClientID != "test_client_id" {
			t.Errorf("expected client_id test_client_id, got %s", config.Discord.ClientID)
		}

		if config.Discord.Timeout.Duration != 2*time.Second {
			t.Errorf("expected timeout 2s, got %v", config.Discord.Timeout.Duration)
		}

		if config.Discord.CDNURL != "https://cdn.discordapp.com" {
			t.Errorf("expected default CDN URL to survive partial config, got %s", config.Discord.CDNURL)
		}

		if err := config.Validate(); err != nil {
			t.Errorf("expected complete config to validate, got %v", err)
		}
	})

	t.Run("LoadConfig with bad duration", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(configPath, []byte("[discord]\ntimeout = \"soon\"\n"), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		if _, err := LoadConfig(configPath); err == nil {
			t.Error("expected error for invalid duration")
		}
	})

	t.Run("ApplyEnv", func(t *testing.T) {
		env := map[string]string{
			EnvClientID:     "env_client",
			EnvClientSecret: "env_secret",
			EnvBotToken:     "env_bot",
			EnvPort:         "4000",
		}
		lookup := func(k string) (string, bool) {
			v, ok := env[k]
			return v, ok
		}

		config := DefaultConfig()
		if err := config.ApplyEnv(lookup); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if config.Discord.ClientID != "env_client" {
			t.Errorf("expected client id from env, got %s", config.Discord.ClientID)
		}
		if config.Discord.BotToken != "env_bot" {
			t.Errorf("expected bot token from env, got %s", config.Discord.BotToken)
		}
		if config.Server.Port != 4000 {
			t.Errorf("expected port 4000, got %d", config.Server.Port)
		}
		if config.Discord.RedirectURI != DefaultConfig().Discord.RedirectURI {
			t.Errorf("unset variable should keep file value, got %s", config.Discord.RedirectURI)
		}

		env[EnvPort] = "not-a-port"
		if err := config.ApplyEnv(lookup); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("Validate", func(t *testing.T) {
		config := DefaultConfig()
		err := config.Validate()
		if !errors.Is(err, ErrMissingCredentials) {
			t.Errorf("expected ErrMissingCredentials for empty credentials, got %v", err)
		}
	})
}
