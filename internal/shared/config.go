package shared

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

//go:embed config.example.toml
var exampleConf []byte

// Environment variables that override values from the config file.
const (
	EnvClientID     = "CLIENT_ID"
	EnvClientSecret = "CLIENT_SECRET"
	EnvRedirectURI  = "REDIRECT_URI"
	EnvBotToken     = "BOT_TOKEN"
	EnvPort         = "PORT"
)

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Discord DiscordConfig `toml:"discord"`
	Server  ServerConfig  `toml:"server"`
	Site    SiteConfig    `toml:"site"`
}

// DiscordConfig contains the OAuth application credentials and the bot token.
type DiscordConfig struct {
	ClientID          string   `toml:"client_id"`
	ClientSecret      string   `toml:"client_secret"`
	RedirectURI       string   `toml:"redirect_uri"`
	BotToken          string   `toml:"bot_token"`
	APIURL            string   `toml:"api_url"`
	CDNURL            string   `toml:"cdn_url"`
	Scopes            []string `toml:"scopes"`
	Timeout           Duration `toml:"timeout"`
	RequestsPerSecond float64  `toml:"requests_per_second"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	CallbackPath string `toml:"callback_path"`
}

// SiteConfig holds the page shell metadata rendered into every HTML page.
type SiteConfig struct {
	Title         string `toml:"title"`
	Description   string `toml:"description"`
	OGTitle       string `toml:"og_title"`
	OGType        string `toml:"og_type"`
	OGDescription string `toml:"og_description"`
	ThemeColor    string `toml:"theme_color"`
}

// Duration wraps [time.Duration] so it can be written as "10s" in TOML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("%w: duration %q", ErrInvalidConfig, string(text))
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Addr returns the host:port the HTTP server listens on.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// Keys missing from the file keep the values of [DefaultConfig].
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// Resolve loads the config at path when it exists, falling back to [DefaultConfig], then applies environment overrides.
//
// A .env file in the working directory is loaded first; variables already set in the process environment win.
func Resolve(path string) (*Config, error) {
	config := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		loaded, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		config = loaded
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if err := config.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	return config, nil
}

// ApplyEnv overrides credentials and the listen port from the environment.
//
// lookup is usually [os.LookupEnv].
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	for name, dst := range map[string]*string{
		EnvClientID:     &c.Discord.ClientID,
		EnvClientSecret: &c.Discord.ClientSecret,
		EnvRedirectURI:  &c.Discord.RedirectURI,
		EnvBotToken:     &c.Discord.BotToken,
	} {
		if v, ok := lookup(name); ok && v != "" {
			*dst = v
		}
	}

	if v, ok := lookup(EnvPort); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvPort, v)
		}
		c.Server.Port = port
	}

	return nil
}

// Validate reports missing Discord credentials.
func (c *Config) Validate() error {
	var missing []string
	if c.Discord.ClientID == "" {
		missing = append(missing, "client_id")
	}
	if c.Discord.ClientSecret == "" {
		missing = append(missing, "client_secret")
	}
	if c.Discord.RedirectURI == "" {
		missing = append(missing, "redirect_uri")
	}
	if c.Discord.BotToken == "" {
		missing = append(missing, "bot_token")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: discord %v", ErrMissingCredentials, missing)
	}
	return nil
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
