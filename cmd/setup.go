package main

import (
	"context"

	"github.com/desertthunder/guildboard/internal/shared"
	"github.com/urfave/cli/v3"
)

// SetupConfig writes a config.toml from the embedded template.
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	r.logger.Info("creating config file from template", "path", configPath)
	if err := shared.CreateConfigFile(configPath); err != nil {
		return err
	}

	r.writePlain("✓ Config written to %s\n", configPath)
	r.writePlainln("Next steps:")
	r.writePlain("1. Fill in [discord] client_id, client_secret and bot_token (or set %s, %s, %s)\n",
		shared.EnvClientID, shared.EnvClientSecret, shared.EnvBotToken)
	r.writePlain("2. Add %s as a redirect in the Discord developer portal\n", r.config.Discord.RedirectURI)
	r.writePlain("3. Run 'guildboard serve'\n")
	return nil
}
