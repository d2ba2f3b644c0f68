// submodule cmd contains command definitions
package main

import (
	"github.com/desertthunder/guildboard/internal/formatter"
	"github.com/urfave/cli/v3"
)

// formatFlags are shared by every command that prints a guild list.
func formatFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format (text, csv, markdown, json)",
			Value:   formatter.FormatText,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Write to a file instead of stdout",
		},
	}
}

func tokenFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "token",
		Aliases:  []string{"t"},
		Usage:    "User access token (the access_token cookie)",
		Sources:  cli.EnvVars("DISCORD_ACCESS_TOKEN"),
		Required: true,
	}
}

// serveCommand runs the web dashboard.
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the dashboard web server",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to listen on (overrides config and PORT)",
			},
		},
		Action: r.Serve,
	}
}

// setupCommand handles setup operations.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "config",
				Usage: "Write a config.toml from the built-in template",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupConfig,
			},
		},
	}
}

// authCommand handles OAuth helpers.
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "OAuth helpers",
		Commands: []*cli.Command{
			{
				Name:  "url",
				Usage: "Print the Discord authorization URL",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "open",
						Usage: "Open the URL in the default browser",
					},
				},
				Action: r.AuthURL,
			},
		},
	}
}

// guildsCommand lists guilds from the Discord API.
func guildsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "guilds",
		Aliases: []string{"servers"},
		Usage:   "List Discord servers",
		Commands: []*cli.Command{
			{
				Name:   "bot",
				Usage:  "List every server the bot is in",
				Flags:  formatFlags(),
				Action: r.GuildsBot,
			},
			{
				Name:   "common",
				Usage:  "List the servers a user shares with the bot",
				Flags:  append(formatFlags(), tokenFlag()),
				Action: r.GuildsCommon,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for browsing shared servers.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Browse shared servers interactively",
		Flags:   []cli.Flag{tokenFlag()},
		Action:  r.TUI,
	}
}
