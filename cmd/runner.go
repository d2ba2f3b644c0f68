package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/guildboard/internal/models"
	"github.com/desertthunder/guildboard/internal/services"
	"github.com/desertthunder/guildboard/internal/shared"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	discord    services.Discord
	httpClient *http.Client
	logger     *log.Logger
	output     io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	Discord    services.Discord // built from Config on first use when nil
	HTTPClient *http.Client
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &Runner{
		config:     opts.Config,
		discord:    opts.Discord,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		output:     opts.Output,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		serveCommand, setupCommand, authCommand, guildsCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// Before applies global flags ahead of any command.
func (r *Runner) Before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	level, err := shared.ParseLogLevel(cmd.String("log-level"))
	if err != nil {
		return ctx, err
	}
	shared.SetLogLevel(r.logger, level)
	return ctx, nil
}

// SetLogger replaces the runner's logger.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

// discordClient returns the configured Discord client, creating it from config on first use.
func (r *Runner) discordClient() (services.Discord, error) {
	if r.discord != nil {
		return r.discord, nil
	}

	svc, err := services.NewDiscordService(r.config.Discord, r.httpClient)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord client: %w", err)
	}
	r.discord = svc
	return svc, nil
}

func (r *Runner) cdn() models.CDN {
	return models.NewCDN(r.config.Discord.CDNURL)
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
