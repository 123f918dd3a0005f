package cli

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/pokedex/internal/config"
	"github.com/rshade/pokedex/internal/logging"
	"github.com/rshade/pokedex/internal/pokeapi"
	"github.com/rshade/pokedex/internal/tui"
	"github.com/rshade/pokedex/pkg/version"
)

// annotationTUI marks commands that take over the terminal.
const annotationTUI = "pokedex/tui"

// dotEnvFile is loaded from the working directory before config.
const dotEnvFile = ".env"

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// session is the state every subcommand shares once PersistentPreRunE ran.
type session struct {
	lookupEnv  func(string) (string, bool)
	outputMode func() tui.OutputMode

	cfg       *config.Config
	agent     string
	client    *pokeapi.Client
	logResult *logging.LogPathResult
}

// NewRootCmd creates the root Cobra command for the pokedex CLI.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithArgs(ver, os.LookupEnv)
}

// NewRootCmdWithArgs creates the root command with an explicit env lookup
// for testability.
func NewRootCmdWithArgs(ver string, lookupEnv func(string) (string, bool)) *cobra.Command {
	return newRootCmd(ver, lookupEnv, func() tui.OutputMode {
		return tui.DetectOutputMode(false, false, false)
	})
}

func newRootCmd(ver string, lookupEnv func(string) (string, bool), outputMode func() tui.OutputMode) *cobra.Command {
	s := &session{lookupEnv: lookupEnv, outputMode: outputMode}

	cmd := &cobra.Command{
		Use:          "pokedex",
		Short:        "Browse Pokémon from PokeAPI in your terminal",
		Long:         "pokedex: an interactive and scriptable Pokémon browser backed by PokeAPI",
		Version:      ver,
		Example:      rootCmdExample,
		SilenceUsage: true,
		Annotations:  map[string]string{annotationTUI: "true"},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return s.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, s.logResult)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.browse(cmd, "/")
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file (default $XDG_CONFIG_HOME/pokedex/config.yaml)")
	cmd.PersistentFlags().String("api-url", "", "PokeAPI base URL (overrides config file and env var)")
	cmd.PersistentFlags().Bool("no-sprites", false, "do not download sprite thumbnails")

	cmd.AddCommand(newBrowseCmd(s), newListCmd(s), newShowCmd(s), newTypesCmd(s))
	return cmd
}

const rootCmdExample = `  # Open the interactive browser
  pokedex

  # Open the browser on a record
  pokedex browse --route /pokemon/25

  # Print the first three pages of fire types as JSON
  pokedex list --pages 3 --type fire --output json

  # Show one record
  pokedex show pikachu

  # List the 18 types with their colours
  pokedex types`

// setup resolves configuration (flags > env > file > defaults), starts
// logging and builds the API client.
func (s *session) setup(cmd *cobra.Command) error {
	if err := config.LoadDotEnv(dotEnvFile); err != nil {
		cmd.PrintErrf("Warning: %v\n", err)
	}

	path, required := s.configPath(cmd)
	overlay := config.ResolveProjectOverlay(commandContext(cmd), s.lookupEnv, ".")
	cfg, err := config.LoadWithOverlay(path, required, overlay)
	if err != nil {
		return err
	}
	cfg.ApplyEnv(s.lookupEnv)

	if cmd.Flags().Changed("api-url") {
		cfg.API.BaseURL, _ = cmd.Flags().GetString("api-url")
	}
	if noSprites, _ := cmd.Flags().GetBool("no-sprites"); noSprites {
		cfg.UI.Sprites = false
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	s.cfg = cfg

	result := setupLogging(cmd, &cfg.Logging, s.takesOverTerminal(cmd))
	s.logResult = &result

	s.agent = userAgent(cfg.API.UserAgent)
	s.client = pokeapi.NewClient(
		pokeapi.WithBaseURL(cfg.BaseURL()),
		pokeapi.WithUserAgent(s.agent),
	)

	logger.Debug().Ctx(cmd.Context()).
		Str("config", path).
		Str("overlay", overlay).
		Str("api_url", s.client.BaseURL()).
		Bool("sprites", cfg.UI.Sprites).
		Msg("configuration resolved")
	return nil
}

// userAgent appends the build version to the default agent. A
// user-configured agent is sent as is.
func userAgent(configured string) string {
	if configured != config.DefaultUserAgent {
		return configured
	}
	if _, err := version.Parse(version.GetVersion()); err != nil {
		return configured
	}
	return configured + "/" + version.GetVersion()
}

// configPath returns the config file to read and whether it must exist.
func (s *session) configPath(cmd *cobra.Command) (string, bool) {
	if cmd.Flags().Changed("config") {
		p, _ := cmd.Flags().GetString("config")
		return p, true
	}
	if p, ok := s.lookupEnv(config.EnvConfig); ok && p != "" {
		return p, true
	}
	return config.DefaultPath(), false
}

// takesOverTerminal reports whether cmd runs the full-screen browser.
func (s *session) takesOverTerminal(cmd *cobra.Command) bool {
	return cmd.Annotations[annotationTUI] == "true" && s.outputMode() == tui.OutputModeInteractive
}

// commandContext returns the command context, never nil.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
