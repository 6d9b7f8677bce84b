// QualityStudio is a terminal chat front-end for the Gemini 3 preview models:
// persona-steered conversations, optional web/maps grounding, and multimodal
// attachments, in a single ephemeral session.
package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"qualitystudio/cmd/studio/chat"
	"qualitystudio/internal/config"
	"qualitystudio/internal/gemini"
	"qualitystudio/internal/studio"
)

var (
	// Global flags
	cfgPath string
	verbose bool

	// Logger
	logger *zap.Logger
)

// rootCmd launches the interactive chat interface.
var rootCmd = &cobra.Command{
	Use:   "studio",
	Short: "QualityStudio - Gemini 3 power interface",
	Long: `QualityStudio is a terminal chat front-end for the Gemini 3 preview models.

Pick a persona, toggle Pro reasoning, ground answers with Google Search or
Google Maps, and attach images or audio. The conversation lives for the
session only; /reset clears it.

Run without arguments to start the interactive chat interface.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The interactive TUI owns the terminal; keep the logger quiet there
		// unless verbose logging was asked for explicitly.
		if cmd.CalledAs() == "studio" && !verbose {
			logger = zap.NewNop()
			return nil
		}

		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractiveChat(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", config.DefaultPath(), "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(askCmd)
}

// setup loads and validates configuration and builds the orchestrator. A
// missing API key fails here, before any request is attempted.
func setup(ctx context.Context) (*config.Config, *studio.Orchestrator, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	client, err := gemini.NewClient(ctx, cfg.API.Key, logger)
	if err != nil {
		return nil, nil, err
	}
	return cfg, studio.New(client, logger), nil
}

func runInteractiveChat(ctx context.Context) error {
	cfg, orch, err := setup(ctx)
	if err != nil {
		return err
	}

	grounding, err := gemini.ParseGroundingMode(cfg.Defaults.Grounding)
	if err != nil {
		return err
	}

	model, err := chat.New(chat.Options{
		Orchestrator: orch,
		PersonaKey:   cfg.Defaults.Persona,
		UseReasoning: cfg.Defaults.Reasoning,
		Grounding:    grounding,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize chat: %w", err)
	}

	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
