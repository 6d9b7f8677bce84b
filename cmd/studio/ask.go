package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"qualitystudio/internal/gemini"
	"qualitystudio/internal/persona"
	"qualitystudio/internal/studio"
)

var (
	askPersona   string
	askPro       bool
	askGrounding string
	askAttach    string
)

// askCmd runs a single turn without the TUI: same request assembly, answer
// and grounding sources printed to stdout.
var askCmd = &cobra.Command{
	Use:   "ask [prompt]",
	Short: "Send one prompt and print the answer",
	Long: `Sends a single prompt through the same pipeline as the interactive chat
and prints the answer, followed by any grounding sources.

Example:
  studio ask --persona code --pro "explain context cancellation in Go"
  studio ask --grounding maps "coffee near the Ferry Building"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVar(&askPersona, "persona", "", "persona key ("+strings.Join(persona.Keys(), ", ")+")")
	askCmd.Flags().BoolVar(&askPro, "pro", false, "use the Pro reasoning variant")
	askCmd.Flags().StringVar(&askGrounding, "grounding", "", "grounding mode (none, search, maps)")
	askCmd.Flags().StringVar(&askAttach, "attach", "", "path to a png/jpg/jpeg/mp3/wav attachment")
}

// resolveReasoning picks the reasoning toggle: an explicitly set --pro wins
// over the config default, even when set to false.
func resolveReasoning(flags *pflag.FlagSet, def bool) bool {
	if !flags.Changed("pro") {
		return def
	}
	v, err := flags.GetBool("pro")
	if err != nil {
		return def
	}
	return v
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg, orch, err := setup(cmd.Context())
	if err != nil {
		return err
	}

	personaKey := askPersona
	if personaKey == "" {
		personaKey = cfg.Defaults.Persona
	}

	groundingArg := askGrounding
	if groundingArg == "" {
		groundingArg = cfg.Defaults.Grounding
	}
	grounding, err := gemini.ParseGroundingMode(groundingArg)
	if err != nil {
		return err
	}

	var attachment *gemini.Attachment
	if askAttach != "" {
		attachment, err = gemini.LoadAttachment(askAttach)
		if err != nil {
			return err
		}
		logger.Debug("attachment loaded",
			zap.String("name", attachment.Name),
			zap.String("mime", attachment.MIMEType),
			zap.Int("bytes", len(attachment.Data)),
		)
	}

	result, err := orch.Submit(cmd.Context(), studio.SubmitRequest{
		Prompt:       strings.Join(args, " "),
		PersonaKey:   personaKey,
		UseReasoning: resolveReasoning(cmd.Flags(), cfg.Defaults.Reasoning),
		Grounding:    grounding,
		Attachment:   attachment,
	})
	if err != nil {
		return err
	}

	fmt.Println(result.Text)
	if len(result.Sources) > 0 {
		fmt.Println()
		fmt.Println("Sources:")
		for _, u := range result.Sources {
			fmt.Printf("  %s\n", u)
		}
	}
	return nil
}
