package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/ideaslot/internal/idea"
)

type generateOptions struct {
	count      int
	seed       uint64
	locks      []string
	jsonOutput bool
}

type pin struct {
	slot  idea.Slot
	value string
}

func newGenerateCmd(flags *rootFlags) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print generated ideas without the interactive UI",
		Example: `  ideaslot generate --count 5
  ideaslot generate --seed 42 --lock audience=dogs`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, flags, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.count, "count", "n", 1, "Number of ideas to print")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Seed for reproducible output (0 uses the configured seed or a random one)")
	cmd.Flags().StringArrayVar(&opts.locks, "lock", nil, "Pin a slot to a word, as slot=word (repeatable)")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runGenerate(cmd *cobra.Command, flags *rootFlags, opts *generateOptions) error {
	if opts.count < 1 {
		return newCommandError("generate", "validating flags", fmt.Errorf("--count must be at least 1, got %d", opts.count), "")
	}
	pins, err := parsePins(opts.locks)
	if err != nil {
		return newCommandError("generate", "parsing --lock", err, "Use slot=word with slot one of subject, form or audience.")
	}

	app, err := newAppContext(cmd, flags)
	if err != nil {
		return err
	}
	defer app.Close()

	gen := app.NewGenerator(opts.seed)
	defer gen.Close()

	sentences := make([]idea.Sentence, 0, opts.count)
	for i := 0; i < opts.count; i++ {
		gen.Generate()
		if i == 0 {
			for _, p := range pins {
				if err := gen.Pin(p.slot, p.value); err != nil {
					return newCommandError("generate", "applying --lock", err, "Run 'ideaslot words' to see the accepted words.")
				}
			}
		}
		sentences = append(sentences, gen.Sentence())
	}
	app.Logger.WithFields(map[string]any{"count": len(sentences), "pins": len(pins)}).Debug("ideas generated")

	if opts.jsonOutput {
		return renderGenerateJSON(cmd, sentences)
	}
	for _, s := range sentences {
		fmt.Fprintln(cmd.OutOrStdout(), s)
	}
	return nil
}

func parsePins(raw []string) ([]pin, error) {
	pins := make([]pin, 0, len(raw))
	seen := make(map[idea.Slot]bool, len(raw))
	for _, entry := range raw {
		name, value, ok := strings.Cut(entry, "=")
		if !ok || strings.TrimSpace(value) == "" {
			return nil, fmt.Errorf("%q is not slot=word", entry)
		}
		slot, err := idea.ParseSlot(name)
		if err != nil {
			return nil, err
		}
		if seen[slot] {
			return nil, fmt.Errorf("%s locked more than once", slot)
		}
		seen[slot] = true
		pins = append(pins, pin{slot: slot, value: strings.TrimSpace(value)})
	}
	return pins, nil
}

type generateJSONIdea struct {
	Subject  string `json:"subject"`
	Form     string `json:"form"`
	Audience string `json:"audience"`
	Sentence string `json:"sentence"`
}

func renderGenerateJSON(cmd *cobra.Command, sentences []idea.Sentence) error {
	payload := make([]generateJSONIdea, len(sentences))
	for i, s := range sentences {
		payload[i] = generateJSONIdea{
			Subject:  s.Subject,
			Form:     s.Form,
			Audience: s.Audience,
			Sentence: s.String(),
		}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
