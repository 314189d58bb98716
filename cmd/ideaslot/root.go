package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type rootFlags struct {
	stateDir  string
	wordsPath string
	logLevel  string
	verbose   bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "ideaslot",
		Short:         "Gamble business ideas from three lockable word slots",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, flags)
			if err != nil {
				return err
			}
			defer app.Close()

			if !isTerminal(cmd.OutOrStdout()) {
				return printOneIdea(cmd, app)
			}
			return runInteractive(cmd, app)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.stateDir, "state-dir", "", "Directory holding preferences, settings and logs (default ~/.ideaslot)")
	cmd.PersistentFlags().StringVar(&flags.wordsPath, "words", "", "YAML file replacing the built-in word lists")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: trace, debug, info, warn or error")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newGenerateCmd(flags))
	cmd.AddCommand(newThemeCmd(flags))
	cmd.AddCommand(newWordsCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// printOneIdea is the root command's behaviour when stdout is piped.
func printOneIdea(cmd *cobra.Command, app *AppContext) error {
	gen := app.NewGenerator(0)
	defer gen.Close()

	fmt.Fprintln(cmd.OutOrStdout(), gen.Generate())
	return nil
}

func isTerminal(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
