package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/ideaslot/internal/idea"
)

func newWordsCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "words [subject|form|audience]",
		Short:     "List the words each slot draws from",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{idea.Subject.String(), idea.Form.String(), idea.Audience.String()},
		RunE: func(cmd *cobra.Command, args []string) error {
			slots := idea.Slots[:]
			if len(args) == 1 {
				slot, err := idea.ParseSlot(args[0])
				if err != nil {
					return newCommandError("list words", "parsing slot", err, "")
				}
				slots = []idea.Slot{slot}
			}

			app, err := newAppContext(cmd, flags)
			if err != nil {
				return err
			}
			defer app.Close()

			out := cmd.OutOrStdout()
			for i, slot := range slots {
				if i > 0 {
					fmt.Fprintln(out)
				}
				list, _ := app.Words.For(slot.String())
				fmt.Fprintf(out, "%s (%d)\n", strings.ToUpper(slot.String()), len(list))
				for _, w := range list {
					fmt.Fprintf(out, "  %s\n", w)
				}
			}
			return nil
		},
	}

	return cmd
}
