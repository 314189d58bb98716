package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/ideaslot/internal/idea"
	"github.com/alexisbeaulieu97/ideaslot/internal/links"
	"github.com/alexisbeaulieu97/ideaslot/internal/schedule"
	"github.com/alexisbeaulieu97/ideaslot/internal/tui"
)

func runInteractive(cmd *cobra.Command, app *AppContext) error {
	log := app.Logger

	var program *tea.Program
	// Timer callbacks are delivered as messages so they run on the UI loop.
	sched := schedule.NewLoop(func(f schedule.Fire) {
		program.Send(f)
	})

	gen := app.NewGenerator(0, idea.WithScheduler(sched))
	defer gen.Close()

	pres := tui.NewPresentation()
	mgr := app.NewThemeManager(pres)

	m := tui.NewModel(tui.Options{
		Generator:    gen,
		Theme:        mgr,
		Presentation: pres,
		Opener:       links.Browser{},
		SupportURL:   app.Settings.SupportURL,
		ProfileURL:   app.Settings.ProfileURL,
		Confetti:     app.Settings.Confetti,
		Logger:       log,
	})

	program = tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)

	log.Info("session started")
	if _, err := program.Run(); err != nil {
		log.Error(err, "interactive session failed")
		return fmt.Errorf("run interactive session: %w", err)
	}
	return nil
}
