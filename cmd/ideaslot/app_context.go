package main

import (
	"errors"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/ideaslot/internal/config"
	"github.com/alexisbeaulieu97/ideaslot/internal/idea"
	"github.com/alexisbeaulieu97/ideaslot/internal/links"
	"github.com/alexisbeaulieu97/ideaslot/internal/logger"
	"github.com/alexisbeaulieu97/ideaslot/internal/prefs"
	"github.com/alexisbeaulieu97/ideaslot/internal/theme"
	"github.com/alexisbeaulieu97/ideaslot/internal/words"
)

// AppContext bundles the long-lived services of one invocation.
type AppContext struct {
	Settings *config.Settings
	Logger   *logger.Logger
	Store    theme.Store
	Words    words.Lists

	closers []io.Closer
}

// newAppContext resolves settings, opens the session log and the preference
// store, and loads the word lists. Flags override loaded settings.
func newAppContext(cmd *cobra.Command, flags *rootFlags) (*AppContext, error) {
	stateDir := strings.TrimSpace(flags.stateDir)
	if stateDir == "" {
		dir, err := config.DefaultStateDir()
		if err != nil {
			return nil, newCommandError(cmd.Name(), "determining state directory", err, "Set --state-dir or IDEASLOT_STATE_DIR.")
		}
		stateDir = dir
	}

	settings, err := config.Load(stateDir)
	if err != nil {
		return nil, newCommandError(cmd.Name(), "loading settings", err, "Fix "+config.FileName+" in "+stateDir+" or the IDEASLOT_* variables.")
	}
	if flags.wordsPath != "" {
		settings.Words = flags.wordsPath
	}
	if flags.logLevel != "" {
		settings.LogLevel = flags.logLevel
	}
	if flags.verbose {
		settings.LogLevel = "debug"
	}
	if err := settings.Validate(); err != nil {
		return nil, newCommandError(cmd.Name(), "validating settings", err, "")
	}

	app := &AppContext{Settings: settings}

	app.Logger, err = app.openLogger()
	if err != nil {
		return nil, newCommandError(cmd.Name(), "configuring logging", err, "")
	}
	app.Logger = app.Logger.WithFields(map[string]any{
		"session": uuid.NewString(),
		"command": cmd.Name(),
	})

	store, err := prefs.Open(settings.PrefsPath())
	if err != nil {
		app.Logger.Warn(err, "preference store unavailable, keeping preferences in memory")
		app.Store = prefs.NewMemory()
	} else {
		app.Logger.With("path", store.Path()).Debug("preference store opened")
		app.Store = store
	}

	app.Words = words.Default()
	if settings.Words != "" {
		lists, err := words.Load(settings.Words)
		if err != nil {
			app.Close()
			return nil, newCommandError(cmd.Name(), "loading word lists", err, "Check the file passed to --words.")
		}
		app.Words = lists
	}

	app.Logger.WithFields(map[string]any{
		"state_dir": settings.StateDir,
		"words":     app.Words.Len(),
	}).Debug("application context ready")
	return app, nil
}

// openLogger writes JSON lines to the session log. The log is best effort:
// when the file cannot be opened the session runs without one.
func (a *AppContext) openLogger() (*logger.Logger, error) {
	f, err := logger.OpenFile(a.Settings.LogPath())
	if err != nil {
		return logger.Nop(), nil
	}
	a.closers = append(a.closers, f)
	return logger.New(logger.Options{Level: a.Settings.LogLevel, Writer: f})
}

// NewGenerator builds a generator over the loaded words. seed overrides the
// configured seed when non-zero.
func (a *AppContext) NewGenerator(seed uint64, opts ...idea.Option) *idea.Generator {
	if seed == 0 {
		seed = a.Settings.Seed
	}

	base := []idea.Option{
		idea.WithLogger(a.Logger),
		idea.WithOpener(links.Browser{}),
		idea.WithConvertURL(a.Settings.SupportURL),
	}
	if seed != 0 {
		base = append(base, idea.WithRand(rand.New(rand.NewPCG(seed, seed))))
	}
	return idea.New(a.Words, append(base, opts...)...)
}

// NewThemeManager builds an initialized theme manager applying to sink.
func (a *AppContext) NewThemeManager(sink theme.Sink) *theme.Manager {
	mgr := theme.NewManager(a.Store, sink, a.Logger)
	mgr.Initialize()
	return mgr
}

// Close releases files opened for the invocation.
func (a *AppContext) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c.Close())
	}
	a.closers = nil
	return errors.Join(errs...)
}
