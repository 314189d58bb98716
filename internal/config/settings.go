// Package config loads ideaslot's application settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/alexisbeaulieu97/ideaslot/internal/links"
	ideaerrors "github.com/alexisbeaulieu97/ideaslot/pkg/errors"
)

const (
	// EnvPrefix prefixes every environment override, e.g. IDEASLOT_LOG_LEVEL.
	EnvPrefix = "IDEASLOT_"
	// FileName is the settings file looked up inside the state directory.
	FileName = "config.yaml"

	prefsFile = "prefs.json"
	logFile   = "ideaslot.log"
)

// Settings are the user-tunable knobs of the application.
type Settings struct {
	StateDir   string `koanf:"state_dir" validate:"required"`
	Words      string `koanf:"words"`
	LogLevel   string `koanf:"log_level" validate:"oneof=trace debug info warn error"`
	Seed       uint64 `koanf:"seed"`
	SupportURL string `koanf:"support_url" validate:"required,url"`
	ProfileURL string `koanf:"profile_url" validate:"required,url"`
	Confetti   bool   `koanf:"confetti"`
}

// Default returns the built-in settings rooted at stateDir.
func Default(stateDir string) *Settings {
	return &Settings{
		StateDir:   stateDir,
		LogLevel:   "info",
		SupportURL: links.SupportURL,
		ProfileURL: links.ProfileURL,
		Confetti:   true,
	}
}

// DefaultStateDir returns ~/.ideaslot, or IDEASLOT_STATE_DIR when set.
func DefaultStateDir() (string, error) {
	if dir := strings.TrimSpace(os.Getenv(EnvPrefix + "STATE_DIR")); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".ideaslot"), nil
}

// Load layers defaults, <stateDir>/config.yaml and IDEASLOT_* variables, in
// that order, and validates the result.
func Load(stateDir string) (*Settings, error) {
	k := koanf.New(".")
	cfg := Default(stateDir)

	path := filepath.Join(stateDir, FileName)
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, ideaerrors.NewParseError(path, 0, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("accessing settings %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, ideaerrors.NewParseError(path, 0, err)
	}

	// The directory that was searched wins over a state_dir key inside it.
	cfg.StateDir = stateDir

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints.
func (s *Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		var ves validator.ValidationErrors
		if errors.As(err, &ves) {
			fe := ves[0]
			field := fe.Field()
			return ideaerrors.NewValidationError(field, fmt.Sprintf("%v failed validation for tag '%s'", fe.Value(), fe.Tag()), err)
		}
		return ideaerrors.NewValidationError("settings", err.Error(), err)
	}
	return nil
}

// PrefsPath is where the preference store lives.
func (s *Settings) PrefsPath() string {
	return filepath.Join(s.StateDir, prefsFile)
}

// LogPath is where interactive sessions write their log.
func (s *Settings) LogPath() string {
	return filepath.Join(s.StateDir, logFile)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		return strings.SplitN(field.Tag.Get("koanf"), ",", 2)[0]
	})
	return v
}
