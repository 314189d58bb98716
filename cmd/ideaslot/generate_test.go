package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/ideaslot/internal/idea"
)

func TestGenerateIsReproducibleWithSeed(t *testing.T) {
	stateDir := t.TempDir()

	first, err := executeCommand(t, stateDir, "generate", "--seed", "42", "--count", "5")
	require.NoError(t, err)
	second, err := executeCommand(t, stateDir, "generate", "--seed", "42", "--count", "5")
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Len(t, strings.Split(strings.TrimSpace(first), "\n"), 5)
}

func TestGenerateSeedFromSettings(t *testing.T) {
	stateDir := t.TempDir()
	writeStateFile(t, stateDir, "config.yaml", "seed: 7\n")

	fromSettings, err := executeCommand(t, stateDir, "generate", "--count", "3")
	require.NoError(t, err)
	fromFlag, err := executeCommand(t, t.TempDir(), "generate", "--seed", "7", "--count", "3")
	require.NoError(t, err)

	require.Equal(t, fromFlag, fromSettings)
}

func TestGenerateLockPinsSlot(t *testing.T) {
	out, err := executeCommand(t, t.TempDir(), "generate", "--count", "4", "--lock", "audience=dogs", "--lock", "subject=Uber")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	for _, line := range lines {
		require.True(t, strings.HasPrefix(line, "Uber "), line)
		require.True(t, strings.HasSuffix(line, " for dogs"), line)
	}
}

func TestGenerateJSON(t *testing.T) {
	out, err := executeCommand(t, t.TempDir(), "generate", "--json", "--count", "2", "--lock", "form=a startup")
	require.NoError(t, err)

	var ideas []generateJSONIdea
	require.NoError(t, json.Unmarshal([]byte(out), &ideas))
	require.Len(t, ideas, 2)
	for _, i := range ideas {
		require.Equal(t, "a startup", i.Form)
		require.Equal(t, i.Subject+" a startup for "+i.Audience, i.Sentence)
	}
}

func TestGenerateRejectsBadFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"zero count", []string{"--count", "0"}, "--count must be at least 1"},
		{"missing equals", []string{"--lock", "audience"}, "is not slot=word"},
		{"unknown slot", []string{"--lock", "colour=red"}, "unknown slot"},
		{"unknown word", []string{"--lock", "audience=martians"}, "not a known audience"},
		{"duplicate slot", []string{"--lock", "form=a startup", "--lock", "form=an app"}, "locked more than once"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(t, t.TempDir(), append([]string{"generate"}, tt.args...)...)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGenerateWithCustomWords(t *testing.T) {
	stateDir := t.TempDir()
	path := writeStateFile(t, stateDir, "mine.yaml", `subjects: [Kayak]
forms: [a club]
targetAudiences: [otters]
`)

	out, err := executeCommand(t, stateDir, "--words", path, "generate")
	require.NoError(t, err)
	require.Equal(t, "Kayak a club for otters\n", out)
}

func TestParsePins(t *testing.T) {
	pins, err := parsePins([]string{" Subject = Uber", "audience=you"})
	require.NoError(t, err)
	require.Equal(t, []pin{{slot: idea.Subject, value: "Uber"}, {slot: idea.Audience, value: "you"}}, pins)
}
