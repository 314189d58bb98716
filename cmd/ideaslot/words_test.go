package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWordsListsEverySlot(t *testing.T) {
	out, err := executeCommand(t, t.TempDir(), "words")
	require.NoError(t, err)

	require.Contains(t, out, "SUBJECT (30)")
	require.Contains(t, out, "FORM (25)")
	require.Contains(t, out, "AUDIENCE (25)")
	require.Contains(t, out, "  Gamble\n")
}

func TestWordsSingleSlot(t *testing.T) {
	out, err := executeCommand(t, t.TempDir(), "words", "form")
	require.NoError(t, err)

	require.Contains(t, out, "FORM (25)")
	require.Contains(t, out, "  a startup\n")
	require.NotContains(t, out, "SUBJECT")
}

func TestWordsRejectsUnknownSlot(t *testing.T) {
	_, err := executeCommand(t, t.TempDir(), "words", "verb")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown slot")
}

func TestWordsRejectsInvalidWordFile(t *testing.T) {
	stateDir := t.TempDir()
	path := writeStateFile(t, stateDir, "bad.yaml", "subjects: []\nforms: [x]\ntargetAudiences: [y]\n")

	_, err := executeCommand(t, stateDir, "--words", path, "words")
	require.Error(t, err)
	require.Contains(t, err.Error(), "subjects")
}
