package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/bastiangx/wordsolve/internal/logger"
	"github.com/bastiangx/wordsolve/pkg/dictionary"
	"github.com/bastiangx/wordsolve/pkg/engine"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runPrompt(t *testing.T, input string) string {
	t.Helper()
	return runPromptWords(t, "CAT\nACT\nTAC\nACE\nCATS\nDOG\n", input)
}

func runPromptWords(t *testing.T, words, input string) string {
	t.Helper()
	eng := engine.New(dictionary.StaticSource(words), engine.WithLogger(logger.Discard()))
	var out bytes.Buffer
	h := NewInputHandler(eng, "anagram", true).WithIO(strings.NewReader(input), log.New(&out))
	require.NoError(t, h.Start(context.Background()))
	return out.String()
}

func TestPromptDefaultSearch(t *testing.T) {
	out := runPrompt(t, "act\n")
	assert.Contains(t, out, "Found 3 anagram results for 'act'")
	assert.Contains(t, out, "3 letters (3)")
	assert.Contains(t, out, "TAC")
}

func TestPromptNamedSearch(t *testing.T) {
	out := runPrompt(t, "wordbuilder CATS\n")
	assert.Contains(t, out, "wordbuilder results")
	assert.Contains(t, out, "4 letters (1)")
	assert.Contains(t, out, "CATS")
}

func TestPromptBlanks(t *testing.T) {
	out := runPrompt(t, "AC?")
	assert.Contains(t, out, "ACE")
	assert.Contains(t, out, "?=E")
}

func TestPromptCheck(t *testing.T) {
	out := runPrompt(t, "check d?g\ncheck zzz\ncheck\n")
	assert.Contains(t, out, "D?G")
	assert.Contains(t, out, "is valid")
	assert.Contains(t, out, "ZZZ is not a word")
	assert.Contains(t, out, "Usage: check WORD")
}

func TestPromptRejectsBadRack(t *testing.T) {
	out := runPrompt(t, "c4t\nxyz\n")
	assert.Contains(t, out, "Not a rack: 'c4t'")
	assert.Contains(t, out, "No anagram results for 'xyz'")
}

func TestPromptStatsAndHelp(t *testing.T) {
	out := runPrompt(t, "help\nact\nstats\n")
	assert.Contains(t, out, "bingo7")
	assert.Contains(t, out, "totalWords")
	assert.Contains(t, out, "cliRequests")
}

func TestPromptLetterlessSearches(t *testing.T) {
	out := runPromptWords(t, "AT\nTA\nQI\nQAT\nQUIZ\nCAT\n", "twoletter\nqwithoutu\nthreeletter xyz\n")
	assert.NotContains(t, out, "Not a rack")
	assert.Contains(t, out, "Found 3 twoletter results:")
	assert.Contains(t, out, "Found 2 qwithoutu results:")
	assert.Contains(t, out, "Found 2 threeletter results:")
	assert.NotContains(t, out, "QUIZ")
}
