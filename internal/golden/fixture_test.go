package golden

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cases.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCases(t *testing.T) {
	path := writeFixture(t, `{"msg": "hello", "expected": "neutral", "note": "plain"}

{"msg": "ugh", "expected": "frustrated"}
`)
	cases, err := LoadCases(path)
	require.NoError(t, err)
	require.Len(t, cases, 2)

	assert.Equal(t, Case{Msg: "hello", Expected: "neutral", Note: "plain"}, cases[0])
	assert.Equal(t, Case{Msg: "ugh", Expected: "frustrated"}, cases[1])
}

func TestLoadCasesMalformedLine(t *testing.T) {
	path := writeFixture(t, `{"msg": "ok", "expected": "neutral"}
{"msg": broken
`)
	_, err := LoadCases(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestLoadCasesMissingFile(t *testing.T) {
	_, err := LoadCases(filepath.Join(t.TempDir(), "nope.jsonl"))
	assert.Error(t, err)
}

func TestLoadCasesEmptyFile(t *testing.T) {
	cases, err := LoadCases(writeFixture(t, ""))
	require.NoError(t, err)
	assert.Empty(t, cases)
}
