package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scottcagno/strsearch/pkg/search"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestFind(t *testing.T) {
	out, _, err := execute(t, "find", "hello world", "world")
	require.NoError(t, err)
	assert.Equal(t, "BOYER-MOORE: 6 (found)\nKNUTH-MORRIS-PRATT: 6 (found)\nRABIN-KARP: 6 (found)\n", out)
}

func TestFind_NotFound(t *testing.T) {
	out, _, err := execute(t, "find", "--algo", "rk", "abracadabra", "xyz")
	require.NoError(t, err)
	assert.Equal(t, "RABIN-KARP: -1 (not found)\n", out)
}

func TestFind_Runes(t *testing.T) {
	text := "Це приклад тексту"
	out, _, err := execute(t, "find", "--algo", "bm,kmp", text, "приклад")
	require.NoError(t, err)
	assert.Equal(t, "BOYER-MOORE: 5 (found)\nKNUTH-MORRIS-PRATT: 5 (found)\n", out)

	out, _, err = execute(t, "find", "--runes", "--algo", "bm,kmp", text, "приклад")
	require.NoError(t, err)
	assert.Equal(t, "BOYER-MOORE: 3 (found)\nKNUTH-MORRIS-PRATT: 3 (found)\n", out)
}

func TestFind_UnknownAlgorithm(t *testing.T) {
	_, _, err := execute(t, "find", "--algo", "grep", "a", "a")
	require.Error(t, err)
	assert.True(t, errors.Is(err, search.ErrUnknownSearcher))
}

func TestFind_Args(t *testing.T) {
	_, _, err := execute(t, "find", "only-text")
	assert.Error(t, err)
}

func TestBound(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"between", []string{"3.8", "1.1", "2.2", "3.3", "4.4", "5.5", "6.6"}, "iterations=3 bound=4.4 index=-1\n"},
		{"exact", []string{"3.3", "1.1", "2.2", "3.3", "4.4", "5.5", "6.6"}, "iterations=1 bound=3.3 index=2\n"},
		{"above all", []string{"7", "1.1", "2.2", "3.3"}, "iterations=2 bound=none index=-1\n"},
		{"no values", []string{"7"}, "iterations=0 bound=none index=-1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, append([]string{"bound"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestBound_Errors(t *testing.T) {
	_, _, err := execute(t, "bound", "3", "4", "2")
	assert.True(t, errors.Is(err, ErrUnsorted))

	_, _, err = execute(t, "bound", "x", "1")
	assert.Error(t, err)

	_, _, err = execute(t, "bound", "1", "2", "y")
	assert.Error(t, err)
}

func TestBench(t *testing.T) {
	out, _, err := execute(t, "bench", "--runs", "2", "--algo", "kmp,bm",
		"--text", "hello world", "--pattern", "world", "--pattern", "nope")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "=== Search Benchmark ===\n"))
	assert.Contains(t, out, "Results for text:\nhello world\n")
	assert.Contains(t, out, `Time for pattern "world" (2 runs):`)
	assert.Contains(t, out, `Time for pattern "nope" (2 runs):`)
	assert.Equal(t, 2, strings.Count(out, "KNUTH-MORRIS-PRATT:"))
	assert.Equal(t, 2, strings.Count(out, "BOYER-MOORE:"))
	assert.NotContains(t, out, "RABIN-KARP")
	assert.Contains(t, out, "index=6")
	assert.Contains(t, out, "index=-1")
	assert.Contains(t, out, "=== End Benchmark ===")
}

func TestBench_Defaults(t *testing.T) {
	out, _, err := execute(t, "bench", "--runs", "1")
	require.NoError(t, err)
	assert.Contains(t, out, `Time for pattern "приклад" (1 runs):`)
	assert.Contains(t, out, `Time for pattern "вигаданий" (1 runs):`)
	assert.Equal(t, 4, strings.Count(out, "RABIN-KARP:"))
}

func TestBench_InvalidRuns(t *testing.T) {
	_, _, err := execute(t, "bench", "--runs", "0")
	assert.Error(t, err)
}

func TestDebugLogging(t *testing.T) {
	_, stderr, err := execute(t, "--debug", "find", "abc", "b")
	require.NoError(t, err)
	assert.Contains(t, stderr, "level=DEBUG")
	assert.Contains(t, stderr, "msg=find")
}
