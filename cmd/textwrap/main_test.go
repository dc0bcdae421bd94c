package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/unkn0wn-root/textwrap/internal/config"
	"github.com/unkn0wn-root/textwrap/internal/errdef"
)

const sevenWords = "aaa bbb ccc ddd eee fff ggg\n"

type harness struct {
	t   *testing.T
	app *app
	out *bytes.Buffer
	err *bytes.Buffer
	dir string
}

func newHarness(t *testing.T, stdin string, env map[string]string) *harness {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(config.EnvDir, dir)
	h := &harness{t: t, out: &bytes.Buffer{}, err: &bytes.Buffer{}, dir: dir}
	h.app = newApp(strings.NewReader(stdin), h.out, h.err, func(k string) string { return env[k] })
	return h
}

func (h *harness) run(args ...string) error {
	h.t.Helper()
	cmd := newRootCmd(h.app)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	return cmd.ExecuteContext(context.Background())
}

func TestFillStdin(t *testing.T) {
	text := "To be, or not to be: that is the question\n"

	h := newHarness(t, text, nil)
	require.NoError(t, h.run("-w", "10", "--algorithm", "first-fit"))
	require.Equal(t, "To be, or\nnot to be:\nthat is\nthe\nquestion\n", h.out.String())

	h = newHarness(t, text, nil)
	require.NoError(t, h.run("fill", "-w", "10", "--algorithm", "optimal-fit"))
	require.Equal(t, "To be,\nor not to\nbe: that\nis the\nquestion\n", h.out.String())
}

func TestWidthDefaultsToTerminal(t *testing.T) {
	h := newHarness(t, sevenWords, nil)
	h.app.termWidth = func() int { return 10 }
	require.NoError(t, h.run())
	require.Equal(t, "aaa bbb\nccc ddd\neee fff\nggg\n", h.out.String())
}

func TestSettingsPrecedence(t *testing.T) {
	h := newHarness(t, sevenWords, nil)
	require.NoError(t, os.WriteFile(filepath.Join(h.dir, "config.toml"), []byte("width = 30\n"), 0o644))
	h.app.termWidth = func() int { return 10 }
	require.NoError(t, h.run())
	require.Equal(t, sevenWords, h.out.String())

	env := map[string]string{"TEXTWRAP_WIDTH": "20"}
	h = newHarness(t, sevenWords, env)
	require.NoError(t, os.WriteFile(filepath.Join(h.dir, "config.toml"), []byte("width = 30\n"), 0o644))
	require.NoError(t, h.run())
	require.Equal(t, "aaa bbb ccc ddd eee\nfff ggg\n", h.out.String())

	h = newHarness(t, sevenWords, env)
	require.NoError(t, os.WriteFile(filepath.Join(h.dir, "config.toml"), []byte("width = 30\n"), 0o644))
	require.NoError(t, h.run("--width", "10"))
	require.Equal(t, "aaa bbb\nccc ddd\neee fff\nggg\n", h.out.String())
}

func TestExplicitConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wrap.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: 10\ncolour: red\n"), 0o644))

	h := newHarness(t, sevenWords, nil)
	require.NoError(t, h.run("--config", path))
	require.Equal(t, "aaa bbb\nccc ddd\neee fff\nggg\n", h.out.String())
	require.Contains(t, h.err.String(), `ignoring unknown setting "colour"`)
}

func TestSetAssignments(t *testing.T) {
	h := newHarness(t, sevenWords, nil)
	require.NoError(t, h.run("-w", "12", "--set", "indent=> ", "--set", "shape=round"))
	require.Equal(t, "> aaa bbb\n> ccc ddd\n> eee fff\n> ggg\n", h.out.String())
	require.Contains(t, h.err.String(), `"shape"`)
}

func TestInitialIndentOverridesIndent(t *testing.T) {
	h := newHarness(t, "one two three four five six seven", nil)
	require.NoError(t, h.run("-w", "15", "--indent", "  ", "--initial-indent", "> "))
	require.Equal(t, "> one two three\n  four five six\n  seven", h.out.String())
}

func TestIndentKeepsFinalNewline(t *testing.T) {
	h := newHarness(t, "one two three four five six seven\n", nil)
	require.NoError(t, h.run("-w", "15", "--indent", "  ", "--initial-indent", "> "))
	require.Equal(t, "> one two three\n  four five six\n  seven\n", h.out.String())

	h = newHarness(t, "aaa bbb ccc\r\n", nil)
	require.NoError(t, h.run("-w", "9", "--crlf", "--indent", "> "))
	require.Equal(t, "> aaa bbb\r\n> ccc\r\n", h.out.String())
}

func TestCRLF(t *testing.T) {
	h := newHarness(t, "aaa bbb ccc\r\n", nil)
	require.NoError(t, h.run("-w", "7", "--crlf"))
	require.Equal(t, "aaa bbb\r\nccc\r\n", h.out.String())
}

func TestStripANSI(t *testing.T) {
	h := newHarness(t, "\x1b[31mred\x1b[0m apple\n", nil)
	require.NoError(t, h.run("--strip-ansi"))
	require.Equal(t, "red apple\n", h.out.String())
}

func TestRefill(t *testing.T) {
	h := newHarness(t, "aaa bbb\nccc ddd eee\n\n> fff\n> ggg hhh\n", nil)
	require.NoError(t, h.run("refill", "-w", "12"))
	require.Equal(t, "aaa bbb ccc\nddd eee\n\n> fff ggg\n> hhh\n", h.out.String())
}

func TestUnfill(t *testing.T) {
	h := newHarness(t, "> a\n> b\n\nc\nd", nil)
	require.NoError(t, h.run("unfill"))
	require.Equal(t, "a b\n\nc d", h.out.String())
}

func TestDedentAndIndent(t *testing.T) {
	h := newHarness(t, "    a\n      b\n", nil)
	require.NoError(t, h.run("dedent"))
	require.Equal(t, "a\n  b\n", h.out.String())

	h = newHarness(t, "a\n\nb\n", nil)
	require.NoError(t, h.run("indent", "--prefix", "> "))
	require.Equal(t, "> a\n>\n> b\n", h.out.String())
}

func TestColumns(t *testing.T) {
	h := newHarness(t, "foo bar baz\n", nil)
	require.NoError(t, h.run("columns", "-w", "11", "--algorithm", "first-fit", "--middle-gap=|"))
	require.Equal(t, "foo  |baz  \nbar  |     \n", h.out.String())

	h = newHarness(t, "foo\n", nil)
	err := h.run("columns", "--columns", "0")
	require.True(t, errdef.Is(err, errdef.CodeUsage), "got %v", err)
}

func TestInPlaceAndDiff(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte(sevenWords), 0o644))

	h := newHarness(t, "", nil)
	require.NoError(t, h.run("-w", "10", "--diff", path))
	require.Contains(t, h.out.String(), "-"+strings.TrimSuffix(sevenWords, "\n"))
	require.Contains(t, h.out.String(), "+aaa bbb")

	h = newHarness(t, "", nil)
	require.NoError(t, h.run("-w", "10", "-i", path))
	require.Equal(t, "rewrite "+path+"\n", h.out.String())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "aaa bbb\nccc ddd\neee fff\nggg\n", string(data))
}

func TestErrorsAndExitCodes(t *testing.T) {
	cases := []struct {
		name string
		args []string
		code errdef.Code
		exit int
	}{
		{"unknown flag", []string{"--bogus"}, errdef.CodeUsage, 2},
		{"in-place stdin", []string{"-i"}, errdef.CodeUsage, 2},
		{"bad assignment", []string{"--set", "novalue"}, errdef.CodeUsage, 2},
		{"dictionary without patterns", []string{"--splitter", "dictionary"}, errdef.CodeUsage, 2},
		{"bad width", []string{"--width", "wide"}, errdef.CodeConfig, 1},
		{"missing patterns", []string{"--patterns", "/nonexistent/hyph.pat.txt"}, errdef.CodeFilesystem, 1},
		{"bad color", []string{"--color", "sometimes"}, errdef.CodeUsage, 2},
		{"missing config", []string{"--config", "/nonexistent/config.toml"}, errdef.CodeFilesystem, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t, "text\n", nil)
			err := h.run(tc.args...)
			require.Error(t, err)
			require.True(t, errdef.Is(err, tc.code), "got %v", err)
			require.Equal(t, tc.exit, errdef.ExitCode(err))
		})
	}
}

func TestVersion(t *testing.T) {
	h := newHarness(t, "", nil)
	require.NoError(t, h.run("version"))
	require.Contains(t, h.out.String(), "textwrap dev")
	require.Contains(t, h.out.String(), "optimal-fit: on")
}

func TestByParagraph(t *testing.T) {
	var seen []string
	got := byParagraph("a\nb\n\n  \nc", func(p string) string {
		seen = append(seen, p)
		return strings.ToUpper(p)
	})
	require.Equal(t, "A\nB\n\n  \nC", got)
	require.Equal(t, []string{"a\nb\n", "c"}, seen)
}

func TestDirectoryArguments(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	for name, body := range map[string]string{
		"a.txt":                       "one\n",
		"b.md":                        "two\n",
		"c.go":                        "skipped\n",
		filepath.Join("sub", "d.txt"): "three\n",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}

	h := newHarness(t, "", nil)
	require.NoError(t, h.run(dir))
	require.Equal(t, "one\ntwo\n", h.out.String())

	h = newHarness(t, "", nil)
	require.NoError(t, h.run("-r", "--ext", "txt", dir))
	require.Equal(t, "one\nthree\n", h.out.String())

	h = newHarness(t, "stdin\n", nil)
	err := h.run(t.TempDir())
	require.True(t, errdef.Is(err, errdef.CodeUsage), "got %v", err)
}

func TestDiffColor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte(sevenWords), 0o644))

	h := newHarness(t, "", nil)
	require.NoError(t, h.run("-w", "10", "-d", "--color", "always", path))
	require.Contains(t, h.out.String(), "\x1b[")

	h = newHarness(t, "", nil)
	require.NoError(t, h.run("-w", "10", "-d", path))
	require.NotContains(t, h.out.String(), "\x1b[")
}

func TestVerboseLogsToStderr(t *testing.T) {
	h := newHarness(t, sevenWords, nil)
	require.NoError(t, h.run("--verbose", "-w", "10"))
	require.Equal(t, "aaa bbb\nccc ddd\neee fff\nggg\n", h.out.String())
	require.Contains(t, h.err.String(), "settings resolved")
	require.Contains(t, h.err.String(), "transformed")

	h = newHarness(t, sevenWords, nil)
	require.NoError(t, h.run("-w", "10"))
	require.Empty(t, h.err.String())
}
