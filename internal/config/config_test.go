package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/unkn0wn-root/textwrap/internal/errdef"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDirOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvDir, dir)
	require.Equal(t, dir, Dir())
}

func TestDirDefault(t *testing.T) {
	t.Setenv(EnvDir, "")
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	var want string
	switch runtime.GOOS {
	case "darwin":
		want = filepath.Join(home, "Library", "Application Support", "textwrap")
	case "windows":
		want = filepath.Join(home, "AppData", "Roaming", "textwrap")
	default:
		want = filepath.Join(home, ".config", "textwrap")
	}
	require.Equal(t, want, Dir())
}

func TestPatternFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvDir, dir)
	t.Setenv(EnvPatternsDir, "")
	require.Equal(t, filepath.Join(dir, "hyphenation", "hyph-en-gb.pat.txt"), PatternFile("en_GB"))

	other := t.TempDir()
	t.Setenv(EnvPatternsDir, other)
	require.Equal(t, filepath.Join(other, "hyph-de.pat.txt"), PatternFile(" DE "))
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.toml", `
width = 72
initial-indent = "* "
break-words = false
wrap-algorithm = "first-fit"

[penalties]
nline = 500
short-last-line-fraction = 2.5
`)
	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, map[string]string{
		"width":                              "72",
		"initial-indent":                     "* ",
		"break-words":                        "false",
		"wrap-algorithm":                     "first-fit",
		"penalties.nline":                    "500",
		"penalties.short-last-line-fraction": "2.5",
	}, got)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yml", `
Width: 60
subsequent-indent: "  "
penalties:
  hyphen: 100
empty:
`)
	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, map[string]string{
		"width":             "60",
		"subsequent-indent": "  ",
		"penalties.hyphen":  "100",
		"empty":             "",
	}, got)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.toml"))
	require.True(t, errdef.Is(err, errdef.CodeFilesystem), "got %v", err)

	_, err = Load(writeFile(t, dir, "config.ini", "width=1"))
	require.True(t, errdef.Is(err, errdef.CodeConfig), "got %v", err)

	_, err = Load(writeFile(t, dir, "broken.toml", "width = = 3"))
	require.True(t, errdef.Is(err, errdef.CodeConfig), "got %v", err)

	_, err = Load(writeFile(t, dir, "list.yaml", "width: [1, 2]"))
	require.True(t, errdef.Is(err, errdef.CodeConfig), "got %v", err)
}

func TestLoadDefault(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvDir, dir)

	got, path, err := LoadDefault()
	require.NoError(t, err)
	require.Empty(t, path)
	require.Nil(t, got)

	writeFile(t, dir, "config.yaml", "width: 40\n")
	got, path, err = LoadDefault()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "config.yaml"), path)
	require.Equal(t, map[string]string{"width": "40"}, got)

	writeFile(t, dir, "config.toml", "width = 50\n")
	got, path, err = LoadDefault()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "config.toml"), path)
	require.Equal(t, "50", got["width"])
}
