package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	patternsDirName = "hyphenation"
	EnvPatternsDir  = "TEXTWRAP_PATTERNS_DIR"
)

// PatternsDir returns the folder searched for hyphenation pattern files.
func PatternsDir() string {
	if override := os.Getenv(EnvPatternsDir); override != "" {
		return override
	}
	return filepath.Join(Dir(), patternsDirName)
}

// PatternFile returns the conventional hyph-utf8 file name for lang
// inside PatternsDir, e.g. "en-GB" -> hyph-en-gb.pat.txt.
func PatternFile(lang string) string {
	name := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(lang), "_", "-"))
	return filepath.Join(PatternsDir(), "hyph-"+name+".pat.txt")
}
