package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/unkn0wn-root/textwrap/internal/settings"
	"github.com/unkn0wn-root/textwrap/internal/wrap"
)

type flags struct {
	width            string
	initialIndent    string
	subsequentIndent string
	indent           string
	noBreakWords     bool
	separator        string
	splitter         string
	patterns         string
	lang             string
	algorithm        string
	crlf             bool
	configFile       string
	set              []string
	stripANSI        bool
	inPlace          bool
	diff             bool
	color            string
	dryRun           bool
	jobs             int
	recursive        bool
	exts             []string
	verbose          bool

	prefix    string
	columns   int
	leftGap   string
	middleGap string
	rightGap  string
}

func (a *app) bindPersistent(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVarP(&a.f.width, "width", "w", "", "line width in columns, or \"max\" to never wrap (default: terminal width or 80)")
	pf.StringVar(&a.f.initialIndent, "initial-indent", "", "prefix for the first line of each paragraph")
	pf.StringVar(&a.f.subsequentIndent, "subsequent-indent", "", "prefix for the remaining lines")
	pf.StringVar(&a.f.indent, "indent", "", "prefix for every line")
	pf.BoolVar(&a.f.noBreakWords, "no-break-words", false, "let words longer than the width overflow")
	pf.StringVar(&a.f.separator, "separator", "", "word separator: ascii or unicode")
	pf.StringVar(&a.f.splitter, "splitter", "", "word splitter: none, hyphen or dictionary")
	pf.StringVar(&a.f.patterns, "patterns", "", "TeX hyphenation pattern file for the dictionary splitter")
	pf.StringVar(&a.f.lang, "lang", "", "hyphenation language, e.g. en-US")
	pf.StringVar(&a.f.algorithm, "algorithm", "", "wrap algorithm: first-fit or optimal-fit")
	pf.BoolVar(&a.f.crlf, "crlf", false, "split and join lines with \\r\\n")
	pf.StringVar(&a.f.configFile, "config", "", "config file (default: config.toml or config.yaml in the config dir)")
	pf.StringArrayVar(&a.f.set, "set", nil, "override a setting, key=value (repeatable)")
	pf.BoolVar(&a.f.stripANSI, "strip-ansi", false, "remove terminal escape sequences before wrapping")
	pf.BoolVarP(&a.f.inPlace, "in-place", "i", false, "rewrite files in place")
	pf.BoolVarP(&a.f.diff, "diff", "d", false, "print a unified diff instead of the result")
	pf.StringVar(&a.f.color, "color", "auto", "color --diff output: auto, always or never")
	pf.BoolVar(&a.f.dryRun, "dry-run", false, "with --in-place, report files without writing them")
	pf.IntVarP(&a.f.jobs, "jobs", "j", 0, "files processed concurrently (default: GOMAXPROCS)")
	pf.BoolVarP(&a.f.recursive, "recursive", "r", false, "descend into subdirectories of directory arguments")
	pf.StringSliceVar(&a.f.exts, "ext", nil, "extensions taken from directory arguments (default .txt,.text,.md)")
	pf.BoolVar(&a.f.verbose, "verbose", false, "log debug output to stderr")
}

// flagScope turns the flags given on the command line, and --set, into
// setting keys. Flags left at their defaults do not take part, so they
// never shadow the config file or the environment.
func (a *app) flagScope(cmd *cobra.Command) (map[string]string, error) {
	fs := cmd.Flags()
	out := make(map[string]string)
	str := map[string]struct {
		key string
		val *string
	}{
		"width":             {settings.KeyWidth, &a.f.width},
		"initial-indent":    {settings.KeyInitialIndent, &a.f.initialIndent},
		"subsequent-indent": {settings.KeySubsequentIndent, &a.f.subsequentIndent},
		"indent":            {settings.KeyIndent, &a.f.indent},
		"separator":         {settings.KeyWordSeparator, &a.f.separator},
		"splitter":          {settings.KeyWordSplitter, &a.f.splitter},
		"patterns":          {settings.KeyPatterns, &a.f.patterns},
		"lang":              {settings.KeyLanguage, &a.f.lang},
		"algorithm":         {settings.KeyWrapAlgorithm, &a.f.algorithm},
	}
	for name, s := range str {
		if fs.Changed(name) {
			out[s.key] = *s.val
		}
	}
	if fs.Changed("no-break-words") {
		out[settings.KeyBreakWords] = strconv.FormatBool(!a.f.noBreakWords)
	}
	if fs.Changed("crlf") {
		e := wrap.LF
		if a.f.crlf {
			e = wrap.CRLF
		}
		out[settings.KeyLineEnding] = e.Name()
	}

	set, err := settings.ParseAssignments(a.f.set)
	if err != nil {
		return nil, err
	}
	return settings.Merge(out, set), nil
}
