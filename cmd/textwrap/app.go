package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/unkn0wn-root/textwrap/internal/config"
	"github.com/unkn0wn-root/textwrap/internal/filesvc"
	"github.com/unkn0wn-root/textwrap/internal/fillcmd"
	"github.com/unkn0wn-root/textwrap/internal/hyphen"
	"github.com/unkn0wn-root/textwrap/internal/settings"
	"github.com/unkn0wn-root/textwrap/internal/wrap"
)

const defaultWidth = 80

type app struct {
	stdin     io.Reader
	stdout    io.Writer
	stderr    io.Writer
	getenv    func(string) string
	termWidth func() int
	log       *zap.Logger
	f         flags
}

func newApp(stdin io.Reader, stdout, stderr io.Writer, getenv func(string) string) *app {
	return &app{
		stdin:     stdin,
		stdout:    stdout,
		stderr:    stderr,
		getenv:    getenv,
		termWidth: func() int { return defaultWidth },
		log:       zap.NewNop(),
	}
}

func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	return defaultWidth
}

func (a *app) setupLogger() {
	if !a.f.verbose {
		a.log = zap.NewNop()
		return
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(a.stderr),
		zap.DebugLevel,
	)
	a.log = zap.New(core)
}

/*
options resolves wrap.Options from four scopes, later ones winning:

	terminal width < config file < TEXTWRAP_* environment < flags and --set

Keys no handler understands are reported on stderr and otherwise
ignored.
*/
func (a *app) options(cmd *cobra.Command) (wrap.Options, error) {
	file, path, err := a.loadConfig()
	if err != nil {
		return wrap.Options{}, err
	}
	env := settings.FromEnv(a.getenv)
	cli, err := a.flagScope(cmd)
	if err != nil {
		return wrap.Options{}, err
	}
	base := map[string]string{settings.KeyWidth: strconv.Itoa(a.termWidth())}
	merged := settings.Merge(base, file, env, cli)
	a.log.Debug("settings resolved",
		zap.String("config", path),
		zap.Int("file_keys", len(file)),
		zap.Int("env_keys", len(env)),
		zap.Int("flag_keys", len(cli)),
	)

	opts := wrap.NewOptions(defaultWidth)
	var hy settings.Hyphenation
	left, err := settings.New(
		settings.LayoutHandler(&opts),
		settings.PenaltyHandler(&opts.Penalties),
		settings.HyphenationHandler(&hy),
	).ApplyAll(merged)
	if err != nil {
		return wrap.Options{}, err
	}
	a.warnUnknown(left)

	splitter, err := hy.Resolve(loadDictionary, config.PatternFile)
	if err != nil {
		return wrap.Options{}, err
	}
	opts.WordSplitter = splitter
	a.log.Debug("options",
		zap.Int("width", opts.Width),
		zap.Stringer("algorithm", opts.WrapAlgorithm),
		zap.Stringer("separator", opts.WordSeparator),
		zap.Stringer("splitter", opts.WordSplitter),
		zap.String("line_ending", opts.LineEnding.Name()),
	)
	return opts, nil
}

func (a *app) loadConfig() (map[string]string, string, error) {
	if a.f.configFile != "" {
		m, err := config.Load(a.f.configFile)
		return m, a.f.configFile, err
	}
	return config.LoadDefault()
}

func (a *app) warnUnknown(left map[string]string) {
	keys := make([]string, 0, len(left))
	for k := range left {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		fmt.Fprintf(a.stderr, "warning: ignoring unknown setting %q\n", k)
	}
}

// loadDictionary keeps a failed load from reaching wrap as a typed nil.
func loadDictionary(path, lang string) (wrap.Dictionary, error) {
	d, err := hyphen.Load(path, lang)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (a *app) run(cmd *cobra.Command, args []string, t fillcmd.Transform) error {
	files, err := filesvc.Expand(args, a.f.exts, a.f.recursive)
	if err != nil {
		return err
	}
	if len(args) > 0 && len(files) == 0 {
		return usageErr("no matching files in %s", strings.Join(args, ", "))
	}
	color, err := a.color()
	if err != nil {
		return err
	}
	a.log.Debug("inputs", zap.Strings("files", files))
	return fillcmd.Run(cmd.Context(), fillcmd.Opt{
		Files:     files,
		Transform: t,
		InPlace:   a.f.inPlace,
		Diff:      a.f.diff,
		Color:     color,
		DryRun:    a.f.dryRun,
		StripANSI: a.f.stripANSI,
		Jobs:      a.f.jobs,
		In:        a.stdin,
		Out:       a.stdout,
		Log:       a.log,
	})
}

// color resolves --color. "auto" colors only a terminal stdout and
// honors NO_COLOR.
func (a *app) color() (bool, error) {
	switch strings.ToLower(strings.TrimSpace(a.f.color)) {
	case "", "auto":
		if a.getenv("NO_COLOR") != "" {
			return false, nil
		}
		f, ok := a.stdout.(*os.File)
		return ok && term.IsTerminal(int(f.Fd())), nil
	case "always":
		return true, nil
	case "never":
		return false, nil
	default:
		return false, usageErr("--color must be auto, always or never, got %q", a.f.color)
	}
}
