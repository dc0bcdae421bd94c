package fillcmd

import (
	"io"
	"runtime"
	"strings"

	"go.uber.org/zap"
)

// Transform rewrites the text of one input.
type Transform func(string) string

// Opt describes one invocation over a set of inputs.
// Fields are plain values so callers can map flags directly.
type Opt struct {
	Files     []string
	Transform Transform
	InPlace   bool
	Diff      bool
	Color     bool
	DryRun    bool
	StripANSI bool
	Jobs      int
	In        io.Reader
	Out       io.Writer
	Log       *zap.Logger
}

func withDefaults(opt Opt) Opt {
	files := opt.Files[:0:0]
	for _, f := range opt.Files {
		if strings.TrimSpace(f) != "" {
			files = append(files, f)
		}
	}
	opt.Files = files
	if opt.Jobs <= 0 {
		opt.Jobs = runtime.GOMAXPROCS(0)
	}
	if opt.Log == nil {
		opt.Log = zap.NewNop()
	}
	if opt.Transform == nil {
		opt.Transform = func(s string) string { return s }
	}
	return opt
}
