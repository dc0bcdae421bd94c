package fillcmd

import (
	"context"
	"io"
	"os"
	"slices"

	"github.com/unkn0wn-root/textwrap/internal/errdef"
)

// Command runs a transform over files with injectable dependencies.
type Command struct {
	fs  FS
	in  io.Reader
	out io.Writer
}

func New() *Command {
	return &Command{
		fs:  OSFS{},
		in:  os.Stdin,
		out: os.Stdout,
	}
}

func Run(ctx context.Context, o Opt) error {
	return New().Run(ctx, o)
}

// Run reads every input, applies o.Transform and writes the results to
// the output in input order, back to the files (InPlace) or as a
// unified diff (Diff). No files means standard input; "-" names it
// explicitly.
func (c *Command) Run(ctx context.Context, o Opt) error {
	o = withDefaults(o)
	if o.In == nil {
		o.In = c.in
	}
	if o.Out == nil {
		o.Out = c.out
	}
	if len(o.Files) == 0 {
		o.Files = []string{stdinName}
	}
	if err := validate(o); err != nil {
		return err
	}

	r := runner{fs: c.fs, o: o}
	return r.run(ctx)
}

func validate(o Opt) error {
	if o.InPlace && o.Diff {
		return errdef.New(errdef.CodeUsage, "--in-place and --diff are mutually exclusive")
	}
	stdin := 0
	for _, f := range o.Files {
		if f == stdinName {
			stdin++
		}
	}
	switch {
	case stdin > 1:
		return errdef.New(errdef.CodeUsage, "standard input given more than once")
	case stdin > 0 && o.InPlace:
		return errdef.New(errdef.CodeUsage, "cannot edit standard input in place")
	case o.DryRun && !o.InPlace:
		return errdef.New(errdef.CodeUsage, "--dry-run only applies to --in-place")
	}
	if i := firstDuplicate(o.Files); o.InPlace && i >= 0 {
		return errdef.New(errdef.CodeUsage, "%s given more than once", o.Files[i])
	}
	return nil
}

func firstDuplicate(files []string) int {
	for i := 1; i < len(files); i++ {
		if slices.Contains(files[:i], files[i]) {
			return i
		}
	}
	return -1
}
