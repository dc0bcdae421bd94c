package fillcmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/aymanbagabas/go-udiff"
	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/unkn0wn-root/textwrap/internal/errdef"
)

type result struct {
	path string
	mode fs.FileMode
	in   string
	out  string
}

func (r result) changed() bool { return r.in != r.out }

type runner struct {
	fs FS
	o  Opt
}

func (r *runner) run(ctx context.Context) error {
	results := make([]result, len(r.o.Files))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(r.o.Jobs)
	for i, path := range r.o.Files {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := r.process(path)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	for _, res := range results {
		if err := r.emit(res); err != nil {
			return err
		}
	}
	return nil
}

func (r *runner) process(path string) (result, error) {
	res := result{path: path}
	var data []byte
	if path == stdinName {
		b, err := io.ReadAll(r.o.In)
		if err != nil {
			return res, errdef.Wrap(errdef.CodeFilesystem, err, "read standard input")
		}
		data = b
	} else {
		info, err := r.fs.Stat(path)
		if err != nil {
			return res, errdef.Wrap(errdef.CodeFilesystem, err, "stat %s", path)
		}
		if info.IsDir() {
			return res, errdef.New(errdef.CodeFilesystem, "%s is a directory", path)
		}
		res.mode = info.Mode().Perm()
		if data, err = r.fs.ReadFile(path); err != nil {
			return res, errdef.Wrap(errdef.CodeFilesystem, err, "read %s", path)
		}
	}

	res.in = string(data)
	src := res.in
	if r.o.StripANSI {
		src = ansi.Strip(src)
	}
	res.out = r.o.Transform(src)
	r.o.Log.Debug("transformed",
		zap.String("path", path),
		zap.Int("bytes_in", len(res.in)),
		zap.Int("bytes_out", len(res.out)),
		zap.Bool("changed", res.changed()),
	)
	return res, nil
}

func (r *runner) emit(res result) error {
	switch {
	case r.o.InPlace:
		return r.rewrite(res)
	case r.o.Diff:
		name := res.path
		if name == stdinName {
			name = "stdin"
		}
		d := udiff.Unified(diffOld+name, diffNew+name, res.in, res.out)
		if r.o.Color {
			d = newDiffStyles(r.o.Out).colorize(d)
		}
		return r.write(res.path, d)
	default:
		return r.write(res.path, res.out)
	}
}

func (r *runner) rewrite(res result) error {
	if !res.changed() {
		r.o.Log.Debug("unchanged, not rewriting", zap.String("path", res.path))
		return nil
	}
	if !r.o.DryRun {
		if err := r.writeAtomic(res.path, res.mode, res.out); err != nil {
			return errdef.Wrap(errdef.CodeFilesystem, err, "write %s", res.path)
		}
	}
	return r.report(actionRewrite, res.path)
}

func (r *runner) write(path, data string) error {
	if data == "" {
		return nil
	}
	if _, err := io.WriteString(r.o.Out, data); err != nil {
		return errdef.Wrap(errdef.CodeFilesystem, err, "write output for %s", path)
	}
	return nil
}

// writeAtomic replaces p through a temporary file in the same
// directory so readers never observe a partial write.
func (r *runner) writeAtomic(p string, m fs.FileMode, data string) (err error) {
	f, err := r.fs.CreateTemp(filepath.Dir(p), tempPrefix)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		_ = f.Close()
		if err != nil {
			_ = r.fs.Remove(tmp)
		}
	}()
	if err = f.Chmod(m); err != nil {
		return err
	}
	if _, err = io.WriteString(f, data); err != nil {
		return err
	}
	if err = f.Sync(); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	if err = r.fs.Rename(tmp, p); err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrExist) {
		return err
	}
	if err = r.fs.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return r.fs.Rename(tmp, p)
}

func (r *runner) report(act, path string) error {
	if r.o.Out == nil || act == "" {
		return nil
	}
	prefix := ""
	if r.o.DryRun {
		prefix = "dry-run: "
	}
	if _, err := fmt.Fprintf(r.o.Out, "%s%s %s\n", prefix, act, path); err != nil {
		return errdef.Wrap(errdef.CodeFilesystem, err, "report %s %s", act, path)
	}
	return nil
}
