package filesvc

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/unkn0wn-root/textwrap/internal/errdef"
)

// DefaultExts are the extensions picked up from directories when the
// caller names none.
var DefaultExts = []string{".txt", ".text", ".md"}

// ListTextFiles returns files under root whose extension is in exts,
// sorted by path. Hidden directories below root are skipped when
// recursing.
func ListTextFiles(root string, exts []string, recursive bool) ([]string, error) {
	include := matcher(exts)
	var paths []string

	if recursive {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if strings.HasPrefix(d.Name(), ".") && path != root {
					return filepath.SkipDir
				}
				return nil
			}
			if d.Type().IsRegular() && include(d.Name()) {
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, errdef.Wrap(errdef.CodeFilesystem, err, "walk %s", root)
		}
	} else {
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil, errdef.Wrap(errdef.CodeFilesystem, err, "read dir %s", root)
		}
		for _, e := range entries {
			if e.Type().IsRegular() && include(e.Name()) {
				paths = append(paths, filepath.Join(root, e.Name()))
			}
		}
	}

	slices.Sort(paths)
	return paths, nil
}

// Expand replaces every directory in args with the text files it
// holds. Other arguments, "-" included, pass through unchanged and
// keep their position.
func Expand(args []string, exts []string, recursive bool) ([]string, error) {
	out := make([]string, 0, len(args))
	for _, a := range args {
		info, err := os.Stat(a)
		if err != nil || !info.IsDir() {
			out = append(out, a)
			continue
		}
		files, err := ListTextFiles(a, exts, recursive)
		if err != nil {
			return nil, err
		}
		out = append(out, files...)
	}
	return out, nil
}

func matcher(exts []string) func(string) bool {
	if len(exts) == 0 {
		exts = DefaultExts
	}
	set := make(map[string]struct{}, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		set[e] = struct{}{}
	}
	return func(name string) bool {
		_, ok := set[strings.ToLower(filepath.Ext(name))]
		return ok
	}
}
