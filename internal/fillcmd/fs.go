package fillcmd

import (
	"io"
	"io/fs"
	"os"
)

type TempFile interface {
	io.Writer
	Name() string
	Chmod(fs.FileMode) error
	Sync() error
	Close() error
}

type FS interface {
	Stat(string) (fs.FileInfo, error)
	ReadFile(string) ([]byte, error)
	CreateTemp(string, string) (TempFile, error)
	Rename(string, string) error
	Remove(string) error
}

type OSFS struct{}

func (OSFS) Stat(p string) (fs.FileInfo, error)         { return os.Stat(p) }
func (OSFS) ReadFile(p string) ([]byte, error)          { return os.ReadFile(p) }
func (OSFS) CreateTemp(d, pat string) (TempFile, error) { return os.CreateTemp(d, pat) }
func (OSFS) Rename(a, b string) error                   { return os.Rename(a, b) }
func (OSFS) Remove(p string) error                      { return os.Remove(p) }
