// Package rename performs collision-safe in-place renames.
package rename

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File is an immutable view of one file on disk.
//
// A successful rename returns a fresh File for the new location; stale copies
// keep describing the old one, so there is no window where the fields
// disagree with each other.
type File struct {
	Path string
	Dir  string
	Base string // name without extension
	Ext  string // extension including the dot, may be empty
}

// NewFile splits path into its directory, base name and extension.
func NewFile(path string) File {
	name := filepath.Base(path)
	ext := filepath.Ext(name)
	return File{
		Path: path,
		Dir:  filepath.Dir(path),
		Base: strings.TrimSuffix(name, ext),
		Ext:  ext,
	}
}

// Name returns the file name with its extension.
func (f File) Name() string {
	return f.Base + f.Ext
}

// Options configures an Engine.
type Options struct {
	// DryRun previews renames without touching the filesystem.
	DryRun bool

	// Notify, if set, receives the old and new file name after every rename.
	Notify func(oldName, newName string)
}

// Engine renames files within their directory, disambiguating taken names
// with a " (N)" counter suffix.
type Engine struct {
	opts Options

	// Names a dry run would have taken; without this, two files resolving to
	// the same name would both preview as the undisambiguated target.
	claimed map[string]bool
}

func New(opts Options) *Engine {
	return &Engine{
		opts:    opts,
		claimed: make(map[string]bool),
	}
}

// Rename moves f to <dir>/<base><ext>, keeping the original extension.
//
// Renaming a file to its current base name is a no-op: no filesystem call,
// no notice. While the target name is taken, " (1)", " (2)", ... are
// appended until a free name is found; the filesystem is probed fresh for
// every candidate, since earlier renames in the same run change which names
// exist. A taken name is never an error; only genuine filesystem failures
// are returned, wrapping both the source and the attempted target.
func (e *Engine) Rename(f File, base string) (File, error) {
	if base == "" {
		return f, fmt.Errorf("rename %s: empty target name", f.Path)
	}
	if base == f.Base {
		return f, nil
	}

	for n := 0; ; n++ {
		candidate := base
		if n > 0 {
			candidate = fmt.Sprintf("%s (%d)", base, n)
		}
		target := filepath.Join(f.Dir, candidate+f.Ext)

		if e.opts.DryRun && e.claimed[target] {
			continue
		}
		if _, err := os.Lstat(target); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return f, fmt.Errorf("stat %s: %w", target, err)
		}

		if !e.opts.DryRun {
			if err := os.Rename(f.Path, target); err != nil {
				if os.IsExist(err) {
					// Lost a race for this name; keep probing.
					continue
				}
				return f, fmt.Errorf("rename %s -> %s: %w", f.Path, target, err)
			}
		}
		e.claimed[target] = true

		if e.opts.Notify != nil {
			e.opts.Notify(f.Name(), candidate+f.Ext)
		}
		return NewFile(target), nil
	}
}
