// Package scan enumerates image files in a directory tree.
//
// Files are classified by content signature, not extension, so renamed or
// extension-less images are still found.
package scan

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/maruel/natural"

	"github.com/quidome/datetaken-go/pkg/sniff"
)

type Options struct {
	// MaxDepth limits recursion below root: 0 means the root level only,
	// -1 means unlimited.
	MaxDepth int
}

func DefaultOptions() Options {
	return Options{MaxDepth: -1}
}

// Record describes one discovered image file.
type Record struct {
	Path    string
	Type    sniff.Type
	Size    int64
	ModTime time.Time
}

// Scan returns the paths of all image files under root.
func Scan(fsys fs.FS, root string, opts Options) ([]string, error) {
	records, err := ScanRecords(fsys, root, opts)
	if err != nil {
		return nil, err
	}

	matches := make([]string, 0, len(records))
	for _, r := range records {
		matches = append(matches, r.Path)
	}
	return matches, nil
}

// ScanRecords returns a Record for every image file under root.
//
// Results are in natural order (IMG_2 before IMG_10), which fixes the
// processing order for the rest of the pipeline.
func ScanRecords(fsys fs.FS, root string, opts Options) ([]Record, error) {
	if opts.MaxDepth < -1 {
		return nil, fs.ErrInvalid
	}

	var matches []Record

	err := fs.WalkDir(fsys, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if opts.MaxDepth >= 0 {
				rel, relErr := filepath.Rel(root, path)
				if relErr != nil {
					return relErr
				}
				if rel == "." {
					return nil
				}
				if depth(rel) > opts.MaxDepth {
					return fs.SkipDir
				}
			}
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		if rel == "." {
			return nil
		}

		if opts.MaxDepth >= 0 && depth(rel) > opts.MaxDepth {
			return nil
		}

		typ, sniffErr := sniff.DetectFile(fsys, path)
		if sniffErr != nil {
			return sniffErr
		}
		if !typ.IsImage() {
			return nil
		}

		info, infoErr := d.Info()
		if infoErr != nil {
			return infoErr
		}

		matches = append(matches, Record{
			Path:    filepath.ToSlash(rel),
			Type:    typ,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(matches, func(i, j int) bool {
		return natural.Less(matches[i].Path, matches[j].Path)
	})
	return matches, nil
}

func depth(rel string) int {
	rel = filepath.Clean(rel)
	if rel == "." {
		return 0
	}
	return strings.Count(filepath.ToSlash(rel), "/")
}
