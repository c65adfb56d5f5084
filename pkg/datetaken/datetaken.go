// Package datetaken resolves the most trustworthy timestamp for an image file.
//
// Three candidates are considered: the EXIF DateTimeOriginal tag, the
// filesystem creation time and the filesystem modification time. Creation
// time resets when a file is copied and modification time moves forward when
// a file is saved, so the EXIF date is preferred when it is present and
// plausible (earlier than the creation time, which bounds out clearly wrong
// metadata); otherwise the earlier of the two filesystem timestamps wins.
package datetaken

import (
	"fmt"
	"io"
	"io/fs"
	"time"

	"github.com/quidome/datetaken-go/pkg/datefmt"
	"github.com/quidome/datetaken-go/pkg/sniff"
)

// Source describes which candidate timestamp was chosen.
type Source string

const (
	SourceTaken    Source = "taken"
	SourceCreated  Source = "created"
	SourceModified Source = "modified"
)

// Result is a resolved timestamp together with its formatted name.
type Result struct {
	Time   time.Time
	Source Source

	// Name is Time rendered with the active pattern, ready to become a
	// filename (extension excluded).
	Name string
}

// MetadataExtractor extracts the date-taken timestamp from a media stream.
//
// Implementations return (t, true, nil) when a timestamp is found. A missing
// timestamp is (time.Time{}, false, nil); it is an expected state, not a
// failure. Errors are treated as best-effort failures by Resolve.
type MetadataExtractor interface {
	DateTaken(path string, r io.Reader) (time.Time, bool, error)
}

// Fallback chains extractors, returning the first timestamp found.
//
// Extractors after the first must be able to work from the path alone, since
// the reader has already been consumed.
type Fallback []MetadataExtractor

func (f Fallback) DateTaken(path string, r io.Reader) (time.Time, bool, error) {
	for _, e := range f {
		if t, ok, err := e.DateTaken(path, r); err == nil && ok {
			return t, true, nil
		}
		r = nil
	}
	return time.Time{}, false, nil
}

// Options configures Resolve.
type Options struct {
	// Pattern renders the chosen timestamp; datefmt.Default if empty.
	Pattern string

	// Metadata optionally extracts the date-taken timestamp.
	//
	// If nil, the goexif-based ExifExtractor is used.
	Metadata MetadataExtractor
}

// Resolve picks the best timestamp for path and formats it.
//
// Only JPEG and TIFF content is asked for EXIF metadata; everything else
// falls straight through to the filesystem timestamps.
func Resolve(fsys fs.FS, path string, opts Options) (Result, error) {
	info, err := fs.Stat(fsys, path)
	if err != nil {
		return Result{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return Result{}, fs.ErrInvalid
	}

	created := creationTime(info)
	modified := info.ModTime()

	var taken time.Time
	var haveTaken bool

	typ, err := sniff.DetectFile(fsys, path)
	if err != nil {
		return Result{}, fmt.Errorf("sniff %s: %w", path, err)
	}
	if typ.SupportsExif() {
		extractor := opts.Metadata
		if extractor == nil {
			extractor = ExifExtractor{}
		}

		f, openErr := fsys.Open(path)
		if openErr != nil {
			return Result{}, fmt.Errorf("open %s: %w", path, openErr)
		}
		t, ok, metaErr := extractor.DateTaken(path, f)
		_ = f.Close()
		if metaErr == nil && ok {
			taken, haveTaken = t, true
		}
	}

	chosen, source := Choose(taken, haveTaken, created, modified)

	pattern := opts.Pattern
	if pattern == "" {
		pattern = datefmt.Default
	}
	name, err := datefmt.Format(chosen, pattern)
	if err != nil {
		return Result{}, err
	}

	return Result{Time: chosen, Source: source, Name: name}, nil
}

// Choose applies the resolution policy, in this exact order:
//
//  1. date taken, if present and strictly earlier than the creation time
//  2. creation time, if strictly earlier than the modification time
//  3. modification time
func Choose(taken time.Time, haveTaken bool, created, modified time.Time) (time.Time, Source) {
	switch {
	case haveTaken && taken.Before(created):
		return taken, SourceTaken
	case created.Before(modified):
		return created, SourceCreated
	default:
		return modified, SourceModified
	}
}
