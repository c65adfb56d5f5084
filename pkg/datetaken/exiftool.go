package datetaken

import (
	"io"
	"path/filepath"
	"sync"
	"time"

	exiftool "github.com/barasher/go-exiftool"
)

// ToolExtractor reads DateTimeOriginal through an external exiftool process,
// covering files goexif cannot parse. The process is started lazily on first
// use and kept alive across files; callers must Close it when done.
//
// It ignores the reader and works from the path, joined to the root the
// filesystem paths are relative to, so it can sit behind ExifExtractor in a
// Fallback chain.
type ToolExtractor struct {
	root string

	mu sync.Mutex
	et *exiftool.Exiftool
}

func NewToolExtractor(root string) *ToolExtractor {
	return &ToolExtractor{root: root}
}

// Close stops the exiftool process if one was started.
func (t *ToolExtractor) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.et != nil {
		_ = t.et.Close()
		t.et = nil
	}
}

func (t *ToolExtractor) tool() (*exiftool.Exiftool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.et != nil {
		return t.et, nil
	}

	et, err := exiftool.NewExiftool()
	if err != nil {
		return nil, err
	}
	t.et = et
	return t.et, nil
}

func (t *ToolExtractor) DateTaken(path string, _ io.Reader) (time.Time, bool, error) {
	et, err := t.tool()
	if err != nil {
		// exiftool not installed or failed to start.
		return time.Time{}, false, err
	}

	metas := et.ExtractMetadata(filepath.Join(t.root, filepath.FromSlash(path)))
	for _, meta := range metas {
		if meta.Err != nil {
			continue
		}
		s, err := meta.GetString("DateTimeOriginal")
		if err != nil {
			continue
		}
		if tm, perr := time.ParseInLocation(sourceLayout, s, time.Local); perr == nil {
			return tm, true, nil
		}
	}

	return time.Time{}, false, nil
}
