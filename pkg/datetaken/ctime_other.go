//go:build !linux && !darwin && !windows

package datetaken

import (
	"io/fs"
	"time"
)

// Fallback for platforms (and fs.FS implementations) without stat support:
// treat the modification time as the creation time, which makes the resolver
// degrade to plain mtime.
func creationTime(info fs.FileInfo) time.Time {
	return info.ModTime()
}
