//go:build linux

package datetaken

import (
	"io/fs"
	"syscall"
	"time"
)

// Linux exposes no birth time through os.Stat; st_ctime is the closest bound
// on when the file appeared on this filesystem.
func creationTime(info fs.FileInfo) time.Time {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(st.Ctim.Unix())
	}
	return info.ModTime()
}
