//go:build linux

package datetaken

import (
	"syscall"
	"testing"
	"testing/fstest"
	"time"

	"github.com/quidome/datetaken-go/internal/testutil"
)

func statWithCtime(created time.Time) *syscall.Stat_t {
	return &syscall.Stat_t{Ctim: syscall.NsecToTimespec(created.UnixNano())}
}

func TestCreationTime_FromStat(t *testing.T) {
	created := time.Date(2019, 5, 1, 8, 0, 0, 0, time.Local)

	fsys := fstest.MapFS{
		"a.png": &fstest.MapFile{Data: testutil.PNGData(), Sys: statWithCtime(created)},
	}

	info, err := fsys.Stat("a.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := creationTime(info); !got.Equal(created) {
		t.Fatalf("unexpected creation time\n got: %v\nwant: %v", got, created)
	}
}

func TestResolve_CreationBeforeModification(t *testing.T) {
	created := time.Date(2019, 5, 1, 8, 0, 0, 0, time.Local)
	modified := time.Date(2019, 6, 1, 8, 0, 0, 0, time.Local)

	fsys := fstest.MapFS{
		"photo.png": &fstest.MapFile{
			Data:    testutil.PNGData(),
			ModTime: modified,
			Sys:     statWithCtime(created),
		},
	}

	res, err := Resolve(fsys, "photo.png", Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Source != SourceCreated {
		t.Fatalf("expected created source, got %q", res.Source)
	}
	if res.Name != "2019-05-01 08.00.00" {
		t.Fatalf("unexpected name: %q", res.Name)
	}
}

func TestResolve_ModificationBeforeCreation(t *testing.T) {
	created := time.Date(2020, 3, 1, 9, 0, 0, 0, time.Local)
	modified := time.Date(2019, 6, 1, 8, 0, 0, 0, time.Local)

	fsys := fstest.MapFS{
		"photo.png": &fstest.MapFile{
			Data:    testutil.PNGData(),
			ModTime: modified,
			Sys:     statWithCtime(created),
		},
	}

	res, err := Resolve(fsys, "photo.png", Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Source != SourceModified {
		t.Fatalf("expected modified source, got %q", res.Source)
	}
}
