package datetaken

import (
	"io"
	"time"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/mknote"
)

// sourceLayout is the fixed format cameras write DateTimeOriginal in,
// e.g. "2015:02:07 12:10:00". Timestamps carry no timezone and are
// interpreted as local time.
const sourceLayout = "2006:01:02 15:04:05"

func init() {
	exif.RegisterParsers(mknote.All...)
}

// ExifExtractor reads DateTimeOriginal (tag 0x9003, 36867, in the Exif
// sub-IFD) with goexif. It is the default extractor.
type ExifExtractor struct{}

func (ExifExtractor) DateTaken(path string, r io.Reader) (time.Time, bool, error) {
	x, err := exif.Decode(r)
	if err != nil {
		// No parseable EXIF block; a normal state for JPEG/TIFF files.
		return time.Time{}, false, nil
	}

	tag, err := x.Get(exif.DateTimeOriginal)
	if err != nil {
		return time.Time{}, false, nil
	}
	s, err := tag.StringVal()
	if err != nil {
		return time.Time{}, false, nil
	}

	tm, err := time.ParseInLocation(sourceLayout, s, time.Local)
	if err != nil {
		return time.Time{}, false, nil
	}
	return tm, true, nil
}
