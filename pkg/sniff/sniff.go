// Package sniff classifies image files by content signature.
//
// Classification never looks at the file extension; only the leading bytes
// decide, so a misnamed photo is still recognized.
package sniff

import (
	"bytes"
	"io"
	"io/fs"
)

// Type is a detected image format.
type Type string

const (
	JPEG Type = "jpeg"
	PNG  Type = "png"
	GIF  Type = "gif"
	TIFF Type = "tiff"
	BMP  Type = "bmp"
	WebP Type = "webp"

	// Unknown means the content matched no known image signature.
	Unknown Type = ""
)

// IsImage reports whether t is a recognized image format.
func (t Type) IsImage() bool {
	return t != Unknown
}

// SupportsExif reports whether the format can carry an EXIF block.
// Only JPEG and TIFF do.
func (t Type) SupportsExif() bool {
	return t == JPEG || t == TIFF
}

// headerLen covers the longest signature we check (RIFF....WEBP).
const headerLen = 12

// Detect reads the first bytes from r and classifies them.
//
// Content shorter than a signature is simply Unknown, not an error; only a
// genuine read failure is reported.
func Detect(r io.Reader) (Type, error) {
	header := make([]byte, headerLen)
	n, err := io.ReadFull(r, header)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return Unknown, err
	}
	header = header[:n]

	switch {
	case bytes.HasPrefix(header, []byte{0xff, 0xd8, 0xff}):
		return JPEG, nil
	case bytes.HasPrefix(header, []byte("\x89PNG\r\n\x1a\n")):
		return PNG, nil
	case bytes.HasPrefix(header, []byte("GIF87a")), bytes.HasPrefix(header, []byte("GIF89a")):
		return GIF, nil
	case bytes.HasPrefix(header, []byte("II*\x00")), bytes.HasPrefix(header, []byte("MM\x00*")):
		return TIFF, nil
	case bytes.HasPrefix(header, []byte("BM")):
		return BMP, nil
	case len(header) >= 12 && bytes.Equal(header[0:4], []byte("RIFF")) && bytes.Equal(header[8:12], []byte("WEBP")):
		return WebP, nil
	}

	return Unknown, nil
}

// DetectFile opens path in fsys and classifies its content.
func DetectFile(fsys fs.FS, path string) (Type, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return Unknown, err
	}
	defer f.Close()

	return Detect(f)
}
