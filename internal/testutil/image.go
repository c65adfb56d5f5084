package testutil

import (
	"bytes"
	"encoding/binary"
	"time"
)

// PNGData returns bytes that sniff as a PNG image.
func PNGData() []byte {
	return []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
}

// JPEGNoExifData returns bytes that sniff as JPEG but carry no EXIF block.
func JPEGNoExifData() []byte {
	return []byte{0xff, 0xd8, 0xff, 0xd9}
}

// TIFFData returns a minimal little-endian TIFF whose Exif sub-IFD carries
// DateTimeOriginal set to taken.
func TIFFData(taken time.Time) []byte {
	return exifTIFF(taken)
}

// JPEGData returns a minimal JPEG carrying an Exif APP1 segment with
// DateTimeOriginal set to taken.
func JPEGData(taken time.Time) []byte {
	tiff := exifTIFF(taken)

	var b bytes.Buffer

	// SOI, then the APP1 marker.
	b.Write([]byte{0xff, 0xd8})
	b.Write([]byte{0xff, 0xe1})

	// Big-endian segment length, covering itself, the "Exif\0\0" header and
	// the TIFF payload.
	length := 2 + 6 + len(tiff)
	b.WriteByte(byte(length >> 8))
	b.WriteByte(byte(length & 0xff))

	b.WriteString("Exif\x00\x00")
	b.Write(tiff)

	// EOI.
	b.Write([]byte{0xff, 0xd9})

	return b.Bytes()
}

// exifTIFF builds the smallest TIFF structure goexif will parse:
// IFD0 holding only an ExifIFDPointer (0x8769), and an Exif IFD holding
// DateTimeOriginal (0x9003) as a 20-byte ASCII value.
func exifTIFF(taken time.Time) []byte {
	value := taken.Format("2006:01:02 15:04:05") + "\x00"

	var b bytes.Buffer

	write16 := func(v uint16) { _ = binary.Write(&b, binary.LittleEndian, v) }
	write32 := func(v uint32) { _ = binary.Write(&b, binary.LittleEndian, v) }

	// Header: byte order, magic, offset of IFD0.
	b.WriteString("II")
	write16(0x2a)
	write32(8)

	// IFD0 at offset 8: a single ExifIFDPointer entry of type LONG, pointing
	// at the Exif IFD, then a zero next-IFD offset.
	write16(1)
	write16(0x8769)
	write16(4)
	write32(1)
	write32(26)
	write32(0)

	// Exif IFD at offset 26: a single DateTimeOriginal entry of type ASCII,
	// pointing at the value, then a zero next-IFD offset.
	write16(1)
	write16(0x9003)
	write16(2)
	write32(uint32(len(value)))
	write32(44)
	write32(0)

	// Value at offset 44.
	b.WriteString(value)

	return b.Bytes()
}
