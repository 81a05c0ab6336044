/*
Package bmp implements a Windows bitmap decoder and encoder restricted to
uncompressed 24-bit images.

A file starts with a 14 byte file header; the "BM" magic, the total file size
and the offset to the pixel data. It is followed by a 40 byte information
header holding the width, height, number of planes (always 1), the number of
bits per pixel (always 24) and the compression method (always none). The pixel
data follows as rows of blue, green and red bytes. Rows are stored bottom to
top unless the height is negative, and each row is padded with zeroes to a
multiple of 4 bytes.

Decoding tolerates the larger V4 and V5 information headers and top-down
files; encoding always produces the 54 byte header, bottom-up layout.
*/
package bmp

const (
	fileHeaderLen = 14
	infoHeaderLen = 40
	headerLen     = fileHeaderLen + infoHeaderLen
	bitsPerPixel  = 24
	bytesPerPixel = bitsPerPixel >> 3
	compressNone  = 0
	pixelsPerM    = 2835 // 72 DPI
)

type fileHeader struct {
	Magic     [2]byte
	Size      uint32
	Reserved1 uint16
	Reserved2 uint16
	Offset    uint32
}

type infoHeader struct {
	Size            uint32
	Width           int32
	Height          int32
	Planes          uint16
	BitCount        uint16
	Compression     uint32
	ImageSize       uint32
	XPelsPerMeter   int32
	YPelsPerMeter   int32
	ColorsUsed      uint32
	ColorsImportant uint32
}

// stride returns the number of bytes in a row of width pixels, including
// padding.
func stride(width int) int {
	return (width*bytesPerPixel + 3) &^ 3
}
