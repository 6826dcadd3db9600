// Package bitmap serializes a framebuffer as an uncompressed 24-bit BMP.
package bitmap

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"obj-bmp-renderer/internal/raster"
)

const (
	fileHeaderSize = 14
	infoHeaderSize = 40
	pixelOffset    = fileHeaderSize + infoHeaderSize
	bitsPerPixel   = 24
)

// fileHeader is BITMAPFILEHEADER followed by BITMAPINFOHEADER, packed
// little-endian exactly as it appears on disk.
type fileHeader struct {
	Signature  [2]byte
	FileSize   uint32
	Reserved   uint32
	DataOffset uint32

	InfoSize        uint32
	Width           int32
	Height          int32
	Planes          uint16
	BitsPerPixel    uint16
	Compression     uint32
	ImageSize       uint32
	XPixelsPerM     int32
	YPixelsPerM     int32
	ColorsUsed      uint32
	ColorsImportant uint32
}

// RowStride returns the padded byte length of one pixel row.
func RowStride(width int) int {
	return (width*3 + 3) &^ 3
}

// FileSize returns the encoded size of a width×height image.
func FileSize(width, height int) int {
	return pixelOffset + RowStride(width)*height
}

func newHeader(width, height int) fileHeader {
	imageSize := RowStride(width) * height
	return fileHeader{
		Signature:    [2]byte{'B', 'M'},
		FileSize:     uint32(pixelOffset + imageSize),
		DataOffset:   pixelOffset,
		InfoSize:     infoHeaderSize,
		Width:        int32(width),
		Height:       int32(height),
		Planes:       1,
		BitsPerPixel: bitsPerPixel,
		ImageSize:    uint32(imageSize),
	}
}

// Encode writes fb as a BMP. Storage row 0 is written first, which the
// format places at the bottom of the image. Pixels are stored B, G, R and
// each row is zero-padded to a multiple of four bytes.
func Encode(w io.Writer, fb *raster.FrameBuffer) error {
	if fb.Width <= 0 || fb.Height <= 0 {
		return fmt.Errorf("bitmap: invalid size %dx%d", fb.Width, fb.Height)
	}

	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.LittleEndian, newHeader(fb.Width, fb.Height)); err != nil {
		return fmt.Errorf("bitmap: write header: %w", err)
	}

	row := make([]byte, RowStride(fb.Width))
	for y := 0; y < fb.Height; y++ {
		src := fb.Row(y)
		for x := 0; x < fb.Width; x++ {
			i := x * 3
			row[i] = src[i+2]
			row[i+1] = src[i+1]
			row[i+2] = src[i]
		}
		if _, err := bw.Write(row); err != nil {
			return fmt.Errorf("bitmap: write row %d: %w", y, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("bitmap: flush: %w", err)
	}
	return nil
}

// Marshal returns the encoded BMP bytes.
func Marshal(fb *raster.FrameBuffer) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(FileSize(fb.Width, fb.Height))
	if err := Encode(&buf, fb); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
