package main

import (
	"encoding/binary"
	"fmt"
	"os"

	"golang.org/x/image/bmp"
)

// inspect prints the header of a rendered BMP and where its non-background
// pixels are. The background is taken from the bottom-left pixel.
func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: inspect <file.bmp>")
		os.Exit(2)
	}
	path := os.Args[1]

	raw, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if len(raw) < 54 || string(raw[:2]) != "BM" {
		fmt.Printf("Error: %s is not a BMP file\n", path)
		os.Exit(1)
	}

	le := binary.LittleEndian
	fmt.Printf("File size: %d (header says %d)\n", len(raw), le.Uint32(raw[2:]))
	fmt.Printf("Data offset: %d, info header: %d\n", le.Uint32(raw[10:]), le.Uint32(raw[14:]))
	fmt.Printf("Size: %d x %d, planes=%d, bpp=%d, compression=%d, image size=%d\n",
		int32(le.Uint32(raw[18:])), int32(le.Uint32(raw[22:])),
		le.Uint16(raw[26:]), le.Uint16(raw[28:]), le.Uint32(raw[30:]), le.Uint32(raw[34:]))

	f, err := os.Open(path)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	img, err := bmp.Decode(f)
	if err != nil {
		fmt.Printf("Error: decode: %v\n", err)
		os.Exit(1)
	}

	b := img.Bounds()
	bg := img.At(b.Min.X, b.Max.Y-1)
	br, bgG, bb, _ := bg.RGBA()

	count := 0
	minX, minY, maxX, maxY := b.Max.X, b.Max.Y, b.Min.X-1, b.Min.Y-1
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if r == br && g == bgG && bl == bb {
				continue
			}
			count++
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}

	fmt.Printf("Background: #%02x%02x%02x\n", br>>8, bgG>>8, bb>>8)
	total := b.Dx() * b.Dy()
	fmt.Printf("Drawn pixels: %d/%d (%.1f%%)\n", count, total, 100*float64(count)/float64(total))
	if count > 0 {
		// Report in framebuffer coordinates (origin bottom-left).
		h := b.Dy()
		fmt.Printf("Drawn BBox: X[%d, %d] Y[%d, %d]\n", minX, maxX, h-1-maxY, h-1-minY)
	}
}
