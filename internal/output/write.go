// Package output writes a finished framebuffer to disk.
package output

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"

	"obj-bmp-renderer/internal/bitmap"
	"obj-bmp-renderer/internal/raster"
)

// Format identifies an output encoder.
type Format string

const (
	BMP  Format = "bmp"
	WebP Format = "webp"
	TGA  Format = "tga"
	PNG  Format = "png"
)

// FormatFor picks the format from the path extension. A path without an
// extension is written as BMP.
func FormatFor(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case "", ".bmp":
		return BMP, nil
	case ".webp":
		return WebP, nil
	case ".tga":
		return TGA, nil
	case ".png":
		return PNG, nil
	default:
		return "", fmt.Errorf("output: unsupported extension %q", ext)
	}
}

// Encode writes fb to w in the given format.
func Encode(w io.Writer, fb *raster.FrameBuffer, f Format) error {
	switch f {
	case BMP:
		return bitmap.Encode(w, fb)
	case WebP:
		if err := nativewebp.Encode(w, fb.NRGBA(), nil); err != nil {
			return fmt.Errorf("output: webp encode: %w", err)
		}
	case TGA:
		if err := tga.Encode(w, fb.NRGBA()); err != nil {
			return fmt.Errorf("output: tga encode: %w", err)
		}
	case PNG:
		if err := png.Encode(w, fb.NRGBA()); err != nil {
			return fmt.Errorf("output: png encode: %w", err)
		}
	default:
		return fmt.Errorf("output: unknown format %q", f)
	}
	return nil
}

// Write encodes fb into path. The image is written to a temporary file in
// the same directory and renamed into place, so a failed encode never
// leaves a partial image behind.
func Write(path string, fb *raster.FrameBuffer) error {
	f, err := FormatFor(path)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("output: mkdir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("output: create %s: %w", path, err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	if err := Encode(tmp, fb, f); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("output: close %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("output: rename %s: %w", path, err)
	}
	committed = true
	return nil
}
