//go:build !tinygo

package hal

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"
)

const maxPNGScale = 16

// WritePNG encodes the framebuffer as PNG, upscaled by an integer factor with
// nearest-neighbour sampling so packed pixels stay crisp.
func WritePNG(w io.Writer, fb *MemFramebuffer, scale int) error {
	if scale <= 0 {
		scale = 1
	}
	if scale > maxPNGScale {
		return fmt.Errorf("png scale %d out of range [1,%d]", scale, maxPNGScale)
	}

	var img image.Image = fb.Snapshot()
	if scale > 1 {
		b := img.Bounds()
		dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
		img = dst
	}
	return png.Encode(w, img)
}

// SavePNG writes a PNG snapshot of fb to path.
func SavePNG(path string, fb *MemFramebuffer, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	if err := WritePNG(f, fb, scale); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %q: %w", path, err)
	}
	return nil
}
