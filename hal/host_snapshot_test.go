//go:build !tinygo

package hal

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestWritePNGScales(t *testing.T) {
	fb := NewMemFramebuffer(4, 3)
	fb.Clear(uint16(PackRGB565(31, 63, 31)))

	var buf bytes.Buffer
	if err := WritePNG(&buf, fb, 3); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 9 {
		t.Fatalf("bounds = %v", b)
	}
	r, g, b, _ := img.At(11, 8).RGBA()
	if r != 0xFFFF || g != 0xFFFF || b != 0xFFFF {
		t.Fatalf("corner = %d,%d,%d", r, g, b)
	}

	if err := WritePNG(&buf, fb, maxPNGScale+1); err == nil {
		t.Fatal("expected scale error")
	}
}

func TestRunHeadlessWritesSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	cfg := HeadlessConfig{Enabled: true, Hz: 1000, Ticks: 2, PNGPath: path, PNGScale: 2}

	steps := 0
	err := RunHeadless(context.Background(), func(h HAL) (func() error, error) {
		fb := h.Display().Framebuffer()
		return func() error {
			steps++
			fb.Clear(uint16(PackRGB565(0, 63, 0)))
			return nil
		}, nil
	}, cfg)
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if steps != 2 {
		t.Fatalf("steps = %d, want 2", steps)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open snapshot: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if b := img.Bounds(); b.Dx() != ScreenWidth*2 || b.Dy() != ScreenHeight*2 {
		t.Fatalf("bounds = %v", b)
	}
	r, g, b, _ := img.At(0, 0).RGBA()
	if r != 0 || g != 0xFFFF || b != 0 {
		t.Fatalf("pixel = %d,%d,%d", r, g, b)
	}
}

func TestRunHeadlessPropagatesErrors(t *testing.T) {
	want := errors.New("boom")
	err := RunHeadless(context.Background(), func(HAL) (func() error, error) {
		return nil, want
	}, HeadlessConfig{})
	if !errors.Is(err, want) {
		t.Fatalf("err = %v", err)
	}

	err = RunHeadless(context.Background(), func(HAL) (func() error, error) {
		return func() error { return want }, nil
	}, HeadlessConfig{Hz: 1000})
	if !errors.Is(err, want) {
		t.Fatalf("step err = %v", err)
	}
}

func TestHostLogger(t *testing.T) {
	var buf bytes.Buffer
	h := newHostHAL(&buf)
	h.Logger().WriteLineString("one")
	h.Logger().WriteLineBytes([]byte("two"))
	if buf.String() != "one\ntwo\n" {
		t.Fatalf("log = %q", buf.String())
	}
	fb := h.Display().Framebuffer()
	if fb.Width() != ScreenWidth || fb.Height() != ScreenHeight || fb.Format() != PixelFormatRGB565 {
		t.Fatalf("framebuffer %dx%d format %d", fb.Width(), fb.Height(), fb.Format())
	}
}
