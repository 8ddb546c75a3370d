//go:build tinygo && baremetal

package hal

import (
	"runtime/volatile"
	"unsafe"
)

type vramPixels = [ScreenWidth * ScreenHeight]volatile.Register16

type tinyGoHAL struct {
	logger nopLogger
	fb     *vramFramebuffer
}

// New returns the on-device HAL: video memory at VRAMBase and no log sink.
func New() HAL {
	return &tinyGoHAL{
		fb: &vramFramebuffer{port: (*vramPixels)(unsafe.Pointer(uintptr(VRAMBase)))},
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }

type tinyGoDisplay struct {
	fb Framebuffer
}

func (d tinyGoDisplay) Framebuffer() Framebuffer { return d.fb }

// vramFramebuffer writes straight into video memory. The display scans it out
// continuously, so stores are visible immediately.
type vramFramebuffer struct {
	port *vramPixels
}

func (f *vramFramebuffer) Width() int          { return ScreenWidth }
func (f *vramFramebuffer) Height() int         { return ScreenHeight }
func (f *vramFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *vramFramebuffer) BufferSize() int     { return ScreenWidth * ScreenHeight }
func (f *vramFramebuffer) Present() error      { return nil }

func (f *vramFramebuffer) WritePixel(index int, p uint16) { f.port[index].Set(p) }
func (f *vramFramebuffer) ReadPixel(index int) uint16     { return f.port[index].Get() }

func (f *vramFramebuffer) Clear(p uint16) {
	for i := range f.port {
		f.port[i].Set(p)
	}
}

// No serial port is wired on the device.
type nopLogger struct{}

func (nopLogger) WriteLineString(string) {}
func (nopLogger) WriteLineBytes([]byte)  {}
