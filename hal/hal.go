package hal

// Screen geometry of the target handheld. Fixed at build time.
const (
	ScreenWidth  = 320
	ScreenHeight = 240

	// VRAMBase is the address of the memory-mapped pixel buffer on device.
	VRAMBase = 0xD40000
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a linear, row-major buffer of packed pixels plus a
// "present" hook.
//
// Slot i holds the pixel at (i%Width, i/Width). On device the writes land in
// video memory directly and Present does nothing; callers keep indices inside
// [0, BufferSize()).
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	BufferSize() int
	WritePixel(index int, p uint16)
	ReadPixel(index int) uint16
	Clear(p uint16)
	Present() error
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// HAL provides the only contact point between the demos and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
}
