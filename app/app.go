package app

import (
	"errors"
	"fmt"

	"vramdemo/demo/tasks/gradient"
	"vramdemo/demo/tasks/solidfill"
	"vramdemo/hal"
	"vramdemo/internal/buildinfo"
)

var (
	ErrUnknownDemo   = errors.New("unknown demo")
	ErrNoFramebuffer = errors.New("no RGB565 framebuffer")
	ErrDemoPanic     = errors.New("demo panicked")
)

// StatusFailed is returned by Run when the demo could not be drawn.
const StatusFailed = 0

// Demo draws one full frame and reports a status code.
type Demo interface {
	Name() string
	Run(fb hal.Framebuffer) int
}

type Config struct {
	// Demo is "gradient" (default) or "fill".
	Demo string
	// Compat reproduces the legacy output bit for bit.
	Compat bool
	// Caption overlays the demo name after drawing.
	Caption bool
}

// Names lists the selectable demos.
func Names() []string { return []string{"gradient", "fill"} }

func NewDemo(name string, compat bool) (Demo, error) {
	switch name {
	case "", "gradient":
		return gradient.New(compat), nil
	case "fill":
		return solidfill.New(compat), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDemo, name)
	}
}

// NewWithConfig prepares the demo and returns a step function for the host
// runners. The first step draws the frame; every step presents it.
func NewWithConfig(h hal.HAL, cfg Config) (func() error, error) {
	d, err := NewDemo(cfg.Demo, cfg.Compat)
	if err != nil {
		return nil, err
	}
	fb, err := framebuffer(h)
	if err != nil {
		return nil, err
	}

	drawn := false
	return func() error {
		if !drawn {
			drawn = true
			if _, err := draw(h.Logger(), fb, d, cfg); err != nil {
				return err
			}
		}
		return fb.Present()
	}, nil
}

// Run draws the configured demo once and returns its status (device
// entrypoint).
func Run(h hal.HAL, cfg Config) int {
	logf := func(format string, args ...any) {
		if l := h.Logger(); l != nil {
			l.WriteLineString(fmt.Sprintf(format, args...))
		}
	}

	d, err := NewDemo(cfg.Demo, cfg.Compat)
	if err != nil {
		logf("vramdemo: %v", err)
		return StatusFailed
	}
	fb, err := framebuffer(h)
	if err != nil {
		logf("vramdemo: %v", err)
		return StatusFailed
	}
	status, err := draw(h.Logger(), fb, d, cfg)
	if err != nil {
		logf("vramdemo: %v", err)
		return StatusFailed
	}
	if err := fb.Present(); err != nil {
		logf("vramdemo: present: %v", err)
	}
	return status
}

func framebuffer(h hal.HAL) (hal.Framebuffer, error) {
	disp := h.Display()
	if disp == nil {
		return nil, ErrNoFramebuffer
	}
	fb := disp.Framebuffer()
	if fb == nil || fb.Format() != hal.PixelFormatRGB565 {
		return nil, ErrNoFramebuffer
	}
	return fb, nil
}

func draw(l hal.Logger, fb hal.Framebuffer, d Demo, cfg Config) (status int, err error) {
	if l != nil {
		l.WriteLineString(fmt.Sprintf("vramdemo %s: demo=%s size=%dx%d compat=%t",
			buildinfo.Short(), d.Name(), fb.Width(), fb.Height(), cfg.Compat))
	}

	defer func() {
		v := recover()
		if v == nil {
			return
		}
		status = StatusFailed
		err = fmt.Errorf("%w: %s: %v", ErrDemoPanic, d.Name(), v)
		reportPanic(l, fb, d.Name(), v)
	}()

	status = d.Run(fb)
	if cfg.Caption {
		drawCaption(fb, d.Name())
	}
	if l != nil {
		l.WriteLineString(fmt.Sprintf("demo %s: status=%d", d.Name(), status))
	}
	return status, nil
}
