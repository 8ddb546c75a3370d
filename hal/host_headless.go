//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64

	// PNGPath, if set, receives a snapshot of the framebuffer when the run ends.
	PNGPath  string
	PNGScale int
}

// RunHeadless drives the demo step function without opening a window.
func RunHeadless(ctx context.Context, newApp func(HAL) (func() error, error), cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	h := New().(*hostHAL)
	step, err := newApp(h)
	if err != nil {
		return err
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			if err := snapshotTo(h.fb, cfg); err != nil {
				return err
			}
			return ctx.Err()
		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return snapshotTo(h.fb, cfg)
			}
		}
	}
}

func snapshotTo(fb *MemFramebuffer, cfg HeadlessConfig) error {
	if cfg.PNGPath == "" {
		return nil
	}
	if err := SavePNG(cfg.PNGPath, fb, cfg.PNGScale); err != nil {
		return fmt.Errorf("headless snapshot: %w", err)
	}
	return nil
}
