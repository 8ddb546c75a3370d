package solidfill

import "vramdemo/hal"

const (
	// Status is returned once every slot has been written.
	Status = 1

	// FillRed is the red value the fill assigns. It does not fit the 5-bit
	// field.
	FillRed = 63
)

// Task clears every pixel and then sets its red field.
type Task struct {
	compat bool
}

// New returns the solid-fill demo. With compat set the red value is assigned
// as is and wraps to its low five bits; otherwise it is clamped to the field
// maximum. Both give full red.
func New(compat bool) *Task {
	return &Task{compat: compat}
}

func (t *Task) Name() string { return "fill" }

func (t *Task) Red() uint8 {
	if t.compat {
		return FillRed
	}
	return min(FillRed, hal.RedMask)
}

func (t *Task) Run(fb hal.Framebuffer) int {
	red := t.Red()
	n := fb.BufferSize()
	for i := 0; i < n; i++ {
		fb.WritePixel(i, 0)
		p := hal.RGB565(fb.ReadPixel(i)).WithR(red)
		fb.WritePixel(i, uint16(p))
	}
	return Status
}
