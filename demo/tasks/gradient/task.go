package gradient

import (
	"vramdemo/demo/fixed"
	"vramdemo/demo/raster"
	"vramdemo/hal"
)

// Status is returned once the scan completes.
const Status = 1

// Task paints red down the rows and green across the columns.
type Task struct {
	arith fixed.Arith
	enc   raster.Encoder
}

// New returns the gradient demo. With compat set it keeps the unscaled
// arithmetic of the first release, which leaves everything black except the
// last row and column.
func New(compat bool) *Task {
	t := &Task{arith: fixed.Scaled, enc: raster.NewEncoder(compat)}
	if compat {
		t.arith = fixed.Unscaled
	}
	return t
}

func (t *Task) Name() string { return "gradient" }

func (t *Task) Run(fb hal.Framebuffer) int {
	w := fb.Width()
	h := fb.Height()
	for y := 0; y < h; y++ {
		rFactor := t.ratio(y, h-1)
		for x := 0; x < w; x++ {
			gFactor := t.ratio(x, w-1)
			bFactor := fixed.F24(0)
			raster.WritePixel(fb, t.enc, fixed.RGB(rFactor, gFactor, bFactor), y*w+x)
		}
	}
	return Status
}

func (t *Task) ratio(n, d int) fixed.F24 {
	if d <= 0 {
		return 0
	}
	return t.arith.Div(fixed.FromInt(n), fixed.FromInt(d))
}
