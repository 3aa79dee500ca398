package filters

import (
	"github.com/soypat/filterer"
)

// PointFunc processes a contiguous row of RGBA8 pixels.
// dst and src contain the same number of pixels worth of bytes and y is the row index.
// The function should iterate through pixels: for i := 0; i < len(src); i += 4 { ... }
// and must write every byte of dst, alpha included.
type PointFunc func(dst, src []byte, y int)

// PointFilter applies a per-pixel transformation using a callback function.
// It handles the iteration and buffering logic common to all per-pixel filters.
// The callback is invoked once per row with contiguous pixel data, possibly
// from several goroutines at once for different rows.
type PointFilter struct {
	Fn    PointFunc
	Ctrls []filterer.Control
}

var _ filterer.Filter = (*PointFilter)(nil)

// Controls implements [filterer.Filter].
func (f *PointFilter) Controls() []filterer.Control {
	return f.Ctrls
}

// Apply implements [filterer.Filter].
func (f *PointFilter) Apply(src *filterer.Buffer) (*filterer.Buffer, error) {
	if f.Fn == nil {
		return nil, errNilPointFunc
	} else if src == nil {
		return nil, filterer.ErrEmptyImage
	}
	d := src.Dims()
	dst, err := filterer.NewBlank(d.Width, d.Height)
	if err != nil {
		return nil, err
	}
	srcBuf, dstBuf := src.Buffer(), dst.Buffer()
	rowBytes := d.SizeRow()
	forRows(0, d.Height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			off := y * d.Stride
			f.Fn(dstBuf[off:off+rowBytes], srcBuf[off:off+rowBytes], y)
		}
	})
	return dst, nil
}

var errNilPointFunc = errorString("nil PointFunc")

type errorString string

func (e errorString) Error() string { return string(e) }

func clampInt(v int) uint8 {
	if v < 0 {
		return 0
	} else if v > 255 {
		return 255
	}
	return uint8(v)
}

// clampFloat clamps v to [0,255]. NaN maps to 0.
func clampFloat(v float32) uint8 {
	if v >= 255 {
		return 255
	} else if v > 0 {
		return uint8(v)
	}
	return 0
}
