package filters

import (
	"fmt"

	"github.com/soypat/filterer"
)

// Kernel3 is a 3x3 integer convolution kernel indexed [row][column].
type Kernel3 [3][3]int

// SharpenKernel is the kernel used by [NewSharpening].
var SharpenKernel = Kernel3{
	{-1, -1, -1},
	{-1, 8, -1},
	{-1, -1, -1},
}

// Convolution applies a 3x3 kernel to the red, green and blue channels of
// every interior pixel, clamping each sum to [0,255].
//
// Border pixels (first and last row and column) are copied unchanged; the
// kernel is never evaluated there and no edge padding is synthesized.
// Sums are always read from the source image. Alpha is preserved.
type Convolution struct {
	kernel Kernel3
}

var _ filterer.Filter = (*Convolution)(nil)

func NewConvolution(k Kernel3) *Convolution {
	return &Convolution{kernel: k}
}

// NewSharpening returns a convolution with [SharpenKernel].
func NewSharpening() *Convolution {
	return NewConvolution(SharpenKernel)
}

func (c *Convolution) Kernel() Kernel3 { return c.kernel }

// Controls implements [filterer.Filter]. Convolutions have no parameters.
func (c *Convolution) Controls() []filterer.Control { return nil }

// Apply implements [filterer.Filter]. Images smaller than 3x3 are rejected
// with [filterer.ErrImageTooSmall].
func (c *Convolution) Apply(src *filterer.Buffer) (*filterer.Buffer, error) {
	if src == nil {
		return nil, filterer.ErrEmptyImage
	}
	d := src.Dims()
	if d.Width < 3 || d.Height < 3 {
		return nil, fmt.Errorf("%w: %dx%d has no interior pixels", filterer.ErrImageTooSmall, d.Width, d.Height)
	}
	dst := src.Clone()
	in, out := src.Buffer(), dst.Buffer()
	k := &c.kernel
	forRows(1, d.Height-1, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 1; x < d.Width-1; x++ {
				var r, g, b int
				for ky := 0; ky < 3; ky++ {
					row := (y + ky - 1) * d.Stride
					for kx := 0; kx < 3; kx++ {
						w := k[ky][kx]
						i := row + (x+kx-1)*filterer.BytesPerPixel
						r += w * int(in[i])
						g += w * int(in[i+1])
						b += w * int(in[i+2])
					}
				}
				i := y*d.Stride + x*filterer.BytesPerPixel
				out[i], out[i+1], out[i+2] = clampInt(r), clampInt(g), clampInt(b)
			}
		}
	})
	return dst, nil
}
