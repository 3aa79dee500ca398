package filters

import (
	"github.com/chewxy/math32"
	"github.com/soypat/filterer"
)

// Brightness scales the red, green and blue channels of every pixel by a
// constant factor. Factors below 1 darken, above 1 brighten. Results are
// rounded half away from zero and clamped to [0,255]. Alpha is preserved.
type Brightness struct {
	factor float32
	point  PointFilter
}

var _ filterer.Filter = (*Brightness)(nil)

func NewBrightness(factor float32) *Brightness {
	b := &Brightness{factor: factor}
	b.point = PointFilter{
		Fn: func(dst, src []byte, _ int) {
			for i := 0; i < len(src); i += filterer.BytesPerPixel {
				dst[i] = b.scale(src[i])
				dst[i+1] = b.scale(src[i+1])
				dst[i+2] = b.scale(src[i+2])
				dst[i+3] = src[i+3]
			}
		},
		Ctrls: []filterer.Control{
			&filterer.ControlOrdered[float32]{
				Name:        "Brightness",
				Description: "Multiplier applied to red, green and blue",
				Value:       factor,
				Min:         0,
				Max:         math32.MaxFloat32,
				Step:        0.05,
			},
		},
	}
	return b
}

func (b *Brightness) scale(c uint8) uint8 {
	return clampFloat(math32.Round(float32(c) * b.factor))
}

// Factor returns the brightness multiplier.
func (b *Brightness) Factor() float32 { return b.factor }

// Apply implements [filterer.Filter].
func (b *Brightness) Apply(src *filterer.Buffer) (*filterer.Buffer, error) {
	return b.point.Apply(src)
}

// Controls implements [filterer.Filter].
func (b *Brightness) Controls() []filterer.Control { return b.point.Controls() }
