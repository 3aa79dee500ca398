package filters

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/soypat/filterer"
)

// DefaultRedPivot is the red level around which [NewGradedRedBoost] amplifies.
const DefaultRedPivot = 107

// GradedBoost amplifies values of one channel that are at or above a pivot,
// with a gain that varies down the image:
//
//	c' = clamp(round(pivot + m(y/height) * (c - pivot)), 0, 255)
//
// m is a piecewise linear ramp over the normalized row. Values below the pivot
// are left as they are. Other channels and alpha are copied.
type GradedBoost struct {
	channel filterer.Channel
	pivot   int
	ramp    []filterer.CurvePoint
	ctrls   []filterer.Control
}

var _ filterer.Filter = (*GradedBoost)(nil)

// NewGradedBoost creates a graded boost. ramp must contain at least one point
// and is sorted by X; it is copied.
func NewGradedBoost(channel filterer.Channel, pivot int, ramp []filterer.CurvePoint) (*GradedBoost, error) {
	if !channel.Valid() {
		return nil, fmt.Errorf("invalid boost channel %d", int(channel))
	} else if len(ramp) == 0 {
		return nil, errors.New("graded boost needs at least one ramp point")
	}
	ramp = slices.Clone(ramp)
	slices.SortStableFunc(ramp, func(a, b filterer.CurvePoint) int {
		return cmp.Compare(a.X, b.X)
	})
	return &GradedBoost{
		channel: channel,
		pivot:   pivot,
		ramp:    ramp,
		ctrls: []filterer.Control{
			&filterer.ControlEnum[filterer.Channel]{
				Name:        "Channel",
				Description: "Color channel to boost",
				Value:       channel,
				ValidValues: []filterer.Channel{filterer.Red, filterer.Green, filterer.Blue},
			},
			&filterer.ControlOrdered[int]{
				Name:        "Pivot",
				Description: "Channel level above which values are amplified",
				Value:       pivot,
				Min:         0,
				Max:         255,
				Step:        1,
			},
			&filterer.ControlCurve{
				Name:        "Gain",
				Description: "Gain as a function of normalized row, top (0) to bottom (1)",
				Points:      slices.Clone(ramp),
			},
		},
	}, nil
}

// NewGradedRedBoost amplifies red above [DefaultRedPivot] with a gain growing
// linearly from 1 at the top row to 5 at the bottom.
func NewGradedRedBoost() *GradedBoost {
	f, err := NewGradedBoost(filterer.Red, DefaultRedPivot, []filterer.CurvePoint{{X: 0, Y: 1}, {X: 1, Y: 5}})
	if err != nil {
		panic(err)
	}
	return f
}

// Controls implements [filterer.Filter].
func (f *GradedBoost) Controls() []filterer.Control { return f.ctrls }

// Gain returns the multiplier applied at row y of an image with the given height.
func (f *GradedBoost) Gain(y, height int) float64 {
	return filterer.EvalCurve(f.ramp, float64(y)/float64(height))
}

// Apply implements [filterer.Filter].
func (f *GradedBoost) Apply(src *filterer.Buffer) (*filterer.Buffer, error) {
	if src == nil {
		return nil, filterer.ErrEmptyImage
	}
	height := src.Height()
	off := f.channel.Offset()
	pivot := f.pivot
	point := PointFilter{
		Fn: func(dst, src []byte, y int) {
			copy(dst, src)
			gain := f.Gain(y, height)
			for i := off; i < len(src); i += filterer.BytesPerPixel {
				delta := int(src[i]) - pivot
				if delta < 0 {
					continue
				}
				dst[i] = clampFloat(float32(math.Round(float64(pivot) + gain*float64(delta))))
			}
		},
	}
	return point.Apply(src)
}
