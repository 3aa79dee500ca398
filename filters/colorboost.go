package filters

import (
	"errors"
	"fmt"
	"math"

	"github.com/soypat/filterer"
)

// ColorBoost amplifies the deviation of one channel from its image-wide mean:
//
//	c' = clamp((c - mean) * boost, 0, 255)
//
// Values under the mean collapse to 0 and values above it quickly saturate,
// giving a high contrast, posterized look in the selected channel. The mean is
// taken from the image passed to Apply. The other channels and alpha are copied.
type ColorBoost struct {
	channel filterer.Channel
	boost   int
	ctrls   []filterer.Control
}

var _ filterer.Filter = (*ColorBoost)(nil)

// NewColorBoost creates a boost of channel by boost, which must not be negative.
func NewColorBoost(channel filterer.Channel, boost int) (*ColorBoost, error) {
	if !channel.Valid() {
		return nil, fmt.Errorf("invalid boost channel %d", int(channel))
	} else if boost < 0 {
		return nil, errors.New("negative boost")
	}
	return &ColorBoost{
		channel: channel,
		boost:   boost,
		ctrls: []filterer.Control{
			&filterer.ControlEnum[filterer.Channel]{
				Name:        "Channel",
				Description: "Color channel to boost",
				Value:       channel,
				ValidValues: []filterer.Channel{filterer.Red, filterer.Green, filterer.Blue},
			},
			&filterer.ControlOrdered[int]{
				Name:        "Boost",
				Description: "Multiplier applied to the channel's deviation from its mean",
				Value:       boost,
				Min:         0,
				Max:         math.MaxInt,
				Step:        1,
			},
		},
	}, nil
}

func (f *ColorBoost) Channel() filterer.Channel { return f.channel }
func (f *ColorBoost) Boost() int                { return f.boost }

// Controls implements [filterer.Filter].
func (f *ColorBoost) Controls() []filterer.Control { return f.ctrls }

// Apply implements [filterer.Filter].
func (f *ColorBoost) Apply(src *filterer.Buffer) (*filterer.Buffer, error) {
	means, err := filterer.AverageColor(src)
	if err != nil {
		return nil, err
	}
	avg := means.Of(f.channel)
	off := f.channel.Offset()
	boost := f.boost
	point := PointFilter{
		Fn: func(dst, src []byte, _ int) {
			copy(dst, src)
			for i := off; i < len(src); i += filterer.BytesPerPixel {
				dst[i] = boostDelta(int(src[i])-avg, boost)
			}
		},
	}
	return point.Apply(src)
}

// boostDelta returns clamp(delta*boost, 0, 255) for a non-negative boost
// without overflowing the product.
func boostDelta(delta, boost int) uint8 {
	if delta <= 0 || boost == 0 {
		return 0
	} else if boost > 255/delta {
		return 255
	}
	return uint8(delta * boost)
}
