package filters

import "github.com/soypat/filterer"

// GrayscaleMode determines the algorithm for RGB to grayscale conversion.
type GrayscaleMode int

const (
	// GrayscaleLuminance uses standard luminance weights: 0.299*R + 0.587*G + 0.114*B
	GrayscaleLuminance GrayscaleMode = iota
	// GrayscaleAverage uses simple average: (R + G + B) / 3
	GrayscaleAverage
	// GrayscaleLightness uses min/max average: (max(R,G,B) + min(R,G,B)) / 2
	GrayscaleLightness
)

func (m GrayscaleMode) String() string {
	switch m {
	case GrayscaleLuminance:
		return "Luminance"
	case GrayscaleAverage:
		return "Average"
	case GrayscaleLightness:
		return "Lightness"
	default:
		return "Unknown"
	}
}

// NewGrayscale creates a filter setting red, green and blue to a single gray
// level computed with mode. Alpha is preserved.
func NewGrayscale(mode GrayscaleMode) *PointFilter {
	return &PointFilter{
		Fn: func(dst, src []byte, _ int) {
			for i := 0; i < len(src); i += filterer.BytesPerPixel {
				r, g, b := src[i], src[i+1], src[i+2]
				var gray uint8
				switch mode {
				case GrayscaleAverage:
					gray = uint8((uint32(r) + uint32(g) + uint32(b)) / 3)
				case GrayscaleLightness:
					gray = uint8((uint32(min(r, g, b)) + uint32(max(r, g, b))) / 2)
				default: // GrayscaleLuminance
					gray = uint8((77*uint32(r) + 150*uint32(g) + 29*uint32(b)) >> 8)
				}
				dst[i], dst[i+1], dst[i+2], dst[i+3] = gray, gray, gray, src[i+3]
			}
		},
		Ctrls: []filterer.Control{
			&filterer.ControlEnum[GrayscaleMode]{
				Name:        "Conversion Mode",
				Description: "Algorithm for RGB to grayscale conversion",
				Value:       mode,
				ValidValues: []GrayscaleMode{GrayscaleLuminance, GrayscaleAverage, GrayscaleLightness},
			},
		},
	}
}

// NewInvert creates a filter that inverts red, green and blue. Alpha is preserved.
func NewInvert() *PointFilter {
	return &PointFilter{
		Fn: func(dst, src []byte, _ int) {
			for i := 0; i < len(src); i += filterer.BytesPerPixel {
				dst[i] = 255 - src[i]
				dst[i+1] = 255 - src[i+1]
				dst[i+2] = 255 - src[i+2]
				dst[i+3] = src[i+3]
			}
		},
	}
}
