package filterer

// Channel selects one of the color channels of a pixel. Alpha is not selectable.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

func (c Channel) String() string {
	switch c {
	case Red:
		return "Red"
	case Green:
		return "Green"
	case Blue:
		return "Blue"
	default:
		return "Unknown"
	}
}

// Valid reports whether c is one of Red, Green or Blue.
func (c Channel) Valid() bool { return c >= Red && c <= Blue }

// Offset returns the byte offset of the channel within an RGBA8 pixel.
func (c Channel) Offset() int { return int(c) }

// Means holds the per-channel average of an image.
type Means struct {
	R, G, B int
}

// Of returns the mean of channel c. Invalid channels return 0.
func (m Means) Of(c Channel) int {
	switch c {
	case Red:
		return m.R
	case Green:
		return m.G
	case Blue:
		return m.B
	}
	return 0
}

// AverageColor computes the floored mean of the red, green and blue channels of b.
func AverageColor(b *Buffer) (Means, error) {
	if b == nil || len(b.pix) == 0 {
		return Means{}, ErrEmptyImage
	}
	var r, g, bl uint64
	for i := 0; i < len(b.pix); i += BytesPerPixel {
		r += uint64(b.pix[i])
		g += uint64(b.pix[i+1])
		bl += uint64(b.pix[i+2])
	}
	n := uint64(len(b.pix) / BytesPerPixel)
	return Means{R: int(r / n), G: int(g / n), B: int(bl / n)}, nil
}
