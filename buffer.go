package filterer

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"

	xdraw "golang.org/x/image/draw"
)

// Pixel is a single RGBA8 pixel.
type Pixel struct {
	R, G, B, A uint8
}

// Buffer is an in-memory RGBA8 image stored row-major with 4 bytes per pixel
// and no row padding. The pixel at (x,y) starts at byte 4*(y*width+x).
// Color channels are not premultiplied by alpha.
//
// Buffers are treated as values by filters: a filter never writes to the
// buffer it receives and always returns a freshly allocated one, so a source
// buffer may be shared between several pipelines.
type Buffer struct {
	width  int
	height int
	pix    []byte
}

var (
	_ ImageBuffered = (*Buffer)(nil)
	_ io.ReaderAt   = (*Buffer)(nil)
)

// NewBuffer creates a buffer from interleaved RGBA8 data. raw is copied.
// raw must be exactly width*height*4 bytes long.
func NewBuffer(raw []byte, width, height int) (*Buffer, error) {
	if err := checkDims(width, height); err != nil {
		return nil, err
	}
	if int64(len(raw)) != int64(width)*int64(height)*BytesPerPixel {
		return nil, fmt.Errorf("%w: got %d bytes for %dx%d image", ErrInvalidDimensions, len(raw), width, height)
	}
	b := &Buffer{width: width, height: height, pix: make([]byte, len(raw))}
	copy(b.pix, raw)
	return b, nil
}

// NewBlank creates a zeroed (transparent black) buffer.
func NewBlank(width, height int) (*Buffer, error) {
	if err := checkDims(width, height); err != nil {
		return nil, err
	}
	return &Buffer{width: width, height: height, pix: make([]byte, width*height*BytesPerPixel)}, nil
}

// FromImage copies an arbitrary [Image] into a new Buffer, reading it row by row.
func FromImage(img Image) (*Buffer, error) {
	d := img.Dims()
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDimensions, err)
	}
	b, err := NewBlank(d.Width, d.Height)
	if err != nil {
		return nil, err
	}
	rowBuf := make([]byte, d.SizeRow())
	stride := b.Dims().Stride
	for y := 0; y < d.Height; y++ {
		row, err := ImageRow(rowBuf, img, y)
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", y, err)
		}
		copy(b.pix[y*stride:], row)
	}
	return b, nil
}

// FromStdImage converts a decoded standard library image into a Buffer of
// non-premultiplied pixels. The result is anchored at (0,0) regardless of the
// bounds of img.
func FromStdImage(img image.Image) (*Buffer, error) {
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("%w: empty bounds %v", ErrInvalidDimensions, bounds)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	xdraw.Draw(dst, dst.Bounds(), img, bounds.Min, xdraw.Src)
	return &Buffer{width: bounds.Dx(), height: bounds.Dy(), pix: dst.Pix}, nil
}

func checkDims(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return nil
}

func (b *Buffer) Width() int  { return b.width }
func (b *Buffer) Height() int { return b.height }

// Dims implements [Image].
func (b *Buffer) Dims() Dims {
	return Dims{Width: b.width, Height: b.height, Stride: b.width * BytesPerPixel}
}

// Buffer implements [ImageBuffered]. The returned slice aliases the buffer's memory.
func (b *Buffer) Buffer() []byte { return b.pix }

// ReadAt implements [io.ReaderAt].
func (b *Buffer) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, errors.New("negative offset")
	} else if off >= int64(len(b.pix)) {
		return 0, io.EOF
	}
	n := copy(p, b.pix[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func (b *Buffer) offset(x, y int) (int, error) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d image", ErrIndexOutOfBounds, x, y, b.width, b.height)
	}
	return (y*b.width + x) * BytesPerPixel, nil
}

// At returns the pixel at (x,y).
func (b *Buffer) At(x, y int) (Pixel, error) {
	i, err := b.offset(x, y)
	if err != nil {
		return Pixel{}, err
	}
	return Pixel{R: b.pix[i], G: b.pix[i+1], B: b.pix[i+2], A: b.pix[i+3]}, nil
}

// Set writes p at (x,y).
func (b *Buffer) Set(x, y int, p Pixel) error {
	i, err := b.offset(x, y)
	if err != nil {
		return err
	}
	b.pix[i], b.pix[i+1], b.pix[i+2], b.pix[i+3] = p.R, p.G, p.B, p.A
	return nil
}

// Bytes returns a copy of the raw RGBA8 data, suitable for handing back to the host.
func (b *Buffer) Bytes() []byte {
	return bytes.Clone(b.pix)
}

func (b *Buffer) Clone() *Buffer {
	return &Buffer{width: b.width, height: b.height, pix: b.Bytes()}
}

// Equal reports whether b and other have the same dimensions and pixels.
func (b *Buffer) Equal(other *Buffer) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.width == other.width && b.height == other.height && bytes.Equal(b.pix, other.pix)
}

// NRGBA returns a copy of b as an [image.NRGBA]. Pixel bytes are used as-is:
// color channels are not premultiplied by alpha.
func (b *Buffer) NRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.Bytes(),
		Stride: b.width * BytesPerPixel,
		Rect:   image.Rect(0, 0, b.width, b.height),
	}
}
