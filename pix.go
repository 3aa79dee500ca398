// Package filterer implements in-memory RGBA8 images and the [Filter]
// abstraction used to transform them. Concrete filters, the filter
// registry and pipelines live in the filters sub-package.
package filterer

import "io"

// Image is a low-level, whole-buffer image access abstraction of raw RGBA8 memory.
// It does not do bounds abstraction. As made implicit by Dims signature, row spacing must be homogenous in images.
type Image interface {
	// Dims returns information on in-memory image structure.
	// Row spacing must be homogenous in entire image separated by stride bytes.
	Dims() Dims
	// ReadAt reads from the image buffer of pixels, which may be in-memory or elsewhere (disk, network).
	//
	// Users should always try casting [Image] to [ImageBuffered]
	// to see if they can work with the image in-memory which is more efficient.
	io.ReaderAt
}

type ImageBuffered interface {
	Image
	// Buffer returns the raw underlying buffer for images stored in memory.
	// Buffer returns the entire buffer or nil to signal buffer is currently not in memory.
	Buffer() []byte
}

// Filter transforms a [Buffer] into a new [Buffer] of identical dimensions.
//
// Apply must not modify src. Implementations that compose other filters,
// such as a pipeline, are filters themselves and can be nested.
type Filter interface {
	// Apply processes src and returns the resulting image.
	Apply(src *Buffer) (*Buffer, error)
	// Controls returns descriptions of the filter's parameters.
	Controls() []Control
}

// BytesPerPixel is the size of a single RGBA8 pixel.
const BytesPerPixel = 4

type Dims struct {
	Width  int
	Height int
	Stride int
}

func (d Dims) Validate() error {
	if d.Height <= 0 || d.Width <= 0 {
		return ErrEmptyImage
	} else if d.Width*BytesPerPixel > d.Stride {
		return errorString("stride smaller than pixel row size")
	}
	return nil
}

func (d Dims) NumPixels() int64 {
	return int64(d.Height) * int64(d.Width)
}

// Size returns the readable section size of raw image in bytes.
func (d Dims) Size() int64 {
	if d.Height == 0 || d.Width == 0 {
		return 0
	}
	return int64(d.Height-1)*int64(d.Stride) + int64(d.SizeRow())
}

func (d Dims) SizeRow() int {
	return d.Width * BytesPerPixel
}

// ImageRow returns the pixel bytes of a single row of img. If img is buffered
// the returned slice aliases the image memory, otherwise dst is filled and returned.
func ImageRow(dst []byte, img Image, row int) (resultSized []byte, err error) {
	d := img.Dims()
	err = d.Validate()
	if err != nil {
		return nil, err
	}
	rowLenBytes := d.SizeRow()
	if len(dst) < rowLenBytes {
		// So we could technically check this after trying ImageBuffered,
		// however if we do check early we can encourage users to write more robust software for when Buffer() fails.
		return nil, io.ErrShortBuffer
	} else if row < 0 || row >= d.Height {
		return nil, ErrIndexOutOfBounds
	}
	off := int64(row) * int64(d.Stride)
	if buffered, ok := img.(ImageBuffered); ok {
		buf := buffered.Buffer()
		if buf != nil {
			return buf[off : off+int64(rowLenBytes)], nil
		}
	}
	resultSized = dst[:rowLenBytes]
	n, err := img.ReadAt(resultSized, off)
	if n != rowLenBytes {
		if err == nil {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return resultSized, nil
}
