package filters

import (
	"math/rand"
	"testing"

	"github.com/soypat/filterer"
)

// generateRandomSquares creates an image with random colored squares on a
// black background. Alpha is randomized too so alpha preservation is observable.
func generateRandomSquares(t testing.TB, rng *rand.Rand, width, height, numSquares, minSize, maxSize int) *filterer.Buffer {
	t.Helper()
	img, err := filterer.NewBlank(width, height)
	if err != nil {
		t.Fatal(err)
	}
	pix := img.Buffer()
	for i := 3; i < len(pix); i += 4 {
		pix[i] = uint8(128 + rng.Intn(128))
	}
	for i := 0; i < numSquares; i++ {
		size := minSize + rng.Intn(maxSize-minSize+1)
		x := rng.Intn(width)
		y := rng.Intn(height)
		c := filterer.Pixel{
			R: uint8(rng.Intn(256)),
			G: uint8(rng.Intn(256)),
			B: uint8(rng.Intn(256)),
			A: uint8(rng.Intn(256)),
		}
		fillRect(img, x, y, size, size, c)
	}
	return img
}

func fillRect(img *filterer.Buffer, x, y, w, h int, c filterer.Pixel) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			img.Set(x+dx, y+dy, c) // Out of bounds writes are rejected and ignored.
		}
	}
}

// uniform creates a width x height image where every pixel is c.
func uniform(t testing.TB, width, height int, c filterer.Pixel) *filterer.Buffer {
	t.Helper()
	img, err := filterer.NewBlank(width, height)
	if err != nil {
		t.Fatal(err)
	}
	fillRect(img, 0, 0, width, height, c)
	return img
}

func mustAt(t testing.TB, img *filterer.Buffer, x, y int) filterer.Pixel {
	t.Helper()
	p, err := img.At(x, y)
	if err != nil {
		t.Fatal(err)
	}
	return p
}
