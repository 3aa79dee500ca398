package main

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/soypat/filterer"
)

func TestListFilters(t *testing.T) {
	var buf bytes.Buffer
	if err := listFilters(&buf, newRegistry()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		`"150% brightness"` + "\tBrightness=1.5",
		`"5x red"` + "\tChannel=Red Boost=5",
		`"graded red"`,
		`"sharper"` + "\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	fp, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer fp.Close()
	if err := png.Encode(fp, img); err != nil {
		t.Fatal(err)
	}
}

func TestApplyFilters(t *testing.T) {
	dir := t.TempDir()
	in, out := filepath.Join(dir, "in.png"), filepath.Join(dir, "out.png")
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := range src.Pix {
		src.Pix[i] = 200
		if i%4 == 3 {
			src.Pix[i] = 255
		}
	}
	writePNG(t, in, src)

	err := applyFilters(in, out, []string{"150% brightness"})
	if err != nil {
		t.Fatal(err)
	}
	fp, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer fp.Close()
	img, err := png.Decode(fp)
	if err != nil {
		t.Fatal(err)
	}
	got := color.RGBAModel.Convert(img.At(1, 1)).(color.RGBA)
	if got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("got %v", got)
	}
}

func TestApplyFiltersTranslucent(t *testing.T) {
	dir := t.TempDir()
	in, out := filepath.Join(dir, "in.png"), filepath.Join(dir, "out.png")
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := 0; i < len(src.Pix); i += 4 {
		src.Pix[i], src.Pix[i+1], src.Pix[i+2], src.Pix[i+3] = 200, 100, 20, 128
	}
	writePNG(t, in, src)

	err := applyFilters(in, out, []string{"150% brightness"})
	if err != nil {
		t.Fatal(err)
	}
	fp, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer fp.Close()
	img, err := png.Decode(fp)
	if err != nil {
		t.Fatal(err)
	}
	got := color.NRGBAModel.Convert(img.At(2, 3)).(color.NRGBA)
	if got != (color.NRGBA{R: 255, G: 150, B: 30, A: 128}) {
		t.Errorf("got %v", got)
	}
}

func TestApplyFiltersErrors(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	writePNG(t, in, image.NewRGBA(image.Rect(0, 0, 2, 2)))

	if err := applyFilters(in, filepath.Join(dir, "out.png"), nil); err == nil {
		t.Error("expected error without filters")
	}
	err := applyFilters(in, filepath.Join(dir, "out.png"), []string{"nonexistent"})
	if !errors.Is(err, filterer.ErrUnknownFilter) {
		t.Errorf("got %v, want ErrUnknownFilter", err)
	}
	err = applyFilters(in, filepath.Join(dir, "out.png"), []string{"sharper"})
	if !errors.Is(err, filterer.ErrImageTooSmall) {
		t.Errorf("got %v, want ErrImageTooSmall", err)
	}
}
