package radprep

import (
	"math/rand"
	"testing"

	"github.com/skysatprep/radprep/pkg/rgrid"
)

func TestClaheDisabledIsPassThrough(t *testing.T) {
	bg := rgrid.NewByteGrid(16, 16)
	if out := Clahe(bg, 0, 8); out != bg {
		t.Error("clip=0 should return the input grid untouched")
	}
	if out := Clahe(bg, -1, 8); out != bg {
		t.Error("clip<0 should return the input grid untouched")
	}
}

func TestClahePreservesShape(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	bg := rgrid.NewByteGrid(100, 60)
	for i := range bg.Values() {
		bg.Values()[i] = uint8(rng.Intn(256))
	}
	out := Clahe(bg, 3.0, 8)
	if out.Dx() != 100 || out.Dy() != 60 {
		t.Fatalf("output shape %dx%d, want 100x60", out.Dx(), out.Dy())
	}
	if out == bg {
		t.Error("enabled enhancer returned its input")
	}
}

// All tiles of a flat image build identical transfer functions, so
// the blended output must be flat too.
func TestClaheConstantImageStaysConstant(t *testing.T) {
	bg := rgrid.NewByteGrid(64, 64)
	for i := range bg.Values() {
		bg.Values()[i] = 137
	}
	out := Clahe(bg, 3.0, 8)
	first := out.Get(0, 0)
	for y := 0; y < out.Dy(); y++ {
		for x := 0; x < out.Dx(); x++ {
			if out.Get(x, y) != first {
				t.Fatalf("constant input varies at (%d,%d): %d vs %d", x, y, out.Get(x, y), first)
			}
		}
	}
}

// More tiles than pixels along an axis must not blow up; the grid is
// clamped to the image.
func TestClaheTinyImage(t *testing.T) {
	bg := rgrid.NewByteGrid(5, 3)
	for i := range bg.Values() {
		bg.Values()[i] = uint8(i * 20)
	}
	out := Clahe(bg, 3.0, 8)
	if out.Dx() != 5 || out.Dy() != 3 {
		t.Fatalf("output shape %dx%d, want 5x3", out.Dx(), out.Dy())
	}
}

func TestTileLUTMonotone(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	bg := rgrid.NewByteGrid(32, 32)
	for i := range bg.Values() {
		bg.Values()[i] = uint8(rng.Intn(256))
	}
	lut := tileLUT(bg, 0, 0, 32, 32, 2.5)
	for i := 1; i < 256; i++ {
		if lut[i] < lut[i-1] {
			t.Fatalf("lut not monotone at %d: %d < %d", i, lut[i], lut[i-1])
		}
	}
}
