package rgrid

import(
	"image"
	"math"
)

// Conversions between the three representations. Each is an affine
// map plus clipping; none may produce NaN/Inf or leave the target
// representation's range.

// Normalize maps raw samples through (v-lo)/(hi-lo) and clips to
// [0,1]. The divisor is floored at 1e-6 so a degenerate lo==hi range
// stays finite.
func (g *Grid16)Normalize(lo, hi float64) *FloatGrid {
	fg := NewFloatGrid(g.Dx(), g.Dy())
	div := hi - lo
	if div < 1e-6 { div = 1e-6 }
	for i, v := range g.values {
		f := (float64(v) - lo) / div
		if f < 0 { f = 0 } else if f > 1 { f = 1 }
		fg.values[i] = f
	}
	return fg
}

// ToBytes rounds a [0,1] grid into an 8-bit proxy.
func (fg *FloatGrid)ToBytes() *ByteGrid {
	bg := NewByteGrid(fg.Dx(), fg.Dy())
	for i, f := range fg.values {
		v := f*255.0 + 0.5
		if v < 0 { v = 0 } else if v > 255 { v = 255 }
		bg.values[i] = uint8(v)
	}
	return bg
}

func (bg *ByteGrid)ToFloat() *FloatGrid {
	fg := NewFloatGrid(bg.Dx(), bg.Dy())
	for i, v := range bg.values {
		fg.values[i] = float64(v) / 255.0
	}
	return fg
}

// Quantize16 rescales a [0,1] grid to the full uint16 range, rounding
// half up and clipping.
func (fg *FloatGrid)Quantize16() *Grid16 {
	g := NewGrid16(fg.Dx(), fg.Dy())
	for i, f := range fg.values {
		v := math.Floor(f*65535.0 + 0.5)
		if v < 0 { v = 0 } else if v > 65535 { v = 65535 }
		g.values[i] = uint16(v)
	}
	return g
}

// ToGray renders the proxy as a stdlib grayscale image, for browse
// products.
func (bg *ByteGrid)ToGray() *image.Gray {
	img := image.NewGray(image.Rectangle{Max: image.Point{bg.Dx(), bg.Dy()}})
	for y := 0; y < bg.Dy(); y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+bg.Dx()], bg.values[y*bg.stride:y*bg.stride+bg.Dx()])
	}
	return img
}

// https://www.sjbrown.co.uk/posts/gamma-correct-rendering/ - "linear RGB to sRGB"
// `f` is assumed to be in the range [0,1]
func GammaExpand_F64(f float64) float64 {
	if f <= 0.0031308 {
		return 12.92 * f
	}
	return 1.055 * math.Pow(f, 1.0/2.4) - 0.055
}
