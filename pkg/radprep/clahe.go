package radprep

import(
	"math"

	"github.com/skysatprep/radprep/pkg/rgrid"
)

// An Enhancer is the optional local-contrast backend, operating on
// the stretched 8-bit proxy. It is a capability: a build that has no
// enhancer sets DefaultEnhancer to nil and the pipeline degrades to
// pass-through instead of failing.
type Enhancer func(bg *rgrid.ByteGrid, clip float64, tiles int) *rgrid.ByteGrid

var DefaultEnhancer Enhancer = Clahe

// Clahe is contrast-limited adaptive histogram equalisation: the grid
// is cut into a tiles x tiles grid, each tile gets a clip-limited
// histogram-equalisation transfer function, and every output pixel
// bilinearly blends the transfer functions of the four surrounding
// tile centers so tile seams don't show. clip <= 0 is a pass-through.
func Clahe(bg *rgrid.ByteGrid, clip float64, tiles int) *rgrid.ByteGrid {
	if clip <= 0 || tiles < 1 {
		return bg
	}
	w, h := bg.Dx(), bg.Dy()
	if tiles > w { tiles = w }
	if tiles > h { tiles = h }
	tw := (w + tiles - 1) / tiles
	th := (h + tiles - 1) / tiles

	luts := make([][256]uint8, tiles*tiles)
	for ty := 0; ty < tiles; ty++ {
		for tx := 0; tx < tiles; tx++ {
			x0, y0 := tx*tw, ty*th
			x1, y1 := x0+tw, y0+th
			if x1 > w { x1 = w }
			if y1 > h { y1 = h }
			luts[ty*tiles+tx] = tileLUT(bg, x0, y0, x1, y1, clip)
		}
	}

	out := rgrid.NewByteGrid(w, h)
	for y := 0; y < h; y++ {
		gy := (float64(y)+0.5)/float64(th) - 0.5
		ty0 := int(math.Floor(gy))
		fy := gy - float64(ty0)
		ty1 := ty0 + 1
		if ty0 < 0 { ty0 = 0 }
		if ty1 > tiles-1 { ty1 = tiles - 1 }

		for x := 0; x < w; x++ {
			gx := (float64(x)+0.5)/float64(tw) - 0.5
			tx0 := int(math.Floor(gx))
			fx := gx - float64(tx0)
			tx1 := tx0 + 1
			if tx0 < 0 { tx0 = 0 }
			if tx1 > tiles-1 { tx1 = tiles - 1 }

			v := bg.Get(x, y)
			top := (1-fx)*float64(luts[ty0*tiles+tx0][v]) + fx*float64(luts[ty0*tiles+tx1][v])
			bot := (1-fx)*float64(luts[ty1*tiles+tx0][v]) + fx*float64(luts[ty1*tiles+tx1][v])
			out.Set(x, y, uint8((1-fy)*top+fy*bot+0.5))
		}
	}
	return out
}

// tileLUT builds the clip-limited equalisation transfer function for
// one tile. The histogram is clipped at clip times the uniform bin
// height, the excess is spread evenly over all bins, and the CDF is
// rescaled to [0,255]. The mapping is monotone by construction.
func tileLUT(bg *rgrid.ByteGrid, x0, y0, x1, y1 int, clip float64) [256]uint8 {
	var lut [256]uint8
	area := (x1 - x0) * (y1 - y0)
	if area <= 0 {
		for i := range lut {
			lut[i] = uint8(i)
		}
		return lut
	}

	var hist [256]int
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			hist[bg.Get(x, y)]++
		}
	}

	limit := int(clip * float64(area) / 256.0)
	if limit < 1 { limit = 1 }
	excess := 0
	for i := range hist {
		if hist[i] > limit {
			excess += hist[i] - limit
			hist[i] = limit
		}
	}
	add, rem := excess/256, excess%256
	for i := range hist {
		hist[i] += add
		if i < rem {
			hist[i]++
		}
	}

	cum := 0
	for i := range hist {
		cum += hist[i]
		lut[i] = uint8(float64(cum)*255.0/float64(area) + 0.5)
	}
	return lut
}
