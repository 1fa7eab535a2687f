package rgrid

import(
	"fmt"
)

// The pipeline passes a scene between stages in one of three
// representations: raw 16-bit samples as they come off the sensor, a
// normalized [0,1] float grid, and an 8-bit proxy used by the local
// contrast stage. All three are stride-backed so a whole row (or the
// whole grid) can be handed to raster block I/O as a flat slice.

// A Grid16 is a grid of raw uint16 intensity samples.
type Grid16 struct {
	stride int
	values []uint16
}

func NewGrid16(w, h int) *Grid16 {
	return &Grid16{
		stride: w,
		values: make([]uint16, w*h),
	}
}

func (g *Grid16)Set(x, y int, v uint16) { g.values[g.stride*y + x] = v }
func (g *Grid16)Get(x, y int) uint16    { return g.values[g.stride*y + x] }
func (g *Grid16)Dx() int                { return g.stride }
func (g *Grid16)Dy() int                { return len(g.values) / g.stride }
func (g *Grid16)Values() []uint16       { return g.values }

func (g *Grid16)String() string {
	min, max := uint16(0xFFFF), uint16(0)
	for _, v := range g.values {
		if v > max { max = v }
		if v < min { min = v }
	}
	return fmt.Sprintf("g16[%dx%d, vals{%d,%d}]", g.Dx(), g.Dy(), min, max)
}

// A FloatGrid is a grid of float64 samples, normalized to [0,1] while
// inside the pipeline.
type FloatGrid struct {
	stride int
	values []float64
}

func NewFloatGrid(w, h int) *FloatGrid {
	return &FloatGrid{
		stride: w,
		values: make([]float64, w*h),
	}
}

func (fg *FloatGrid)Set(x, y int, v float64) { fg.values[fg.stride*y + x] = v }
func (fg *FloatGrid)Get(x, y int) float64    { return fg.values[fg.stride*y + x] }
func (fg *FloatGrid)Dx() int                 { return fg.stride }
func (fg *FloatGrid)Dy() int                 { return len(fg.values) / fg.stride }
func (fg *FloatGrid)Values() []float64       { return fg.values }

// A ByteGrid is a grid of 8-bit proxy samples in [0,255].
type ByteGrid struct {
	stride int
	values []uint8
}

func NewByteGrid(w, h int) *ByteGrid {
	return &ByteGrid{
		stride: w,
		values: make([]uint8, w*h),
	}
}

func (bg *ByteGrid)Set(x, y int, v uint8) { bg.values[bg.stride*y + x] = v }
func (bg *ByteGrid)Get(x, y int) uint8    { return bg.values[bg.stride*y + x] }
func (bg *ByteGrid)Dx() int               { return bg.stride }
func (bg *ByteGrid)Dy() int               { return len(bg.values) / bg.stride }
func (bg *ByteGrid)Values() []uint8       { return bg.values }
