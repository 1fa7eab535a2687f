package radprep

import(
	"github.com/skysatprep/radprep/pkg/rgrid"
)

// ApplyTone runs the shadow/highlight curve over a [0,1] grid, in
// place:
//
//	y'  = y  + shadowBoost    * (1-y)^2   (lifts dark tones, vanishes near 1)
//	y'' = y' - highlightComp  * y'^2      (compresses bright tones, vanishes near 0)
//
// then clamps to [0,1]. For shadowBoost in [0,0.5] and highlightComp
// in [0,0.4] the composed curve is non-decreasing, so tone ordering
// survives into the contrast stages downstream. Either term is
// skipped when its parameter is <= 0.
func ApplyTone(fg *rgrid.FloatGrid, shadowBoost, highlightComp float64) {
	if shadowBoost <= 0 && highlightComp <= 0 {
		return
	}
	vals := fg.Values()
	for i, y := range vals {
		if shadowBoost > 0 {
			y = y + shadowBoost*(1.0-y)*(1.0-y)
		}
		if highlightComp > 0 {
			y = y - highlightComp*y*y
		}
		if y < 0 {
			y = 0
		} else if y > 1 {
			y = 1
		}
		vals[i] = y
	}
}
