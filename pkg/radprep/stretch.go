package radprep

import(
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/skysatprep/radprep/pkg/rgrid"
)

// RobustPercentiles derives the stretch range (lo, hi) from the
// pmin-th and pmax-th percentiles of the non-sentinel population:
// samples equal to 0 (no data) or 65535 (saturated) are excluded
// before ranking. Percentiles are linearly interpolated between
// ranked samples.
//
// This never fails. If the percentiles come back non-finite or
// inverted, the population's exact min and max are used instead; if
// there is no population at all (every sample is a sentinel), a fixed
// default range is returned so the rest of the pipeline stays alive.
// Note that a constant-valued population yields lo == hi here — the
// normalizer's floored divisor absorbs that case.
func RobustPercentiles(g *rgrid.Grid16, pmin, pmax float64) (float64, float64) {
	vals := make([]float64, 0, len(g.Values()))
	for _, v := range g.Values() {
		if v > 0 && v < 65535 {
			vals = append(vals, float64(v))
		}
	}
	if len(vals) == 0 {
		return 1.0, 99.0
	}

	sort.Float64s(vals)
	lo := stat.Quantile(pmin/100.0, stat.LinInterp, vals, nil)
	hi := stat.Quantile(pmax/100.0, stat.LinInterp, vals, nil)

	if math.IsNaN(lo) || math.IsInf(lo, 0) || math.IsNaN(hi) || math.IsInf(hi, 0) || hi <= lo {
		lo, hi = vals[0], vals[len(vals)-1]
	}
	return lo, hi
}
