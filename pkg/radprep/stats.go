package radprep

import(
	"fmt"

	"github.com/codahale/hdrhistogram"

	"github.com/skysatprep/radprep/pkg/rgrid"
)

// QuantileSummary describes the non-sentinel intensity population of
// a raw grid in one log line. Used by the pipeline at higher
// verbosity, and by radinfo.
func QuantileSummary(g *rgrid.Grid16) string {
	h := hdrhistogram.New(1, 65534, 3)
	for _, v := range g.Values() {
		if v > 0 && v < 65535 {
			h.RecordValue(int64(v))
		}
	}
	if h.TotalCount() == 0 {
		return "no valid samples (all nodata or saturated)"
	}
	return fmt.Sprintf("n=%d p1=%d p25=%d p50=%d p75=%d p99=%d",
		h.TotalCount(),
		h.ValueAtQuantile(1), h.ValueAtQuantile(25), h.ValueAtQuantile(50),
		h.ValueAtQuantile(75), h.ValueAtQuantile(99))
}
