package radprep

import (
	"testing"

	"github.com/skysatprep/radprep/pkg/rgrid"
)

func TestQuantileSummary(t *testing.T) {
	g := rgrid.NewGrid16(10, 10)
	for i := range g.Values() {
		g.Values()[i] = uint16(i + 1) // 1..100
	}
	want := "n=100 p1=1 p25=25 p50=50 p75=75 p99=99"
	if got := QuantileSummary(g); got != want {
		t.Errorf("summary = %q, want %q", got, want)
	}
}

func TestQuantileSummarySentinelsOnly(t *testing.T) {
	g := rgrid.NewGrid16(4, 4)
	for i := range g.Values() {
		if i%2 == 0 {
			g.Values()[i] = 65535
		}
	}
	if got := QuantileSummary(g); got != "no valid samples (all nodata or saturated)" {
		t.Errorf("summary = %q", got)
	}
}
