package raster

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/skysatprep/radprep/pkg/rgrid"
)

func TestMain(m *testing.M) {
	Register()
	os.Exit(m.Run())
}

// A plausible, complete sensor-model block. GDAL only persists the
// RPC namespace on GTiff when the full coefficient set is present.
func rpcFixture() map[string]string {
	zeros := strings.TrimSpace(strings.Repeat("0 ", 20))
	den := "1 " + strings.TrimSpace(strings.Repeat("0 ", 19))
	return map[string]string{
		"LINE_OFF":       "1080.5",
		"SAMP_OFF":       "1350.5",
		"LAT_OFF":        "58.12",
		"LONG_OFF":       "-134.45",
		"HEIGHT_OFF":     "500",
		"LINE_SCALE":     "1081",
		"SAMP_SCALE":     "1351",
		"LAT_SCALE":      "0.05",
		"LONG_SCALE":     "0.09",
		"HEIGHT_SCALE":   "501",
		"LINE_NUM_COEFF": zeros,
		"LINE_DEN_COEFF": den,
		"SAMP_NUM_COEFF": zeros,
		"SAMP_DEN_COEFF": den,
	}
}

func newPatternGrid(w, h int) *rgrid.Grid16 {
	g := rgrid.NewGrid16(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.Set(x, y, uint16((x*523+y*7919)%65536))
		}
	}
	return g
}

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rt.tif")

	g := newPatternGrid(48, 32)
	meta := map[string]string{"SENSOR": "SSC7", "ACQUIRED": "2024-03-01T19:05:11Z"}
	if err := WriteGrid16(path, g, meta); err != nil {
		t.Fatal(err)
	}

	d, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer d.Close()

	if d.Width() != 48 || d.Height() != 32 || d.BandCount() != 1 {
		t.Fatalf("structure %dx%d/%d, want 48x32/1", d.Width(), d.Height(), d.BandCount())
	}

	back, err := d.ReadGrid()
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range g.Values() {
		if back.Values()[i] != v {
			t.Fatalf("pixel %d = %d, want %d", i, back.Values()[i], v)
		}
	}

	got := d.Metadata()
	for k, v := range meta {
		if got[k] != v {
			t.Errorf("metadata %s = %q, want %q", k, got[k], v)
		}
	}
}

// Transplanting the same block twice must verify both times.
func TestRPCTransplantIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rpc.tif")
	if err := WriteGrid16(path, newPatternGrid(32, 32), nil); err != nil {
		t.Fatal(err)
	}

	rpc := rpcFixture()
	for round := 1; round <= 2; round++ {
		if !EmbedRPC(path, rpc) {
			t.Fatalf("round %d: embed failed", round)
		}
		if !VerifyRPC(path) {
			t.Fatalf("round %d: verify failed", round)
		}
	}
	if len(ReadRPC(path)) == 0 {
		t.Error("ReadRPC came back empty after transplant")
	}
}

func TestEmbedRPCEmptyBlock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "norpc.tif")
	if err := WriteGrid16(path, newPatternGrid(16, 16), nil); err != nil {
		t.Fatal(err)
	}
	if EmbedRPC(path, nil) {
		t.Error("embedding an empty block should report failure")
	}
	if VerifyRPC(path) {
		t.Error("verify should fail when nothing was embedded")
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.tif")); err == nil {
		t.Error("want error for missing file")
	}
	if len(ReadRPC("/does/not/exist.tif")) != 0 {
		t.Error("ReadRPC on a missing file should be empty")
	}
}
