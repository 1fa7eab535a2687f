package radprep

import(
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/skysatprep/radprep/pkg/raster"
)

// Derived products are a convenience layer over the primary
// deliverable: internal pyramids for fast display, and an RPC-warped
// quicklook for visual inspection. Both are best-effort; a failure is
// logged by the caller and never aborts the scene.

var OverviewLevels = []int{2, 4, 8, 16, 32}

// The two raster-tool operations are package-level function values so
// tests can capture the argument contract without touching GDAL.
var (
	buildOverviewsFn = raster.BuildOverviews
	warpFn           = raster.Warp
)

// BuildPyramids builds internal overviews with averaging resampling.
func BuildPyramids(path string) error {
	return buildOverviewsFn(path, OverviewLevels)
}

// QuicklookSwitches is the gdalwarp argument contract for an
// RPC-based, DEM-corrected, bilinear warp to the target CRS, with
// tiled deflate-compressed output.
func QuicklookSwitches(dem, targetSRS string, res float64) []string {
	r := strconv.FormatFloat(res, 'g', -1, 64)
	return []string{
		"-rpc",
		"-t_srs", targetSRS,
		"-tr", r, r,
		"-r", "bilinear",
		"-multi", "-wm", "2048",
		"-overwrite",
		"-co", "TILED=YES",
		"-co", "COMPRESS=DEFLATE",
		"-co", "PREDICTOR=2",
		"-co", "ZLEVEL=6",
		"-co", "BIGTIFF=IF_SAFER",
		"-wo", "RPC_DEM=" + dem,
	}
}

// MakeQuicklook warps src into <outDir>/<stem>_quicklook.tif using
// the sensor model embedded in src, so it must run after the RPC
// transplant. Returns the quicklook path.
func MakeQuicklook(src, outDir, dem, targetSRS string, res float64) (string, error) {
	stem := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	out := filepath.Join(outDir, stem+"_quicklook.tif")
	if err := warpFn(src, out, QuicklookSwitches(dem, targetSRS, res)); err != nil {
		return "", fmt.Errorf("quicklook warp for %s: %v", filepath.Base(src), err)
	}
	return out, nil
}
