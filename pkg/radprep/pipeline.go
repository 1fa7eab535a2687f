package radprep

import(
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/skysatprep/radprep/pkg/raster"
)

// Result describes what one scene produced.
type Result struct {
	Dst       string
	Sidecars  []string
	Quicklook string  // empty when not built, or removed after building
	Thumbnail string
}

// ProcessOne runs the full per-scene pipeline: percentile stretch,
// optional local contrast, tone curve, requantize to uint16, write,
// RPC transplant + verify, then the optional derived products.
//
// Failures before the output raster exists are fatal for this scene
// and returned as errors. Everything after it (sensor model,
// pyramids, quicklook, thumbnail) is best-effort: the radiometric
// product is the deliverable, so those are logged as warnings and the
// scene still counts as processed.
func ProcessOne(srcPath, outDir string, cfg Config) (Result, error) {
	res := Result{}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return res, fmt.Errorf("mkdir %s: %v", outDir, err)
	}
	res.Sidecars = CopySidecars(srcPath, outDir)

	base := filepath.Base(srcPath)
	dst := filepath.Join(outDir, base)
	log.Printf("[RADPREP] %s", base)

	src, err := raster.Open(srcPath)
	if err != nil {
		return res, err
	}
	if n := src.BandCount(); n != 1 {
		src.Close()
		return res, fmt.Errorf("%s: expected 1 band, found %d", base, n)
	}
	g, err := src.ReadGrid()
	if err != nil {
		src.Close()
		return res, err
	}

	lo, hi := RobustPercentiles(g, cfg.StretchLoPrct, cfg.StretchHiPrct)
	if cfg.Verbosity > 0 {
		log.Printf("  stretch range [%.1f, %.1f]; %s", lo, hi, QuantileSummary(g))
	}
	fg := g.Normalize(lo, hi)

	if cfg.ClaheClip > 0 && DefaultEnhancer != nil {
		bg := DefaultEnhancer(fg.ToBytes(), cfg.ClaheClip, cfg.ClaheTiles)
		fg = bg.ToFloat()
	}

	ApplyTone(fg, cfg.ShadowBoost, cfg.HighlightComp)

	// Grab both metadata namespaces off the open source handle before
	// letting go of it; the general namespace is written with the
	// pixels, the sensor model is transplanted afterwards.
	meta := src.Metadata()
	rpc := src.RPC()
	src.Close()

	if err := raster.WriteGrid16(dst, fg.Quantize16(), meta); err != nil {
		return res, err
	}
	res.Dst = dst

	if len(rpc) == 0 {
		rpc = raster.ReadRPC(srcPath)
	}
	if !raster.EmbedRPC(dst, rpc) {
		log.Printf("[WARN] No RPC embedded for %s (source had none or write failed)", base)
	} else if !raster.VerifyRPC(dst) {
		log.Printf("[WARN] Could not verify RPC in %s", base)
	}

	if cfg.BuildPyramids {
		if err := BuildPyramids(dst); err != nil {
			log.Printf("[WARN] overview build failed for %s: %v", base, err)
		}
	}

	if cfg.Thumbnail {
		thumb := strings.TrimSuffix(dst, filepath.Ext(dst)) + "_thumb.png"
		if err := WriteThumbnail(fg.ToBytes(), base, thumb, cfg.ThumbnailWidth); err != nil {
			log.Printf("[WARN] %v", err)
		} else {
			res.Thumbnail = thumb
		}
	}

	if cfg.QuicklookEnabled() {
		ql, err := MakeQuicklook(dst, outDir, cfg.DEM, cfg.TargetSRS, cfg.QuicklookRes)
		if err != nil {
			log.Printf("[WARN] %v", err)
		} else if cfg.RemoveQuicklook {
			if rmErr := os.Remove(ql); rmErr != nil {
				log.Printf("[WARN] failed to remove quicklook %s: %v", filepath.Base(ql), rmErr)
			} else {
				log.Printf("  -> removed quicklook: %s", filepath.Base(ql))
			}
		} else {
			res.Quicklook = ql
		}
	}

	return res, nil
}
