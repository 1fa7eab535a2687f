package main

import(
	"flag"
	"log"

	"github.com/skysatprep/radprep/pkg/radprep"
	"github.com/skysatprep/radprep/pkg/raster"
)

var(
	fConfig        string
	fVerbosity     int

	fPair1Src      string
	fPair1Out      string
	fPair2Src      string
	fPair2Out      string

	fPmin          float64
	fPmax          float64
	fClahe         float64
	fTiles         int
	fShadowBoost   float64
	fHighlightComp float64

	fPyramids      bool
	fQuicklook     bool
	fRmQuicklook   bool
	fDEM           string
	fTargetSRS     string
	fQlRes         float64
	fThumb         bool
	fThumbWidth    int
)

func init() {
	flag.StringVar(&fConfig, "config", "", "optional yaml config file; flags given on the command line override it")
	flag.IntVar(&fVerbosity, "v", 0, "how verbose to get")

	flag.StringVar(&fPair1Src, "pair1src", "", "source dir for the first stereo pair (required)")
	flag.StringVar(&fPair1Out, "pair1out", "", "output dir for the first stereo pair (required)")
	flag.StringVar(&fPair2Src, "pair2src", "", "source dir for the second stereo pair")
	flag.StringVar(&fPair2Out, "pair2out", "", "output dir for the second stereo pair")

	flag.Float64Var(&fPmin, "pmin", 1.0, "low stretch percentile")
	flag.Float64Var(&fPmax, "pmax", 99.0, "high stretch percentile")
	flag.Float64Var(&fClahe, "clahe", 3.0, "local contrast clip limit (<=0 disables)")
	flag.IntVar(&fTiles, "tiles", 8, "local contrast tiles (NxN)")
	flag.Float64Var(&fShadowBoost, "shadowboost", 0.20, "lift shadows (0..0.5)")
	flag.Float64Var(&fHighlightComp, "highlightcomp", 0.10, "protect highlights (0..0.4)")

	flag.BoolVar(&fPyramids, "pyramids", false, "build internal overviews")
	flag.BoolVar(&fQuicklook, "quicklook", false, "create RPC-warped quicklooks")
	flag.BoolVar(&fRmQuicklook, "rmquicklook", false, "remove each quicklook after creation")
	flag.StringVar(&fDEM, "dem", "", "DEM for RPC warping (ellipsoidal heights recommended)")
	flag.StringVar(&fTargetSRS, "tsrs", "", "target CRS (e.g. EPSG:32608)")
	flag.Float64Var(&fQlRes, "qlres", 1.0, "quicklook resolution (map units)")
	flag.BoolVar(&fThumb, "thumb", false, "write an annotated browse PNG per scene")
	flag.IntVar(&fThumbWidth, "thumbwidth", 1024, "max browse PNG width, pixels")
	flag.Parse()

	log.Printf("radprep starting\n")
}

func main() {
	cfg := radprep.NewConfig()
	if fConfig != "" {
		var err error
		if cfg, err = radprep.LoadConfigFile(fConfig); err != nil {
			log.Fatal(err)
		}
	}

	// Only flags the user actually set override the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "v":             cfg.Verbosity = fVerbosity
		case "pmin":          cfg.StretchLoPrct = fPmin
		case "pmax":          cfg.StretchHiPrct = fPmax
		case "clahe":         cfg.ClaheClip = fClahe
		case "tiles":         cfg.ClaheTiles = fTiles
		case "shadowboost":   cfg.ShadowBoost = fShadowBoost
		case "highlightcomp": cfg.HighlightComp = fHighlightComp
		case "pyramids":      cfg.BuildPyramids = fPyramids
		case "quicklook":     cfg.BuildQuicklook = fQuicklook
		case "rmquicklook":   cfg.RemoveQuicklook = fRmQuicklook
		case "dem":           cfg.DEM = fDEM
		case "tsrs":          cfg.TargetSRS = fTargetSRS
		case "qlres":         cfg.QuicklookRes = fQlRes
		case "thumb":         cfg.Thumbnail = fThumb
		case "thumbwidth":    cfg.ThumbnailWidth = fThumbWidth
		}
	})

	if fPair1Src == "" || fPair1Out == "" {
		log.Fatal("need -pair1src and -pair1out")
	}
	if (fPair2Src == "") != (fPair2Out == "") {
		log.Fatal("need both of -pair2src and -pair2out, or neither")
	}
	if cfg.BuildQuicklook && !cfg.QuicklookEnabled() {
		log.Fatal("-quicklook needs -dem, -tsrs and a positive -qlres")
	}

	if cfg.Verbosity > 0 {
		log.Printf("Final configuration:-\n\n%s\n", cfg.AsYaml())
	}

	raster.Register()

	radprep.ProcessDir(fPair1Src, fPair1Out, cfg)
	if fPair2Src != "" {
		radprep.ProcessDir(fPair2Src, fPair2Out, cfg)
	}
}
