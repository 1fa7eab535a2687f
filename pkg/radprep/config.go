package radprep

import(
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Verbosity        int

	StretchLoPrct    float64  // Low percentile for the contrast stretch
	StretchHiPrct    float64  // High percentile for the contrast stretch
	ClaheClip        float64  // Local contrast clip limit; <=0 disables the stage
	ClaheTiles       int      // Local contrast tile grid (NxN)
	ShadowBoost      float64  // Shadow lift strength, 0..0.5
	HighlightComp    float64  // Highlight compression strength, 0..0.4

	BuildPyramids    bool
	BuildQuicklook   bool
	RemoveQuicklook  bool     // Delete the quicklook right after building it
	DEM              string   // Terrain model for the RPC warp (ellipsoidal heights recommended)
	TargetSRS        string   // e.g. EPSG:32608
	QuicklookRes     float64  // Quicklook ground resolution, map units

	Thumbnail        bool
	ThumbnailWidth   int      // Max width of the browse PNG, pixels
}

func NewConfig() Config {
	return Config{
		StretchLoPrct:  1.0,
		StretchHiPrct:  99.0,
		ClaheClip:      3.0,
		ClaheTiles:     8,
		ShadowBoost:    0.20,
		HighlightComp:  0.10,
		QuicklookRes:   1.0,
		ThumbnailWidth: 1024,
	}
}

func newConfigFromYaml(b []byte) (Config, error) {
	c := NewConfig()
	err := yaml.Unmarshal(b, &c)
	return c, err
}

func (c Config)AsYaml() string {
	b, err := yaml.Marshal(c)
	if err != nil {
		log.Fatalf("Can't marshal config yaml: %v\n", err)
	}
	return string(b)
}

func LoadConfigFile(filename string) (Config, error) {
	contents, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("config read %s: %v", filename, err)
	}
	return newConfigFromYaml(contents)
}

// QuicklookEnabled reports whether all three of {terrain model, target
// CRS, resolution} are present alongside the flag. When any is
// missing the quicklook is skipped outright, not warned about.
func (c Config)QuicklookEnabled() bool {
	return c.BuildQuicklook && c.DEM != "" && c.TargetSRS != "" && c.QuicklookRes > 0
}
