package main

// radinfo prints what radprep cares about for one or more rasters:
// structure, metadata namespaces, and the non-sentinel intensity
// quantiles. Handy for eyeballing a product after a batch run.

import(
	"flag"
	"fmt"
	"log"

	"github.com/skysatprep/radprep/pkg/radprep"
	"github.com/skysatprep/radprep/pkg/raster"
)

var fSkipStats bool

func init() {
	flag.BoolVar(&fSkipStats, "nostats", false, "skip reading pixels for the quantile summary")
	flag.Parse()
}

func main() {
	if flag.NArg() == 0 {
		log.Fatal("usage: radinfo [-nostats] raster.tif ...")
	}

	raster.Register()

	for _, path := range flag.Args() {
		d, err := raster.Open(path)
		if err != nil {
			log.Printf("[ERROR] %v", err)
			continue
		}

		fmt.Printf("%s: %dx%d, %d band(s)\n", path, d.Width(), d.Height(), d.BandCount())
		fmt.Printf("  metadata: %d key(s)\n", len(d.Metadata()))
		if rpc := d.RPC(); len(rpc) > 0 {
			fmt.Printf("  sensor model: present (%d RPC keys)\n", len(rpc))
		} else {
			fmt.Printf("  sensor model: MISSING\n")
		}

		if !fSkipStats && d.BandCount() == 1 {
			g, err := d.ReadGrid()
			if err != nil {
				log.Printf("[ERROR] %v", err)
				d.Close()
				continue
			}
			fmt.Printf("  intensity: %s\n", radprep.QuantileSummary(g))
		}
		d.Close()
	}
}
