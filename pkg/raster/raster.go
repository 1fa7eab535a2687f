package raster

// Thin wrapper around godal for the single-band GTiff handling this
// pipeline needs: block-wise uint16 read/write, the general and RPC
// metadata namespaces, and the two derived-product operations.

import (
	"fmt"

	"github.com/airbusgeo/godal"

	"github.com/skysatprep/radprep/pkg/rgrid"
)

// Creation options for every raster we write. Matches the product
// convention downstream tooling expects.
var creationOpts = []string{
	"TILED=YES",
	"COMPRESS=LZW",
	"PREDICTOR=2",
	"BLOCKXSIZE=1024",
	"BLOCKYSIZE=1024",
	"BIGTIFF=IF_SAFER",
}

// Register initializes the GDAL drivers. Call once at process start,
// before any Open or Create.
func Register() {
	godal.RegisterAll()
}

type Dataset struct {
	ds   *godal.Dataset
	path string
}

func Open(path string) (*Dataset, error) {
	ds, err := godal.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %v", path, err)
	}
	return &Dataset{ds: ds, path: path}, nil
}

func OpenUpdate(path string) (*Dataset, error) {
	ds, err := godal.Open(path, godal.Update())
	if err != nil {
		return nil, fmt.Errorf("open+w %s: %v", path, err)
	}
	return &Dataset{ds: ds, path: path}, nil
}

func (d *Dataset)Close() error   { return d.ds.Close() }
func (d *Dataset)Path() string   { return d.path }
func (d *Dataset)Width() int     { return d.ds.Structure().SizeX }
func (d *Dataset)Height() int    { return d.ds.Structure().SizeY }
func (d *Dataset)BandCount() int { return d.ds.Structure().NBands }

// ReadGrid reads band 1 into a Grid16, block by block. A source with
// another integer sample type is coerced to uint16 by GDAL's
// converting raster I/O.
func (d *Dataset)ReadGrid() (*rgrid.Grid16, error) {
	bnd := d.ds.Bands()[0]
	st := bnd.Structure()
	g := rgrid.NewGrid16(st.SizeX, st.SizeY)
	vals := g.Values()

	buf := make([]uint16, st.BlockSizeX*st.BlockSizeY)
	for block, ok := st.FirstBlock(), true; ok; block, ok = block.Next() {
		if err := bnd.Read(block.X0, block.Y0, buf, block.W, block.H); err != nil {
			return nil, fmt.Errorf("read block @%d,%d of %s: %v", block.X0, block.Y0, d.path, err)
		}
		for row := 0; row < block.H; row++ {
			off := (block.Y0+row)*st.SizeX + block.X0
			copy(vals[off:off+block.W], buf[row*block.W:(row+1)*block.W])
		}
	}
	return g, nil
}

// Metadata returns the dataset's default-domain metadata.
func (d *Dataset)Metadata() map[string]string {
	return d.ds.Metadatas()
}

// RPC returns the dataset's sensor-model namespace. Empty map when
// the source carries no sensor model.
func (d *Dataset)RPC() map[string]string {
	return d.ds.Metadatas(godal.Domain("RPC"))
}

func (d *Dataset)SetRPC(rpc map[string]string) error {
	for k, v := range rpc {
		if err := d.ds.SetMetadata(k, v, godal.Domain("RPC")); err != nil {
			return fmt.Errorf("set RPC %s on %s: %v", k, d.path, err)
		}
	}
	return nil
}

// WriteGrid16 creates a single-band uint16 GTiff at path, writes the
// grid block by block, marks 0 as no-data, and copies the given
// general metadata. The sensor model is deliberately NOT written
// here; it is transplanted (and verified) as a separate step after
// the pixel data is on disk. All buffers are flushed before return.
func WriteGrid16(path string, g *rgrid.Grid16, meta map[string]string) error {
	ds, err := godal.Create(godal.GTiff, path, 1, godal.UInt16, g.Dx(), g.Dy(),
		godal.CreationOption(creationOpts...))
	if err != nil {
		return fmt.Errorf("create %s: %v", path, err)
	}

	bnd := ds.Bands()[0]
	st := bnd.Structure()
	vals := g.Values()
	buf := make([]uint16, st.BlockSizeX*st.BlockSizeY)
	for block, ok := st.FirstBlock(), true; ok; block, ok = block.Next() {
		for row := 0; row < block.H; row++ {
			off := (block.Y0+row)*st.SizeX + block.X0
			copy(buf[row*block.W:(row+1)*block.W], vals[off:off+block.W])
		}
		if err := bnd.Write(block.X0, block.Y0, buf, block.W, block.H); err != nil {
			ds.Close()
			return fmt.Errorf("write block @%d,%d of %s: %v", block.X0, block.Y0, path, err)
		}
	}

	if err := bnd.SetNoData(0); err != nil {
		ds.Close()
		return fmt.Errorf("set nodata on %s: %v", path, err)
	}
	for k, v := range meta {
		if err := ds.SetMetadata(k, v); err != nil {
			ds.Close()
			return fmt.Errorf("set metadata %s on %s: %v", k, path, err)
		}
	}

	if err := ds.Close(); err != nil {
		return fmt.Errorf("flush+close %s: %v", path, err)
	}
	return nil
}

// BuildOverviews builds internal pyramids with averaging resampling.
func BuildOverviews(path string, levels []int) error {
	d, err := OpenUpdate(path)
	if err != nil {
		return err
	}
	if err := d.ds.BuildOverviews(godal.Levels(levels...), godal.Resampling(godal.Average)); err != nil {
		d.Close()
		return fmt.Errorf("build overviews on %s: %v", path, err)
	}
	return d.Close()
}

// Warp resamples src into dst using gdalwarp-style switches.
func Warp(src, dst string, switches []string) error {
	d, err := Open(src)
	if err != nil {
		return err
	}
	defer d.Close()

	warped, err := d.ds.Warp(dst, switches)
	if err != nil {
		return fmt.Errorf("warp %s -> %s: %v", src, dst, err)
	}
	if err := warped.Close(); err != nil {
		return fmt.Errorf("flush+close %s: %v", dst, err)
	}
	return nil
}
