package radprep

import(
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"github.com/nfnt/resize"

	"github.com/skysatprep/radprep/pkg/rgrid"
)

// WriteThumbnail saves an annotated browse PNG of the processed
// scene: the 8-bit proxy, gamma-expanded so it looks normal for human
// vision, downsampled to at most maxWidth, with the scene id drawn in
// the corner.
func WriteThumbnail(bg *rgrid.ByteGrid, title, filename string, maxWidth int) error {
	gray := image.NewGray(image.Rectangle{Max: image.Point{bg.Dx(), bg.Dy()}})
	var lut [256]uint8
	for i := range lut {
		lut[i] = uint8(rgrid.GammaExpand_F64(float64(i)/255.0)*255.0 + 0.5)
	}
	for y := 0; y < bg.Dy(); y++ {
		for x := 0; x < bg.Dx(); x++ {
			gray.Pix[y*gray.Stride+x] = lut[bg.Get(x, y)]
		}
	}

	var img image.Image = gray
	if maxWidth > 0 && bg.Dx() > maxWidth {
		img = resize.Resize(uint(maxWidth), 0, gray, resize.Bilinear)
	}

	dc := gg.NewContextForImage(img)
	dc.SetRGB(1, 1, 1)
	dc.DrawString(title, 20, 30)
	if err := dc.SavePNG(filename); err != nil {
		return fmt.Errorf("thumbnail png '%s': %v", filename, err)
	}
	return nil
}
