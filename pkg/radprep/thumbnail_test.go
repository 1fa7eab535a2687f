package radprep

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/skysatprep/radprep/pkg/rgrid"
)

func TestWriteThumbnailDownsamples(t *testing.T) {
	bg := rgrid.NewByteGrid(200, 100)
	for i := range bg.Values() {
		bg.Values()[i] = uint8(i % 256)
	}

	out := filepath.Join(t.TempDir(), "thumb.png")
	if err := WriteThumbnail(bg, "scene_0001", out, 64); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 64 {
		t.Errorf("thumbnail width %d, want 64", img.Bounds().Dx())
	}
}

func TestWriteThumbnailKeepsSmallImages(t *testing.T) {
	bg := rgrid.NewByteGrid(40, 30)
	out := filepath.Join(t.TempDir(), "thumb.png")
	if err := WriteThumbnail(bg, "tiny", out, 1024); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 40 || img.Bounds().Dy() != 30 {
		t.Errorf("thumbnail %v, want 40x30", img.Bounds())
	}
}
