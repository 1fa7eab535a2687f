package radprep

import(
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// SceneSuffix is the naming convention for this sensor's Level-1A
// panchromatic product, matched case-insensitively.
const SceneSuffix = "_basic_l1a_panchromatic_dn.tif"

// SidecarSuffixes are the metadata companions copied alongside a
// scene, matched by exact suffix against the scene's base name.
var SidecarSuffixes = []string{
	".RPB", ".rpb",
	"_RPC.TXT", "_rpc.txt",
	".json", ".JSON",
	"_metadata.json", "_METADATA.JSON",
	".imd", ".IMD",
	".xml", ".XML",
}

// FindScenes lists the matching rasters in dir, lexicographically.
func FindScenes(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("readdir %s: %v", dir, err)
	}
	scenes := []string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(e.Name()), SceneSuffix) {
			scenes = append(scenes, filepath.Join(dir, e.Name()))
		}
	}
	return scenes, nil
}

// CopySidecars copies any sidecar of the scene into dstDir.
// First-write-wins: an already-present destination sidecar is never
// overwritten, but still counts as accounted for.
func CopySidecars(srcTif, dstDir string) []string {
	name := filepath.Base(srcTif)
	base := strings.TrimSuffix(name, filepath.Ext(name))
	copied := []string{}
	for _, suf := range SidecarSuffixes {
		cand := filepath.Join(filepath.Dir(srcTif), base+suf)
		if _, err := os.Stat(cand); err != nil {
			continue
		}
		dst := filepath.Join(dstDir, base+suf)
		if _, err := os.Stat(dst); os.IsNotExist(err) {
			if err := copyFile(cand, dst); err != nil {
				log.Printf("[WARN] sidecar copy %s: %v", base+suf, err)
				continue
			}
		}
		copied = append(copied, base+suf)
	}
	return copied
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// ProcessDir runs the pipeline over every matching scene in srcDir,
// writing into outDir. A failure in one scene is logged and the batch
// moves on; nothing here aborts sibling scenes or the process. An
// empty match set is a warning, not an error.
func ProcessDir(srcDir, outDir string, cfg Config) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		log.Printf("[ERROR] mkdir %s: %v", outDir, err)
		return
	}
	scenes, err := FindScenes(srcDir)
	if err != nil {
		log.Printf("[ERROR] %v", err)
		return
	}
	if len(scenes) == 0 {
		log.Printf("[WARN] No SkySat L1A scenes found in %s", srcDir)
		return
	}

	for _, scene := range scenes {
		res, err := processScene(scene, outDir, cfg)
		if err != nil {
			log.Printf("[ERROR] %s: %v", filepath.Base(scene), err)
			continue
		}
		log.Printf("  -> wrote %s", filepath.Base(res.Dst))
		if len(res.Sidecars) > 0 {
			log.Printf("  -> sidecars: %s", strings.Join(res.Sidecars, ", "))
		}
		if res.Quicklook != "" {
			log.Printf("  -> quicklook: %s", filepath.Base(res.Quicklook))
		}
		if res.Thumbnail != "" {
			log.Printf("  -> thumbnail: %s", filepath.Base(res.Thumbnail))
		}
	}
}

// processScene fences one scene off from its siblings: even a panic
// somewhere in the stack comes back as this scene's error.
func processScene(scene, outDir string, cfg Config) (res Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return ProcessOne(scene, outDir, cfg)
}
