package raster

// The sensor model rides in the "RPC" metadata namespace as an opaque
// string map. The pipeline reads it from the untouched source, writes
// it into the freshly created output, and then re-opens the output
// read-only to confirm it actually landed — the raster library gives
// no guarantee of that by itself. All three steps are best-effort:
// the radiometric product is usable without a sensor model, so
// failures here are reported upstream as warnings, never as errors.

// ReadRPC returns the sensor-model namespace of the raster at path,
// or an empty map if the file cannot be opened or has none.
func ReadRPC(path string) map[string]string {
	d, err := Open(path)
	if err != nil {
		return map[string]string{}
	}
	defer d.Close()
	return d.RPC()
}

// EmbedRPC writes the block into the raster at path. Returns false
// when the block is empty, the target cannot be opened for update, or
// the write fails.
func EmbedRPC(path string, rpc map[string]string) bool {
	if len(rpc) == 0 {
		return false
	}
	d, err := OpenUpdate(path)
	if err != nil {
		return false
	}
	if err := d.SetRPC(rpc); err != nil {
		d.Close()
		return false
	}
	return d.Close() == nil
}

// VerifyRPC independently re-opens the raster read-only and reports
// whether its sensor-model namespace is non-empty. Idempotent: may be
// re-run against an existing output at any time.
func VerifyRPC(path string) bool {
	d, err := Open(path)
	if err != nil {
		return false
	}
	defer d.Close()
	return len(d.RPC()) > 0
}
