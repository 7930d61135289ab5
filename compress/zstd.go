package compress

// ZstdCompressor provides Zstandard compression for fixture payloads.
//
// Sorted key datasets stored as deltas compress extremely well with zstd, which
// makes it the default for archived benchmark inputs.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(payload)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
