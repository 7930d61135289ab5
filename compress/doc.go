// Package compress provides the block codecs used to shrink fixture payloads.
//
// A fixture records which codec compressed its payload, so a dataset written
// with one codec is read back with the same one:
//   - None: payload stored as-is
//   - Zstd: best ratio, used for large archived datasets
//   - S2: fast with a good ratio
//   - LZ4: fastest decompression
//
// Codecs are stateless values and safe for concurrent use. Zstd and LZ4 keep
// pooled encoders internally.
//
// The pure Go zstd implementation from klauspost/compress is used by default.
// Building with cgo and the gozstd tag switches to the libzstd binding.
package compress
