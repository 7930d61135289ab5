// Package fixture reads and writes the binary key datasets used as benchmark
// inputs.
//
// # File Layout
//
// A fixture is a 24-byte little-endian header followed by one payload:
//
//	offset  size  field
//	0       4     magic "RDXF"
//	4       1     version (1)
//	5       1     key width in bytes (1, 2, 4 or 8)
//	6       1     compression type (format.CompressionType)
//	7       1     encoding type (format.EncodingType)
//	8       8     key count
//	16      4     encoded payload length before compression
//	20      4     CRC32 (IEEE) of the stored payload
//
// The payload holds the keys in their original order, either at their fixed
// width (Raw) or as zigzag varint deltas between consecutive keys (Delta), and
// is then compressed with the recorded codec.
//
// # Basic Usage
//
//	data, err := fixture.Encode(keys,
//	    fixture.WithKeyWidth(4),
//	    fixture.WithEncoding(format.TypeDelta),
//	    fixture.WithCompression(format.CompressionZstd),
//	)
//	...
//	ds, err := fixture.Decode(data)
//	keys32 := ds.Uint32s()
package fixture
