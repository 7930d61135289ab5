// Package format defines the identifiers stored in fixture headers.
package format

import "strings"

type (
	EncodingType    uint8
	CompressionType uint8
)

const (
	TypeRaw   EncodingType = 0x1 // TypeRaw stores each key at its fixed width.
	TypeDelta EncodingType = 0x2 // TypeDelta stores zigzag varint deltas between consecutive keys.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (e EncodingType) String() string {
	switch e {
	case TypeRaw:
		return "Raw"
	case TypeDelta:
		return "Delta"
	default:
		return "Unknown"
	}
}

// ParseEncodingType maps a case-insensitive name to an EncodingType.
func ParseEncodingType(name string) (EncodingType, bool) {
	switch strings.ToLower(name) {
	case "raw":
		return TypeRaw, true
	case "delta":
		return TypeDelta, true
	default:
		return 0, false
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompressionType maps a case-insensitive name to a CompressionType.
func ParseCompressionType(name string) (CompressionType, bool) {
	switch strings.ToLower(name) {
	case "none", "":
		return CompressionNone, true
	case "zstd":
		return CompressionZstd, true
	case "s2":
		return CompressionS2, true
	case "lz4":
		return CompressionLZ4, true
	default:
		return 0, false
	}
}
