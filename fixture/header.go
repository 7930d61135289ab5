package fixture

import (
	"fmt"

	"github.com/arloliu/radix/endian"
	"github.com/arloliu/radix/errs"
	"github.com/arloliu/radix/format"
)

const (
	// HeaderSize is the fixed size of a fixture header in bytes.
	HeaderSize = 24
	// Version is the fixture layout version written by Encode.
	Version = 1
)

var magic = [4]byte{'R', 'D', 'X', 'F'}

// Header is the fixed-size header at the start of a fixture.
type Header struct {
	Version      uint8                  // byte offset 4
	KeyWidth     uint8                  // byte offset 5
	Compression  format.CompressionType // byte offset 6
	Encoding     format.EncodingType    // byte offset 7
	Count        uint64                 // byte offset 8-15
	EncodedBytes uint32                 // byte offset 16-19
	Checksum     uint32                 // byte offset 20-23
}

// Bytes serializes the header.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	engine := endian.GetLittleEndianEngine()

	copy(b[0:4], magic[:])
	b[4] = h.Version
	b[5] = h.KeyWidth
	b[6] = byte(h.Compression)
	b[7] = byte(h.Encoding)
	engine.PutUint64(b[8:16], h.Count)
	engine.PutUint32(b[16:20], h.EncodedBytes)
	engine.PutUint32(b[20:24], h.Checksum)

	return b
}

// Parse parses and validates the header from data.
//
// Parameters:
//   - data: Byte slice starting with the header (at least HeaderSize bytes)
//
// Returns:
//   - error: ErrInvalidFixture for a short buffer, bad magic or bad field,
//     ErrUnsupportedVersion or ErrUnsupportedEncoding for unknown identifiers
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: %d bytes is shorter than the %d-byte header", errs.ErrInvalidFixture, len(data), HeaderSize)
	}
	if [4]byte(data[0:4]) != magic {
		return fmt.Errorf("%w: bad magic %q", errs.ErrInvalidFixture, data[0:4])
	}

	engine := endian.GetLittleEndianEngine()
	h.Version = data[4]
	h.KeyWidth = data[5]
	h.Compression = format.CompressionType(data[6])
	h.Encoding = format.EncodingType(data[7])
	h.Count = engine.Uint64(data[8:16])
	h.EncodedBytes = engine.Uint32(data[16:20])
	h.Checksum = engine.Uint32(data[20:24])

	return h.validate()
}

func (h *Header) validate() error {
	if h.Version != Version {
		return fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, h.Version)
	}
	if err := checkKeyWidth(int(h.KeyWidth)); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrInvalidFixture, err)
	}

	switch h.Encoding {
	case format.TypeRaw, format.TypeDelta:
	default:
		return fmt.Errorf("%w: %d", errs.ErrUnsupportedEncoding, h.Encoding)
	}

	switch h.Compression {
	case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
	default:
		return fmt.Errorf("%w: unknown compression %d", errs.ErrInvalidFixture, h.Compression)
	}

	return nil
}

func checkKeyWidth(width int) error {
	switch width {
	case 1, 2, 4, 8:
		return nil
	default:
		return fmt.Errorf("key width %d is not 1, 2, 4 or 8", width)
	}
}
