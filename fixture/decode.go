package fixture

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"

	"github.com/arloliu/radix/compress"
	"github.com/arloliu/radix/endian"
	"github.com/arloliu/radix/errs"
	"github.com/arloliu/radix/format"
)

// Dataset is a decoded fixture.
type Dataset struct {
	Header Header
	// Keys holds the keys widened to uint64, in stored order.
	Keys []uint64
}

// Decode parses a fixture produced by Encode.
//
// The checksum is verified before the payload is decompressed, and the decoded
// key count must match the header exactly.
//
// Returns:
//   - *Dataset: The header and keys
//   - error: ErrInvalidFixture, ErrUnsupportedVersion, ErrUnsupportedEncoding
//     or ErrChecksumMismatch
func Decode(data []byte) (*Dataset, error) {
	var h Header
	if err := h.Parse(data); err != nil {
		return nil, err
	}

	payload := data[HeaderSize:]
	if sum := crc32.ChecksumIEEE(payload); sum != h.Checksum {
		return nil, fmt.Errorf("%w: header %08x, payload %08x", errs.ErrChecksumMismatch, h.Checksum, sum)
	}

	codec, err := compress.GetCodec(h.Compression)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidFixture, err)
	}

	encoded, err := codec.Decompress(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidFixture, err)
	}
	if len(encoded) != int(h.EncodedBytes) {
		return nil, fmt.Errorf("%w: payload decoded to %d bytes, header says %d", errs.ErrInvalidFixture, len(encoded), h.EncodedBytes)
	}

	var keys []uint64
	switch h.Encoding {
	case format.TypeDelta:
		keys, err = decodeDelta(encoded, h.Count)
	default:
		keys, err = decodeRaw(encoded, h.Count, int(h.KeyWidth))
	}
	if err != nil {
		return nil, err
	}

	return &Dataset{Header: h, Keys: keys}, nil
}

func decodeRaw(encoded []byte, count uint64, width int) ([]uint64, error) {
	if count > uint64(len(encoded)) || uint64(len(encoded)) != count*uint64(width) {
		return nil, fmt.Errorf("%w: %d payload bytes for %d keys of width %d", errs.ErrInvalidFixture, len(encoded), count, width)
	}

	engine := endian.GetLittleEndianEngine()
	keys := make([]uint64, count)
	for i := range keys {
		b := encoded[i*width : (i+1)*width]
		switch width {
		case 1:
			keys[i] = uint64(b[0])
		case 2:
			keys[i] = uint64(engine.Uint16(b))
		case 4:
			keys[i] = uint64(engine.Uint32(b))
		default:
			keys[i] = engine.Uint64(b)
		}
	}

	return keys, nil
}

func decodeDelta(encoded []byte, count uint64) ([]uint64, error) {
	// Every key takes at least one byte.
	if count > uint64(len(encoded)) {
		return nil, fmt.Errorf("%w: %d payload bytes cannot hold %d keys", errs.ErrInvalidFixture, len(encoded), count)
	}

	keys := make([]uint64, count)
	var prev uint64
	offset := 0
	for i := range keys {
		zigzag, n := binary.Uvarint(encoded[offset:])
		if n <= 0 {
			return nil, fmt.Errorf("%w: malformed varint at byte %d", errs.ErrInvalidFixture, offset)
		}
		offset += n

		delta := int64(zigzag>>1) ^ -int64(zigzag&1) //nolint:gosec
		prev += uint64(delta)                        //nolint:gosec
		keys[i] = prev
	}

	if offset != len(encoded) {
		return nil, fmt.Errorf("%w: %d trailing payload bytes", errs.ErrInvalidFixture, len(encoded)-offset)
	}

	return keys, nil
}

// Len returns the number of keys.
func (d *Dataset) Len() int {
	return len(d.Keys)
}

// Uint8s returns the keys narrowed to uint8. Keys are expected to fit.
func (d *Dataset) Uint8s() []uint8 {
	return narrow[uint8](d.Keys)
}

// Uint16s returns the keys narrowed to uint16.
func (d *Dataset) Uint16s() []uint16 {
	return narrow[uint16](d.Keys)
}

// Uint32s returns the keys narrowed to uint32.
func (d *Dataset) Uint32s() []uint32 {
	return narrow[uint32](d.Keys)
}

// Uint64s returns a copy of the keys.
func (d *Dataset) Uint64s() []uint64 {
	return narrow[uint64](d.Keys)
}

func narrow[K uint8 | uint16 | uint32 | uint64](keys []uint64) []K {
	out := make([]K, len(keys))
	for i, k := range keys {
		out[i] = K(k)
	}

	return out
}
