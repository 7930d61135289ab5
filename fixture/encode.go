package fixture

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"math"

	"github.com/arloliu/radix/compress"
	"github.com/arloliu/radix/endian"
	"github.com/arloliu/radix/errs"
	"github.com/arloliu/radix/format"
	"github.com/arloliu/radix/internal/options"
	"github.com/arloliu/radix/internal/pool"
)

// Encode serializes keys into a fixture.
//
// Parameters:
//   - keys: Keys in the order they should be read back
//   - opts: WithKeyWidth, WithEncoding, WithCompression
//
// Returns:
//   - []byte: The complete fixture, header included
//   - error: ErrInvalidOption for a bad option, ErrInvalidFixture when a key
//     does not fit in the key width or the payload is too large
func Encode(keys []uint64, opts ...Option) ([]byte, error) {
	cfg := &encoderConfig{
		keyWidth:    8,
		encoding:    format.TypeRaw,
		compression: format.CompressionNone,
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.CreateCodec(cfg.compression, "fixture")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidOption, err)
	}

	if cfg.keyWidth < 8 {
		limit := uint64(1)<<(8*cfg.keyWidth) - 1
		for i, k := range keys {
			if k > limit {
				return nil, fmt.Errorf("%w: key %d at index %d exceeds %d-byte width", errs.ErrInvalidFixture, k, i, cfg.keyWidth)
			}
		}
	}

	buf := pool.GetFixtureBuffer()
	defer pool.PutFixtureBuffer(buf)

	switch cfg.encoding {
	case format.TypeDelta:
		encodeDelta(buf, keys)
	default:
		encodeRaw(buf, keys, cfg.keyWidth)
	}

	if uint64(buf.Len()) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: encoded payload of %d bytes is too large", errs.ErrInvalidFixture, buf.Len())
	}

	payload, err := codec.Compress(buf.Bytes())
	if err != nil {
		return nil, err
	}

	h := Header{
		Version:      Version,
		KeyWidth:     uint8(cfg.keyWidth),
		Compression:  cfg.compression,
		Encoding:     cfg.encoding,
		Count:        uint64(len(keys)),
		EncodedBytes: uint32(buf.Len()),
		Checksum:     crc32.ChecksumIEEE(payload),
	}

	out := make([]byte, 0, HeaderSize+len(payload))
	out = append(out, h.Bytes()...)
	out = append(out, payload...)

	return out, nil
}

func encodeRaw(buf *pool.ByteBuffer, keys []uint64, width int) {
	buf.Grow(len(keys) * width)
	engine := endian.GetLittleEndianEngine()

	for _, k := range keys {
		switch width {
		case 1:
			buf.B = append(buf.B, byte(k))
		case 2:
			buf.B = engine.AppendUint16(buf.B, uint16(k))
		case 4:
			buf.B = engine.AppendUint32(buf.B, uint32(k))
		default:
			buf.B = engine.AppendUint64(buf.B, k)
		}
	}
}

// encodeDelta writes each key as the zigzag varint of its wrapping difference
// from the previous key; the first key is a delta from zero.
func encodeDelta(buf *pool.ByteBuffer, keys []uint64) {
	var prev uint64
	for _, k := range keys {
		delta := int64(k - prev) //nolint:gosec
		zigzag := uint64((delta << 1) ^ (delta >> 63))

		buf.Grow(binary.MaxVarintLen64)
		buf.B = binary.AppendUvarint(buf.B, zigzag)
		prev = k
	}
}
