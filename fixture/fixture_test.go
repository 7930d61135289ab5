package fixture

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/radix/errs"
	"github.com/arloliu/radix/format"
)

func TestHeader_RoundTrip(t *testing.T) {
	h := Header{
		Version:      Version,
		KeyWidth:     4,
		Compression:  format.CompressionS2,
		Encoding:     format.TypeDelta,
		Count:        12345,
		EncodedBytes: 999,
		Checksum:     0xDEADBEEF,
	}

	b := h.Bytes()
	require.Len(t, b, HeaderSize)
	require.Equal(t, []byte("RDXF"), b[0:4])

	var parsed Header
	require.NoError(t, parsed.Parse(b))
	require.Equal(t, h, parsed)
}

func TestHeader_ParseErrors(t *testing.T) {
	valid := Header{Version: Version, KeyWidth: 8, Compression: format.CompressionNone, Encoding: format.TypeRaw}

	tests := []struct {
		name   string
		mutate func(b []byte) []byte
		want   error
	}{
		{"short", func(b []byte) []byte { return b[:10] }, errs.ErrInvalidFixture},
		{"bad magic", func(b []byte) []byte { b[0] = 'X'; return b }, errs.ErrInvalidFixture},
		{"version", func(b []byte) []byte { b[4] = 9; return b }, errs.ErrUnsupportedVersion},
		{"key width", func(b []byte) []byte { b[5] = 3; return b }, errs.ErrInvalidFixture},
		{"compression", func(b []byte) []byte { b[6] = 0x40; return b }, errs.ErrInvalidFixture},
		{"encoding", func(b []byte) []byte { b[7] = 0x3; return b }, errs.ErrUnsupportedEncoding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h Header
			err := h.Parse(tt.mutate(valid.Bytes()))
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestEncodeDecode_AllCombinations(t *testing.T) {
	encodings := []format.EncodingType{format.TypeRaw, format.TypeDelta}
	compressions := []format.CompressionType{
		format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4,
	}

	for _, width := range []int{1, 2, 4, 8} {
		keys, err := Generate(3000, width, Uniform, uint64(width))
		require.NoError(t, err)

		for _, enc := range encodings {
			for _, comp := range compressions {
				name := enc.String() + "/" + comp.String()
				t.Run(name, func(t *testing.T) {
					data, err := Encode(keys, WithKeyWidth(width), WithEncoding(enc), WithCompression(comp))
					require.NoError(t, err)

					ds, err := Decode(data)
					require.NoError(t, err)
					require.Equal(t, keys, ds.Keys)
					require.Equal(t, uint8(width), ds.Header.KeyWidth)
					require.Equal(t, enc, ds.Header.Encoding)
					require.Equal(t, comp, ds.Header.Compression)
					require.Equal(t, len(keys), ds.Len())
				})
			}
		}
	}
}

func TestEncode_Empty(t *testing.T) {
	data, err := Encode(nil, WithCompression(format.CompressionZstd))
	require.NoError(t, err)

	ds, err := Decode(data)
	require.NoError(t, err)
	require.Empty(t, ds.Keys)
}

func TestEncode_DeltaIsSmallForSortedKeys(t *testing.T) {
	keys := make([]uint64, 1000)
	for i := range keys {
		keys[i] = 1_000_000 + uint64(i)
	}

	raw, err := Encode(keys)
	require.NoError(t, err)
	delta, err := Encode(keys, WithEncoding(format.TypeDelta))
	require.NoError(t, err)

	require.Equal(t, HeaderSize+8000, len(raw))
	require.Less(t, len(delta), HeaderSize+1100)
}

func TestEncode_DeltaHandlesDescendingAndWrapping(t *testing.T) {
	keys := []uint64{^uint64(0), 0, 5, 3, 1 << 63, 1}

	data, err := Encode(keys, WithEncoding(format.TypeDelta))
	require.NoError(t, err)

	ds, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, keys, ds.Keys)
}

func TestEncode_Errors(t *testing.T) {
	_, err := Encode([]uint64{1}, WithKeyWidth(3))
	require.ErrorIs(t, err, errs.ErrInvalidOption)

	_, err = Encode([]uint64{1}, WithEncoding(format.EncodingType(0x3)))
	require.ErrorIs(t, err, errs.ErrUnsupportedEncoding)

	_, err = Encode([]uint64{1}, WithCompression(format.CompressionType(0x40)))
	require.ErrorIs(t, err, errs.ErrInvalidOption)

	_, err = Encode([]uint64{1, 256}, WithKeyWidth(1))
	require.ErrorIs(t, err, errs.ErrInvalidFixture)
}

func TestDecode_Corruption(t *testing.T) {
	keys, err := Generate(500, 4, Narrow, 7)
	require.NoError(t, err)

	data, err := Encode(keys, WithKeyWidth(4), WithCompression(format.CompressionS2))
	require.NoError(t, err)

	t.Run("payload bit flip", func(t *testing.T) {
		bad := append([]byte(nil), data...)
		bad[len(bad)-1] ^= 0x01

		_, err := Decode(bad)
		require.ErrorIs(t, err, errs.ErrChecksumMismatch)
	})

	t.Run("truncated payload", func(t *testing.T) {
		_, err := Decode(data[:len(data)-4])
		require.ErrorIs(t, err, errs.ErrChecksumMismatch)
	})

	t.Run("count mismatch", func(t *testing.T) {
		var h Header
		require.NoError(t, h.Parse(data))
		h.Count++

		bad := append(h.Bytes(), data[HeaderSize:]...)
		_, err := Decode(bad)
		require.ErrorIs(t, err, errs.ErrInvalidFixture)
	})
}

func TestDataset_Narrowing(t *testing.T) {
	ds := &Dataset{Keys: []uint64{1, 255, 65535, 1 << 32}}

	require.Equal(t, []uint8{1, 255, 255, 0}, ds.Uint8s())
	require.Equal(t, []uint16{1, 255, 65535, 0}, ds.Uint16s())
	require.Equal(t, []uint32{1, 255, 65535, 0}, ds.Uint32s())

	u64 := ds.Uint64s()
	u64[0] = 42
	require.Equal(t, uint64(1), ds.Keys[0], "Uint64s must copy")
}

func TestGenerate(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		a, err := Generate(100, 8, Uniform, 42)
		require.NoError(t, err)
		b, err := Generate(100, 8, Uniform, 42)
		require.NoError(t, err)
		require.Equal(t, a, b)
	})

	t.Run("respects width", func(t *testing.T) {
		keys, err := Generate(1000, 2, Uniform, 1)
		require.NoError(t, err)
		for _, k := range keys {
			require.LessOrEqual(t, k, uint64(0xffff))
		}
	})

	t.Run("narrow shares high digits", func(t *testing.T) {
		keys, err := Generate(1000, 8, Narrow, 3)
		require.NoError(t, err)
		for _, k := range keys {
			require.Equal(t, keys[0]>>8, k>>8)
		}
	})

	t.Run("sorted and reversed", func(t *testing.T) {
		asc, err := Generate(200, 4, Sorted, 5)
		require.NoError(t, err)
		require.IsNonDecreasing(t, asc)

		desc, err := Generate(200, 4, Reversed, 5)
		require.NoError(t, err)
		require.IsNonIncreasing(t, desc)
	})

	t.Run("errors", func(t *testing.T) {
		_, err := Generate(-1, 4, Uniform, 0)
		require.ErrorIs(t, err, errs.ErrInvalidOption)
		_, err = Generate(10, 5, Uniform, 0)
		require.ErrorIs(t, err, errs.ErrInvalidOption)
		_, err = Generate(10, 4, Distribution("zipf"), 0)
		require.ErrorIs(t, err, errs.ErrInvalidOption)
	})
}

func TestParseDistribution(t *testing.T) {
	d, err := ParseDistribution("Sorted")
	require.NoError(t, err)
	require.Equal(t, Sorted, d)

	_, err = ParseDistribution("gauss")
	require.ErrorIs(t, err, errs.ErrInvalidOption)
}
