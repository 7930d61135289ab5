package fixture

import (
	"fmt"

	"github.com/arloliu/radix/errs"
	"github.com/arloliu/radix/format"
	"github.com/arloliu/radix/internal/options"
)

type encoderConfig struct {
	keyWidth    int
	encoding    format.EncodingType
	compression format.CompressionType
}

// Option configures Encode.
type Option = options.Option[*encoderConfig]

// WithKeyWidth sets the stored key width in bytes: 1, 2, 4 or 8. Default 8.
func WithKeyWidth(width int) Option {
	return options.New(func(c *encoderConfig) error {
		if err := checkKeyWidth(width); err != nil {
			return fmt.Errorf("%w: %w", errs.ErrInvalidOption, err)
		}
		c.keyWidth = width

		return nil
	})
}

// WithEncoding sets the payload encoding. Default format.TypeRaw.
func WithEncoding(encoding format.EncodingType) Option {
	return options.New(func(c *encoderConfig) error {
		switch encoding {
		case format.TypeRaw, format.TypeDelta:
			c.encoding = encoding
			return nil
		default:
			return fmt.Errorf("%w: %d", errs.ErrUnsupportedEncoding, encoding)
		}
	})
}

// WithCompression sets the payload codec. Default format.CompressionNone.
func WithCompression(compression format.CompressionType) Option {
	return options.NoError(func(c *encoderConfig) {
		c.compression = compression
	})
}
