package nbt

import (
	"fmt"
	"log/slog"

	"github.com/arloliu/nbtkit/format"
	"github.com/arloliu/nbtkit/internal/options"
)

// MaxDepth is the default nesting limit for compounds and lists.
const MaxDepth = 512

// Option configures Decode, DecodeFile, NewEncoder, Marshal and WriteFile.
// Options that do not apply to an operation are ignored by it.
type Option = options.Option[*config]

type config struct {
	endianness format.Endianness
	retry      bool
	modified   bool
	maxDepth   int
	logger     *slog.Logger
}

func defaultConfig() *config {
	return &config{
		endianness: format.BigEndian,
		retry:      true,
		maxDepth:   MaxDepth,
		logger:     slog.New(slog.DiscardHandler),
	}
}

// WithEndianness sets the byte order assumed by Decode and used by NewEncoder.
func WithEndianness(order format.Endianness) Option {
	return options.New(func(c *config) error {
		if order != format.BigEndian && order != format.LittleEndian {
			return fmt.Errorf("invalid endianness: %s", order)
		}
		c.endianness = order

		return nil
	})
}

// WithoutRetry disables the opposite-byte-order retry in Decode.
func WithoutRetry() Option {
	return options.NoError(func(c *config) {
		c.retry = false
	})
}

// WithModifiedUTF8 makes the encoder write names and strings as Java
// modified UTF-8. Decoding accepts both forms regardless.
func WithModifiedUTF8() Option {
	return options.NoError(func(c *config) {
		c.modified = true
	})
}

// WithMaxDepth sets the nesting limit for compounds and lists.
func WithMaxDepth(depth int) Option {
	return options.New(func(c *config) error {
		if depth <= 0 {
			return fmt.Errorf("max depth must be positive, got %d", depth)
		}
		c.maxDepth = depth

		return nil
	})
}

// WithLogger routes debug output about retries and file I/O to logger.
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	})
}
