package codec

import "github.com/nkashyap/boi/internal/bufpool"

// encodeConfig holds the tunable knobs for Encoder, set via Option values.
// None of these affect the bitstream produced; they only control allocation
// behavior.
type encodeConfig struct {
	pool         *bufpool.Pool
	capacityHint int
}

// Option configures an Encoder.
type Option func(*encodeConfig)

// WithBufferPool supplies a custom byte-buffer pool for the encoder's output
// buffer instead of the package default.
func WithBufferPool(pool *bufpool.Pool) Option {
	return func(c *encodeConfig) {
		c.pool = pool
	}
}

// WithCapacityHint overrides the encoder's initial output buffer allocation.
// The default is width*height bytes, a deliberate over-estimate (spec.md
// §5) that avoids reallocation for typical images.
func WithCapacityHint(bytes int) Option {
	return func(c *encodeConfig) {
		c.capacityHint = bytes
	}
}
