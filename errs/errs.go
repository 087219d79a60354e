// Package errs defines the sentinel errors returned by the BOI codec.
//
// Every fatal condition the codec can encounter has a corresponding
// package-level error value. Callers should use errors.Is to distinguish
// error kinds rather than comparing error strings.
package errs

import "errors"

var (
	// ErrTruncatedStream is returned when the bit stream reader requests
	// more bits than remain in the underlying buffer.
	ErrTruncatedStream = errors.New("boi: truncated bit stream")

	// ErrUnknownPrefix is returned when a prefix code read from the
	// stream does not match any of the seven defined block kinds.
	ErrUnknownPrefix = errors.New("boi: unknown block prefix")

	// ErrReservedBlockKind is returned when the decoder encounters the
	// reserved Gray (101) block kind, which the production encoder never
	// emits. Its presence indicates a corrupted or foreign stream.
	ErrReservedBlockKind = errors.New("boi: reserved block kind in stream")

	// ErrPaletteIndexOutOfRange is returned when a Palette block's
	// payload index is outside [0, 16).
	ErrPaletteIndexOutOfRange = errors.New("boi: palette index out of range")

	// ErrDimensionMismatch is returned when the number of pixels decoded
	// from the stream does not equal width*height.
	ErrDimensionMismatch = errors.New("boi: decoded pixel count does not match width*height")

	// ErrInvalidPixelBufferLength is returned by Encode when the input
	// byte slice length does not equal width*height*channels.
	ErrInvalidPixelBufferLength = errors.New("boi: pixel buffer length does not match width*height*channels")

	// ErrUnsupportedChannels is returned when a channel count other than
	// 3 (RGB) or 4 (RGBA) is requested.
	ErrUnsupportedChannels = errors.New("boi: channels must be 3 or 4")

	// ErrInvalidDimensions is returned when width or height is not
	// positive or does not fit the header's 32-bit field, or when
	// width*height*channels exceeds math.MaxInt32.
	ErrInvalidDimensions = errors.New("boi: invalid image dimensions")
)
