package codec

import (
	"math"

	"github.com/nkashyap/boi/errs"
	"github.com/nkashyap/boi/format"
)

// maxDimension is the largest width or height BOI can represent: the
// header stores each as a 32-bit field (spec.md §3).
const maxDimension = math.MaxUint32

// validateDimensions checks width, height and channels against spec.md's
// preconditions and returns the pixel count (width*height) on success.
func validateDimensions(width, height int, channels format.Channels) (int, error) {
	if !channels.Valid() {
		return 0, errs.ErrUnsupportedChannels
	}
	if width <= 0 || height <= 0 || width > maxDimension || height > maxDimension {
		return 0, errs.ErrInvalidDimensions
	}

	totalPixels := int64(width) * int64(height)
	if totalPixels*int64(channels) > math.MaxInt32 {
		return 0, errs.ErrInvalidDimensions
	}

	return int(totalPixels), nil
}
