// Package fingerprint computes content digests of byte buffers. cmd/boicat
// prints one for the decoded pixels, so two streams can be compared for
// identical pixel content with one comparison instead of a byte-slice
// equality check over a multi-megabyte buffer.
//
// Adapted from the corpus's internal/hash/id.go, which hashes metric name
// strings; this hashes arbitrary byte buffers instead.
package fingerprint

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 digest of data.
func ID(data []byte) uint64 {
	return xxhash.Sum64(data)
}
