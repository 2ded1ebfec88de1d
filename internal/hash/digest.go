// Package hash provides the content fingerprint used to detect buffer
// mutation outside the view layer.
package hash

import "github.com/cespare/xxhash/v2"

// Digest computes the xxHash64 fingerprint of the given bytes.
func Digest(data []byte) uint64 {
	return xxhash.Sum64(data)
}
