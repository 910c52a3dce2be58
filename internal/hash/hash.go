// Package hash produces the content digests used as index keys.
//
// A digest is 16 hex characters derived from the raw note bytes. Three
// algorithms are supported, selectable via configuration.
package hash

import (
	"fmt"
	"hash/fnv"

	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/blake2b"
)

// Supported algorithm names (config values).
const (
	AlgXXH3    = "xxh3"    // Default, fastest
	AlgFNV1a   = "fnv"     // No external dependencies
	AlgBlake2b = "blake2b" // Best distribution
)

// Sum returns the 16 hex character digest of data using the named
// algorithm. Unknown names fall back to xxh3.
func Sum(data []byte, alg string) string {
	switch alg {
	case AlgFNV1a:
		h := fnv.New64a()
		h.Write(data)
		return fmt.Sprintf("%016x", h.Sum64())
	case AlgBlake2b:
		h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
		h.Write(data)
		return fmt.Sprintf("%016x", h.Sum(nil))
	default:
		return fmt.Sprintf("%016x", xxh3.Hash(data))
	}
}
