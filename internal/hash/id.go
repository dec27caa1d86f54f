// Package hash provides the xxHash64 name-hashing used by the opt-in
// indexed compound, a hashed alternative to the default linear compound
// scan for callers who know a compound will be large.
package hash

import "github.com/cespare/xxhash/v2"

// Name computes the xxHash64 of a compound child's raw name bytes. Hashing
// the raw MUTF-8 bytes (not the decoded UTF-8 string) means indexed lookup
// never has to pay for MUTF-8 decoding just to find an entry.
func Name(name []byte) uint64 {
	return xxhash.Sum64(name)
}
