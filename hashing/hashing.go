// Package hashing abstracts over hash functions for values that know how to
// feed themselves into a hash.Hash.
package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"

	"github.com/OneOfOne/xxhash"
	"github.com/zeebo/xxh3"
)

// HashFunc hashes a Hashable and returns the digest as a hex string.
// Sha256, XXH3 and XXHash64 are HashFuncs.
type HashFunc func(hashable Hashable) (string, error)

// Hashable is implemented by values that can write their identity into a
// hash.Hash. Values that are equal must write the same bytes.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

// Sha256 returns the hex-encoded SHA-256 digest of hashable.
func Sha256(hashable Hashable) (string, error) {
	return digest(sha256.New(), hashable)
}

// XXH3 returns the hex-encoded 64-bit XXH3 digest of hashable. It is much
// faster than Sha256 and suited to in-process comparisons, not security.
func XXH3(hashable Hashable) (string, error) {
	return digest(xxh3.New(), hashable)
}

// XXHash64 returns the hex-encoded 64-bit xxHash digest of hashable.
func XXHash64(hashable Hashable) (string, error) {
	return digest(xxhash.New64(), hashable)
}

func digest(h hash.Hash, hashable Hashable) (string, error) {
	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// Slice hashes its elements in order, so two slices hash equally only if
// they hold equal elements in the same order.
type Slice[T Hashable] []T

func (s Slice[T]) UpdateHash(h hash.Hash) error {
	for _, item := range s {
		if err := item.UpdateHash(h); err != nil {
			return err
		}
	}

	return nil
}
