// Package hashing lets values that are not Go-comparable (slices, maps) serve as
// grouping keys: they feed their contents into a hash.Hash, and a HashFunc turns
// that into a bucket key. Equality of colliding keys is resolved separately by
// the caller via compare.Comparable.
package hashing

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"hash"
	"slices"

	"github.com/OneOfOne/xxhash"
	"github.com/zeebo/xxh3"
)

// HashFunc is a function that takes a Hashable object
// and returns a string representation of its hashing.
type HashFunc func(hashable Hashable) (string, error)

// Hashable is an interface that allows an object to update
// a hash.Hash with its contents.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

func digest(h hash.Hash, hashable Hashable) (string, error) {
	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// Sha256 returns the SHA256 hashing of the given Hashable
// as a hex-encoded string.
func Sha256(hashable Hashable) (string, error) {
	return digest(sha256.New(), hashable)
}

// XXH3 returns the 64-bit XXH3 hash of the given Hashable as a hex-encoded string.
// It is the default for in-memory grouping, where speed matters and the hash
// never leaves the process.
func XXH3(hashable Hashable) (string, error) {
	return digest(xxh3.New(), hashable)
}

// XXHash64 returns the 64-bit xxHash of the given Hashable as a hex-encoded string.
func XXHash64(hashable Hashable) (string, error) {
	return digest(xxhash.New64(), hashable)
}

type HashableString string

func (s HashableString) String() string {
	return string(s)
}

func (s HashableString) UpdateHash(h hash.Hash) error {
	_, err := h.Write([]byte(s))

	return err
}

func (s HashableString) Equals(other HashableString) bool {
	return s == other
}

// HashableStrings is a composite key made of an ordered list of strings.
// ["ab", "c"] and ["a", "bc"] hash differently because every element is
// length-prefixed.
type HashableStrings []string

func (s HashableStrings) UpdateHash(h hash.Hash) error {
	var size [8]byte

	for _, part := range s {
		binary.LittleEndian.PutUint64(size[:], uint64(len(part)))

		if _, err := h.Write(size[:]); err != nil {
			return err
		}

		if _, err := h.Write([]byte(part)); err != nil {
			return err
		}
	}

	return nil
}

func (s HashableStrings) Equals(other HashableStrings) bool {
	return slices.Equal(s, other)
}
