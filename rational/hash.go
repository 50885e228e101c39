package rational

import (
	"encoding/binary"
	"hash"

	"github.com/amp-labs/amp-fraction/compare"
	"github.com/amp-labs/amp-fraction/hashing"
)

var _ hashing.Hashable = Rational{}

var _ compare.Sortable[Rational] = Rational{}

// UpdateHash writes the canonical numerator and denominator to h, so equal
// rationals always hash equally.
func (x Rational) UpdateHash(h hash.Hash) error {
	var buf [16]byte

	binary.BigEndian.PutUint64(buf[:8], uint64(x.num))   //nolint:gosec
	binary.BigEndian.PutUint64(buf[8:], uint64(x.Den())) //nolint:gosec

	_, err := h.Write(buf[:])

	return err
}
