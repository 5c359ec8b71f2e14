package main

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Digest identifies an input pair.
type Digest [32]byte

// String returns the first 8 bytes in hex.
func (d Digest) String() string {
	return hex.EncodeToString(d[:8])
}

// DigestOf hashes source and target with length prefixes, so that moving
// a symbol across the boundary changes the digest.
func DigestOf(source, target []uint8) Digest {
	h := blake3.New()
	var n [8]byte
	binary.LittleEndian.PutUint64(n[:], uint64(len(source)))
	_, _ = h.Write(n[:])
	_, _ = h.Write(source)
	binary.LittleEndian.PutUint64(n[:], uint64(len(target)))
	_, _ = h.Write(n[:])
	_, _ = h.Write(target)

	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

// DigestSet remembers which input pairs were already reported.
type DigestSet struct {
	seen map[Digest]struct{}
}

// NewDigestSet returns an empty set.
func NewDigestSet() *DigestSet {
	return &DigestSet{seen: make(map[Digest]struct{})}
}

// Add records the pair and reports whether it was new.
func (s *DigestSet) Add(source, target []uint8) (Digest, bool) {
	d := DigestOf(source, target)
	if _, ok := s.seen[d]; ok {
		return d, false
	}
	s.seen[d] = struct{}{}
	return d, true
}

// Len returns the number of distinct pairs seen.
func (s *DigestSet) Len() int {
	return len(s.seen)
}
