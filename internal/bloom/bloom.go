// Package bloom derives the single-word bloom filter masks used by
// hashmap.BloomMap and hashset.BloomSet.
//
// A mask has up to three bits set. Each bit position is the top six bits of a
// different multiplicative mix of the key hash, so the positions are
// independent of the low hash bits that select a bucket.
package bloom

const (
	mix1 = 0x9e3779b97f4a7c15
	mix2 = 0xc2b2ae3d27d4eb4f
	mix3 = 0x165667b19e3779f9
)

// Mask returns the filter bits for a key with the given hash.
func Mask(hash uint64) uint64 {
	return 1<<((hash*mix1)>>58) | 1<<((hash*mix2)>>58) | 1<<((hash*mix3)>>58)
}

// Match reports whether every bit of mask is set in filter. A false result
// proves the key was never added.
func Match(filter, mask uint64) bool {
	return filter&mask == mask
}
