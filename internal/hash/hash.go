// Package hash computes the 64-bit key hashes used by the arena containers.
//
// Hashes are seeded once per process, so they are stable for the lifetime of
// the process but differ between runs. Nothing persists them.
package hash

import "hash/maphash"

var seed = maphash.MakeSeed()

// Of returns the hash of key. Equal keys always hash equally.
func Of[K comparable](key K) uint64 {
	return maphash.Comparable(seed, key)
}
