// Package mmap provides anonymous read-write memory mappings.
//
// The arena uses MapAnon to obtain pages outside the Go heap when it is
// configured with WithOffHeapPages. Such memory is not scanned by the garbage
// collector and must be returned explicitly with Close.
package mmap
