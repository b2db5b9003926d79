package arena

import (
	"fmt"
	"math/bits"
	"reflect"
	"unsafe"
)

// Alloc copies value into the arena and returns a pointer to the copy.
// The returned pointer is valid as long as the arena hasn't been released.
func Alloc[T any](a *Arena, value T) *T {
	p := (*T)(a.alloc(unsafe.Sizeof(value), unsafe.Alignof(value)))
	*p = value
	return p
}

// AllocZeroed returns a pointer to a zero T stored inside the arena.
// Pages are never reused, so fresh arena memory is always zero.
func AllocZeroed[T any](a *Arena) *T {
	var zero T
	return (*T)(a.alloc(unsafe.Sizeof(zero), unsafe.Alignof(zero)))
}

// AllocSlice allocates a zeroed slice of n elements of type T inside the arena.
// Returns nil if n <= 0.
func AllocSlice[T any](a *Arena, n int) []T {
	if n <= 0 {
		a.panicIfReleased()
		return nil
	}
	var zero T
	elemSize := unsafe.Sizeof(zero)
	hi, total := bits.Mul64(uint64(elemSize), uint64(n))
	if hi != 0 || total > uint64(^uintptr(0)>>1) {
		panic(fmt.Errorf("%w: slice of %d elements of %d bytes overflows", ErrPageAlloc, n, elemSize))
	}
	return unsafe.Slice((*T)(a.alloc(uintptr(total), unsafe.Alignof(zero))), n)
}

// CopySlice copies src into the arena and returns the arena-resident copy.
// Returns nil if src is empty.
func CopySlice[T any](a *Arena, src []T) []T {
	dst := AllocSlice[T](a, len(src))
	copy(dst, src)
	return dst
}

// Adopt returns value with its backing memory owned by the arena.
// Every string in value, at the top level or inside struct fields and arrays,
// is copied into the arena. Pointers and slices are left as they are and must
// already reference memory that outlives the arena's use.
//
// Types holding interfaces, maps, channels or funcs cannot be kept alive from
// arena memory; Adopt panics with an error wrapping ErrUnsupportedType for
// them. Containers call Adopt on every key and element they store.
func Adopt[T any](a *Arena, value T) T {
	l := layoutOf(reflect.TypeFor[T]())
	if l.err != nil {
		panic(l.err)
	}
	if len(l.strings) == 0 {
		return value
	}
	base := unsafe.Pointer(&value)
	for _, off := range l.strings {
		s := (*string)(unsafe.Add(base, off))
		*s = a.AllocString(*s)
	}
	return value
}
