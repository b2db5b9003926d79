package arena

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/bits"
	"unsafe"

	"github.com/pavanmanishd/arena/v2/internal/mmap"
)

// DefaultPageSize is the default page size for new arenas (64 KiB).
const DefaultPageSize = 1 << 16

var (
	// ErrReleased is the panic value (wrapped) for any allocation after Release.
	ErrReleased = errors.New("arena: use after Release()")
	// ErrPageAlloc is the panic value (wrapped) when a new page cannot be obtained.
	ErrPageAlloc = errors.New("arena: page allocation failed")
)

// maxPageSize bounds a single page: 1<<47 bytes on 64-bit platforms and
// math.MaxInt32 on 32-bit ones, the most the runtime will hand out as one slice.
const maxPageSize = math.MaxInt >> (16 * (bits.UintSize / 64))

// zeroBase is the address handed out for zero-sized allocations.
var zeroBase uintptr

// page represents a single memory page within an arena.
type page struct {
	buf     []byte        // backing memory
	offset  uintptr       // allocation offset within buf
	mapping *mmap.Mapping // set for off-heap pages only
}

// Arena is a paged bump allocator. Not goroutine-safe.
// Use SafeArena when several goroutines must allocate from one arena.
//
// Memory handed out by an arena is never moved or reused until Release.
// The garbage collector does not scan arena pages: values placed in the arena
// may point into the same arena, but must not hold the only reference to
// ordinary heap objects. Strings can be copied in with AllocString or Adopt.
// The arena itself must stay reachable while its memory is in use.
type Arena struct {
	pages    []*page
	current  *page
	pageSize int
	offHeap  bool
	released bool
	logger   *slog.Logger

	// abandoned counts the free tails of pages that stopped being current.
	abandoned int
}

// New creates an empty Arena. No page is allocated until the first allocation.
func New(opts ...Option) *Arena {
	a := &Arena{
		pageSize: DefaultPageSize,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AllocBytes returns a zeroed []byte slice pointing into the arena.
// Returns nil if n <= 0.
func (a *Arena) AllocBytes(n int) []byte {
	if n <= 0 {
		a.panicIfReleased()
		return nil
	}
	return unsafe.Slice((*byte)(a.alloc(uintptr(n), 1)), n)
}

// AllocString copies s into the arena and returns the arena-resident copy.
func (a *Arena) AllocString(s string) string {
	if len(s) == 0 {
		a.panicIfReleased()
		return ""
	}
	b := a.AllocBytes(len(s))
	copy(b, s)
	return unsafe.String(&b[0], len(b))
}

// EnsureCapacity ensures the current page has at least n free bytes.
// If not, it grows the arena with a new page.
func (a *Arena) EnsureCapacity(n int) {
	a.panicIfReleased()
	if n <= 0 {
		return
	}
	if c := a.current; c != nil && c.offset+uintptr(n) <= uintptr(len(c.buf)) {
		return
	}
	a.grow(n)
}

// Release drops all pages and makes the arena unusable.
// Any subsequent allocation will panic with ErrReleased.
//
// No reference into the arena may be used after Release. Off-heap pages are
// unmapped immediately; heap pages are left to the garbage collector, which
// does not follow pointers stored inside them.
func (a *Arena) Release() {
	if a.released {
		return
	}
	a.logger.Debug("arena released", "pages", len(a.pages), "bytes_in_use", a.SizeInUse())
	for _, p := range a.pages {
		if p.mapping == nil {
			continue
		}
		if err := p.mapping.Close(); err != nil {
			a.logger.Warn("arena page unmap failed", "size", len(p.buf), "error", err)
		}
	}
	a.pages = nil
	a.current = nil
	a.abandoned = 0
	a.released = true
}

// Logger returns the logger the arena was configured with.
func (a *Arena) Logger() *slog.Logger {
	return a.logger
}

// alloc reserves size bytes aligned to align and returns their address.
func (a *Arena) alloc(size, align uintptr) unsafe.Pointer {
	a.panicIfReleased()
	if size == 0 {
		return unsafe.Pointer(&zeroBase)
	}

	// Fast path: bump within the current page
	if c := a.current; c != nil {
		if p, ok := c.take(size, align); ok {
			return p
		}
	}

	// Slow path: the request always fits in a fresh page
	if size > maxPageSize {
		panic(fmt.Errorf("%w: %d bytes exceed the %d byte page limit", ErrPageAlloc, size, maxPageSize))
	}
	need := size + align - 1
	c := a.grow(int(need))
	p, ok := c.take(size, align)
	if !ok {
		panic(fmt.Errorf("%w: %d bytes do not fit a %d byte page", ErrPageAlloc, size, len(c.buf)))
	}
	return p
}

// take bumps the page cursor, returning false if the page lacks room.
func (c *page) take(size, align uintptr) (unsafe.Pointer, bool) {
	base := uintptr(unsafe.Pointer(unsafe.SliceData(c.buf)))
	off := alignUp(base+c.offset, align) - base
	if off+size > uintptr(len(c.buf)) {
		return nil, false
	}
	c.offset = off + size
	return unsafe.Pointer(&c.buf[off]), true
}

// grow appends a new page of at least need bytes and makes it current.
func (a *Arena) grow(need int) *page {
	size := max(a.pageSize, need)
	if size > maxPageSize {
		panic(fmt.Errorf("%w: %d bytes exceed the %d byte page limit", ErrPageAlloc, size, maxPageSize))
	}

	if old := a.current; old != nil {
		a.abandoned += len(old.buf) - int(old.offset)
	}
	c := &page{}
	if a.offHeap {
		m, err := mmap.MapAnon(size)
		if err != nil {
			panic(fmt.Errorf("%w: %w", ErrPageAlloc, err))
		}
		c.buf = m.Bytes()
		c.mapping = m
	} else {
		c.buf = make([]byte, size)
	}

	a.pages = append(a.pages, c)
	a.current = c
	a.logger.Debug("arena page allocated",
		"page", len(a.pages)-1,
		"size", size,
		"requested", need,
		"off_heap", a.offHeap,
	)
	return c
}

// panicIfReleased panics if the arena has been released.
func (a *Arena) panicIfReleased() {
	if a.released {
		panic(ErrReleased)
	}
}

// alignUp rounds off up to a multiple of align, which must be a power of two.
func alignUp(off, align uintptr) uintptr {
	mask := align - 1
	return (off + mask) & ^mask
}
