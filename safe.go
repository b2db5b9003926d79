package arena

import "sync"

// SafeArena is a mutex-protected wrapper around Arena for goroutines that
// must share one arena. Only allocation is serialized: containers built on
// the arena still need a single owner while they are mutated.
type SafeArena struct {
	mu sync.Mutex
	a  *Arena
}

// NewSafeArena creates a new thread-safe arena configured by opts.
func NewSafeArena(opts ...Option) *SafeArena {
	return &SafeArena{a: New(opts...)}
}

// AllocBytes thread-safely allocates n zeroed bytes.
// Returns nil if n <= 0.
func (s *SafeArena) AllocBytes(n int) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.AllocBytes(n)
}

// AllocString thread-safely copies str into the arena.
func (s *SafeArena) AllocString(str string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.AllocString(str)
}

// EnsureCapacity thread-safely ensures the current page has at least n free bytes.
func (s *SafeArena) EnsureCapacity(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.EnsureCapacity(n)
}

// Release thread-safely drops all pages and makes the arena unusable.
func (s *SafeArena) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Release()
}

// Generic allocation functions for SafeArena

// SafeAlloc thread-safely copies value into the arena.
func SafeAlloc[T any](s *SafeArena, value T) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Alloc(s.a, value)
}

// SafeAllocZeroed thread-safely returns a pointer to a zero T in the arena.
func SafeAllocZeroed[T any](s *SafeArena) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocZeroed[T](s.a)
}

// SafeAllocSlice thread-safely allocates a zeroed slice of n elements of type T.
func SafeAllocSlice[T any](s *SafeArena, n int) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocSlice[T](s.a, n)
}

// SafeCopySlice thread-safely copies src into the arena.
func SafeCopySlice[T any](s *SafeArena, src []T) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return CopySlice(s.a, src)
}
