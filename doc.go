// Package arena implements a paged bump allocator (memory arena) for Go,
// together with the CopyCell slot type used by the arena-resident containers
// in the list, hashmap and hashset packages.
//
// # Overview
//
// An arena hands out memory by advancing a cursor through large pages and
// frees everything at once. This is particularly useful for:
//
//   - Recursively nested, self-referential data such as syntax trees
//   - Many small nodes that all die together
//   - Reducing garbage collection pressure
//   - Cache-friendly layout of values built in sequence
//
// # Basic Usage
//
//	a := arena.New()   // 64 KiB pages, allocated lazily
//	defer a.Release()  // Drop every page at once
//
//	// Allocate typed values
//	p := arena.Alloc(a, Point{X: 1, Y: 2})
//	nums := arena.AllocSlice[int](a, 100)
//	name := a.AllocString("root")
//
// # Containers
//
// The list, hashmap and hashset packages build on the arena. Containers are
// created empty without allocating and take the arena on every mutating call:
//
//	var m hashmap.Map[string, int]
//	m.Insert(a, "answer", 42)
//	v, ok := m.Get("answer")
//
// # Interior Mutability
//
// CopyCell holds a single value and only copies it in and out. Containers
// keep every mutable field in a CopyCell, so arena-resident structures can be
// updated through shared pointers without ever exposing a pointer to a
// cell's contents.
//
// # Thread Safety
//
// Arena and the containers are not goroutine-safe. Prefer one arena per
// goroutine. SafeArena serializes allocation when an arena must be shared:
//
//	s := arena.NewSafeArena()
//	defer s.Release()
//	p := arena.SafeAlloc(s, 42)
//
// # Memory Layout
//
// Pages default to 64 KiB. When a page fills up, a new page is appended and
// becomes current; a value larger than a page gets a page of its own. Every
// allocation is aligned to the alignment of its type. Memory is never moved
// or reused, so every pointer stays valid until Release.
//
// # Important Notes
//
//   - No individual deallocation; Release drops everything
//   - Allocated memory is always zeroed before it is handed out
//   - Arena pages are not scanned by the garbage collector: values stored in
//     the arena may point into the arena, but must not be the only holder of
//     a reference to ordinary heap memory
//   - Containers copy every string in a stored key or element into the arena
//     and reject types holding interfaces, maps, channels or funcs with
//     ErrUnsupportedType
//   - Allocating after Release panics with ErrReleased
//   - Failing to obtain a page, or a request beyond the largest possible page,
//     panics with ErrPageAlloc
//
// # Metrics and Monitoring
//
//	m := a.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Memory in use: %d bytes\n", m.SizeInUse)
//	fmt.Printf("Total capacity: %d bytes\n", m.Capacity)
package arena
