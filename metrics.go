package arena

// Metrics is a snapshot of how an arena's pages are used.
type Metrics struct {
	SizeInUse int // bytes handed out, alignment padding included
	Capacity  int // bytes held by all pages
	NumPages  int
	PageSize  int // configured page size

	// OversizedPages counts pages sized to a single request larger than
	// PageSize. LargestPage is the size of the biggest page.
	OversizedPages int
	LargestPage    int

	// AbandonedBytes is the free space left at the end of pages that stopped
	// being current. The bump cursor never returns to them.
	AbandonedBytes int

	OffHeap     bool
	Utilization float64 // SizeInUse / Capacity, 0 for an arena without pages
}

// Metrics walks the pages once and returns a snapshot.
func (a *Arena) Metrics() Metrics {
	m := Metrics{
		NumPages:       len(a.pages),
		PageSize:       a.pageSize,
		AbandonedBytes: a.abandoned,
		OffHeap:        a.offHeap,
	}
	for _, p := range a.pages {
		m.SizeInUse += int(p.offset)
		m.Capacity += len(p.buf)
		m.LargestPage = max(m.LargestPage, len(p.buf))
		if len(p.buf) > a.pageSize {
			m.OversizedPages++
		}
	}
	if m.Capacity > 0 {
		m.Utilization = float64(m.SizeInUse) / float64(m.Capacity)
	}
	return m
}

// SizeInUse returns the bytes handed out so far.
func (a *Arena) SizeInUse() int {
	n := 0
	for _, p := range a.pages {
		n += int(p.offset)
	}
	return n
}

// Capacity returns the bytes held by all pages.
func (a *Arena) Capacity() int {
	n := 0
	for _, p := range a.pages {
		n += len(p.buf)
	}
	return n
}

func (a *Arena) NumPages() int { return len(a.pages) }

// PageSize returns the configured page size.
func (a *Arena) PageSize() int { return a.pageSize }

// AbandonedBytes returns the free space stranded at the end of pages that are
// no longer current.
func (a *Arena) AbandonedBytes() int { return a.abandoned }

// Utilization returns SizeInUse / Capacity, or 0 for an arena without pages.
func (a *Arena) Utilization() float64 {
	return a.Metrics().Utilization
}

// Metrics returns a snapshot taken under the lock.
func (s *SafeArena) Metrics() Metrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}

func (s *SafeArena) SizeInUse() int { return s.Metrics().SizeInUse }

func (s *SafeArena) Capacity() int { return s.Metrics().Capacity }

func (s *SafeArena) NumPages() int { return s.Metrics().NumPages }

func (s *SafeArena) PageSize() int { return s.Metrics().PageSize }

func (s *SafeArena) AbandonedBytes() int { return s.Metrics().AbandonedBytes }

func (s *SafeArena) Utilization() float64 { return s.Metrics().Utilization }
