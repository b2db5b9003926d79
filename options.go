package arena

import "log/slog"

// Option is a configuration option for Arena.
type Option func(*Arena)

// WithPageSize sets the capacity of each page.
// If n <= 0, DefaultPageSize is used.
func WithPageSize(n int) Option {
	return func(a *Arena) {
		if n <= 0 {
			n = DefaultPageSize
		}
		a.pageSize = n
	}
}

// WithLogger sets the logger used for page and growth events.
// A nil logger keeps the default, which discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Arena) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithOffHeapPages makes the arena obtain its pages from anonymous memory
// mappings instead of the Go heap. Such pages are invisible to the garbage
// collector and are unmapped by Release.
func WithOffHeapPages() Option {
	return func(a *Arena) {
		a.offHeap = true
	}
}
