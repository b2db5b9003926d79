package list

import (
	"fmt"
	"testing"

	"github.com/pavanmanishd/arena/v2"
)

var words = []string{
	"ARENA_BLOCK", "Arena", "Cell", "Self", "String", "T", "Vec", "_unchecked", "a",
	"alignment", "alloc", "alloc_bytes", "alloc_str", "alloc_str_zero_end", "alloc_string",
	"as", "as_bytes", "as_mut_ptr", "as_ptr", "block", "cap", "cell", "const",
	"copy_nonoverlapping", "else", "extend_from_slice", "fn", "from_raw_parts", "from_utf",
	"get", "grow", "if", "impl", "inline", "into", "into_bytes", "isize", "len",
	"len_with_zero", "let", "mem", "mut", "new", "offset", "ptr", "pub", "push",
	"replace", "return", "self", "set", "size_of", "slice", "std", "store", "str",
	"struct", "temp", "u", "unsafe", "use", "usize", "val", "vec", "with_capacity",
}

var sink int

func BenchmarkCreate(b *testing.B) {
	for _, n := range []int{16, 32, 64} {
		src := words[:n]

		b.Run(fmt.Sprintf("slice-%03d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				var s []string
				for _, w := range src {
					s = append(s, w)
				}
				sink += len(s)
			}
		})

		b.Run(fmt.Sprintf("builder-%03d", n), func(b *testing.B) {
			a := arena.New()
			defer a.Release()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				lb := NewBuilder[int](a)
				for j := range src {
					lb.Push(j)
				}
				sink += lb.List().Len()
			}
		})

		b.Run(fmt.Sprintf("push-front-%03d", n), func(b *testing.B) {
			a := arena.New()
			defer a.Release()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				var l List[int]
				for j := range src {
					l = l.PushFront(a, j)
				}
				sink += l.Len()
			}
		})
	}
}
