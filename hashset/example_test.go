package hashset_test

import (
	"fmt"

	"github.com/pavanmanishd/arena/v2"
	"github.com/pavanmanishd/arena/v2/hashset"
)

// Example demonstrates deduplicating identifiers
func Example() {
	a := arena.New()
	defer a.Release()

	var seen hashset.Set[string]
	for _, id := range []string{"foo", "bar", "foo", "baz", "bar"} {
		if seen.Insert(a, id) {
			fmt.Println("new", id)
		}
	}
	fmt.Println(seen.Len(), &seen)

	// Output:
	// new foo
	// new bar
	// new baz
	// 3 set[foo bar baz]
}

// ExampleFromSet demonstrates moving a set behind a bloom filter
func ExampleFromSet() {
	a := arena.New()
	defer a.Release()

	var keywords hashset.Set[string]
	for _, kw := range []string{"if", "else", "for", "return"} {
		keywords.Insert(a, kw)
	}

	b := hashset.FromSet(&keywords)
	fmt.Println(b.Contains("for"), b.Contains("foo"), keywords.Len())

	// Output:
	// true false 0
}
