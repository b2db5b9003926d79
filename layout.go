package arena

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
)

// ErrUnsupportedType is the panic value (wrapped) when a container is asked to
// store a type whose values the garbage collector could not trace from arena
// memory.
var ErrUnsupportedType = errors.New("arena: type cannot be stored in arena memory")

// layout is what Adopt needs to know about a type: where its string headers
// sit, or why the type is rejected.
type layout struct {
	strings []uintptr // byte offsets of every string header
	err     error
}

// layouts caches one *layout per reflect.Type.
var layouts sync.Map

// Storable reports whether values of type T can be stored by the containers.
// It returns an error wrapping ErrUnsupportedType naming the first offending
// field, or nil.
func Storable[T any]() error {
	return layoutOf(reflect.TypeFor[T]()).err
}

func layoutOf(t reflect.Type) *layout {
	if l, ok := layouts.Load(t); ok {
		return l.(*layout)
	}
	l := &layout{}
	l.err = scan(t, 0, t.String(), &l.strings)
	actual, _ := layouts.LoadOrStore(t, l)
	return actual.(*layout)
}

// scan appends to offs the offset of every string reachable in t without
// following pointers or slices.
func scan(t reflect.Type, off uintptr, path string, offs *[]uintptr) error {
	switch t.Kind() {
	case reflect.String:
		*offs = append(*offs, off)
	case reflect.Struct:
		for i := range t.NumField() {
			f := t.Field(i)
			if err := scan(f.Type, off+f.Offset, path+"."+f.Name, offs); err != nil {
				return err
			}
		}
	case reflect.Array:
		if t.Len() == 0 {
			return nil
		}
		var elem []uintptr
		if err := scan(t.Elem(), 0, path+"[]", &elem); err != nil {
			return err
		}
		if len(elem) == 0 {
			return nil
		}
		size := t.Elem().Size()
		for i := range uintptr(t.Len()) {
			for _, e := range elem {
				*offs = append(*offs, off+i*size+e)
			}
		}
	case reflect.Interface, reflect.Map, reflect.Chan, reflect.Func:
		return fmt.Errorf("%w: %s has kind %s", ErrUnsupportedType, path, t.Kind())
	}
	return nil
}
