// Package codec is the JSON encoder behind the containers' MarshalJSON
// methods.
package codec

import gojson "github.com/goccy/go-json"

// Codec encodes single values.
type Codec interface {
	Marshal(v any) ([]byte, error)
	// Append encodes v and appends it to dst.
	Append(dst []byte, v any) ([]byte, error)
	Name() string
}

// GoJSON is a JSON codec backed by github.com/goccy/go-json.
type GoJSON struct{}

// Marshal encodes the value to JSON.
func (GoJSON) Marshal(v any) ([]byte, error) { return gojson.Marshal(v) }

// Name returns "go-json".
func (GoJSON) Name() string { return "go-json" }

// Append encodes the value to JSON and appends it to dst.
func (GoJSON) Append(dst []byte, v any) ([]byte, error) {
	b, err := gojson.Marshal(v)
	if err != nil {
		return nil, err
	}
	return append(dst, b...), nil
}

// Default is the codec used by list, hashmap and hashset.
var Default Codec = GoJSON{}
