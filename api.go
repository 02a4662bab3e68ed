package rjson

import (
	"io"
	"io/ioutil"
)

// Parse reads data as one complete JSON document and returns the root of
// the resulting tree. A leading UTF-8 byte-order-mark is tolerated; any
// non-whitespace content after the top-level value is an error. On
// failure no tree is returned and nothing of the partial build survives.
func Parse(data []byte) (*Node, error) {
	return parseDocument(string(data))
}

// ParseString is Parse for string input.
func ParseString(data string) (*Node, error) {
	return parseDocument(data)
}

// NewJSON reads all of r and parses it as one JSON document.
func NewJSON(r io.Reader) (*Node, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return parseDocument(string(data))
}

// Valid reports whether data is a valid JSON encoding.
func Valid(data []byte) bool {
	n, err := Parse(data)
	if err != nil {
		return false
	}
	n.Free()
	return true
}

// String formats the tree as valid JSON with no whitespace. It returns
// the empty string if the tree cannot be serialized.
func (n *Node) String() string {
	data, err := Serialize(n)
	if err != nil {
		return ""
	}
	return string(data)
}

// WriteJSON writes the tree hold by n to w with the same representation
// as n.String().
func (n *Node) WriteJSON(w io.Writer) (int, error) {
	data, err := Serialize(n)
	if err != nil {
		return 0, err
	}
	return w.Write(data)
}

// MarshalJSON implements the json.Marshaler interface for Node
func (n *Node) MarshalJSON() ([]byte, error) {
	return Serialize(n)
}

// UnmarshalJSON implements the json.Unmarshaler interface for Node
func (n *Node) UnmarshalJSON(data []byte) error {
	m, err := Parse(data)
	if err != nil {
		return err
	}
	*n = *m
	return nil
}
