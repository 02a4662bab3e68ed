package rjson

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// JSONType is an enum for any JSON-types
type JSONType uint8

// JSONTypes to compare nodes of a tree with. The zero value signals invalid.
const (
	Invalid JSONType = iota
	Null
	Bool
	Number
	String
	Array
	Object
)

func (t JSONType) String() string {
	switch t {
	case Null:
		return "Null"
	case Bool:
		return "Bool"
	case Number:
		return "Number"
	case String:
		return "String"
	case Array:
		return "Array"
	case Object:
		return "Object"
	default:
		return "Invalid"
	}
}

// Node is one node of a tree holding a JSON document.
// Depending on its internal type it holds a different value:
//     JSONType	ValueType
//     Invalid	nil
//     Null     nil
//     Bool	bool
//     Number	float64
//     String	string
//     Array	[]*Node
//     Object	[]KeyNode
//
// Containers exclusively own their children: a node is attached to at most
// one parent, ever, and only through AppendElement/AppendField or parsing.
type Node struct {
	jsonType JSONType
	value    interface{}
	parent   *Node
}

// KeyNode is one member of an object: a key together with its value node.
// Keys need not be unique; duplicates are kept in insertion order.
type KeyNode struct {
	Key string
	*Node
}

// NewNull returns a fresh null node.
func NewNull() *Node { return &Node{jsonType: Null} }

// NewBool returns a fresh boolean node holding b.
func NewBool(b bool) *Node { return &Node{jsonType: Bool, value: b} }

// NewNumber returns a fresh number node holding f. Finiteness is not
// checked here; Serialize rejects non-finite numbers.
func NewNumber(f float64) *Node { return &Node{jsonType: Number, value: f} }

// NewString returns a fresh string node holding s. The content is not
// validated; s is expected to be UTF-8 without a NUL byte.
func NewString(s string) *Node { return &Node{jsonType: String, value: s} }

// NewArray returns a fresh empty array node.
func NewArray() *Node { return &Node{jsonType: Array, value: []*Node(nil)} }

// NewObject returns a fresh empty object node.
func NewObject() *Node { return &Node{jsonType: Object, value: []KeyNode(nil)} }

// Type returns the JSONType of a node.
func (n *Node) Type() JSONType {
	if n == nil {
		return Invalid
	}
	return n.jsonType
}

// Get returns the value of the first member whose key equals key exactly.
// Later duplicates stay in the tree but are not reachable through Get.
// The second return is false if n is not an object or the key is absent.
// The returned node stays owned by n.
func (n *Node) Get(key string) (*Node, bool) {
	if n.Type() != Object {
		return nil, false
	}
	for _, kn := range n.value.([]KeyNode) {
		if kn.Key == key {
			return kn.Node, true
		}
	}
	return nil, false
}

// Len gives the length of an array or items in an object
func (n *Node) Len() int {
	switch n.Type() {
	case Array:
		return len(n.value.([]*Node))
	case Object:
		return len(n.value.([]KeyNode))
	case Invalid:
		return 0
	default:
		return 1
	}
}

// Total returns the number of total nodes hold by n
func (n *Node) Total() int {
	switch n.Type() {
	case Array:
		i := 1
		for _, c := range n.value.([]*Node) {
			i += c.Total()
		}
		return i
	case Object:
		i := 1
		for _, kn := range n.value.([]KeyNode) {
			i += kn.Node.Total()
		}
		return i
	default:
		return n.Len()
	}
}

// Key returns the dotted path of a node from the root of its tree.
func (n *Node) Key() string {
	ss := make([]string, 0, 4)
	for o, p := n, n.parent; p != nil; o, p = p, p.parent {
		switch p.jsonType {
		case Object:
			for _, kn := range p.value.([]KeyNode) {
				if kn.Node == o {
					ss = append(ss, kn.Key)
					break
				}
			}
		case Array:
			for i, m := range p.value.([]*Node) {
				if m == o {
					ss = append(ss, strconv.Itoa(i))
					break
				}
			}
		}
	}
	rr := make([]string, len(ss))
	for i, s := range ss {
		rr[len(ss)-i-1] = s
	}
	return strings.Join(rr, ".")
}

// Free releases the subtree rooted at n. Children are detached recursively
// and every node is reset to the invalid zero state so accidental reuse
// fails loudly; reclamation itself is left to the garbage collector.
// The owner of a tree calls Free exactly once, on the root.
func (n *Node) Free() {
	if n == nil {
		return
	}
	switch n.jsonType {
	case Array:
		for _, c := range n.value.([]*Node) {
			c.Free()
		}
	case Object:
		for _, kn := range n.value.([]KeyNode) {
			kn.Node.Free()
		}
	}
	n.jsonType = Invalid
	n.value = nil
	n.parent = nil
}

// Equal compares two trees structurally: same type, scalar values equal
// (numbers bit-for-bit), and the same ordered children for arrays and
// objects including duplicate object keys.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || a.jsonType != b.jsonType {
		return false
	}
	switch a.jsonType {
	case Null:
		return true
	case Bool:
		return a.value.(bool) == b.value.(bool)
	case Number:
		return math.Float64bits(a.value.(float64)) == math.Float64bits(b.value.(float64))
	case String:
		return a.value.(string) == b.value.(string)
	case Array:
		an, bn := a.value.([]*Node), b.value.([]*Node)
		if len(an) != len(bn) {
			return false
		}
		for i := range an {
			if !Equal(an[i], bn[i]) {
				return false
			}
		}
		return true
	case Object:
		an, bn := a.value.([]KeyNode), b.value.([]KeyNode)
		if len(an) != len(bn) {
			return false
		}
		for i := range an {
			if an[i].Key != bn[i].Key || !Equal(an[i].Node, bn[i].Node) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Value creates the Go representation of a node.
// Like encoding/json the possible underlying types of the first return
// parameter are:
//     Object    map[string]interface{}
//     Array     []interface{}
//     String    string
//     Number    float64
//     Bool      bool
//     Null      nil (with the error being nil too)
// For duplicate object keys the first occurrence wins.
func (n *Node) Value() (interface{}, error) {
	switch n.Type() {
	case Null, Bool, Number, String:
		return n.value, nil
	case Array:
		cc := n.value.([]*Node)
		s := make([]interface{}, 0, len(cc))
		for _, c := range cc {
			itf, err := c.Value()
			if err != nil {
				return nil, err
			}
			s = append(s, itf)
		}
		return s, nil
	case Object:
		kk := n.value.([]KeyNode)
		m := make(map[string]interface{}, len(kk))
		for _, kn := range kk {
			if _, ok := m[kn.Key]; ok {
				continue
			}
			itf, err := kn.Node.Value()
			if err != nil {
				return nil, err
			}
			m[kn.Key] = itf
		}
		return m, nil
	default:
		return nil, fmt.Errorf("invalid node")
	}
}
