package rjson

import (
	"math"
	"reflect"
	"testing"
)

func TestNewNodes(t *testing.T) {
	tests := []struct {
		have *Node
		typ  JSONType
		want string
	}{
		{NewNull(), Null, "null"},
		{NewBool(true), Bool, "true"},
		{NewBool(false), Bool, "false"},
		{NewNumber(3.125), Number, "3.125"},
		{NewString("hi"), String, `"hi"`},
		{NewArray(), Array, "[]"},
		{NewObject(), Object, "{}"},
	}
	for _, test := range tests {
		if test.have.Type() != test.typ {
			t.Errorf("want %s, got %s", test.typ, test.have.Type())
		}
		if got := test.have.String(); got != test.want {
			t.Errorf("want %s, got %s", test.want, got)
		}
	}
	if (*Node)(nil).Type() != Invalid {
		t.Error("nil node must be Invalid")
	}
}

func TestGet(t *testing.T) {
	n, err := ParseString(`{"a":null,"b":5,"json":"hello there","b":6}`)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		key   string
		want  bool
		value string
	}{
		{"json", true, `"hello there"`},
		{"a", true, "null"},
		{"b", true, "5"}, // first of the duplicates
		{"missing", false, ""},
		{"", false, ""},
	}
	for _, test := range tests {
		m, ok := n.Get(test.key)
		if ok != test.want {
			t.Errorf("%q: got %v, want %v", test.key, ok, test.want)
		} else if ok && m.String() != test.value {
			t.Errorf("%q: got %s, want %s", test.key, m, test.value)
		}
	}
	if _, ok := NewArray().Get("0"); ok {
		t.Error("Get on array must report false")
	}
	if _, ok := NewString("x").Get("x"); ok {
		t.Error("Get on scalar must report false")
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"null", "null", true},
		{"null", "false", false},
		{"[1,2]", "[1,2]", true},
		{"[1,2]", "[2,1]", false},
		{"[1,2]", "[1]", false},
		{`{"a":1,"b":2}`, `{"a":1,"b":2}`, true},
		{`{"a":1,"b":2}`, `{"b":2,"a":1}`, false}, // member order matters
		{`{"a":1,"a":2}`, `{"a":1,"a":2}`, true},
		{`{"a":1,"a":2}`, `{"a":2,"a":1}`, false},
		{`"a"`, `"b"`, false},
		{"0", "-0", false}, // bit-for-bit number compare
	}
	for _, test := range tests {
		a, err := ParseString(test.a)
		if err != nil {
			t.Fatal(err)
		}
		b, err := ParseString(test.b)
		if err != nil {
			t.Fatal(err)
		}
		if got := Equal(a, b); got != test.want {
			t.Errorf("Equal(%s, %s) = %v, want %v", test.a, test.b, got, test.want)
		}
	}
	if !Equal(NewNumber(math.NaN()), NewNumber(math.NaN())) {
		t.Error("identical NaN bits must compare equal")
	}
	if !Equal(nil, nil) || Equal(nil, NewNull()) {
		t.Error("nil comparison")
	}
}

func TestLenTotal(t *testing.T) {
	tests := []struct {
		json  string
		len   int
		total int
	}{
		{"true", 1, 1},
		{"{}", 0, 1},
		{`{"a":5,"b":null}`, 2, 3},
		{"[1,2,3,4,5,6,7,8,9]", 9, 10},
		{`{"a":[1,{"b":2}]}`, 1, 5},
	}
	for _, test := range tests {
		n, err := ParseString(test.json)
		if err != nil {
			t.Fatal(err)
		}
		if n.Len() != test.len {
			t.Errorf("%s: Len: want %d, got %d", test.json, test.len, n.Len())
		}
		if n.Total() != test.total {
			t.Errorf("%s: Total: want %d, got %d", test.json, test.total, n.Total())
		}
	}
}

func TestKey(t *testing.T) {
	n, err := ParseString(`{"index":[{"inner":[null,true]}]}`)
	if err != nil {
		t.Fatal(err)
	}
	index, _ := n.Get("index")
	elem := index.value.([]*Node)[0]
	inner, _ := elem.Get("inner")
	leaf := inner.value.([]*Node)[1]
	if got := leaf.Key(); got != "index.0.inner.1" {
		t.Errorf(`want "index.0.inner.1", got %q`, got)
	}
	if got := n.Key(); got != "" {
		t.Errorf("root key must be empty, got %q", got)
	}
}

func TestFree(t *testing.T) {
	n, err := ParseString(`{"a":[1,2,{"b":"c"}]}`)
	if err != nil {
		t.Fatal(err)
	}
	a, _ := n.Get("a")
	leaf := a.value.([]*Node)[2]
	n.Free()
	if n.Type() != Invalid || n.Len() != 0 {
		t.Error("freed root must be invalid")
	}
	if leaf.Type() != Invalid || leaf.parent != nil {
		t.Error("descendants must be reset too")
	}
	(*Node)(nil).Free() // must not panic
}

func TestValue(t *testing.T) {
	tests := []struct {
		have string
		want interface{}
	}{
		{`{"a": null}`, map[string]interface{}{"a": nil}},
		{`[false, -31.2, 5, "ab\"cd"]`, []interface{}{
			false, -31.2, 5., `ab"cd`,
		}},
		{`{"a": 20, "b": [true, null]}`, map[string]interface{}{
			"a": 20., "b": []interface{}{true, nil},
		}},
		{`{"a":1,"a":2}`, map[string]interface{}{"a": 1.}},
	}
	for _, test := range tests {
		n, err := ParseString(test.have)
		if err != nil {
			t.Fatal(err)
		}
		itf, err := n.Value()
		if err != nil {
			t.Error(err)
			continue
		}
		if !reflect.DeepEqual(itf, test.want) {
			t.Errorf("want %v, got %v", test.want, itf)
		}
	}
	if _, err := (&Node{}).Value(); err == nil {
		t.Error("invalid node must not convert")
	}
}
