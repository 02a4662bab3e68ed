/*
Package rjson parses RFC 8259 JSON text into a mutable value tree and
serializes trees back to compact JSON text.

In contrast to encoding/json the package is centered around an explicit
tree model: every document becomes a tree of Nodes that can be inspected,
extended with AppendElement/AppendField and written out again. Parsing is
strict. Escape sequences including UTF-16 surrogate pairs are decoded and
validated, and numbers follow the exact JSON grammar. Both parsing and
serialization enforce a fixed nesting depth ceiling so adversarial input
cannot exhaust the stack.

Node fulfills the json.Marshaler/Unmarshaler interfaces.
*/
package rjson // import "github.com/rjson-go/rjson"
