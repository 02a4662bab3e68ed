package rjson

import (
	"io"
	"strings"
)

// format writes a valid json representation to w with prefix as indent,
// postfix after values or opening objects/arrays, commaSep after each
// comma and colonSep after keys. Strings and numbers go through the same
// codecs as Serialize so the output stays parseable.
func (n *Node) format(w io.Writer, prefix, postfix, commaSep, colonSep string) (int, error) {
	buf := make([]byte, 0, 64)
	var inner func(m *Node, level int) error
	inner = func(m *Node, level int) error {
		if level >= MaxDepth {
			return &SerializeError{kind: LimitError, msg: "nesting depth limit exceeded"}
		}
		switch m.Type() {
		case Null:
			buf = append(buf, "null"...)
		case Bool:
			if m.value.(bool) {
				buf = append(buf, "true"...)
			} else {
				buf = append(buf, "false"...)
			}
		case Number:
			var ok bool
			if buf, ok = appendNumber(buf, m.value.(float64)); !ok {
				return &SerializeError{kind: NumericError, msg: "non-finite number"}
			}
		case String:
			buf = appendQuoted(buf, m.value.(string))
		case Array:
			cc := m.value.([]*Node)
			if len(cc) == 0 {
				buf = append(buf, "[]"...)
				return nil
			}
			buf = append(buf, ("[" + postfix)...)
			for i, c := range cc {
				if i > 0 {
					buf = append(buf, ("," + commaSep + postfix)...)
				}
				buf = append(buf, strings.Repeat(prefix, level+1)...)
				if err := inner(c, level+1); err != nil {
					return err
				}
			}
			buf = append(buf, (postfix + strings.Repeat(prefix, level) + "]")...)
		case Object:
			kk := m.value.([]KeyNode)
			if len(kk) == 0 {
				buf = append(buf, "{}"...)
				return nil
			}
			buf = append(buf, ("{" + postfix)...)
			for i, kn := range kk {
				if i > 0 {
					buf = append(buf, ("," + commaSep + postfix)...)
				}
				buf = append(buf, strings.Repeat(prefix, level+1)...)
				buf = appendQuoted(buf, kn.Key)
				buf = append(buf, (":" + colonSep)...)
				if err := inner(kn.Node, level+1); err != nil {
					return err
				}
			}
			buf = append(buf, (postfix + strings.Repeat(prefix, level) + "}")...)
		default:
			return &SerializeError{kind: StructuralError, msg: "invalid node"}
		}
		return nil
	}
	if err := inner(n, 0); err != nil {
		return 0, err
	}
	return w.Write(buf)
}

// WriteIndent writes the tree hold by n to w with the given indent
// (preferably spaces or a tab).
func (n *Node) WriteIndent(w io.Writer, indent string) (int, error) {
	return n.format(w, indent, "\n", "", " ")
}

// stringDebug formats a tree for inspecting the internals.
func (n *Node) stringDebug() string {
	b := &strings.Builder{}
	n.format(b, "!", "~", "-", "^")
	return b.String()
}
