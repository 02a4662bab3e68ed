package rjson

// serializer writes compact JSON into a single growable buffer. The
// buffer grows geometrically through append, so total output time stays
// amortized linear.
type serializer struct {
	buf []byte
}

// Serialize renders the tree rooted at n as compact JSON text with no
// extraneous whitespace. A non-finite number or a depth overrun anywhere
// in the tree aborts the whole serialization; no partial buffer is
// returned on failure.
func Serialize(n *Node) ([]byte, error) {
	s := &serializer{buf: make([]byte, 0, 64)}
	if err := s.value(n, 0); err != nil {
		return nil, err
	}
	return s.buf, nil
}

func (s *serializer) value(n *Node, depth int) error {
	if depth >= MaxDepth {
		return &SerializeError{kind: LimitError, msg: "nesting depth limit exceeded"}
	}
	switch n.Type() {
	case Null:
		s.buf = append(s.buf, "null"...)
	case Bool:
		if n.value.(bool) {
			s.buf = append(s.buf, "true"...)
		} else {
			s.buf = append(s.buf, "false"...)
		}
	case Number:
		var ok bool
		if s.buf, ok = appendNumber(s.buf, n.value.(float64)); !ok {
			return &SerializeError{kind: NumericError, msg: "non-finite number"}
		}
	case String:
		s.buf = appendQuoted(s.buf, n.value.(string))
	case Array:
		s.buf = append(s.buf, '[')
		for i, c := range n.value.([]*Node) {
			if i > 0 {
				s.buf = append(s.buf, ',')
			}
			if err := s.value(c, depth+1); err != nil {
				return err
			}
		}
		s.buf = append(s.buf, ']')
	case Object:
		s.buf = append(s.buf, '{')
		for i, kn := range n.value.([]KeyNode) {
			if i > 0 {
				s.buf = append(s.buf, ',')
			}
			s.buf = appendQuoted(s.buf, kn.Key)
			s.buf = append(s.buf, ':')
			if err := s.value(kn.Node, depth+1); err != nil {
				return err
			}
		}
		s.buf = append(s.buf, '}')
	default:
		return &SerializeError{kind: StructuralError, msg: "invalid node"}
	}
	return nil
}
