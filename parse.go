package rjson

import (
	"fmt"
	"strings"
)

// MaxDepth is the nesting depth ceiling shared by Parse and Serialize.
// The top-level value sits at depth 0; a value nested inside an array or
// object sits one level deeper than its container.
const MaxDepth = 512

// parser is a recursive-descent reader over a finite byte sequence.
// The descent carries an explicit depth parameter so worst-case stack
// usage is bounded no matter how deeply the input nests.
type parser struct {
	data string
	pos  int
}

func parseDocument(data string) (*Node, error) {
	p := &parser{data: data}
	p.skipBOM()
	n, err := p.value(0)
	if err != nil {
		return nil, err
	}
	p.skipWhitespace()
	if p.pos < len(p.data) {
		n.Free()
		return nil, p.fail(StructuralError, "unexpected content after top-level value")
	}
	return n, nil
}

// skipBOM drops a UTF-8 byte-order-mark at the very start of the input.
func (p *parser) skipBOM() {
	if strings.HasPrefix(p.data, "\xef\xbb\xbf") {
		p.pos = 3
	}
}

// skipWhitespace advances over the four JSON whitespace bytes. Form feed
// and vertical tab are significant, not skippable.
func (p *parser) skipWhitespace() {
	for p.pos < len(p.data) {
		switch p.data[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) value(depth int) (*Node, error) {
	if depth >= MaxDepth {
		return nil, p.fail(LimitError, "nesting depth limit exceeded")
	}
	p.skipWhitespace()
	if p.pos >= len(p.data) {
		return nil, p.fail(SyntaxError, "unexpected end of input, expected value")
	}
	switch b := p.data[p.pos]; {
	case b == '"':
		s, err := p.stringLiteral()
		if err != nil {
			return nil, err
		}
		return &Node{jsonType: String, value: s}, nil
	case b == '{':
		return p.object(depth)
	case b == '[':
		return p.array(depth)
	case b == 't':
		if err := p.literal("true"); err != nil {
			return nil, err
		}
		return &Node{jsonType: Bool, value: true}, nil
	case b == 'f':
		if err := p.literal("false"); err != nil {
			return nil, err
		}
		return &Node{jsonType: Bool, value: false}, nil
	case b == 'n':
		if err := p.literal("null"); err != nil {
			return nil, err
		}
		return &Node{jsonType: Null}, nil
	case b == '-' || isDigit(b):
		return p.number()
	default:
		return nil, p.failf(SyntaxError, "unexpected character %q", b)
	}
}

func (p *parser) literal(lit string) error {
	if !strings.HasPrefix(p.data[p.pos:], lit) {
		return p.failf(SyntaxError, "malformed literal, expected %q", lit)
	}
	p.pos += len(lit)
	return nil
}

func (p *parser) number() (*Node, error) {
	length := scanNumber(p.data[p.pos:])
	if length == 0 {
		return nil, p.fail(SyntaxError, "malformed number")
	}
	// A digit, dot or exponent right after the match means the text is a
	// malformed number (leading zero, second fraction), not trailing
	// content.
	if rest := p.data[p.pos+length:]; len(rest) > 0 {
		switch b := rest[0]; {
		case isDigit(b), b == '.', b == 'e', b == 'E', b == '+', b == '-':
			return nil, p.fail(SyntaxError, "malformed number")
		}
	}
	f, ok := convertNumber(p.data[p.pos : p.pos+length])
	if !ok {
		return nil, p.fail(NumericError, "number overflows double precision")
	}
	p.pos += length
	return &Node{jsonType: Number, value: f}, nil
}

// stringLiteral reads a quoted string starting at the opening quote and
// returns its decoded content. The scan validates the span (terminated,
// no unescaped control bytes) before decodeString resolves the escapes.
func (p *parser) stringLiteral() (string, error) {
	start := p.pos
	p.pos++
	for p.pos < len(p.data) {
		switch b := p.data[p.pos]; {
		case b == '"':
			raw := p.data[start+1 : p.pos]
			p.pos++
			s, err := decodeString(raw)
			if err != nil {
				if pe, ok := err.(*ParseError); ok {
					pe.row, pe.col = p.position(start)
				}
				return "", err
			}
			return s, nil
		case b == '\\':
			if p.pos+1 >= len(p.data) {
				return "", p.failAt(start, SyntaxError, "unterminated string")
			}
			p.pos += 2
		case b < 0x20:
			return "", p.failf(EncodingError, "unescaped control byte 0x%02x in string", b)
		default:
			p.pos++
		}
	}
	return "", p.failAt(start, SyntaxError, "unterminated string")
}

func (p *parser) array(depth int) (*Node, error) {
	p.pos++ // consume '['
	arr := NewArray()
	p.skipWhitespace()
	if p.pos < len(p.data) && p.data[p.pos] == ']' {
		p.pos++
		return arr, nil
	}
	for {
		p.skipWhitespace()
		if p.pos < len(p.data) && p.data[p.pos] == ']' {
			arr.Free()
			return nil, p.fail(SyntaxError, "trailing comma in array")
		}
		child, err := p.value(depth + 1)
		if err != nil {
			arr.Free()
			return nil, err
		}
		if err := arr.AppendElement(child); err != nil {
			child.Free()
			arr.Free()
			return nil, p.failf(AllocError, "growing array: %v", err)
		}
		p.skipWhitespace()
		if p.pos >= len(p.data) {
			arr.Free()
			return nil, p.fail(SyntaxError, "unterminated array")
		}
		switch p.data[p.pos] {
		case ']':
			p.pos++
			return arr, nil
		case ',':
			p.pos++
		default:
			arr.Free()
			return nil, p.failf(SyntaxError, "expected ',' or ']' in array, got %q", p.data[p.pos])
		}
	}
}

func (p *parser) object(depth int) (*Node, error) {
	p.pos++ // consume '{'
	obj := NewObject()
	p.skipWhitespace()
	if p.pos < len(p.data) && p.data[p.pos] == '}' {
		p.pos++
		return obj, nil
	}
	for {
		p.skipWhitespace()
		if p.pos >= len(p.data) {
			obj.Free()
			return nil, p.fail(SyntaxError, "unterminated object")
		}
		if p.data[p.pos] == '}' {
			obj.Free()
			return nil, p.fail(SyntaxError, "trailing comma in object")
		}
		if p.data[p.pos] != '"' {
			obj.Free()
			return nil, p.failf(StructuralError, "object key must be a string, got %q", p.data[p.pos])
		}
		key, err := p.stringLiteral()
		if err != nil {
			obj.Free()
			return nil, err
		}
		p.skipWhitespace()
		if p.pos >= len(p.data) || p.data[p.pos] != ':' {
			obj.Free()
			return nil, p.fail(SyntaxError, "expected ':' after object key")
		}
		p.pos++
		child, err := p.value(depth + 1)
		if err != nil {
			obj.Free()
			return nil, err
		}
		if err := obj.AppendField(key, child); err != nil {
			child.Free()
			obj.Free()
			return nil, p.failf(AllocError, "growing object: %v", err)
		}
		p.skipWhitespace()
		if p.pos >= len(p.data) {
			obj.Free()
			return nil, p.fail(SyntaxError, "unterminated object")
		}
		switch p.data[p.pos] {
		case '}':
			p.pos++
			return obj, nil
		case ',':
			p.pos++
		default:
			obj.Free()
			return nil, p.failf(SyntaxError, "expected ',' or '}' in object, got %q", p.data[p.pos])
		}
	}
}

func (p *parser) fail(kind ErrorKind, msg string) error {
	return p.failAt(p.pos, kind, msg)
}

func (p *parser) failf(kind ErrorKind, format string, args ...interface{}) error {
	return p.failAt(p.pos, kind, fmt.Sprintf(format, args...))
}

func (p *parser) failAt(pos int, kind ErrorKind, msg string) error {
	row, col := p.position(pos)
	return &ParseError{kind: kind, msg: msg, row: row, col: col}
}

// position computes the row and column of pos. Only the error path pays
// for the scan.
func (p *parser) position(pos int) (row, col int) {
	for i := 0; i < pos && i < len(p.data); i++ {
		if p.data[i] == '\n' {
			row++
			col = 0
		} else {
			col++
		}
	}
	return row, col
}
