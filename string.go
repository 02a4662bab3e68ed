package rjson

import (
	"fmt"
	"unicode/utf8"
)

func encErr(msg string) *ParseError {
	return &ParseError{kind: EncodingError, msg: msg}
}

// decodeString decodes the raw bytes between the quotes of a string
// literal. The caller has already checked the span for unescaped control
// bytes and a terminating quote. The output is never longer than the
// input: every escape shrinks or holds the byte count.
func decodeString(raw string) (string, error) {
	if !needsDecode(raw) {
		return raw, nil
	}
	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); {
		if raw[i] != '\\' {
			j := i + 1
			for j < len(raw) && raw[j] != '\\' {
				j++
			}
			out = append(out, raw[i:j]...)
			i = j
			continue
		}
		if i+1 >= len(raw) {
			return "", encErr("incomplete escape sequence")
		}
		switch c := raw[i+1]; c {
		case '"', '\\', '/':
			out = append(out, c)
			i += 2
		case 'b':
			out = append(out, 0x08)
			i += 2
		case 'f':
			out = append(out, 0x0C)
			i += 2
		case 'n':
			out = append(out, 0x0A)
			i += 2
		case 'r':
			out = append(out, 0x0D)
			i += 2
		case 't':
			out = append(out, 0x09)
			i += 2
		case 'u':
			r, size, err := decodeUnicodeEscape(raw[i:])
			if err != nil {
				return "", err
			}
			var tmp [4]byte
			out = append(out, tmp[:utf8.EncodeRune(tmp[:], r)]...)
			i += size
		default:
			return "", encErr(fmt.Sprintf("unknown escape character %q", c))
		}
	}
	return string(out), nil
}

func needsDecode(raw string) bool {
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\\' {
			return true
		}
	}
	return false
}

// decodeUnicodeEscape reads one \uXXXX escape, or two of them forming a
// surrogate pair, starting at the backslash. It returns the codepoint and
// the number of input bytes consumed.
func decodeUnicodeEscape(s string) (rune, int, error) {
	if len(s) < 6 {
		return 0, 0, encErr("incomplete \\u escape")
	}
	u, ok := hex4(s[2:6])
	if !ok {
		return 0, 0, encErr("invalid hex digit in \\u escape")
	}
	switch {
	case u >= 0xDC00 && u <= 0xDFFF:
		return 0, 0, encErr(fmt.Sprintf("lone low surrogate \\u%04x", u))
	case u >= 0xD800 && u <= 0xDBFF:
		if len(s) < 12 || s[6] != '\\' || s[7] != 'u' {
			return 0, 0, encErr(fmt.Sprintf("unpaired high surrogate \\u%04x", u))
		}
		lo, ok := hex4(s[8:12])
		if !ok {
			return 0, 0, encErr("invalid hex digit in \\u escape")
		}
		if lo < 0xDC00 || lo > 0xDFFF {
			return 0, 0, encErr(fmt.Sprintf("high surrogate \\u%04x not followed by a low surrogate", u))
		}
		r := 0x10000 + (rune(u)-0xD800)*0x400 + (rune(lo) - 0xDC00)
		return r, 12, nil
	case u == 0:
		return 0, 0, encErr("\\u0000 decodes to NUL")
	}
	return rune(u), 6, nil
}

func hex4(s string) (uint16, bool) {
	var u uint16
	for i := 0; i < 4; i++ {
		u <<= 4
		switch c := s[i]; {
		case '0' <= c && c <= '9':
			u |= uint16(c - '0')
		case 'a' <= c && c <= 'f':
			u |= uint16(c-'a') + 10
		case 'A' <= c && c <= 'F':
			u |= uint16(c-'A') + 10
		default:
			return 0, false
		}
	}
	return u, true
}

const hexDigits = "0123456789abcdef"

// appendQuoted appends the quoted, escaped JSON string literal for s.
// Unmodified byte runs are copied in bulk between escapes; multi-byte
// UTF-8 sequences pass through unchanged.
func appendQuoted(buf []byte, s string) []byte {
	buf = append(buf, '"')
	start := 0
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b >= 0x20 && b != '"' && b != '\\' {
			continue
		}
		buf = append(buf, s[start:i]...)
		switch b {
		case '"':
			buf = append(buf, '\\', '"')
		case '\\':
			buf = append(buf, '\\', '\\')
		case 0x08:
			buf = append(buf, '\\', 'b')
		case 0x0C:
			buf = append(buf, '\\', 'f')
		case 0x0A:
			buf = append(buf, '\\', 'n')
		case 0x0D:
			buf = append(buf, '\\', 'r')
		case 0x09:
			buf = append(buf, '\\', 't')
		default:
			buf = append(buf, '\\', 'u', '0', '0', hexDigits[b>>4], hexDigits[b&0xF])
		}
		start = i + 1
	}
	buf = append(buf, s[start:]...)
	return append(buf, '"')
}
