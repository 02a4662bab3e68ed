package rjson

import (
	"math"
	"strconv"
)

func isDigit(b byte) bool { return '0' <= b && b <= '9' }

// scanNumber returns the length of the prefix of data matching the JSON
// number grammar: optional '-', then "0" or a 1-9 digit followed by more
// digits, then an optional fraction and exponent. It returns 0 when data
// does not start with a complete number, including a bare "1." or "1e".
func scanNumber(data string) int {
	i := 0
	if i < len(data) && data[i] == '-' {
		i++
	}
	switch {
	case i < len(data) && data[i] == '0':
		i++
	case i < len(data) && '1' <= data[i] && data[i] <= '9':
		i++
		for i < len(data) && isDigit(data[i]) {
			i++
		}
	default:
		return 0
	}
	if i < len(data) && data[i] == '.' {
		i++
		if i >= len(data) || !isDigit(data[i]) {
			return 0
		}
		for i < len(data) && isDigit(data[i]) {
			i++
		}
	}
	if i < len(data) && (data[i] == 'e' || data[i] == 'E') {
		i++
		if i < len(data) && (data[i] == '+' || data[i] == '-') {
			i++
		}
		if i >= len(data) || !isDigit(data[i]) {
			return 0
		}
		for i < len(data) && isDigit(data[i]) {
			i++
		}
	}
	return i
}

// convertNumber turns grammar-validated number text into a double.
// strconv never consults the process locale, the decimal point is always
// '.'. ok is false when the value overflows to a non-finite double;
// underflow towards zero stays finite and is accepted.
func convertNumber(text string) (f float64, ok bool) {
	f, _ = strconv.ParseFloat(text, 64)
	return f, !math.IsInf(f, 0)
}

// appendNumber formats f with enough significant digits that parsing the
// output reproduces the same double bit-for-bit. ok is false for
// non-finite input, which has no JSON representation.
func appendNumber(buf []byte, f float64) (out []byte, ok bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return buf, false
	}
	return strconv.AppendFloat(buf, f, 'g', -1, 64), true
}
