package bwstring

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ParseFloat skips the leading blanks of s and parses the longest prefix
// that forms a floating-point number, as strtod does with the locale's radix
// character. It reports empty when the first non-blank unit is not printable
// or no digits could be read; the value is then 0.
func (e *Env) ParseFloat(s *String) (v float64, empty bool) {
	e.check(s)
	it := s.Iter(0)
	for !it.Done() && e.IsBlank(it.Value()) {
		it = it.Advance(1)
	}
	if it.Done() || !e.isPrint(it.Value()) {
		return 0, true
	}
	v, ok := scanFloat(it, e.radix)
	if !ok {
		return 0, true
	}
	return v, false
}

// scanFloat parses a number at it. Accepted forms: decimal with optional
// fraction and exponent, hexadecimal with optional binary exponent, inf,
// infinity and nan, each with an optional sign.
func scanFloat(it Iterator, radix rune) (float64, bool) {
	var sb strings.Builder
	neg := false
	if c := it.Value(); c == '+' || c == '-' {
		neg = c == '-'
		sb.WriteRune(c)
		it = it.Advance(1)
	}

	if matchFold(it, "inf") {
		return math.Inf(sign(neg)), true
	}
	if matchFold(it, "nan") {
		return math.NaN(), true
	}

	hex := false
	if it.Value() == '0' && (it.Advance(1).Value() == 'x' || it.Advance(1).Value() == 'X') {
		next := it.Advance(2)
		if isHexDigit(next.Value()) || next.Value() == radix && isHexDigit(next.Advance(1).Value()) {
			hex = true
			it = next
			sb.WriteString("0x")
		}
	}
	digit := isDigit
	if hex {
		digit = isHexDigit
	}

	intPart := takeWhile(&it, digit)
	var frac string
	if it.Value() == radix {
		if after := it.Advance(1); digit(after.Value()) || intPart != "" {
			it = after
			frac = takeWhile(&it, digit)
		}
	}
	if intPart == "" && frac == "" {
		return 0, false
	}
	sb.WriteString(orZero(intPart))
	sb.WriteByte('.')
	sb.WriteString(orZero(frac))

	exp := "0"
	marker := func(c rune) bool { return c == 'e' || c == 'E' }
	if hex {
		marker = func(c rune) bool { return c == 'p' || c == 'P' }
	}
	if marker(it.Value()) {
		e := it.Advance(1)
		expSign := ""
		if c := e.Value(); c == '+' || c == '-' {
			expSign = string(c)
			e = e.Advance(1)
		}
		if isDigit(e.Value()) {
			exp = expSign + takeWhile(&e, isDigit)
		}
	}
	if hex {
		sb.WriteByte('p')
	} else {
		sb.WriteByte('e')
	}
	sb.WriteString(exp)

	v, err := strconv.ParseFloat(sb.String(), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return v, true
}

func sign(neg bool) int {
	if neg {
		return -1
	}
	return 1
}

func orZero(s string) string {
	if s == "" {
		return "0"
	}
	return s
}

// matchFold reports whether the units at it spell word, ignoring ASCII case.
func matchFold(it Iterator, word string) bool {
	for i := 0; i < len(word); i++ {
		c := it.Value()
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != rune(word[i]) {
			return false
		}
		it = it.Advance(1)
	}
	return true
}

func takeWhile(it *Iterator, ok func(rune) bool) string {
	var sb strings.Builder
	for !it.Done() && ok(it.Value()) {
		sb.WriteRune(it.Value())
		*it = it.Advance(1)
	}
	return sb.String()
}

func isDigit(c rune) bool { return c >= '0' && c <= '9' }

func isHexDigit(c rune) bool {
	return isDigit(c) || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}
