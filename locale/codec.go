package locale

import (
	"fmt"
	"unicode/utf8"
)

// DecodeRune decodes the first character of p in the locale's code set and
// returns it with its width in bytes. A width of 0 means p does not start
// with a complete, valid, non-NUL character.
func (l *Locale) DecodeRune(p []byte) (rune, int) {
	if len(p) == 0 || p[0] == 0 {
		return 0, 0
	}
	switch {
	case l.cs == utf8Codeset:
		r, n := utf8.DecodeRune(p)
		if r == utf8.RuneError && n <= 1 {
			return 0, 0
		}
		return r, n
	case l.cs.enc == nil:
		if p[0] >= 0x80 {
			return 0, 0
		}
		return rune(p[0]), 1
	case l.cs.cmap != nil:
		r := l.cs.cmap.DecodeByte(p[0])
		if r == utf8.RuneError {
			return 0, 0
		}
		return r, 1
	}
	if p[0] < 0x80 {
		return rune(p[0]), 1
	}
	width := min(l.cs.maxWidth, len(p))
	for n := 1; n <= width; n++ {
		out, err := l.cs.enc.NewDecoder().Bytes(p[:n])
		if err != nil {
			continue
		}
		r, size := utf8.DecodeRune(out)
		if r == utf8.RuneError || size != len(out) {
			continue
		}
		return r, n
	}
	return 0, 0
}

// AppendRunes appends rs encoded in the locale's code set to dst.
func (l *Locale) AppendRunes(dst []byte, rs []rune) ([]byte, error) {
	switch {
	case l.cs == utf8Codeset:
		for _, r := range rs {
			dst = utf8.AppendRune(dst, r)
		}
		return dst, nil
	case l.cs.enc == nil:
		for _, r := range rs {
			if r >= 0x80 || r < 0 {
				return dst, fmt.Errorf("character %U not representable in %s", r, l.cs.name)
			}
			dst = append(dst, byte(r))
		}
		return dst, nil
	}
	out, err := l.cs.enc.NewEncoder().Bytes([]byte(string(rs)))
	if err != nil {
		return dst, fmt.Errorf("encoding to %s: %w", l.cs.name, err)
	}
	return append(dst, out...), nil
}

// EncodeString converts a UTF-8 string to the locale's code set. It reports
// false if some character has no representation.
func (l *Locale) EncodeString(s string) ([]byte, bool) {
	out, err := l.AppendRunes(nil, []rune(s))
	if err != nil {
		return nil, false
	}
	return out, true
}
