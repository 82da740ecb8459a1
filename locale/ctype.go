package locale

import (
	"unicode"
)

const (
	classBlank uint8 = 1 << iota
	classPrint
	classAlnum
)

// ctypeTable holds the character classes and upper case mapping of every
// byte of a single-byte code set.
type ctypeTable struct {
	class [256]uint8
	upper [256]byte
}

func newCtypeTable(l *Locale) *ctypeTable {
	t := new(ctypeTable)
	for i := 0; i < 256; i++ {
		b := byte(i)
		t.upper[i] = b
		var r rune
		switch {
		case b < 0x80:
			r = rune(b)
		case l.cs.cmap != nil && !l.posix:
			r = l.cs.cmap.DecodeByte(b)
		default:
			// High bytes of the C locale belong to no class.
			continue
		}
		if r == unicode.ReplacementChar {
			continue
		}
		if l.IsBlank(r) {
			t.class[i] |= classBlank
		}
		if l.IsPrint(r) {
			t.class[i] |= classPrint
		}
		if l.IsAlnum(r) {
			t.class[i] |= classAlnum
		}
		u := l.ToUpper(r)
		if u == r {
			continue
		}
		if u < 0x80 {
			t.upper[i] = byte(u)
		} else if l.cs.cmap != nil {
			if ub, ok := l.cs.cmap.EncodeRune(u); ok {
				t.upper[i] = ub
			}
		}
	}
	return t
}

// IsBlank reports whether r is in the blank class: space, tab and the
// breaking space separators.
func (l *Locale) IsBlank(r rune) bool {
	switch r {
	case ' ', '\t':
		return true
	case '\u00a0', '\u2007', '\u202f':
		return false
	}
	if l.posix || r < 0x80 {
		return false
	}
	return unicode.Is(unicode.Zs, r)
}

// IsPrint reports whether r is printable, space included.
func (l *Locale) IsPrint(r rune) bool {
	if r < 0x80 || l.posix && l.cs.maxWidth == 1 {
		return r >= 0x20 && r < 0x7f
	}
	return unicode.IsGraphic(r)
}

// IsAlnum reports whether r is a letter or a decimal digit.
func (l *Locale) IsAlnum(r rune) bool {
	if r < 0x80 || l.posix && l.cs.maxWidth == 1 {
		return r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// ToUpper maps r to upper case. Turkish and Azeri use their dotted-i rules.
func (l *Locale) ToUpper(r rune) rune {
	if l.posix && l.cs.maxWidth == 1 && r >= 0x80 {
		return r
	}
	if l.turkic() {
		return unicode.TurkishCase.ToUpper(r)
	}
	if r < 0x80 {
		if r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		return r
	}
	return unicode.ToUpper(r)
}

func (l *Locale) turkic() bool {
	base, _ := l.tag.Base()
	switch base.String() {
	case "tr", "az":
		return true
	}
	return false
}

// IsBlankByte is IsBlank for one byte of a single-byte code set.
func (l *Locale) IsBlankByte(b byte) bool { return l.byteClass(b)&classBlank != 0 }

// IsPrintByte is IsPrint for one byte of a single-byte code set.
func (l *Locale) IsPrintByte(b byte) bool { return l.byteClass(b)&classPrint != 0 }

// IsAlnumByte is IsAlnum for one byte of a single-byte code set.
func (l *Locale) IsAlnumByte(b byte) bool { return l.byteClass(b)&classAlnum != 0 }

// ToUpperByte is ToUpper for one byte of a single-byte code set. Bytes whose
// upper case form is not representable are returned unchanged.
func (l *Locale) ToUpperByte(b byte) byte {
	if l.ctype == nil {
		return byte(l.ToUpper(rune(b)))
	}
	return l.ctype.upper[b]
}

func (l *Locale) byteClass(b byte) uint8 {
	if l.ctype == nil {
		return C.ctype.class[b]
	}
	return l.ctype.class[b]
}
