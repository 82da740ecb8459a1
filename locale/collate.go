package locale

import (
	"bytes"
	"slices"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/collate"
)

// Collator orders text by the rules of a locale. Unlike collate.Collator it
// is safe for concurrent use: each call borrows a collator from a pool.
type Collator struct {
	loc  *Locale
	cs   *codeset  // code set single-byte text is decoded from
	pool sync.Pool // *collate.Collator
}

// NewCollator returns a collator for l over text in l's code set.
func NewCollator(l *Locale) *Collator {
	return newCollator(l, l.cs)
}

func newCollator(l *Locale, cs *codeset) *Collator {
	c := &Collator{loc: l, cs: cs}
	c.pool = sync.Pool{
		New: func() any {
			return collate.New(l.tag)
		},
	}
	return c
}

// Locale returns the locale c collates for.
func (c *Collator) Locale() *Locale { return c.loc }

// Compare orders two runs of single-byte text, as strcoll does. In the C
// locale this is plain unsigned byte order.
func (c *Collator) Compare(a, b []byte) int {
	if c.loc.posix {
		return bytes.Compare(a, b)
	}
	cm := c.cs.cmap
	if cm == nil {
		return c.compareUTF8(a, b)
	}
	ua := make([]byte, 0, len(a)+len(a)/2)
	for _, x := range a {
		ua = utf8.AppendRune(ua, cm.DecodeByte(x))
	}
	ub := make([]byte, 0, len(b)+len(b)/2)
	for _, x := range b {
		ub = utf8.AppendRune(ub, cm.DecodeByte(x))
	}
	return c.compareUTF8(ua, ub)
}

// CompareRunes orders two runs of wide characters, as wcscoll does. When
// either run holds a value that is not a Unicode scalar the runs are ordered
// by code point instead.
func (c *Collator) CompareRunes(a, b []rune) int {
	if c.loc.posix || !validRunes(a) || !validRunes(b) {
		return slices.Compare(a, b)
	}
	return c.compareUTF8([]byte(string(a)), []byte(string(b)))
}

func (c *Collator) compareUTF8(a, b []byte) int {
	coll := c.pool.Get().(*collate.Collator)
	defer c.pool.Put(coll)
	return coll.Compare(a, b)
}

func validRunes(rs []rune) bool {
	for _, r := range rs {
		if !utf8.ValidRune(r) {
			return false
		}
	}
	return true
}
