package bwstring

// Iterator is a cursor over the code units of a String. It must not outlive
// the string and does not own it.
type Iterator struct {
	s   *String
	off int
}

// Iter returns an iterator at offset, clamped to the bounds of s.
func (s *String) Iter(offset int) Iterator {
	return Iterator{s: s, off: min(max(offset, 0), s.n)}
}

// Value returns the code unit under the cursor, 0 at the end.
func (it Iterator) Value() rune {
	return it.s.At(it.off)
}

// Advance returns the iterator moved n code units forward, stopping at the
// end of the string.
func (it Iterator) Advance(n int) Iterator {
	it.off = min(it.off+max(n, 0), it.s.n)
	return it
}

// Offset returns the cursor position.
func (it Iterator) Offset() int { return it.off }

// Done reports whether the cursor is at the end of the string.
func (it Iterator) Done() bool { return it.off >= it.s.n }

// IterCompare walks a and b in lockstep for n code units and returns the
// difference of the first pair that differs, or 0.
func IterCompare(a, b Iterator, n int) int {
	for i := 0; i < n; i++ {
		c1, c2 := a.Value(), b.Value()
		if c1 != c2 {
			return int(c1) - int(c2)
		}
		a = a.Advance(1)
		b = b.Advance(1)
	}
	return 0
}
