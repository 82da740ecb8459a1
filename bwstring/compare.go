package bwstring

import (
	"slices"
)

// unit is the storage element of either layout.
type unit interface {
	~byte | ~rune
}

// ComparePrefix compares a and b code unit by code unit, starting at offset
// and looking at no more than limit units of each. If one operand runs out
// before limit while the compared units are equal, it sorts first. A limit
// of zero compares nothing and returns 0.
func ComparePrefix(a, b *String, offset, limit int) int {
	if a.mode != b.mode {
		panic(&ModeError{Want: a.mode, Got: b.mode})
	}
	offset = max(offset, 0)
	if limit <= 0 {
		return 0
	}
	n1 := min(max(a.n-offset, 0), limit)
	n2 := min(max(b.n-offset, 0), limit)
	switch {
	case n1 == 0 && n2 == 0:
		return 0
	case n1 == 0:
		return -1
	case n2 == 0:
		return 1
	}
	if a.mode == Narrow {
		return slices.Compare(a.b[offset:offset+n1], b.b[offset:offset+n2])
	}
	return slices.Compare(a.w[offset:offset+n1], b.w[offset:offset+n2])
}

// Compare compares the code units of a and b from offset to their ends.
func Compare(a, b *String, offset int) int {
	return ComparePrefix(a, b, offset, max(a.n, b.n))
}

// Collate compares a and b from offset by the locale's collation rules.
//
// The operands may be composite keys: fields joined by NUL code units. Each
// NUL-free run is collated as a whole and NUL is a boundary that sorts before
// any other unit, so a field that ends sooner sorts first. When all runs
// collate equal the operand with fewer remaining units is less.
//
// In byte-sort mode the code units are compared directly.
func (e *Env) Collate(a, b *String, offset int) int {
	e.check(a)
	e.check(b)
	if a.n <= offset {
		if b.n <= offset {
			return 0
		}
		return -1
	}
	if b.n <= offset {
		return 1
	}
	offset = max(offset, 0)
	if e.mode == Narrow {
		s1, s2 := a.b[offset:a.n], b.b[offset:b.n]
		if e.byteSort {
			return slices.Compare(s1, s2)
		}
		return collateUnits(s1, s2, e.coll.Compare)
	}
	s1, s2 := a.w[offset:a.n], b.w[offset:b.n]
	if e.byteSort {
		return slices.Compare(s1, s2)
	}
	return collateUnits(s1, s2, e.coll.CompareRunes)
}

// collateUnits walks s1 and s2 with a shared cursor, collating each pair of
// NUL-free runs with coll.
func collateUnits[U unit](s1, s2 []U, coll func(a, b []U) int) int {
	maxlen := min(len(s1), len(s2))
	i := 0
	for i < maxlen {
		// skip aligned empty fields
		for i < maxlen && s1[i] == 0 && s2[i] == 0 {
			i++
		}
		if i >= maxlen {
			break
		}
		if s1[i] == 0 {
			if s2[i] == 0 {
				panic(&CollationFault{Pos: i, Reason: "NUL pair at start of run"})
			}
			return -1
		}
		if s2[i] == 0 {
			return 1
		}

		if res := coll(run(s1[i:]), run(s2[i:])); res != 0 {
			return res
		}

		for i < maxlen && s1[i] != 0 && s2[i] != 0 {
			i++
		}
		if i >= maxlen {
			break
		}
		switch {
		case s1[i] == 0 && s2[i] == 0:
			i++
		case s1[i] == 0:
			return -1
		case s2[i] == 0:
			return 1
		default:
			panic(&CollationFault{Pos: i, Reason: "run ended without a NUL"})
		}
	}

	switch {
	case len(s1) < len(s2):
		return -1
	case len(s1) > len(s2):
		return 1
	}
	return 0
}

// run returns the prefix of s up to its first NUL.
func run[U unit](s []U) []U {
	if i := slices.Index(s, 0); i >= 0 {
		return s[:i]
	}
	return s
}
