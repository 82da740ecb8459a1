package bwstring

// The filters below rewrite a string in place. None of them grows it, and
// none treats NUL specially: NUL is neither blank, printable nor
// alphanumeric. Each returns its argument.

// IgnoreLeadingBlanks removes the leading run of blanks (-b).
func (e *Env) IgnoreLeadingBlanks(s *String) *String {
	e.check(s)
	if e.mode == Narrow {
		s.SetLen(trimLeft(s.b[:s.n], e.loc.IsBlankByte))
	} else {
		s.SetLen(trimLeft(s.w[:s.n], e.loc.IsBlank))
	}
	return s
}

// IgnoreNonprinting keeps only printable code units (-i).
func (e *Env) IgnoreNonprinting(s *String) *String {
	e.check(s)
	if e.mode == Narrow {
		s.SetLen(keep(s.b[:s.n], e.loc.IsPrintByte))
	} else {
		s.SetLen(keep(s.w[:s.n], e.loc.IsPrint))
	}
	return s
}

// DictionaryOrder keeps only alphanumeric and blank code units (-d).
func (e *Env) DictionaryOrder(s *String) *String {
	e.check(s)
	if e.mode == Narrow {
		s.SetLen(keep(s.b[:s.n], func(c byte) bool {
			return e.loc.IsAlnumByte(c) || e.loc.IsBlankByte(c)
		}))
	} else {
		s.SetLen(keep(s.w[:s.n], func(c rune) bool {
			return e.loc.IsAlnum(c) || e.loc.IsBlank(c)
		}))
	}
	return s
}

// IgnoreCase converts every code unit to upper case (-f). The length does
// not change.
func (e *Env) IgnoreCase(s *String) *String {
	e.check(s)
	if e.mode == Narrow {
		for i, c := range s.b[:s.n] {
			s.b[i] = e.loc.ToUpperByte(c)
		}
	} else {
		for i, c := range s.w[:s.n] {
			s.w[i] = e.loc.ToUpper(c)
		}
	}
	return s
}

// keep compacts the units satisfying ok to the front of s and returns their
// count.
func keep[U unit](s []U, ok func(U) bool) int {
	n := 0
	for _, c := range s {
		if ok(c) {
			s[n] = c
			n++
		}
	}
	return n
}

// trimLeft moves s left over its leading run of units satisfying drop and
// returns the new length.
func trimLeft[U unit](s []U, drop func(U) bool) int {
	i := 0
	for i < len(s) && drop(s[i]) {
		i++
	}
	if i == 0 {
		return len(s)
	}
	return copy(s, s[i:])
}
