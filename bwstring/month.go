package bwstring

import (
	"slices"
)

// NoMonth is the MonthScore of a string that starts with no month name.
const NoMonth = -1

// MonthTable holds the twelve abbreviated month names, upper cased and
// stored in the Env's mode. A nil entry is unset and never matches.
type MonthTable struct {
	narrow [12][]byte
	wide   [12][]rune
}

func newMonthTable(e *Env, names [12]string) *MonthTable {
	t := new(MonthTable)
	for i, name := range names {
		e.debugf("month[%d]=%s", i, name)
		if name == "" {
			continue
		}
		if e.mode == Narrow {
			m, ok := e.loc.EncodeString(name)
			if !ok {
				continue
			}
			for j, c := range m {
				m[j] = e.loc.ToUpperByte(c)
			}
			t.narrow[i] = m
		} else {
			m := []rune(name)
			for j, c := range m {
				m[j] = e.loc.ToUpper(c)
			}
			t.wide[i] = m
		}
	}
	return t
}

// Name returns month i (0 for January) as stored, and whether it is set.
func (t *MonthTable) Name(i int) (string, bool) {
	if i < 0 || i >= 12 {
		return "", false
	}
	if t.narrow[i] != nil {
		return string(t.narrow[i]), true
	}
	if t.wide[i] != nil {
		return string(t.wide[i]), true
	}
	return "", false
}

// MonthScore skips the leading blanks of s and returns the index (0 to 11)
// of the month name the rest starts with, or NoMonth. Months are tried from
// December down, so of two names where one is a prefix of the other the
// later month wins.
func (e *Env) MonthScore(s *String) int {
	e.check(s)
	if e.mode == Narrow {
		return monthScore(s.b[:s.n], e.months.narrow[:], e.loc.IsBlankByte)
	}
	return monthScore(s.w[:s.n], e.months.wide[:], e.loc.IsBlank)
}

func monthScore[U unit](s []U, months [][]U, blank func(U) bool) int {
	i := 0
	for i < len(s) && blank(s[i]) {
		i++
	}
	s = s[i:]
	for m := 11; m >= 0; m-- {
		name := months[m]
		if name != nil && len(s) >= len(name) && slices.Equal(s[:len(name)], name) {
			return m
		}
	}
	return NoMonth
}
