package bwsort

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lanrat/bwsort/bwstring"
)

// KeyOptions are the ordering options of one key, named after the sort(1)
// flags that select them.
type KeyOptions struct {
	IgnoreBlanks      bool // -b: skip leading blanks of the start and end fields
	Dictionary        bool // -d: consider only blanks and alphanumerics
	IgnoreCase        bool // -f: fold lower case to upper case
	IgnoreNonprinting bool // -i: consider only printable characters
	Month             bool // -M: compare abbreviated month names
	GeneralNumeric    bool // -g: compare as floating point numbers
	Random            bool // -R: compare by a salted hash of the key
	Reverse           bool // -r: reverse the result
}

func (o KeyOptions) validate(field string) error {
	n := 0
	for _, on := range []bool{o.Month, o.GeneralNumeric, o.Random} {
		if on {
			n++
		}
	}
	if n > 1 {
		return &ConfigError{Field: field, Value: o, Reason: "month, general numeric and random are incompatible"}
	}
	return nil
}

// keyKind selects how a key value is compared.
type keyKind uint8

const (
	textKey keyKind = iota
	monthKey
	numericKey
	randomKey
)

func (o KeyOptions) kind() keyKind {
	switch {
	case o.Month:
		return monthKey
	case o.GeneralNumeric:
		return numericKey
	case o.Random:
		return randomKey
	}
	return textKey
}

// Key selects part of a line. Fields and characters are numbered from 1.
// A StartChar of 0 means the first character of the field; an EndField of 0
// means the end of the line and an EndChar of 0 the end of EndField.
type Key struct {
	StartField int
	StartChar  int
	EndField   int
	EndChar    int
	Options    KeyOptions
}

func (k *Key) validate(i int) error {
	field := fmt.Sprintf("Keys[%d]", i)
	switch {
	case k.StartField < 1:
		return &ConfigError{Field: field, Value: k.StartField, Reason: "start field must be at least 1"}
	case k.StartChar < 0, k.EndChar < 0:
		return &ConfigError{Field: field, Value: *k, Reason: "character positions must not be negative"}
	case k.EndField < 0:
		return &ConfigError{Field: field, Value: k.EndField, Reason: "end field must not be negative"}
	case k.EndField == 0 && k.EndChar != 0:
		return &ConfigError{Field: field, Value: *k, Reason: "end character without end field"}
	}
	return k.Options.validate(field)
}

// ParseKey parses a key definition in the syntax of sort -k:
// F[.C][OPTS][,F[.C][OPTS]] where OPTS are letters of bdfiMgRr.
func ParseKey(def string) (Key, error) {
	var k Key
	start, end, hasEnd := strings.Cut(def, ",")

	var err error
	k.StartField, k.StartChar, err = parsePosition(start, &k.Options)
	if err != nil {
		return k, &ConfigError{Field: "Key", Value: def, Reason: "bad start position", Err: err}
	}
	if k.StartField < 1 {
		return k, &ConfigError{Field: "Key", Value: def, Reason: "field number is zero"}
	}
	if hasEnd {
		k.EndField, k.EndChar, err = parsePosition(end, &k.Options)
		if err != nil {
			return k, &ConfigError{Field: "Key", Value: def, Reason: "bad end position", Err: err}
		}
		if k.EndField < 1 {
			return k, &ConfigError{Field: "Key", Value: def, Reason: "field number is zero"}
		}
	}
	return k, k.Options.validate("Key")
}

// parsePosition parses F[.C][OPTS] and sets the option letters it ends with.
func parsePosition(s string, o *KeyOptions) (field, char int, err error) {
	i := strings.IndexFunc(s, func(r rune) bool { return (r < '0' || r > '9') && r != '.' })
	pos, letters := s, ""
	if i >= 0 {
		pos, letters = s[:i], s[i:]
	}
	f, c, hasChar := strings.Cut(pos, ".")
	if field, err = strconv.Atoi(f); err != nil {
		return 0, 0, err
	}
	if hasChar {
		if char, err = strconv.Atoi(c); err != nil {
			return 0, 0, err
		}
	}
	for _, l := range letters {
		if err := o.set(l); err != nil {
			return 0, 0, err
		}
	}
	return field, char, nil
}

// set turns on the option named by the sort(1) flag letter l.
func (o *KeyOptions) set(l rune) error {
	switch l {
	case 'b':
		o.IgnoreBlanks = true
	case 'd':
		o.Dictionary = true
	case 'f':
		o.IgnoreCase = true
	case 'i':
		o.IgnoreNonprinting = true
	case 'M':
		o.Month = true
	case 'g':
		o.GeneralNumeric = true
	case 'R':
		o.Random = true
	case 'r':
		o.Reverse = true
	default:
		return fmt.Errorf("unknown key option %q", l)
	}
	return nil
}

// ParseOptions parses a string of option letters such as "fr".
func ParseOptions(letters string) (KeyOptions, error) {
	var o KeyOptions
	for _, l := range letters {
		if err := o.set(l); err != nil {
			return o, &ConfigError{Field: "Options", Value: letters, Reason: "bad option", Err: err}
		}
	}
	return o, o.validate("Options")
}

// fields locates keys inside a line.
type fields struct {
	env *bwstring.Env
	tab rune // code unit value of the separator, noTab for blank runs
}

const noTab = -1

func (f *fields) skipBlanks(it bwstring.Iterator) bwstring.Iterator {
	for !it.Done() && f.env.IsBlank(it.Value()) {
		it = it.Advance(1)
	}
	return it
}

// nextField moves it past one field. When keepTab is false a trailing
// separator is consumed as well.
func (f *fields) nextField(it bwstring.Iterator, keepTab bool) bwstring.Iterator {
	if f.tab == noTab {
		it = f.skipBlanks(it)
		for !it.Done() && !f.env.IsBlank(it.Value()) {
			it = it.Advance(1)
		}
		return it
	}
	for !it.Done() && it.Value() != f.tab {
		it = it.Advance(1)
	}
	if !it.Done() && !keepTab {
		it = it.Advance(1)
	}
	return it
}

// begin returns the offset of the first code unit of k in s.
func (f *fields) begin(s *bwstring.String, k *Key) int {
	it := s.Iter(0)
	for n := k.StartField - 1; n > 0 && !it.Done(); n-- {
		it = f.nextField(it, false)
	}
	if k.Options.IgnoreBlanks {
		it = f.skipBlanks(it)
	}
	if k.StartChar > 1 {
		it = it.Advance(k.StartChar - 1)
	}
	return it.Offset()
}

// limit returns the offset just past the last code unit of k in s.
func (f *fields) limit(s *bwstring.String, k *Key) int {
	if k.EndField == 0 {
		return s.Len()
	}
	eword, echar := k.EndField-1, k.EndChar
	if echar == 0 {
		// through the end of EndField
		eword++
	}
	it := s.Iter(0)
	for ; eword > 0 && !it.Done(); eword-- {
		it = f.nextField(it, eword == 1 && echar == 0)
	}
	if echar != 0 {
		if k.Options.IgnoreBlanks {
			it = f.skipBlanks(it)
		}
		it = it.Advance(echar)
	}
	return it.Offset()
}

// extract copies the part of s selected by k into a new string.
func (f *fields) extract(s *bwstring.String, k *Key) *bwstring.String {
	start := f.begin(s, k)
	end := max(f.limit(s, k), start)
	return bwstring.CopyFrom(f.env.Alloc(end-start), s, start, end-start)
}
