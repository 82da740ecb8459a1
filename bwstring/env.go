// Package bwstring implements binary-safe strings and the locale-aware
// comparison engine used for sort keys.
//
// A String holds code units in one of two layouts: bytes (Narrow) when the
// locale's characters are at most one byte wide, and wide characters (Wide)
// otherwise. The layout is decided once, when the Env is built, and every
// String created by that Env shares it. Embedded NUL code units are data;
// only the collator and the writer give them meaning.
package bwstring

import (
	"log"

	"github.com/lanrat/bwsort/locale"
)

// Mode is the storage layout of a String.
type Mode uint8

const (
	// Narrow stores one byte per code unit.
	Narrow Mode = iota
	// Wide stores one decoded character per code unit.
	Wide
)

func (m Mode) String() string {
	switch m {
	case Narrow:
		return "narrow"
	case Wide:
		return "wide"
	default:
		return "unknown"
	}
}

// ModeFor returns the layout used for strings of locale l.
func ModeFor(l *locale.Locale) Mode {
	if l.MaxCharWidth() == 1 {
		return Narrow
	}
	return Wide
}

// Env is the immutable context every String operation runs in: the encoding
// mode, the locale categories with the collator, the month table and the
// radix character. It is safe for concurrent use once NewEnv returns.
type Env struct {
	mode       Mode
	cats       locale.Categories
	loc        *locale.Locale // LC_CTYPE: decoding, classes and case
	coll       *locale.Collator
	byteSort   bool
	monthNames [12]string
	months     *MonthTable
	radix      rune
	logger     *log.Logger
}

// Option configures an Env.
type Option func(*Env)

// WithByteSort forces (or disables) byte order comparison in Collate.
// It defaults to true for the C and POSIX locales.
func WithByteSort(on bool) Option {
	return func(e *Env) {
		e.byteSort = on
	}
}

// WithMonthNames replaces the locale's abbreviated month names. Empty
// entries are left unset and never match.
func WithMonthNames(names [12]string) Option {
	return func(e *Env) {
		e.monthNames = names
	}
}

// WithLogger enables debug output.
func WithLogger(l *log.Logger) Option {
	return func(e *Env) {
		e.logger = l
	}
}

// NewEnv builds the context for locale l used for every category. A nil
// locale means locale.C.
func NewEnv(l *locale.Locale, opts ...Option) *Env {
	if l == nil {
		l = locale.C
	}
	return NewCategoryEnv(locale.Uniform(l), opts...)
}

// NewCategoryEnv builds the context for a locale per category: the mode and
// character handling follow c.CType, collation c.Collate, month names c.Time
// and the radix character c.Numeric. Nil categories mean locale.C.
func NewCategoryEnv(c locale.Categories, opts ...Option) *Env {
	for _, l := range []**locale.Locale{&c.Collate, &c.CType, &c.Time, &c.Numeric} {
		if *l == nil {
			*l = locale.C
		}
	}
	e := &Env{
		mode:       ModeFor(c.CType),
		cats:       c,
		loc:        c.CType,
		coll:       c.Collator(),
		byteSort:   c.Collate.IsPOSIX(),
		monthNames: c.Time.AbbrevMonths(),
		radix:      c.Numeric.DecimalPoint(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.months = newMonthTable(e, e.monthNames)
	return e
}

// Mode returns the layout of strings built by e.
func (e *Env) Mode() Mode { return e.mode }

// Locale returns the LC_CTYPE locale of e, the one strings are encoded in.
func (e *Env) Locale() *locale.Locale { return e.loc }

// Categories returns the locale of every category of e.
func (e *Env) Categories() locale.Categories { return e.cats }

// ByteSort reports whether Collate compares raw code units.
func (e *Env) ByteSort() bool { return e.byteSort }

// Months returns the month table.
func (e *Env) Months() *MonthTable { return e.months }

// IsBlank reports whether the code unit u is a blank in e's locale.
func (e *Env) IsBlank(u rune) bool {
	if e.mode == Narrow {
		return u >= 0 && u < 0x100 && e.loc.IsBlankByte(byte(u))
	}
	return e.loc.IsBlank(u)
}

func (e *Env) isPrint(u rune) bool {
	if e.mode == Narrow {
		return u >= 0 && u < 0x100 && e.loc.IsPrintByte(byte(u))
	}
	return e.loc.IsPrint(u)
}

func (e *Env) debugf(format string, args ...any) {
	if e.logger != nil {
		e.logger.Printf(format, args...)
	}
}

// check panics if s was not built in e's mode.
func (e *Env) check(s *String) {
	if s.mode != e.mode {
		panic(&ModeError{Want: e.mode, Got: s.mode})
	}
}
