// Package locale provides the platform locale service used by the binary
// string core: locale name resolution, code sets, character classes,
// multibyte decoding, collation and the locale's abbreviated month names.
package locale

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/language"
)

var (
	// ErrBadLocale is returned for locale names that cannot be parsed.
	ErrBadLocale = errors.New("bad locale name")
	// ErrUnknownCodeset is returned when the code set of a locale name is not supported.
	ErrUnknownCodeset = errors.New("unknown code set")
)

// codeset describes one supported character encoding.
type codeset struct {
	name     string
	maxWidth int
	enc      encoding.Encoding // nil for ASCII and UTF-8
	cmap     *charmap.Charmap  // set for single-byte code sets
}

var (
	asciiCodeset = &codeset{name: "US-ASCII", maxWidth: 1}
	utf8Codeset  = &codeset{name: "UTF-8", maxWidth: 4}
)

// codesets is keyed by the normalized code set name (lower case, no
// punctuation).
var codesets = map[string]*codeset{
	"utf8":        utf8Codeset,
	"usascii":     asciiCodeset,
	"ascii":       asciiCodeset,
	"ansix341968": asciiCodeset,
	"iso88591":    single("ISO8859-1", charmap.ISO8859_1),
	"iso88592":    single("ISO8859-2", charmap.ISO8859_2),
	"iso88595":    single("ISO8859-5", charmap.ISO8859_5),
	"iso88597":    single("ISO8859-7", charmap.ISO8859_7),
	"iso88599":    single("ISO8859-9", charmap.ISO8859_9),
	"iso885915":   single("ISO8859-15", charmap.ISO8859_15),
	"koi8r":       single("KOI8-R", charmap.KOI8R),
	"koi8u":       single("KOI8-U", charmap.KOI8U),
	"cp1251":      single("CP1251", charmap.Windows1251),
	"cp1252":      single("CP1252", charmap.Windows1252),
	"windows1251": single("CP1251", charmap.Windows1251),
	"windows1252": single("CP1252", charmap.Windows1252),
	"eucjp":       multi("eucJP", 3, japanese.EUCJP),
	"sjis":        multi("SJIS", 2, japanese.ShiftJIS),
	"shiftjis":    multi("SJIS", 2, japanese.ShiftJIS),
	"euckr":       multi("eucKR", 2, korean.EUCKR),
	"gbk":         multi("GBK", 2, simplifiedchinese.GBK),
	"gb2312":      multi("GBK", 2, simplifiedchinese.GBK),
	"euccn":       multi("GBK", 2, simplifiedchinese.GBK),
	"gb18030":     multi("GB18030", 4, simplifiedchinese.GB18030),
	"big5":        multi("Big5", 2, traditionalchinese.Big5),
}

func single(name string, cm *charmap.Charmap) *codeset {
	return &codeset{name: name, maxWidth: 1, enc: cm, cmap: cm}
}

func multi(name string, width int, enc encoding.Encoding) *codeset {
	return &codeset{name: name, maxWidth: width, enc: enc}
}

// Locale is a parsed, immutable locale. It is safe for concurrent use.
type Locale struct {
	name  string
	tag   language.Tag
	posix bool // C or POSIX collation and character classes
	cs    *codeset
	ctype *ctypeTable // byte classes, only for single-byte code sets
}

// C is the default "C" locale: ASCII, byte collation.
var C = mustParse("C")

func mustParse(name string) *Locale {
	l, err := Parse(name)
	if err != nil {
		panic(err)
	}
	return l
}

// Parse parses a locale name of the form language[_territory][.codeset][@modifier].
// The names "", "C" and "POSIX" select the C locale; "C.UTF-8" selects C
// collation over UTF-8. A name without a code set defaults to UTF-8.
func Parse(name string) (*Locale, error) {
	l := &Locale{name: name}
	base, set := name, ""
	if i := strings.IndexByte(base, '@'); i >= 0 {
		base = base[:i]
	}
	if i := strings.IndexByte(base, '.'); i >= 0 {
		base, set = base[:i], base[i+1:]
	}

	switch base {
	case "", "C", "POSIX":
		l.posix = true
		l.tag = language.Und
		l.cs = asciiCodeset
		if set != "" {
			cs, err := lookupCodeset(set)
			if err != nil {
				return nil, fmt.Errorf("locale %q: %w", name, err)
			}
			l.cs = cs
		}
	default:
		tag, err := language.Parse(strings.ReplaceAll(base, "_", "-"))
		if err != nil {
			return nil, fmt.Errorf("locale %q: %w: %v", name, ErrBadLocale, err)
		}
		l.tag = tag
		l.cs = utf8Codeset
		if set != "" {
			cs, err := lookupCodeset(set)
			if err != nil {
				return nil, fmt.Errorf("locale %q: %w", name, err)
			}
			l.cs = cs
		}
	}
	if l.cs.maxWidth == 1 {
		l.ctype = newCtypeTable(l)
	}
	return l, nil
}

func lookupCodeset(set string) (*codeset, error) {
	key := strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z':
			return r + 'a' - 'A'
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		}
		return -1
	}, set)
	cs, ok := codesets[key]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownCodeset, set)
	}
	return cs, nil
}

// Name returns the locale name as it was given to Parse.
func (l *Locale) Name() string {
	if l.name == "" {
		return "C"
	}
	return l.name
}

// Tag returns the language tag used for collation. It is language.Und for
// the C locale.
func (l *Locale) Tag() language.Tag { return l.tag }

// Codeset returns the canonical name of the locale's character encoding.
func (l *Locale) Codeset() string { return l.cs.name }

// IsPOSIX reports whether the locale is C or POSIX (with any code set).
func (l *Locale) IsPOSIX() bool { return l.posix }

// MaxCharWidth returns the maximum number of bytes in one character of the
// locale's code set.
func (l *Locale) MaxCharWidth() int { return l.cs.maxWidth }

func (l *Locale) String() string { return l.Name() }
