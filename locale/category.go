package locale

import (
	"os"
)

// Category is the environment variable naming the locale of one category.
type Category string

// The categories resolved by LookupAll.
const (
	LCCollate Category = "LC_COLLATE"
	LCCType   Category = "LC_CTYPE"
	LCTime    Category = "LC_TIME"
	LCNumeric Category = "LC_NUMERIC"
)

// Categories holds the locale in effect for each category the string core
// depends on.
type Categories struct {
	Collate *Locale // collation order
	CType   *Locale // code set, character classes and case mapping
	Time    *Locale // abbreviated month names
	Numeric *Locale // radix character
}

// Uniform returns Categories that use l for every category, as LC_ALL does.
func Uniform(l *Locale) Categories {
	return Categories{Collate: l, CType: l, Time: l, Numeric: l}
}

// Collator returns a collator ordering by the rules of c.Collate over text
// encoded in the code set of c.CType.
func (c Categories) Collator() *Collator {
	return newCollator(c.Collate, c.CType.cs)
}

// FromEnv resolves every category from the process environment.
func FromEnv() (Categories, error) {
	return LookupAll(os.Getenv)
}

// LookupAll resolves every category using getenv. See Lookup.
func LookupAll(getenv func(string) string) (Categories, error) {
	var (
		c   Categories
		err error
	)
	for _, cat := range []struct {
		name Category
		dst  **Locale
	}{
		{LCCollate, &c.Collate},
		{LCCType, &c.CType},
		{LCTime, &c.Time},
		{LCNumeric, &c.Numeric},
	} {
		if *cat.dst, err = Lookup(getenv, cat.name); err != nil {
			return Categories{}, err
		}
	}
	return c, nil
}

// Lookup resolves the locale of category cat using getenv, in the order
// LC_ALL, cat, LANG. The C locale is used when none is set.
func Lookup(getenv func(string) string, cat Category) (*Locale, error) {
	for _, v := range []string{"LC_ALL", string(cat), "LANG"} {
		if name := getenv(v); name != "" {
			return Parse(name)
		}
	}
	return C, nil
}
