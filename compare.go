package bwsort

import (
	"cmp"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/lanrat/bwsort/bwstring"
)

// Line is an input line prepared for comparison: the decoded text and the
// values of its keys.
type Line struct {
	text *bwstring.String
	keys []keyValue
}

// Text returns the whole line.
func (l *Line) Text() *bwstring.String { return l.text }

type keyValue struct {
	text  *bwstring.String // text and random keys
	month int
	num   float64
	empty bool // numeric key with no number
	hash  uint64
}

// keyGroup is one comparison step. Consecutive text keys with the same
// direction share a group and are compared as one composite key.
type keyGroup struct {
	kind    keyKind
	reverse bool
	keys    []Key
}

// Comparator orders prepared lines. It is safe for concurrent use.
type Comparator struct {
	env     *bwstring.Env
	fields  fields
	groups  []keyGroup
	reverse bool
	stable  bool
	unique  bool
	salt    []byte
}

// NewComparator builds the comparator described by config for lines of env.
func NewComparator(env *bwstring.Env, config *Config) (*Comparator, error) {
	config = mergeConfig(config)
	if err := config.validate(); err != nil {
		return nil, err
	}
	c := &Comparator{
		env:     env,
		fields:  fields{env: env, tab: noTab},
		reverse: config.Options.Reverse,
		stable:  config.Stable,
		unique:  config.Unique,
		salt:    config.RandomSalt,
	}
	if config.FieldSeparator != 0 {
		tab, err := separatorUnit(env, config.FieldSeparator)
		if err != nil {
			return nil, err
		}
		c.fields.tab = tab
	}

	keys := config.Keys
	if len(keys) == 0 {
		keys = []Key{{StartField: 1}}
	}
	for _, k := range keys {
		if k.Options == (KeyOptions{}) {
			k.Options = config.Options
		}
		kind := k.Options.kind()
		if n := len(c.groups); n > 0 && kind == textKey {
			last := &c.groups[n-1]
			if last.kind == textKey && last.reverse == k.Options.Reverse {
				last.keys = append(last.keys, k)
				continue
			}
		}
		c.groups = append(c.groups, keyGroup{kind: kind, reverse: k.Options.Reverse, keys: []Key{k}})
	}
	return c, nil
}

// separatorUnit returns the code unit that stands for r in env's mode.
func separatorUnit(env *bwstring.Env, r rune) (rune, error) {
	if env.Mode() == bwstring.Wide || r < 0x80 {
		return r, nil
	}
	b, ok := env.Locale().EncodeString(string(r))
	if !ok || len(b) != 1 {
		return 0, &ConfigError{Field: "FieldSeparator", Value: r, Reason: "not a single character of the locale's code set"}
	}
	return rune(b[0]), nil
}

// Env returns the context lines are built in.
func (c *Comparator) Env() *bwstring.Env { return c.env }

// Prepare decodes raw and computes its key values.
func (c *Comparator) Prepare(raw []byte) *Line {
	l := &Line{
		text: c.env.FromBytes(raw),
		keys: make([]keyValue, len(c.groups)),
	}
	for i := range c.groups {
		l.keys[i] = c.keyValue(l.text, &c.groups[i])
	}
	return l
}

func (c *Comparator) keyValue(s *bwstring.String, g *keyGroup) keyValue {
	var kv keyValue
	switch g.kind {
	case monthKey:
		kv.month = c.env.MonthScore(c.env.IgnoreCase(c.fields.extract(s, &g.keys[0])))
	case numericKey:
		kv.num, kv.empty = c.env.ParseFloat(c.fields.extract(s, &g.keys[0]))
	case randomKey:
		kv.text = c.filtered(s, &g.keys[0])
		h := xxhash.New()
		h.Write(c.salt)
		h.Write(kv.text.RawBytes())
		kv.hash = h.Sum64()
	default:
		if len(g.keys) == 1 {
			kv.text = c.filtered(s, &g.keys[0])
			break
		}
		parts := make([]*bwstring.String, len(g.keys))
		for i := range g.keys {
			parts[i] = c.filtered(s, &g.keys[i])
		}
		kv.text = c.env.Join(parts...)
	}
	return kv
}

// filtered extracts k from s and applies its text filters.
func (c *Comparator) filtered(s *bwstring.String, k *Key) *bwstring.String {
	o := k.Options
	if *k == (Key{StartField: 1, Options: o}) && !o.IgnoreBlanks && !o.IgnoreNonprinting && !o.Dictionary && !o.IgnoreCase {
		return s
	}
	v := c.fields.extract(s, k)
	if o.IgnoreNonprinting {
		c.env.IgnoreNonprinting(v)
	}
	if o.Dictionary {
		c.env.DictionaryOrder(v)
	}
	if o.IgnoreCase {
		c.env.IgnoreCase(v)
	}
	return v
}

// CompareKeys orders a and b by their keys alone.
func (c *Comparator) CompareKeys(a, b *Line) int {
	for i := range c.groups {
		g := &c.groups[i]
		ka, kb := &a.keys[i], &b.keys[i]
		var r int
		switch g.kind {
		case monthKey:
			r = cmp.Compare(ka.month, kb.month)
		case numericKey:
			r = compareNumbers(ka, kb)
		case randomKey:
			r = cmp.Compare(ka.hash, kb.hash)
			if r == 0 {
				r = c.env.Collate(ka.text, kb.text, 0)
			}
		default:
			r = c.env.Collate(ka.text, kb.text, 0)
		}
		if r != 0 {
			if g.reverse {
				return -r
			}
			return r
		}
	}
	return 0
}

// compareNumbers puts lines without a number first, then NaNs, then numbers
// in numeric order.
func compareNumbers(a, b *keyValue) int {
	if a.empty || b.empty {
		return cmp.Compare(boolRank(!a.empty), boolRank(!b.empty))
	}
	aNaN, bNaN := math.IsNaN(a.num), math.IsNaN(b.num)
	if aNaN || bNaN {
		return cmp.Compare(boolRank(!aNaN), boolRank(!bNaN))
	}
	return cmp.Compare(a.num, b.num)
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Compare orders a and b: by their keys, then, unless the comparator is
// stable or unique, by the whole line.
func (c *Comparator) Compare(a, b *Line) int {
	r := c.CompareKeys(a, b)
	if r != 0 || c.stable || c.unique {
		return r
	}
	r = c.env.Collate(a.text, b.text, 0)
	if c.reverse {
		return -r
	}
	return r
}

// Equal reports whether a and b are duplicates under the unique rule.
func (c *Comparator) Equal(a, b *Line) bool {
	return c.CompareKeys(a, b) == 0
}
