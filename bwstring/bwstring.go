package bwstring

import (
	"encoding/binary"
	"unsafe"
)

// wideUnitSize is the storage width of one Wide code unit.
const wideUnitSize = int(unsafe.Sizeof(rune(0)))

// String is a length-tracked, binary-safe string. Exactly one of the narrow
// or wide buffers is set, chosen by the Env that built it. Both buffers hold
// size+1 units; the last slot is the terminator and is never part of the
// logical length.
type String struct {
	mode Mode
	size int // units reserved, terminator excluded
	n    int // logical length, n <= size
	b    []byte
	w    []rune
}

// Alloc returns a zero-filled string of size code units.
func (e *Env) Alloc(size int) *String {
	if size < 0 {
		size = 0
	}
	s := &String{mode: e.mode, size: size, n: size}
	if e.mode == Narrow {
		s.b = make([]byte, size+1)
	} else {
		s.w = make([]rune, size+1)
	}
	return s
}

// Dup returns an independent copy of s. Dup(nil) is nil.
func Dup(s *String) *String {
	if s == nil {
		return nil
	}
	d := &String{mode: s.mode, size: s.n, n: s.n}
	if s.mode == Narrow {
		d.b = make([]byte, s.n+1)
		copy(d.b, s.b[:s.n])
	} else {
		d.w = make([]rune, s.n+1)
		copy(d.w, s.w[:s.n])
	}
	return d
}

// FromRunes builds a string from wide code units. In Narrow mode each unit
// keeps only its low 8 bits.
func (e *Env) FromRunes(rs []rune) *String {
	s := e.Alloc(len(rs))
	if e.mode == Narrow {
		for i, r := range rs {
			s.b[i] = byte(r)
		}
	} else {
		copy(s.w, rs)
	}
	return s
}

// FromBytes builds a string from raw bytes. In Wide mode the bytes are
// decoded in the locale's code set; a byte that does not start a valid
// character is stored as one code unit of its own value, so no input is
// ever dropped.
func (e *Env) FromBytes(p []byte) *String {
	s := e.Alloc(len(p))
	if e.mode == Narrow {
		copy(s.b, p)
		return s
	}
	chars := 0
	for i := 0; i < len(p); {
		r, width := e.loc.DecodeRune(p[i:])
		if width <= 0 {
			s.w[chars] = rune(p[i])
			i++
		} else {
			s.w[chars] = r
			i += width
		}
		chars++
	}
	s.n = chars
	s.w[chars] = 0
	return s
}

// Mode returns the layout of s.
func (s *String) Mode() Mode { return s.mode }

// Len returns the logical length of s in code units.
func (s *String) Len() int { return s.n }

// Cap returns the number of code units s can hold without reallocation.
func (s *String) Cap() int { return s.size }

// At returns the code unit at i, or 0 past the logical end.
func (s *String) At(i int) rune {
	if i < 0 || i >= s.n {
		return 0
	}
	if s.mode == Narrow {
		return rune(s.b[i])
	}
	return s.w[i]
}

// Bytes returns the Narrow code units of s. It returns nil in Wide mode.
// The slice aliases s.
func (s *String) Bytes() []byte {
	if s.mode != Narrow {
		return nil
	}
	return s.b[:s.n]
}

// Runes returns the Wide code units of s. It returns nil in Narrow mode.
// The slice aliases s.
func (s *String) Runes() []rune {
	if s.mode != Wide {
		return nil
	}
	return s.w[:s.n]
}

// SetLen shortens s to n code units. Values that do not shorten s are
// ignored.
func (s *String) SetLen(n int) {
	if s == nil || n < 0 || n >= s.n {
		return
	}
	s.n = n
	if s.mode == Narrow {
		s.b[n] = 0
	} else {
		s.w[n] = 0
	}
}

// MemSize returns the number of bytes an allocator should account for s.
func (s *String) MemSize() int {
	header := int(unsafe.Sizeof(String{}))
	if s.mode == Narrow {
		return s.n + 2 + header
	}
	return (s.n+1)*wideUnitSize + header
}

// RawLen returns the size in bytes of RawBytes.
func (s *String) RawLen() int {
	if s.mode == Narrow {
		return s.n
	}
	return s.n * wideUnitSize
}

// RawBytes returns the stored code units as bytes: the string itself in
// Narrow mode, little-endian 4-byte units in Wide mode.
func (s *String) RawBytes() []byte {
	if s.mode == Narrow {
		return s.b[:s.n]
	}
	out := make([]byte, 0, s.RawLen())
	for _, r := range s.w[:s.n] {
		out = binary.LittleEndian.AppendUint32(out, uint32(r))
	}
	return out
}

// String renders s for debugging. Wide units are written as UTF-8.
func (s *String) String() string {
	if s == nil {
		return "<nil>"
	}
	if s.mode == Narrow {
		return string(s.b[:s.n])
	}
	return string(s.w[:s.n])
}

// Join builds a composite key: the parts in order, each pair separated by
// one NUL code unit.
func (e *Env) Join(parts ...*String) *String {
	total := 0
	for _, p := range parts {
		e.check(p)
		total += p.n
	}
	if len(parts) > 1 {
		total += len(parts) - 1
	}
	s := e.Alloc(total)
	pos := 0
	for i, p := range parts {
		if i > 0 {
			pos++ // separator, already zero
		}
		if e.mode == Narrow {
			pos += copy(s.b[pos:], p.b[:p.n])
		} else {
			pos += copy(s.w[pos:], p.w[:p.n])
		}
	}
	return s
}
