package bwstring

import (
	"fmt"
	"io"
	"slices"
)

// Write writes s to w followed by one terminator: NUL when zeroEnded is
// true, a newline otherwise. It returns the number of code units written,
// terminator included. Narrow strings are written as raw bytes; Wide strings
// are encoded in the locale's code set with embedded NULs kept.
func (e *Env) Write(w io.Writer, s *String, zeroEnded bool) (int, error) {
	e.check(s)
	var eol byte = '\n'
	if zeroEnded {
		eol = 0
	}

	if e.mode == Narrow {
		s.b[s.n] = eol
		_, err := w.Write(s.b[:s.n+1])
		s.b[s.n] = 0
		if err != nil {
			return 0, &WriteError{Err: err}
		}
		return s.n + 1, nil
	}

	var buf []byte
	printed := 0
	for printed < s.n {
		buf = buf[:0]
		if s.w[printed] == 0 {
			buf = append(buf, 0)
			printed++
		} else {
			end := printed + len(run(s.w[printed:s.n]))
			var err error
			buf, err = e.loc.AppendRunes(buf, s.w[printed:end])
			if err != nil {
				return printed, &WriteError{Err: err}
			}
			printed = end
		}
		if _, err := w.Write(buf); err != nil {
			return printed, &WriteError{Err: err}
		}
	}
	if _, err := w.Write([]byte{eol}); err != nil {
		return printed, &WriteError{Err: err}
	}
	return printed + 1, nil
}

// Fprint writes prefix, the content of s up to its first NUL, and suffix.
func (e *Env) Fprint(w io.Writer, s *String, prefix, suffix string) error {
	text, err := e.display(s)
	if err != nil {
		return &WriteError{Err: err}
	}
	if _, err := io.WriteString(w, prefix); err != nil {
		return &WriteError{Err: err}
	}
	if _, err := w.Write(text); err != nil {
		return &WriteError{Err: err}
	}
	if _, err := io.WriteString(w, suffix); err != nil {
		return &WriteError{Err: err}
	}
	return nil
}

// DisorderMessage formats the warning for line s found out of order at
// zero-based position pos of file fn.
func (e *Env) DisorderMessage(s *String, fn string, pos int) string {
	text, err := e.display(s)
	if err != nil {
		text = []byte(s.String())
	}
	return fmt.Sprintf("%s:%d: disorder: %s", fn, pos+1, text)
}

// display returns the content of s up to its first NUL, encoded for output.
func (e *Env) display(s *String) ([]byte, error) {
	e.check(s)
	if e.mode == Narrow {
		return slices.Clone(run(s.b[:s.n])), nil
	}
	return e.loc.AppendRunes(nil, run(s.w[:s.n]))
}
