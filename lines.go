package bwsort

import (
	"bufio"
	"context"
	"io"

	"github.com/lanrat/bwsort/bwstring"
)

// ReadLines reads lines from r and sends them to out, which it closes when
// done. Lines end with NUL when zeroTerminated is set and with a newline
// otherwise; the terminator is not part of the line. A last line without a
// terminator is kept and lines have no length limit. name is used in error
// messages.
func ReadLines(ctx context.Context, r io.Reader, name string, zeroTerminated bool, out chan<- []byte) error {
	defer close(out)

	var eol byte = '\n'
	if zeroTerminated {
		eol = 0
	}
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadBytes(eol)
		if len(line) > 0 {
			if err == nil {
				line = line[:len(line)-1]
			}
			select {
			case out <- line:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return NewIOError(err, "read", name)
		}
	}
}

// WriteLines writes every line from lines to w through env's writer, each
// followed by NUL when zeroTerminated is set and by a newline otherwise.
// It stops at the first write error.
func WriteLines(w io.Writer, env *bwstring.Env, lines <-chan *Line, zeroTerminated bool) error {
	bw := bufio.NewWriter(w)
	for l := range lines {
		if _, err := env.Write(bw, l.Text(), zeroTerminated); err != nil {
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		return &bwstring.WriteError{Err: err}
	}
	return nil
}
