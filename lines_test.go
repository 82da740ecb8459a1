package bwsort_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/lanrat/bwsort"
	"github.com/lanrat/bwsort/bwstring"
)

func readAll(t *testing.T, in string, zero bool) []string {
	t.Helper()
	out := make(chan []byte, 16)
	errc := make(chan error, 1)
	go func() {
		errc <- bwsort.ReadLines(context.Background(), strings.NewReader(in), "test", zero, out)
	}()
	var got []string
	for l := range out {
		got = append(got, string(l))
	}
	require.NoError(t, <-errc)
	return got
}

func TestReadLines(t *testing.T) {
	for _, test := range []struct {
		in   string
		zero bool
		want []string
	}{
		{"a\nb\n\nc", false, []string{"a", "b", "", "c"}},
		{"a\n", false, []string{"a"}},
		{"", false, nil},
		{"\n", false, []string{""}},
		{"a\x00b\x00", true, []string{"a", "b"}},
		{"a\nb\x00c", true, []string{"a\nb", "c"}},
		{"x\x00y\n", false, []string{"x\x00y"}},
	} {
		got := readAll(t, test.in, test.zero)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("ReadLines(%q) mismatch (-want +got):\n%s", test.in, diff)
		}
	}
}

func TestReadLinesError(t *testing.T) {
	errBroken := errors.New("broken pipe")
	out := make(chan []byte, 1)
	err := bwsort.ReadLines(context.Background(), iotest.ErrReader(errBroken), "input.txt", false, out)
	require.ErrorIs(t, err, errBroken)
	require.Contains(t, err.Error(), "input.txt")
	_, ok := <-out
	require.False(t, ok, "out must be closed")
}

func TestReadLinesLong(t *testing.T) {
	long := strings.Repeat("x", 65<<20)
	got := readAll(t, long+"\nb", false)
	require.Len(t, got, 2)
	require.Len(t, got[0], len(long))
	require.Equal(t, "b", got[1])
}

func TestReadLinesOneByte(t *testing.T) {
	out := make(chan []byte, 8)
	r := iotest.OneByteReader(strings.NewReader("ab\x00\x00c"))
	require.NoError(t, bwsort.ReadLines(context.Background(), r, "-", true, out))
	var got []string
	for l := range out {
		got = append(got, string(l))
	}
	require.Equal(t, []string{"ab", "", "c"}, got)
}

func TestReadLinesCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out := make(chan []byte)
	err := bwsort.ReadLines(ctx, strings.NewReader("a\nb\n"), "-", false, out)
	require.ErrorIs(t, err, context.Canceled)
}

func prepareAll(cmp *bwsort.Comparator, lines ...string) <-chan *bwsort.Line {
	ch := make(chan *bwsort.Line, len(lines))
	for _, l := range lines {
		ch <- cmp.Prepare([]byte(l))
	}
	close(ch)
	return ch
}

func newComparator(t *testing.T, config *bwsort.Config) (*bwstring.Env, *bwsort.Comparator) {
	t.Helper()
	env, err := bwsort.NewEnv(config)
	require.NoError(t, err)
	c, err := bwsort.NewComparator(env, config)
	require.NoError(t, err)
	return env, c
}

func TestWriteLines(t *testing.T) {
	for _, locale := range []string{"C", "en_US.UTF-8"} {
		env, c := newComparator(t, &bwsort.Config{Locale: locale})

		var buf bytes.Buffer
		require.NoError(t, bwsort.WriteLines(&buf, env, prepareAll(c, "b", "a\x00x", ""), false))
		require.Equal(t, "b\na\x00x\n\n", buf.String())

		buf.Reset()
		require.NoError(t, bwsort.WriteLines(&buf, env, prepareAll(c, "b", "a"), true))
		require.Equal(t, "b\x00a\x00", buf.String())
	}
}

type brokenWriter struct{}

var errClosed = errors.New("closed")

func (brokenWriter) Write([]byte) (int, error) { return 0, errClosed }

func TestWriteLinesError(t *testing.T) {
	env, c := newComparator(t, &bwsort.Config{Locale: "C"})
	err := bwsort.WriteLines(brokenWriter{}, env, prepareAll(c, "a"), false)
	var werr *bwstring.WriteError
	require.ErrorAs(t, err, &werr)
	require.ErrorIs(t, err, errClosed)
}

func TestUniqLines(t *testing.T) {
	_, c := newComparator(t, &bwsort.Config{Locale: "C"})
	var got []string
	for l := range bwsort.UniqLines(prepareAll(c, "a", "a", "b", "b", "b", "c"), c) {
		got = append(got, l.Text().String())
	}
	require.Equal(t, []string{"a", "b", "c"}, got)

	_, fold := newComparator(t, &bwsort.Config{Locale: "C", Options: bwsort.KeyOptions{IgnoreCase: true}})
	got = nil
	for l := range bwsort.UniqLines(prepareAll(fold, "a", "A", "b"), fold) {
		got = append(got, l.Text().String())
	}
	require.Equal(t, []string{"a", "b"}, got)
}

func rawLines(lines ...string) <-chan []byte {
	ch := make(chan []byte, len(lines))
	for _, l := range lines {
		ch <- []byte(l)
	}
	close(ch)
	return ch
}

func TestCheck(t *testing.T) {
	_, c := newComparator(t, &bwsort.Config{Locale: "C"})
	require.NoError(t, bwsort.Check(rawLines("a", "a", "b", "c"), c, "-"))
	require.NoError(t, bwsort.Check(rawLines(), c, "-"))

	err := bwsort.Check(rawLines("a", "c", "b", "a"), c, "-")
	var disorder *bwsort.DisorderError
	require.ErrorAs(t, err, &disorder)
	require.Equal(t, 2, disorder.Line)
	require.Equal(t, "-", disorder.File)
	require.Equal(t, "-:3: disorder: b", err.Error())
}

func TestCheckUnique(t *testing.T) {
	_, c := newComparator(t, &bwsort.Config{Locale: "C", Unique: true})
	err := bwsort.Check(rawLines("a", "b", "b"), c, "list.txt")
	var disorder *bwsort.DisorderError
	require.ErrorAs(t, err, &disorder)
	require.Equal(t, "list.txt:3: disorder: b", disorder.Message)
}
