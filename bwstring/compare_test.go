package bwstring_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lanrat/bwsort/bwstring"
	"github.com/lanrat/bwsort/locale"
)

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

func TestComparePrefix(t *testing.T) {
	for _, env := range []*bwstring.Env{bwstring.NewEnv(nil), localeEnv(t, "en_US.UTF-8")} {
		for _, test := range []struct {
			a, b          string
			offset, limit int
			want          int
		}{
			{"abc", "abc", 0, 3, 0},
			{"abc", "abd", 0, 3, -1},
			{"abc", "abd", 0, 2, 0},
			{"abd", "abc", 0, 10, 1},
			{"ab", "abc", 0, 10, -1},
			{"ab", "abc", 0, 2, 0},
			{"abc", "ab", 0, 10, 1},
			{"xabc", "yabd", 1, 2, 0},
			{"xabc", "yabd", 1, 3, -1},
			{"a", "b", 1, 5, 0},
			{"a", "bc", 1, 5, -1},
			{"ab", "b", 1, 5, 1},
			{"a\x00b", "a\x00c", 0, 3, -1},
			{"\xff", "a", 0, 1, 1},
			{"", "b", 0, 0, 0},
			{"abc", "", 0, 0, 0},
			{"x", "xyz", 1, 0, 0},
			{"abc", "abd", 0, -1, 0},
			{"", "", 0, 5, 0},
			{"", "a", 0, 1, -1},
			{"abc", "abd", 5, 3, 0},
		} {
			a := env.FromBytes([]byte(test.a))
			b := env.FromBytes([]byte(test.b))
			if got := sign(bwstring.ComparePrefix(a, b, test.offset, test.limit)); got != test.want {
				t.Errorf("%s: ComparePrefix(%q, %q, %d, %d) = %d, want %d",
					env.Mode(), test.a, test.b, test.offset, test.limit, got, test.want)
			}
		}
	}
}

func TestCompare(t *testing.T) {
	env := bwstring.NewEnv(nil)
	for _, test := range []struct {
		a, b   string
		offset int
		want   int
	}{
		{"", "", 0, 0},
		{"", "a", 0, -1},
		{"abc", "abcd", 0, -1},
		{"abcd", "abc", 0, 1},
		{"zab", "yab", 1, 0},
		{"zab", "yabc", 1, -1},
		{"z", "y", 3, 0},
	} {
		a := env.FromBytes([]byte(test.a))
		b := env.FromBytes([]byte(test.b))
		if got := sign(bwstring.Compare(a, b, test.offset)); got != test.want {
			t.Errorf("Compare(%q, %q, %d) = %d, want %d", test.a, test.b, test.offset, got, test.want)
		}
	}
}

func TestCollateScenarios(t *testing.T) {
	for _, name := range []string{"en_US.UTF-8", "de_DE.ISO8859-1", "C", "C.UTF-8"} {
		env := localeEnv(t, name)
		for _, test := range []struct {
			a, b string
			want int
		}{
			{"apple\x001", "apple\x002", -1},
			{"a", "ab", -1},
			{"ab", "a", 1},
			{"", "", 0},
			{"", "a", -1},
			{"same", "same", 0},
			{"\x00x", "a\x00x", -1},
			{"a\x00x", "\x00x", 1},
			{"ab\x00z", "abc\x00a", -1},
			{"a\x00\x00b", "a\x00\x00c", -1},
			{"a\x00\x00b", "a\x00\x00b", 0},
			{"a\x00", "a", 1},
			{"a\x00b", "a\x00", 1},
		} {
			a := env.FromBytes([]byte(test.a))
			b := env.FromBytes([]byte(test.b))
			if got := sign(env.Collate(a, b, 0)); got != test.want {
				t.Errorf("%s: Collate(%q, %q) = %d, want %d", name, test.a, test.b, got, test.want)
			}
		}
	}
}

func TestCollateOffset(t *testing.T) {
	env := localeEnv(t, "en_US.UTF-8")
	a := env.FromBytes([]byte("zzapple"))
	b := env.FromBytes([]byte("aaapple"))
	require.Zero(t, env.Collate(a, b, 2))
	require.Zero(t, env.Collate(a, b, 10))
	require.Equal(t, -1, env.Collate(env.FromBytes([]byte("zz")), b, 2))
	require.Equal(t, 1, env.Collate(b, env.FromBytes([]byte("zz")), 2))
}

func TestCollateLocaleOrder(t *testing.T) {
	// byte order puts upper case first, the locale does not
	c := bwstring.NewEnv(nil)
	require.Equal(t, -1, sign(c.Collate(c.FromBytes([]byte("B")), c.FromBytes([]byte("a")), 0)))

	en := localeEnv(t, "en_US.UTF-8")
	require.Equal(t, 1, sign(en.Collate(en.FromBytes([]byte("B")), en.FromBytes([]byte("a")), 0)))

	forced := localeEnv(t, "en_US.UTF-8", bwstring.WithByteSort(true))
	require.True(t, forced.ByteSort())
	require.Equal(t, -1, sign(forced.Collate(forced.FromBytes([]byte("B")), forced.FromBytes([]byte("a")), 0)))

	latin1 := localeEnv(t, "de_DE.ISO8859-1")
	require.False(t, latin1.ByteSort())
	// é (0xe9) sorts between e and f, not after z
	e := latin1.FromBytes([]byte("\xe9"))
	require.Equal(t, -1, sign(latin1.Collate(e, latin1.FromBytes([]byte("z")), 0)))
	require.Equal(t, 1, sign(latin1.Collate(e, latin1.FromBytes([]byte("e")), 0)))
}

func TestCollateByteSortTieBreak(t *testing.T) {
	env := bwstring.NewEnv(nil)
	require.True(t, env.ByteSort())
	a := env.FromBytes([]byte("abc"))
	b := env.FromBytes([]byte("abcd"))
	require.Equal(t, -1, sign(env.Collate(a, b, 0)))
	require.Equal(t, 1, sign(env.Collate(b, a, 0)))
	require.Zero(t, env.Collate(a, bwstring.Dup(a), 0))
}

// TestCollateBoundaryLaw checks that a composite key orders by its first
// field and falls through to the second only when the first fields collate
// equal.
func TestCollateBoundaryLaw(t *testing.T) {
	l, err := locale.Parse("en_US.UTF-8")
	require.NoError(t, err)
	env := bwstring.NewEnv(l)
	coll := locale.NewCollator(l)

	keys := []string{"", "a", "ab", "b", "B", "apple", "Apple", "zebra"}
	for _, k1 := range keys {
		for _, k1b := range keys {
			for _, k2 := range keys {
				for _, k2b := range keys {
					want := sign(coll.CompareRunes([]rune(k1), []rune(k1b)))
					if want == 0 {
						want = sign(coll.CompareRunes([]rune(k2), []rune(k2b)))
					}
					a := env.Join(env.FromBytes([]byte(k1)), env.FromBytes([]byte(k2)))
					b := env.Join(env.FromBytes([]byte(k1b)), env.FromBytes([]byte(k2b)))
					if got := sign(env.Collate(a, b, 0)); got != want {
						t.Fatalf("Collate(%q+%q, %q+%q) = %d, want %d", k1, k2, k1b, k2b, got, want)
					}
				}
			}
		}
	}
}

func TestCollateInvalidRunes(t *testing.T) {
	env := localeEnv(t, "en_US.UTF-8")
	// surrogates are not scalars: fall back to code point order
	a := env.FromRunes([]rune{'a', 0xd800})
	b := env.FromRunes([]rune{'a', 0xd801})
	require.Equal(t, -1, sign(env.Collate(a, b, 0)))
	require.Equal(t, 1, sign(env.Collate(b, a, 0)))
}

func TestCollateModeMismatch(t *testing.T) {
	narrow := bwstring.NewEnv(nil)
	wide := localeEnv(t, "en_US.UTF-8")
	defer func() {
		r := recover()
		_, ok := r.(*bwstring.ModeError)
		require.True(t, ok, "recovered %v", r)
	}()
	wide.Collate(narrow.Alloc(1), narrow.Alloc(1), 0)
}

func TestCollateConcurrent(t *testing.T) {
	env := localeEnv(t, "fr_FR.UTF-8")
	a := env.FromBytes([]byte("côte\x00b"))
	b := env.FromBytes([]byte("coté\x00a"))
	want := env.Collate(a, b, 0)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				if got := env.Collate(a, b, 0); got != want {
					t.Errorf("concurrent Collate = %d, want %d", got, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestCollationFaultError(t *testing.T) {
	f := &bwstring.CollationFault{Pos: 3, Reason: "broken"}
	require.Equal(t, "bwstring: collation fault at unit 3: broken", f.Error())
}
