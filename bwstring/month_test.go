package bwstring_test

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lanrat/bwsort/bwstring"
	"github.com/lanrat/bwsort/locale"
)

var upperMonths = [12]string{"JAN", "FEB", "MAR", "APR", "MAY", "JUN", "JUL", "AUG", "SEP", "OCT", "NOV", "DEC"}

func TestMonthScore(t *testing.T) {
	for _, name := range []string{"C", "en_US.UTF-8"} {
		env := localeEnv(t, name, bwstring.WithMonthNames(upperMonths))
		for _, test := range []struct {
			in   string
			want int
		}{
			{"DEC 1", 11},
			{"JAN", 0},
			{"  MAR 2020", 2},
			{"\tSEPTEMBER", 8},
			{"XYZ", bwstring.NoMonth},
			{"", bwstring.NoMonth},
			{"JA", bwstring.NoMonth},
			{"jan", bwstring.NoMonth},
			{"\x00JAN", bwstring.NoMonth},
		} {
			if got := env.MonthScore(env.FromBytes([]byte(test.in))); got != test.want {
				t.Errorf("%s: MonthScore(%q) = %d, want %d", name, test.in, got, test.want)
			}
		}
	}
}

func TestMonthScoreEmptySlot(t *testing.T) {
	names := upperMonths
	names[4] = ""
	env := bwstring.NewEnv(nil, bwstring.WithMonthNames(names))
	require.Equal(t, bwstring.NoMonth, env.MonthScore(env.FromBytes([]byte("MAY"))))
	require.Equal(t, bwstring.NoMonth, env.MonthScore(env.FromBytes([]byte(""))))
	require.Equal(t, 5, env.MonthScore(env.FromBytes([]byte("JUN"))))

	_, ok := env.Months().Name(4)
	require.False(t, ok)
}

func TestMonthScoreLaterMonthWins(t *testing.T) {
	var names [12]string
	names[0] = "A"
	names[5] = "AB"
	env := bwstring.NewEnv(nil, bwstring.WithMonthNames(names))
	require.Equal(t, 5, env.MonthScore(env.FromBytes([]byte("ABC"))))
	require.Equal(t, 0, env.MonthScore(env.FromBytes([]byte("AC"))))
}

func TestMonthTableFromLocale(t *testing.T) {
	c := bwstring.NewEnv(nil)
	name, ok := c.Months().Name(0)
	require.True(t, ok)
	require.Equal(t, "JAN", name)
	require.Equal(t, 11, c.MonthScore(c.FromBytes([]byte("DEC"))))

	de := localeEnv(t, "de_DE.UTF-8")
	require.Equal(t, 2, de.MonthScore(de.FromBytes([]byte("MÄR 3"))))
	require.Equal(t, 9, de.MonthScore(de.FromBytes([]byte(" OKT"))))

	latin1 := localeEnv(t, "de_DE.ISO8859-1")
	require.Equal(t, 2, latin1.MonthScore(latin1.FromBytes([]byte("M\xc4R"))))

	fr := localeEnv(t, "fr_FR.UTF-8")
	require.Equal(t, 1, fr.MonthScore(fr.FromBytes([]byte("FÉVR. 12"))))
	require.Equal(t, 6, fr.MonthScore(fr.FromBytes([]byte("JUIL."))))

	ja := localeEnv(t, "ja_JP.eucJP")
	require.Equal(t, 10, ja.MonthScore(ja.FromBytes([]byte("11\xb7\xee"))))
	require.Equal(t, 0, ja.MonthScore(ja.FromBytes([]byte("1\xb7\xee"))))
}

func TestMonthTableUnencodable(t *testing.T) {
	l, err := locale.Parse("ru_RU.ISO8859-1")
	require.NoError(t, err)
	env := bwstring.NewEnv(l)
	for i := 0; i < 12; i++ {
		if _, ok := env.Months().Name(i); ok {
			t.Errorf("month %d set, want unset: Cyrillic has no Latin-1 form", i)
		}
	}
}

func TestMonthTableDebugLog(t *testing.T) {
	var buf bytes.Buffer
	bwstring.NewEnv(nil, bwstring.WithLogger(log.New(&buf, "", 0)))
	out := buf.String()
	require.True(t, strings.HasPrefix(out, "month[0]=Jan\n"), out)
	require.Contains(t, out, "month[11]=Dec\n")
}
