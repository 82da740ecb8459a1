package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/lanrat/bwsort"
)

type keyFlags []bwsort.Key

func (k *keyFlags) String() string { return fmt.Sprint(*k) }

func (k *keyFlags) Set(def string) error {
	key, err := bwsort.ParseKey(def)
	if err != nil {
		return err
	}
	*k = append(*k, key)
	return nil
}

func main() {
	var (
		keys     keyFlags
		options  = flag.String("o", "", "global ordering options, letters of bdfiMgRr")
		sep      = flag.String("t", "", "field separator, blank runs when empty")
		zero     = flag.Bool("z", false, "lines end with NUL, not newline")
		unique   = flag.Bool("u", false, "output only the first of equal lines")
		stable   = flag.Bool("s", false, "disable last-resort comparison")
		check    = flag.Bool("c", false, "check for sorted input, do not sort")
		loc      = flag.String("locale", "", "locale for every category, from LC_ALL, LC_<category> or LANG when empty")
		byteSort = flag.Bool("bytes", false, "compare bytes, ignoring the locale's collation")
		salt     = flag.String("salt", "", "random sort salt")
		debug    = flag.Bool("debug", false, "print debug output to stderr")
	)
	flag.Var(&keys, "k", "sort key F[.C][OPTS][,F[.C][OPTS]], may be repeated")
	flag.Parse()

	config := bwsort.DefaultConfig()
	config.Keys = keys
	config.ZeroTerminated = *zero
	config.Unique = *unique
	config.Stable = *stable
	config.Locale = *loc
	config.ByteSort = *byteSort
	config.RandomSalt = []byte(*salt)
	if *debug {
		config.Logger = log.New(os.Stderr, "bwsort: ", 0)
	}
	var err error
	if config.Options, err = bwsort.ParseOptions(*options); err != nil {
		log.Fatal(err)
	}
	if *sep != "" {
		r := []rune(*sep)
		if len(r) != 1 {
			log.Fatalf("multi-character separator %q", *sep)
		}
		config.FieldSeparator = r[0]
	}

	env, err := bwsort.NewEnv(config)
	if err != nil {
		log.Fatal(err)
	}
	cmp, err := bwsort.NewComparator(env, config)
	if err != nil {
		log.Fatal(err)
	}

	g, ctx := errgroup.WithContext(context.Background())

	input := make(chan []byte, config.SortedChanBuffSize)
	g.Go(func() error {
		return bwsort.ReadLines(ctx, os.Stdin, "-", config.ZeroTerminated, input)
	})

	if *check {
		g.Go(func() error {
			return bwsort.Check(input, cmp, "-")
		})
		if err := g.Wait(); err != nil {
			var disorder *bwsort.DisorderError
			if errors.As(err, &disorder) {
				fmt.Fprintln(os.Stderr, disorder.Message)
				os.Exit(1)
			}
			log.Fatal(err)
		}
		return
	}

	sorter, output, errChan := bwsort.Lines(input, cmp, config)
	g.Go(func() error {
		sorter.Sort(ctx)
		return nil
	})
	g.Go(func() error {
		if err := bwsort.WriteLines(os.Stdout, env, output, config.ZeroTerminated); err != nil {
			return err
		}
		return <-errChan
	})
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
}
