package bwsort

import (
	"github.com/lanrat/bwsort/bwstring"
	"github.com/lanrat/bwsort/locale"
)

// NewEnv resolves the locale categories of config and builds the string
// context every line is decoded in. A non-empty Locale is used for every
// category, as LC_ALL would be; an empty one resolves each category from the
// environment.
func NewEnv(config *Config) (*bwstring.Env, error) {
	config = mergeConfig(config)

	var (
		cats locale.Categories
		err  error
	)
	if config.Locale == "" {
		cats, err = locale.FromEnv()
	} else {
		var loc *locale.Locale
		if loc, err = locale.Parse(config.Locale); err == nil {
			cats = locale.Uniform(loc)
		}
	}
	if err != nil {
		return nil, &ConfigError{Field: "Locale", Value: config.Locale, Reason: "cannot load locale", Err: err}
	}

	var opts []bwstring.Option
	if config.ByteSort {
		opts = append(opts, bwstring.WithByteSort(true))
	}
	if config.Logger != nil {
		config.Logger.Printf("collate %s, ctype %s, time %s, numeric %s", cats.Collate, cats.CType, cats.Time, cats.Numeric)
		config.Logger.Printf("code set %s, max char width %d", cats.CType.Codeset(), cats.CType.MaxCharWidth())
		opts = append(opts, bwstring.WithLogger(config.Logger))
	}
	return bwstring.NewCategoryEnv(cats, opts...), nil
}
