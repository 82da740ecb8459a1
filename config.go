package bwsort

import (
	"log"
)

// Config holds configuration settings for bwsort
type Config struct {
	ChunkSize          int         // amount of lines in each chunk sorted by one worker
	NumWorkers         int         // maximum number of workers to use to sort chunks
	ChanBuffSize       int         // buffer size for passing chunks to the sort workers
	SortedChanBuffSize int         // buffer size for passing lines to output
	Locale             string      // locale name for every category, empty to resolve each from LC_ALL, LC_<category> and LANG
	ByteSort           bool        // compare raw code units instead of collating, forced on for C and POSIX
	ZeroTerminated     bool        // lines end with NUL instead of newline
	FieldSeparator     rune        // 0 splits fields at blank to non-blank transitions
	Keys               []Key       // sort keys in priority order, empty for the whole line
	Options            KeyOptions  // global ordering options, inherited by keys that set none
	Unique             bool        // output only the first of a run of key-equal lines
	Stable             bool        // disable the last-resort whole-line comparison
	RandomSalt         []byte      // seed mixed into random key hashes
	Logger             *log.Logger // debug output, nil for none
}

// DefaultConfig returns the default configuration options used if none provided
func DefaultConfig() *Config {
	return &Config{
		ChunkSize:          int(1e5),
		NumWorkers:         4,
		ChanBuffSize:       1,
		SortedChanBuffSize: 1000,
	}
}

// mergeConfig takes a provided config and replaces any values not set with the defaults
func mergeConfig(c *Config) *Config {
	d := DefaultConfig()
	if c == nil {
		return d
	}
	if c.ChunkSize < 1 {
		c.ChunkSize = d.ChunkSize
	}
	if c.NumWorkers < 1 {
		c.NumWorkers = d.NumWorkers
	}
	if c.ChanBuffSize < 0 {
		c.ChanBuffSize = d.ChanBuffSize
	}
	if c.SortedChanBuffSize < 0 {
		c.SortedChanBuffSize = d.SortedChanBuffSize
	}
	// the remaining fields are meaningful at their zero value
	return c
}

// validate checks the parts of c that have no usable default.
func (c *Config) validate() error {
	if c.FieldSeparator < 0 {
		return &ConfigError{Field: "FieldSeparator", Value: c.FieldSeparator, Reason: "must not be negative"}
	}
	if c.FieldSeparator == '\n' && !c.ZeroTerminated {
		return &ConfigError{Field: "FieldSeparator", Value: c.FieldSeparator, Reason: "newline separates lines"}
	}
	if err := c.Options.validate("Options"); err != nil {
		return err
	}
	for i := range c.Keys {
		if err := c.Keys[i].validate(i); err != nil {
			return err
		}
	}
	return nil
}
