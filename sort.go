// Package bwsort sorts lines of text the way sort(1) does, on top of the
// locale-aware binary strings of package bwstring.
//
// Lines are read from a channel, split into chunks that are sorted in
// parallel and merged back in memory into a sorted output channel.
package bwsort

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/lanrat/bwsort/queue"
)

// chunk is a run of lines sorted by one worker. seq is the position of the
// chunk in the input and breaks ties during the merge.
type chunk struct {
	seq   int
	lines []*Line
}

// LineSorter sorts lines of raw bytes. Each line is prepared by the
// comparator as it is read, the chunks are sorted by NumWorkers workers and
// the sorted chunks are merged with a k-way merge.
type LineSorter struct {
	config         Config
	cmp            *Comparator
	compare        CompareLines
	buildSortCtx   context.Context
	input          <-chan []byte
	chunkChan      chan *chunk
	mergeChunkChan chan *Line
	mergeErrChan   chan error
	chunkPool      sync.Pool // *[]*Line

	mu     sync.Mutex
	sorted []*chunk
}

// Lines creates a sorter for the raw lines read from input, ordered by cmp,
// and returns the sorter, the output channel with sorted lines and the error
// channel. With config.Unique the output is filtered by UniqLines. Call Sort
// on the returned sorter to begin.
func Lines(input <-chan []byte, cmp *Comparator, config *Config) (*LineSorter, <-chan *Line, <-chan error) {
	config = mergeConfig(config)
	s := &LineSorter{
		config:         *config,
		cmp:            cmp,
		compare:        cmp.Compare,
		input:          input,
		chunkChan:      make(chan *chunk, config.ChanBuffSize),
		mergeChunkChan: make(chan *Line, config.SortedChanBuffSize),
		mergeErrChan:   make(chan error, 1),
	}
	s.chunkPool = sync.Pool{
		New: func() any {
			lines := make([]*Line, 0, s.config.ChunkSize)
			return &lines
		},
	}
	if config.Unique {
		return s, UniqLines(s.mergeChunkChan, cmp), s.mergeErrChan
	}
	return s, s.mergeChunkChan, s.mergeErrChan
}

// Sort sorts the input and feeds the output channel.
// It blocks while chunks are built and sorted and returns once the merge has
// started; the merge runs in its own goroutine with the same context, so ctx
// must outlive Sort returning.
func (s *LineSorter) Sort(ctx context.Context) {
	var g *errgroup.Group
	g, s.buildSortCtx = errgroup.WithContext(ctx)

	g.Go(s.buildChunks)
	for i := 0; i < s.config.NumWorkers; i++ {
		g.Go(s.sortChunks)
	}

	if err := g.Wait(); err != nil {
		s.mergeErrChan <- err
		close(s.mergeErrChan)
		close(s.mergeChunkChan)
		return
	}

	slices.SortFunc(s.sorted, func(a, b *chunk) int {
		return cmp.Compare(a.seq, b.seq)
	})
	go s.mergeChunks(ctx)
}

// buildChunks reads lines from the input chan, prepares them and pushes
// full chunks to chunkChan
func (s *LineSorter) buildChunks() error {
	defer close(s.chunkChan)

	for seq := 0; ; seq++ {
		linesPtr := s.chunkPool.Get().(*[]*Line)
		c := &chunk{seq: seq, lines: (*linesPtr)[:0]}
		done := false
		for len(c.lines) < s.config.ChunkSize && !done {
			select {
			case raw, ok := <-s.input:
				if !ok {
					done = true
					break
				}
				c.lines = append(c.lines, s.cmp.Prepare(raw))
			case <-s.buildSortCtx.Done():
				return s.buildSortCtx.Err()
			}
		}
		if len(c.lines) == 0 {
			s.chunkPool.Put(&c.lines)
			return nil
		}

		select {
		case s.chunkChan <- c:
		case <-s.buildSortCtx.Done():
			return s.buildSortCtx.Err()
		}
		if done {
			return nil
		}
	}
}

// sortChunks is a worker sorting the chunks it takes from chunkChan
func (s *LineSorter) sortChunks() error {
	for {
		select {
		case c, more := <-s.chunkChan:
			if !more {
				return nil
			}
			if err := s.sortChunk(c); err != nil {
				return err
			}
			s.mu.Lock()
			s.sorted = append(s.sorted, c)
			s.mu.Unlock()
		case <-s.buildSortCtx.Done():
			return s.buildSortCtx.Err()
		}
	}
}

// sortChunk sorts c in place, turning a panic of the comparator into a
// ComparisonError.
func (s *LineSorter) sortChunk(c *chunk) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = NewComparisonError(r, "sortChunks")
		}
	}()
	slices.SortStableFunc(c.lines, s.compare)
	return nil
}

// cursor is the merge position inside one sorted chunk.
type cursor struct {
	c   *chunk
	pos int
}

func (m *cursor) line() *Line { return m.c.lines[m.pos] }

// mergeChunks runs asynchronously merging the sorted chunks into the output
// channel and sends errors to mergeErrChan
func (s *LineSorter) mergeChunks(ctx context.Context) {
	defer close(s.mergeChunkChan)
	defer close(s.mergeErrChan)
	defer func() {
		if r := recover(); r != nil {
			s.mergeErrChan <- NewComparisonError(r, "mergeChunks")
		}
	}()

	pq := queue.NewPriorityQueue(func(a, b *cursor) int {
		if r := s.compare(a.line(), b.line()); r != 0 {
			return r
		}
		return cmp.Compare(a.c.seq, b.c.seq)
	})
	for _, c := range s.sorted {
		pq.Push(&cursor{c: c})
	}
	s.sorted = nil

	for pq.Len() > 0 {
		m := pq.Peek()
		line := m.line()
		m.pos++
		if m.pos < len(m.c.lines) {
			pq.PeekUpdate()
		} else {
			pq.Pop()
			s.putChunk(m.c)
		}

		select {
		case s.mergeChunkChan <- line:
		case <-ctx.Done():
			s.mergeErrChan <- ctx.Err()
			return
		}
	}
}

// putChunk returns the line slice of a merged chunk to the pool
func (s *LineSorter) putChunk(c *chunk) {
	lines := c.lines
	clear(lines)
	lines = lines[:0]
	c.lines = nil
	s.chunkPool.Put(&lines)
}
