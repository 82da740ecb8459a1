package bwsort

// UniqLines returns a channel that filters out consecutive lines equal under
// cmp's unique rule, keeping the first of each run. The input is expected in
// sorted order. The returned channel is closed when in is closed. Lines uses
// it for the output of a unique sort.
func UniqLines(in <-chan *Line, cmp *Comparator) <-chan *Line {
	out := make(chan *Line)
	go func() {
		defer close(out)
		var prior *Line
		for l := range in {
			if prior != nil && cmp.Equal(prior, l) {
				continue
			}
			out <- l
			prior = l
		}
	}()
	return out
}
