package bwsort

// Check reads raw lines from in and reports the first one that is out of
// order under cmp as a *DisorderError. With cmp's unique rule a line equal
// to its predecessor is out of order too. name is the file name used in the
// message. Check stops reading at the first disorder; the caller cancels the
// producer.
func Check(in <-chan []byte, cmp *Comparator, name string) error {
	var prev *Line
	pos := 0
	for raw := range in {
		l := cmp.Prepare(raw)
		if prev != nil {
			r := cmp.Compare(prev, l)
			if r > 0 || r == 0 && cmp.unique {
				return &DisorderError{
					File:    name,
					Line:    pos,
					Message: cmp.env.DisorderMessage(l.Text(), name, pos),
				}
			}
		}
		prev = l
		pos++
	}
	return nil
}
