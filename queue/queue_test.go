package queue_test

import (
	"cmp"
	"testing"

	"github.com/lanrat/bwsort/queue"
)

func TestEqualItems(t *testing.T) {
	q := queue.NewPriorityQueue(cmp.Compare[int])
	for i := 20; i > 0; i-- {
		q.Push(0)
	}

	if l := q.Len(); l != 20 {
		t.Fatalf("queue len is %d, expected %d", l, 20)
	}

	for i := 1; q.Len() > 0; i++ {
		x := q.Peek()
		y := q.Pop()
		if x != y {
			t.Fatalf("q.Peek() and q.Pop() returned different values %d %d", x, y)
		}
		if x != 0 {
			t.Errorf("%d.th pop got %d; want %d", i, x, 0)
		}
	}
}

func TestOrder(t *testing.T) {
	q := queue.NewPriorityQueue(cmp.Compare[int])
	if l := q.Len(); l != 0 {
		t.Fatalf("queue len is %d, expected %d", l, 0)
	}

	for i := 20; i > 10; i-- {
		q.Push(i)
	}
	for i := 10; i > 0; i-- {
		q.Push(i)
	}
	if l := q.Len(); l != 20 {
		t.Fatalf("queue len is %d, expected %d", l, 20)
	}

	for i := 1; q.Len() > 0; i++ {
		x := q.Peek()
		y := q.Pop()
		if x != y {
			t.Fatalf("q.Peek() and q.Pop() returned different values %d %d", x, y)
		}
		if i < 20 {
			q.Push(20 + i)
		}
		if x != i {
			t.Errorf("%d.th pop got %d; want %d", i, x, i)
		}
	}
}

type cursor struct {
	vals []int
	pos  int
}

func TestPeekUpdate(t *testing.T) {
	q := queue.NewPriorityQueue(func(a, b *cursor) int {
		return cmp.Compare(a.vals[a.pos], b.vals[b.pos])
	})
	q.Push(&cursor{vals: []int{1, 4, 7}})
	q.Push(&cursor{vals: []int{2, 5, 8}})
	q.Push(&cursor{vals: []int{3, 6, 9}})

	var got []int
	for q.Len() > 0 {
		c := q.Peek()
		got = append(got, c.vals[c.pos])
		c.pos++
		if c.pos < len(c.vals) {
			q.PeekUpdate()
		} else {
			q.Pop()
		}
	}
	for i, v := range got {
		if v != i+1 {
			t.Fatalf("merge order %v", got)
		}
	}
}
