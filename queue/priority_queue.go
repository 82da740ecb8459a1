// Package queue provides the generic min-heap used by the k-way merge.
package queue

// Priority queue based on
// https://golang.org/pkg/container/heap/#example__priorityQueue

import (
	"container/heap"
)

// entries implements heap.Interface over plain values.
type entries[E any] struct {
	items   []E
	cmpFunc func(E, E) int
}

// PriorityQueue is a min-heap ordered by a three-way comparison function.
// It is not safe for concurrent use.
type PriorityQueue[E any] struct {
	h entries[E]
}

// NewPriorityQueue creates an empty queue that pops the smallest item first
// according to cmpFunc (negative when a comes before b).
func NewPriorityQueue[E any](cmpFunc func(a, b E) int) *PriorityQueue[E] {
	pq := &PriorityQueue[E]{h: entries[E]{cmpFunc: cmpFunc}}
	heap.Init(&pq.h)
	return pq
}

// Len returns the number of items in the queue.
func (pq *PriorityQueue[E]) Len() int {
	return pq.h.Len()
}

// Push adds x to the queue.
func (pq *PriorityQueue[E]) Push(x E) {
	heap.Push(&pq.h, x)
}

// Pop removes and returns the smallest item.
func (pq *PriorityQueue[E]) Pop() E {
	return heap.Pop(&pq.h).(E)
}

// Peek returns the smallest item without removing it.
func (pq *PriorityQueue[E]) Peek() E {
	return pq.h.items[0]
}

// PeekUpdate restores the heap order after the item returned by Peek has
// changed in place.
func (pq *PriorityQueue[E]) PeekUpdate() {
	heap.Fix(&pq.h, 0)
}

func (h *entries[E]) Len() int { return len(h.items) }

func (h *entries[E]) Less(i, j int) bool {
	return h.cmpFunc(h.items[i], h.items[j]) < 0
}

func (h *entries[E]) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}

func (h *entries[E]) Push(x any) {
	h.items = append(h.items, x.(E))
}

func (h *entries[E]) Pop() any {
	old := h.items
	n := len(old)
	x := old[n-1]
	var zero E
	old[n-1] = zero
	h.items = old[:n-1]
	return x
}
