// SPDX-License-Identifier: Unlicense OR MIT

package loop

import (
	"sync/atomic"
	"time"
)

// timer is a callback waiting in the loop's timer table.
type timer struct {
	due time.Time
	seq uint64
	f   func()
	// index is the position in the heap, or -1 when the timer is not in it.
	index     int
	cancelled atomic.Bool
}

// timerHeap orders timers by due time. Timers due at the same instant run
// in the order they were scheduled.
type timerHeap []*timer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].due.Equal(h[j].due) {
		return h[i].seq < h[j].seq
	}
	return h[i].due.Before(h[j].due)
}

func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *timerHeap) Push(x any) {
	t := x.(*timer)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}
