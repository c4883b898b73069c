package dlist

const (
	chunkShift = 6
	chunkSize  = 1 << chunkShift
	chunkMask  = chunkSize - 1

	nilIdx = ^uint32(0)
)

// node is one slot of the arena. Sentinels are ordinary slots with sent set.
// gen is bumped every time the slot is released, so a cursor holding an
// older generation references a node that no longer exists.
type node[T any] struct {
	v          T
	prev, next uint32
	gen        uint32
	sent       bool
}

// arena owns every node of a list, sentinels included.
// Chunks are never moved or shrunk, so pointers to values stay valid
// for as long as the slot is live.
type arena[T any] struct {
	chunks []*[chunkSize]node[T]
	used   uint32 // slots handed out at least once
	free   uint32 // free list head, chained through node.next
	live   int
}

func newArena[T any]() *arena[T] {
	return &arena[T]{free: nilIdx}
}

func (a *arena[T]) at(i uint32) *node[T] {
	return &a.chunks[i>>chunkShift][i&chunkMask]
}

func (a *arena[T]) alloc(v T, prev, next uint32) uint32 {
	var i uint32
	if a.free != nilIdx {
		i = a.free
		a.free = a.at(i).next
	} else {
		if a.used>>chunkShift == uint32(len(a.chunks)) {
			a.chunks = append(a.chunks, new([chunkSize]node[T]))
		}
		i = a.used
		a.used++
	}
	n := a.at(i)
	n.v = v
	n.prev = prev
	n.next = next
	a.live++
	return i
}

// release zeroes the value so the gc can collect whatever it references,
// and invalidates all cursors to the slot.
func (a *arena[T]) release(i uint32) {
	n := a.at(i)
	var zero T
	n.v = zero
	n.prev = nilIdx
	n.next = a.free
	n.sent = false
	n.gen++
	a.free = i
	a.live--
}

func (a *arena[T]) cursor(i uint32) cursor[T] {
	return cursor[T]{a: a, idx: i, gen: a.at(i).gen}
}
