package dlist

// cursor is the position shared by ConstIter and Iter.
type cursor[T any] struct {
	a   *arena[T]
	idx uint32
	gen uint32
}

func (c cursor[T]) node() *node[T] {
	return c.a.at(c.idx)
}

func (c cursor[T]) next() cursor[T] {
	if debug {
		c.mustLive("advance")
	}
	n := c.node()
	if debug && n.next == nilIdx {
		panicf("advance", ErrSentinel)
	}
	return c.a.cursor(n.next)
}

func (c cursor[T]) prev() cursor[T] {
	if debug {
		c.mustLive("retreat")
	}
	n := c.node()
	if debug && n.prev == nilIdx {
		panicf("retreat", ErrSentinel)
	}
	return c.a.cursor(n.prev)
}

func (c cursor[T]) ptr(op string) *T {
	if debug {
		c.mustDeref(op)
	}
	return &c.node().v
}

// ConstIter is a read-only position in a List.
// The zero ConstIter references nothing and must not be used except
// for comparison.
type ConstIter[T any] struct {
	c cursor[T]
}

// Value returns the element at the position.
// Calling it on an end position is undefined.
func (it ConstIter[T]) Value() T {
	return *it.c.ptr("value")
}

// Next returns the position following it.
func (it ConstIter[T]) Next() ConstIter[T] {
	return ConstIter[T]{c: it.c.next()}
}

// Prev returns the position preceding it.
func (it ConstIter[T]) Prev() ConstIter[T] {
	return ConstIter[T]{c: it.c.prev()}
}

// Inc advances it and returns the position before the move.
func (it *ConstIter[T]) Inc() ConstIter[T] {
	old := *it
	it.c = it.c.next()
	return old
}

// Dec moves it backward and returns the position before the move.
func (it *ConstIter[T]) Dec() ConstIter[T] {
	old := *it
	it.c = it.c.prev()
	return old
}

// Equal reports whether both iterators reference the same node.
func (it ConstIter[T]) Equal(o ConstIter[T]) bool {
	return it.c == o.c
}

// Iter is a read-write position in a List. Everything a ConstIter does,
// Iter does too. Use Const where a ConstIter is expected.
type Iter[T any] struct {
	c cursor[T]
}

func (it Iter[T]) Value() T {
	return *it.c.ptr("value")
}

// Ptr returns a pointer to the element. The pointer stays valid until
// the element is erased.
func (it Iter[T]) Ptr() *T {
	return it.c.ptr("ptr")
}

func (it Iter[T]) Set(v T) {
	*it.c.ptr("set") = v
}

func (it Iter[T]) Next() Iter[T] {
	return Iter[T]{c: it.c.next()}
}

func (it Iter[T]) Prev() Iter[T] {
	return Iter[T]{c: it.c.prev()}
}

func (it *Iter[T]) Inc() Iter[T] {
	old := *it
	it.c = it.c.next()
	return old
}

func (it *Iter[T]) Dec() Iter[T] {
	old := *it
	it.c = it.c.prev()
	return old
}

func (it Iter[T]) Equal(o Iter[T]) bool {
	return it.c == o.c
}

func (it Iter[T]) Const() ConstIter[T] {
	return ConstIter[T]{c: it.c}
}
