// Package dlist implements a generic doubly linked list bounded by two
// sentinel nodes.
//
// The head sentinel sits before the first element and the tail sentinel
// after the last one. Both always exist, so inserting at either end of an
// empty or non-empty list takes the same path.
//
// Positions are exposed as iterators: ConstIter for read-only access and
// Iter for read-write access. Erasing a node invalidates only the iterators
// at that node. Inserting invalidates nothing.
//
// A List must not be copied by value. Use Clone, Move, Assign and
// MoveAssign instead. A List is not safe for concurrent use.
package dlist

import "golang.org/x/exp/constraints"

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// List is a doubly linked list of T. The zero value is an empty list
// ready to use.
type List[T any] struct {
	noCopy noCopy

	size       int
	head, tail uint32
	a          *arena[T] // nil until first use
}

// New returns an empty list.
func New[T any]() *List[T] {
	l := new(List[T])
	l.initSentinels()
	return l
}

// Of returns a list holding vs in order.
func Of[T any](vs ...T) *List[T] {
	l := New[T]()
	for _, v := range vs {
		l.PushBack(v)
	}
	return l
}

// NewN returns a list holding n copies of v.
func NewN[T any, N constraints.Integer](n N, v T) *List[T] {
	l := New[T]()
	for i := N(0); i < n; i++ {
		l.PushBack(v)
	}
	return l
}

// NewZeroN returns a list holding n zero values.
func NewZeroN[T any, N constraints.Integer](n N) *List[T] {
	var zero T
	return NewN(n, zero)
}

// NewRange returns a list holding copies of the elements in [first, last).
func NewRange[T any](first, last ConstIter[T]) *List[T] {
	l := New[T]()
	for ; first != last; first = first.Next() {
		l.PushBack(first.Value())
	}
	return l
}

func (l *List[T]) initSentinels() {
	l.a = newArena[T]()
	l.head = l.a.alloc(*new(T), nilIdx, nilIdx)
	l.tail = l.a.alloc(*new(T), l.head, nilIdx)
	l.a.at(l.head).next = l.tail
	l.a.at(l.head).sent = true
	l.a.at(l.tail).sent = true
	l.size = 0
}

func (l *List[T]) lazyInit() {
	if l.a == nil {
		l.initSentinels()
	}
}

// Release erases every element and drops the sentinels and the node
// storage. Iterators into l are invalid afterwards. l itself is left as
// a zero List and may be used again.
func (l *List[T]) Release() {
	if l.a == nil {
		return
	}
	l.Clear()
	l.a.release(l.head)
	l.a.release(l.tail)
	l.a = nil
	l.head, l.tail = 0, 0
}

// Clone returns an independent copy of l.
func (l *List[T]) Clone() *List[T] {
	c := New[T]()
	if l.a == nil {
		return c
	}
	for it, end := l.CBegin(), l.CEnd(); it != end; it = it.Next() {
		c.PushBack(it.Value())
	}
	return c
}

// Move returns a list that takes over the elements of l. Iterators into
// l now refer to the returned list. l is reset to a fresh empty list.
func (l *List[T]) Move() *List[T] {
	m := new(List[T])
	m.Swap(l)
	l.initSentinels()
	return m
}

// Swap exchanges the contents of l and o. Iterators follow their elements.
func (l *List[T]) Swap(o *List[T]) {
	l.size, o.size = o.size, l.size
	l.head, o.head = o.head, l.head
	l.tail, o.tail = o.tail, l.tail
	l.a, o.a = o.a, l.a
}

// Assign replaces the contents of l with a copy of src.
// The copy is built before l is touched.
func (l *List[T]) Assign(src *List[T]) {
	if l == src {
		return
	}
	c := src.Clone()
	l.Swap(c)
	c.Release()
}

// MoveAssign exchanges the contents of l and src. src ends up holding what
// l previously held, so releasing src disposes of it.
func (l *List[T]) MoveAssign(src *List[T]) {
	if l == src {
		return
	}
	l.Swap(src)
}

// AssignValues replaces the contents of l with vs.
func (l *List[T]) AssignValues(vs ...T) {
	l.Clear()
	for _, v := range vs {
		l.PushBack(v)
	}
}

func (l *List[T]) Len() int { return l.size }

func (l *List[T]) Empty() bool { return l.size == 0 }

// Begin returns the position of the first element, or End if l is empty.
func (l *List[T]) Begin() Iter[T] {
	l.lazyInit()
	return Iter[T]{c: l.a.cursor(l.a.at(l.head).next)}
}

// End returns the position one past the last element. It must not be
// dereferenced.
func (l *List[T]) End() Iter[T] {
	l.lazyInit()
	return Iter[T]{c: l.a.cursor(l.tail)}
}

func (l *List[T]) CBegin() ConstIter[T] {
	return l.Begin().Const()
}

func (l *List[T]) CEnd() ConstIter[T] {
	return l.End().Const()
}

// Front returns the first element. l must not be empty.
func (l *List[T]) Front() T {
	return *l.FrontPtr()
}

// Back returns the last element. l must not be empty.
func (l *List[T]) Back() T {
	return *l.BackPtr()
}

func (l *List[T]) FrontPtr() *T {
	if debug {
		l.mustNotEmpty("front")
	}
	return l.Begin().Ptr()
}

func (l *List[T]) BackPtr() *T {
	if debug {
		l.mustNotEmpty("back")
	}
	return l.End().Prev().Ptr()
}

// Insert inserts v before pos and returns the position of the new element.
// pos may be End.
func (l *List[T]) Insert(pos Iter[T], v T) Iter[T] {
	l.lazyInit()
	if debug {
		l.mustOwn(pos.c, "insert")
		if pos.c.idx == l.head {
			panicf("insert", ErrSentinel)
		}
	}
	a := l.a
	p := a.at(pos.c.idx)
	i := a.alloc(v, p.prev, pos.c.idx)
	a.at(p.prev).next = i
	p.prev = i
	l.size++
	return Iter[T]{c: a.cursor(i)}
}

// Erase removes the element at pos and returns the position that followed
// it. pos must not be End. Iterators at pos become invalid.
func (l *List[T]) Erase(pos Iter[T]) Iter[T] {
	if debug {
		l.mustOwn(pos.c, "erase")
		pos.c.mustDeref("erase")
	}
	a := l.a
	n := a.at(pos.c.idx)
	next := n.next
	a.at(n.prev).next = next
	a.at(next).prev = n.prev
	a.release(pos.c.idx)
	l.size--
	return Iter[T]{c: a.cursor(next)}
}

// EraseRange removes the elements in [first, last) and returns last.
func (l *List[T]) EraseRange(first, last Iter[T]) Iter[T] {
	for first != last {
		first = l.Erase(first)
	}
	return first
}

// Clear removes all elements. The sentinels are kept.
func (l *List[T]) Clear() {
	for !l.Empty() {
		l.PopFront()
	}
}

func (l *List[T]) PushFront(v T) {
	l.Insert(l.Begin(), v)
}

func (l *List[T]) PushBack(v T) {
	l.Insert(l.End(), v)
}

// PopFront removes the first element. l must not be empty.
func (l *List[T]) PopFront() {
	if debug {
		l.mustNotEmpty("pop front")
	}
	l.Erase(l.Begin())
}

// PopBack removes the last element. l must not be empty.
func (l *List[T]) PopBack() {
	if debug {
		l.mustNotEmpty("pop back")
	}
	l.Erase(l.End().Prev())
}

// Each calls fn for every element in order until fn returns false.
func (l *List[T]) Each(fn func(v T) bool) {
	if l.a == nil {
		return
	}
	for it, end := l.CBegin(), l.CEnd(); it != end; it = it.Next() {
		if !fn(it.Value()) {
			return
		}
	}
}

// Values returns the elements of l in order.
func (l *List[T]) Values() []T {
	s := make([]T, 0, l.size)
	l.Each(func(v T) bool {
		s = append(s, v)
		return true
	})
	return s
}
