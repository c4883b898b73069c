package dlist

// Remove removes every element equal to v and returns how many were removed.
func Remove[T comparable](l *List[T], v T) int {
	return l.RemoveIf(func(e T) bool { return e == v })
}

// RemoveFunc removes every element e for which eq(e, v) is true.
func (l *List[T]) RemoveFunc(v T, eq func(a, b T) bool) int {
	return l.RemoveIf(func(e T) bool { return eq(e, v) })
}

// RemoveIf removes every element for which pred returns true, in a single
// front to back pass. pred is called exactly once per element.
func (l *List[T]) RemoveIf(pred func(v T) bool) int {
	if l.a == nil {
		return 0
	}
	removed := 0
	for it, end := l.Begin(), l.End(); it != end; {
		if pred(it.Value()) {
			it = l.Erase(it) // erase already moved us to the successor
			removed++
		} else {
			it = it.Next()
		}
	}
	return removed
}

// Reverse reverses the order of the elements in place.
// Existing iterators stay valid and keep pointing at the same elements.
func (l *List[T]) Reverse() {
	if l.a == nil {
		return
	}
	a := l.a
	i := l.head
	l.head, l.tail = l.tail, l.head
	for i != nilIdx {
		n := a.at(i)
		n.prev, n.next = n.next, n.prev
		i = n.prev
	}
}
