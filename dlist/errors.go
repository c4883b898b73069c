package dlist

import (
	"errors"
	"fmt"
)

// Contract violations. They are only detected in builds with the
// dlistdebug tag, where they are raised as panics wrapping one of these.
var (
	ErrInvalidIterator = errors.New("iterator references no list")
	ErrForeignIterator = errors.New("iterator belongs to another list")
	ErrStaleIterator   = errors.New("iterator references an erased node")
	ErrSentinel        = errors.New("operation on a boundary node")
	ErrEmpty           = errors.New("list is empty")
)

func panicf(op string, err error) {
	panic(fmt.Errorf("dlist: %s: %w", op, err))
}

func (c cursor[T]) mustLive(op string) {
	if c.a == nil {
		panicf(op, ErrInvalidIterator)
	}
	if c.idx >= c.a.used || c.a.at(c.idx).gen != c.gen {
		panicf(op, ErrStaleIterator)
	}
}

func (c cursor[T]) mustDeref(op string) {
	c.mustLive(op)
	if c.node().sent {
		panicf(op, ErrSentinel)
	}
}

// mustOwn checks that c is a live position of l.
func (l *List[T]) mustOwn(c cursor[T], op string) {
	c.mustLive(op)
	if c.a != l.a {
		panicf(op, ErrForeignIterator)
	}
}

func (l *List[T]) mustNotEmpty(op string) {
	if l.size == 0 {
		panicf(op, ErrEmpty)
	}
}
