package dlist

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/valyala/bytebufferpool"
)

// DefaultSep is the separator used by WriteTo and String.
const DefaultSep = ' '

// Equal reports whether a and b have the same length and equal elements in
// the same order.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

func EqualFunc[T, U any](a *List[T], b *List[U], eq func(T, U) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	if a.Len() == 0 {
		return true
	}
	ib := b.CBegin()
	for ia, end := a.CBegin(), a.CEnd(); ia != end; ia = ia.Next() {
		if !eq(ia.Value(), ib.Value()) {
			return false
		}
		ib = ib.Next()
	}
	return true
}

// Print writes every element formatted with %v and followed by sep.
// No newline is added.
func (l *List[T]) Print(w io.Writer, sep rune) (int64, error) {
	b := bytebufferpool.Get()
	defer bytebufferpool.Put(b)
	l.appendTo(b, sep)
	return b.WriteTo(w)
}

// WriteTo implements io.WriterTo, using DefaultSep.
func (l *List[T]) WriteTo(w io.Writer) (int64, error) {
	return l.Print(w, DefaultSep)
}

func (l *List[T]) String() string {
	b := bytebufferpool.Get()
	defer bytebufferpool.Put(b)
	l.appendTo(b, DefaultSep)
	return b.String()
}

func (l *List[T]) appendTo(b *bytebufferpool.ByteBuffer, sep rune) {
	l.Each(func(v T) bool {
		b.B = fmt.Append(b.B, v)
		b.B = utf8.AppendRune(b.B, sep)
		return true
	})
}
