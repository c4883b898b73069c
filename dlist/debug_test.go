//go:build dlistdebug

package dlist

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func catch(fn func()) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = v.(error)
		}
	}()
	fn()
	return nil
}

func Test_Debug_Checks(t *testing.T) {
	r := require.New(t)

	tts := []struct {
		name string
		fn   func()
		want error
	}{
		{"front on empty", func() { New[int]().Front() }, ErrEmpty},
		{"back on empty", func() { New[int]().Back() }, ErrEmpty},
		{"pop front on empty", func() { New[int]().PopFront() }, ErrEmpty},
		{"pop back on empty", func() { New[int]().PopBack() }, ErrEmpty},
		{"deref end", func() { Of(1).End().Value() }, ErrSentinel},
		{"advance past end", func() { Of(1).End().Next() }, ErrSentinel},
		{"retreat before begin", func() { Of(1).Begin().Prev().Prev() }, ErrSentinel},
		{"erase end", func() {
			l := Of(1)
			l.Erase(l.End())
		}, ErrSentinel},
		{"insert before head", func() {
			l := Of(1)
			l.Insert(l.Begin().Prev(), 0)
		}, ErrSentinel},
		{"zero iterator", func() {
			var it Iter[int]
			it.Value()
		}, ErrInvalidIterator},
		{"foreign iterator", func() {
			a, b := Of(1), Of(2)
			a.Erase(b.Begin())
		}, ErrForeignIterator},
		{"erased iterator", func() {
			l := Of(1, 2)
			it := l.Begin()
			l.Erase(it)
			it.Value()
		}, ErrStaleIterator},
		{"erased iterator with reused slot", func() {
			l := Of(1)
			it := l.Begin()
			l.PopFront()
			l.PushBack(2)
			l.Erase(it)
		}, ErrStaleIterator},
		{"released list", func() {
			l := Of(1)
			it := l.Begin()
			l.Release()
			it.Next()
		}, ErrStaleIterator},
	}
	for _, tt := range tts {
		err := catch(tt.fn)
		r.Errorf(err, "%s: no panic", tt.name)
		r.Truef(errors.Is(err, tt.want), "%s: got %v", tt.name, err)
	}

	// valid use does not trip any check
	r.NoError(catch(func() {
		l := Of(1, 2, 3)
		Remove(l, 2)
		l.Reverse()
		l.EraseRange(l.Begin(), l.End())
		l.Release()
	}))
}
