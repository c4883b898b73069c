package dlist

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// checkLinks walks l in both directions and verifies the link invariants.
func checkLinks[T any](t *testing.T, l *List[T]) {
	t.Helper()
	r := require.New(t)
	if l.a == nil {
		r.Equal(0, l.size)
		return
	}
	a := l.a
	r.True(a.at(l.head).sent)
	r.True(a.at(l.tail).sent)
	r.Equal(nilIdx, a.at(l.head).prev)
	r.Equal(nilIdx, a.at(l.tail).next)

	n := 0
	prev := l.head
	for i := a.at(l.head).next; i != l.tail; i = a.at(i).next {
		r.Equal(prev, a.at(i).prev, "broken back link at node %d", n)
		r.False(a.at(i).sent)
		prev = i
		n++
	}
	r.Equal(prev, a.at(l.tail).prev)
	r.Equal(l.size, n)
	r.Equal(l.size+2, a.live, "node leak")
}

func Test_Zero_List(t *testing.T) {
	r := require.New(t)

	var l List[int]
	r.Equal(0, l.Len())
	r.True(l.Empty())
	r.Empty(l.Values())
	r.Equal(l.Begin(), l.End())
	r.Equal(l.CBegin(), l.CEnd())

	l.PushBack(1)
	r.Equal(1, l.Front())
	checkLinks(t, &l)
}

func Test_Push_Pop(t *testing.T) {
	r := require.New(t)

	l := New[int]()
	for i := 1; i <= 5; i++ {
		l.PushBack(i)
	}
	r.Equal(5, l.Len())
	r.Equal(1, l.Front())
	r.Equal(5, l.Back())

	l.PushFront(0)
	r.Equal([]int{0, 1, 2, 3, 4, 5}, l.Values())
	l.PopFront()
	l.PopBack()
	r.Equal([]int{1, 2, 3, 4}, l.Values())
	checkLinks(t, l)

	for !l.Empty() {
		l.PopBack()
	}
	r.Equal(l.Begin(), l.End())
	checkLinks(t, l)
}

func Test_Push_Pop_Model(t *testing.T) {
	r := require.New(t)
	rd := rand.New(rand.NewSource(1))

	l := New[int]()
	var model []int
	pushes, pops := 0, 0
	for i := 0; i < 2000; i++ {
		switch op := rd.Intn(4); {
		case op == 0:
			l.PushBack(i)
			model = append(model, i)
			pushes++
		case op == 1:
			l.PushFront(i)
			model = append([]int{i}, model...)
			pushes++
		case op == 2 && len(model) > 0:
			l.PopBack()
			model = model[:len(model)-1]
			pops++
		case op == 3 && len(model) > 0:
			l.PopFront()
			model = model[1:]
			pops++
		}
	}
	r.Equal(pushes-pops, l.Len())
	r.Equal(model, l.Values())
	checkLinks(t, l)
}

func Test_Constructors(t *testing.T) {
	r := require.New(t)

	r.Equal([]string{"x", "x", "x"}, NewN(3, "x").Values())
	r.Equal(3, NewN(uint8(3), "x").Len())
	r.Equal(0, NewN(-1, "x").Len())
	r.Equal([]int{0, 0}, NewZeroN[int](2).Values())
	r.Equal([]int{10, 20, 30}, Of(10, 20, 30).Values())

	src := Of(1, 2, 3, 4, 5)
	first := src.CBegin().Next()
	last := src.CEnd().Prev()
	r.Equal([]int{2, 3, 4}, NewRange(first, last).Values())
	r.Equal([]int{}, NewRange(first, first).Values())
	r.Equal([]int{1, 2, 3, 4, 5}, NewRange(src.CBegin(), src.CEnd()).Values())
}

func Test_Clone(t *testing.T) {
	r := require.New(t)

	l := Of(1, 2, 3)
	c := l.Clone()
	r.True(Equal(l, c))

	c.PushBack(4)
	*c.FrontPtr() = 100
	r.Equal([]int{1, 2, 3}, l.Values())
	r.Equal([]int{100, 2, 3, 4}, c.Values())
	r.NotSame(l.a, c.a)
	checkLinks(t, l)
	checkLinks(t, c)

	var zero List[int]
	r.True(zero.Clone().Empty())
}

func Test_Move(t *testing.T) {
	r := require.New(t)

	l := Of(1, 2, 3)
	it := l.Begin().Next()
	m := l.Move()

	r.Equal([]int{1, 2, 3}, m.Values())
	r.True(l.Empty())
	r.Equal(l.Begin(), l.End())
	checkLinks(t, l)
	checkLinks(t, m)

	// iterators follow the moved nodes
	r.Equal(2, it.Value())
	m.Erase(it)
	r.Equal([]int{1, 3}, m.Values())

	// moved-from list is usable and releasable
	l.PushBack(9)
	r.Equal([]int{9}, l.Values())
	l.Release()
	l.Release()
	r.True(l.Empty())
}

func Test_Assign(t *testing.T) {
	r := require.New(t)

	l := Of(1, 2, 3)
	l.Assign(l)
	r.Equal([]int{1, 2, 3}, l.Values())
	checkLinks(t, l)

	src := Of(7, 8)
	l.Assign(src)
	r.Equal([]int{7, 8}, l.Values())
	r.Equal([]int{7, 8}, src.Values())
	src.PushBack(9)
	r.Equal([]int{7, 8}, l.Values())
	checkLinks(t, l)
}

func Test_MoveAssign(t *testing.T) {
	r := require.New(t)

	l := Of(1, 2, 3)
	src := Of(4)
	l.MoveAssign(src)
	r.Equal([]int{4}, l.Values())
	r.Equal([]int{1, 2, 3}, src.Values())
	src.Release()
	r.True(src.Empty())

	l.MoveAssign(l)
	r.Equal([]int{4}, l.Values())
	checkLinks(t, l)
}

// The old contents must be discarded, not leaked, when values are assigned.
func Test_AssignValues_DiscardsOld(t *testing.T) {
	r := require.New(t)

	l := Of(1, 2, 3, 4)
	l.AssignValues(5, 6)
	r.Equal([]int{5, 6}, l.Values())
	r.Equal(4, l.a.live)
	checkLinks(t, l)

	l.AssignValues()
	r.True(l.Empty())
	checkLinks(t, l)
}

func Test_Insert(t *testing.T) {
	r := require.New(t)

	l := Of(10, 20, 30)
	it := l.Insert(l.Begin().Next(), 99)
	r.Equal(99, it.Value())
	r.Equal([]int{10, 99, 20, 30}, l.Values())
	r.Equal(20, it.Next().Value())
	r.Equal(10, it.Prev().Value())

	l.Insert(l.Begin(), 1)
	l.Insert(l.End(), 2)
	r.Equal([]int{1, 10, 99, 20, 30, 2}, l.Values())
	checkLinks(t, l)

	var e List[int]
	e.Insert(e.End(), 5)
	r.Equal([]int{5}, e.Values())
	checkLinks(t, &e)
}

func Test_Insert_Keeps_Iterators(t *testing.T) {
	r := require.New(t)

	l := Of(1, 2, 3)
	mid := l.Begin().Next()
	p := mid.Ptr()
	for i := 0; i < chunkSize*4; i++ {
		l.PushBack(i)
		l.PushFront(i)
	}
	r.Equal(2, mid.Value())
	*p = 42
	r.Equal(42, mid.Value())
	checkLinks(t, l)
}

func Test_Erase(t *testing.T) {
	r := require.New(t)

	l := Of(1, 2, 3, 4)
	first := l.Begin()
	last := l.End().Prev()
	it := l.Erase(first.Next())
	r.Equal(3, it.Value())
	r.Equal([]int{1, 3, 4}, l.Values())

	// iterators at other nodes are untouched
	r.Equal(1, first.Value())
	r.Equal(4, last.Value())

	it = l.Erase(last)
	r.Equal(l.End(), it)
	r.Equal([]int{1, 3}, l.Values())
	checkLinks(t, l)
}

func Test_Erase_Reuses_Slots(t *testing.T) {
	r := require.New(t)

	l := Of(1, 2)
	stale := l.Begin()
	l.PopFront()
	l.PushBack(3)

	// the slot was reused, but the stale iterator no longer compares equal
	r.Equal(stale.c.idx, l.End().Prev().c.idx)
	r.NotEqual(stale, l.End().Prev())
	checkLinks(t, l)
}

func Test_EraseRange(t *testing.T) {
	r := require.New(t)

	l := Of(1, 2, 3, 4, 5)
	last := l.End().Prev()
	it := l.EraseRange(l.Begin().Next(), last)
	r.Equal(last, it)
	r.Equal([]int{1, 5}, l.Values())

	it = l.EraseRange(l.Begin(), l.Begin())
	r.Equal(l.Begin(), it)
	r.Equal(2, l.Len())

	it = l.EraseRange(l.Begin(), l.End())
	r.Equal(l.End(), it)
	r.Equal(0, l.Len())
	r.Equal(l.Begin(), l.End())
	checkLinks(t, l)
}

func Test_Clear_Release(t *testing.T) {
	r := require.New(t)

	l := Of("a", "b", "c")
	l.Clear()
	r.True(l.Empty())
	checkLinks(t, l)
	l.PushBack("d")
	r.Equal([]string{"d"}, l.Values())

	end := l.End()
	l.Release()
	r.Nil(l.a)
	r.NotEqual(end, l.End())
	l.PushFront("e")
	r.Equal([]string{"e"}, l.Values())
	checkLinks(t, l)
}

func Test_Front_Back_Ptr(t *testing.T) {
	r := require.New(t)

	l := Of(1, 2, 3)
	*l.FrontPtr() = 10
	*l.BackPtr() = 30
	r.Equal(10, l.Front())
	r.Equal(30, l.Back())
}

func Test_Each(t *testing.T) {
	r := require.New(t)

	var got []int
	Of(1, 2, 3, 4).Each(func(v int) bool {
		got = append(got, v)
		return v < 2
	})
	r.Equal([]int{1, 2}, got)

	var zero List[int]
	zero.Each(func(int) bool {
		r.Fail("called on empty list")
		return true
	})
}

func Benchmark_PushBack_PopFront(b *testing.B) {
	l := New[int]()
	for i := 0; i < b.N; i++ {
		l.PushBack(i)
		if l.Len() > 1024 {
			l.PopFront()
		}
	}
}

func Benchmark_Insert_Erase_Middle(b *testing.B) {
	l := NewN(1024, 0)
	mid := l.Begin()
	for i := 0; i < 512; i++ {
		mid = mid.Next()
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := l.Insert(mid, i)
		l.Erase(it)
	}
}
