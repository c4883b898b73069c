package replay

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/IrineSistiana/dlist/dlist"
)

var (
	errEmptyList  = errors.New("list is empty")
	errOutOfRange = errors.New("index out of range")
	errMismatch   = errors.New("expectation mismatch")
)

type scenario struct {
	cfg *ScenarioConfig
	l   *dlist.List[int64]
	m   *metrics // nil-able
}

func newScenario(cfg *ScenarioConfig, m *metrics) *scenario {
	return &scenario{cfg: cfg, l: dlist.Of(cfg.Init...), m: m}
}

// run applies every step in order and stops at the first failure.
func (s *scenario) run() error {
	for i := range s.cfg.Steps {
		step := &s.cfg.Steps[i]
		if err := s.apply(step); err != nil {
			return fmt.Errorf("step #%d [%s]: %w", i, step.Op, err)
		}
		if s.m != nil {
			s.m.ops.WithLabelValues(step.Op).Inc()
		}
	}
	return nil
}

// at returns the iterator at index i. i == Len() returns End.
func (s *scenario) at(i int) (dlist.Iter[int64], error) {
	if i < 0 || i > s.l.Len() {
		return dlist.Iter[int64]{}, fmt.Errorf("%w: %d, len %d", errOutOfRange, i, s.l.Len())
	}
	// walk from the closer end
	if i <= s.l.Len()/2 {
		it := s.l.Begin()
		for ; i > 0; i-- {
			it = it.Next()
		}
		return it, nil
	}
	it := s.l.End()
	for n := s.l.Len() - i; n > 0; n-- {
		it = it.Prev()
	}
	return it, nil
}

func (s *scenario) values(step *StepConfig) []int64 {
	if step.Values != nil {
		return step.Values
	}
	return []int64{step.Value}
}

func (s *scenario) apply(step *StepConfig) error {
	l := s.l
	switch step.Op {
	case "push_back":
		for _, v := range s.values(step) {
			l.PushBack(v)
		}
	case "push_front":
		for _, v := range s.values(step) {
			l.PushFront(v)
		}
	case "pop_back", "pop_front":
		n := step.Count
		setDefaultGZ(&n, n, 1)
		if n > l.Len() {
			return fmt.Errorf("%w: pop %d of %d", errEmptyList, n, l.Len())
		}
		for ; n > 0; n-- {
			if step.Op == "pop_back" {
				l.PopBack()
			} else {
				l.PopFront()
			}
		}
	case "insert":
		pos, err := s.at(step.Index)
		if err != nil {
			return err
		}
		for _, v := range s.values(step) {
			l.Insert(pos, v) // pos stays put, so values keep their order
		}
	case "erase":
		if step.Index >= l.Len() {
			return fmt.Errorf("%w: %d, len %d", errOutOfRange, step.Index, l.Len())
		}
		pos, err := s.at(step.Index)
		if err != nil {
			return err
		}
		l.Erase(pos)
	case "erase_range":
		if step.Count < 0 {
			return fmt.Errorf("%w: negative count %d", errOutOfRange, step.Count)
		}
		first, err := s.at(step.Index)
		if err != nil {
			return err
		}
		last, err := s.at(step.Index + step.Count)
		if err != nil {
			return err
		}
		l.EraseRange(first, last)
	case "clear":
		l.Clear()
	case "assign":
		l.AssignValues(step.Values...)
	case "clone":
		c := l.Clone()
		if !dlist.Equal(l, c) {
			return fmt.Errorf("%w: clone differs from source", errMismatch)
		}
		l.MoveAssign(c)
		c.Release()
	case "remove":
		dlist.Remove(l, step.Value)
	case "remove_if":
		p, err := newLuaPredicate(step.Lua)
		if err != nil {
			return err
		}
		defer p.Close()
		var evalErr error
		l.RemoveIf(func(v int64) bool {
			if evalErr != nil {
				return false
			}
			ok, err := p.Eval(v)
			if err != nil {
				evalErr = err
			}
			return ok
		})
		return evalErr
	case "reverse":
		l.Reverse()
	case "expect":
		return s.expect(step)
	case "print":
		return s.print(step)
	default:
		return fmt.Errorf("invalid op [%s]", step.Op)
	}
	return nil
}

func (s *scenario) expect(step *StepConfig) error {
	l := s.l
	if step.Values != nil && !dlist.Equal(l, dlist.Of(step.Values...)) {
		return fmt.Errorf("%w: want values %v, got %v", errMismatch, step.Values, l.Values())
	}
	if step.Size != nil && *step.Size != l.Len() {
		return fmt.Errorf("%w: want size %d, got %d", errMismatch, *step.Size, l.Len())
	}
	if step.Front != nil || step.Back != nil {
		if l.Empty() {
			return fmt.Errorf("%w: front/back of empty list", errMismatch)
		}
		if step.Front != nil && *step.Front != l.Front() {
			return fmt.Errorf("%w: want front %d, got %d", errMismatch, *step.Front, l.Front())
		}
		if step.Back != nil && *step.Back != l.Back() {
			return fmt.Errorf("%w: want back %d, got %d", errMismatch, *step.Back, l.Back())
		}
	}
	return nil
}

func (s *scenario) print(step *StepConfig) error {
	sep := dlist.DefaultSep
	if len(step.Sep) > 0 {
		r, n := utf8.DecodeRuneInString(step.Sep)
		if r == utf8.RuneError || n != len(step.Sep) {
			return fmt.Errorf("separator [%s] must be a single character", step.Sep)
		}
		sep = r
	}
	b := new(strings.Builder)
	if _, err := s.l.Print(b, sep); err != nil {
		return err
	}
	if step.Want != nil && *step.Want != b.String() {
		return fmt.Errorf("%w: want rendering %q, got %q", errMismatch, *step.Want, b.String())
	}
	return nil
}
