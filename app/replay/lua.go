package replay

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// luaPredicate evaluates a boolean lua expression with the element bound
// to v. It is not safe for concurrent use.
type luaPredicate struct {
	expr string
	L    *lua.LState
	fn   *lua.LFunction
}

func newLuaPredicate(expr string) (*luaPredicate, error) {
	L := lua.NewState()
	fn, err := L.LoadString("local v = ...\nreturn " + expr)
	if err != nil {
		L.Close()
		return nil, fmt.Errorf("invalid lua expression [%s], %w", expr, err)
	}
	return &luaPredicate{expr: expr, L: L, fn: fn}, nil
}

func (p *luaPredicate) Eval(v int64) (bool, error) {
	err := p.L.CallByParam(lua.P{Fn: p.fn, NRet: 1, Protect: true}, lua.LNumber(v))
	if err != nil {
		return false, fmt.Errorf("lua expression [%s] failed, %w", p.expr, err)
	}
	ret := p.L.Get(-1)
	p.L.Pop(1)
	b, ok := ret.(lua.LBool)
	if !ok {
		return false, fmt.Errorf("lua expression [%s] returned %s, want boolean", p.expr, ret.Type())
	}
	return bool(b), nil
}

func (p *luaPredicate) Close() {
	p.L.Close()
}
