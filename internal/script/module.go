package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/keycalc/internal/calc"
)

func (r *Runner) calcFuncs() map[string]lua.LGFunction {
	return map[string]lua.LGFunction{
		"press":    r.luaPress,
		"type":     r.luaType,
		"display":  r.luaDisplay,
		"visible":  r.luaVisible,
		"entry":    r.luaEntry,
		"operator": r.luaOperator,
		"clear":    r.luaClear,
		"is_error": r.luaIsError,
		"format":   luaFormat,
	}
}

// press reduces one symbol. Callers hold r.mu through run.
func (r *Runner) press(sym calc.Symbol) {
	before := r.state
	r.state = calc.Reduce(sym, before)
	if r.onPress != nil {
		r.onPress(sym, before, r.state)
	}
}

func (r *Runner) luaPress(L *lua.LState) int {
	sym, err := calc.ParseSymbol(L.CheckString(1))
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	r.press(sym)
	L.Push(lua.LString(r.state.Visible()))
	return 1
}

func (r *Runner) luaType(L *lua.LState) int {
	tape, err := calc.ParseTape(L.CheckString(1))
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	for _, sym := range tape {
		r.press(sym)
	}
	L.Push(lua.LString(r.state.Visible()))
	return 1
}

func (r *Runner) luaDisplay(L *lua.LState) int {
	L.Push(lua.LString(r.state.Display()))
	return 1
}

func (r *Runner) luaVisible(L *lua.LState) int {
	L.Push(lua.LString(r.state.Visible()))
	return 1
}

func (r *Runner) luaEntry(L *lua.LState) int {
	entry, ok := r.state.Entry()
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(entry))
	return 1
}

func (r *Runner) luaOperator(L *lua.LState) int {
	op, ok := r.state.Operator()
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(op.String()))
	return 1
}

func (r *Runner) luaClear(L *lua.LState) int {
	r.press(calc.Clear)
	L.Push(lua.LString(r.state.Visible()))
	return 1
}

func (r *Runner) luaIsError(L *lua.LState) int {
	L.Push(lua.LBool(r.state.IsError()))
	return 1
}

func luaFormat(L *lua.LState) int {
	L.Push(lua.LString(calc.Format(float64(L.CheckNumber(1)))))
	return 1
}
