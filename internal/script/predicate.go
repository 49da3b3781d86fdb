// SPDX-License-Identifier: MIT

// Package script evaluates user-supplied Lua expressions as fill predicates.
package script

import (
	"errors"
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/katalvlaran/gridkit/cartesian"
	"github.com/katalvlaran/gridkit/grid"
)

var (
	// ErrCompile is returned when an expression is not valid Lua.
	ErrCompile = errors.New("script: compile predicate")
	// ErrEval is returned when an expression fails at run time.
	ErrEval = errors.New("script: evaluate predicate")
)

// Predicate wraps a single gopher-lua VM holding one compiled expression.
// The expression sees the globals cell (string), x, y and z (numbers).
// Single-goroutine access only.
type Predicate struct {
	vm   *lua.LState
	fn   *lua.LFunction
	expr string
}

// Compile builds a predicate from a Lua expression such as
// `cell == "." and x < 10`. Only the base, string and math libraries are
// loaded.
func Compile(expr string) (*Predicate, error) {
	vm := lua.NewState(lua.Options{SkipOpenLibs: true})
	for _, lib := range []struct {
		name string
		open lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		if err := vm.CallByParam(lua.P{
			Fn:      vm.NewFunction(lib.open),
			NRet:    0,
			Protect: true,
		}, lua.LString(lib.name)); err != nil {
			vm.Close()
			return nil, fmt.Errorf("script: open %s library: %w", lib.name, err)
		}
	}

	src := "return function(cell, x, y, z) return (" + expr + ") end"
	if err := vm.DoString(src); err != nil {
		vm.Close()
		return nil, fmt.Errorf("%w %q: %v", ErrCompile, expr, err)
	}
	fn, ok := vm.Get(-1).(*lua.LFunction)
	vm.Pop(1)
	if !ok {
		vm.Close()
		return nil, fmt.Errorf("%w %q: not a function", ErrCompile, expr)
	}

	return &Predicate{vm: vm, fn: fn, expr: expr}, nil
}

// String returns the source expression.
func (p *Predicate) String() string { return p.expr }

// Eval runs the expression for one cell. Lua truthiness applies: only nil
// and false are false.
func (p *Predicate) Eval(cell string, pos cartesian.Position) (bool, error) {
	if err := p.vm.CallByParam(lua.P{
		Fn:      p.fn,
		NRet:    1,
		Protect: true,
	}, lua.LString(cell), lua.LNumber(pos.X), lua.LNumber(pos.Y), lua.LNumber(pos.Z)); err != nil {
		return false, fmt.Errorf("%w %q at %s: %v", ErrEval, p.expr, pos, err)
	}
	ret := p.vm.Get(-1)
	p.vm.Pop(1)
	return lua.LVAsBool(ret), nil
}

// Mask evaluates the expression on every cell of d and returns the results
// as a container over the same grid.
func (p *Predicate) Mask(d *grid.Data[cartesian.Position, *cartesian.Grid, rune]) (*grid.Data[cartesian.Position, *cartesian.Grid, bool], error) {
	g := d.Grid()
	m, err := cartesian.NewData(g, false)
	if err != nil {
		return nil, err
	}
	for i, r := range d.All() {
		pos, err := g.PosFromIndex(i)
		if err != nil {
			return nil, err
		}
		ok, err := p.Eval(string(r), pos)
		if err != nil {
			return nil, err
		}
		if err := m.Set(i, ok); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Close releases the VM.
func (p *Predicate) Close() {
	p.vm.Close()
}
