package scene

import (
	"context"
	"fmt"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/gogpu/glyphgrid"
)

// RunLua executes a scene script against grid.
//
// The script runs in a sandbox with only the base, table, string and math
// libraries (no io, os, debug, package, dofile or loadfile). It sees:
//
//	width, height              grid size in cells
//	set(x, y, ch [, fg, bg])   write one cell
//	get(x, y)                  character code at (x, y), or nil outside the grid
//	text(x, y, s [, fg, bg])   write a string, returns the column advance
//	fill(ch [, fg, bg])        overwrite every cell
//	rgb(r, g, b [, a])         build a color table
//	print(...)                 log at debug level
//
// ch is a one-rune string or a code 0-255. Colors are strings accepted by
// glyphgrid.ParseColor or tables {r, g, b [, a]} / {r=, g=, b=, a=};
// omitted colors default to white on black. Coordinates are 0-based.
//
// Execution stops with an error when ctx is done, so a runaway script can be
// bounded with context.WithTimeout.
func RunLua(ctx context.Context, grid *glyphgrid.Grid, source, name string) error {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()
	L.SetContext(ctx)

	openSafeLibraries(L)
	installGridAPI(L, grid)

	fn, err := L.Load(strings.NewReader(source), name)
	if err != nil {
		return fmt.Errorf("scene: compile %s: %w", name, err)
	}
	if err := L.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true}); err != nil {
		return fmt.Errorf("scene: run %s: %w", name, err)
	}
	return nil
}

// openSafeLibraries opens only Lua libraries without host access.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	// The base library can still reach the filesystem.
	L.SetGlobal("dofile", lua.LNil)
	L.SetGlobal("loadfile", lua.LNil)
}

func installGridAPI(L *lua.LState, grid *glyphgrid.Grid) {
	L.SetGlobal("width", lua.LNumber(grid.Width()))
	L.SetGlobal("height", lua.LNumber(grid.Height()))

	L.SetGlobal("set", L.NewFunction(func(L *lua.LState) int {
		x, y := L.CheckInt(1), L.CheckInt(2)
		ch := luaChar(L, 3)
		fg := luaColor(L, 4, White)
		bg := luaColor(L, 5, Black)
		grid.SetCell(x, y, glyphgrid.Cell{Ch: ch, Fg: fg, Bg: bg})
		return 0
	}))

	L.SetGlobal("get", L.NewFunction(func(L *lua.LState) int {
		c, ok := grid.Cell(L.CheckInt(1), L.CheckInt(2))
		if !ok {
			L.Push(lua.LNil)
			return 1
		}
		L.Push(lua.LNumber(c.Ch))
		return 1
	}))

	L.SetGlobal("text", L.NewFunction(func(L *lua.LState) int {
		x, y := L.CheckInt(1), L.CheckInt(2)
		s := L.CheckString(3)
		fg := luaColor(L, 4, White)
		bg := luaColor(L, 5, Black)
		L.Push(lua.LNumber(grid.PutString(x, y, s, fg, bg)))
		return 1
	}))

	L.SetGlobal("fill", L.NewFunction(func(L *lua.LState) int {
		ch := luaChar(L, 1)
		fg := luaColor(L, 2, White)
		bg := luaColor(L, 3, Black)
		grid.Fill(glyphgrid.Cell{Ch: ch, Fg: fg, Bg: bg})
		return 0
	}))

	L.SetGlobal("rgb", L.NewFunction(func(L *lua.LState) int {
		t := L.NewTable()
		t.RawSetString("r", lua.LNumber(L.CheckInt(1)))
		t.RawSetString("g", lua.LNumber(L.CheckInt(2)))
		t.RawSetString("b", lua.LNumber(L.CheckInt(3)))
		t.RawSetString("a", lua.LNumber(L.OptInt(4, 255)))
		L.Push(t)
		return 1
	}))

	L.SetGlobal("print", L.NewFunction(func(L *lua.LState) int {
		parts := make([]string, L.GetTop())
		for i := range parts {
			parts[i] = L.ToStringMeta(L.Get(i + 1)).String()
		}
		glyphgrid.Logger().Debug("scene: lua", "msg", strings.Join(parts, "\t"))
		return 0
	}))
}

// luaChar reads a character argument: a one-rune string or a code 0-255.
func luaChar(L *lua.LState, n int) byte {
	switch v := L.Get(n).(type) {
	case lua.LNumber:
		code := int(v)
		if code < 0 || code > 255 {
			L.ArgError(n, fmt.Sprintf("character code %d out of range", code))
		}
		return byte(code)
	case lua.LString:
		ch, err := charFromString(string(v))
		if err != nil {
			L.ArgError(n, err.Error())
		}
		return ch
	default:
		L.ArgError(n, "character expected, got "+v.Type().String())
	}
	return 0
}

// luaColor reads an optional color argument.
func luaColor(L *lua.LState, n int, def glyphgrid.Color) glyphgrid.Color {
	switch v := L.Get(n).(type) {
	case *lua.LNilType:
		return def
	case lua.LString:
		c, err := glyphgrid.ParseColor(string(v))
		if err != nil {
			L.ArgError(n, err.Error())
		}
		return c
	case *lua.LTable:
		c, err := colorFromChannels(tableChannels(v))
		if err != nil {
			L.ArgError(n, err.Error())
		}
		return c
	default:
		L.ArgError(n, "color expected, got "+v.Type().String())
	}
	return def
}

// tableChannels accepts {r, g, b [, a]} or {r=, g=, b= [, a=]}.
func tableChannels(t *lua.LTable) []int64 {
	if t.Len() > 0 {
		ch := make([]int64, 0, t.Len())
		for i := 1; i <= t.Len(); i++ {
			ch = append(ch, int64(lua.LVAsNumber(t.RawGetInt(i))))
		}
		return ch
	}

	ch := make([]int64, 0, 4)
	for _, key := range []string{"r", "g", "b", "a"} {
		v := t.RawGetString(key)
		if v == lua.LNil {
			continue
		}
		ch = append(ch, int64(lua.LVAsNumber(v)))
	}
	return ch
}
