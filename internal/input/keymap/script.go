package keymap

import (
	"context"
	"errors"
	"fmt"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/sabre/internal/input/key"
)

// ErrScript wraps errors raised while running a binding script.
var ErrScript = errors.New("binding script failed")

// DefaultScriptTimeout bounds how long a binding script may run.
const DefaultScriptTimeout = 2 * time.Second

// RunScript executes a Lua binding script against m. The script sees:
//
//	bind(keys, command)   bind keys to a registered command
//	unbind(keys)          remove a binding; returns whether one existed
//	unbind_all()          remove every binding
//	commands()            list of registered command names
//
// Only the base, string and table libraries are available.
func RunScript(m *Manager, cmds *Commands, src string) error {
	return RunScriptContext(context.Background(), m, cmds, src)
}

// RunScriptContext is RunScript with a caller-supplied context. The script
// is cancelled when ctx is done or DefaultScriptTimeout elapses.
func RunScriptContext(ctx context.Context, m *Manager, cmds *Commands, src string) error {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require"} {
		L.SetGlobal(name, lua.LNil)
	}

	ctx, cancel := context.WithTimeout(ctx, DefaultScriptTimeout)
	defer cancel()
	L.SetContext(ctx)

	L.SetGlobal("bind", L.NewFunction(func(L *lua.LState) int {
		keys := L.CheckString(1)
		name := L.CheckString(2)
		if err := cmds.Bind(m, keys, name); err != nil {
			L.RaiseError("%s", err.Error())
		}
		return 0
	}))

	L.SetGlobal("unbind", L.NewFunction(func(L *lua.LState) int {
		mods, code, err := key.ParseBinding(L.CheckString(1))
		if err != nil {
			L.RaiseError("%s", err.Error())
			return 0
		}
		L.Push(lua.LBool(m.Unbind(mods, code)))
		return 1
	}))

	L.SetGlobal("unbind_all", L.NewFunction(func(L *lua.LState) int {
		m.UnbindAll()
		return 0
	}))

	L.SetGlobal("commands", L.NewFunction(func(L *lua.LState) int {
		t := L.NewTable()
		for _, name := range cmds.Names() {
			t.Append(lua.LString(name))
		}
		L.Push(t)
		return 1
	}))

	if err := L.DoString(src); err != nil {
		return fmt.Errorf("%w: %v", ErrScript, err)
	}
	return nil
}
