// Package script runs Lua automation against a calculator.
//
// Scripts see a sandboxed Lua (base, table, string and math libraries
// only, with no file loading) plus a global calc module:
//
//	calc.press(sym)   -- press one button, returns the visible value
//	calc.type(keys)   -- press each symbol of keys, returns the visible value
//	calc.display()    -- last finalized result
//	calc.visible()    -- what the screen shows
//	calc.entry()      -- entry being typed, or nil
//	calc.operator()   -- pending operator, or nil
//	calc.clear()      -- press C
//	calc.is_error()   -- true while the display shows Error
//	calc.format(n)    -- format a number the way the display does
//
// print writes to the runner's output.
package script

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/keycalc/internal/calc"
)

// DefaultTimeout bounds a single script run.
const DefaultTimeout = 5 * time.Second

// ErrRunnerClosed is returned when running a script on a closed runner.
var ErrRunnerClosed = errors.New("script runner closed")

// PressFunc observes every button press a script makes.
type PressFunc func(sym calc.Symbol, before, after calc.State)

// Runner owns a Lua state and the calculator it drives.
//
// A Runner is not safe for concurrent script execution; calls are
// serialized.
type Runner struct {
	mu      sync.Mutex
	L       *lua.LState
	state   calc.State
	out     io.Writer
	timeout time.Duration
	onPress PressFunc
	closed  bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithOutput sets where print writes. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) {
		r.out = w
	}
}

// WithTimeout bounds each run. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(r *Runner) {
		r.timeout = d
	}
}

// WithState starts the calculator from s instead of the default state.
func WithState(s calc.State) Option {
	return func(r *Runner) {
		r.state = s
	}
}

// WithPressHook calls fn after every press.
func WithPressHook(fn PressFunc) Option {
	return func(r *Runner) {
		r.onPress = fn
	}
}

// NewRunner creates a runner with a fresh calculator.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		state:   calc.NewState(),
		out:     os.Stdout,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}

	r.L = lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(r.L)
	r.L.SetGlobal("print", r.L.NewFunction(r.luaPrint))
	r.L.SetGlobal("calc", r.L.SetFuncs(r.L.NewTable(), r.calcFuncs()))

	return r
}

// openSafeLibraries opens only the libraries that cannot reach the host.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "module"} {
		L.SetGlobal(name, lua.LNil)
	}
}

// State returns the calculator state.
func (r *Runner) State() calc.State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// RunString runs Lua source. name labels errors.
func (r *Runner) RunString(ctx context.Context, name, code string) error {
	return r.run(ctx, name, func() error {
		fn, err := r.L.Load(strings.NewReader(code), name)
		if err != nil {
			return err
		}
		r.L.Push(fn)
		return r.L.PCall(0, lua.MultRet, nil)
	})
}

// RunFile runs the Lua file at path.
func (r *Runner) RunFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading script: %w", err)
	}
	return r.RunString(ctx, path, string(data))
}

func (r *Runner) run(ctx context.Context, name string, fn func() error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrRunnerClosed
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	r.L.SetContext(ctx)
	defer r.L.RemoveContext()

	top := r.L.GetTop()
	defer r.L.SetTop(top)

	if err := doWithRecovery(fn); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("script %s: %w", name, ctxErr)
		}
		return fmt.Errorf("script %s: %w", name, err)
	}
	return nil
}

// doWithRecovery executes a function with panic recovery.
func doWithRecovery(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return fn()
}

// Close releases the Lua state.
func (r *Runner) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.L.Close()
	r.closed = true
	return nil
}

func (r *Runner) luaPrint(L *lua.LState) int {
	n := L.GetTop()
	parts := make([]string, n)
	for i := 1; i <= n; i++ {
		parts[i-1] = L.ToStringMeta(L.Get(i)).String()
	}
	fmt.Fprintln(r.out, strings.Join(parts, "\t"))
	return 0
}
