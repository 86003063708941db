// Package script runs Lua scripts against arbor trees.
//
// Scripts get a sandboxed interpreter (no os, io, or file loading) with
// a `tree` module for constructing trees and driving inserts, lookups,
// and traversals. The harness exists for reproducible operation
// sequences: a dataset bug report can ship as a short script.
package script

import (
	"context"
	"fmt"
	"time"

	lua "github.com/yuin/gopher-lua"
)

// Default limits for script execution.
const (
	// DefaultTimeout bounds one script run (best-effort: Lua code that
	// never yields to the VM loop cannot be interrupted mid-opcode).
	DefaultTimeout = 5 * time.Second
)

// Runner executes Lua scripts with the tree module preloaded.
//
// A Runner wraps a single lua.LState, which is not goroutine-safe; use
// one Runner per goroutine or synchronize externally.
type Runner struct {
	state   *lua.LState
	timeout time.Duration
}

// Option configures a Runner.
type Option func(*Runner)

// WithTimeout sets the per-run execution timeout.
func WithTimeout(d time.Duration) Option {
	return func(r *Runner) {
		r.timeout = d
	}
}

// NewRunner creates a sandboxed script runner.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		state:   lua.NewState(),
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}

	sandbox(r.state)
	registerTreeModule(r.state)
	return r
}

// sandbox removes filesystem and process access from the Lua globals.
func sandbox(L *lua.LState) {
	for _, name := range []string{"os", "io", "dofile", "loadfile", "require"} {
		L.SetGlobal(name, lua.LNil)
	}
}

// RunFile executes the script at path.
func (r *Runner) RunFile(path string) error {
	return r.run(func(L *lua.LState) error { return L.DoFile(path) })
}

// RunString executes the given script source.
func (r *Runner) RunString(src string) error {
	return r.run(func(L *lua.LState) error { return L.DoString(src) })
}

func (r *Runner) run(do func(*lua.LState) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	r.state.SetContext(ctx)
	defer r.state.SetContext(context.Background())

	if err := do(r.state); err != nil {
		return fmt.Errorf("script: %w", err)
	}
	return nil
}

// Close releases the interpreter. The Runner must not be used after
// Close.
func (r *Runner) Close() {
	r.state.Close()
}
