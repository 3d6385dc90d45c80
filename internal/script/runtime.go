package script

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/codeditor/internal/editor"
	"github.com/dshills/codeditor/internal/logging"
)

// DefaultTimeout bounds a script run when the context has no deadline.
const DefaultTimeout = 5 * time.Second

// Runtime is a sandboxed Lua state bound to one session.
//
// gopher-lua states are not goroutine-safe; a Runtime belongs to the
// goroutine that owns its session.
type Runtime struct {
	L       *lua.LState
	session *editor.Session
	out     io.Writer
	timeout time.Duration

	lastErr error
	closed  bool
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithOutput redirects print.
func WithOutput(w io.Writer) Option {
	return func(r *Runtime) {
		if w != nil {
			r.out = w
		}
	}
}

// WithTimeout sets the run timeout used when the context has no deadline.
// Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(r *Runtime) {
		if d >= 0 {
			r.timeout = d
		}
	}
}

// New creates a runtime driving session.
func New(session *editor.Session, opts ...Option) *Runtime {
	r := &Runtime{
		session: session,
		out:     os.Stdout,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}

	r.L = lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(r.L)
	r.installPrint()
	r.L.SetGlobal("editor", r.editorModule())
	return r
}

// openSafeLibraries opens base, table, string and math, then removes the
// base functions that load code from outside the script.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "module"} {
		L.SetGlobal(name, lua.LNil)
	}
}

func (r *Runtime) installPrint() {
	r.L.SetGlobal("print", r.L.NewFunction(func(L *lua.LState) int {
		n := L.GetTop()
		parts := make([]string, n)
		for i := 1; i <= n; i++ {
			parts[i-1] = L.ToStringMeta(L.Get(i)).String()
		}
		fmt.Fprintln(r.out, strings.Join(parts, "\t"))
		return 0
	}))
}

// Run executes code. name identifies the script in errors and logs.
func (r *Runtime) Run(ctx context.Context, name, code string) error {
	if r.closed {
		return ErrRuntimeClosed
	}

	if _, ok := ctx.Deadline(); !ok && r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	logger := logging.FromContext(ctx)
	start := time.Now()

	r.lastErr = nil
	r.L.SetContext(ctx)
	defer r.L.RemoveContext()

	err := r.doWithRecovery(func() error {
		return r.L.DoString(code)
	})

	logger.Debug("script finished",
		logging.FieldScript, name,
		logging.FieldElapsed, time.Since(start),
		logging.FieldSession, r.session.ID())

	if err == nil {
		return nil
	}
	cause := r.lastErr
	if ctxErr := ctx.Err(); ctxErr != nil {
		cause = ctxErr
	}
	return &Error{Name: name, Err: err, Cause: cause}
}

// RunFile reads and executes the script at path.
func (r *Runtime) RunFile(ctx context.Context, path string) error {
	code, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading script: %w", err)
	}
	return r.Run(ctx, path, string(code))
}

// doWithRecovery executes a function with panic recovery.
func (r *Runtime) doWithRecovery(fn func() error) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("lua panic: %v", p)
		}
	}()
	return fn()
}

// Close releases the Lua state.
func (r *Runtime) Close() {
	if r.closed {
		return
	}
	r.closed = true
	r.L.Close()
}
