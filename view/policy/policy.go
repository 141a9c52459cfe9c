// Package policy decides what happens when a view operation detects a
// contract violation.
//
// Exactly one Policy is active for the whole process. The build default is
// Abort; building with -tags arrayview_raise makes Raise the default, and
// ARRAYVIEW_ERROR_POLICY=abort|raise overrides either at start-up. Set
// installs a policy programmatically and is meant for main() or TestMain,
// not for switching per call.
package policy

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync/atomic"

	"github.com/joshuapare/arrayview/internal/config"
	"github.com/joshuapare/arrayview/internal/diag"
	"github.com/joshuapare/arrayview/pkg/types"
)

// Policy receives every detected violation. Fail must not return normally;
// if it does, the failing operation yields a zero value.
type Policy interface {
	Fail(err *types.Error)
}

// Abort logs the violation through the diagnostics logger and terminates
// the process.
type Abort struct{}

// Raise panics with the *types.Error. Use Catch to turn it back into an
// error value.
type Raise struct{}

// AbortExitCode matches the status of a process killed by SIGABRT.
const AbortExitCode = 134

// exit is replaced in tests.
var exit = os.Exit

// Fail implements Policy.
func (Abort) Fail(err *types.Error) {
	diag.Error("arrayview: contract violation",
		"kind", err.Kind.String(),
		"msg", err.Msg,
		"file", err.File,
		"line", err.Line,
	)
	exit(AbortExitCode)
}

// Fail implements Policy.
func (Raise) Fail(err *types.Error) {
	panic(err)
}

type box struct{ p Policy }

var current atomic.Pointer[box]

func init() {
	current.Store(&box{p: defaultPolicy()})

	cfg, err := config.Load()
	if err != nil {
		diag.Warn("arrayview: ignoring environment configuration", "error", err)
		return
	}
	if err := diag.Init(diag.Options{Format: cfg.DiagFormat, Level: cfg.DiagLevel}); err != nil {
		diag.Warn("arrayview: ignoring diagnostics format", "error", err)
	}
	switch cfg.ErrorPolicy {
	case config.PolicyAbort:
		Set(Abort{})
	case config.PolicyRaise:
		Set(Raise{})
	}
}

// Current returns the active policy.
func Current() Policy {
	return current.Load().p
}

// Set installs p as the active policy. A nil p restores the build default.
func Set(p Policy) {
	if p == nil {
		p = defaultPolicy()
	}
	current.Store(&box{p: p})
}

// Fail reports a violation of the given kind through the active policy. The
// recorded location is the first caller outside view and its subpackages.
func Fail(kind types.ErrKind, format string, args ...any) {
	file, line := callerLocation()
	Current().Fail(&types.Error{
		Kind: kind,
		Msg:  fmt.Sprintf(format, args...),
		File: file,
		Line: line,
	})
}

// Catch runs fn and returns the *types.Error it raised, or nil. Panics that
// are not view violations propagate unchanged.
func Catch(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(*types.Error)
			if !ok {
				panic(r)
			}
			err = e
		}
	}()
	fn()
	return nil
}

const libPrefix = "github.com/joshuapare/arrayview/view"

func callerLocation() (string, int) {
	var pcs [16]uintptr
	n := runtime.Callers(3, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	for {
		f, more := frames.Next()
		if !libraryFrame(f) {
			return f.File, f.Line
		}
		if !more {
			return "", 0
		}
	}
}

func libraryFrame(f runtime.Frame) bool {
	if strings.HasSuffix(f.File, "_test.go") {
		return false
	}
	return strings.HasPrefix(f.Function, libPrefix+".") ||
		strings.HasPrefix(f.Function, libPrefix+"/")
}
