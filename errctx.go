// errctx.go — the generic context wrapper.
//
// Semantics:
//   - Error() renders the context alone (%#v of Ctx). The inner error is NOT
//     repeated; chain-aware printers reach it through Unwrap.
//   - Unwrap() returns Inner unchanged so errors.Is/As keep walking whatever
//     chain Inner already exposes (single or multi unwrap).
//   - E is unconstrained: an ErrCtx may carry a non-error payload for purely
//     informational use, in which case Unwrap reports no cause.
package errctx

import (
	"fmt"
	"reflect"
)

// ErrCtx wraps Inner with arbitrary context data Ctx, most commonly the path
// that was being operated on when Inner occurred.
//
// ErrCtx is a value type and has no mutating methods; build a new one to
// change either field.
type ErrCtx[E, T any] struct {
	// Inner is the wrapped error.
	Inner E
	// Ctx is the context associated with Inner.
	Ctx T
}

// New creates an ErrCtx from an error and a context value.
func New[E, T any](inner E, ctx T) ErrCtx[E, T] {
	return ErrCtx[E, T]{Inner: inner, Ctx: ctx}
}

// Error renders Ctx in Go-syntax form, e.g. `"example"` for a string path.
func (e ErrCtx[E, T]) Error() string {
	return fmt.Sprintf("%#v", e.Ctx)
}

// Unwrap returns Inner when it holds a non-nil error, and nil otherwise.
// A typed nil (e.g. a nil *fs.PathError stored in an error) counts as nil.
func (e ErrCtx[E, T]) Unwrap() error {
	err, ok := any(e.Inner).(error)
	if !ok || isNil(err) {
		return nil
	}
	return err
}

// Cause is Unwrap under the name github.com/pkg/errors looks for, so
// errors.Cause steps through an ErrCtx to the root of Inner's chain. With no
// cause to step to, it returns a ctxOnly stand-in for e: errors.Cause stops on
// it and so never reports nil for a non-nil error.
func (e ErrCtx[E, T]) Cause() error {
	if err := e.Unwrap(); err != nil {
		return err
	}
	return ctxOnly[E, T]{e}
}

// ctxOnly renders like the ErrCtx it holds but has no Cause or Unwrap method.
type ctxOnly[E, T any] struct {
	e ErrCtx[E, T]
}

func (c ctxOnly[E, T]) Error() string { return c.e.Error() }

func isNil(err error) bool {
	if err == nil {
		return true
	}
	switch rv := reflect.ValueOf(err); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// Context returns Ctx as an untyped value. See ContextOf for typed lookup
// along a chain.
func (e ErrCtx[E, T]) Context() any { return e.Ctx }

// compile-time guarantees for the common instantiations
var (
	_ error         = ErrCtx[error, string]{}
	_ fmt.Formatter = ErrCtx[error, string]{}
)
