// format.go — fmt.Formatter for ErrCtx.
//
// Behavior:
//
//	%s, %v   → Error() (context only).
//	%q       → quoted Error().
//	%+v      → verbose, two-part form:
//	             ctx=<Error()>
//	             cause: <Inner formatted with %+v>
//	%#v      → Go-syntax form naming both fields:
//	             errctx.ErrCtx{Inner:<Inner %#v>, Ctx:<Ctx %#v>}
//
// The cause line is omitted when Unwrap reports no cause. A non-error Inner
// is printed as "inner:" instead; a nil or typed-nil error Inner is omitted.
package errctx

import (
	"fmt"
	"io"
)

func (e ErrCtx[E, T]) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('#') {
			_, _ = fmt.Fprintf(s, "errctx.ErrCtx{Inner:%#v, Ctx:%#v}", e.Inner, e.Ctx)
			return
		}
		if s.Flag('+') {
			e.formatVerbose(s)
			return
		}
		_, _ = io.WriteString(s, e.Error())
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = fmt.Fprintf(s, "%%!%c(%s)", verb, e.Error())
	}
}

func (e ErrCtx[E, T]) formatVerbose(w io.Writer) {
	_, _ = fmt.Fprintf(w, "ctx=%s", e.Error())
	if cause := e.Unwrap(); cause != nil {
		// %+v so nested wrappers (and pkg/errors stacks) render in full
		_, _ = fmt.Fprintf(w, "\ncause: %+v", cause)
		return
	}
	if _, isErr := any(e.Inner).(error); !isErr && any(e.Inner) != nil {
		_, _ = fmt.Fprintf(w, "\ninner: %+v", e.Inner)
	}
}
