// context_test.go — ContextOf / Contexts lookups along a chain.
package errctx

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func TestContextOf_FindsByType(t *testing.T) {
	t.Parallel()

	root := errors.New("timeout")
	err := fmt.Errorf("sync: %w",
		Wrap(Wrap(Wrap(root, opCtx{Op: "upload", Attempt: 2}), 3), "/srv/data/a.bin"))

	if p, ok := ContextOf[string](err); !ok || p != "/srv/data/a.bin" {
		t.Fatalf("ContextOf[string] = %q, %v", p, ok)
	}
	if n, ok := ContextOf[int](err); !ok || n != 3 {
		t.Fatalf("ContextOf[int] = %d, %v", n, ok)
	}
	if c, ok := ContextOf[opCtx](err); !ok || c.Op != "upload" || c.Attempt != 2 {
		t.Fatalf("ContextOf[opCtx] = %+v, %v", c, ok)
	}
}

func TestContextOf_OutermostWins(t *testing.T) {
	t.Parallel()

	err := WrapPath(WrapPath(errors.New("x"), "inner.txt"), "outer.txt")
	if p, _ := ContextOf[string](err); p != "outer.txt" {
		t.Fatalf("ContextOf[string] = %q, want outer.txt", p)
	}
}

func TestContextOf_Missing(t *testing.T) {
	t.Parallel()

	if _, ok := ContextOf[string](nil); ok {
		t.Fatalf("ContextOf(nil) reported a context")
	}
	if _, ok := ContextOf[string](errors.New("plain")); ok {
		t.Fatalf("ContextOf(plain) reported a context")
	}
	type pathAlias string
	if _, ok := ContextOf[pathAlias](WrapPath(errors.New("x"), "p")); ok {
		t.Fatalf("ContextOf must match the dynamic type exactly")
	}
}

func TestContextOf_InsideJoin(t *testing.T) {
	t.Parallel()

	err := errors.Join(errors.New("first"), Wrap(errors.New("second"), 8080))
	if port, ok := ContextOf[int](err); !ok || port != 8080 {
		t.Fatalf("ContextOf[int] inside join = %d, %v", port, ok)
	}
}

func TestContexts_Order(t *testing.T) {
	t.Parallel()

	err := Wrap(fmt.Errorf("step: %w", Wrap(errors.New("x"), 1)), "outer")
	want := []any{"outer", 1}
	if got := Contexts(err); !reflect.DeepEqual(got, want) {
		t.Fatalf("Contexts = %#v, want %#v", got, want)
	}
	if got := Contexts(errors.New("plain")); got != nil {
		t.Fatalf("Contexts(plain) = %#v, want nil", got)
	}
}
