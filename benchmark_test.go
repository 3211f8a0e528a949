package errctx

import (
	"errors"
	"fmt"
	"testing"
)

func BenchmarkNew(b *testing.B) {
	inner := errors.New("oh no!")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = New(inner, "example")
	}
}

func BenchmarkPathFunc(b *testing.B) {
	inner := errors.New("oh no!")
	path := []byte("/var/lib/app/data.bin")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = PathFunc[error](path)(inner)
	}
}

func BenchmarkError(b *testing.B) {
	err := NewPath(errors.New("oh no!"), "/var/lib/app/data.bin")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = err.Error()
	}
}

func BenchmarkReport(b *testing.B) {
	err := fmt.Errorf("load: %w", WrapPath(fmt.Errorf("read header: %w", errors.New("eof")), "data.bin"))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Report(err)
	}
}

func BenchmarkContextOf(b *testing.B) {
	err := fmt.Errorf("load: %w", Wrap(WrapPath(errors.New("eof"), "data.bin"), 3))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ContextOf[string](err)
	}
}
