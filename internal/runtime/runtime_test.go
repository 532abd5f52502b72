// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"errors"
	"slices"
	"testing"
)

type stubRuntime struct {
	name      string
	available bool
	validate  error
	executed  int
}

func (s *stubRuntime) Name() string { return s.name }
func (s *stubRuntime) Available() bool { return s.available }
func (s *stubRuntime) Validate(*ExecutionContext) error { return s.validate }
func (s *stubRuntime) Execute(*ExecutionContext) *Result {
	s.executed++
	return NewExitCodeResult(0)
}

func TestRuntimeType_Validate(t *testing.T) {
	t.Parallel()

	for _, typ := range []RuntimeType{RuntimeTypeNative, RuntimeTypeVirtual} {
		if err := typ.Validate(); err != nil {
			t.Errorf("%q.Validate() = %v", typ, err)
		}
	}

	err := RuntimeType("container").Validate()
	if !errors.Is(err, ErrInvalidRuntimeType) {
		t.Fatalf("Validate() = %v, want ErrInvalidRuntimeType", err)
	}
	var typeErr *InvalidRuntimeTypeError
	if !errors.As(err, &typeErr) || typeErr.Value != "container" {
		t.Errorf("errors.As() value = %+v", typeErr)
	}
}

func TestRegistry_Execute(t *testing.T) {
	t.Parallel()

	t.Run("not registered", func(t *testing.T) {
		t.Parallel()
		result := NewRegistry().Execute(RuntimeTypeNative, &ExecutionContext{Script: "true"})
		if result.Success() || result.Error == nil {
			t.Errorf("Execute() = %+v, want error", result)
		}
	})

	t.Run("unavailable", func(t *testing.T) {
		t.Parallel()
		r := NewRegistry()
		stub := &stubRuntime{name: "native"}
		r.Register(RuntimeTypeNative, stub)
		result := r.Execute(RuntimeTypeNative, &ExecutionContext{Script: "true"})
		if !errors.Is(result.Error, ErrRuntimeNotAvailable) {
			t.Errorf("Execute() error = %v, want ErrRuntimeNotAvailable", result.Error)
		}
		if stub.executed != 0 {
			t.Errorf("executed = %d, want 0", stub.executed)
		}
	})

	t.Run("validation failure", func(t *testing.T) {
		t.Parallel()
		r := NewRegistry()
		stub := &stubRuntime{name: "virtual", available: true, validate: ErrEmptyScript}
		r.Register(RuntimeTypeVirtual, stub)
		result := r.Execute(RuntimeTypeVirtual, &ExecutionContext{})
		if !errors.Is(result.Error, ErrEmptyScript) {
			t.Errorf("Execute() error = %v, want ErrEmptyScript", result.Error)
		}
	})

	t.Run("runs", func(t *testing.T) {
		t.Parallel()
		r := NewRegistry()
		stub := &stubRuntime{name: "virtual", available: true}
		r.Register(RuntimeTypeVirtual, stub)
		if result := r.Execute(RuntimeTypeVirtual, &ExecutionContext{Script: "true"}); !result.Success() {
			t.Errorf("Execute() = %+v", result)
		}
		if stub.executed != 1 {
			t.Errorf("executed = %d, want 1", stub.executed)
		}
	})
}

func TestDefaultRegistry_Available(t *testing.T) {
	t.Parallel()

	got := NewDefaultRegistry("").Available()
	if !slices.Contains(got, RuntimeTypeVirtual) {
		t.Errorf("Available() = %v, want virtual included", got)
	}
}

func TestEnvToSlice(t *testing.T) {
	t.Parallel()

	got := EnvToSlice(map[string]string{"B": "2", "A": "1"})
	if want := []string{"A=1", "B=2"}; !slices.Equal(got, want) {
		t.Errorf("EnvToSlice() = %v, want %v", got, want)
	}
}
