package app

import (
	"errors"
	"testing"
)

func TestComponentError(t *testing.T) {
	base := errors.New("boom")

	tests := []struct {
		name string
		err  *ComponentError
		want string
	}{
		{"full", NewComponentError("config", "reload", base), "config: reload: boom"},
		{"no action", NewComponentError("config", "", base), "config: boom"},
		{"no err", NewComponentError("config", "reload", nil), "config: reload"},
		{"component only", NewComponentError("config", "", nil), "config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestComponentErrorIs(t *testing.T) {
	base := errors.New("boom")
	err := NewComponentError("script", "run", base)

	if !errors.Is(err, base) {
		t.Error("errors.Is should match the wrapped error")
	}
	if !errors.Is(err, err) {
		t.Error("errors.Is should match itself")
	}
	if errors.Is(err, NewComponentError("script", "run", base)) {
		t.Error("errors.Is should not match a different ComponentError")
	}

	var nilErr *ComponentError
	if nilErr.Unwrap() != nil || nilErr.Error() != "" || nilErr.Is(base) {
		t.Error("nil ComponentError should be inert")
	}
}

func TestInitError(t *testing.T) {
	err := &InitError{Component: "backend", Err: ErrNoBackend}

	if err.Error() != "init backend: no backend" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, ErrNoBackend) {
		t.Error("errors.Is should see through InitError")
	}
}
