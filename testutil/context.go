package testutil

import (
	"context"
	"testing"
	"time"
)

func Context(t *testing.T) context.Context {
	t.Helper()

	ctx, cancel := context.WithCancel(t.Context())
	t.Cleanup(cancel)

	return ctx
}

func ContextWithTimeout(t *testing.T, timeout time.Duration) context.Context {
	t.Helper()

	ctx, cancel := context.WithTimeout(t.Context(), timeout)
	t.Cleanup(cancel)

	return ctx
}

func ContextWithValue(t *testing.T, key, value any) context.Context {
	t.Helper()

	return context.WithValue(Context(t), key, value)
}
