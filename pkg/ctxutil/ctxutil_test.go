package ctxutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestWithRequestID_And_RequestIDFromCtx(t *testing.T) {
	t.Parallel()

	id := uuid.New().String()
	ctx := WithRequestID(context.Background(), id)

	if got := RequestIDFromCtx(ctx); got != id {
		t.Fatalf("expected %q, got %q", id, got)
	}
}

func TestRequestIDFromCtx_EmptyContext(t *testing.T) {
	t.Parallel()

	if got := RequestIDFromCtx(context.Background()); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestRequestIDFromCtx_WrongType(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), ctxKey("request_id"), 42)

	if got := RequestIDFromCtx(ctx); got != "" {
		t.Fatalf("expected empty string for wrong type, got %q", got)
	}
}

func TestWithRequestID_Overwrite(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "first")
	ctx = WithRequestID(ctx, "second")

	if got := RequestIDFromCtx(ctx); got != "second" {
		t.Fatalf("expected %q, got %q", "second", got)
	}
}
