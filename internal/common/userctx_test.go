package common

import (
	"context"
	"testing"
)

func TestUserContext_RoundTrip(t *testing.T) {
	ctx := context.Background()

	// Absent by default
	if uc := UserContextFromContext(ctx); uc != nil {
		t.Error("Expected nil UserContext from empty context")
	}

	// Store and retrieve
	ctx = WithUserContext(ctx, &UserContext{UserID: "user-123"})

	got := UserContextFromContext(ctx)
	if got == nil {
		t.Fatal("Expected non-nil UserContext")
	}
	if got.UserID != "user-123" {
		t.Errorf("Expected user-123, got %s", got.UserID)
	}
}

func TestResolveUserID(t *testing.T) {
	ctx := context.Background()

	// No UserContext: default single-tenant scope
	if got := ResolveUserID(ctx); got != DefaultUserID {
		t.Errorf("ResolveUserID() = %q, want %q", got, DefaultUserID)
	}

	// Empty UserID still falls back to the default scope
	if got := ResolveUserID(WithUserContext(ctx, &UserContext{})); got != DefaultUserID {
		t.Errorf("ResolveUserID() = %q for empty UserID, want %q", got, DefaultUserID)
	}

	// Explicit UserID wins
	if got := ResolveUserID(WithUserContext(ctx, &UserContext{UserID: "alice"})); got != "alice" {
		t.Errorf("ResolveUserID() = %q, want %q", got, "alice")
	}
}
