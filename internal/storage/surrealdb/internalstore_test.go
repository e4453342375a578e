package surrealdb

import (
	"context"
	"testing"
)

func TestInternalStoreSetGet(t *testing.T) {
	m := testManager(t)
	store := m.internalStore
	ctx := context.Background()

	if err := store.SetKeyValue(ctx, "schema_version", "3"); err != nil {
		t.Fatalf("SetKeyValue: %v", err)
	}

	kv, err := store.GetKeyValue(ctx, "schema_version")
	if err != nil {
		t.Fatalf("GetKeyValue: %v", err)
	}
	if kv.Value != "3" {
		t.Errorf("Value = %q, want %q", kv.Value, "3")
	}
	if kv.DateTime.IsZero() {
		t.Error("DateTime not set")
	}
}

func TestInternalStoreOverwrite(t *testing.T) {
	m := testManager(t)
	store := m.internalStore
	ctx := context.Background()

	if err := store.SetKeyValue(ctx, "k", "first"); err != nil {
		t.Fatalf("SetKeyValue: %v", err)
	}
	if err := store.SetKeyValue(ctx, "k", "second"); err != nil {
		t.Fatalf("SetKeyValue: %v", err)
	}

	kv, err := store.GetKeyValue(ctx, "k")
	if err != nil {
		t.Fatalf("GetKeyValue: %v", err)
	}
	if kv.Value != "second" {
		t.Errorf("Value = %q, want %q", kv.Value, "second")
	}
}

func TestInternalStoreMissingKey(t *testing.T) {
	m := testManager(t)

	if _, err := m.internalStore.GetKeyValue(context.Background(), "missing"); err == nil {
		t.Error("expected error for missing key")
	}
}
