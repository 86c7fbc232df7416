package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"venue_booking/model"
)

func TestFileOrderStoreFind(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "orders.json")
	orders := DemoOrders(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	if err := WriteOrdersFile(path, orders); err != nil {
		t.Fatalf("write: %v", err)
	}
	store := NewFileOrderStore(path)

	all, err := store.Find(context.Background(), OrderQuery{})
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(all) != len(orders) {
		t.Fatalf("expected %d orders, got %d", len(orders), len(all))
	}
	if d := all[0].Items[0].Details; d == nil || d.Date != "2025-06-01" || d.StartTime != "10:00" {
		t.Fatalf("item details lost in round trip: %+v", d)
	}

	paid, err := store.Find(context.Background(), OrderQuery{Field: "paymentStatus", Value: "paid"})
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(paid) != 2 {
		t.Fatalf("expected 2 paid orders, got %d", len(paid))
	}

	if _, err := store.Find(context.Background(), OrderQuery{Field: "items", Value: "x"}); err == nil {
		t.Fatalf("unknown filter field should be rejected")
	}
}

func TestFileOrderStoreSeesEdits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.json")
	if err := WriteOrdersFile(path, []model.Order{}); err != nil {
		t.Fatalf("write: %v", err)
	}
	store := NewFileOrderStore(path)
	if got, _ := store.Find(context.Background(), OrderQuery{}); len(got) != 0 {
		t.Fatalf("expected empty store, got %d", len(got))
	}
	if err := WriteOrdersFile(path, []model.Order{{ID: "x", PaymentStatus: "paid"}}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got, _ := store.Find(context.Background(), OrderQuery{}); len(got) != 1 {
		t.Fatalf("store should re-read the file, got %d orders", len(got))
	}
}

func TestFileOrderStoreErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := NewFileOrderStore(filepath.Join(dir, "missing.json")).Find(context.Background(), OrderQuery{}); err == nil {
		t.Fatalf("missing file should be an error, not an empty list")
	}
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := NewFileOrderStore(bad).Find(context.Background(), OrderQuery{}); err == nil {
		t.Fatalf("corrupt file should be an error")
	}
}
