package model

import (
	"testing"
	"time"
)

func TestParseOrderStatus(t *testing.T) {
	cases := map[string]OrderStatus{
		"PAID":        OrderPaid,
		" Success ":   OrderSuccess,
		"Completed":   OrderCompleted,
		"confirmed":   OrderConfirmed,
		"failed":      OrderFailed,
		"Canceled":    OrderCancelled,
		"":            OrderUnknown,
		"in-progress": OrderUnknown,
	}
	for in, want := range cases {
		if got := ParseOrderStatus(in); got != want {
			t.Fatalf("ParseOrderStatus(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestOrderConfirmed(t *testing.T) {
	if !(Order{PaymentStatus: "Paid"}).Confirmed() {
		t.Fatalf("paid payment status should confirm the order")
	}
	if !(Order{PaymentStatus: "pending", Status: "COMPLETED"}).Confirmed() {
		t.Fatalf("completed order status should confirm the order")
	}
	if (Order{PaymentStatus: "failed", Status: "failed"}).Confirmed() {
		t.Fatalf("failed order must not be confirmed")
	}
	if (Order{}).Confirmed() {
		t.Fatalf("order without status must not be confirmed")
	}
}

func TestOrderCanonicalStatus(t *testing.T) {
	o := Order{PaymentStatus: "pending", Status: "confirmed"}
	if got := o.CanonicalStatus(); got != OrderConfirmed {
		t.Fatalf("expected confirmed, got %q", got)
	}
	o = Order{PaymentStatus: "failed", Status: "whatever"}
	if got := o.CanonicalStatus(); got != OrderFailed {
		t.Fatalf("expected failed, got %q", got)
	}
}

func TestOrderReference(t *testing.T) {
	if got := (Order{ID: "x", PublicCode: "ORD-ABC"}).Reference(); got != "ORD-ABC" {
		t.Fatalf("public code should win, got %q", got)
	}
	if got := (Order{ID: "65f1c2d3e4a5b6c7d8e9f0a1"}).Reference(); got != "ORD-D8E9F0A1" {
		t.Fatalf("unexpected derived reference %q", got)
	}
	if got := (Order{ID: "abc"}).Reference(); got != "ORD-ABC" {
		t.Fatalf("unexpected short reference %q", got)
	}
}

func TestHoldBlocking(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	h := Hold{Status: HoldActive, ExpiresAt: now.Add(time.Minute)}
	if !h.Blocking(now) {
		t.Fatalf("active unexpired hold should block")
	}
	if h.Blocking(now.Add(time.Minute)) {
		t.Fatalf("hold must stop blocking at its expiry")
	}
	h.Status = HoldReleased
	if h.Blocking(now) {
		t.Fatalf("released hold must not block")
	}
}
