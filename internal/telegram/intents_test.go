package telegram

import "testing"

func TestIntentStore_TakeIsSingleShot(t *testing.T) {
	s := NewIntentStore()
	s.Set(42, IntentPrice)

	if got := s.Take(42); got != IntentPrice {
		t.Fatalf("first Take = %q, want %q", got, IntentPrice)
	}
	if got := s.Take(42); got != IntentNone {
		t.Errorf("second Take = %q, want none", got)
	}
}

func TestIntentStore_NoPendingIntent(t *testing.T) {
	s := NewIntentStore()
	if got := s.Take(7); got != IntentNone {
		t.Errorf("Take without Set = %q, want none", got)
	}
}

func TestIntentStore_NewCommandReplacesIntent(t *testing.T) {
	s := NewIntentStore()
	s.Set(1, IntentPrice)
	s.Set(1, IntentChart)
	if got := s.Take(1); got != IntentChart {
		t.Errorf("Take = %q, want %q", got, IntentChart)
	}
}

func TestIntentStore_PerUserIsolation(t *testing.T) {
	s := NewIntentStore()
	s.Set(1, IntentPrice)
	s.Set(2, IntentChart)
	if got := s.Take(2); got != IntentChart {
		t.Errorf("user 2 Take = %q, want %q", got, IntentChart)
	}
	if got := s.Take(1); got != IntentPrice {
		t.Errorf("user 1 Take = %q, want %q", got, IntentPrice)
	}
}
