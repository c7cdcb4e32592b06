package limiter

import "testing"

func TestStoreAllow(t *testing.T) {
	t.Run("allows requests within burst", func(t *testing.T) {
		store := NewStore(1, 3)

		for i := 0; i < 3; i++ {
			if !store.Allow("10.0.0.1") {
				t.Fatalf("request %d denied, want allowed", i+1)
			}
		}
	})

	t.Run("denies requests past burst", func(t *testing.T) {
		store := NewStore(0.001, 2)

		store.Allow("10.0.0.2")
		store.Allow("10.0.0.2")
		if store.Allow("10.0.0.2") {
			t.Error("third request allowed, want denied")
		}
	})

	t.Run("clients are limited independently", func(t *testing.T) {
		store := NewStore(0.001, 1)

		if !store.Allow("10.0.0.3") {
			t.Fatal("first client denied")
		}
		if store.Allow("10.0.0.3") {
			t.Error("first client second request allowed, want denied")
		}
		if !store.Allow("10.0.0.4") {
			t.Error("second client denied, want allowed")
		}
	})

	t.Run("tracks one entry per client", func(t *testing.T) {
		store := NewStore(1, 1)

		store.Allow("a")
		store.Allow("a")
		store.Allow("b")
		if got := store.Size(); got != 2 {
			t.Errorf("Size() = %d, want 2", got)
		}
	})
}
