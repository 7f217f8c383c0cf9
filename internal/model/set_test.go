package model

import (
	"math"
	"testing"
)

func order(side Side, symbol string, amount float64) Order {
	return Order{
		Side:         side,
		Blockchain:   "eth",
		CryptoAmount: amount,
		CryptoSymbol: symbol,
		FiatAmount:   amount * 2000,
		FiatPrice:    2000,
		FiatSymbol:   "EUR",
	}
}

func TestNewOrderSetDeduplicates(t *testing.T) {
	a := order(SideBuy, "ETH", 1.5)
	b := order(SideSell, "BTC", 0.1)

	s := NewOrderSet(a, b, a, a)

	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if !s.Contains(a) || !s.Contains(b) {
		t.Error("set should contain both distinct orders")
	}
}

func TestOrderSetDiff(t *testing.T) {
	a := order(SideBuy, "ETH", 1.5)
	b := order(SideSell, "BTC", 0.1)
	c := order(SideBuy, "LTC", 10)
	d := order(SideSell, "XMR", 3)

	t.Run("one new order", func(t *testing.T) {
		baseline := NewOrderSet(a, b)
		current := NewOrderSet(a, b, c)

		got := current.Diff(baseline)
		if len(got) != 1 {
			t.Fatalf("Diff returned %d orders, want 1", len(got))
		}
		if got[0] != c {
			t.Errorf("Diff = %v, want %v", got[0], c)
		}
	})

	t.Run("no new orders", func(t *testing.T) {
		baseline := NewOrderSet(a, b)
		current := NewOrderSet(a, b)

		if got := current.Diff(baseline); len(got) != 0 {
			t.Errorf("Diff returned %d orders, want 0", len(got))
		}
	})

	t.Run("disjoint sets are all new", func(t *testing.T) {
		baseline := NewOrderSet(a, b)
		current := NewOrderSet(c, d)

		if got := current.Diff(baseline); len(got) != 2 {
			t.Errorf("Diff returned %d orders, want 2", len(got))
		}
	})

	t.Run("empty baseline", func(t *testing.T) {
		baseline := NewOrderSet()
		current := NewOrderSet(a, b)

		if got := current.Diff(baseline); len(got) != 2 {
			t.Errorf("Diff returned %d orders, want 2", len(got))
		}
	})

	t.Run("tolerance-equal order is not new", func(t *testing.T) {
		// Same order, amount off by one ULP: distinct map key, but the
		// diff compares with Equal and must not report it.
		nudged := a
		nudged.CryptoAmount = math.Nextafter(a.CryptoAmount, 2)

		baseline := NewOrderSet(a)
		current := NewOrderSet(nudged)

		if baseline.Contains(nudged) {
			t.Fatal("test setup: nudged order should not be a bit-exact member")
		}
		if got := current.Diff(baseline); len(got) != 0 {
			t.Errorf("Diff returned %d orders, want 0", len(got))
		}
	})
}
