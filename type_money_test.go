package brokerage

import "testing"

func TestMoney_Arithmetic(t *testing.T) {
	a := BRL(100.10)
	b := BRL(0.20)

	if got := a.Add(b); !got.Equal(BRL(100.30)) {
		t.Errorf("Add = %v, want %v", got, BRL(100.30))
	}
	if got := a.Sub(b); !got.Equal(BRL(99.90)) {
		t.Errorf("Sub = %v, want %v", got, BRL(99.90))
	}
	if got := b.Neg(); !got.Equal(BRL(-0.20)) {
		t.Errorf("Neg = %v, want %v", got, BRL(-0.20))
	}
	if !b.LessThan(a) || !a.GreaterThan(b) {
		t.Error("comparison operators disagree with the values")
	}
}

// The "" currency is weak: it takes the currency of the other operand.
func TestMoney_WeakCurrency(t *testing.T) {
	var zero Money
	got := zero.Add(M(10, "USD"))
	if got.Currency() != "USD" {
		t.Errorf("Currency() = %q, want USD", got.Currency())
	}
	if !zero.Add(BRL(10)).Equal(BRL(10)) {
		t.Error("adding to the zero Money should keep the value")
	}
}

func TestMoney_CurrencyMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("mixing currencies should panic")
		}
	}()
	BRL(1).Add(M(1, "USD"))
}

func TestMoney_Round(t *testing.T) {
	tests := []struct {
		in   Money
		want Money
	}{
		{BRL(10.005), BRL(10.01)},
		{BRL(10.004), BRL(10)},
		{BRL(-0.005), BRL(-0.01)},
	}
	for _, tt := range tests {
		if got := tt.in.Round(); !got.Equal(tt.want) {
			t.Errorf("Round(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPercent_Of(t *testing.T) {
	tests := []struct {
		pct  Percent
		of   Money
		want Money
	}{
		{P(5), BRL(500_000), BRL(25_000)},
		{P(6), BRL(25_000), BRL(1_500)},
		{P(0), BRL(100), BRL(0)},
		{P(100), BRL(42.42), BRL(42.42)},
		// Exact, no float drift: 5% of 2001 is 100.05.
		{P(5), BRL(2001), BRL(100.05)},
	}
	for _, tt := range tests {
		if got := tt.pct.Of(tt.of); !got.Equal(tt.want) {
			t.Errorf("%v.Of(%v) = %v, want %v", tt.pct, tt.of, got, tt.want)
		}
	}
}

func TestMoney_SignedString(t *testing.T) {
	if got := BRL(0).SignedString(); got != "-" {
		t.Errorf("SignedString(0) = %q, want -", got)
	}
	if got := BRL(10).SignedString(); got[0] != '+' {
		t.Errorf("SignedString(10) = %q, want a leading +", got)
	}
}
