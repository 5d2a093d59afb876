package types

import (
	"strings"
	"testing"
)

func TestCurrency_DefaultRegistryLookup(t *testing.T) {
	tests := []struct {
		code      string
		precision uint8
		kind      CurrencyType
	}{
		{"USD", 2, CurrencyTypeFiat},
		{"EUR", 2, CurrencyTypeFiat},
		{"JPY", 2, CurrencyTypeFiat},
		{"BTC", 8, CurrencyTypeCrypto},
		{"USDT", 8, CurrencyTypeCrypto},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			c, err := CurrencyFromCode(tt.code)
			if err != nil {
				t.Fatalf("CurrencyFromCode(%s): %v", tt.code, err)
			}
			if c.Precision != tt.precision {
				t.Errorf("Precision = %d, want %d", c.Precision, tt.precision)
			}
			if c.Type != tt.kind {
				t.Errorf("Type = %s, want %s", c.Type, tt.kind)
			}
		})
	}
}

func TestCurrency_UnknownCode(t *testing.T) {
	if _, err := CurrencyFromCode("XYZ"); err == nil {
		t.Error("Expected error for unknown code")
	}
}

func TestCurrency_MustFromCodePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for unknown code")
		}
	}()
	_ = MustCurrencyFromCode("XYZ")
}

func TestCurrency_RegistryFrozen(t *testing.T) {
	err := DefaultCurrencyRegistry().Register(Currency{Code: "ZZZ", Precision: 2})
	if err == nil || !strings.Contains(err.Error(), "frozen") {
		t.Errorf("Expected frozen registry error, got %v", err)
	}
}

func TestCurrency_RegistryLifecycle(t *testing.T) {
	r := NewCurrencyRegistry()

	if err := r.Register(Currency{Code: "ABC", Precision: 4, Type: CurrencyTypeCrypto}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := r.Register(Currency{Code: "", Precision: 2}); err == nil {
		t.Error("Expected error for empty code")
	}
	if err := r.Register(Currency{Code: "BAD", Precision: 12}); err == nil {
		t.Error("Expected error for precision above maximum")
	}

	r.Freeze()
	if err := r.Register(Currency{Code: "DEF", Precision: 2}); err == nil {
		t.Error("Expected error after freeze")
	}

	c, err := r.FromCode("ABC")
	if err != nil || c.Precision != 4 {
		t.Errorf("FromCode(ABC) = %+v, %v", c, err)
	}
	if r.Len() != 1 {
		t.Errorf("Len = %d, want 1", r.Len())
	}
}
