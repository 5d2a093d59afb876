package identifiers

import (
	"testing"
)

func TestInstrumentId_String(t *testing.T) {
	id := NewInstrumentId("BTC-USD-200313", "OKEX")
	if id.String() != "BTC-USD-200313.OKEX" {
		t.Errorf("String = %s", id.String())
	}
}

func TestInstrumentId_Parse(t *testing.T) {
	tests := []struct {
		input  string
		symbol Symbol
		venue  Venue
	}{
		{"ETH-USDT.BINANCE", "ETH-USDT", "BINANCE"},
		{"XBTUSD.BITMEX", "XBTUSD", "BITMEX"},
		{"BRK.B.NYSE", "BRK.B", "NYSE"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			id, err := ParseInstrumentId(tt.input)
			if err != nil {
				t.Fatalf("ParseInstrumentId(%q): %v", tt.input, err)
			}
			if id.Symbol != tt.symbol || id.Venue != tt.venue {
				t.Errorf("Parsed %+v, want {%s %s}", id, tt.symbol, tt.venue)
			}
		})
	}
}

func TestInstrumentId_ParseInvalid(t *testing.T) {
	for _, input := range []string{"", "BTCUSD", ".BINANCE", "BTCUSD.", "."} {
		if _, err := ParseInstrumentId(input); err == nil {
			t.Errorf("Expected error for %q", input)
		}
	}
}

func TestInstrumentId_MapKey(t *testing.T) {
	a := NewInstrumentId("ESZ1", "GLBX")
	b := NewInstrumentId("ESZ1", "GLBX")
	c := NewInstrumentId("ESZ1", "XCME")

	m := map[InstrumentId]int{a: 1}
	if m[b] != 1 {
		t.Error("Equal ids must hash to the same key")
	}
	if _, ok := m[c]; ok {
		t.Error("Different venues must not collide")
	}
}

func TestInstrumentId_TextRoundTrip(t *testing.T) {
	original := NewInstrumentId("ETH-USDT", "BINANCE")

	text, err := original.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}

	var decoded InstrumentId
	if err := decoded.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if decoded != original {
		t.Errorf("Round trip failed: %v != %v", decoded, original)
	}
}
