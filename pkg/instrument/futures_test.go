package instrument

import (
	"strings"
	"testing"

	"github.com/meridianfx/meridian/pkg/identifiers"
	"github.com/meridianfx/meridian/pkg/types"
)

func esParams(t *testing.T) FuturesContractParams {
	t.Helper()
	return FuturesContractParams{
		Id:             identifiers.NewInstrumentId("ESZ1", "GLBX"),
		RawSymbol:      "ESZ1",
		AssetClass:     AssetClassIndex,
		ExchangeCode:   "XCME",
		Underlying:     "ES",
		ActivationNs:   1_631_836_800_000_000_000,
		ExpirationNs:   1_639_699_200_000_000_000,
		Currency:       types.MustCurrencyFromCode("USD"),
		PricePrecision: 2,
		PriceIncrement: types.MustNewPrice(0.25, 2),
		Multiplier:     types.QuantityFromInt(50),
		LotSize:        types.QuantityFromInt(1),
		TsEvent:        0,
		TsInit:         0,
	}
}

func TestFuturesContract_New(t *testing.T) {
	c, err := NewFuturesContract(esParams(t))
	if err != nil {
		t.Fatalf("NewFuturesContract: %v", err)
	}

	if c.Id().String() != "ESZ1.GLBX" {
		t.Errorf("Id = %s", c.Id())
	}
	if c.InstrumentClass() != InstrumentClassFuture {
		t.Errorf("InstrumentClass = %s, want FUTURE", c.InstrumentClass())
	}
	if c.QuoteCurrency().Code != "USD" || c.SettlementCurrency().Code != "USD" {
		t.Error("Quote and settlement currency must be the contract currency")
	}
	if c.IsInverse() {
		t.Error("Futures are not inverse")
	}
}

func TestFuturesContract_Defaults(t *testing.T) {
	c, err := NewFuturesContract(esParams(t))
	if err != nil {
		t.Fatalf("NewFuturesContract: %v", err)
	}

	if c.SizePrecision() != 0 {
		t.Errorf("SizePrecision = %d, want 0", c.SizePrecision())
	}
	if !c.SizeIncrement().Eq(types.QuantityFromInt(1)) {
		t.Errorf("SizeIncrement = %s, want 1", c.SizeIncrement())
	}
	minQty, ok := c.MinQuantity()
	if !ok || !minQty.Eq(types.QuantityFromInt(1)) {
		t.Errorf("MinQuantity = %s, %v, want 1, true", minQty, ok)
	}
	if !c.MarginInit().IsZero() || !c.MarginMaint().IsZero() {
		t.Error("Margins must default to zero")
	}
}

func TestFuturesContract_NotApplicableAccessors(t *testing.T) {
	c := MustNewFuturesContract(esParams(t))

	if _, ok := c.BaseCurrency(); ok {
		t.Error("Futures have no base currency")
	}
	if _, ok := c.OptionKind(); ok {
		t.Error("Futures have no option kind")
	}
	if _, ok := c.StrikePrice(); ok {
		t.Error("Futures have no strike price")
	}
	if _, ok := c.Isin(); ok {
		t.Error("No ISIN expected")
	}
	if _, ok := c.MaxNotional(); ok {
		t.Error("No notional bounds expected")
	}

	underlying, ok := c.Underlying()
	if !ok || underlying != "ES" {
		t.Errorf("Underlying = %s, %v", underlying, ok)
	}
	exchange, ok := c.Exchange()
	if !ok || exchange != "XCME" {
		t.Errorf("Exchange = %s, %v", exchange, ok)
	}
	if _, ok := c.ActivationNs(); !ok {
		t.Error("Activation applies to futures")
	}
	if _, ok := c.ExpirationNs(); !ok {
		t.Error("Expiration applies to futures")
	}
}

func TestFuturesContract_OptionalExchange(t *testing.T) {
	p := esParams(t)
	p.ExchangeCode = ""

	c, err := NewFuturesContract(p)
	if err != nil {
		t.Fatalf("NewFuturesContract: %v", err)
	}
	if _, ok := c.Exchange(); ok {
		t.Error("Empty exchange code must read as absent")
	}
}

func TestFuturesContract_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FuturesContractParams)
		substr string
	}{
		{
			"blank exchange code",
			func(p *FuturesContractParams) { p.ExchangeCode = "   " },
			"exchange code",
		},
		{
			"empty underlying",
			func(p *FuturesContractParams) { p.Underlying = "" },
			"underlying",
		},
		{
			"precision mismatch",
			func(p *FuturesContractParams) { p.PricePrecision = 3 },
			"price_precision",
		},
		{
			"zero increment",
			func(p *FuturesContractParams) { p.PriceIncrement = types.PriceFromRaw(0, 2) },
			"must be positive",
		},
		{
			"negative increment",
			func(p *FuturesContractParams) { p.PriceIncrement = types.PriceFromRaw(-1_000_000, 2) },
			"must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := esParams(t)
			tt.mutate(&p)

			_, err := NewFuturesContract(p)
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !strings.Contains(err.Error(), tt.substr) {
				t.Errorf("Error %q does not mention %q", err.Error(), tt.substr)
			}
		})
	}
}

func TestFuturesContract_MustNewPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic on invalid params")
		}
	}()

	p := esParams(t)
	p.Underlying = ""
	_ = MustNewFuturesContract(p)
}

func TestFuturesContract_EqualityById(t *testing.T) {
	a := MustNewFuturesContract(esParams(t))

	p := esParams(t)
	p.Multiplier = types.QuantityFromInt(20)
	p.PriceIncrement = types.MustNewPrice(0.05, 2)
	b := MustNewFuturesContract(p)

	if !a.Equal(b) {
		t.Error("Contracts with the same id are the same entity")
	}

	p = esParams(t)
	p.Id = identifiers.NewInstrumentId("NQZ1", "GLBX")
	c := MustNewFuturesContract(p)
	if a.Equal(c) {
		t.Error("Different ids must not compare equal")
	}
}
