package tardis

import (
	"fmt"
	"strings"
	"testing"

	"github.com/meridianfx/meridian/pkg/common"
	"github.com/meridianfx/meridian/pkg/instrument"
	"github.com/meridianfx/meridian/pkg/utility"
)

func TestNormalize_ParseSymbol(t *testing.T) {
	if got := ParseSymbol("xbtusd"); got != "XBTUSD" {
		t.Errorf("ParseSymbol = %s, want XBTUSD", got)
	}
}

func TestNormalize_ParseInstrumentId(t *testing.T) {
	tests := []struct {
		exchange Exchange
		symbol   string
		want     string
	}{
		{ExchangeOkexFutures, "BTC-USD-200313", "BTC-USD-200313.OKEX"},
		{ExchangeBinance, "ETH-USDT", "ETH-USDT.BINANCE"},
		{ExchangeBitmex, "XBTUSD", "XBTUSD.BITMEX"},
		{ExchangeHuobiDmLinearSwap, "FOO-BAR", "FOO-BAR.HUOBI"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := ParseInstrumentId(tt.exchange, tt.symbol); got.String() != tt.want {
				t.Errorf("ParseInstrumentId = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestNormalize_ParseOrderSide(t *testing.T) {
	tests := []struct {
		input string
		want  common.OrderSide
	}{
		{"bid", common.OrderSideBuy},
		{"ask", common.OrderSideSell},
		{"", common.OrderSideNone},
		{"random", common.OrderSideNone},
		{"unknown", common.OrderSideNone},
	}

	for _, tt := range tests {
		if got := ParseOrderSide(tt.input); got != tt.want {
			t.Errorf("ParseOrderSide(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestNormalize_ParseAggressorSide(t *testing.T) {
	tests := []struct {
		input string
		want  common.AggressorSide
	}{
		{"buy", common.AggressorSideBuyer},
		{"sell", common.AggressorSideSeller},
		{"", common.AggressorSideNone},
		{"random", common.AggressorSideNone},
	}

	for _, tt := range tests {
		if got := ParseAggressorSide(tt.input); got != tt.want {
			t.Errorf("ParseAggressorSide(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestNormalize_ParseOptionKind(t *testing.T) {
	if got := ParseOptionKind(OptionTypeCall); got != instrument.OptionKindCall {
		t.Errorf("ParseOptionKind(call) = %s", got)
	}
	if got := ParseOptionKind(OptionTypePut); got != instrument.OptionKindPut {
		t.Errorf("ParseOptionKind(put) = %s", got)
	}
}

func TestNormalize_ParseOptionKindUnsupported(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for unsupported option type")
		}
	}()
	_ = ParseOptionKind("straddle")
}

func TestNormalize_ParseTimestamp(t *testing.T) {
	if got := ParseTimestamp(1_583_020_803_145_000); got != utility.UnixNanos(1_583_020_803_145_000_000) {
		t.Errorf("ParseTimestamp = %d", got)
	}
}

func TestNormalize_ParseBookAction(t *testing.T) {
	tests := []struct {
		isSnapshot bool
		amount     float64
		want       common.BookAction
	}{
		{true, 10.0, common.BookActionAdd},
		{false, 0.0, common.BookActionDelete},
		{false, 10.0, common.BookActionUpdate},
		// Snapshot wins over the zero-amount delete rule
		{true, 0.0, common.BookActionAdd},
	}

	for _, tt := range tests {
		if got := ParseBookAction(tt.isSnapshot, tt.amount); got != tt.want {
			t.Errorf("ParseBookAction(%v, %v) = %s, want %s", tt.isSnapshot, tt.amount, got, tt.want)
		}
	}
}

func TestNormalize_ParseBarSpec(t *testing.T) {
	tests := []struct {
		input       string
		step        int
		aggregation common.BarAggregation
	}{
		{"trade_bar_10ms", 10, common.BarAggregationMillisecond},
		{"trade_bar_30s", 30, common.BarAggregationSecond},
		{"trade_bar_5m", 5, common.BarAggregationMinute},
		{"trade_bar_100ticks", 100, common.BarAggregationTick},
		{"trade_bar_100000vol", 100000, common.BarAggregationVolume},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			spec := ParseBarSpec(tt.input)
			if spec.Step != tt.step {
				t.Errorf("Step = %d, want %d", spec.Step, tt.step)
			}
			if spec.Aggregation != tt.aggregation {
				t.Errorf("Aggregation = %s, want %s", spec.Aggregation, tt.aggregation)
			}
			if spec.PriceType != common.PriceTypeLast {
				t.Errorf("PriceType = %s, want LAST", spec.PriceType)
			}
		})
	}
}

func TestNormalize_ParseBarSpecInvalid(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		substr string
	}{
		{"empty", "", "invalid bar spec"},
		{"no step", "trade_bar_notanumberms", "invalid step"},
		{"unsupported unit", "trade_bar_10unknown", "unsupported bar aggregation"},
		{"digits only", "trade_bar_100", "invalid bar spec"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatalf("Expected panic for %q", tt.input)
				}
				if msg := fmt.Sprint(r); !strings.Contains(msg, tt.substr) {
					t.Errorf("Panic %q does not contain %q", msg, tt.substr)
				}
			}()
			_ = ParseBarSpec(tt.input)
		})
	}
}

func TestExchange_Venue(t *testing.T) {
	tests := []struct {
		exchange Exchange
		want     string
	}{
		{ExchangeBinanceFutures, "BINANCE"},
		{ExchangeBinanceDelivery, "BINANCE"},
		{ExchangeOkexSwap, "OKEX"},
		{ExchangeHuobiDm, "HUOBI"},
		{ExchangeDeribit, "DERIBIT"},
		{Exchange("gdax"), "GDAX"},
	}

	for _, tt := range tests {
		if got := tt.exchange.Venue(); string(got) != tt.want {
			t.Errorf("Venue(%s) = %s, want %s", tt.exchange, got, tt.want)
		}
	}
}
