package types

import (
	"fmt"
	"strings"
	"sync"
)

type CurrencyType uint8

const (
	CurrencyTypeFiat CurrencyType = iota
	CurrencyTypeCrypto
)

func (t CurrencyType) String() string {
	switch t {
	case CurrencyTypeFiat:
		return "FIAT"
	case CurrencyTypeCrypto:
		return "CRYPTO"
	default:
		return "UNKNOWN"
	}
}

// Currency is a reference entity defining a denomination code and the
// number of fractional digits monetary amounts in it carry. Money holds
// a value copy, never a reference into the registry.
type Currency struct {
	Code      string
	Precision uint8
	Type      CurrencyType
}

func (c Currency) String() string { return c.Code }

// CurrencyRegistry is a process-wide lookup of known denominations.
// It follows a single-writer-then-frozen discipline: populated during
// initialization, read-only for the rest of the process.
type CurrencyRegistry struct {
	mu     sync.RWMutex
	byCode map[string]Currency
	frozen bool
}

func NewCurrencyRegistry() *CurrencyRegistry {
	return &CurrencyRegistry{byCode: make(map[string]Currency)}
}

func (r *CurrencyRegistry) Register(c Currency) error {
	if strings.TrimSpace(c.Code) == "" {
		return fmt.Errorf("currency code must not be empty")
	}
	if err := CheckFixedPrecision(c.Precision); err != nil {
		return fmt.Errorf("currency %s: %w", c.Code, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frozen {
		return fmt.Errorf("currency registry is frozen, cannot register %s", c.Code)
	}
	r.byCode[c.Code] = c
	return nil
}

// Freeze marks the registry read-only. Lookups after Freeze require no
// further synchronization beyond the read lock.
func (r *CurrencyRegistry) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frozen = true
}

func (r *CurrencyRegistry) FromCode(code string) (Currency, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byCode[code]
	if !ok {
		return Currency{}, fmt.Errorf("unknown currency code %q", code)
	}
	return c, nil
}

func (r *CurrencyRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byCode)
}

var defaultRegistry = NewCurrencyRegistry()

func init() {
	fiat := []string{
		"USD", "EUR", "GBP", "JPY", "AUD", "CAD", "CHF", "CNY", "HKD",
		"NZD", "SEK", "NOK", "SGD", "MXN", "ZAR", "TRY", "KRW", "INR",
		"BRL", "RUB", "PLN", "CZK", "DKK", "HUF", "ILS",
	}
	crypto := []string{
		"BTC", "ETH", "USDT", "USDC", "BNB", "XRP", "SOL", "ADA",
		"DOGE", "DOT", "LTC", "BCH", "LINK", "XLM", "AVAX", "TRX",
		"XBT", "BUSD", "DAI", "SHIB",
	}

	for _, code := range fiat {
		// Quote-convention precision, JPY included
		if err := defaultRegistry.Register(Currency{Code: code, Precision: 2, Type: CurrencyTypeFiat}); err != nil {
			panic(err)
		}
	}
	for _, code := range crypto {
		if err := defaultRegistry.Register(Currency{Code: code, Precision: 8, Type: CurrencyTypeCrypto}); err != nil {
			panic(err)
		}
	}
	defaultRegistry.Freeze()
}

// DefaultCurrencyRegistry returns the builtin ISO + crypto registry.
func DefaultCurrencyRegistry() *CurrencyRegistry { return defaultRegistry }

func CurrencyFromCode(code string) (Currency, error) {
	return defaultRegistry.FromCode(code)
}

func MustCurrencyFromCode(code string) Currency {
	c, err := defaultRegistry.FromCode(code)
	if err != nil {
		panic(err)
	}
	return c
}
