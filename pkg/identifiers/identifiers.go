// Package identifiers defines the canonical naming types for tradable
// instruments and the venues they trade on.
package identifiers

import (
	"fmt"
	"strings"
)

// Symbol is a normalized ticker symbol.
type Symbol string

func (s Symbol) String() string { return string(s) }

// Venue is the trading venue an instrument or record originates from.
type Venue string

func (v Venue) String() string { return string(v) }

// InstrumentId is the composite natural key (symbol, venue). It is
// comparable and usable as a map key; equality and hashing are defined
// over the pair.
type InstrumentId struct {
	Symbol Symbol
	Venue  Venue
}

func NewInstrumentId(symbol Symbol, venue Venue) InstrumentId {
	return InstrumentId{Symbol: symbol, Venue: venue}
}

// ParseInstrumentId parses the "<symbol>.<venue>" form. The venue is
// everything after the last dot, symbols may themselves contain dots.
func ParseInstrumentId(value string) (InstrumentId, error) {
	idx := strings.LastIndex(value, ".")
	if idx <= 0 || idx == len(value)-1 {
		return InstrumentId{}, fmt.Errorf("invalid instrument id %q, expected '<symbol>.<venue>'", value)
	}
	return InstrumentId{Symbol: Symbol(value[:idx]), Venue: Venue(value[idx+1:])}, nil
}

func (id InstrumentId) String() string {
	return string(id.Symbol) + "." + string(id.Venue)
}

func (id InstrumentId) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *InstrumentId) UnmarshalText(text []byte) error {
	parsed, err := ParseInstrumentId(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
