package replay

import "github.com/meridianfx/meridian/pkg/exchange/tardis"

// Side codes used in packed records.
const (
	PackedSideNone uint64 = iota
	PackedSideBuy
	PackedSideSell
)

// PackedTrade is the on-disk layout of one raw trade. Field order keeps
// the struct free of padding, the mmap source casts it directly.
type PackedTrade struct {
	TimestampUs      uint64
	LocalTimestampUs uint64
	Price            float64
	Amount           float64
	Side             uint64
}

func PackSide(side string) uint64 {
	switch side {
	case "buy":
		return PackedSideBuy
	case "sell":
		return PackedSideSell
	default:
		return PackedSideNone
	}
}

func unpackSide(side uint64) string {
	switch side {
	case PackedSideBuy:
		return "buy"
	case PackedSideSell:
		return "sell"
	default:
		return ""
	}
}

// Record converts the packed form back to a raw trade record for the
// given exchange and symbol.
func (p PackedTrade) Record(exchange tardis.Exchange, symbol string) tardis.TradeRecord {
	return tardis.TradeRecord{
		Exchange:         exchange,
		Symbol:           symbol,
		TimestampUs:      p.TimestampUs,
		LocalTimestampUs: p.LocalTimestampUs,
		Side:             unpackSide(p.Side),
		Price:            p.Price,
		Amount:           p.Amount,
	}
}
