package common

import (
	"go.uber.org/zap"

	"github.com/meridianfx/meridian/pkg/identifiers"
	"github.com/meridianfx/meridian/pkg/types"
	"github.com/meridianfx/meridian/pkg/utility"
)

// Trade is a canonical, fully-typed trade record produced by the
// normalization boundary.
type Trade struct {
	InstrumentId identifiers.InstrumentId `json:"instrument_id"`
	Price        types.Price              `json:"price"`
	Size         types.Quantity           `json:"size"`
	Aggressor    AggressorSide            `json:"aggressor"`
	TradeId      string                   `json:"trade_id,omitempty"`

	ExecutionId utility.ExecutionID `json:"eid,omitempty"`
	TraceId     utility.TraceID     `json:"tid,omitempty"`
	TsEvent     utility.UnixNanos   `json:"ts_event"`
	TsInit      utility.UnixNanos   `json:"ts_init"`
}

func (t Trade) Fields() []zap.Field {
	return []zap.Field{
		zap.String("instrument_id", t.InstrumentId.String()),
		zap.String("price", t.Price.String()),
		zap.String("size", t.Size.String()),
		zap.String("aggressor", t.Aggressor.String()),
		zap.String("trade_id", t.TradeId),
		zap.Uint64("ts_event", uint64(t.TsEvent)),
	}
}
