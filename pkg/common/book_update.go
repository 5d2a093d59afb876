package common

import (
	"go.uber.org/zap"

	"github.com/meridianfx/meridian/pkg/identifiers"
	"github.com/meridianfx/meridian/pkg/types"
	"github.com/meridianfx/meridian/pkg/utility"
)

// BookUpdate is a canonical order-book delta produced by the
// normalization boundary.
type BookUpdate struct {
	InstrumentId identifiers.InstrumentId `json:"instrument_id"`
	Action       BookAction               `json:"action"`
	Side         OrderSide                `json:"side"`
	Price        types.Price              `json:"price"`
	Size         types.Quantity           `json:"size"`

	ExecutionId utility.ExecutionID `json:"eid,omitempty"`
	TraceId     utility.TraceID     `json:"tid,omitempty"`
	TsEvent     utility.UnixNanos   `json:"ts_event"`
	TsInit      utility.UnixNanos   `json:"ts_init"`
}

func (u BookUpdate) Fields() []zap.Field {
	return []zap.Field{
		zap.String("instrument_id", u.InstrumentId.String()),
		zap.String("action", u.Action.String()),
		zap.String("side", u.Side.String()),
		zap.String("price", u.Price.String()),
		zap.String("size", u.Size.String()),
		zap.Uint64("ts_event", uint64(u.TsEvent)),
	}
}
