package tardis

import (
	"fmt"
	"strconv"

	"github.com/meridianfx/meridian/pkg/common"
	"github.com/meridianfx/meridian/pkg/types"
	"github.com/meridianfx/meridian/pkg/utility"
)

// TradeRecord is one raw row of a Tardis trades dataset:
// exchange,symbol,timestamp,local_timestamp,id,side,price,amount
type TradeRecord struct {
	Exchange         Exchange
	Symbol           string
	TimestampUs      uint64
	LocalTimestampUs uint64
	Id               string
	Side             string
	Price            float64
	Amount           float64
}

const tradeRecordFields = 8

// ParseTradeRecord decodes one CSV row. Malformed rows are recoverable,
// callers may log and skip the record.
func ParseTradeRecord(fields []string) (TradeRecord, error) {
	if len(fields) != tradeRecordFields {
		return TradeRecord{}, fmt.Errorf("trade record has %d fields, expected %d", len(fields), tradeRecordFields)
	}

	tsUs, err := strconv.ParseUint(fields[2], 10, 64)
	if err != nil {
		return TradeRecord{}, fmt.Errorf("unable to parse timestamp %q: %w", fields[2], err)
	}
	localTsUs, err := strconv.ParseUint(fields[3], 10, 64)
	if err != nil {
		return TradeRecord{}, fmt.Errorf("unable to parse local timestamp %q: %w", fields[3], err)
	}
	price, err := strconv.ParseFloat(fields[6], 64)
	if err != nil {
		return TradeRecord{}, fmt.Errorf("unable to parse price %q: %w", fields[6], err)
	}
	amount, err := strconv.ParseFloat(fields[7], 64)
	if err != nil {
		return TradeRecord{}, fmt.Errorf("unable to parse amount %q: %w", fields[7], err)
	}

	return TradeRecord{
		Exchange:         Exchange(fields[0]),
		Symbol:           fields[1],
		TimestampUs:      tsUs,
		LocalTimestampUs: localTsUs,
		Id:               fields[4],
		Side:             fields[5],
		Price:            price,
		Amount:           amount,
	}, nil
}

// Normalize converts the raw record into a canonical trade at the given
// instrument precisions.
func (r TradeRecord) Normalize(pricePrecision, sizePrecision uint8) (common.Trade, error) {
	price, err := types.NewPrice(r.Price, pricePrecision)
	if err != nil {
		return common.Trade{}, fmt.Errorf("trade %s: %w", r.Id, err)
	}
	size, err := types.NewQuantity(r.Amount, sizePrecision)
	if err != nil {
		return common.Trade{}, fmt.Errorf("trade %s: %w", r.Id, err)
	}

	return common.Trade{
		InstrumentId: ParseInstrumentId(r.Exchange, r.Symbol),
		Price:        price,
		Size:         size,
		Aggressor:    ParseAggressorSide(r.Side),
		TradeId:      r.Id,
		ExecutionId:  utility.GetExecutionID(),
		TraceId:      utility.CreateTraceID(),
		TsEvent:      ParseTimestamp(r.TimestampUs),
		TsInit:       ParseTimestamp(r.LocalTimestampUs),
	}, nil
}

// BookChangeRecord is one raw row of a Tardis incremental book dataset:
// exchange,symbol,timestamp,local_timestamp,is_snapshot,side,price,amount
type BookChangeRecord struct {
	Exchange         Exchange
	Symbol           string
	TimestampUs      uint64
	LocalTimestampUs uint64
	IsSnapshot       bool
	Side             string
	Price            float64
	Amount           float64
}

const bookChangeRecordFields = 8

func ParseBookChangeRecord(fields []string) (BookChangeRecord, error) {
	if len(fields) != bookChangeRecordFields {
		return BookChangeRecord{}, fmt.Errorf("book change record has %d fields, expected %d", len(fields), bookChangeRecordFields)
	}

	tsUs, err := strconv.ParseUint(fields[2], 10, 64)
	if err != nil {
		return BookChangeRecord{}, fmt.Errorf("unable to parse timestamp %q: %w", fields[2], err)
	}
	localTsUs, err := strconv.ParseUint(fields[3], 10, 64)
	if err != nil {
		return BookChangeRecord{}, fmt.Errorf("unable to parse local timestamp %q: %w", fields[3], err)
	}
	isSnapshot, err := strconv.ParseBool(fields[4])
	if err != nil {
		return BookChangeRecord{}, fmt.Errorf("unable to parse is_snapshot %q: %w", fields[4], err)
	}
	price, err := strconv.ParseFloat(fields[6], 64)
	if err != nil {
		return BookChangeRecord{}, fmt.Errorf("unable to parse price %q: %w", fields[6], err)
	}
	amount, err := strconv.ParseFloat(fields[7], 64)
	if err != nil {
		return BookChangeRecord{}, fmt.Errorf("unable to parse amount %q: %w", fields[7], err)
	}

	return BookChangeRecord{
		Exchange:         Exchange(fields[0]),
		Symbol:           fields[1],
		TimestampUs:      tsUs,
		LocalTimestampUs: localTsUs,
		IsSnapshot:       isSnapshot,
		Side:             fields[5],
		Price:            price,
		Amount:           amount,
	}, nil
}

// Normalize converts the raw record into a canonical book update.
func (r BookChangeRecord) Normalize(pricePrecision, sizePrecision uint8) (common.BookUpdate, error) {
	price, err := types.NewPrice(r.Price, pricePrecision)
	if err != nil {
		return common.BookUpdate{}, fmt.Errorf("book change %s %s: %w", r.Exchange, r.Symbol, err)
	}
	size, err := types.NewQuantity(r.Amount, sizePrecision)
	if err != nil {
		return common.BookUpdate{}, fmt.Errorf("book change %s %s: %w", r.Exchange, r.Symbol, err)
	}

	return common.BookUpdate{
		InstrumentId: ParseInstrumentId(r.Exchange, r.Symbol),
		Action:       ParseBookAction(r.IsSnapshot, r.Amount),
		Side:         ParseOrderSide(r.Side),
		Price:        price,
		Size:         size,
		ExecutionId:  utility.GetExecutionID(),
		TraceId:      utility.CreateTraceID(),
		TsEvent:      ParseTimestamp(r.TimestampUs),
		TsInit:       ParseTimestamp(r.LocalTimestampUs),
	}, nil
}
