package common

import "fmt"

// BarAggregation is the unit a bar aggregates over.
type BarAggregation int

const (
	BarAggregationMillisecond BarAggregation = iota
	BarAggregationSecond
	BarAggregationMinute
	BarAggregationHour
	BarAggregationDay
	BarAggregationTick
	BarAggregationVolume
	BarAggregationValue
)

func (a BarAggregation) String() string {
	switch a {
	case BarAggregationMillisecond:
		return "MILLISECOND"
	case BarAggregationSecond:
		return "SECOND"
	case BarAggregationMinute:
		return "MINUTE"
	case BarAggregationHour:
		return "HOUR"
	case BarAggregationDay:
		return "DAY"
	case BarAggregationTick:
		return "TICK"
	case BarAggregationVolume:
		return "VOLUME"
	case BarAggregationValue:
		return "VALUE"
	default:
		return "UNKNOWN"
	}
}

// PriceType is the price basis a bar or quote series is built from.
type PriceType int

const (
	PriceTypeBid PriceType = iota
	PriceTypeAsk
	PriceTypeMid
	PriceTypeLast
)

func (t PriceType) String() string {
	switch t {
	case PriceTypeBid:
		return "BID"
	case PriceTypeAsk:
		return "ASK"
	case PriceTypeMid:
		return "MID"
	case PriceTypeLast:
		return "LAST"
	default:
		return "UNKNOWN"
	}
}

// BarSpecification describes an aggregated bar: how many aggregation
// units one bar spans and which price basis it is built from.
type BarSpecification struct {
	Step        int
	Aggregation BarAggregation
	PriceType   PriceType
}

func (s BarSpecification) String() string {
	return fmt.Sprintf("%d-%s-%s", s.Step, s.Aggregation, s.PriceType)
}
