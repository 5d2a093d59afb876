package common

// OrderSide is the side a passive order rests on. The zero value is the
// explicit no-side sentinel used for unmapped feed vocabulary.
type OrderSide int

const (
	OrderSideNone OrderSide = iota
	OrderSideBuy
	OrderSideSell
)

func (s OrderSide) String() string {
	switch s {
	case OrderSideBuy:
		return "BUY"
	case OrderSideSell:
		return "SELL"
	default:
		return "NO_ORDER_SIDE"
	}
}

// AggressorSide is the counterparty that initiated a trade. The zero
// value is the explicit no-aggressor sentinel.
type AggressorSide int

const (
	AggressorSideNone AggressorSide = iota
	AggressorSideBuyer
	AggressorSideSeller
)

func (s AggressorSide) String() string {
	switch s {
	case AggressorSideBuyer:
		return "BUYER"
	case AggressorSideSeller:
		return "SELLER"
	default:
		return "NO_AGGRESSOR"
	}
}
