package instrument

// AssetClass is the broad asset category an instrument belongs to.
type AssetClass int

const (
	AssetClassFX AssetClass = iota
	AssetClassEquity
	AssetClassCommodity
	AssetClassDebt
	AssetClassIndex
	AssetClassCryptocurrency
	AssetClassAlternative
)

func (c AssetClass) String() string {
	switch c {
	case AssetClassFX:
		return "FX"
	case AssetClassEquity:
		return "EQUITY"
	case AssetClassCommodity:
		return "COMMODITY"
	case AssetClassDebt:
		return "DEBT"
	case AssetClassIndex:
		return "INDEX"
	case AssetClassCryptocurrency:
		return "CRYPTOCURRENCY"
	case AssetClassAlternative:
		return "ALTERNATIVE"
	default:
		return "UNKNOWN"
	}
}

// InstrumentClass is the contract kind of an instrument.
type InstrumentClass int

const (
	InstrumentClassSpot InstrumentClass = iota
	InstrumentClassSwap
	InstrumentClassFuture
	InstrumentClassForward
	InstrumentClassCfd
	InstrumentClassOption
	InstrumentClassWarrant
)

func (c InstrumentClass) String() string {
	switch c {
	case InstrumentClassSpot:
		return "SPOT"
	case InstrumentClassSwap:
		return "SWAP"
	case InstrumentClassFuture:
		return "FUTURE"
	case InstrumentClassForward:
		return "FORWARD"
	case InstrumentClassCfd:
		return "CFD"
	case InstrumentClassOption:
		return "OPTION"
	case InstrumentClassWarrant:
		return "WARRANT"
	default:
		return "UNKNOWN"
	}
}

// OptionKind distinguishes calls from puts.
type OptionKind int

const (
	OptionKindCall OptionKind = iota
	OptionKindPut
)

func (k OptionKind) String() string {
	switch k {
	case OptionKindCall:
		return "CALL"
	case OptionKindPut:
		return "PUT"
	default:
		return "UNKNOWN"
	}
}
