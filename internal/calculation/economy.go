package calculation

import (
	"math/rand"

	"github.com/rpgo/career-simulator/internal/domain"
	"github.com/shopspring/decimal"
)

// ECONOMIC MODEL ASSUMPTIONS:
//
// 1. Inflation: 3% mean with a uniform +/-1% perturbation each year
// 2. S&P 500, treasuries and bonds return fixed rates (10%, 4%, 5%)
// 3. Tech (the growth asset class) is drawn uniformly from [-15%, +35%]
// 4. The legacy stock index compounds at the S&P 500 return; the cycle label never changes

const (
	InflationMean   = 0.03
	InflationSpread = 0.01
	TechReturnMin   = -0.15
	TechReturnMax   = 0.35
)

var (
	SP500Return       = decimal.NewFromFloat(0.10)
	TreasuryReturn    = decimal.NewFromFloat(0.04)
	BondReturn        = decimal.NewFromFloat(0.05)
	InitialStockIndex = decimal.NewFromInt(100)
)

// RandomSource is the part of *rand.Rand the economic step uses.
type RandomSource interface {
	Float64() float64
}

// NewRandomSource returns a seeded source; seed 0 draws a seed from seedFunc.
func NewRandomSource(seed int64) RandomSource {
	if seed == 0 {
		seed = seedFunc()
	}
	return rand.New(rand.NewSource(seed))
}

// InitialEconomicState returns the constants the economy starts (and resets) from.
func InitialEconomicState() domain.EconomicState {
	return domain.EconomicState{
		Inflation:           decimal.NewFromFloat(InflationMean),
		CumulativeInflation: decimalOne,
		Returns: domain.AssetReturns{
			SP500:      SP500Return,
			Tech:       SP500Return,
			Treasuries: TreasuryReturn,
			Bonds:      BondReturn,
		},
		StockIndex: InitialStockIndex,
		Cycle:      domain.CycleExpansion,
	}
}

// EconomicStepper advances inflation and asset returns by one year
type EconomicStepper struct {
	Rand   RandomSource
	Logger Logger
}

// NewEconomicStepper creates a stepper; a nil source falls back to a time-seeded one.
func NewEconomicStepper(r RandomSource) *EconomicStepper {
	if r == nil {
		r = NewRandomSource(0)
	}
	return &EconomicStepper{Rand: r, Logger: NopLogger{}}
}

// Step returns the economy for the next year. prev is not modified.
func (es *EconomicStepper) Step(prev domain.EconomicState) domain.EconomicState {
	inflation := decimal.NewFromFloat(InflationMean + (2*es.Rand.Float64()-1)*InflationSpread).Round(6)
	tech := decimal.NewFromFloat(TechReturnMin + es.Rand.Float64()*(TechReturnMax-TechReturnMin)).Round(6)

	cumulative := prev.CumulativeInflation
	if cumulative.IsZero() {
		cumulative = decimalOne
	}
	index := prev.StockIndex
	if index.IsZero() {
		index = InitialStockIndex
	}

	next := domain.EconomicState{
		Inflation:           inflation,
		CumulativeInflation: cumulative.Mul(decimalOne.Add(inflation)),
		Returns: domain.AssetReturns{
			SP500:      SP500Return,
			Tech:       tech,
			Treasuries: TreasuryReturn,
			Bonds:      BondReturn,
		},
		StockIndex: index.Mul(decimalOne.Add(SP500Return)),
		Cycle:      domain.CycleExpansion,
		CycleYear:  prev.CycleYear + 1,
	}

	if es.Logger != nil {
		es.Logger.Debugf("economy year %d: inflation=%s tech=%s index=%s",
			next.CycleYear, inflation.String(), tech.String(), next.StockIndex.StringFixed(2))
	}
	return next
}
