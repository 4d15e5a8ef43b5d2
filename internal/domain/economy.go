package domain

import "github.com/shopspring/decimal"

// CycleExpansion is the only regime label the simplified economy produces.
const CycleExpansion = "expansion"

// AssetReturns are the annual returns per asset class for one simulated year.
type AssetReturns struct {
	SP500      decimal.Decimal `json:"sp500" yaml:"sp500"`
	Tech       decimal.Decimal `json:"tech" yaml:"tech"`
	Treasuries decimal.Decimal `json:"treasuries" yaml:"treasuries"`
	Bonds      decimal.Decimal `json:"bonds" yaml:"bonds"`
}

// EconomicState is owned by the engine and replaced once per tick.
type EconomicState struct {
	Inflation           decimal.Decimal `json:"inflation" yaml:"inflation"`
	CumulativeInflation decimal.Decimal `json:"cumulative_inflation" yaml:"cumulative_inflation"`
	Returns             AssetReturns    `json:"returns" yaml:"returns"`

	// Legacy aggregate fields kept for older readers.
	StockIndex decimal.Decimal `json:"stock_index" yaml:"stock_index"`
	Cycle      string          `json:"cycle" yaml:"cycle"`
	CycleYear  int             `json:"cycle_year" yaml:"cycle_year"`
}
