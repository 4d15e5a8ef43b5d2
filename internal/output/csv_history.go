package output

import (
	"bytes"
	"encoding/csv"
	"time"

	"github.com/rpgo/career-simulator/internal/domain"
)

// HistoryCSVFormatter exports the historical series, one row per point including the seed.
type HistoryCSVFormatter struct{}

func (c HistoryCSVFormatter) Name() string { return "csv" }

func (c HistoryCSVFormatter) Format(report *domain.SimulationReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Year", "Date", "Age", "Salary", "CashTotal", "InvestmentTotal", "Debt", "NetWorth", "Inflation", "StockIndex"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, pt := range report.History {
		row := []string{
			intToString(pt.Year),
			pt.Timestamp.Format(time.DateOnly),
			intToString(pt.Age),
			pt.Salary.StringFixed(2),
			pt.CashTotal.StringFixed(2),
			pt.InvestmentTotal.StringFixed(2),
			pt.Debt.StringFixed(2),
			pt.NetWorth.StringFixed(2),
			pt.Inflation.StringFixed(4),
			pt.StockIndex.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// SummaryCSVFormatter exports one row per yearly summary with the cash-flow waterfall and taxes.
type SummaryCSVFormatter struct{}

func (c SummaryCSVFormatter) Name() string      { return "summary-csv" }
func (c SummaryCSVFormatter) Extension() string { return "csv" }

func (c SummaryCSVFormatter) Format(report *domain.SimulationReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Year", "Age", "Salary", "NetWorth", "NetWorthChange", "NetWorthChangePercent",
		"TakeHomePay", "Expenses", "DebtPayments", "Investing", "Surplus",
		"FederalTax", "StateTax", "FICA", "EffectiveRate", "BankInterest", "EmergencyFundMonths",
		"Achievements", "Recommendations"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, s := range report.Summaries {
		row := []string{
			intToString(s.Year),
			intToString(s.Age),
			s.Salary.StringFixed(2),
			s.NetWorth.StringFixed(2),
			s.NetWorthChange.StringFixed(2),
			s.NetWorthChangePercent.StringFixed(2),
			s.CashFlow.TakeHomePay.StringFixed(2),
			s.CashFlow.Expenses.StringFixed(2),
			s.CashFlow.DebtPayments.StringFixed(2),
			s.CashFlow.InvestmentContributions.StringFixed(2),
			s.CashFlow.Surplus.StringFixed(2),
			s.Taxes.FederalTax.StringFixed(2),
			s.Taxes.StateTax.StringFixed(2),
			s.Taxes.FICA().StringFixed(2),
			s.Taxes.EffectiveRate.StringFixed(2),
			s.BankInterest.Total.StringFixed(2),
			s.EmergencyFundMonths.StringFixed(2),
			intToString(len(s.Achievements)),
			intToString(len(s.Recommendations)),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
