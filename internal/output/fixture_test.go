package output

import (
	"time"

	"github.com/rpgo/career-simulator/internal/domain"
	"github.com/shopspring/decimal"
)

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func buildTestReport() *domain.SimulationReport {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	economy := domain.EconomicState{
		Inflation:           dec(0.03),
		CumulativeInflation: dec(1.03),
		Returns:             domain.AssetReturns{SP500: dec(0.08), Tech: dec(0.1), Treasuries: dec(0.03), Bonds: dec(0.035)},
		StockIndex:          dec(108),
		Cycle:               domain.CycleExpansion,
		CycleYear:           1,
	}
	return &domain.SimulationReport{
		Name:  "Test Person",
		State: domain.StateRunning,
		Profile: domain.PersonalFinancialData{
			Name:          "Test Person",
			Age:           31,
			RetirementAge: 65,
			Salary:        dec(101500),
			State:         "Texas",
			MaritalStatus: domain.MaritalStatusSingle,
		},
		Aggregates: domain.FinancialAggregates{
			TotalSavings:     dec(20000),
			TotalInvestments: dec(60000),
			NetWorth:         dec(72000),
			AnnualCashFlow:   dec(5000),
		},
		Economy: economy,
		History: []domain.HistoricalDataPoint{
			{Year: 0, Age: 30, Salary: dec(100000), CashTotal: dec(15000), InvestmentTotal: dec(50000), Debt: dec(10000), NetWorth: dec(55000), Inflation: dec(0.025), StockIndex: dec(100), Timestamp: start},
			{Year: 1, Age: 31, Salary: dec(101500), CashTotal: dec(20000), InvestmentTotal: dec(60000), Debt: dec(8000), NetWorth: dec(72000), Inflation: dec(0.03), StockIndex: dec(108), Timestamp: start.AddDate(1, 0, 0)},
		},
		Summaries: []domain.YearlySummary{
			{
				Year:                  1,
				Age:                   31,
				PreviousNetWorth:      dec(55000),
				NetWorth:              dec(72000),
				NetWorthChange:        dec(17000),
				NetWorthChangePercent: dec(30.91),
				Salary:                dec(101500),
				CashFlow: domain.CashFlowWaterfall{
					TakeHomePay:             dec(70000),
					Expenses:                dec(37080),
					DebtPayments:            dec(2400),
					InvestmentContributions: dec(12000),
					Surplus:                 dec(18520),
				},
				Taxes: domain.TaxCalculationResult{
					Year:           2025,
					Salary:         dec(101500),
					State:          "Texas",
					FederalTax:     dec(15000),
					SocialSecurity: dec(6293),
					Medicare:       dec(1471.75),
					EffectiveRate:  dec(22.5),
					MarginalRate:   dec(0.22),
					AfterTaxIncome: dec(70000),
				},
				Economy:             economy,
				BankInterest:        domain.BankInterest{Total: dec(410.5)},
				SubAccounts:         domain.SubAccountBalances{Taxable: dec(10000), Traditional401k: dec(30000), Roth401k: dec(10000), RothIRA: dec(10000)},
				EmergencyFundMonths: dec(6.47),
				Achievements: []domain.Achievement{
					{ID: "net_worth_50000", Title: "Net worth $50.0K", Description: "Your net worth passed $50,000.00."},
				},
				Recommendations: []domain.Recommendation{
					{ID: "move_idle_cash", Title: "Move idle cash", Description: "Checking and savings hold more than you need.", Priority: domain.PriorityMedium},
				},
			},
		},
		Events: []domain.Event{
			{ID: "evt-1", Kind: domain.EventMilestone, Title: "Age 31", Age: 31, Year: 1, Timestamp: start.AddDate(1, 0, 0)},
		},
	}
}
