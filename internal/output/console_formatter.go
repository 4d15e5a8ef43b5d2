package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/career-simulator/internal/domain"
)

// ConsoleFormatter renders the detailed year-by-year console report.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(report *domain.SimulationReport) ([]byte, error) {
	var buf bytes.Buffer
	rule := strings.Repeat("=", 81)

	fmt.Fprintln(&buf, rule)
	fmt.Fprintln(&buf, "YEARLY FINANCIAL SIMULATION")
	fmt.Fprintln(&buf, rule)
	fmt.Fprintln(&buf)

	p := report.Profile
	fmt.Fprintln(&buf, "PROFILE")
	fmt.Fprintln(&buf, strings.Repeat("-", 40))
	if p.Name != "" {
		fmt.Fprintf(&buf, "Name:            %s\n", p.Name)
	}
	fmt.Fprintf(&buf, "Age:             %d (retires at %d)\n", p.Age, p.RetirementAge)
	fmt.Fprintf(&buf, "Salary:          %s\n", FormatCurrency(p.Salary))
	fmt.Fprintf(&buf, "State:           %s\n", p.State)
	fmt.Fprintf(&buf, "Engine state:    %s\n", report.State)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "NET WORTH HISTORY")
	fmt.Fprintln(&buf, strings.Repeat("-", 40))
	fmt.Fprintf(&buf, "%-5s %-4s %14s %14s %14s %12s %14s\n", "Year", "Age", "Salary", "Cash", "Investments", "Debt", "Net Worth")
	for _, pt := range report.History {
		fmt.Fprintf(&buf, "%-5d %-4d %14s %14s %14s %12s %14s\n",
			pt.Year, pt.Age,
			FormatCurrency(pt.Salary),
			FormatCurrency(pt.CashTotal),
			FormatCurrency(pt.InvestmentTotal),
			FormatCurrency(pt.Debt),
			FormatCurrency(pt.NetWorth))
	}
	fmt.Fprintln(&buf)

	if s, ok := finalSummary(report); ok {
		writeYearDetail(&buf, s)
	}

	if achievements := allAchievements(report); len(achievements) > 0 {
		fmt.Fprintln(&buf, "ACHIEVEMENTS")
		fmt.Fprintln(&buf, strings.Repeat("-", 40))
		for _, a := range achievements {
			fmt.Fprintf(&buf, "• Year %d (age %d): %s\n", a.Year, a.Age, a.Title)
		}
		fmt.Fprintln(&buf)
	}

	if len(report.Events) > 0 {
		fmt.Fprintln(&buf, "RECENT EVENTS")
		fmt.Fprintln(&buf, strings.Repeat("-", 40))
		for _, ev := range report.Events {
			fmt.Fprintf(&buf, "• [%s] age %d: %s\n", ev.Kind, ev.Age, ev.Title)
		}
		fmt.Fprintln(&buf)
	}

	a := report.Aggregates
	fmt.Fprintln(&buf, "TOTALS")
	fmt.Fprintln(&buf, strings.Repeat("-", 40))
	fmt.Fprintf(&buf, "Savings:          %s\n", FormatCurrency(a.TotalSavings))
	fmt.Fprintf(&buf, "Investments:      %s\n", FormatCurrency(a.TotalInvestments))
	fmt.Fprintf(&buf, "Net worth:        %s\n", FormatCurrency(a.NetWorth))
	fmt.Fprintf(&buf, "Annual cash flow: %s\n", FormatSignedCurrency(a.AnnualCashFlow))
	return buf.Bytes(), nil
}

func writeYearDetail(buf *bytes.Buffer, s domain.YearlySummary) {
	fmt.Fprintf(buf, "YEAR %d (AGE %d) SUMMARY\n", s.Year, s.Age)
	fmt.Fprintln(buf, strings.Repeat("-", 40))
	fmt.Fprintf(buf, "Net worth:        %s (%s, %s)\n", FormatCurrency(s.NetWorth),
		FormatSignedCurrency(s.NetWorthChange), FormatPercentage(s.NetWorthChangePercent))
	fmt.Fprintf(buf, "Inflation:        %s   S&P 500: %s\n", FormatRate(s.Economy.Inflation), FormatRate(s.Economy.Returns.SP500))
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "CASH FLOW:")
	fmt.Fprintf(buf, "  Take-home pay:    %s\n", FormatCurrency(s.CashFlow.TakeHomePay))
	fmt.Fprintf(buf, "  Expenses:        -%s\n", FormatCurrency(s.CashFlow.Expenses))
	fmt.Fprintf(buf, "  Debt payments:   -%s\n", FormatCurrency(s.CashFlow.DebtPayments))
	fmt.Fprintf(buf, "  Investing:       -%s\n", FormatCurrency(s.CashFlow.InvestmentContributions))
	fmt.Fprintf(buf, "  Surplus:          %s\n", FormatCurrency(s.CashFlow.Surplus))
	fmt.Fprintln(buf)

	t := s.Taxes
	fmt.Fprintln(buf, "TAXES:")
	fmt.Fprintf(buf, "  Federal:          %s (marginal %s)\n", FormatCurrency(t.FederalTax), FormatRate(t.MarginalRate))
	fmt.Fprintf(buf, "  State:            %s\n", FormatCurrency(t.StateTax))
	fmt.Fprintf(buf, "  FICA:             %s\n", FormatCurrency(t.FICA()))
	fmt.Fprintf(buf, "  Effective rate:   %s\n", FormatPercentage(t.EffectiveRate))
	fmt.Fprintln(buf)

	a := s.SubAccounts
	fmt.Fprintln(buf, "INVESTMENT ACCOUNTS:")
	fmt.Fprintf(buf, "  Taxable:          %s\n", FormatCurrency(a.Taxable))
	fmt.Fprintf(buf, "  Traditional 401k: %s\n", FormatCurrency(a.Traditional401k))
	fmt.Fprintf(buf, "  Roth 401k:        %s\n", FormatCurrency(a.Roth401k))
	fmt.Fprintf(buf, "  Traditional IRA:  %s\n", FormatCurrency(a.TraditionalIRA))
	fmt.Fprintf(buf, "  Roth IRA:         %s\n", FormatCurrency(a.RothIRA))
	fmt.Fprintln(buf)

	fmt.Fprintf(buf, "Bank interest:      %s\n", FormatCurrency(s.BankInterest.Total))
	fmt.Fprintf(buf, "Emergency fund:     %s months\n", s.EmergencyFundMonths.StringFixed(1))
	fmt.Fprintln(buf)

	if len(s.Recommendations) > 0 {
		fmt.Fprintln(buf, "RECOMMENDATIONS:")
		for _, r := range s.Recommendations {
			fmt.Fprintf(buf, "  [%s] %s: %s\n", strings.ToUpper(string(r.Priority)), r.Title, r.Description)
		}
		fmt.Fprintln(buf)
	}
}

// ConsoleLiteFormatter prints one line per simulated year.
type ConsoleLiteFormatter struct{}

func (c ConsoleLiteFormatter) Name() string      { return "console-lite" }
func (c ConsoleLiteFormatter) Extension() string { return "txt" }

func (c ConsoleLiteFormatter) Format(report *domain.SimulationReport) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "SIMULATION SUMMARY")
	fmt.Fprintln(&buf, "================================")
	for _, s := range report.Summaries {
		fmt.Fprintf(&buf, "Year %d age %d: NetWorth=%s Change=%s Surplus=%s Achievements=%d\n",
			s.Year, s.Age,
			FormatCompact(s.NetWorth),
			FormatPercentage(s.NetWorthChangePercent),
			FormatCurrency(s.CashFlow.Surplus),
			len(s.Achievements))
	}
	fmt.Fprintf(&buf, "Final: %s (%s)\n", FormatCurrency(report.Aggregates.NetWorth), report.State)
	return buf.Bytes(), nil
}
