package output

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/charmbracelet/glamour"
	"github.com/rpgo/career-simulator/internal/domain"
)

// DefaultTerminalWidth is the word-wrap column for the terminal renderer.
const DefaultTerminalWidth = 100

var markdownTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":         FormatCurrency,
	"signed":       FormatSignedCurrency,
	"pct":          FormatPercentage,
	"rate":         FormatRate,
	"upper":        strings.ToUpper,
	"str":          func(v any) string { return fmt.Sprint(v) },
	"lastSummary":  lastSummary,
	"achievements": allAchievements,
}).Parse(`# Financial simulation{{if .Profile.Name}}: {{.Profile.Name}}{{end}}

| | |
|---|---|
| Age | {{.Profile.Age}} (retires at {{.Profile.RetirementAge}}) |
| Salary | {{curr .Profile.Salary}} |
| State | {{.Profile.State}} |
| Status | {{.State}} |
| Net worth | {{curr .Aggregates.NetWorth}} |

## History

| Year | Age | Salary | Cash | Investments | Debt | Net worth |
|---:|---:|---:|---:|---:|---:|---:|
{{range .History}}| {{.Year}} | {{.Age}} | {{curr .Salary}} | {{curr .CashTotal}} | {{curr .InvestmentTotal}} | {{curr .Debt}} | {{curr .NetWorth}} |
{{end}}
{{- range $s := lastSummary .}}
## Year {{$s.Year}} (age {{$s.Age}})

Net worth {{curr $s.NetWorth}} ({{signed $s.NetWorthChange}}, {{pct $s.NetWorthChangePercent}}). Inflation {{rate $s.Economy.Inflation}}, S&P 500 {{rate $s.Economy.Returns.SP500}}.

| Cash flow | |
|---|---:|
| Take-home pay | {{curr $s.CashFlow.TakeHomePay}} |
| Expenses | {{curr $s.CashFlow.Expenses}} |
| Debt payments | {{curr $s.CashFlow.DebtPayments}} |
| Investing | {{curr $s.CashFlow.InvestmentContributions}} |
| **Surplus** | **{{curr $s.CashFlow.Surplus}}** |

Taxes: federal {{curr $s.Taxes.FederalTax}}, state {{curr $s.Taxes.StateTax}}, effective rate {{pct $s.Taxes.EffectiveRate}}.
{{if $s.Recommendations}}
### Recommendations
{{range $s.Recommendations}}
- **{{upper (str .Priority)}}** {{.Title}}: {{.Description}}
{{- end}}
{{end}}
{{- end}}
{{- with achievements .}}
## Achievements
{{range .}}
- Year {{.Year}} (age {{.Age}}): {{.Title}}
{{- end}}
{{end}}
{{- with .Events}}
## Recent events
{{range .}}
- {{.Title}} (age {{.Age}})
{{- end}}
{{end}}`))

func lastSummary(r *domain.SimulationReport) []domain.YearlySummary {
	if s, ok := finalSummary(r); ok {
		return []domain.YearlySummary{s}
	}
	return nil
}

// MarkdownFormatter renders the report as GitHub-flavoured markdown.
type MarkdownFormatter struct{}

func (m MarkdownFormatter) Name() string      { return "markdown" }
func (m MarkdownFormatter) Extension() string { return "md" }

func (m MarkdownFormatter) Format(report *domain.SimulationReport) ([]byte, error) {
	var buf bytes.Buffer
	if err := markdownTemplate.Execute(&buf, report); err != nil {
		return nil, fmt.Errorf("failed to render markdown: %w", err)
	}
	return buf.Bytes(), nil
}

// TerminalFormatter renders the markdown report for a terminal with glamour.
type TerminalFormatter struct {
	Width int
}

func (t TerminalFormatter) Name() string      { return "terminal" }
func (t TerminalFormatter) Extension() string { return "txt" }

func (t TerminalFormatter) Format(report *domain.SimulationReport) ([]byte, error) {
	md, err := MarkdownFormatter{}.Format(report)
	if err != nil {
		return nil, err
	}
	width := t.Width
	if width <= 0 {
		width = DefaultTerminalWidth
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("notty"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create terminal renderer: %w", err)
	}
	out, err := r.Render(string(md))
	if err != nil {
		return nil, fmt.Errorf("failed to render terminal report: %w", err)
	}
	return []byte(out), nil
}
