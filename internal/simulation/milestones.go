package simulation

import (
	"fmt"
	"sort"

	"github.com/rpgo/career-simulator/internal/domain"
	"github.com/rpgo/career-simulator/pkg/dateutil"
)

// Milestone is an age-triggered notification.
type Milestone struct {
	Age         int
	Title       string
	Description string
}

// Milestones returns the catalogue for someone born in birthYear, ordered by age.
// Entries that land on the same age are merged into one notification.
func Milestones(birthYear int) []Milestone {
	fra := dateutil.FullRetirementAge(birthYear)
	fraYears, fraMonths := dateutil.FullRetirementAgeMonths(birthYear)
	fraLabel := fmt.Sprintf("%d", fraYears)
	if fraMonths > 0 {
		fraLabel = fmt.Sprintf("%d and %d months", fraYears, fraMonths)
	}
	rmd := dateutil.GetRMDAge(birthYear)

	raw := []Milestone{
		{50, "Catch-up contributions", "You can now make catch-up contributions to your 401k and IRA."},
		{55, "Rule of 55", "Leaving your employer this year or later allows penalty-free 401k withdrawals from that plan."},
		{dateutil.PenaltyFreeWithdrawalAge, "Penalty-free withdrawals", "You have passed 59½: IRA and 401k withdrawals no longer carry the 10% penalty."},
		{dateutil.EarlySocialSecurityAge, "Early Social Security", "You can claim Social Security now at a permanently reduced benefit."},
		{65, "Medicare eligibility", "You are eligible to enroll in Medicare."},
		{fra, "Full retirement age", fmt.Sprintf("You reached your Social Security full retirement age (%s).", fraLabel)},
		{70, "Maximum Social Security", "Delayed retirement credits stop: claiming now gives the largest benefit."},
		{rmd, "Required minimum distributions", fmt.Sprintf("RMDs from tax-deferred accounts begin at %d.", rmd)},
	}

	byAge := make(map[int]Milestone, len(raw))
	for _, m := range raw {
		if existing, ok := byAge[m.Age]; ok {
			existing.Title += " / " + m.Title
			existing.Description += " " + m.Description
			byAge[m.Age] = existing
			continue
		}
		byAge[m.Age] = m
	}

	out := make([]Milestone, 0, len(byAge))
	for _, m := range byAge {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Age < out[j].Age })
	return out
}

// crossedMilestones returns the milestones in (fromAge, toAge] that ctx has not fired yet.
func crossedMilestones(ctx domain.SimulationContext, birthYear, fromAge, toAge int) []Milestone {
	var out []Milestone
	for _, m := range Milestones(birthYear) {
		if m.Age > fromAge && m.Age <= toAge && !ctx.MilestoneFired(m.Age) {
			out = append(out, m)
		}
	}
	return out
}
