package insights

import (
	"fmt"
	"time"

	"recruit_portal_backend/internal/leads/domain"
)

// Period is a reporting window for the performance summary.
type Period string

const (
	PeriodDay     Period = "day"
	PeriodWeek    Period = "week"
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
)

// Valid reports whether p is a known reporting period.
func (p Period) Valid() bool {
	switch p {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodQuarter:
		return true
	}
	return false
}

// Window returns the half-open [start, end) range ending at now.
func (p Period) Window(now time.Time) (start, end time.Time) {
	switch p {
	case PeriodDay:
		return now.AddDate(0, 0, -1), now
	case PeriodWeek:
		return now.AddDate(0, 0, -7), now
	case PeriodMonth:
		return now.AddDate(0, -1, 0), now
	default:
		return now.AddDate(0, -3, 0), now
	}
}

// Benchmarks the agency holds recruiters to, as percentages.
var benchmarks = map[string]int{
	"contact_rate":    70,
	"interest_rate":   40,
	"conversion_rate": 10,
}

// FunnelRates are the three headline percentages for a window.
type FunnelRates struct {
	NewLeads       int `json:"newLeads"`
	ContactRate    int `json:"contactRate"`
	InterestRate   int `json:"interestRate"`
	ConversionRate int `json:"conversionRate"`
}

// BenchmarkComparison shows one rate against its target.
type BenchmarkComparison struct {
	Metric string `json:"metric"`
	Actual int    `json:"actual"`
	Target int    `json:"target"`
	Met    bool   `json:"met"`
}

// PerformanceSummary is the recruiter performance report for one period.
type PerformanceSummary struct {
	Period      Period                `json:"period"`
	Current     FunnelRates           `json:"current"`
	Previous    FunnelRates           `json:"previous"`
	TrendDelta  int                   `json:"trendDelta"`
	Benchmarks  []BenchmarkComparison `json:"benchmarks"`
	TopSources  []SourceMetrics       `json:"topSources"`
	ActionItems []string              `json:"actionItems"`
}

const topSourceLimit = 3

// Performance compares the current window's funnel against the previous one
// and against fixed benchmarks.
func Performance(leads []domain.Lead, period Period, now time.Time) PerformanceSummary {
	start, end := period.Window(now)
	prevStart, _ := period.Window(start)

	current := funnelRates(filterCreatedBetween(leads, start, end))
	previous := funnelRates(filterCreatedBetween(leads, prevStart, start))

	comparisons := []BenchmarkComparison{
		{Metric: "contact_rate", Actual: current.ContactRate, Target: benchmarks["contact_rate"]},
		{Metric: "interest_rate", Actual: current.InterestRate, Target: benchmarks["interest_rate"]},
		{Metric: "conversion_rate", Actual: current.ConversionRate, Target: benchmarks["conversion_rate"]},
	}
	for i := range comparisons {
		comparisons[i].Met = comparisons[i].Actual >= comparisons[i].Target
	}

	sources := BySource(filterCreatedBetween(leads, start, end))
	if len(sources) > topSourceLimit {
		sources = sources[:topSourceLimit]
	}

	return PerformanceSummary{
		Period:      period,
		Current:     current,
		Previous:    previous,
		TrendDelta:  current.ConversionRate - previous.ConversionRate,
		Benchmarks:  comparisons,
		TopSources:  sources,
		ActionItems: actionItems(current, comparisons),
	}
}

func filterCreatedBetween(leads []domain.Lead, start, end time.Time) []domain.Lead {
	out := make([]domain.Lead, 0, len(leads))
	for _, lead := range leads {
		if !lead.CreatedAt.Before(start) && lead.CreatedAt.Before(end) {
			out = append(out, lead)
		}
	}
	return out
}

func funnelRates(leads []domain.Lead) FunnelRates {
	contacted, interested, converted := 0, 0, 0
	for _, lead := range leads {
		if lead.ContactStatus.Reached(domain.StatusContacted) {
			contacted++
		}
		if lead.ContactStatus.Reached(domain.StatusInterested) {
			interested++
		}
		if lead.ContactStatus == domain.StatusConverted {
			converted++
		}
	}
	return FunnelRates{
		NewLeads:       len(leads),
		ContactRate:    percent(contacted, len(leads)),
		InterestRate:   percent(interested, contacted),
		ConversionRate: percent(converted, len(leads)),
	}
}

func actionItems(current FunnelRates, comparisons []BenchmarkComparison) []string {
	items := make([]string, 0, 3)
	for _, c := range comparisons {
		if c.Met {
			continue
		}
		switch c.Metric {
		case "contact_rate":
			items = append(items, fmt.Sprintf(
				"Contact rate %d%% is below the %d%% target; work the uncontacted backlog first.", c.Actual, c.Target))
		case "interest_rate":
			items = append(items, fmt.Sprintf(
				"Interest rate %d%% is below the %d%% target; review pitch and follow-up timing.", c.Actual, c.Target))
		case "conversion_rate":
			items = append(items, fmt.Sprintf(
				"Conversion rate %d%% is below the %d%% target; focus on leads already assessed ready.", c.Actual, c.Target))
		}
	}
	if current.NewLeads == 0 {
		items = append(items, "No new leads in this period; check acquisition channels.")
	}
	return items
}
