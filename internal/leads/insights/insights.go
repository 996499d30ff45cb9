package insights

import (
	"fmt"
	"strings"

	"recruit_portal_backend/internal/leads/domain"
)

// Thresholds below keep the generated sentences out of small-sample noise.
const (
	minCountrySample    = 5
	minMethodContacts   = 10
	opportunityMinScore = 60
	opportunityMaxConv  = 10
	opportunityMinLeads = 5
)

// Generate renders ordered, human-readable observations from the aggregates.
// Each heuristic contributes at most one sentence; none may fire.
func Generate(leads []domain.Lead, history []domain.ContactHistoryEntry, countries []CountryMetrics, methods []MethodMetrics) []string {
	out := make([]string, 0, 5)

	if best := bestCountry(countries); best != nil {
		out = append(out, fmt.Sprintf(
			"%s converts best at %d%% across %d leads.",
			best.Country, best.ConversionRate, best.Total))
	}

	if best := bestMethod(methods); best != nil {
		out = append(out, fmt.Sprintf(
			"%s is the most effective contact method with a %d%% success rate over %d leads.",
			best.Key, best.SuccessRate, best.Leads))
	}

	if count, pct := ReadyToProceed(leads, history); count > 0 {
		out = append(out, fmt.Sprintf(
			"%d leads (%d%%) are assessed ready to proceed.", count, pct))
	}

	rollup := ReadinessRollup(leads, history)
	if blockers := Blockers(rollup); len(blockers) > 0 {
		names := make([]string, len(blockers))
		for i, b := range blockers {
			names[i] = fmt.Sprintf("%s (%d%%)", b.Field, b.PositiveRate)
		}
		out = append(out, "Most common blockers: "+strings.Join(names, ", ")+".")
	}

	if opps := opportunityCountries(countries); len(opps) > 0 {
		out = append(out, fmt.Sprintf(
			"High-quality but under-converted markets worth attention: %s.",
			strings.Join(opps, ", ")))
	}

	return out
}

func bestCountry(countries []CountryMetrics) *CountryMetrics {
	var best *CountryMetrics
	for i := range countries {
		c := &countries[i]
		if c.Total < minCountrySample {
			continue
		}
		if best == nil || c.ConversionRate > best.ConversionRate {
			best = c
		}
	}
	if best == nil || best.ConversionRate == 0 {
		return nil
	}
	return best
}

// bestMethod needs a floor of ten recorded attempts before a method may win;
// a handful of lucky calls is not a channel strategy.
func bestMethod(methods []MethodMetrics) *MethodMetrics {
	var best *MethodMetrics
	for i := range methods {
		m := &methods[i]
		if m.Attempts < minMethodContacts {
			continue
		}
		if best == nil || m.SuccessRate > best.SuccessRate {
			best = m
		}
	}
	if best == nil || best.SuccessRate == 0 {
		return nil
	}
	return best
}

func opportunityCountries(countries []CountryMetrics) []string {
	out := make([]string, 0, 3)
	for _, c := range countries {
		if c.Total >= opportunityMinLeads && c.AvgLeadScore > opportunityMinScore && c.ConversionRate < opportunityMaxConv {
			out = append(out, c.Country)
		}
	}
	return out
}
