// Package insights computes funnel and cohort aggregates over lead
// collections. Everything here is pure: folds over slices, no I/O.
package insights

import (
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"

	"recruit_portal_backend/internal/leads/domain"
)

// percent returns the integer-rounded percentage part/whole, 0 when whole is 0.
func percent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// CountryMetrics summarizes one country cohort.
type CountryMetrics struct {
	Country        string         `json:"country"`
	Total          int            `json:"total"`
	StatusCounts   map[string]int `json:"statusCounts"`
	ContactRate    int            `json:"contactRate"`
	InterestRate   int            `json:"interestRate"`
	ConversionRate int            `json:"conversionRate"`
	AvgLeadScore   float64        `json:"avgLeadScore"`
}

// ByCountry folds leads into per-country funnel metrics. The per-status
// counts of each cohort sum to the cohort's total.
func ByCountry(leads []domain.Lead) []CountryMetrics {
	type acc struct {
		total      int
		status     map[string]int
		contacted  int
		interested int
		converted  int
		scoreSum   int
	}

	byCountry := make(map[string]*acc)
	for _, lead := range leads {
		country := lead.Country
		if country == "" {
			country = "Unknown"
		}
		a := byCountry[country]
		if a == nil {
			a = &acc{status: make(map[string]int)}
			byCountry[country] = a
		}
		a.total++
		a.status[string(lead.ContactStatus)]++
		a.scoreSum += lead.LeadScore
		if lead.ContactStatus.Reached(domain.StatusContacted) {
			a.contacted++
		}
		if lead.ContactStatus.Reached(domain.StatusInterested) {
			a.interested++
		}
		if lead.ContactStatus == domain.StatusConverted {
			a.converted++
		}
	}

	out := make([]CountryMetrics, 0, len(byCountry))
	for country, a := range byCountry {
		out = append(out, CountryMetrics{
			Country:        country,
			Total:          a.total,
			StatusCounts:   a.status,
			ContactRate:    percent(a.contacted, a.total),
			InterestRate:   percent(a.interested, a.contacted),
			ConversionRate: percent(a.converted, a.total),
			AvgLeadScore:   round1(float64(a.scoreSum) / float64(a.total)),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Country < out[j].Country
	})
	return out
}

// MethodMetrics summarizes contact attempts grouped by a history dimension
// (contact type or outcome). Leads are counted once per bucket no matter how
// many attempts they received.
type MethodMetrics struct {
	Key         string `json:"key"`
	Attempts    int    `json:"attempts"`
	Leads       int    `json:"leads"`
	SuccessRate int    `json:"successRate"`
}

// ByContactMethod groups history rows by contact type.
func ByContactMethod(entries []domain.ContactHistoryEntry, leads []domain.Lead) []MethodMetrics {
	return byHistoryDimension(entries, leads, func(e domain.ContactHistoryEntry) string {
		return normalizeKey(e.ContactType)
	})
}

// ByOutcome groups history rows by recorded outcome.
func ByOutcome(entries []domain.ContactHistoryEntry, leads []domain.Lead) []MethodMetrics {
	return byHistoryDimension(entries, leads, func(e domain.ContactHistoryEntry) string {
		return normalizeKey(e.Outcome)
	})
}

func byHistoryDimension(entries []domain.ContactHistoryEntry, leads []domain.Lead, keyOf func(domain.ContactHistoryEntry) string) []MethodMetrics {
	succeeded := make(map[uuid.UUID]bool, len(leads))
	for _, lead := range leads {
		if lead.ContactStatus.Reached(domain.StatusInterested) || lead.ContactStatus == domain.StatusConverted {
			succeeded[lead.ID] = true
		}
	}

	type acc struct {
		attempts int
		touched  map[uuid.UUID]bool
	}
	buckets := make(map[string]*acc)
	for _, e := range entries {
		key := keyOf(e)
		a := buckets[key]
		if a == nil {
			a = &acc{touched: make(map[uuid.UUID]bool)}
			buckets[key] = a
		}
		a.attempts++
		a.touched[e.LeadID] = true
	}

	out := make([]MethodMetrics, 0, len(buckets))
	for key, a := range buckets {
		won := 0
		for id := range a.touched {
			if succeeded[id] {
				won++
			}
		}
		out = append(out, MethodMetrics{
			Key:         key,
			Attempts:    a.attempts,
			Leads:       len(a.touched),
			SuccessRate: percent(won, len(a.touched)),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Leads != out[j].Leads {
			return out[i].Leads > out[j].Leads
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// SourceMetrics summarizes one referral source.
type SourceMetrics struct {
	Source         string  `json:"source"`
	Total          int     `json:"total"`
	Conversions    int     `json:"conversions"`
	ConversionRate int     `json:"conversionRate"`
	AvgLeadScore   float64 `json:"avgLeadScore"`
}

// BySource folds leads by referral source.
func BySource(leads []domain.Lead) []SourceMetrics {
	type acc struct {
		total, converted, scoreSum int
	}
	bySource := make(map[string]*acc)
	for _, lead := range leads {
		source := "unknown"
		if lead.ReferralSource != nil && *lead.ReferralSource != "" {
			source = normalizeKey(*lead.ReferralSource)
		}
		a := bySource[source]
		if a == nil {
			a = &acc{}
			bySource[source] = a
		}
		a.total++
		a.scoreSum += lead.LeadScore
		if lead.ContactStatus == domain.StatusConverted {
			a.converted++
		}
	}

	out := make([]SourceMetrics, 0, len(bySource))
	for source, a := range bySource {
		out = append(out, SourceMetrics{
			Source:         source,
			Total:          a.total,
			Conversions:    a.converted,
			ConversionRate: percent(a.converted, a.total),
			AvgLeadScore:   round1(float64(a.scoreSum) / float64(a.total)),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Source < out[j].Source
	})
	return out
}

// IntakeMetrics summarizes one intended intake cohort.
type IntakeMetrics struct {
	Intake         string `json:"intake"`
	Total          int    `json:"total"`
	Interested     int    `json:"interested"`
	Qualified      int    `json:"qualified"`
	Converted      int    `json:"converted"`
	Ready          int    `json:"ready"`
	ConversionRate int    `json:"conversionRate"`
}

const unspecifiedIntake = "unspecified"

// minUnspecifiedBucket keeps tiny catch-all buckets out of the report;
// an "unspecified" cohort of a handful of leads is noise, not signal.
const minUnspecifiedBucket = 5

// ByIntake folds leads by their stated intake label. ready holds how many
// leads in the cohort pass the readiness bar (see ReadyToProceed).
func ByIntake(leads []domain.Lead, history []domain.ContactHistoryEntry) []IntakeMetrics {
	ready := readyLeadSet(leads, history)

	type acc struct {
		total, interested, qualified, converted, ready int
	}
	byIntake := make(map[string]*acc)
	for _, lead := range leads {
		label := normalizeKey(lead.Intake)
		if label == "" {
			label = unspecifiedIntake
		}
		a := byIntake[label]
		if a == nil {
			a = &acc{}
			byIntake[label] = a
		}
		a.total++
		if lead.ContactStatus.Reached(domain.StatusInterested) {
			a.interested++
		}
		if lead.ContactStatus.Reached(domain.StatusQualified) {
			a.qualified++
		}
		if lead.ContactStatus == domain.StatusConverted {
			a.converted++
		}
		if ready[lead.ID] {
			a.ready++
		}
	}

	out := make([]IntakeMetrics, 0, len(byIntake))
	for label, a := range byIntake {
		if label == unspecifiedIntake && a.total <= minUnspecifiedBucket {
			continue
		}
		out = append(out, IntakeMetrics{
			Intake:         label,
			Total:          a.total,
			Interested:     a.interested,
			Qualified:      a.qualified,
			Converted:      a.converted,
			Ready:          a.ready,
			ConversionRate: percent(a.converted, a.total),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Intake < out[j].Intake
	})
	return out
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
