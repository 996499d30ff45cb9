package exports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"recruit_portal_backend/internal/leads/domain"
	"recruit_portal_backend/internal/leads/insights"
)

var leadHeader = []string{
	"id", "name", "email", "phone", "country", "contact_status",
	"lead_score", "lead_quality", "intake", "referral_source", "created_at", "last_contact_date",
}

// RenderLeadsCSV writes the lead collection as CSV.
func RenderLeadsCSV(leads []domain.Lead) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(leadHeader); err != nil {
		return nil, err
	}
	for _, l := range leads {
		source := ""
		if l.ReferralSource != nil {
			source = *l.ReferralSource
		}
		lastContact := ""
		if l.LastContactDate != nil {
			lastContact = l.LastContactDate.Format(time.RFC3339)
		}
		record := []string{
			l.ID.String(), l.Name, l.Email, l.Phone, l.Country, string(l.ContactStatus),
			strconv.Itoa(l.LeadScore), string(l.LeadQuality), l.Intake, source,
			l.CreatedAt.Format(time.RFC3339), lastContact,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// RenderCountryCSV writes the per-country cohort table as CSV.
func RenderCountryCSV(metrics []insights.CountryMetrics) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"country", "total", "contact_rate", "interest_rate", "conversion_rate", "avg_lead_score"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, m := range metrics {
		record := []string{
			m.Country,
			strconv.Itoa(m.Total),
			strconv.Itoa(m.ContactRate),
			strconv.Itoa(m.InterestRate),
			strconv.Itoa(m.ConversionRate),
			fmt.Sprintf("%.1f", m.AvgLeadScore),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
