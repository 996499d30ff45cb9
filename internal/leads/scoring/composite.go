package scoring

import (
	"time"

	"recruit_portal_backend/internal/leads/domain"
)

// Breakdown carries every sub-score alongside the clamped total so callers
// can see why a lead landed in its bucket.
type Breakdown struct {
	NameScore    int                `json:"nameScore"`
	EmailScore   int                `json:"emailScore"`
	PhoneScore   int                `json:"phoneScore"`
	RecencyScore int                `json:"recencyScore"`
	IntakeScore  int                `json:"intakeScore"`
	Total        int                `json:"total"`
	Quality      domain.QualityTier `json:"quality"`
	Country      string             `json:"country"`
	EmailValid   bool               `json:"emailValid"`
	PhoneValid   bool               `json:"phoneValid"`
}

// CalculateBreakdown runs every field scorer against the lead. The raw sum
// can reach 115 (the recency stub pins its factor at 5); the total is
// clamped to 0-100 and the quality tier derives from the clamped value.
func CalculateBreakdown(lead domain.Lead, now time.Time) Breakdown {
	nameScore := ScoreName(lead.Name, lead.Email)
	emailScore, emailValid := ScoreEmail(lead.Email)
	phoneScore, phoneValid, country := ScorePhone(lead.Phone)
	recencyScore := ScoreRecency()
	intakeScore := ScoreIntakeProximity(lead.Intake, now)

	total := clampInt(nameScore+emailScore+phoneScore+recencyScore+intakeScore, 0, 100)

	return Breakdown{
		NameScore:    nameScore,
		EmailScore:   emailScore,
		PhoneScore:   phoneScore,
		RecencyScore: recencyScore,
		IntakeScore:  intakeScore,
		Total:        total,
		Quality:      domain.QualityForScore(total),
		Country:      country,
		EmailValid:   emailValid,
		PhoneValid:   phoneValid,
	}
}
