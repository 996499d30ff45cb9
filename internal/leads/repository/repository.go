// Package repository is the pgx-backed lead store. Services depend on the
// segregated interfaces in interface.go, never on this type directly.
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"recruit_portal_backend/internal/leads/domain"
)

var ErrNotFound = errors.New("lead not found")

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const leadColumns = `id, name, email, phone, country, contact_status, lead_score, lead_quality,
	intake, barcelona_timeline_months, referral_source, referral_campaign, created_at, last_contact_date`

func scanLead(row pgx.Row) (domain.Lead, error) {
	var lead domain.Lead
	err := row.Scan(
		&lead.ID, &lead.Name, &lead.Email, &lead.Phone, &lead.Country,
		&lead.ContactStatus, &lead.LeadScore, &lead.LeadQuality,
		&lead.Intake, &lead.BarcelonaTimelineMonths,
		&lead.ReferralSource, &lead.ReferralCampaign,
		&lead.CreatedAt, &lead.LastContactDate,
	)
	return lead, err
}

type CreateLeadParams struct {
	Name                    string
	Email                   string
	Phone                   string
	Country                 string
	Intake                  string
	BarcelonaTimelineMonths *int
	ReferralSource          *string
	ReferralCampaign        *string
}

func (r *Repository) Create(ctx context.Context, params CreateLeadParams) (domain.Lead, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO leads (
			name, email, phone, country, contact_status,
			intake, barcelona_timeline_months, referral_source, referral_campaign
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+leadColumns+`
	`,
		params.Name, params.Email, params.Phone, params.Country, domain.StatusNotContacted,
		params.Intake, params.BarcelonaTimelineMonths, params.ReferralSource, params.ReferralCampaign,
	)
	return scanLead(row)
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (domain.Lead, error) {
	lead, err := scanLead(r.pool.QueryRow(ctx, `
		SELECT `+leadColumns+` FROM leads WHERE id = $1
	`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Lead{}, ErrNotFound
	}
	return lead, err
}

func (r *Repository) List(ctx context.Context, filter Filter) ([]domain.Lead, error) {
	query := strings.Builder{}
	query.WriteString(`SELECT ` + leadColumns + ` FROM leads`)

	conditions := make([]string, 0, 5)
	args := make([]any, 0, 5)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if len(filter.IDs) > 0 {
		conditions = append(conditions, "id = ANY("+arg(filter.IDs)+")")
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		conditions = append(conditions, "contact_status = ANY("+arg(statuses)+")")
	}
	if filter.Country != "" {
		conditions = append(conditions, "country = "+arg(filter.Country))
	}
	if filter.From != nil {
		conditions = append(conditions, "created_at >= "+arg(*filter.From))
	}
	if filter.To != nil {
		conditions = append(conditions, "created_at < "+arg(*filter.To))
	}

	if len(conditions) > 0 {
		query.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}
	query.WriteString(" ORDER BY created_at DESC")
	if filter.Limit > 0 {
		query.WriteString(" LIMIT " + arg(filter.Limit))
	}

	rows, err := r.pool.Query(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := make([]domain.Lead, 0)
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}

func (r *Repository) BatchGet(ctx context.Context, ids []uuid.UUID) ([]domain.Lead, error) {
	if len(ids) == 0 {
		return []domain.Lead{}, nil
	}
	return r.List(ctx, Filter{IDs: ids})
}

func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ContactStatus) (domain.Lead, error) {
	lead, err := scanLead(r.pool.QueryRow(ctx, `
		UPDATE leads SET contact_status = $2, last_contact_date = now()
		WHERE id = $1
		RETURNING `+leadColumns+`
	`, id, status))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Lead{}, ErrNotFound
	}
	return lead, err
}

// UpdateScore writes back a recalculated score and quality bucket.
func (r *Repository) UpdateScore(ctx context.Context, id uuid.UUID, score int, quality string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE leads SET lead_score = $2, lead_quality = $3 WHERE id = $1
	`, id, score, quality)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// touchLastContact keeps the denormalized last_contact_date current when a
// contact-history row lands.
func (r *Repository) touchLastContact(ctx context.Context, leadID uuid.UUID, at time.Time) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE leads SET last_contact_date = GREATEST(COALESCE(last_contact_date, $2), $2)
		WHERE id = $1
	`, leadID, at)
	return err
}
