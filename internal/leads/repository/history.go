package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"recruit_portal_backend/internal/leads/domain"
)

const contactColumns = `id, lead_id, contact_type, outcome,
	has_funds, meets_age_requirements, has_academic_records, passport_valid,
	english_level_ok, family_support, understands_program, timeline_realistic,
	no_visa_refusals, committed_to_intake, contacted_at`

func scanContact(row pgx.Row) (domain.ContactHistoryEntry, error) {
	var e domain.ContactHistoryEntry
	err := row.Scan(
		&e.ID, &e.LeadID, &e.ContactType, &e.Outcome,
		&e.Readiness.HasFunds, &e.Readiness.MeetsAgeRequirements, &e.Readiness.HasAcademicRecords,
		&e.Readiness.PassportValid, &e.Readiness.EnglishLevelOK, &e.Readiness.FamilySupport,
		&e.Readiness.UnderstandsProgram, &e.Readiness.TimelineRealistic, &e.Readiness.NoVisaRefusals,
		&e.Readiness.CommittedToIntake, &e.ContactedAt,
	)
	return e, err
}

type CreateContactParams struct {
	LeadID      uuid.UUID
	ContactType string
	Outcome     string
	Readiness   domain.Readiness
	ContactedAt time.Time
}

func (r *Repository) InsertContactHistory(ctx context.Context, params CreateContactParams) (domain.ContactHistoryEntry, error) {
	at := params.ContactedAt
	if at.IsZero() {
		at = time.Now()
	}
	rd := params.Readiness
	entry, err := scanContact(r.pool.QueryRow(ctx, `
		INSERT INTO contact_history (
			lead_id, contact_type, outcome,
			has_funds, meets_age_requirements, has_academic_records, passport_valid,
			english_level_ok, family_support, understands_program, timeline_realistic,
			no_visa_refusals, committed_to_intake, contacted_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING `+contactColumns+`
	`,
		params.LeadID, params.ContactType, params.Outcome,
		rd.HasFunds, rd.MeetsAgeRequirements, rd.HasAcademicRecords, rd.PassportValid,
		rd.EnglishLevelOK, rd.FamilySupport, rd.UnderstandsProgram, rd.TimelineRealistic,
		rd.NoVisaRefusals, rd.CommittedToIntake, at,
	))
	if err != nil {
		return domain.ContactHistoryEntry{}, err
	}
	if err := r.touchLastContact(ctx, params.LeadID, at); err != nil {
		return domain.ContactHistoryEntry{}, err
	}
	return entry, nil
}

func (r *Repository) ListContactHistory(ctx context.Context, filter HistoryFilter) ([]domain.ContactHistoryEntry, error) {
	query := strings.Builder{}
	query.WriteString(`SELECT ` + contactColumns + ` FROM contact_history`)

	conditions, args := timeWindowConditions(filter.LeadIDs, "contacted_at", filter.From, filter.To)
	if len(conditions) > 0 {
		query.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}
	query.WriteString(" ORDER BY contacted_at ASC")

	rows, err := r.pool.Query(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]domain.ContactHistoryEntry, 0)
	for rows.Next() {
		entry, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (r *Repository) ListMessageEvents(ctx context.Context, filter MessageFilter) ([]domain.MessageEvent, error) {
	query := strings.Builder{}
	query.WriteString(`SELECT id, lead_id, direction, status, sent_at FROM message_events`)

	conditions, args := timeWindowConditions(filter.LeadIDs, "sent_at", filter.From, filter.To)
	if len(conditions) > 0 {
		query.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}
	query.WriteString(" ORDER BY sent_at ASC")

	rows, err := r.pool.Query(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]domain.MessageEvent, 0)
	for rows.Next() {
		var m domain.MessageEvent
		if err := rows.Scan(&m.ID, &m.LeadID, &m.Direction, &m.Status, &m.SentAt); err != nil {
			return nil, err
		}
		events = append(events, m)
	}
	return events, rows.Err()
}

func timeWindowConditions(leadIDs []uuid.UUID, tsColumn string, from, to *time.Time) ([]string, []any) {
	conditions := make([]string, 0, 3)
	args := make([]any, 0, 3)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if len(leadIDs) > 0 {
		conditions = append(conditions, "lead_id = ANY("+arg(leadIDs)+")")
	}
	if from != nil {
		conditions = append(conditions, tsColumn+" >= "+arg(*from))
	}
	if to != nil {
		conditions = append(conditions, tsColumn+" < "+arg(*to))
	}
	return conditions, args
}
