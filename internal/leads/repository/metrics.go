package repository

import (
	"context"

	"recruit_portal_backend/internal/leads/domain"
)

// CountsByStatus returns how many leads sit in each pipeline stage.
func (r *Repository) CountsByStatus(ctx context.Context) (map[domain.ContactStatus]int, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT contact_status, COUNT(*)
		FROM leads
		GROUP BY contact_status
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.ContactStatus]int)
	for rows.Next() {
		var status domain.ContactStatus
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, rows.Err()
}
