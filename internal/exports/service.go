package exports

import (
	"context"
	"fmt"
	"time"

	"recruit_portal_backend/internal/leads/domain"
	"recruit_portal_backend/internal/leads/insights"
	"recruit_portal_backend/internal/leads/repository"
	"recruit_portal_backend/platform/apperr"
	"recruit_portal_backend/platform/logger"
)

// Export describes one finished export file.
type Export struct {
	FileKey   string    `json:"fileKey"`
	URL       string    `json:"url"`
	Rows      int       `json:"rows"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// LeadSource is the slice of the lead store the export service reads.
type LeadSource interface {
	List(ctx context.Context, filter repository.Filter) ([]domain.Lead, error)
}

// ObjectStore uploads a rendered file and hands back a download URL.
type ObjectStore interface {
	PutCSV(ctx context.Context, fileKey string, data []byte) (string, time.Time, error)
}

// Service renders and stores exports.
type Service struct {
	repo    LeadSource
	storage ObjectStore
	log     *logger.Logger
	now     func() time.Time
}

func NewService(repo LeadSource, storage ObjectStore, log *logger.Logger) *Service {
	return &Service{repo: repo, storage: storage, log: log, now: time.Now}
}

// ExportLeads writes the filtered lead list to a CSV in object storage.
func (s *Service) ExportLeads(ctx context.Context, filter repository.Filter) (Export, error) {
	leads, err := s.repo.List(ctx, filter)
	if err != nil {
		s.log.DatabaseError("list_leads_for_export", err)
		return Export{}, apperr.Wrap(apperr.KindInternal, "failed to load leads", err)
	}

	data, err := RenderLeadsCSV(leads)
	if err != nil {
		return Export{}, apperr.Wrap(apperr.KindInternal, "failed to render export", err)
	}

	return s.upload(ctx, "leads", data, len(leads))
}

// ExportCountryMetrics writes the per-country cohort table to a CSV.
func (s *Service) ExportCountryMetrics(ctx context.Context) (Export, error) {
	leads, err := s.repo.List(ctx, repository.Filter{})
	if err != nil {
		s.log.DatabaseError("list_leads_for_export", err)
		return Export{}, apperr.Wrap(apperr.KindInternal, "failed to load leads", err)
	}

	metrics := insights.ByCountry(leads)
	data, err := RenderCountryCSV(metrics)
	if err != nil {
		return Export{}, apperr.Wrap(apperr.KindInternal, "failed to render export", err)
	}

	return s.upload(ctx, "countries", data, len(metrics))
}

func (s *Service) upload(ctx context.Context, kind string, data []byte, rows int) (Export, error) {
	fileKey := fmt.Sprintf("%s/%s_%s.csv", kind, kind, s.now().Format("20060102_150405"))
	url, expiresAt, err := s.storage.PutCSV(ctx, fileKey, data)
	if err != nil {
		s.log.Error("export upload failed", "file_key", fileKey, "error", err)
		return Export{}, apperr.Wrap(apperr.KindInternal, "failed to store export", err)
	}
	return Export{FileKey: fileKey, URL: url, Rows: rows, ExpiresAt: expiresAt}, nil
}
