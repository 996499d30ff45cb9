package exports

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"recruit_portal_backend/internal/leads/domain"
	"recruit_portal_backend/internal/leads/repository"
	"recruit_portal_backend/platform/logger"
)

type fakeLeadSource struct {
	leads  []domain.Lead
	filter repository.Filter
}

func (f *fakeLeadSource) List(_ context.Context, filter repository.Filter) ([]domain.Lead, error) {
	f.filter = filter
	return f.leads, nil
}

type fakeObjectStore struct {
	fileKey string
	data    []byte
}

func (f *fakeObjectStore) PutCSV(_ context.Context, fileKey string, data []byte) (string, time.Time, error) {
	f.fileKey = fileKey
	f.data = data
	return "https://storage.local/" + fileKey, time.Now().Add(15 * time.Minute), nil
}

func TestExportLeadsUploadsRenderedCSV(t *testing.T) {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	repo := &fakeLeadSource{leads: []domain.Lead{
		{ID: uuid.New(), Name: "Maria Garcia", Country: "Colombia", ContactStatus: domain.StatusContacted, CreatedAt: now},
		{ID: uuid.New(), Name: "Juan Perez", Country: "Dominican Republic", ContactStatus: domain.StatusConverted, CreatedAt: now},
	}}
	store := &fakeObjectStore{}

	svc := NewService(repo, store, logger.New("test"))
	svc.now = func() time.Time { return now }

	filter := repository.Filter{Country: "Colombia"}
	export, err := svc.ExportLeads(context.Background(), filter)
	if err != nil {
		t.Fatalf("ExportLeads: %v", err)
	}

	if export.Rows != 2 {
		t.Fatalf("rows = %d, want 2", export.Rows)
	}
	if export.FileKey != "leads/leads_20250601_120000.csv" {
		t.Fatalf("file key = %q", export.FileKey)
	}
	if export.URL != "https://storage.local/"+export.FileKey {
		t.Fatalf("url = %q", export.URL)
	}
	if repo.filter.Country != "Colombia" {
		t.Fatalf("filter not passed through: %+v", repo.filter)
	}

	body := string(store.data)
	if !strings.HasPrefix(body, "id,name,email,phone,country,contact_status") {
		t.Fatalf("csv header missing:\n%s", body)
	}
	if !strings.Contains(body, "Maria Garcia") || !strings.Contains(body, "Juan Perez") {
		t.Fatalf("csv rows missing:\n%s", body)
	}
}

func TestExportCountryMetrics(t *testing.T) {
	leads := make([]domain.Lead, 0, 5)
	for i := 0; i < 5; i++ {
		status := domain.StatusContacted
		if i == 0 {
			status = domain.StatusConverted
		}
		leads = append(leads, domain.Lead{ID: uuid.New(), Country: "Colombia", ContactStatus: status})
	}
	store := &fakeObjectStore{}

	svc := NewService(&fakeLeadSource{leads: leads}, store, logger.New("test"))

	export, err := svc.ExportCountryMetrics(context.Background())
	if err != nil {
		t.Fatalf("ExportCountryMetrics: %v", err)
	}
	if export.Rows != 1 {
		t.Fatalf("rows = %d, want the single Colombia cohort", export.Rows)
	}
	if !strings.Contains(string(store.data), "Colombia") {
		t.Fatalf("csv missing cohort row:\n%s", store.data)
	}
}
