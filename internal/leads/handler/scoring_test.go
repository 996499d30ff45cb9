package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type fakeEnqueuer struct {
	reasons []string
	err     error
}

func (f *fakeEnqueuer) EnqueueRescore(_ context.Context, reason string) error {
	f.reasons = append(f.reasons, reason)
	return f.err
}

func rescoreRequest(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/scoring/rescore", nil)
	return c, w
}

func TestRescoreQueuesTask(t *testing.T) {
	enq := &fakeEnqueuer{}
	h := &Handler{rescore: enq}

	c, w := rescoreRequest(t)
	h.Rescore(c)

	if w.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202", w.Code)
	}
	if len(enq.reasons) != 1 || enq.reasons[0] != "api" {
		t.Fatalf("enqueued = %v, want one run with reason api", enq.reasons)
	}
}

func TestRescoreWithoutQueueIsUnavailable(t *testing.T) {
	h := &Handler{}

	c, w := rescoreRequest(t)
	h.Rescore(c)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", w.Code)
	}
}
