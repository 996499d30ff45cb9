package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func capturingLogger() (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return &Logger{Logger: slog.New(slog.NewTextHandler(&buf, nil))}, &buf
}

func TestTaskEventLogsDetailOnSuccess(t *testing.T) {
	log, buf := capturingLogger()

	log.TaskEvent("leads.rescore", true, "updated=5 total=5")

	out := buf.String()
	if !strings.Contains(out, "task=leads.rescore") {
		t.Fatalf("log line missing task: %q", out)
	}
	if !strings.Contains(out, `detail="updated=5 total=5"`) {
		t.Fatalf("log line missing detail: %q", out)
	}
}

func TestTaskEventOmitsEmptyDetail(t *testing.T) {
	log, buf := capturingLogger()

	log.TaskEvent("insights.digest", false, "")

	if strings.Contains(buf.String(), "detail=") {
		t.Fatalf("empty detail should be omitted: %q", buf.String())
	}
}
