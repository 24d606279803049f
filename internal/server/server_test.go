package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/zendesk-jakelunn/local-amazon-connect-ccp-log-parser/internal/engine"
	"github.com/zendesk-jakelunn/local-amazon-connect-ccp-log-parser/internal/model"
)

func testReport(total int) *model.Report {
	return &model.Report{
		SourcePath:   "agent-log.txt",
		TotalEntries: total,
		RecordCount:  total,
		LevelCounts:  map[string]int{"LOG": total},
	}
}

func TestHubPublishAndSubscribe(t *testing.T) {
	hub := newReportHub(testReport(1))

	sub := hub.Subscribe()
	updated := testReport(2)
	hub.Publish(updated)

	select {
	case got := <-sub:
		if got.TotalEntries != 2 {
			t.Errorf("expected the published report, got %d entries", got.TotalEntries)
		}
	default:
		t.Fatal("expected a report on the subscriber channel")
	}

	if hub.Current() != updated {
		t.Error("Current must return the latest published report")
	}
}

func TestHubDropsForSlowSubscriber(t *testing.T) {
	hub := newReportHub(testReport(1))
	hub.Subscribe() // never drained

	for i := 0; i < subscriberBuffer+3; i++ {
		hub.Publish(testReport(i))
	}

	if hub.Dropped() != 3 {
		t.Errorf("expected 3 dropped refreshes, got %d", hub.Dropped())
	}
}

func TestHubUnsubscribe(t *testing.T) {
	hub := newReportHub(testReport(1))
	sub := hub.Subscribe()
	hub.Unsubscribe(sub)

	if _, ok := <-sub; ok {
		t.Error("expected the channel to be closed after Unsubscribe")
	}

	// Publishing after unsubscribe must not panic or drop.
	hub.Publish(testReport(2))
	if hub.Dropped() != 0 {
		t.Errorf("expected no drops, got %d", hub.Dropped())
	}
}

func TestAPIReport(t *testing.T) {
	s := New(testReport(7), engine.DefaultConfig(), "0")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/report", nil)
	s.engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var rep model.Report
	if err := json.Unmarshal(w.Body.Bytes(), &rep); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if rep.TotalEntries != 7 {
		t.Errorf("expected 7 entries in the served report, got %d", rep.TotalEntries)
	}
}

func TestHealthz(t *testing.T) {
	s := New(testReport(3), engine.DefaultConfig(), "0")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	s.engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status ok, got %v", body["status"])
	}
}

func TestDashboardAssets(t *testing.T) {
	s := New(testReport(0), engine.DefaultConfig(), "0")

	for path, contentType := range map[string]string{
		"/":          "text/html; charset=utf-8",
		"/style.css": "text/css; charset=utf-8",
		"/app.js":    "application/javascript; charset=utf-8",
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		s.engine.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, w.Code)
		}
		if got := w.Header().Get("Content-Type"); got != contentType {
			t.Errorf("%s: expected content type %q, got %q", path, contentType, got)
		}
	}
}
