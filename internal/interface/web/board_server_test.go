package web

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"departure-board-service/internal/domain/entity"
	"departure-board-service/pkg/logger"
	"departure-board-service/pkg/metrics"
	"departure-board-service/templates"
)

func newTestServer(t *testing.T) (*BoardServer, *httptest.Server) {
	t.Helper()
	renderer, err := templates.NewBoardRenderer(0)
	if err != nil {
		t.Fatalf("NewBoardRenderer failed: %v", err)
	}
	m := metrics.NewMetrics("test")
	m.BoardRuns.WithLabelValues("success").Inc()

	s := NewBoardServer(renderer, m, logger.NewNopLogger(), "test")
	ts := httptest.NewServer(s.Routes())
	t.Cleanup(ts.Close)
	return s, ts
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s failed: %v", url, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp, string(body)
}

func TestBoardServer_NotReady(t *testing.T) {
	_, ts := newTestServer(t)

	for _, path := range []string{"/", "/api/departures"} {
		resp, _ := get(t, ts.URL+path)
		if resp.StatusCode != http.StatusServiceUnavailable {
			t.Errorf("%s - expected 503 before first board, got %d", path, resp.StatusCode)
		}
	}
}

func TestBoardServer_ServesLatestBoard(t *testing.T) {
	s, ts := newTestServer(t)

	board := &entity.Board{
		RunID:       "run-1",
		AirportCode: "HND",
		Language:    entity.LangEn,
		Rows: []entity.BoardRow{{
			ScheduledTime: "10:00",
			Destination:   entity.DestinationNames{Ja: "福岡", En: "Fukuoka", Zh: "福冈"},
			FlightNumber:  "NH100",
		}},
	}
	if err := s.Publish(context.Background(), board); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	resp, body := get(t, ts.URL+"/api/departures")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	var decoded entity.Board
	if err := json.Unmarshal([]byte(body), &decoded); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if len(decoded.Rows) != 1 || decoded.Rows[0].FlightNumber != "NH100" {
		t.Errorf("Unexpected board %+v", decoded)
	}

	resp, body = get(t, ts.URL+"/")
	if resp.StatusCode != http.StatusOK || !strings.Contains(body, "Fukuoka") {
		t.Errorf("Expected rendered page, got %d", resp.StatusCode)
	}
	if !strings.HasPrefix(resp.Header.Get("Content-Type"), "text/html") {
		t.Errorf("Unexpected content type %s", resp.Header.Get("Content-Type"))
	}
}

func TestBoardServer_HealthAndMetrics(t *testing.T) {
	_, ts := newTestServer(t)

	resp, body := get(t, ts.URL+"/health")
	if resp.StatusCode != http.StatusOK || !strings.Contains(body, `"status":"ok"`) {
		t.Errorf("Unexpected health response %d %s", resp.StatusCode, body)
	}

	resp, body = get(t, ts.URL+"/metrics")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	if !strings.Contains(body, `test_board_runs_total{outcome="success"} 1`) {
		t.Errorf("Expected board run counter in metrics output")
	}
}
