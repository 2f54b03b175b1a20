package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"departure-board-service/internal/domain/entity"
	"departure-board-service/pkg/logger"

	"github.com/klauspost/compress/gzhttp"
)

func pagedServer(t *testing.T, total int, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		q := r.URL.Query()
		if r.URL.Path != "/flights" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		if q.Get("access_key") != "key" || q.Get("dep_iata") != "HND" {
			t.Errorf("Unexpected query %s", r.URL.RawQuery)
		}
		limit, _ := strconv.Atoi(q.Get("limit"))
		offset, _ := strconv.Atoi(q.Get("offset"))

		page := entity.FeedPage{Pagination: entity.FeedPagination{Limit: limit, Offset: offset, Total: total}}
		for i := offset; i < total && i < offset+limit; i++ {
			page.Data = append(page.Data, entity.FeedRecord{
				FlightStatus: "scheduled",
				Flight:       entity.FeedFlight{IATA: fmt.Sprintf("NH%d", 100+i)},
			})
		}
		page.Pagination.Count = len(page.Data)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(page)
	})
	return httptest.NewServer(gzhttp.GzipHandler(handler))
}

func TestAviationStackClient_FollowsPagination(t *testing.T) {
	var hits atomic.Int32
	server := pagedServer(t, 5, &hits)
	defer server.Close()

	client := NewAviationStackClient(Options{
		BaseURL:   server.URL,
		AccessKey: "key",
		PageLimit: 2,
		MaxPages:  10,
	}, logger.NewNopLogger())

	records, err := client.FetchDepartures(context.Background(), "HND")
	if err != nil {
		t.Fatalf("FetchDepartures failed: %v", err)
	}
	if len(records) != 5 {
		t.Errorf("Expected 5 records, got %d", len(records))
	}
	if hits.Load() != 3 {
		t.Errorf("Expected 3 page requests, got %d", hits.Load())
	}
	if records[4].Flight.IATA != "NH104" {
		t.Errorf("Expected records in feed order, got %s last", records[4].Flight.IATA)
	}
}

func TestAviationStackClient_PageCap(t *testing.T) {
	var hits atomic.Int32
	server := pagedServer(t, 50, &hits)
	defer server.Close()

	client := NewAviationStackClient(Options{
		BaseURL:   server.URL,
		AccessKey: "key",
		PageLimit: 10,
		MaxPages:  2,
	}, logger.NewNopLogger())

	records, err := client.FetchDepartures(context.Background(), "HND")
	if err != nil {
		t.Fatalf("FetchDepartures failed: %v", err)
	}
	if len(records) != 20 || hits.Load() != 2 {
		t.Errorf("Expected 20 records in 2 pages, got %d in %d", len(records), hits.Load())
	}
}

// flakyServer serves a fixed page until failing is set, then returns 503
func flakyServer(t *testing.T, failing *atomic.Bool, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if failing.Load() {
			http.Error(w, "maintenance", http.StatusServiceUnavailable)
			return
		}
		page := entity.FeedPage{Pagination: entity.FeedPagination{Total: 3}}
		for i := 0; i < 3; i++ {
			page.Data = append(page.Data, entity.FeedRecord{Flight: entity.FeedFlight{IATA: fmt.Sprintf("NH%d", i)}})
		}
		json.NewEncoder(w).Encode(page)
	}))
}

func TestAviationStackClient_FallsBackToLastGoodSnapshot(t *testing.T) {
	var failing atomic.Bool
	var hits atomic.Int32
	server := flakyServer(t, &failing, &hits)
	defer server.Close()

	client := NewAviationStackClient(Options{
		BaseURL:   server.URL,
		AccessKey: "key",
		PageLimit: 10,
		CacheTTL:  time.Minute,
	}, logger.NewNopLogger())

	if _, err := client.FetchDepartures(context.Background(), "HND"); err != nil {
		t.Fatalf("FetchDepartures failed: %v", err)
	}

	failing.Store(true)
	records, err := client.FetchDepartures(context.Background(), "HND")
	if err != nil {
		t.Fatalf("Expected last good snapshot, got error %v", err)
	}
	if len(records) != 3 {
		t.Errorf("Expected 3 cached records, got %d", len(records))
	}
	if hits.Load() != 2 {
		t.Errorf("Expected the feed to be tried on every call, got %d requests", hits.Load())
	}

	// Another airport has no snapshot to fall back to
	if _, err := client.FetchDepartures(context.Background(), "NRT"); err == nil {
		t.Error("Expected an error without a snapshot")
	}
}

func TestAviationStackClient_HealthyFeedIsAlwaysFetched(t *testing.T) {
	var failing atomic.Bool
	var hits atomic.Int32
	server := flakyServer(t, &failing, &hits)
	defer server.Close()

	client := NewAviationStackClient(Options{
		BaseURL:   server.URL,
		AccessKey: "key",
		CacheTTL:  time.Hour,
	}, logger.NewNopLogger())

	for i := 0; i < 3; i++ {
		if _, err := client.FetchDepartures(context.Background(), "HND"); err != nil {
			t.Fatalf("FetchDepartures failed: %v", err)
		}
	}
	if hits.Load() != 3 {
		t.Errorf("Expected 3 upstream requests, got %d", hits.Load())
	}
}

func TestAviationStackClient_NoFallbackWithoutTTL(t *testing.T) {
	var failing atomic.Bool
	var hits atomic.Int32
	server := flakyServer(t, &failing, &hits)
	defer server.Close()

	client := NewAviationStackClient(Options{BaseURL: server.URL, AccessKey: "key"}, logger.NewNopLogger())
	if _, err := client.FetchDepartures(context.Background(), "HND"); err != nil {
		t.Fatalf("FetchDepartures failed: %v", err)
	}

	failing.Store(true)
	_, err := client.FetchDepartures(context.Background(), "HND")
	var feedErr *FeedError
	if !errors.As(err, &feedErr) || feedErr.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("Expected a 503 FeedError, got %v", err)
	}
}

func TestAviationStackClient_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		code   string
	}{
		{"unauthorized envelope", http.StatusUnauthorized, `{"error":{"code":"invalid_access_key","message":"bad key"}}`, "invalid_access_key"},
		{"plain server error", http.StatusBadGateway, `upstream down`, ""},
		{"error envelope with 200", http.StatusOK, `{"error":{"code":"usage_limit_reached","message":"limit"}}`, "usage_limit_reached"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(test.status)
				w.Write([]byte(test.body))
			}))
			defer server.Close()

			client := NewAviationStackClient(Options{BaseURL: server.URL, AccessKey: "key"}, logger.NewNopLogger())
			_, err := client.FetchDepartures(context.Background(), "HND")

			var feedErr *FeedError
			if !errors.As(err, &feedErr) {
				t.Fatalf("Expected FeedError, got %v", err)
			}
			if feedErr.StatusCode != test.status || feedErr.Code != test.code {
				t.Errorf("Unexpected error %+v", feedErr)
			}
		})
	}
}

func TestAviationStackClient_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": [`))
	}))
	defer server.Close()

	client := NewAviationStackClient(Options{BaseURL: server.URL, AccessKey: "key"}, logger.NewNopLogger())
	if _, err := client.FetchDepartures(context.Background(), "HND"); err == nil {
		t.Error("Expected a decode error")
	}
}

func TestAviationStackClient_ErrorsNeverCarryAccessKey(t *testing.T) {
	const accessKey = "SECRET-KEY-123"

	closed := httptest.NewServer(http.NotFoundHandler())
	closed.Close()

	echoing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("denied for " + r.URL.RawQuery))
	}))
	defer echoing.Close()

	for _, baseURL := range []string{closed.URL, echoing.URL, "http://bad host"} {
		client := NewAviationStackClient(Options{BaseURL: baseURL, AccessKey: accessKey}, logger.NewNopLogger())
		_, err := client.FetchDepartures(context.Background(), "HND")
		if err == nil {
			t.Fatalf("%s - expected an error", baseURL)
		}
		if strings.Contains(err.Error(), accessKey) {
			t.Errorf("%s - access key in error: %v", baseURL, err)
		}
	}
}
