package config

import (
	"testing"
	"time"

	"departure-board-service/internal/domain/entity"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("FEED_ACCESS_KEY", "secret")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.DepartureAirport != "HND" {
		t.Errorf("Expected HND, got %s", cfg.DepartureAirport)
	}
	if cfg.DelayThreshold != 5*time.Minute {
		t.Errorf("Expected 5m threshold, got %v", cfg.DelayThreshold)
	}
	if cfg.BoardLanguage != entity.LangJa {
		t.Errorf("Expected ja, got %s", cfg.BoardLanguage)
	}
	if cfg.LoopMode() {
		t.Error("Expected one-shot mode by default")
	}
	if cfg.RefreshSeconds != 300 {
		t.Errorf("Expected 300s refresh, got %d", cfg.RefreshSeconds)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("FEED_ACCESS_KEY", "secret")
	t.Setenv("DEPARTURE_AIRPORT", "nrt")
	t.Setenv("LOOP_INTERVAL", "120")
	t.Setenv("FEED_REQUESTS_PER_SECOND", "0.5")
	t.Setenv("BOARD_LANGUAGE", "EN")
	t.Setenv("FEED_BASE_URL", "http://localhost:9000/v1/")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.DepartureAirport != "NRT" {
		t.Errorf("Expected NRT, got %s", cfg.DepartureAirport)
	}
	if cfg.LoopInterval != 2*time.Minute || !cfg.LoopMode() {
		t.Errorf("Expected 2m loop, got %v", cfg.LoopInterval)
	}
	if cfg.FeedRequestsPerSecond != 0.5 {
		t.Errorf("Expected 0.5 rps, got %v", cfg.FeedRequestsPerSecond)
	}
	if cfg.BoardLanguage != entity.LangEn {
		t.Errorf("Expected en, got %s", cfg.BoardLanguage)
	}
	if cfg.FeedBaseURL != "http://localhost:9000/v1" {
		t.Errorf("Expected trailing slash trimmed, got %s", cfg.FeedBaseURL)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing access key", map[string]string{}},
		{"bad airport", map[string]string{"FEED_ACCESS_KEY": "k", "DEPARTURE_AIRPORT": "TOKYO"}},
		{"bad language", map[string]string{"FEED_ACCESS_KEY": "k", "BOARD_LANGUAGE": "fr"}},
		{"bad timezone", map[string]string{"FEED_ACCESS_KEY": "k", "BOARD_TIMEZONE": "Mars/Olympus"}},
		{"snapshot shorter than loop", map[string]string{"FEED_ACCESS_KEY": "k", "LOOP_INTERVAL": "600", "FEED_CACHE_TTL": "60"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Setenv("FEED_ACCESS_KEY", "")
			for k, v := range test.env {
				t.Setenv(k, v)
			}
			if _, err := LoadConfig(); err == nil {
				t.Error("Expected a validation error")
			}
		})
	}
}

func TestDefaultDestinations(t *testing.T) {
	table := entity.NewLocalizationTable(DefaultDestinations())

	names, ok := table.Lookup("Seoul")
	if !ok || names.Ja != "ソウル" {
		t.Errorf("Expected Seoul in defaults, got %+v", names)
	}
	for _, city := range []string{"Tokyo", "Osaka", "Sapporo"} {
		if !table.IsMultiAirport(city) || !table.SuppressesCode(city) {
			t.Errorf("Expected %s to be a suppressed multi-airport city", city)
		}
	}
}

func TestConfig_SnapshotTTL(t *testing.T) {
	t.Setenv("FEED_ACCESS_KEY", "secret")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.SnapshotTTL() != 0 {
		t.Errorf("Expected no snapshot fallback in one-shot mode, got %v", cfg.SnapshotTTL())
	}

	t.Setenv("LOOP_INTERVAL", "300")
	cfg, err = LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.SnapshotTTL() != 15*time.Minute || cfg.SnapshotTTL() < cfg.LoopInterval {
		t.Errorf("Expected a 15m snapshot outliving the 5m loop, got %v", cfg.SnapshotTTL())
	}
}
