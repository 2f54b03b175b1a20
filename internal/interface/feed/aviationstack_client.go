package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"departure-board-service/internal/domain/entity"
	"departure-board-service/internal/domain/repository"
	"departure-board-service/pkg/logger"

	"github.com/klauspost/compress/gzhttp"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// FeedError is returned for a non-2xx response or an error envelope from
// the feed
type FeedError struct {
	StatusCode int
	Code       string
	Body       string
}

// StatusSummary describes the failure without any upstream body text
func (e *FeedError) StatusSummary() string {
	if e.Code != "" {
		return fmt.Sprintf("Departure feed returned HTTP %d (%s)", e.StatusCode, e.Code)
	}
	return fmt.Sprintf("Departure feed returned HTTP %d", e.StatusCode)
}

func (e *FeedError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("feed returned status %d (%s): %s", e.StatusCode, e.Code, e.Body)
	}
	return fmt.Sprintf("feed returned status %d: %s", e.StatusCode, e.Body)
}

// Options configures the feed client
type Options struct {
	BaseURL           string
	AccessKey         string
	PageLimit         int
	MaxPages          int
	Timeout           time.Duration
	RequestsPerSecond float64
	// CacheTTL is how long the last good snapshot may stand in for a failed
	// fetch; zero disables the fallback
	CacheTTL time.Duration
}

// AviationStackClient fetches departures from the flights endpoint, one
// page at a time
type AviationStackClient struct {
	httpClient *http.Client
	baseURL    string
	accessKey  string
	pageLimit  int
	maxPages   int
	limiter    *rate.Limiter
	cache      *cache.Cache
	logger     logger.Logger
}

// NewAviationStackClient creates a new feed client
func NewAviationStackClient(opts Options, logger logger.Logger) repository.FeedRepository {
	limit := rate.Inf
	if opts.RequestsPerSecond > 0 {
		limit = rate.Limit(opts.RequestsPerSecond)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	var snapshots *cache.Cache
	if opts.CacheTTL > 0 {
		snapshots = cache.New(opts.CacheTTL, 2*opts.CacheTTL)
	}

	return &AviationStackClient{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: gzhttp.Transport(http.DefaultTransport),
		},
		baseURL:   opts.BaseURL,
		accessKey: opts.AccessKey,
		pageLimit: max(opts.PageLimit, 1),
		maxPages:  max(opts.MaxPages, 1),
		limiter:   rate.NewLimiter(limit, 1),
		cache:     snapshots,
		logger:    logger,
	}
}

// FetchDepartures returns every record departing airportCode, following
// pagination up to the configured page cap. When the feed fails and a good
// snapshot younger than the cache TTL exists, that snapshot is returned
// instead of the error.
func (c *AviationStackClient) FetchDepartures(ctx context.Context, airportCode string) ([]entity.FeedRecord, error) {
	cacheKey := "departures:" + airportCode

	records, err := c.fetchAll(ctx, airportCode)
	if err != nil {
		if snap, ok := c.lastGood(cacheKey); ok && ctx.Err() == nil {
			c.logger.Warn("Feed failed, serving last good snapshot",
				"airport", airportCode,
				"age", time.Since(snap.fetchedAt).Round(time.Second).String(),
				"error", err)
			return snap.records, nil
		}
		return nil, err
	}

	if c.cache != nil {
		c.cache.SetDefault(cacheKey, snapshot{records: records, fetchedAt: time.Now()})
	}
	return records, nil
}

// snapshot is the last complete fetch for one airport
type snapshot struct {
	records   []entity.FeedRecord
	fetchedAt time.Time
}

func (c *AviationStackClient) lastGood(cacheKey string) (snapshot, bool) {
	if c.cache == nil {
		return snapshot{}, false
	}
	cached, ok := c.cache.Get(cacheKey)
	if !ok {
		return snapshot{}, false
	}
	return cached.(snapshot), true
}

func (c *AviationStackClient) fetchAll(ctx context.Context, airportCode string) ([]entity.FeedRecord, error) {
	var records []entity.FeedRecord
	offset := 0

	for page := 0; page < c.maxPages; page++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("failed to wait for rate limiter: %w", err)
		}

		result, err := c.fetchPage(ctx, airportCode, offset)
		if err != nil {
			return nil, err
		}

		records = append(records, result.Data...)
		offset += len(result.Data)

		c.logger.Debug("Fetched feed page",
			"airport", airportCode,
			"page", page,
			"count", len(result.Data),
			"total", result.Pagination.Total)

		if len(result.Data) == 0 || offset >= result.Pagination.Total {
			break
		}
		if page == c.maxPages-1 {
			c.logger.Warn("Stopped paging at page cap",
				"airport", airportCode,
				"fetched", offset,
				"total", result.Pagination.Total)
		}
	}

	return records, nil
}

func (c *AviationStackClient) fetchPage(ctx context.Context, airportCode string, offset int) (*entity.FeedPage, error) {
	query := url.Values{}
	query.Set("access_key", c.accessKey)
	query.Set("dep_iata", airportCode)
	query.Set("limit", strconv.Itoa(c.pageLimit))
	query.Set("offset", strconv.Itoa(offset))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/flights?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", withoutURL(err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", withoutURL(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", withoutURL(err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		feedErr := &FeedError{StatusCode: resp.StatusCode, Body: c.redact(string(body))}
		var envelope entity.FeedPage
		if json.Unmarshal(body, &envelope) == nil && envelope.Error != nil {
			feedErr.Code = envelope.Error.Code
			feedErr.Body = c.redact(envelope.Error.Message)
		}
		return nil, feedErr
	}

	var page entity.FeedPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("failed to decode feed response: %w", err)
	}
	if page.Error != nil {
		return nil, &FeedError{StatusCode: resp.StatusCode, Code: page.Error.Code, Body: c.redact(page.Error.Message)}
	}

	return &page, nil
}

// redact masks the access key in upstream text that echoes the request
func (c *AviationStackClient) redact(text string) string {
	if c.accessKey == "" {
		return text
	}
	return strings.ReplaceAll(text, c.accessKey, "[redacted]")
}

// withoutURL drops the request URL from a *url.Error. The query carries the
// access key and must not end up in logs or on a board.
func withoutURL(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return fmt.Errorf("%s /flights: %w", uerr.Op, uerr.Err)
	}
	return err
}
