package router

import (
	"context"
	"fmt"
	"sync"

	"departure-board-service/internal/domain/entity"
	"departure-board-service/internal/usecase"
	"departure-board-service/pkg/logger"
	"departure-board-service/pkg/metrics"

	"golang.org/x/sync/errgroup"
)

// FanoutRouter publishes a finished board to every registered sink
// concurrently
type FanoutRouter struct {
	mu      sync.RWMutex
	sinks   []usecase.BoardSink
	metrics *metrics.Metrics
	logger  logger.Logger
}

// NewFanoutRouter creates a new sink router
func NewFanoutRouter(metrics *metrics.Metrics, logger logger.Logger) *FanoutRouter {
	return &FanoutRouter{
		sinks:   make([]usecase.BoardSink, 0),
		metrics: metrics,
		logger:  logger,
	}
}

// Register registers a sink
func (r *FanoutRouter) Register(sink usecase.BoardSink) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sinks = append(r.sinks, sink)
	r.logger.Info("Registered sink", "sink", sink.Name())
}

// Publish runs every sink and waits for all of them. A failing sink does
// not stop the others; the first error is returned.
func (r *FanoutRouter) Publish(ctx context.Context, board *entity.Board) error {
	r.mu.RLock()
	sinks := make([]usecase.BoardSink, len(r.sinks))
	copy(sinks, r.sinks)
	r.mu.RUnlock()

	var g errgroup.Group
	for _, sink := range sinks {
		g.Go(func() error {
			if err := sink.Publish(ctx, board); err != nil {
				r.logger.Error("Sink failed", "sink", sink.Name(), "error", err)
				if r.metrics != nil {
					r.metrics.ErrorsCount.WithLabelValues("sink_" + sink.Name()).Inc()
				}
				return fmt.Errorf("sink %s: %w", sink.Name(), err)
			}
			r.logger.Debug("Sink published", "sink", sink.Name())
			return nil
		})
	}
	return g.Wait()
}
