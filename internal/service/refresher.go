package service

import (
	"context"
	"sync"
	"time"

	"github.com/lifeboardhq/lifeboard/internal/domain"
	"github.com/lifeboardhq/lifeboard/internal/pubsub"
	"go.uber.org/zap"
)

const defaultRefreshInterval = 5 * time.Minute

// Refresher polls the externally-sourced document slice on a fixed
// interval and publishes a change notification so subscribed consumers
// re-run aggregation. Fetch failures are logged and skipped; the next tick
// tries again.
type Refresher struct {
	documents domain.DocumentStore
	bus       *pubsub.Bus
	logger    *zap.Logger

	interval time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

func NewRefresher(documents domain.DocumentStore, bus *pubsub.Bus, logger *zap.Logger) *Refresher {
	return &Refresher{
		documents: documents,
		bus:       bus,
		logger:    logger,
		interval:  defaultRefreshInterval,
		stopCh:    make(chan struct{}),
	}
}

func (r *Refresher) SetInterval(d time.Duration) {
	r.interval = d
}

func (r *Refresher) Start() {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		r.logger.Info("document refresher started", zap.Duration("interval", r.interval))

		for {
			select {
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
				r.RunOnce(ctx)
				cancel()
			case <-r.stopCh:
				r.logger.Info("document refresher stopped")
				return
			}
		}
	}()
}

func (r *Refresher) Stop() {
	close(r.stopCh)
	r.wg.Wait()
}

// RunOnce re-reads the external document slice and announces the change.
func (r *Refresher) RunOnce(ctx context.Context) {
	docs, err := r.documents.ListExternal(ctx)
	if err != nil {
		r.logger.Warn("external document refresh failed", zap.Error(err))
		return
	}
	r.logger.Debug("external documents refreshed", zap.Int("count", len(docs)))
	r.bus.Publish(domain.DomainDocuments)
}
