// Package workers contains the background runnables hosted next to the HTTP gateway.
package workers

import (
	"context"
	"log"
	"time"

	"github.com/rionhunter/OpenAI-API-Wrapper/internal/usecases"
)

// CatalogRefresher is a runnable that keeps the cached model catalog fresh while the gateway is serving.
// It warms the cache on start and forces a refresh on every tick.
// A non-positive interval only warms the cache.
type CatalogRefresher struct {
	Logger              *log.Logger           `resolve:""`
	ModelCatalog        usecases.ModelCatalog `resolve:""`
	APIKey              string                `config:"OPENAI_API_KEY" default:"-"`
	Interval            time.Duration         `config:"CATALOG_REFRESH_INTERVAL" default:"24h"`
	workerExecutionChan chan struct{}
}

// Run starts the catalog refresher worker.
func (r CatalogRefresher) Run(ctx context.Context) error {
	r.Logger.Println("CatalogRefresher: running...")

	cred := r.APIKey
	if cred == "-" {
		cred = ""
	}
	if cred == "" {
		r.Logger.Println("CatalogRefresher: no API key configured, refresh disabled")
		<-ctx.Done()
		r.Logger.Println("CatalogRefresher: stopped")
		return nil
	}

	models := r.ModelCatalog.List(ctx, cred)
	r.Logger.Printf("CatalogRefresher: catalog ready models=%d", len(models))
	r.signal(ctx)

	if r.Interval <= 0 {
		r.Logger.Printf("CatalogRefresher: interval %s is not positive, periodic refresh disabled", r.Interval)
		<-ctx.Done()
		r.Logger.Println("CatalogRefresher: stopped")
		return nil
	}

	ticker := time.NewTicker(r.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.Logger.Println("CatalogRefresher: stopped")
			return nil
		case <-ticker.C:
			models := r.ModelCatalog.Refresh(ctx, cred)
			r.Logger.Printf("CatalogRefresher: refreshed models=%d", len(models))
			r.signal(ctx)
		}
	}
}

func (r CatalogRefresher) signal(ctx context.Context) {
	if r.workerExecutionChan == nil {
		return
	}
	select {
	case r.workerExecutionChan <- struct{}{}:
	case <-ctx.Done():
	}
}
