package service

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"procura/internal/domain"
)

// SyncSchedulerConfig holds settings for the background sync worker.
type SyncSchedulerConfig struct {
	Interval   time.Duration
	Categories []domain.FolderCategory
}

// SyncScheduler periodically runs a sync pass for every configured category.
// The guard inside SyncService makes overlap with manually triggered syncs
// harmless.
type SyncScheduler struct {
	syncService SyncService
	cfg         SyncSchedulerConfig
	wg          sync.WaitGroup
}

// NewSyncScheduler creates a SyncScheduler.
func NewSyncScheduler(syncService SyncService, cfg SyncSchedulerConfig) *SyncScheduler {
	return &SyncScheduler{syncService: syncService, cfg: cfg}
}

// Start runs the polling loop until ctx is canceled. It blocks until all
// in-flight sync runs have finished.
func (w *SyncScheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(w.cfg.Interval)
	defer ticker.Stop()

	log.Printf("syncScheduler: started (interval=%s, categories=%d)", w.cfg.Interval, len(w.cfg.Categories))

	for {
		select {
		case <-ctx.Done():
			log.Printf("syncScheduler: shutting down, waiting for in-flight syncs...")
			w.wg.Wait()
			log.Printf("syncScheduler: shutdown complete")
			return
		case <-ticker.C:
			for _, category := range w.cfg.Categories {
				w.wg.Add(1)
				go func() {
					defer w.wg.Done()

					// Fresh context independent of the poll loop so an
					// in-flight run completes even during shutdown. The
					// upsert is idempotent, so a timeout only truncates
					// the run's file count.
					syncCtx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
					defer cancel()

					_, err := w.syncService.Sync(syncCtx, category)
					switch {
					case err == nil:
					case errors.Is(err, domain.ErrAlreadySyncing):
						// A manual trigger beat us to it.
					case errors.Is(err, domain.ErrNotConnected):
						log.Printf("syncScheduler: %s skipped: remote not connected", category)
					default:
						log.Printf("syncScheduler: %s failed: %v", category, err)
					}
				}()
			}
		}
	}
}
