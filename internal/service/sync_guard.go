package service

import (
	"sync"

	"procura/internal/domain"
	"procura/internal/port"
)

// syncGuard is a best-effort, single-process mutual exclusion per folder
// category. It does not provide cross-process locking; run one instance of
// the service, or move to a lease row with a TTL before scaling out.
type syncGuard struct {
	mu       sync.Mutex
	inflight map[domain.FolderCategory]struct{}
}

// NewSyncGuard creates an in-process SyncGuard.
func NewSyncGuard() port.SyncGuard {
	return &syncGuard{inflight: make(map[domain.FolderCategory]struct{})}
}

func (g *syncGuard) TryAcquire(category domain.FolderCategory) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.inflight[category]; busy {
		return false
	}
	g.inflight[category] = struct{}{}
	return true
}

func (g *syncGuard) Release(category domain.FolderCategory) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.inflight, category)
}
