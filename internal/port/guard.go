package port

import "procura/internal/domain"

// SyncGuard provides best-effort, single-process mutual exclusion per folder
// category so overlapping sync runs never race on the same index.
type SyncGuard interface {
	// TryAcquire reports whether the category was free; a false return means
	// a sync for it is already in flight.
	TryAcquire(category domain.FolderCategory) bool
	Release(category domain.FolderCategory)
}
