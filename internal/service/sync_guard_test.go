package service_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"procura/internal/domain"
	"procura/internal/service"
)

func TestSyncGuard_AcquireRelease(t *testing.T) {
	guard := service.NewSyncGuard()

	assert.True(t, guard.TryAcquire(domain.CategoryPurchaseOrder))
	assert.False(t, guard.TryAcquire(domain.CategoryPurchaseOrder))

	// A different category is independent.
	assert.True(t, guard.TryAcquire(domain.CategoryBankSlip))

	guard.Release(domain.CategoryPurchaseOrder)
	assert.True(t, guard.TryAcquire(domain.CategoryPurchaseOrder))
}

func TestSyncGuard_ConcurrentAcquire(t *testing.T) {
	guard := service.NewSyncGuard()

	const attempts = 50
	var acquired atomic.Int32
	var wg sync.WaitGroup
	start := make(chan struct{})

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if guard.TryAcquire(domain.CategoryPurchaseOrder) {
				acquired.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), acquired.Load())
}
