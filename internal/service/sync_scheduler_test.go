package service_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"procura/internal/domain"
	"procura/internal/service"
	"procura/mocks"
)

func TestSyncScheduler_RunsEveryCategoryPerTick(t *testing.T) {
	svc := new(mocks.MockSyncService)

	done := make(chan struct{})
	var seen atomic.Int32
	svc.On("Sync", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			if seen.Add(1) == 2 {
				close(done)
			}
		}).
		Return(&domain.SyncReport{Status: domain.SyncStatusSuccess}, nil)

	scheduler := service.NewSyncScheduler(svc, service.SyncSchedulerConfig{
		Interval:   10 * time.Millisecond,
		Categories: []domain.FolderCategory{domain.CategoryPurchaseOrder, domain.CategoryBankSlip},
	})

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		scheduler.Start(ctx)
		close(stopped)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler never ran both categories")
	}

	cancel()
	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not shut down")
	}

	svc.AssertCalled(t, "Sync", mock.Anything, domain.CategoryPurchaseOrder)
	svc.AssertCalled(t, "Sync", mock.Anything, domain.CategoryBankSlip)
}

func TestSyncScheduler_IgnoresAlreadySyncing(t *testing.T) {
	svc := new(mocks.MockSyncService)

	called := make(chan struct{}, 1)
	svc.On("Sync", mock.Anything, domain.CategoryPurchaseOrder).
		Run(func(mock.Arguments) {
			select {
			case called <- struct{}{}:
			default:
			}
		}).
		Return(nil, domain.ErrAlreadySyncing)

	scheduler := service.NewSyncScheduler(svc, service.SyncSchedulerConfig{
		Interval:   10 * time.Millisecond,
		Categories: []domain.FolderCategory{domain.CategoryPurchaseOrder},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go scheduler.Start(ctx)

	select {
	case <-called:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler never attempted a sync")
	}
}
