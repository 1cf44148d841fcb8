package worker

import (
	"context"
	"sync"
	"time"

	"github.com/elevateglobal/elevate-wallet/internal/config"
	"github.com/elevateglobal/elevate-wallet/internal/logger"
	"github.com/elevateglobal/elevate-wallet/internal/services"
	"github.com/sethvargo/go-retry"
)

// PayoutWorker pays out package positions that reached their maturity date
type PayoutWorker struct {
	Packages     services.PackagesService
	WaitGroup    sync.WaitGroup
	QuitChan     chan struct{}
	BatchSize    int
	PollInterval time.Duration
}

// NewPayoutWorker - payout worker constructor
func NewPayoutWorker(packages services.PackagesService, cfg config.PayoutConfig) *PayoutWorker {
	return &PayoutWorker{
		Packages:     packages,
		QuitChan:     make(chan struct{}),
		BatchSize:    cfg.BatchSize,
		PollInterval: cfg.PollInterval,
	}
}

// Start - runs the worker in background
func (w *PayoutWorker) Start(ctx context.Context) {
	w.WaitGroup.Add(1)
	go w.Run(ctx)
}

// Stop - gracefully stops the worker
func (w *PayoutWorker) Stop() {
	close(w.QuitChan)
	w.WaitGroup.Wait()
}

// Run - main worker loop
func (w *PayoutWorker) Run(ctx context.Context) {
	defer w.WaitGroup.Done()

	ticker := time.NewTicker(w.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.QuitChan:
			logger.Info("PayoutWorker signal stop")
			return
		case <-ticker.C:
			w.ProcessPayouts(ctx)
		}
	}
}

// ProcessPayouts - pays out a batch of matured positions
func (w *PayoutWorker) ProcessPayouts(ctx context.Context) {
	var enrollments []string
	// short retry around the claim, the database may be briefly away
	backoff := retry.WithMaxRetries(3, retry.NewExponential(time.Second))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var claimErr error
		enrollments, claimErr = w.Packages.MaturedEnrollments(ctx, w.BatchSize)
		return retry.RetryableError(claimErr)
	})
	if err != nil {
		logger.Error("error claim matured enrollments", err)
		return
	}

	for _, enrollmentID := range enrollments {
		if err := w.Packages.ProcessPayout(ctx, enrollmentID); err != nil {
			logger.Error("Error enrollment payout", err)
		}
	}
}
