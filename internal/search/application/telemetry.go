package application

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/gammazero/workerpool"

	"github.com/sngm3741/property-match-services/api/internal/search/domain"
)

// TelemetryConfig provides dependencies for TelemetryRecorder.
type TelemetryConfig struct {
	Repo        SearchCounterRepository
	Logger      *log.Logger
	WorkerCount int
	Timeout     time.Duration
}

// TelemetryRecorder は検索結果に出た物件の searchCount / searchedBy を非同期で更新する。
// 失敗はログに残すだけで呼び出し元には返さない。
type TelemetryRecorder struct {
	repo       SearchCounterRepository
	logger     *log.Logger
	timeout    time.Duration
	workerPool *workerpool.WorkerPool

	mu      sync.RWMutex
	closed  bool
	pending sync.WaitGroup
}

// NewTelemetryRecorder starts a worker pool sized by cfg.WorkerCount.
func NewTelemetryRecorder(cfg TelemetryConfig) *TelemetryRecorder {
	workers := cfg.WorkerCount
	if workers <= 0 {
		workers = 4
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &TelemetryRecorder{
		repo:       cfg.Repo,
		logger:     cfg.Logger,
		timeout:    timeout,
		workerPool: workerpool.New(workers),
	}
}

// Record submits one bulk counter update for the batch and returns at once.
func (r *TelemetryRecorder) Record(properties []domain.Property, userID string) {
	ids := domain.PropertyIDs(properties)
	if len(ids) == 0 {
		return
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		r.logf("telemetry recorder closed, dropped %d listings", len(ids))
		return
	}

	r.pending.Add(1)
	r.workerPool.Submit(func() {
		defer r.pending.Done()
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()
		if err := r.repo.IncrementSearchCounters(ctx, ids, userID); err != nil {
			r.logf("検索カウンタの更新に失敗 listings=%d user=%q: %v", len(ids), userID, err)
		}
	})
}

// Flush blocks until every submitted batch has been attempted.
func (r *TelemetryRecorder) Flush() {
	r.pending.Wait()
}

// Close stops accepting batches and waits for queued ones to finish.
func (r *TelemetryRecorder) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	r.mu.Unlock()

	r.Flush()
	r.workerPool.StopWait()
}

func (r *TelemetryRecorder) logf(format string, args ...any) {
	if r.logger != nil {
		r.logger.Printf(format, args...)
	}
}
