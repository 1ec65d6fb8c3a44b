package services

import (
	"context"
	"errors"
	"sync"

	"alfredoptarigan/student-profile-analyzer/internal/logger"
)

var ErrWorkerStopped = errors.New("worker stopped")

// Job runs on a worker goroutine with the context it was submitted with.
type Job func(ctx context.Context)

type Worker interface {
	Start()
	Stop()
	Submit(ctx context.Context, job Job) error
}

type queuedJob struct {
	ctx context.Context
	run Job
}

type worker struct {
	jobQueue    chan queuedJob
	concurrency int
	wg          sync.WaitGroup
	stopChan    chan struct{}
	startOnce   sync.Once
	stopOnce    sync.Once

	mu      sync.RWMutex
	stopped bool
}

// NewWorker creates a pool of concurrency goroutines fed by a queue of
// queueSize pending jobs. Submit blocks while the queue is full.
func NewWorker(concurrency, queueSize int) Worker {
	if concurrency <= 0 {
		concurrency = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}

	return &worker{
		jobQueue:    make(chan queuedJob, queueSize),
		concurrency: concurrency,
		stopChan:    make(chan struct{}),
	}
}

// Start implements Worker.
func (w *worker) Start() {
	w.startOnce.Do(func() {
		logger.Log.Infof("🚀 Starting worker with %d concurrent workers", w.concurrency)

		for i := 0; i < w.concurrency; i++ {
			w.wg.Add(1)
			go w.processJobs(i + 1)
		}
	})
}

// Stop implements Worker. Running jobs finish normally; jobs still queued
// are run with a cancelled context so every submitted job runs exactly once.
func (w *worker) Stop() {
	w.stopOnce.Do(func() {
		logger.Log.Info("🛑 Stopping worker...")

		w.mu.Lock()
		w.stopped = true
		w.mu.Unlock()

		close(w.stopChan)
		w.wg.Wait()

		for {
			select {
			case job := <-w.jobQueue:
				ctx, cancel := context.WithCancel(job.ctx)
				cancel()
				job.run(ctx)
			default:
				logger.Log.Info("✅ Worker stopped")
				return
			}
		}
	})
}

// Submit implements Worker.
func (w *worker) Submit(ctx context.Context, job Job) error {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.stopped {
		return ErrWorkerStopped
	}

	select {
	case w.jobQueue <- queuedJob{ctx: ctx, run: job}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *worker) processJobs(workerID int) {
	defer w.wg.Done()
	logger.Log.Debugf("👷 Worker #%d started processing jobs", workerID)

	for {
		select {
		case <-w.stopChan:
			logger.Log.Debugf("👷 Worker #%d stopped", workerID)
			return
		case job := <-w.jobQueue:
			job.run(job.ctx)
		}
	}
}
