package middleware

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/print-quote-service/internal/domain/model"
	"github.com/guttosm/print-quote-service/internal/service"
	"github.com/rs/zerolog/log"
)

// LogSink accepts request and audit entries for storage. Log must not block
// the request; it reports false when the entry was dropped.
type LogSink interface {
	Log(entry *model.LogEntry) bool
}

// AsyncLoggerConfig sizes the write queue and worker pool. Each worker
// writes up to BatchSize entries at once, or what it has after
// FlushInterval.
type AsyncLoggerConfig struct {
	BufferSize    int
	NumWorkers    int
	BatchSize     int
	FlushInterval time.Duration
	WriteTimeout  time.Duration
}

// DefaultAsyncLoggerConfig returns sensible defaults for the async logger.
func DefaultAsyncLoggerConfig() AsyncLoggerConfig {
	return AsyncLoggerConfig{
		BufferSize:    1000,
		NumWorkers:    4,
		BatchSize:     50,
		FlushInterval: time.Second,
		WriteTimeout:  5 * time.Second,
	}
}

// AsyncLoggerStats counts what happened to enqueued entries.
type AsyncLoggerStats struct {
	Enqueued int64
	Dropped  int64
	Written  int64
	Failed   int64
}

// AsyncLogger is a LogSink that hands entries to a fixed pool of workers
// writing through the logging service. When the queue is full entries are
// dropped rather than slowing requests down.
type AsyncLogger struct {
	loggingService service.LoggingService
	entryCh        chan *model.LogEntry
	wg             sync.WaitGroup
	batchSize      int
	flushInterval  time.Duration
	writeTimeout   time.Duration
	closed         atomic.Bool
	closeMu        sync.RWMutex

	enqueued atomic.Int64
	dropped  atomic.Int64
	written  atomic.Int64
	failed   atomic.Int64
}

// NewAsyncLogger starts the workers. It returns nil without a logging
// service; callers must not store a nil *AsyncLogger in a LogSink.
func NewAsyncLogger(loggingService service.LoggingService, cfg AsyncLoggerConfig) *AsyncLogger {
	if loggingService == nil {
		return nil
	}
	defaults := DefaultAsyncLoggerConfig()
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = defaults.BufferSize
	}
	if cfg.NumWorkers <= 0 {
		cfg.NumWorkers = defaults.NumWorkers
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaults.BatchSize
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = defaults.FlushInterval
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = defaults.WriteTimeout
	}

	al := &AsyncLogger{
		loggingService: loggingService,
		entryCh:        make(chan *model.LogEntry, cfg.BufferSize),
		batchSize:      cfg.BatchSize,
		flushInterval:  cfg.FlushInterval,
		writeTimeout:   cfg.WriteTimeout,
	}
	for i := 0; i < cfg.NumWorkers; i++ {
		al.wg.Add(1)
		go al.worker()
	}
	return al
}

func (al *AsyncLogger) worker() {
	defer al.wg.Done()

	ticker := time.NewTicker(al.flushInterval)
	defer ticker.Stop()

	batch := make([]*model.LogEntry, 0, al.batchSize)
	for {
		select {
		case entry, ok := <-al.entryCh:
			if !ok {
				al.write(batch)
				return
			}
			batch = append(batch, entry)
			if len(batch) >= al.batchSize {
				al.write(batch)
				batch = make([]*model.LogEntry, 0, al.batchSize)
			}
		case <-ticker.C:
			al.write(batch)
			batch = make([]*model.LogEntry, 0, al.batchSize)
		}
	}
}

func (al *AsyncLogger) write(batch []*model.LogEntry) {
	if len(batch) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), al.writeTimeout)
	defer cancel()

	if err := al.loggingService.CreateLogs(ctx, batch); err != nil {
		al.failed.Add(int64(len(batch)))
		log.Warn().Err(err).Int("entries", len(batch)).Msg("Failed to store log entries")
		return
	}
	al.written.Add(int64(len(batch)))
}

// Log enqueues entry. Entries logged after Stop are dropped.
func (al *AsyncLogger) Log(entry *model.LogEntry) bool {
	al.closeMu.RLock()
	defer al.closeMu.RUnlock()

	if al.closed.Load() {
		al.dropped.Add(1)
		return false
	}
	select {
	case al.entryCh <- entry:
		al.enqueued.Add(1)
		return true
	default:
		al.dropped.Add(1)
		return false
	}
}

// Stop refuses new entries and waits until the queue is written out.
func (al *AsyncLogger) Stop() {
	al.closeMu.Lock()
	if al.closed.Swap(true) {
		al.closeMu.Unlock()
		return
	}
	close(al.entryCh)
	al.closeMu.Unlock()

	al.wg.Wait()
}

// Stats returns the counters so far.
func (al *AsyncLogger) Stats() AsyncLoggerStats {
	return AsyncLoggerStats{
		Enqueued: al.enqueued.Load(),
		Dropped:  al.dropped.Load(),
		Written:  al.written.Load(),
		Failed:   al.failed.Load(),
	}
}
