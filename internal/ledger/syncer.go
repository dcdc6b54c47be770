package ledger

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/print-quote-service/internal/metrics"
	"github.com/rs/zerolog/log"
)

// Pusher delivers one entry to the ledger.
type Pusher interface {
	Push(ctx context.Context, entry Entry) error
}

// SyncerConfig holds the sync queue settings.
type SyncerConfig struct {
	// QueueSize bounds the number of entries waiting to be pushed.
	QueueSize int
	// NumWorkers is the number of concurrent pushes.
	NumWorkers int
	// PushTimeout bounds one push, retries included.
	PushTimeout time.Duration
}

// DefaultSyncerConfig returns the default queue settings.
func DefaultSyncerConfig() SyncerConfig {
	return SyncerConfig{
		QueueSize:   256,
		NumWorkers:  2,
		PushTimeout: 2 * time.Minute,
	}
}

// Syncer pushes entries in the background so saving an order never waits
// on the remote sheet. Entries are dropped when the queue is full.
type Syncer struct {
	pusher      Pusher
	ctx         context.Context
	cancel      context.CancelFunc
	queue       chan Entry
	stopCh      chan struct{}
	stopOnce    sync.Once
	wg          sync.WaitGroup
	pushTimeout time.Duration

	pushed  int64
	failed  int64
	dropped int64
}

// NewSyncer starts a syncer with cfg.NumWorkers workers.
func NewSyncer(pusher Pusher, cfg SyncerConfig) *Syncer {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = DefaultSyncerConfig().QueueSize
	}
	if cfg.NumWorkers <= 0 {
		cfg.NumWorkers = 1
	}
	if cfg.PushTimeout <= 0 {
		cfg.PushTimeout = DefaultSyncerConfig().PushTimeout
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Syncer{
		pusher:      pusher,
		ctx:         ctx,
		cancel:      cancel,
		queue:       make(chan Entry, cfg.QueueSize),
		stopCh:      make(chan struct{}),
		pushTimeout: cfg.PushTimeout,
	}
	for i := 0; i < cfg.NumWorkers; i++ {
		s.wg.Add(1)
		go s.worker()
	}
	return s
}

func (s *Syncer) worker() {
	defer s.wg.Done()

	for {
		select {
		case entry := <-s.queue:
			s.push(entry)
		case <-s.stopCh:
			// Drain what is already queued
			for {
				select {
				case entry := <-s.queue:
					s.push(entry)
				default:
					return
				}
			}
		}
	}
}

func (s *Syncer) push(entry Entry) {
	if s.ctx.Err() != nil {
		atomic.AddInt64(&s.dropped, 1)
		metrics.RecordLedgerSync("dropped")
		log.Warn().Str("ref", entry.Ref).Msg("Ledger sync stopped before entry was pushed")
		return
	}

	ctx, cancel := context.WithTimeout(s.ctx, s.pushTimeout)
	defer cancel()

	if err := s.pusher.Push(ctx, entry); err != nil {
		atomic.AddInt64(&s.failed, 1)
		metrics.RecordLedgerSync("failure")
		log.Error().Err(err).Str("ref", entry.Ref).Msg("Ledger sync abandoned")
		return
	}
	atomic.AddInt64(&s.pushed, 1)
	metrics.RecordLedgerSync("success")
}

// Enqueue schedules entry for delivery. It returns false when the entry was
// dropped because the queue is full or the syncer stopped.
func (s *Syncer) Enqueue(entry Entry) bool {
	select {
	case <-s.stopCh:
		return false
	default:
	}

	select {
	case s.queue <- entry:
		return true
	default:
		atomic.AddInt64(&s.dropped, 1)
		metrics.RecordLedgerSync("dropped")
		log.Warn().Str("ref", entry.Ref).Msg("Ledger sync queue full, entry dropped")
		return false
	}
}

// Stop delivers the queued entries and stops the workers. When ctx ends
// first, the push in progress is abandoned and the rest of the queue is
// counted as dropped.
func (s *Syncer) Stop(ctx context.Context) {
	s.stopOnce.Do(func() {
		close(s.stopCh)

		done := make(chan struct{})
		go func() {
			s.wg.Wait()
			close(done)
		}()

		select {
		case <-done:
		case <-ctx.Done():
			s.cancel()
			<-done
		}
		s.cancel()
	})
}

// Stats returns delivery counters.
func (s *Syncer) Stats() (pushed, failed, dropped int64) {
	return atomic.LoadInt64(&s.pushed),
		atomic.LoadInt64(&s.failed),
		atomic.LoadInt64(&s.dropped)
}
