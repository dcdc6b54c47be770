package service

import (
	"context"
	"fmt"

	"github.com/guttosm/print-quote-service/internal/domain/model"
	"github.com/guttosm/print-quote-service/internal/repository"
	"golang.org/x/sync/errgroup"
)

// LoggingService persists request and audit entries and answers activity
// queries over them.
type LoggingService interface {
	// CreateLogs stores a batch of entries.
	CreateLogs(ctx context.Context, entries []*model.LogEntry) error
	// Activity returns one page of stored entries matching filter and the
	// overall match count.
	Activity(ctx context.Context, filter model.ActivityFilter) (*model.ActivityPage, error)
}

// LoggingServiceImpl implements LoggingService on a logs repository.
type LoggingServiceImpl struct {
	repo repository.LogsRepositoryInterface
}

// NewLoggingService creates a new logging service implementation.
func NewLoggingService(repo repository.LogsRepositoryInterface) *LoggingServiceImpl {
	return &LoggingServiceImpl{repo: repo}
}

// CreateLogs stores a batch of entries. Nil entries are skipped.
func (s *LoggingServiceImpl) CreateLogs(ctx context.Context, entries []*model.LogEntry) error {
	batch := make([]*model.LogEntry, 0, len(entries))
	for _, e := range entries {
		if e != nil {
			batch = append(batch, e)
		}
	}
	if len(batch) == 0 {
		return nil
	}
	return s.repo.Insert(ctx, batch)
}

// Activity validates and normalizes filter, then reads the page and the
// total concurrently.
func (s *LoggingServiceImpl) Activity(ctx context.Context, filter model.ActivityFilter) (*model.ActivityPage, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	filter = filter.Normalize()

	page := &model.ActivityPage{Limit: filter.Limit, Offset: filter.Offset}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		entries, err := s.repo.Find(gctx, filter)
		if err != nil {
			return fmt.Errorf("find activity: %w", err)
		}
		page.Entries = entries
		return nil
	})
	g.Go(func() error {
		total, err := s.repo.Count(gctx, filter)
		if err != nil {
			return fmt.Errorf("count activity: %w", err)
		}
		page.Total = total
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if page.Entries == nil {
		page.Entries = []model.LogEntry{}
	}
	return page, nil
}
