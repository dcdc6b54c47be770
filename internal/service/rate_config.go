package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/guttosm/print-quote-service/internal/metrics"
	"github.com/guttosm/print-quote-service/internal/pricing"
	"github.com/guttosm/print-quote-service/internal/repository"
)

// ErrRepositoryNotConfigured is returned when the repository is not configured.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// Reloader receives every newly activated rate configuration.
type Reloader interface {
	Reload(ctx context.Context, cfg pricing.Configuration)
}

// RateConfigService manages the versioned rate configurations.
type RateConfigService interface {
	GetActive(ctx context.Context) (*repository.RateConfigDocument, error)
	Create(ctx context.Context, cfg pricing.Configuration, createdBy string) (*repository.RateConfigDocument, error)
	Activate(ctx context.Context, version int) (*repository.RateConfigDocument, error)
	List(ctx context.Context, limit int) ([]repository.RateConfigDocument, error)
}

// RateConfigServiceImpl implements RateConfigService.
type RateConfigServiceImpl struct {
	repo     repository.RateConfigRepositoryInterface
	reloader Reloader
}

// NewRateConfigService creates a new rate configuration service. Activated
// versions are pushed to reloader when it is not nil.
func NewRateConfigService(repo repository.RateConfigRepositoryInterface, reloader Reloader) RateConfigService {
	return &RateConfigServiceImpl{
		repo:     repo,
		reloader: reloader,
	}
}

func (s *RateConfigServiceImpl) GetActive(ctx context.Context) (*repository.RateConfigDocument, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.GetActive(ctx)
}

// Create normalizes cfg, stores it as the next version and activates it.
func (s *RateConfigServiceImpl) Create(ctx context.Context, cfg pricing.Configuration, createdBy string) (*repository.RateConfigDocument, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	repairs := cfg.Normalize()
	doc, err := s.repo.Create(ctx, cfg, repairs, createdBy)
	if err != nil {
		return nil, fmt.Errorf("failed to store rate configuration: %w", err)
	}
	s.apply(ctx, doc)
	return doc, nil
}

// Activate makes a stored version the active one.
func (s *RateConfigServiceImpl) Activate(ctx context.Context, version int) (*repository.RateConfigDocument, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	doc, err := s.repo.Activate(ctx, version)
	if err != nil {
		return nil, err
	}
	s.apply(ctx, doc)
	return doc, nil
}

func (s *RateConfigServiceImpl) List(ctx context.Context, limit int) ([]repository.RateConfigDocument, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.List(ctx, limit)
}

func (s *RateConfigServiceImpl) apply(ctx context.Context, doc *repository.RateConfigDocument) {
	metrics.SetRateConfigVersion(doc.Version)
	if s.reloader != nil {
		s.reloader.Reload(ctx, doc.Config)
	}
}
