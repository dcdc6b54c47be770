package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/guttosm/print-quote-service/internal/domain/model"
	"github.com/guttosm/print-quote-service/internal/repository"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// StockService keeps the paper stock and raises alerts for papers at or
// below their threshold.
type StockService interface {
	List(ctx context.Context) ([]model.PaperStock, error)
	Save(ctx context.Context, paper *model.PaperStock) (*model.PaperStock, error)
	RecordMovement(ctx context.Context, movement *model.StockMovement) (*model.PaperStock, error)
	Movements(ctx context.Context, code string, limit int) ([]model.StockMovement, error)
	Stats(ctx context.Context) (*model.StockStats, error)
	Alerts(ctx context.Context) ([]model.PaperStock, error)
}

// StockServiceImpl implements StockService.
type StockServiceImpl struct {
	repo repository.StockRepositoryInterface
}

// NewStockService creates a new stock service.
func NewStockService(repo repository.StockRepositoryInterface) *StockServiceImpl {
	return &StockServiceImpl{repo: repo}
}

func (s *StockServiceImpl) List(ctx context.Context) ([]model.PaperStock, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	papers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if papers == nil {
		papers = []model.PaperStock{}
	}
	return papers, nil
}

// Save stores paper under its code. A missing price counts as zero.
func (s *StockServiceImpl) Save(ctx context.Context, paper *model.PaperStock) (*model.PaperStock, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	paper.Code = strings.TrimSpace(paper.Code)
	switch {
	case paper.Code == "":
		return nil, fmt.Errorf("%w: paper code is required", ErrInvalidRecord)
	case paper.Qty < 0:
		return nil, fmt.Errorf("%w: quantity cannot be negative", ErrInvalidRecord)
	case paper.Threshold < 0:
		return nil, fmt.Errorf("%w: threshold cannot be negative", ErrInvalidRecord)
	}
	if paper.Price == "" {
		paper.Price = "0"
	}
	price, err := decimal.NewFromString(paper.Price)
	if err != nil || price.IsNegative() {
		return nil, fmt.Errorf("%w: price %q is not an amount", ErrInvalidRecord, paper.Price)
	}
	paper.Price = price.StringFixed(2)

	if err := s.repo.Upsert(ctx, paper); err != nil {
		return nil, fmt.Errorf("failed to save paper: %w", err)
	}
	if paper.LowOnStock() {
		log.Warn().Str("code", paper.Code).Int("qty", paper.Qty).Int("threshold", paper.Threshold).Msg("Paper low on stock")
	}
	return paper, nil
}

// RecordMovement applies a delivery or withdrawal and returns the paper as
// it stands afterwards.
func (s *StockServiceImpl) RecordMovement(ctx context.Context, movement *model.StockMovement) (*model.PaperStock, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	movement.Code = strings.TrimSpace(movement.Code)
	if movement.Code == "" {
		return nil, fmt.Errorf("%w: paper code is required", ErrInvalidRecord)
	}
	if movement.Delta == 0 {
		return nil, fmt.Errorf("%w: movement must change the quantity", ErrInvalidRecord)
	}

	paper, err := s.repo.ApplyMovement(ctx, movement)
	if err != nil {
		return nil, err
	}
	if paper.LowOnStock() {
		log.Warn().Str("code", paper.Code).Int("qty", paper.Qty).Int("threshold", paper.Threshold).Msg("Paper low on stock")
	}
	return paper, nil
}

func (s *StockServiceImpl) Movements(ctx context.Context, code string, limit int) ([]model.StockMovement, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	movements, err := s.repo.Movements(ctx, code, limit)
	if err != nil {
		return nil, err
	}
	if movements == nil {
		movements = []model.StockMovement{}
	}
	return movements, nil
}

// Stats counts the papers, their sheets and alerts, and values the stock
// at the unit prices.
func (s *StockServiceImpl) Stats(ctx context.Context) (*model.StockStats, error) {
	papers, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &model.StockStats{TotalTypes: len(papers)}
	value := decimal.Zero
	for _, p := range papers {
		stats.TotalQty += p.Qty
		price, err := decimal.NewFromString(p.Price)
		if err != nil {
			log.Warn().Str("code", p.Code).Str("price", p.Price).Msg("Skipping paper with unreadable price")
			price = decimal.Zero
		}
		value = value.Add(price.Mul(decimal.NewFromInt(int64(p.Qty))))
		if p.LowOnStock() {
			stats.Alerts++
		}
	}
	stats.TotalValue = value.StringFixed(2)
	return stats, nil
}

// Alerts lists the papers at or below their threshold.
func (s *StockServiceImpl) Alerts(ctx context.Context) ([]model.PaperStock, error) {
	papers, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	alerts := []model.PaperStock{}
	for _, p := range papers {
		if p.LowOnStock() {
			alerts = append(alerts, p)
		}
	}
	return alerts, nil
}
