// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/print-quote-service/internal/domain/model"
	"github.com/guttosm/print-quote-service/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockStockRepositoryInterface struct {
	mock.Mock
}

func (m *MockStockRepositoryInterface) List(ctx context.Context) ([]model.PaperStock, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PaperStock), args.Error(1)
}

func (m *MockStockRepositoryInterface) Get(ctx context.Context, code string) (*model.PaperStock, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PaperStock), args.Error(1)
}

func (m *MockStockRepositoryInterface) Upsert(ctx context.Context, paper *model.PaperStock) error {
	args := m.Called(ctx, paper)
	return args.Error(0)
}

func (m *MockStockRepositoryInterface) ApplyMovement(ctx context.Context, movement *model.StockMovement) (*model.PaperStock, error) {
	args := m.Called(ctx, movement)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PaperStock), args.Error(1)
}

func (m *MockStockRepositoryInterface) Movements(ctx context.Context, code string, limit int) ([]model.StockMovement, error) {
	args := m.Called(ctx, code, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.StockMovement), args.Error(1)
}

var _ repository.StockRepositoryInterface = (*MockStockRepositoryInterface)(nil)
