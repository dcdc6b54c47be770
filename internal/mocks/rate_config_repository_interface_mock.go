// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/print-quote-service/internal/pricing"
	"github.com/guttosm/print-quote-service/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockRateConfigRepositoryInterface struct {
	mock.Mock
}

func (m *MockRateConfigRepositoryInterface) GetActive(ctx context.Context) (*repository.RateConfigDocument, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.RateConfigDocument), args.Error(1)
}

func (m *MockRateConfigRepositoryInterface) Create(ctx context.Context, cfg pricing.Configuration, repairs []string, createdBy string) (*repository.RateConfigDocument, error) {
	args := m.Called(ctx, cfg, repairs, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.RateConfigDocument), args.Error(1)
}

func (m *MockRateConfigRepositoryInterface) Activate(ctx context.Context, version int) (*repository.RateConfigDocument, error) {
	args := m.Called(ctx, version)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.RateConfigDocument), args.Error(1)
}

func (m *MockRateConfigRepositoryInterface) List(ctx context.Context, limit int) ([]repository.RateConfigDocument, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.RateConfigDocument), args.Error(1)
}
