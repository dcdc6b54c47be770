// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/print-quote-service/internal/domain/model"
	"github.com/guttosm/print-quote-service/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockQuotesRepositoryInterface struct {
	mock.Mock
}

func (m *MockQuotesRepositoryInterface) Save(ctx context.Context, quote *model.QuoteRecord) error {
	args := m.Called(ctx, quote)
	return args.Error(0)
}

func (m *MockQuotesRepositoryInterface) Get(ctx context.Context, ref string) (*model.QuoteRecord, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.QuoteRecord), args.Error(1)
}

func (m *MockQuotesRepositoryInterface) List(ctx context.Context, limit int) ([]model.QuoteRecord, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.QuoteRecord), args.Error(1)
}

func (m *MockQuotesRepositoryInterface) UpdateStatus(ctx context.Context, ref, status string) (*model.QuoteRecord, error) {
	args := m.Called(ctx, ref, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.QuoteRecord), args.Error(1)
}

var _ repository.QuotesRepositoryInterface = (*MockQuotesRepositoryInterface)(nil)
