package metrics

import (
	"context"

	"github.com/stretchr/testify/mock"

	"ratesgateway/internal/fixer"
)

type MockRates struct {
	mock.Mock
}

func (m *MockRates) Symbols(ctx context.Context) (fixer.Response, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).(fixer.Response)
	return res, args.Error(1)
}

func (m *MockRates) Latest(ctx context.Context, opts ...fixer.RequestOption) (fixer.Response, error) {
	args := m.Called(ctx, opts)
	res, _ := args.Get(0).(fixer.Response)
	return res, args.Error(1)
}

func (m *MockRates) HistoricalAt(ctx context.Context, date string, opts ...fixer.RequestOption) (fixer.Response, error) {
	args := m.Called(ctx, date, opts)
	res, _ := args.Get(0).(fixer.Response)
	return res, args.Error(1)
}
