package inventory

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/BrandishPet_Go/internal/domain"
)

// MockSpender implements Spender for testing
type MockSpender struct {
	mock.Mock
}

func (m *MockSpender) TrySpend(ctx context.Context, amount int, purpose string) error {
	args := m.Called(ctx, amount, purpose)
	return args.Error(0)
}

// MockCatalog implements Catalog for testing
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) Get(id string) (domain.Item, error) {
	args := m.Called(id)
	return args.Get(0).(domain.Item), args.Error(1)
}
