package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/flymarket_pos/internal/apperrors"
	"github.com/SscSPs/flymarket_pos/internal/core/domain"
	"github.com/SscSPs/flymarket_pos/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSaleService_ListSalesLimits(t *testing.T) {
	tests := []struct {
		name          string
		limit, offset int
		wantLimit     int
		wantOffset    int
	}{
		{"defaults", 0, 0, 20, 0},
		{"negative values", -5, -3, 20, 0},
		{"capped", 500, 10, 100, 10},
		{"passed through", 7, 14, 7, 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockSaleRepository)
			repo.On("ListSales", mock.Anything, tt.wantLimit, tt.wantOffset).Return([]domain.Sale{{SaleID: "s1"}}, nil).Once()

			sales, err := services.NewSaleService(repo).ListSales(context.Background(), tt.limit, tt.offset)
			require.NoError(t, err)
			assert.Len(t, sales, 1)
			repo.AssertExpectations(t)
		})
	}
}

func TestSaleService_ListSalesError(t *testing.T) {
	repo := new(MockSaleRepository)
	repo.On("ListSales", mock.Anything, 20, 0).Return(nil, assert.AnError).Once()

	_, err := services.NewSaleService(repo).ListSales(context.Background(), 0, 0)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestSaleService_GetSale(t *testing.T) {
	repo := new(MockSaleRepository)
	repo.On("FindSaleByID", mock.Anything, "s1").Return(&domain.Sale{SaleID: "s1"}, nil).Once()
	repo.On("FindSaleByID", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound).Once()
	svc := services.NewSaleService(repo)

	sale, err := svc.GetSale(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", sale.SaleID)

	_, err = svc.GetSale(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	repo.AssertExpectations(t)
}
