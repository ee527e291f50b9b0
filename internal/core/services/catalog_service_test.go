package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/flymarket_pos/internal/apperrors"
	"github.com/SscSPs/flymarket_pos/internal/core/domain"
	"github.com/SscSPs/flymarket_pos/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

func testProducts() []domain.Product {
	return []domain.Product{
		{ProductID: "p-sandwich", Name: "Club Sandwich", Units: 3, BasePrice: decimal.RequireFromString("10.00"), Category: "Sandwiches"},
		{ProductID: "p-water", Name: "Water", Units: 10, BasePrice: decimal.RequireFromString("5.00"), Category: "Drinks"},
		{ProductID: "p-cola", Name: "Cola", Units: 0, BasePrice: decimal.RequireFromString("2.50"), Category: "Drinks"},
	}
}

func testCustomerTypes() []domain.CustomerType {
	return []domain.CustomerType{
		{CustomerTypeID: "tourist", Name: "Tourist", DiscountPercentage: decimal.Zero},
		{CustomerTypeID: "crew", Name: "Crew", DiscountPercentage: decimal.NewFromInt(15)},
	}
}

// --- Test Suite ---
type CatalogServiceTestSuite struct {
	suite.Suite
	mockFeed *MockCatalogFeed
	service  *services.CatalogService
	ctx      context.Context
}

func (suite *CatalogServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockFeed = new(MockCatalogFeed)
	suite.service = services.NewCatalogService(suite.mockFeed)
}

func (suite *CatalogServiceTestSuite) TestLoad_Success() {
	suite.mockFeed.On("FetchProducts", mock.Anything).Return(testProducts(), nil).Once()
	suite.mockFeed.On("FetchCustomerTypes", mock.Anything).Return(testCustomerTypes(), nil).Once()

	suite.Require().NoError(suite.service.Load(suite.ctx))

	status := suite.service.Status(suite.ctx)
	suite.True(status.OK())
	suite.Equal(3, status.ProductCount)
	suite.Equal(2, status.CustomerTypeCount)
	suite.False(status.LoadedAt.IsZero())

	suite.Len(suite.service.ListProducts(suite.ctx, ""), 3)
	suite.Len(suite.service.ListProducts(suite.ctx, domain.CategoryAll), 3)
	suite.Len(suite.service.ListProducts(suite.ctx, "Drinks"), 2)
	suite.Equal([]string{"Sandwiches", "Drinks"}, suite.service.ListCategories(suite.ctx))
	suite.Equal("tourist", suite.service.DefaultCustomerType(suite.ctx).CustomerTypeID)

	suite.mockFeed.AssertExpectations(suite.T())
}

func (suite *CatalogServiceTestSuite) TestLoad_ProductsFailKeepsCustomerTypes() {
	fetchErr := errors.New("connection refused")
	suite.mockFeed.On("FetchProducts", mock.Anything).Return(nil, fetchErr).Once()
	suite.mockFeed.On("FetchCustomerTypes", mock.Anything).Return(testCustomerTypes(), nil).Once()

	err := suite.service.Load(suite.ctx)
	suite.Require().Error(err)
	suite.ErrorIs(err, fetchErr)

	status := suite.service.Status(suite.ctx)
	suite.False(status.OK())
	suite.Contains(status.ProductsError, "Error fetching products")
	suite.Empty(status.CustomerTypesError)
	suite.Empty(suite.service.ListProducts(suite.ctx, ""))
	suite.Len(suite.service.ListCustomerTypes(suite.ctx), 2)
}

func (suite *CatalogServiceTestSuite) TestLoad_FailureReplacesPreviousList() {
	suite.mockFeed.On("FetchProducts", mock.Anything).Return(testProducts(), nil).Once()
	suite.mockFeed.On("FetchCustomerTypes", mock.Anything).Return(testCustomerTypes(), nil).Once()
	suite.Require().NoError(suite.service.Load(suite.ctx))

	suite.mockFeed.On("FetchProducts", mock.Anything).Return(testProducts()[:1], nil).Once()
	suite.mockFeed.On("FetchCustomerTypes", mock.Anything).Return(nil, errors.New("timeout")).Once()
	suite.Require().Error(suite.service.Load(suite.ctx))

	suite.Len(suite.service.ListProducts(suite.ctx, ""), 1)
	suite.Empty(suite.service.ListCustomerTypes(suite.ctx))
	suite.Contains(suite.service.Status(suite.ctx).CustomerTypesError, "Error fetching customer types")
	suite.Equal(domain.DefaultCustomerType(), suite.service.DefaultCustomerType(suite.ctx))
}

func (suite *CatalogServiceTestSuite) TestGetProduct() {
	suite.mockFeed.On("FetchProducts", mock.Anything).Return(testProducts(), nil).Once()
	suite.mockFeed.On("FetchCustomerTypes", mock.Anything).Return(testCustomerTypes(), nil).Once()
	suite.Require().NoError(suite.service.Load(suite.ctx))

	product, err := suite.service.GetProduct(suite.ctx, "p-water")
	suite.Require().NoError(err)
	suite.Equal("Water", product.Name)

	_, err = suite.service.GetProduct(suite.ctx, "missing")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CatalogServiceTestSuite) TestGetCustomerType_DefaultOnlyWhenNoneLoaded() {
	def := domain.DefaultCustomerType()

	ct, err := suite.service.GetCustomerType(suite.ctx, def.CustomerTypeID)
	suite.Require().NoError(err)
	suite.Equal(def, *ct)

	suite.mockFeed.On("FetchProducts", mock.Anything).Return(testProducts(), nil).Once()
	suite.mockFeed.On("FetchCustomerTypes", mock.Anything).Return(testCustomerTypes(), nil).Once()
	suite.Require().NoError(suite.service.Load(suite.ctx))

	_, err = suite.service.GetCustomerType(suite.ctx, def.CustomerTypeID)
	suite.ErrorIs(err, apperrors.ErrNotFound, "the remote list is authoritative once loaded")

	crew, err := suite.service.GetCustomerType(suite.ctx, "crew")
	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(15).Equal(crew.DiscountPercentage))
}

func TestCatalogService(t *testing.T) {
	suite.Run(t, new(CatalogServiceTestSuite))
}
