package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/zoneline/fx_rates_backend/internal/apperrors"
	portssvc "github.com/zoneline/fx_rates_backend/internal/core/ports/services"
	"github.com/zoneline/fx_rates_backend/internal/core/services"
	"github.com/zoneline/fx_rates_backend/internal/dto"
	"github.com/zoneline/fx_rates_backend/internal/models"
)

// --- Test Suite ---
type CurrencyServiceTestSuite struct {
	suite.Suite
	mockCurrencyRepo *MockCurrencyRepository
	service          portssvc.CurrencySvcFacade
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	suite.service = services.NewCurrencyService(suite.mockCurrencyRepo)
}

// --- Test Cases ---

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_Success() {
	ctx := context.Background()
	req := dto.CreateCurrencyRequest{CurrencyCode: "USD", Name: "US Dollar"}

	suite.mockCurrencyRepo.On("SaveCurrency", ctx, mock.MatchedBy(func(c models.Currency) bool {
		return c.CurrencyCode == "USD" && c.Name == "US Dollar" && !c.CreatedAt.IsZero()
	})).Return(nil).Once()

	currency, err := suite.service.CreateCurrency(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("USD", currency.CurrencyCode)
	suite.mockCurrencyRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_Duplicate() {
	ctx := context.Background()

	suite.mockCurrencyRepo.On("SaveCurrency", ctx, mock.Anything).
		Return(apperrors.ErrDuplicate).Once()

	currency, err := suite.service.CreateCurrency(ctx, dto.CreateCurrencyRequest{CurrencyCode: "USD", Name: "US Dollar"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(currency)
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_NotFound() {
	ctx := context.Background()

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "XXX").
		Return(nil, apperrors.ErrNotFound).Once()

	currency, err := suite.service.GetCurrencyByCode(ctx, "XXX")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(currency)
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_NilBecomesEmpty() {
	ctx := context.Background()

	suite.mockCurrencyRepo.On("ListCurrencies", ctx).Return(nil, nil).Once()

	currencies, err := suite.service.ListCurrencies(ctx)

	suite.Require().NoError(err)
	suite.NotNil(currencies)
	suite.Empty(currencies)
}

func TestCurrencyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
