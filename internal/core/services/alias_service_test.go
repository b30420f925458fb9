package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/zoneline/fx_rates_backend/internal/apperrors"
	portssvc "github.com/zoneline/fx_rates_backend/internal/core/ports/services"
	"github.com/zoneline/fx_rates_backend/internal/core/services"
	"github.com/zoneline/fx_rates_backend/internal/models"
)

// --- Test Suite ---
type AliasServiceTestSuite struct {
	suite.Suite
	mockAliasRepo    *MockAliasRepository
	mockCurrencyRepo *MockCurrencyRepository
	service          portssvc.AliasSvcFacade
}

func (suite *AliasServiceTestSuite) SetupTest() {
	suite.mockAliasRepo = new(MockAliasRepository)
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	suite.service = services.NewAliasService(suite.mockAliasRepo, suite.mockCurrencyRepo)
}

// --- Test Cases ---

func (suite *AliasServiceTestSuite) TestSaveAlias_UppercasesAndTrims() {
	ctx := context.Background()

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "USD").
		Return(&models.Currency{CurrencyCode: "USD"}, nil).Once()
	suite.mockAliasRepo.On("SaveAlias", ctx, models.Alias{
		Alias: "US DOLLAR", CurrencyCode: "USD",
	}).Return(nil).Once()

	entry, err := suite.service.SaveAlias(ctx, "  us dollar ", "usd")

	suite.Require().NoError(err)
	suite.Equal("US DOLLAR", entry.Alias)
	suite.Equal("USD", entry.CurrencyCode)
	suite.mockAliasRepo.AssertExpectations(suite.T())
}

func (suite *AliasServiceTestSuite) TestSaveAlias_EmptyAlias() {
	ctx := context.Background()

	entry, err := suite.service.SaveAlias(ctx, "   ", "USD")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(entry)
	suite.mockAliasRepo.AssertNotCalled(suite.T(), "SaveAlias", mock.Anything, mock.Anything)
}

func (suite *AliasServiceTestSuite) TestSaveAlias_UnknownCurrency() {
	ctx := context.Background()

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "XXX").
		Return(nil, apperrors.ErrNotFound).Once()

	entry, err := suite.service.SaveAlias(ctx, "UNKNOWN MONEY", "XXX")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(entry)
	suite.mockAliasRepo.AssertNotCalled(suite.T(), "SaveAlias", mock.Anything, mock.Anything)
}

func (suite *AliasServiceTestSuite) TestDeleteAlias_Uppercases() {
	ctx := context.Background()

	suite.mockAliasRepo.On("DeleteAlias", ctx, "US DOLLAR").Return(nil).Once()

	err := suite.service.DeleteAlias(ctx, "us dollar")

	suite.Require().NoError(err)
	suite.mockAliasRepo.AssertExpectations(suite.T())
}

func (suite *AliasServiceTestSuite) TestListAliases_NilBecomesEmpty() {
	ctx := context.Background()

	suite.mockAliasRepo.On("ListAliases", ctx).Return(nil, nil).Once()

	aliases, err := suite.service.ListAliases(ctx)

	suite.Require().NoError(err)
	suite.NotNil(aliases)
	suite.Empty(aliases)
}

func TestAliasServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AliasServiceTestSuite))
}
