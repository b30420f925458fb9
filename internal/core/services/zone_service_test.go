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
type ZoneServiceTestSuite struct {
	suite.Suite
	mockZoneRepo       *MockZoneRepository
	mockSourceRepo     *MockSourceRepository
	mockActivationRepo *MockActivationRepository
	mockCurrencyRepo   *MockCurrencyRepository
	service            portssvc.ZoneSvcFacade
}

func (suite *ZoneServiceTestSuite) SetupTest() {
	suite.mockZoneRepo = new(MockZoneRepository)
	suite.mockSourceRepo = new(MockSourceRepository)
	suite.mockActivationRepo = new(MockActivationRepository)
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	suite.service = services.NewZoneService(
		suite.mockZoneRepo,
		suite.mockSourceRepo,
		suite.mockActivationRepo,
		suite.mockCurrencyRepo,
	)
}

// --- Test Cases ---

func (suite *ZoneServiceTestSuite) TestCreateZone_Success() {
	ctx := context.Background()
	req := dto.CreateZoneRequest{Name: "Test Zone"}

	suite.mockZoneRepo.On("SaveZone", ctx, mock.MatchedBy(func(z models.Zone) bool {
		return z.Name == req.Name && z.IsActive && z.ZoneID != ""
	})).Return(nil).Once()

	zone, err := suite.service.CreateZone(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(zone)
	suite.Equal(req.Name, zone.Name)
	suite.True(zone.IsActive)
	suite.mockZoneRepo.AssertExpectations(suite.T())
}

func (suite *ZoneServiceTestSuite) TestCreateZone_UnknownBaseCurrency() {
	ctx := context.Background()
	base := "XXX"
	req := dto.CreateZoneRequest{Name: "Test Zone", BaseCurrencyCode: &base}

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "XXX").
		Return(nil, apperrors.ErrNotFound).Once()

	zone, err := suite.service.CreateZone(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(zone)
	suite.mockZoneRepo.AssertNotCalled(suite.T(), "SaveZone", mock.Anything, mock.Anything)
}

func (suite *ZoneServiceTestSuite) TestUpdateZone_TogglesActiveFlag() {
	ctx := context.Background()
	inactive := false

	suite.mockZoneRepo.On("FindZoneByID", ctx, "zone-1").
		Return(&models.Zone{ZoneID: "zone-1", Name: "Test Zone", IsActive: true}, nil).Once()
	suite.mockZoneRepo.On("UpdateZone", ctx, mock.MatchedBy(func(z models.Zone) bool {
		return z.ZoneID == "zone-1" && !z.IsActive
	})).Return(nil).Once()

	zone, err := suite.service.UpdateZone(ctx, "zone-1", dto.UpdateZoneRequest{IsActive: &inactive})

	suite.Require().NoError(err)
	suite.False(zone.IsActive)
	suite.mockZoneRepo.AssertExpectations(suite.T())
}

func (suite *ZoneServiceTestSuite) TestSetSource_ZoneNotFound() {
	ctx := context.Background()

	suite.mockZoneRepo.On("FindZoneByID", ctx, "zone-1").
		Return(nil, apperrors.ErrNotFound).Once()

	source, err := suite.service.SetSource(ctx, "zone-1", dto.SetSourceRequest{
		Name: "Central Bank", SourceURL: "https://example.org/rates", ScraperName: "central_bank",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(source)
	suite.mockSourceRepo.AssertNotCalled(suite.T(), "SaveSource", mock.Anything, mock.Anything)
}

func (suite *ZoneServiceTestSuite) TestSetActivation_UppercasesCode() {
	ctx := context.Background()

	suite.mockZoneRepo.On("FindZoneByID", ctx, "zone-1").
		Return(&models.Zone{ZoneID: "zone-1", IsActive: true}, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "USD").
		Return(&models.Currency{CurrencyCode: "USD"}, nil).Once()
	suite.mockActivationRepo.On("UpsertActivation", ctx, models.Activation{
		ZoneID: "zone-1", CurrencyCode: "USD", IsActive: true,
	}).Return(nil).Once()

	activation, err := suite.service.SetActivation(ctx, "zone-1", "usd", true)

	suite.Require().NoError(err)
	suite.Equal("USD", activation.CurrencyCode)
	suite.mockActivationRepo.AssertExpectations(suite.T())
}

func (suite *ZoneServiceTestSuite) TestSetActivation_UnknownCurrency() {
	ctx := context.Background()

	suite.mockZoneRepo.On("FindZoneByID", ctx, "zone-1").
		Return(&models.Zone{ZoneID: "zone-1", IsActive: true}, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "XXX").
		Return(nil, apperrors.ErrNotFound).Once()

	activation, err := suite.service.SetActivation(ctx, "zone-1", "XXX", true)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(activation)
	suite.mockActivationRepo.AssertNotCalled(suite.T(), "UpsertActivation", mock.Anything, mock.Anything)
}

func TestZoneServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ZoneServiceTestSuite))
}
