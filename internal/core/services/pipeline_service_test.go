package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/zoneline/fx_rates_backend/internal/apperrors"
	"github.com/zoneline/fx_rates_backend/internal/core/ports"
	portssvc "github.com/zoneline/fx_rates_backend/internal/core/ports/services"
	"github.com/zoneline/fx_rates_backend/internal/core/services"
	"github.com/zoneline/fx_rates_backend/internal/dto"
	"github.com/zoneline/fx_rates_backend/internal/models"
)

// --- Test Suite ---
type PipelineServiceTestSuite struct {
	suite.Suite
	mockZoneRepo       *MockZoneRepository
	mockSourceRepo     *MockSourceRepository
	mockRawRepo        *MockRawRecordRepository
	mockAliasRepo      *MockAliasRepository
	mockActivationRepo *MockActivationRepository
	mockRateRepo       *MockRateRepository
	service            portssvc.PipelineSvcFacade

	zoneID  string
	pubDate time.Time
}

func (suite *PipelineServiceTestSuite) SetupTest() {
	suite.mockZoneRepo = new(MockZoneRepository)
	suite.mockSourceRepo = new(MockSourceRepository)
	suite.mockRawRepo = new(MockRawRecordRepository)
	suite.mockAliasRepo = new(MockAliasRepository)
	suite.mockActivationRepo = new(MockActivationRepository)
	suite.mockRateRepo = new(MockRateRepository)
	suite.service = services.NewPipelineService(
		suite.mockZoneRepo,
		suite.mockSourceRepo,
		suite.mockRawRepo,
		suite.mockAliasRepo,
		suite.mockActivationRepo,
		suite.mockRateRepo,
		time.Minute,
	)

	suite.zoneID = "zone-1"
	suite.pubDate = time.Date(2024, 5, 7, 0, 0, 0, 0, time.UTC)
}

func (suite *PipelineServiceTestSuite) expectSourceAndZone(isActive bool) {
	suite.mockSourceRepo.On("FindSourceByZoneID", mock.Anything, suite.zoneID).
		Return(&models.Source{ZoneID: suite.zoneID, ScraperName: "central_bank"}, nil).Once()
	suite.mockZoneRepo.On("FindZoneByID", mock.Anything, suite.zoneID).
		Return(&models.Zone{ZoneID: suite.zoneID, Name: "Test Zone", IsActive: isActive}, nil).Once()
}

func (suite *PipelineServiceTestSuite) expectLookupTables(aliases []models.Alias, activeCodes []string) {
	suite.mockAliasRepo.On("ListAliases", mock.Anything).Return(aliases, nil).Once()
	suite.mockActivationRepo.On("ListActiveCurrencyCodes", mock.Anything, suite.zoneID).Return(activeCodes, nil).Once()
}

func rawRecord(name, code, value string, multiplier int) models.RawRecord {
	return models.RawRecord{
		RawName:       name,
		RawCode:       code,
		RawValue:      decimal.RequireFromString(value),
		RawMultiplier: multiplier,
	}
}

// --- Test Cases ---

func (suite *PipelineServiceTestSuite) TestRunPipeline_MissingSource() {
	suite.mockSourceRepo.On("FindSourceByZoneID", mock.Anything, suite.zoneID).
		Return(nil, apperrors.ErrNotFound).Once()

	summary, err := suite.service.RunPipeline(context.Background(), suite.zoneID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(summary)
	suite.mockSourceRepo.AssertExpectations(suite.T())
	suite.mockRawRepo.AssertNotCalled(suite.T(), "FindLatestPublicationDate", mock.Anything, mock.Anything)
}

func (suite *PipelineServiceTestSuite) TestRunPipeline_ZoneInactive() {
	suite.expectSourceAndZone(false)

	summary, err := suite.service.RunPipeline(context.Background(), suite.zoneID)

	suite.Require().NoError(err)
	suite.Equal(dto.PipelineStatusZoneInactive, summary.Status)
	suite.Nil(summary.PublicationDate)
	suite.Zero(summary.Injected)
	suite.mockRawRepo.AssertNotCalled(suite.T(), "FindLatestPublicationDate", mock.Anything, mock.Anything)
}

func (suite *PipelineServiceTestSuite) TestRunPipeline_NoData() {
	suite.expectSourceAndZone(true)
	suite.mockRawRepo.On("FindLatestPublicationDate", mock.Anything, suite.zoneID).Return(nil, nil).Once()

	summary, err := suite.service.RunPipeline(context.Background(), suite.zoneID)

	suite.Require().NoError(err)
	suite.Equal(dto.PipelineStatusNoData, summary.Status)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "UpsertCurrentRate", mock.Anything, mock.Anything)
}

func (suite *PipelineServiceTestSuite) TestRunPipeline_CountsEveryOutcome() {
	suite.expectSourceAndZone(true)
	suite.mockRawRepo.On("FindLatestPublicationDate", mock.Anything, suite.zoneID).Return(&suite.pubDate, nil).Once()
	suite.mockRawRepo.On("ListByPublicationDate", mock.Anything, suite.zoneID, suite.pubDate).Return([]models.RawRecord{
		rawRecord("US DOLLAR", "", "2.9056", 1),       // resolved by name alias, injected
		rawRecord("Japanese Yen", "JPY", "271", 100),  // resolved by code alias, injected
		rawRecord("EURO", "EUR", "3.3595", 1),         // resolved but not activated
		rawRecord("Special Drawing", "XDR", "4.1", 1), // no dictionary entry: unresolved
		rawRecord("Pound", "GBP", "3.7", 1),           // identical to stored row
	}, nil).Once()
	suite.expectLookupTables(
		[]models.Alias{
			{Alias: "US DOLLAR", CurrencyCode: "USD"},
			{Alias: "JPY", CurrencyCode: "JPY"},
			{Alias: "EUR", CurrencyCode: "EUR"},
			{Alias: "GBP", CurrencyCode: "GBP"},
		},
		[]string{"USD", "JPY", "GBP"},
	)

	suite.mockRateRepo.On("UpsertCurrentRate", mock.Anything, mock.MatchedBy(func(r models.NormalizedRate) bool {
		return r.CurrencyCode == "USD" && r.UnitRate.Equal(decimal.RequireFromString("2.9056"))
	})).Return(ports.UpsertOutcomeInjected, nil).Once()
	suite.mockRateRepo.On("UpsertCurrentRate", mock.Anything, mock.MatchedBy(func(r models.NormalizedRate) bool {
		return r.CurrencyCode == "JPY" && r.UnitRate.Equal(decimal.RequireFromString("2.71"))
	})).Return(ports.UpsertOutcomeInjected, nil).Once()
	suite.mockRateRepo.On("UpsertCurrentRate", mock.Anything, mock.MatchedBy(func(r models.NormalizedRate) bool {
		return r.CurrencyCode == "GBP"
	})).Return(ports.UpsertOutcomeSkippedIdentical, nil).Once()

	summary, err := suite.service.RunPipeline(context.Background(), suite.zoneID)

	suite.Require().NoError(err)
	suite.Equal(dto.PipelineStatusCompleted, summary.Status)
	suite.Require().NotNil(summary.PublicationDate)
	suite.Equal("2024-05-07", *summary.PublicationDate)
	suite.Equal(2, summary.Injected)
	suite.Equal(1, summary.SkippedIdentical)
	suite.Equal(1, summary.Unresolved)
	suite.Equal(1, summary.Inactive)
	suite.Zero(summary.Errors)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *PipelineServiceTestSuite) TestRunPipeline_RawCodeResolvesThroughAliases() {
	suite.expectSourceAndZone(true)
	suite.mockRawRepo.On("FindLatestPublicationDate", mock.Anything, suite.zoneID).Return(&suite.pubDate, nil).Once()
	suite.mockRawRepo.On("ListByPublicationDate", mock.Anything, suite.zoneID, suite.pubDate).Return([]models.RawRecord{
		rawRecord("Devise 12", "Yen japonais", "271", 100), // code column carries a local label, aliased
		rawRecord("US Dollar", "USD", "2.9056", 1),         // real ISO code but no dictionary entry
	}, nil).Once()
	suite.expectLookupTables([]models.Alias{{Alias: "YEN JAPONAIS", CurrencyCode: "JPY"}}, []string{"JPY", "USD"})

	suite.mockRateRepo.On("UpsertCurrentRate", mock.Anything, mock.MatchedBy(func(r models.NormalizedRate) bool {
		return r.CurrencyCode == "JPY" && r.UnitRate.Equal(decimal.RequireFromString("2.71"))
	})).Return(ports.UpsertOutcomeInjected, nil).Once()

	summary, err := suite.service.RunPipeline(context.Background(), suite.zoneID)

	suite.Require().NoError(err)
	suite.Equal(1, summary.Injected)
	suite.Equal(1, summary.Unresolved)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *PipelineServiceTestSuite) TestRunPipeline_RetriesOnceOnConflict() {
	suite.expectSourceAndZone(true)
	suite.mockRawRepo.On("FindLatestPublicationDate", mock.Anything, suite.zoneID).Return(&suite.pubDate, nil).Once()
	suite.mockRawRepo.On("ListByPublicationDate", mock.Anything, suite.zoneID, suite.pubDate).Return([]models.RawRecord{
		rawRecord("US DOLLAR", "USD", "2.9056", 1),
	}, nil).Once()
	suite.expectLookupTables([]models.Alias{{Alias: "USD", CurrencyCode: "USD"}}, []string{"USD"})

	suite.mockRateRepo.On("UpsertCurrentRate", mock.Anything, mock.AnythingOfType("models.NormalizedRate")).
		Return(ports.UpsertOutcomeInjected, apperrors.ErrConflict).Once()
	suite.mockRateRepo.On("UpsertCurrentRate", mock.Anything, mock.AnythingOfType("models.NormalizedRate")).
		Return(ports.UpsertOutcomeInjected, nil).Once()

	summary, err := suite.service.RunPipeline(context.Background(), suite.zoneID)

	suite.Require().NoError(err)
	suite.Equal(1, summary.Injected)
	suite.Zero(summary.Errors)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *PipelineServiceTestSuite) TestRunPipeline_RecordErrorDoesNotAbortRun() {
	suite.expectSourceAndZone(true)
	suite.mockRawRepo.On("FindLatestPublicationDate", mock.Anything, suite.zoneID).Return(&suite.pubDate, nil).Once()
	suite.mockRawRepo.On("ListByPublicationDate", mock.Anything, suite.zoneID, suite.pubDate).Return([]models.RawRecord{
		rawRecord("US Dollar", "USD", "2.9056", 1),
		rawRecord("Euro", "EUR", "3.3595", 1),
	}, nil).Once()
	suite.expectLookupTables([]models.Alias{
		{Alias: "USD", CurrencyCode: "USD"},
		{Alias: "EUR", CurrencyCode: "EUR"},
	}, []string{"USD", "EUR"})

	suite.mockRateRepo.On("UpsertCurrentRate", mock.Anything, mock.MatchedBy(func(r models.NormalizedRate) bool {
		return r.CurrencyCode == "USD"
	})).Return(ports.UpsertOutcomeInjected, assert.AnError).Once()
	suite.mockRateRepo.On("UpsertCurrentRate", mock.Anything, mock.MatchedBy(func(r models.NormalizedRate) bool {
		return r.CurrencyCode == "EUR"
	})).Return(ports.UpsertOutcomeInjected, nil).Once()

	summary, err := suite.service.RunPipeline(context.Background(), suite.zoneID)

	suite.Require().NoError(err)
	suite.Equal(dto.PipelineStatusCompleted, summary.Status)
	suite.Equal(1, summary.Injected)
	suite.Equal(1, summary.Errors)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *PipelineServiceTestSuite) TestRunPipeline_SecondRunSkipsIdentical() {
	for range [2]struct{}{} {
		suite.expectSourceAndZone(true)
		suite.mockRawRepo.On("FindLatestPublicationDate", mock.Anything, suite.zoneID).Return(&suite.pubDate, nil).Once()
		suite.mockRawRepo.On("ListByPublicationDate", mock.Anything, suite.zoneID, suite.pubDate).Return([]models.RawRecord{
			rawRecord("US Dollar", "USD", "2.9056", 1),
		}, nil).Once()
		suite.expectLookupTables([]models.Alias{{Alias: "USD", CurrencyCode: "USD"}}, []string{"USD"})
	}

	suite.mockRateRepo.On("UpsertCurrentRate", mock.Anything, mock.AnythingOfType("models.NormalizedRate")).
		Return(ports.UpsertOutcomeInjected, nil).Once()
	suite.mockRateRepo.On("UpsertCurrentRate", mock.Anything, mock.AnythingOfType("models.NormalizedRate")).
		Return(ports.UpsertOutcomeSkippedIdentical, nil).Once()

	first, err := suite.service.RunPipeline(context.Background(), suite.zoneID)
	suite.Require().NoError(err)
	suite.Equal(1, first.Injected)
	suite.Zero(first.SkippedIdentical)

	second, err := suite.service.RunPipeline(context.Background(), suite.zoneID)
	suite.Require().NoError(err)
	suite.Zero(second.Injected)
	suite.Equal(1, second.SkippedIdentical)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func TestPipelineServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PipelineServiceTestSuite))
}
