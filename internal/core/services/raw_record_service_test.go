package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/zoneline/fx_rates_backend/internal/apperrors"
	portssvc "github.com/zoneline/fx_rates_backend/internal/core/ports/services"
	"github.com/zoneline/fx_rates_backend/internal/core/services"
	"github.com/zoneline/fx_rates_backend/internal/dto"
	"github.com/zoneline/fx_rates_backend/internal/models"
)

// --- Test Suite ---
type RawRecordServiceTestSuite struct {
	suite.Suite
	mockSourceRepo *MockSourceRepository
	mockRawRepo    *MockRawRecordRepository
	service        portssvc.RawRecordSvcFacade
}

func (suite *RawRecordServiceTestSuite) SetupTest() {
	suite.mockSourceRepo = new(MockSourceRepository)
	suite.mockRawRepo = new(MockRawRecordRepository)
	suite.service = services.NewRawRecordService(suite.mockSourceRepo, suite.mockRawRepo)
}

// --- Test Cases ---

func (suite *RawRecordServiceTestSuite) TestIngestRawRecords_Success() {
	ctx := context.Background()
	date := "2024-05-07"
	req := dto.IngestRawRecordsRequest{Records: []dto.RawRecordItem{
		{PublicationDate: &date, RawName: "US Dollar", RawCode: "USD", RawValue: decimal.RequireFromString("1.08"), RawMultiplier: 1},
		{RawName: "Japanese Yen", RawCode: "JPY", RawValue: decimal.RequireFromString("271"), RawMultiplier: 100},
	}}

	suite.mockSourceRepo.On("FindSourceByZoneID", ctx, "zone-1").
		Return(&models.Source{ZoneID: "zone-1", Name: "Central Bank"}, nil).Once()
	suite.mockRawRepo.On("ReplaceBatch", ctx, "zone-1", mock.MatchedBy(func(records []models.RawRecord) bool {
		if len(records) != 2 {
			return false
		}
		first, second := records[0], records[1]
		return first.RawRecordID != "" &&
			first.PublicationDate != nil && first.PublicationDate.Format("2006-01-02") == date &&
			second.PublicationDate == nil &&
			second.RawMultiplier == 100
	})).Return(nil).Once()

	stored, err := suite.service.IngestRawRecords(ctx, "zone-1", req)

	suite.Require().NoError(err)
	suite.Equal(2, stored)
	suite.mockRawRepo.AssertExpectations(suite.T())
}

func (suite *RawRecordServiceTestSuite) TestIngestRawRecords_NoSourceConfigured() {
	ctx := context.Background()

	suite.mockSourceRepo.On("FindSourceByZoneID", ctx, "zone-1").
		Return(nil, apperrors.ErrNotFound).Once()

	stored, err := suite.service.IngestRawRecords(ctx, "zone-1", dto.IngestRawRecordsRequest{
		Records: []dto.RawRecordItem{{RawName: "US Dollar", RawCode: "USD", RawValue: decimal.NewFromInt(1), RawMultiplier: 1}},
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Zero(stored)
	suite.mockRawRepo.AssertNotCalled(suite.T(), "ReplaceBatch", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RawRecordServiceTestSuite) TestListRecentRawRecords_DefaultLimit() {
	ctx := context.Background()

	suite.mockRawRepo.On("ListRecent", ctx, "zone-1", 100).
		Return([]models.RawRecord{}, nil).Once()

	records, err := suite.service.ListRecentRawRecords(ctx, "zone-1", 0)

	suite.Require().NoError(err)
	suite.Empty(records)
	suite.mockRawRepo.AssertExpectations(suite.T())
}

func TestRawRecordServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RawRecordServiceTestSuite))
}
