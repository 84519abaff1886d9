package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/market_prices_app/internal/apperrors"
	"github.com/SscSPs/market_prices_app/internal/core/domain"
	portssvc "github.com/SscSPs/market_prices_app/internal/core/ports/services"
	"github.com/SscSPs/market_prices_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock series repository ---
type MockSeriesRepository[R any] struct {
	mock.Mock
}

func (m *MockSeriesRepository[R]) FetchLatestPerKey(ctx context.Context, depth int) ([]R, error) {
	args := m.Called(ctx, depth)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]R), args.Error(1)
}

func (m *MockSeriesRepository[R]) FetchHistory(ctx context.Context, query domain.SeriesQuery) ([]R, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]R), args.Error(1)
}

func (m *MockSeriesRepository[R]) FetchStatistics(ctx context.Context) (*domain.StoreStatistics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StoreStatistics), args.Error(1)
}

var fixedNow = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func price(id int64, key, at, value string) domain.PriceRecord {
	return domain.PriceRecord{
		ID:        id,
		Key:       key,
		Timestamp: ts(at),
		Value:     decimal.RequireFromString(value),
		Currency:  "USD",
		Unit:      "t",
		Source:    key + " LME Cash",
	}
}

func rate(id int64, quote, at, value string) domain.RateRecord {
	return domain.RateRecord{
		ID:            id,
		BaseCurrency:  "EUR",
		QuoteCurrency: quote,
		RefDate:       ts(at),
		Rate:          decimal.RequireFromString(value),
	}
}

// --- Price service suite ---
type PriceServiceTestSuite struct {
	suite.Suite
	mockRepo *MockSeriesRepository[domain.PriceRecord]
	service  portssvc.PriceSvcFacade
}

func (suite *PriceServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockSeriesRepository[domain.PriceRecord])
	suite.service = services.NewPriceService(suite.mockRepo,
		services.WithClock(func() time.Time { return fixedNow }),
		services.WithHistoryWindow(7, 3),
		services.WithExportWindow(30, 100),
	)
}

func (suite *PriceServiceTestSuite) TestLatest_ResolvesOnePerKey() {
	ctx := context.Background()
	rows := []domain.PriceRecord{
		price(3, "Nickel", "2025-03-14T10:00:00Z", "16000"),
		price(2, "Copper", "2025-03-14T10:00:00Z", "9100"),
		price(1, "Copper", "2025-03-13T10:00:00Z", "9000"),
	}
	suite.mockRepo.On("FetchLatestPerKey", mock.Anything, 1).Return(rows, nil).Once()

	latest, err := suite.service.Latest(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(latest, 2)
	suite.Equal("Copper", latest[0].Key)
	suite.True(latest[0].Value.Equal(decimal.NewFromInt(9100)))
	suite.Equal("Nickel", latest[1].Key)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PriceServiceTestSuite) TestLatest_StoreUnavailable() {
	ctx := context.Background()
	storeErr := apperrors.NewStoreUnavailableError("failed to query metal_prices", context.DeadlineExceeded)
	suite.mockRepo.On("FetchLatestPerKey", mock.Anything, 1).Return(nil, storeErr).Once()

	latest, err := suite.service.Latest(ctx)

	suite.Require().Error(err)
	suite.Nil(latest)
	suite.ErrorIs(err, apperrors.ErrStoreUnavailable)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PriceServiceTestSuite) TestHistory_DefaultWindowAndPaging() {
	ctx := context.Background()
	rows := []domain.PriceRecord{
		price(4, "Copper", "2025-03-15T09:00:00Z", "9300"),
		price(3, "Copper", "2025-03-14T09:00:00Z", "9200"),
		price(2, "Copper", "2025-03-13T09:00:00Z", "9100"),
		price(1, "Copper", "2025-03-12T09:00:00Z", "9000"),
	}
	suite.mockRepo.On("FetchHistory", mock.Anything, mock.MatchedBy(func(q domain.SeriesQuery) bool {
		return q.From != nil && q.From.Equal(fixedNow.AddDate(0, 0, -7)) &&
			q.Until == nil && q.Key == "" && q.Limit == 4 && q.Before == nil
	})).Return(rows, nil).Once()

	page, err := suite.service.History(ctx, domain.HistoryFilter{Key: "ALL"}, 0, nil)

	suite.Require().NoError(err)
	suite.Len(page.Records, 3)
	suite.Require().NotNil(page.NextCursor)
	suite.Equal(int64(2), page.NextCursor.ID)
	suite.True(page.NextCursor.Timestamp.Equal(ts("2025-03-13T09:00:00Z")))
	suite.Require().NotNil(page.NextCursor.From)
	suite.True(page.NextCursor.From.Equal(fixedNow.AddDate(0, 0, -7)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PriceServiceTestSuite) TestHistory_CursorKeepsFirstPageWindow() {
	ctx := context.Background()
	// The first page was served two days before the current clock.
	firstFrom := fixedNow.AddDate(0, 0, -9)
	after := &domain.SeriesCursor{Timestamp: ts("2025-03-07T09:00:00Z"), ID: 5, From: &firstFrom}
	rows := []domain.PriceRecord{
		price(4, "Copper", "2025-03-06T09:00:00Z", "9000"),
		price(3, "Copper", "2025-03-05T09:00:00Z", "8900"),
	}
	suite.mockRepo.On("FetchHistory", mock.Anything, mock.MatchedBy(func(q domain.SeriesQuery) bool {
		return q.From != nil && q.From.Equal(firstFrom) && q.Before == after && q.Limit == 2
	})).Return(rows, nil).Once()

	page, err := suite.service.History(ctx, domain.HistoryFilter{Days: 7}, 1, after)

	suite.Require().NoError(err)
	suite.Len(page.Records, 1)
	suite.Require().NotNil(page.NextCursor)
	suite.Require().NotNil(page.NextCursor.From)
	suite.True(page.NextCursor.From.Equal(firstFrom))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PriceServiceTestSuite) TestHistory_LastPageHasNoCursor() {
	ctx := context.Background()
	after := &domain.SeriesCursor{Timestamp: ts("2025-03-13T09:00:00Z"), ID: 2}
	rows := []domain.PriceRecord{price(1, "Copper", "2025-03-12T09:00:00Z", "9000")}
	suite.mockRepo.On("FetchHistory", mock.Anything, mock.MatchedBy(func(q domain.SeriesQuery) bool {
		return q.Before == after && q.Key == "Copper" && q.Limit == 3
	})).Return(rows, nil).Once()

	page, err := suite.service.History(ctx, domain.HistoryFilter{Key: "Copper"}, 2, after)

	suite.Require().NoError(err)
	suite.Len(page.Records, 1)
	suite.Nil(page.NextCursor)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PriceServiceTestSuite) TestHistory_MalformedFilterRejected() {
	ctx := context.Background()

	page, err := suite.service.History(ctx, domain.HistoryFilter{StartDate: "15/03/2025"}, 0, nil)

	suite.Require().Error(err)
	suite.Nil(page)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "FetchHistory", mock.Anything, mock.Anything)
}

func (suite *PriceServiceTestSuite) TestHistory_PermissiveIgnoresMalformedValue() {
	ctx := context.Background()
	svc := services.NewPriceService(suite.mockRepo,
		services.WithClock(func() time.Time { return fixedNow }),
		services.WithStrictFilters(false),
	)
	suite.mockRepo.On("FetchHistory", mock.Anything, mock.MatchedBy(func(q domain.SeriesQuery) bool {
		return q.From != nil && q.From.Equal(fixedNow.AddDate(0, 0, -7))
	})).Return([]domain.PriceRecord{}, nil).Once()

	page, err := svc.History(ctx, domain.HistoryFilter{StartDate: "15/03/2025"}, 0, nil)

	suite.Require().NoError(err)
	suite.Empty(page.Records)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PriceServiceTestSuite) TestVariations_WithoutFilterUsesTwoNewestPerKey() {
	ctx := context.Background()
	rows := []domain.PriceRecord{
		price(2, "Copper", "2025-03-14T10:00:00Z", "9180"),
		price(1, "Copper", "2025-03-13T10:00:00Z", "9000"),
		price(3, "Nickel", "2025-03-14T10:00:00Z", "16000"),
	}
	suite.mockRepo.On("FetchLatestPerKey", mock.Anything, 2).Return(rows, nil).Once()

	variations, err := suite.service.Variations(ctx, nil)

	suite.Require().NoError(err)
	suite.Require().Len(variations, 2)
	suite.Equal("Copper", variations[0].Key)
	suite.Require().NotNil(variations[0].VariationPercent)
	suite.Equal("2", variations[0].VariationPercent.String())
	suite.Nil(variations[1].PreviousValue)
	suite.Nil(variations[1].VariationPercent)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PriceServiceTestSuite) TestVariations_KeyOnlyFilterSkipsWindow() {
	ctx := context.Background()
	rows := []domain.PriceRecord{
		price(2, "Copper", "2025-02-03T10:00:00Z", "9180"),
		price(1, "Copper", "2025-01-20T10:00:00Z", "9000"),
		price(3, "Nickel", "2025-03-14T10:00:00Z", "16000"),
	}
	suite.mockRepo.On("FetchLatestPerKey", mock.Anything, 2).Return(rows, nil).Once()

	variations, err := suite.service.Variations(ctx, &domain.HistoryFilter{Key: "Copper"})

	suite.Require().NoError(err)
	suite.Require().Len(variations, 1)
	suite.Equal("Copper", variations[0].Key)
	suite.Require().NotNil(variations[0].VariationPercent)
	suite.Equal("2", variations[0].VariationPercent.String())
	suite.mockRepo.AssertNotCalled(suite.T(), "FetchHistory", mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PriceServiceTestSuite) TestVariations_WithFilterUsesWindow() {
	ctx := context.Background()
	suite.mockRepo.On("FetchHistory", mock.Anything, mock.MatchedBy(func(q domain.SeriesQuery) bool {
		return q.From != nil && q.From.Equal(fixedNow.AddDate(0, 0, -1)) && q.Limit == 100
	})).Return([]domain.PriceRecord{}, nil).Once()

	variations, err := suite.service.Variations(ctx, &domain.HistoryFilter{Days: 1})

	suite.Require().NoError(err)
	suite.Empty(variations)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PriceServiceTestSuite) TestMonthlySummary_MarchUsesSingleQuery() {
	ctx := context.Background()
	period, _ := domain.NewPeriod(2025, 3)
	rows := []domain.PriceRecord{
		price(3, "Copper", "2025-03-10T10:00:00Z", "9300"),
		price(2, "Copper", "2025-02-27T10:00:00Z", "9200"),
		price(1, "Copper", "2025-01-15T10:00:00Z", "9100"),
	}
	suite.mockRepo.On("FetchHistory", mock.Anything, mock.MatchedBy(func(q domain.SeriesQuery) bool {
		return q.From.Equal(ts("2025-01-01T00:00:00Z")) && q.Until.Equal(ts("2025-04-01T00:00:00Z")) && q.Key == ""
	})).Return(rows, nil).Once()

	summaries, err := suite.service.MonthlySummary(ctx, period, "all")

	suite.Require().NoError(err)
	suite.Require().Len(summaries, 1)
	s := summaries[0]
	suite.Equal("Copper", s.Key)
	suite.True(s.ClosingValue.Equal(decimal.NewFromInt(9300)))
	suite.Require().NotNil(s.PeriodValue)
	suite.True(s.PeriodValue.Equal(decimal.NewFromInt(9200)))
	suite.True(s.YTDAverage.Equal(decimal.NewFromInt(9200)))
	suite.Equal(3, s.YTDCount)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PriceServiceTestSuite) TestMonthlySummary_JanuaryQueriesPreviousDecember() {
	ctx := context.Background()
	period, _ := domain.NewPeriod(2025, 1)
	suite.mockRepo.On("FetchHistory", mock.Anything, mock.MatchedBy(func(q domain.SeriesQuery) bool {
		return q.From.Equal(ts("2025-01-01T00:00:00Z")) && q.Until.Equal(ts("2025-02-01T00:00:00Z"))
	})).Return([]domain.PriceRecord{price(2, "Copper", "2025-01-20T10:00:00Z", "9100")}, nil).Once()
	suite.mockRepo.On("FetchHistory", mock.Anything, mock.MatchedBy(func(q domain.SeriesQuery) bool {
		return q.From.Equal(ts("2024-12-01T00:00:00Z")) && q.Until.Equal(ts("2025-01-01T00:00:00Z"))
	})).Return([]domain.PriceRecord{price(1, "Copper", "2024-12-31T10:00:00Z", "8900")}, nil).Once()

	summaries, err := suite.service.MonthlySummary(ctx, period, "Copper")

	suite.Require().NoError(err)
	suite.Require().Len(summaries, 1)
	suite.Require().NotNil(summaries[0].PeriodValue)
	suite.True(summaries[0].PeriodValue.Equal(decimal.NewFromInt(8900)))
	suite.Equal(1, summaries[0].YTDCount)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PriceServiceTestSuite) TestPivot_UsesExportWindow() {
	ctx := context.Background()
	rows := []domain.PriceRecord{
		price(2, "Copper", "2025-03-14T10:00:00Z", "9100"),
		price(1, "Copper", "2025-03-13T10:00:00Z", "9000"),
	}
	suite.mockRepo.On("FetchHistory", mock.Anything, mock.MatchedBy(func(q domain.SeriesQuery) bool {
		return q.From.Equal(fixedNow.AddDate(0, 0, -30)) && q.Limit == 100
	})).Return(rows, nil).Once()

	table, err := suite.service.Pivot(ctx, domain.HistoryFilter{})

	suite.Require().NoError(err)
	suite.Equal([]string{"Copper"}, table.RowKeys)
	suite.Len(table.ColumnDates, 2)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PriceServiceTestSuite) TestPivot_ProductRowLabels() {
	ctx := context.Background()
	svc := services.NewPriceService(suite.mockRepo,
		services.WithClock(func() time.Time { return fixedNow }),
		services.WithProductRowLabels(true),
	)
	suite.mockRepo.On("FetchHistory", mock.Anything, mock.Anything).
		Return([]domain.PriceRecord{price(1, "Copper", "2025-03-14T10:00:00Z", "9100")}, nil).Once()

	table, err := svc.Pivot(ctx, domain.HistoryFilter{})

	suite.Require().NoError(err)
	suite.Equal([]string{"Copper LME Cash"}, table.RowKeys)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PriceServiceTestSuite) TestStatistics() {
	ctx := context.Background()
	first, last := ts("2024-06-01T00:00:00Z"), ts("2025-03-14T10:00:00Z")
	suite.mockRepo.On("FetchStatistics", mock.Anything).Return(&domain.StoreStatistics{
		TotalRecords: 1200, TotalKeys: 6, FirstRecord: &first, LastUpdate: &last,
	}, nil).Once()
	suite.mockRepo.On("FetchLatestPerKey", mock.Anything, 2).
		Return([]domain.PriceRecord{price(1, "Copper", "2025-03-14T10:00:00Z", "9100")}, nil).Once()

	stats, err := suite.service.Statistics(ctx)

	suite.Require().NoError(err)
	suite.Equal(int64(1200), stats.TotalRecords)
	suite.Equal(int64(6), stats.TotalKeys)
	suite.Len(stats.Variations, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PriceServiceTestSuite) TestStatistics_StoreError() {
	ctx := context.Background()
	suite.mockRepo.On("FetchStatistics", mock.Anything).
		Return(nil, apperrors.NewStoreUnavailableError("down", nil)).Once()

	stats, err := suite.service.Statistics(ctx)

	suite.Require().Error(err)
	suite.Nil(stats)
	suite.ErrorIs(err, apperrors.ErrStoreUnavailable)
	suite.mockRepo.AssertNotCalled(suite.T(), "FetchLatestPerKey", mock.Anything, mock.Anything)
}

func TestPriceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PriceServiceTestSuite))
}

// --- Rate service suite ---
type RateServiceTestSuite struct {
	suite.Suite
	mockRepo *MockSeriesRepository[domain.RateRecord]
	service  portssvc.RateSvcFacade
}

func (suite *RateServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockSeriesRepository[domain.RateRecord])
	suite.service = services.NewRateService(suite.mockRepo,
		services.WithClock(func() time.Time { return fixedNow }),
		services.WithStoreTimeout(time.Second),
	)
}

func (suite *RateServiceTestSuite) TestLatest_AppliesStoreTimeout() {
	ctx := context.Background()
	suite.mockRepo.On("FetchLatestPerKey", mock.MatchedBy(func(c context.Context) bool {
		_, ok := c.Deadline()
		return ok
	}), 1).Return([]domain.RateRecord{rate(1, "USD", "2025-03-14T00:00:00Z", "1.08")}, nil).Once()

	latest, err := suite.service.Latest(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(latest, 1)
	suite.Equal("USD", latest[0].QuoteCurrency)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RateServiceTestSuite) TestMonthlySummary_YTDAverage() {
	ctx := context.Background()
	period, _ := domain.NewPeriod(2025, 2)
	rows := []domain.RateRecord{
		rate(3, "USD", "2025-02-28T00:00:00Z", "1.2"),
		rate(2, "USD", "2025-01-31T00:00:00Z", "1.1"),
		rate(1, "USD", "2025-01-02T00:00:00Z", "1.0"),
	}
	suite.mockRepo.On("FetchHistory", mock.Anything, mock.Anything).Return(rows, nil).Once()

	summaries, err := suite.service.MonthlySummary(ctx, period, "USD")

	suite.Require().NoError(err)
	suite.Require().Len(summaries, 1)
	suite.Equal("EUR", summaries[0].Meta.Currency)
	suite.True(summaries[0].YTDAverage.Equal(decimal.RequireFromString("1.1")))
	suite.True(summaries[0].PeriodValue.Equal(decimal.RequireFromString("1.1")))
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RateServiceTestSuite))
}
