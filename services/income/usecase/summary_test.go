package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jazahq/jaza-backend/internal/pkg/models"
	"github.com/jazahq/jaza-backend/services/income/mocks"
)

func newSummaryTestUC(t *testing.T) (*IncomeUC, *mocks.MockIncomeRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockIncomeRepo(ctrl)
	return NewIncomeUC(mockRepo, &models.Config{}), mockRepo
}

func utcDay(offsetDays int) time.Time {
	now := time.Now().UTC()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, offsetDays)
}

func incomeAt(created time.Time, amount float64, source string) models.IncomeRecord {
	return models.IncomeRecord{
		ID:        uuid.New(),
		Amount:    amount,
		Source:    source,
		CreatedAt: created,
	}
}

func TestDailySummary_ZeroFilledWindow(t *testing.T) {
	uc, mockRepo := newSummaryTestUC(t)
	userID := uuid.New()

	mockRepo.EXPECT().
		ListIncome(gomock.Any(), userID, gomock.Any(), nil).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, start, _ *time.Time) ([]models.IncomeRecord, error) {
			require.NotNil(t, start)
			assert.Equal(t, utcDay(-4), *start)
			return []models.IncomeRecord{
				incomeAt(utcDay(0).Add(10*time.Hour), 500, models.SourceManual),
				incomeAt(utcDay(0).Add(8*time.Hour), 250.50, models.SourceMpesa),
				incomeAt(utcDay(-3).Add(12*time.Hour), 100, models.SourceManual),
			}, nil
		})

	summary, err := uc.DailySummary(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, summary, 5)

	// Oldest day first, every day present even with no records
	assert.Equal(t, utcDay(-4).Format("2006-01-02"), summary[0].Date)
	assert.Equal(t, utcDay(0).Format("2006-01-02"), summary[4].Date)

	assert.Equal(t, 0.0, summary[0].Total)
	assert.Equal(t, 100.0, summary[1].Total)
	assert.Equal(t, 0.0, summary[2].Total)
	assert.Equal(t, 0.0, summary[3].Total)
	assert.Equal(t, 750.50, summary[4].Total)
}

func TestDailySummary_EmptyHistory(t *testing.T) {
	uc, mockRepo := newSummaryTestUC(t)
	userID := uuid.New()

	mockRepo.EXPECT().
		ListIncome(gomock.Any(), userID, gomock.Any(), nil).
		Return([]models.IncomeRecord{}, nil)

	summary, err := uc.DailySummary(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, summary, 5)
	for _, day := range summary {
		assert.Equal(t, 0.0, day.Total)
	}
}

func TestMonthlySummary_SparseAscending(t *testing.T) {
	uc, mockRepo := newSummaryTestUC(t)
	userID := uuid.New()

	mockRepo.EXPECT().
		ListIncome(gomock.Any(), userID, nil, nil).
		Return([]models.IncomeRecord{
			incomeAt(time.Date(2026, 3, 20, 9, 0, 0, 0, time.UTC), 300, models.SourceManual),
			incomeAt(time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC), 100, models.SourceMpesa),
			incomeAt(time.Date(2026, 1, 28, 9, 0, 0, 0, time.UTC), 200, models.SourceManual),
		}, nil)

	summary, err := uc.MonthlySummary(context.Background(), userID)
	require.NoError(t, err)

	// February has no records and must not appear
	require.Len(t, summary, 2)
	assert.Equal(t, models.BucketTotal{Period: "2026-01", Total: 300}, summary[0])
	assert.Equal(t, models.BucketTotal{Period: "2026-03", Total: 300}, summary[1])
}

func TestQuarterlySummary_OrderedByYearThenQuarter(t *testing.T) {
	uc, mockRepo := newSummaryTestUC(t)
	userID := uuid.New()

	mockRepo.EXPECT().
		ListIncome(gomock.Any(), userID, nil, nil).
		Return([]models.IncomeRecord{
			incomeAt(time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC), 400, models.SourceManual),
			incomeAt(time.Date(2025, 11, 3, 9, 0, 0, 0, time.UTC), 150, models.SourceMpesa),
			incomeAt(time.Date(2025, 4, 18, 9, 0, 0, 0, time.UTC), 250, models.SourceManual),
			incomeAt(time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC), 100, models.SourceMpesa),
		}, nil)

	summary, err := uc.QuarterlySummary(context.Background(), userID)
	require.NoError(t, err)

	// Chronological order, not lexicographic on the Q label
	require.Len(t, summary, 3)
	assert.Equal(t, models.BucketTotal{Period: "Q2-2025", Total: 250}, summary[0])
	assert.Equal(t, models.BucketTotal{Period: "Q4-2025", Total: 150}, summary[1])
	assert.Equal(t, models.BucketTotal{Period: "Q1-2026", Total: 500}, summary[2])
}

func TestQuarterlySummary_RoundsTotals(t *testing.T) {
	uc, mockRepo := newSummaryTestUC(t)
	userID := uuid.New()

	mockRepo.EXPECT().
		ListIncome(gomock.Any(), userID, nil, nil).
		Return([]models.IncomeRecord{
			incomeAt(time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC), 0.1, models.SourceManual),
			incomeAt(time.Date(2026, 5, 2, 9, 0, 0, 0, time.UTC), 0.2, models.SourceManual),
		}, nil)

	summary, err := uc.QuarterlySummary(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, summary, 1)
	assert.Equal(t, 0.3, summary[0].Total)
}

func TestDashboardSummary(t *testing.T) {
	uc, mockRepo := newSummaryTestUC(t)
	userID := uuid.New()

	mockRepo.EXPECT().
		ListIncome(gomock.Any(), userID, nil, nil).
		Return([]models.IncomeRecord{
			incomeAt(utcDay(0).Add(9*time.Hour), 1200, models.SourceMpesa),
			incomeAt(utcDay(-1).Add(9*time.Hour), 800, models.SourceManual),
			incomeAt(utcDay(-30).Add(9*time.Hour), 500, models.SourceMpesa),
		}, nil)

	summary, err := uc.DashboardSummary(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, 2500.0, summary.TotalIncome)
	assert.Equal(t, 1200.0, summary.TodayIncome)
	assert.Equal(t, 1700.0, summary.SourceBreakdown.Mpesa)
	assert.Equal(t, 800.0, summary.SourceBreakdown.Manual)
	assert.Equal(t, 3, summary.EntriesCount)

	// Breakdown always reconciles with the overall total
	assert.Equal(t, summary.TotalIncome, summary.SourceBreakdown.Mpesa+summary.SourceBreakdown.Manual)
}

func TestDashboardSummary_EmptyHistory(t *testing.T) {
	uc, mockRepo := newSummaryTestUC(t)
	userID := uuid.New()

	mockRepo.EXPECT().
		ListIncome(gomock.Any(), userID, nil, nil).
		Return(nil, nil)

	summary, err := uc.DashboardSummary(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, 0.0, summary.TotalIncome)
	assert.Equal(t, 0.0, summary.TodayIncome)
	assert.Equal(t, 0, summary.EntriesCount)
}

func TestDashboardSummary_RepoError(t *testing.T) {
	uc, mockRepo := newSummaryTestUC(t)

	mockRepo.EXPECT().
		ListIncome(gomock.Any(), gomock.Any(), nil, nil).
		Return(nil, errors.New("connection refused"))

	_, err := uc.DashboardSummary(context.Background(), uuid.New())
	assert.Error(t, err)
}
