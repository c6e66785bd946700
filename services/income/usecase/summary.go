package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jazahq/jaza-backend/internal/pkg/models"
)

// dailyWindowDays is the size of the trailing daily summary window,
// including today.
const dailyWindowDays = 5

// round2 rounds a value to 2 decimal places for output. Accumulation
// happens at full float64 precision before this is applied.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// DailySummary buckets the trailing 5-day window by calendar date.
// The result always has exactly 5 entries, oldest first; days with no
// records report a total of 0.
func (u *IncomeUC) DailySummary(ctx context.Context, userID uuid.UUID) ([]models.DailyTotal, error) {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	windowStart := today.AddDate(0, 0, -(dailyWindowDays - 1))

	records, err := u.incomeRepo.ListIncome(ctx, userID, &windowStart, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build daily summary: %w", err)
	}

	totals := make(map[string]float64)
	for _, record := range records {
		key := record.CreatedAt.UTC().Format("2006-01-02")
		totals[key] += record.Amount
	}

	summary := make([]models.DailyTotal, 0, dailyWindowDays)
	for i := 0; i < dailyWindowDays; i++ {
		day := windowStart.AddDate(0, 0, i).Format("2006-01-02")
		summary = append(summary, models.DailyTotal{
			Date:  day,
			Total: round2(totals[day]),
		})
	}

	return summary, nil
}

// MonthlySummary buckets the full history by YYYY-MM, ascending. Only
// months with at least one record appear.
func (u *IncomeUC) MonthlySummary(ctx context.Context, userID uuid.UUID) ([]models.BucketTotal, error) {
	records, err := u.incomeRepo.ListIncome(ctx, userID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build monthly summary: %w", err)
	}

	totals := make(map[string]float64)
	for _, record := range records {
		key := record.CreatedAt.UTC().Format("2006-01")
		totals[key] += record.Amount
	}

	keys := make([]string, 0, len(totals))
	for key := range totals {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	summary := make([]models.BucketTotal, 0, len(keys))
	for _, key := range keys {
		summary = append(summary, models.BucketTotal{
			Period: key,
			Total:  round2(totals[key]),
		})
	}

	return summary, nil
}

// quarterKey identifies one calendar quarter
type quarterKey struct {
	year    int
	quarter int
}

// QuarterlySummary buckets the full history by calendar quarter,
// labelled Q{1-4}-{YYYY}. Buckets are ordered by (year, quarter), not
// by the label string.
func (u *IncomeUC) QuarterlySummary(ctx context.Context, userID uuid.UUID) ([]models.BucketTotal, error) {
	records, err := u.incomeRepo.ListIncome(ctx, userID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build quarterly summary: %w", err)
	}

	totals := make(map[quarterKey]float64)
	for _, record := range records {
		created := record.CreatedAt.UTC()
		key := quarterKey{
			year:    created.Year(),
			quarter: (int(created.Month())-1)/3 + 1,
		}
		totals[key] += record.Amount
	}

	keys := make([]quarterKey, 0, len(totals))
	for key := range totals {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].quarter < keys[j].quarter
	})

	summary := make([]models.BucketTotal, 0, len(keys))
	for _, key := range keys {
		summary = append(summary, models.BucketTotal{
			Period: fmt.Sprintf("Q%d-%d", key.quarter, key.year),
			Total:  round2(totals[key]),
		})
	}

	return summary, nil
}

// DashboardSummary sums the user's entire history: the overall total,
// the split between mpesa and everything-else-as-manual, and the total
// for the current UTC calendar day. Records without a usable timestamp
// still count toward the totals but are excluded from the today bucket.
func (u *IncomeUC) DashboardSummary(ctx context.Context, userID uuid.UUID) (*models.DashboardSummary, error) {
	records, err := u.incomeRepo.ListIncome(ctx, userID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build dashboard summary: %w", err)
	}

	todayKey := time.Now().UTC().Format("20060102")
	summary := &models.DashboardSummary{
		EntriesCount: len(records),
	}

	for _, record := range records {
		summary.TotalIncome += record.Amount

		if record.Source == models.SourceMpesa {
			summary.SourceBreakdown.Mpesa += record.Amount
		} else {
			summary.SourceBreakdown.Manual += record.Amount
		}

		if !record.CreatedAt.IsZero() && record.CreatedAt.UTC().Format("20060102") == todayKey {
			summary.TodayIncome += record.Amount
		}
	}

	return summary, nil
}
