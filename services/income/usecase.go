package income

import (
	"context"

	"github.com/google/uuid"

	"github.com/jazahq/jaza-backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/jazahq/jaza-backend/services/income IncomeUC

// IncomeUC represents the income usecase interface
type IncomeUC interface {
	// manual and mpesa income entries
	Record(ctx context.Context, userID uuid.UUID, amount float64, source string) (*models.IncomeRecord, error)
	List(ctx context.Context, userID uuid.UUID, req models.IncomeListRequest) ([]models.IncomeRecord, error)

	// payment provider callbacks; the bool reports whether a new record
	// was inserted (false means an accepted duplicate)
	ConfirmPayment(ctx context.Context, confirmation *models.MpesaConfirmation) (bool, error)

	// aggregate summaries
	DailySummary(ctx context.Context, userID uuid.UUID) ([]models.DailyTotal, error)
	MonthlySummary(ctx context.Context, userID uuid.UUID) ([]models.BucketTotal, error)
	QuarterlySummary(ctx context.Context, userID uuid.UUID) ([]models.BucketTotal, error)
	DashboardSummary(ctx context.Context, userID uuid.UUID) (*models.DashboardSummary, error)
}
