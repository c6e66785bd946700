package income

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jazahq/jaza-backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/jazahq/jaza-backend/services/income IncomeRepo

// IncomeRepo represents the income repository interface backed by the
// hosted record store.
type IncomeRepo interface {
	// CreateIncome appends a new income row. When record.CreatedAt is
	// zero the store assigns the insertion time; otherwise the supplied
	// timestamp is stored verbatim (payment callbacks).
	CreateIncome(ctx context.Context, record *models.IncomeRecord) error

	// ListIncome returns a user's records newest first, optionally
	// bounded by an inclusive created_at range. No rows is an empty
	// slice, never an error.
	ListIncome(ctx context.Context, userID uuid.UUID, start, end *time.Time) ([]models.IncomeRecord, error)

	// TransactionExists reports whether any record carries the given
	// external transaction id.
	TransactionExists(ctx context.Context, transactionID string) (bool, error)

	// GetProfileByPhone resolves a profile whose stored phone number
	// matches any of the candidate forms.
	GetProfileByPhone(ctx context.Context, phoneNumbers []string) (*models.Profile, error)
}
