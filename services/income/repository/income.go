package repository

// Tables owned by the hosted store:
//
//	income   (id uuid PK, user_id uuid, amount numeric, source text,
//	          transaction_id text NULL, created_at timestamptz DEFAULT now())
//	profiles (id uuid PK, email text, role text, phone_number text)
//
// transaction_id uniqueness is enforced only by the pre-insert
// existence check in the usecase; two concurrent callbacks for the
// same id can both insert. A unique index on income(transaction_id)
// would close that window at the storage level.

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/jazahq/jaza-backend/internal/pkg/models"
	"github.com/jazahq/jaza-backend/services/income"
)

// CreateIncome appends a new income row scoped to record.UserID
func (r *IncomeRepo) CreateIncome(ctx context.Context, record *models.IncomeRecord) error {
	record.ID = uuid.New()

	if record.CreatedAt.IsZero() {
		// Store-assigned insertion time
		query := `
			INSERT INTO income (id, user_id, amount, source, transaction_id)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING created_at
		`
		err := r.db.QueryRowContext(ctx, query,
			record.ID,
			record.UserID,
			record.Amount,
			record.Source,
			record.TransactionID,
		).Scan(&record.CreatedAt)
		if err != nil {
			return fmt.Errorf("%w: failed to insert income: %v", income.ErrPersistenceFailure, err)
		}
		return nil
	}

	// Caller-supplied timestamp (payment callbacks), stored verbatim
	query := `
		INSERT INTO income (id, user_id, amount, source, transaction_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		record.ID,
		record.UserID,
		record.Amount,
		record.Source,
		record.TransactionID,
		record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: failed to insert income: %v", income.ErrPersistenceFailure, err)
	}
	return nil
}

// ListIncome returns a user's income records newest first, optionally
// bounded by an inclusive created_at range.
func (r *IncomeRepo) ListIncome(ctx context.Context, userID uuid.UUID, start, end *time.Time) ([]models.IncomeRecord, error) {
	query := `
		SELECT id, user_id, COALESCE(amount, 0) AS amount, source, transaction_id, created_at
		FROM income
		WHERE user_id = $1
	`
	args := []interface{}{userID}

	if start != nil {
		args = append(args, *start)
		query += fmt.Sprintf(" AND created_at >= $%d", len(args))
	}
	if end != nil {
		args = append(args, *end)
		query += fmt.Sprintf(" AND created_at <= $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	var records []models.IncomeRecord
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list income: %w", err)
	}

	if records == nil {
		records = []models.IncomeRecord{}
	}
	return records, nil
}

// TransactionExists reports whether a record with this external
// transaction id already exists.
func (r *IncomeRepo) TransactionExists(ctx context.Context, transactionID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM income WHERE transaction_id = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, transactionID); err != nil {
		return false, fmt.Errorf("failed to check transaction id: %w", err)
	}
	return exists, nil
}

// GetProfileByPhone resolves the profile whose stored phone number
// matches any of the candidate forms.
func (r *IncomeRepo) GetProfileByPhone(ctx context.Context, phoneNumbers []string) (*models.Profile, error) {
	query, args, err := sqlx.In(`
		SELECT id, email, role, phone_number
		FROM profiles
		WHERE phone_number IN (?)
	`, phoneNumbers)
	if err != nil {
		return nil, fmt.Errorf("failed to build profile query: %w", err)
	}
	query = r.db.Rebind(query)

	var profile models.Profile
	if err := r.db.GetContext(ctx, &profile, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: no profile for phone number", income.ErrUserNotFound)
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &profile, nil
}
