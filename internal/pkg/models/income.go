package models

import (
	"time"

	"github.com/google/uuid"
)

// Income sources
const (
	SourceManual = "manual"
	SourceMpesa  = "mpesa"
)

// IncomeRecord represents a single income entry owned by one user.
// Records are append-only: never updated, never deleted.
type IncomeRecord struct {
	ID            uuid.UUID `json:"id" db:"id"`
	UserID        uuid.UUID `json:"user_id" db:"user_id"`
	Amount        float64   `json:"amount" db:"amount"`
	Source        string    `json:"source" db:"source"`
	TransactionID *string   `json:"transaction_id,omitempty" db:"transaction_id"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// IncomeCreateRequest is the request body for POST /income/
type IncomeCreateRequest struct {
	Amount float64 `json:"amount"`
	Source string  `json:"source"`
}

// IncomeListRequest carries the optional inclusive created_at bounds
// for GET /income/
type IncomeListRequest struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// DailyTotal is one entry of the 5-day zero-filled daily summary
type DailyTotal struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

// BucketTotal is one entry of the monthly or quarterly summary
type BucketTotal struct {
	Period string  `json:"period"`
	Total  float64 `json:"total"`
}

// SourceBreakdown splits the whole-history total by income source.
// Anything that is not mpesa counts as manual.
type SourceBreakdown struct {
	Mpesa  float64 `json:"mpesa"`
	Manual float64 `json:"manual"`
}

// DashboardSummary is the whole-history dashboard payload
type DashboardSummary struct {
	TotalIncome     float64         `json:"total_income"`
	TodayIncome     float64         `json:"today_income"`
	SourceBreakdown SourceBreakdown `json:"source_breakdown"`
	EntriesCount    int             `json:"entries_count"`
}
