package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/jazahq/jaza-backend/internal/pkg/models"
)

// IncomeRepo is the Postgres-backed income repository
type IncomeRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewIncomeRepo creates a new income repository instance
func NewIncomeRepo(cfg *models.Config, db *sqlx.DB) *IncomeRepo {
	return &IncomeRepo{
		cfg: cfg,
		db:  db,
	}
}
