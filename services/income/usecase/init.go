package usecase

import (
	"github.com/jazahq/jaza-backend/internal/pkg/models"
	"github.com/jazahq/jaza-backend/services/income"
)

// IncomeUC implements the income usecase
type IncomeUC struct {
	incomeRepo income.IncomeRepo
	cfg        *models.Config
}

// NewIncomeUC creates a new income usecase instance
func NewIncomeUC(
	incomeRepo income.IncomeRepo,
	cfg *models.Config,
) *IncomeUC {
	return &IncomeUC{
		incomeRepo: incomeRepo,
		cfg:        cfg,
	}
}
