package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jazahq/jaza-backend/internal/pkg/logger"
	"github.com/jazahq/jaza-backend/internal/pkg/models"
	"github.com/jazahq/jaza-backend/internal/utils"
	"github.com/jazahq/jaza-backend/services/income"
)

// transTimeLayout is the provider's timestamp format (yyyyMMddHHmmss)
const transTimeLayout = "20060102150405"

// ConfirmPayment processes a C2B payment confirmation callback. The
// returned bool reports whether a new record was inserted; a false
// with nil error means the transaction id was already recorded and the
// callback is an accepted duplicate.
//
// The duplicate check and the insert are not atomic: two concurrent
// callbacks for the same transaction id can both pass the check. The
// provider retries on non-2xx responses, so internal failures must stay
// distinguishable from accepted outcomes.
func (u *IncomeUC) ConfirmPayment(ctx context.Context, confirmation *models.MpesaConfirmation) (bool, error) {
	if confirmation.MSISDN == "" || confirmation.TransID == "" || confirmation.TransTime == "" {
		return false, fmt.Errorf("%w: missing MSISDN, TransID or TransTime", income.ErrMalformedPayload)
	}

	amount, err := strconv.ParseFloat(confirmation.TransAmount, 64)
	if err != nil {
		return false, fmt.Errorf("%w: invalid TransAmount %q", income.ErrMalformedPayload, confirmation.TransAmount)
	}

	transTime, err := time.Parse(transTimeLayout, confirmation.TransTime)
	if err != nil {
		return false, fmt.Errorf("%w: invalid TransTime %q", income.ErrMalformedPayload, confirmation.TransTime)
	}

	phoneForms, err := utils.CandidatePhoneForms(confirmation.MSISDN)
	if err != nil {
		return false, fmt.Errorf("%w: %v", income.ErrMalformedPayload, err)
	}

	profile, err := u.incomeRepo.GetProfileByPhone(ctx, phoneForms)
	if err != nil {
		if errors.Is(err, income.ErrUserNotFound) {
			return false, err
		}
		return false, fmt.Errorf("failed to resolve payment owner: %w", err)
	}

	exists, err := u.incomeRepo.TransactionExists(ctx, confirmation.TransID)
	if err != nil {
		return false, fmt.Errorf("failed to check for duplicate transaction: %w", err)
	}
	if exists {
		logger.Info("Duplicate payment confirmation ignored",
			logger.String("transaction_id", confirmation.TransID),
			logger.String("user_id", profile.ID.String()))
		return false, nil
	}

	transactionID := confirmation.TransID
	record := &models.IncomeRecord{
		UserID:        profile.ID,
		Amount:        amount,
		Source:        models.SourceMpesa,
		TransactionID: &transactionID,
		CreatedAt:     transTime.UTC(),
	}

	if err := u.incomeRepo.CreateIncome(ctx, record); err != nil {
		return false, fmt.Errorf("failed to store payment: %w", err)
	}

	logger.Info("Payment confirmation recorded",
		logger.String("transaction_id", confirmation.TransID),
		logger.String("user_id", profile.ID.String()),
		logger.Float64("amount", amount))

	return true, nil
}
