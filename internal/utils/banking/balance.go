package banking

import (
	"fmt"

	"github.com/Ritesh9568/core-banking-api/internal/apperrors"
	"github.com/Ritesh9568/core-banking-api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MaxAmount is the largest amount accepted for a single money movement.
var MaxAmount = decimal.NewFromInt(1_000_000_000)

// ValidateAmount checks that an amount is positive, within MaxAmount, and has
// at most two fractional digits (balances are stored as NUMERIC(19,2)).
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return domainAmountError("amount must be positive")
	}
	if amount.GreaterThan(MaxAmount) {
		return domainAmountError("amount exceeds the supported maximum")
	}
	if !amount.Equal(amount.Round(2)) {
		return domainAmountError("amount must have at most two fractional digits")
	}
	return nil
}

// SignedDelta returns the balance effect of a leg: positive for a credit
// (deposit or transfer credit leg), negative for a debit (withdrawal or
// transfer debit leg).
func SignedDelta(txnType domain.TransactionType, amount decimal.Decimal, isDebitLeg bool) decimal.Decimal {
	switch txnType {
	case domain.Deposit:
		return amount
	case domain.Withdrawal:
		return amount.Neg()
	case domain.Transfer:
		if isDebitLeg {
			return amount.Neg()
		}
		return amount
	}
	return decimal.Zero
}

// WithinOverdraftFloor reports whether applying delta to the account keeps
// balance >= -overdraftLimit, the invariant every ACTIVE account must hold.
func WithinOverdraftFloor(balance, overdraftLimit, delta decimal.Decimal) bool {
	return balance.Add(delta).GreaterThanOrEqual(overdraftLimit.Neg())
}

func domainAmountError(msg string) error {
	return fmt.Errorf("%w: %s", apperrors.ErrInvalidAmount, msg)
}
