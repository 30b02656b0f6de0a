// Package error defines domain-specific errors for the application.
package error

import "errors"

// Ledger domain errors, shared by the per-entity CRUD use cases.
var (
	ErrIncomeNotFound           = errors.New("income entry not found")
	ErrAdditionalIncomeNotFound = errors.New("additional income entry not found")
	ErrExpenseNotFound          = errors.New("expense not found")
	ErrCategoryNotFound         = errors.New("expense category not found")
	ErrAccountNotFound          = errors.New("savings account not found")
	ErrTransactionNotFound      = errors.New("savings transaction not found")
	ErrGoalNotFound             = errors.New("goal not found")
	ErrDebtNotFound             = errors.New("debt not found")
	ErrSubscriptionNotFound     = errors.New("subscription not found")

	// ErrMissingName is returned when a required name/label field is empty.
	ErrMissingName = errors.New("name is required")

	// ErrInvalidAmount is returned when an amount fails to parse as a decimal.
	ErrInvalidAmount = errors.New("valid amount required")
)

// LedgerErrorCode defines error codes for ledger errors.
// Format: LED-XXYYYY where XX is category and YYYY is specific error.
type LedgerErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingName   LedgerErrorCode = "LED-010001"
	ErrCodeInvalidAmount LedgerErrorCode = "LED-010002"

	// Not-found errors (02XXXX)
	ErrCodeIncomeNotFound           LedgerErrorCode = "LED-020001"
	ErrCodeAdditionalIncomeNotFound LedgerErrorCode = "LED-020002"
	ErrCodeExpenseNotFound          LedgerErrorCode = "LED-020003"
	ErrCodeCategoryNotFound         LedgerErrorCode = "LED-020004"
	ErrCodeAccountNotFound          LedgerErrorCode = "LED-020005"
	ErrCodeTransactionNotFound      LedgerErrorCode = "LED-020006"
	ErrCodeGoalNotFound             LedgerErrorCode = "LED-020007"
	ErrCodeDebtNotFound             LedgerErrorCode = "LED-020008"
	ErrCodeSubscriptionNotFound     LedgerErrorCode = "LED-020009"
)

// LedgerError represents a ledger error with code and message.
type LedgerError struct {
	Code    LedgerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError creates a new LedgerError with the given code and message.
func NewLedgerError(code LedgerErrorCode, message string, err error) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsNotFound reports whether code is one of the not-found ledger codes.
func (e *LedgerError) IsNotFound() bool {
	switch e.Code {
	case ErrCodeIncomeNotFound,
		ErrCodeAdditionalIncomeNotFound,
		ErrCodeExpenseNotFound,
		ErrCodeCategoryNotFound,
		ErrCodeAccountNotFound,
		ErrCodeTransactionNotFound,
		ErrCodeGoalNotFound,
		ErrCodeDebtNotFound,
		ErrCodeSubscriptionNotFound:
		return true
	default:
		return false
	}
}
