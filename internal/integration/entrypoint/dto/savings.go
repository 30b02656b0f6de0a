package dto

import (
	"time"

	"github.com/budgetbook/backend/internal/application/usecase/savings"
	"github.com/budgetbook/backend/internal/domain/entity"
)

// CreateAccountRequest represents the request to create a savings account.
type CreateAccountRequest struct {
	Name           string   `json:"name" binding:"required"`
	Type           string   `json:"type"`
	Currency       string   `json:"currency"`
	InitialBalance float64  `json:"initialBalance"`
	TargetAmount   *float64 `json:"targetAmount"`
}

// UpdateAccountRequest represents the request to update a savings account.
type UpdateAccountRequest struct {
	Name         *string  `json:"name"`
	Type         *string  `json:"type"`
	Currency     *string  `json:"currency"`
	TargetAmount *float64 `json:"targetAmount"`
	ClearTarget  bool     `json:"clearTarget"`
	IsArchived   *bool    `json:"isArchived"`
}

// AccountResponse represents a savings account with its balance.
type AccountResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Type           string   `json:"type"`
	Currency       string   `json:"currency"`
	InitialBalance float64  `json:"initialBalance"`
	Balance        float64  `json:"balance"`
	TargetAmount   *float64 `json:"targetAmount,omitempty"`
	IsArchived     bool     `json:"isArchived"`
	CreatedAt      string   `json:"createdAt"`
}

// ToAccountResponse converts an account entity to its response DTO.
func ToAccountResponse(account *entity.SavingsAccount, balance float64) AccountResponse {
	var target *float64
	if account.TargetAmount != nil {
		v := toFloat(*account.TargetAmount)
		target = &v
	}
	return AccountResponse{
		ID:             account.ID.String(),
		Name:           account.Name,
		Type:           account.Type,
		Currency:       account.Currency,
		InitialBalance: toFloat(account.InitialBalance),
		Balance:        balance,
		TargetAmount:   target,
		IsArchived:     account.IsArchived,
		CreatedAt:      account.CreatedAt.Format(time.RFC3339),
	}
}

// AccountListResponse represents the user's savings accounts.
type AccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountListResponse converts the list accounts output to a response.
func ToAccountListResponse(output *savings.ListAccountsOutput) AccountListResponse {
	out := make([]AccountResponse, len(output.Accounts))
	for i, a := range output.Accounts {
		out[i] = ToAccountResponse(a.Account, toFloat(a.Balance))
	}
	return AccountListResponse{Accounts: out}
}

// AddTransactionRequest represents the request to record a savings
// transaction.
type AddTransactionRequest struct {
	AccountID string  `json:"accountId" binding:"required"`
	Month     int     `json:"month" binding:"required"`
	Year      int     `json:"year" binding:"required"`
	Amount    float64 `json:"amount"`
}

// TransactionResponse represents a savings transaction.
type TransactionResponse struct {
	ID        string  `json:"id"`
	AccountID string  `json:"accountId"`
	MonthID   string  `json:"monthId"`
	Amount    float64 `json:"amount"`
	CreatedAt string  `json:"createdAt"`
}

// ToTransactionResponse converts a transaction entity to its response DTO.
func ToTransactionResponse(transaction *entity.SavingsTransaction) TransactionResponse {
	return TransactionResponse{
		ID:        transaction.ID.String(),
		AccountID: transaction.AccountID.String(),
		MonthID:   transaction.MonthID.String(),
		Amount:    toFloat(transaction.Amount),
		CreatedAt: transaction.CreatedAt.Format(time.RFC3339),
	}
}

// TransactionListResponse represents an account's transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionListResponse converts transaction entities to a list
// response.
func ToTransactionListResponse(transactions []*entity.SavingsTransaction) TransactionListResponse {
	out := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		out[i] = ToTransactionResponse(t)
	}
	return TransactionListResponse{Transactions: out}
}
