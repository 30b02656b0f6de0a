package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetbook/backend/internal/application/usecase/savings"
	"github.com/budgetbook/backend/internal/integration/entrypoint/dto"
	"github.com/budgetbook/backend/internal/integration/entrypoint/middleware"
)

// SavingsController handles savings account and transaction endpoints.
type SavingsController struct {
	listAccountsUseCase      *savings.ListAccountsUseCase
	createAccountUseCase     *savings.CreateAccountUseCase
	updateAccountUseCase     *savings.UpdateAccountUseCase
	deleteAccountUseCase     *savings.DeleteAccountUseCase
	listTransactionsUseCase  *savings.ListTransactionsUseCase
	addTransactionUseCase    *savings.AddTransactionUseCase
	deleteTransactionUseCase *savings.DeleteTransactionUseCase
}

// NewSavingsController creates a new savings controller instance.
func NewSavingsController(
	listAccountsUseCase *savings.ListAccountsUseCase,
	createAccountUseCase *savings.CreateAccountUseCase,
	updateAccountUseCase *savings.UpdateAccountUseCase,
	deleteAccountUseCase *savings.DeleteAccountUseCase,
	listTransactionsUseCase *savings.ListTransactionsUseCase,
	addTransactionUseCase *savings.AddTransactionUseCase,
	deleteTransactionUseCase *savings.DeleteTransactionUseCase,
) *SavingsController {
	return &SavingsController{
		listAccountsUseCase:      listAccountsUseCase,
		createAccountUseCase:     createAccountUseCase,
		updateAccountUseCase:     updateAccountUseCase,
		deleteAccountUseCase:     deleteAccountUseCase,
		listTransactionsUseCase:  listTransactionsUseCase,
		addTransactionUseCase:    addTransactionUseCase,
		deleteTransactionUseCase: deleteTransactionUseCase,
	}
}

// ListAccounts handles GET /savings/accounts requests.
func (c *SavingsController) ListAccounts(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	output, err := c.listAccountsUseCase.Execute(ctx.Request.Context(), savings.ListAccountsInput{
		UserID:          userID,
		IncludeArchived: ctx.Query("includeArchived") == "true",
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAccountListResponse(output))
}

// CreateAccount handles POST /savings/accounts requests.
func (c *SavingsController) CreateAccount(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	var req dto.CreateAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error())
		return
	}

	input := savings.CreateAccountInput{
		UserID:         userID,
		Name:           req.Name,
		Type:           req.Type,
		Currency:       req.Currency,
		InitialBalance: decimal.NewFromFloat(req.InitialBalance),
	}
	if req.TargetAmount != nil {
		target := decimal.NewFromFloat(*req.TargetAmount)
		input.TargetAmount = &target
	}

	output, err := c.createAccountUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToAccountResponse(output.Account, toResponseFloat(output.Balance)))
}

// UpdateAccount handles PATCH /savings/accounts/:id requests.
func (c *SavingsController) UpdateAccount(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error())
		return
	}

	input := savings.UpdateAccountInput{
		UserID:      userID,
		ID:          id,
		Name:        req.Name,
		Type:        req.Type,
		Currency:    req.Currency,
		ClearTarget: req.ClearTarget,
		IsArchived:  req.IsArchived,
	}
	if req.TargetAmount != nil {
		target := decimal.NewFromFloat(*req.TargetAmount)
		input.TargetAmount = &target
	}

	output, err := c.updateAccountUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAccountResponse(output.Account, toResponseFloat(output.Balance)))
}

// DeleteAccount handles DELETE /savings/accounts/:id requests.
func (c *SavingsController) DeleteAccount(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.deleteAccountUseCase.Execute(ctx.Request.Context(), savings.DeleteAccountInput{
		UserID: userID,
		ID:     id,
	}); err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ListTransactions handles GET /savings/transactions requests.
func (c *SavingsController) ListTransactions(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	accountID, err := uuid.Parse(ctx.Query("accountId"))
	if err != nil {
		badRequest(ctx, "Invalid accountId parameter")
		return
	}

	output, err := c.listTransactionsUseCase.Execute(ctx.Request.Context(), savings.ListTransactionsInput{
		UserID:    userID,
		AccountID: accountID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output.Transactions))
}

// AddTransaction handles POST /savings/transactions requests.
func (c *SavingsController) AddTransaction(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	var req dto.AddTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error())
		return
	}

	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		badRequest(ctx, "Invalid accountId")
		return
	}

	output, err := c.addTransactionUseCase.Execute(ctx.Request.Context(), savings.AddTransactionInput{
		UserID:    userID,
		AccountID: accountID,
		Month:     req.Month,
		Year:      req.Year,
		Amount:    decimal.NewFromFloat(req.Amount),
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// toResponseFloat converts a decimal amount to the float representation
// used in JSON payloads.
func toResponseFloat(d decimal.Decimal) float64 {
	v, _ := d.Float64()
	return v
}

// DeleteTransaction handles DELETE /savings/transactions/:id requests.
func (c *SavingsController) DeleteTransaction(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.deleteTransactionUseCase.Execute(ctx.Request.Context(), savings.DeleteTransactionInput{
		UserID: userID,
		ID:     id,
	}); err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
