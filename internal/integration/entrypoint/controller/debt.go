package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/budgetbook/backend/internal/application/usecase/debt"
	"github.com/budgetbook/backend/internal/integration/entrypoint/dto"
	"github.com/budgetbook/backend/internal/integration/entrypoint/middleware"
)

// DebtController handles debt endpoints.
type DebtController struct {
	listDebtsUseCase  *debt.ListDebtsUseCase
	createDebtUseCase *debt.CreateDebtUseCase
	updateDebtUseCase *debt.UpdateDebtUseCase
	deleteDebtUseCase *debt.DeleteDebtUseCase
}

// NewDebtController creates a new debt controller instance.
func NewDebtController(
	listDebtsUseCase *debt.ListDebtsUseCase,
	createDebtUseCase *debt.CreateDebtUseCase,
	updateDebtUseCase *debt.UpdateDebtUseCase,
	deleteDebtUseCase *debt.DeleteDebtUseCase,
) *DebtController {
	return &DebtController{
		listDebtsUseCase:  listDebtsUseCase,
		createDebtUseCase: createDebtUseCase,
		updateDebtUseCase: updateDebtUseCase,
		deleteDebtUseCase: deleteDebtUseCase,
	}
}

// List handles GET /debts requests.
func (c *DebtController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	output, err := c.listDebtsUseCase.Execute(ctx.Request.Context(), debt.ListDebtsInput{
		UserID: userID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtListResponse(output.Debts))
}

// Create handles POST /debts requests.
func (c *DebtController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	var req dto.CreateDebtRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error())
		return
	}

	input := debt.CreateDebtInput{
		UserID:         userID,
		Name:           req.Name,
		Principal:      decimal.NewFromFloat(req.Principal),
		MonthlyPayment: decimal.NewFromFloat(req.MonthlyPayment),
	}
	if req.InterestRate != nil {
		rate := decimal.NewFromFloat(*req.InterestRate)
		input.InterestRate = &rate
	}

	output, err := c.createDebtUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToDebtResponse(output.Debt))
}

// Update handles PATCH /debts/:id requests.
func (c *DebtController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateDebtRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error())
		return
	}

	input := debt.UpdateDebtInput{
		UserID:            userID,
		ID:                id,
		Name:              req.Name,
		ClearInterestRate: req.ClearInterestRate,
	}
	if req.Principal != nil {
		principal := decimal.NewFromFloat(*req.Principal)
		input.Principal = &principal
	}
	if req.InterestRate != nil {
		rate := decimal.NewFromFloat(*req.InterestRate)
		input.InterestRate = &rate
	}
	if req.MonthlyPayment != nil {
		payment := decimal.NewFromFloat(*req.MonthlyPayment)
		input.MonthlyPayment = &payment
	}

	output, err := c.updateDebtUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtResponse(output.Debt))
}

// Delete handles DELETE /debts/:id requests.
func (c *DebtController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.deleteDebtUseCase.Execute(ctx.Request.Context(), debt.DeleteDebtInput{
		UserID: userID,
		ID:     id,
	}); err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
