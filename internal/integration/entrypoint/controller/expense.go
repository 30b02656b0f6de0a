package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetbook/backend/internal/application/usecase/expense"
	"github.com/budgetbook/backend/internal/integration/entrypoint/dto"
	"github.com/budgetbook/backend/internal/integration/entrypoint/middleware"
)

// ExpenseController handles expense and category endpoints.
type ExpenseController struct {
	listExpensesUseCase   *expense.ListExpensesUseCase
	createExpenseUseCase  *expense.CreateExpenseUseCase
	updateExpenseUseCase  *expense.UpdateExpenseUseCase
	deleteExpenseUseCase  *expense.DeleteExpenseUseCase
	listCategoriesUseCase *expense.ListCategoriesUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	listExpensesUseCase *expense.ListExpensesUseCase,
	createExpenseUseCase *expense.CreateExpenseUseCase,
	updateExpenseUseCase *expense.UpdateExpenseUseCase,
	deleteExpenseUseCase *expense.DeleteExpenseUseCase,
	listCategoriesUseCase *expense.ListCategoriesUseCase,
) *ExpenseController {
	return &ExpenseController{
		listExpensesUseCase:   listExpensesUseCase,
		createExpenseUseCase:  createExpenseUseCase,
		updateExpenseUseCase:  updateExpenseUseCase,
		deleteExpenseUseCase:  deleteExpenseUseCase,
		listCategoriesUseCase: listCategoriesUseCase,
	}
}

// List handles GET /expenses requests.
func (c *ExpenseController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	month, year, ok := parsePeriodQuery(ctx)
	if !ok {
		return
	}

	output, err := c.listExpensesUseCase.Execute(ctx.Request.Context(), expense.ListExpensesInput{
		UserID: userID,
		Month:  month,
		Year:   year,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(output.Expenses))
}

// Create handles POST /expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	var req dto.CreateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error())
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		badRequest(ctx, "Invalid categoryId")
		return
	}

	output, err := c.createExpenseUseCase.Execute(ctx.Request.Context(), expense.CreateExpenseInput{
		UserID:     userID,
		Month:      req.Month,
		Year:       req.Year,
		CategoryID: categoryID,
		Name:       req.Name,
		Amount:     decimal.NewFromFloat(req.Amount),
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(output.Expense))
}

// Update handles PATCH /expenses/:id requests.
func (c *ExpenseController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error())
		return
	}

	input := expense.UpdateExpenseInput{
		UserID: userID,
		ID:     id,
		Name:   req.Name,
	}
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			badRequest(ctx, "Invalid categoryId")
			return
		}
		input.CategoryID = &categoryID
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}

	output, err := c.updateExpenseUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(output.Expense))
}

// Delete handles DELETE /expenses/:id requests.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.deleteExpenseUseCase.Execute(ctx.Request.Context(), expense.DeleteExpenseInput{
		UserID: userID,
		ID:     id,
	}); err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ListCategories handles GET /expenses/categories requests.
func (c *ExpenseController) ListCategories(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	output, err := c.listCategoriesUseCase.Execute(ctx.Request.Context(), expense.ListCategoriesInput{
		UserID: userID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(output.Categories))
}
