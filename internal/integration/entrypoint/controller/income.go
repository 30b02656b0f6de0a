package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetbook/backend/internal/application/usecase/income"
	"github.com/budgetbook/backend/internal/integration/entrypoint/dto"
	"github.com/budgetbook/backend/internal/integration/entrypoint/middleware"
)

// IncomeController handles income endpoints.
type IncomeController struct {
	getIncomeUseCase        *income.GetIncomeUseCase
	upsertIncomeUseCase     *income.UpsertIncomeUseCase
	addAdditionalUseCase    *income.AddAdditionalIncomeUseCase
	updateAdditionalUseCase *income.UpdateAdditionalIncomeUseCase
	deleteAdditionalUseCase *income.DeleteAdditionalIncomeUseCase
}

// NewIncomeController creates a new income controller instance.
func NewIncomeController(
	getIncomeUseCase *income.GetIncomeUseCase,
	upsertIncomeUseCase *income.UpsertIncomeUseCase,
	addAdditionalUseCase *income.AddAdditionalIncomeUseCase,
	updateAdditionalUseCase *income.UpdateAdditionalIncomeUseCase,
	deleteAdditionalUseCase *income.DeleteAdditionalIncomeUseCase,
) *IncomeController {
	return &IncomeController{
		getIncomeUseCase:        getIncomeUseCase,
		upsertIncomeUseCase:     upsertIncomeUseCase,
		addAdditionalUseCase:    addAdditionalUseCase,
		updateAdditionalUseCase: updateAdditionalUseCase,
		deleteAdditionalUseCase: deleteAdditionalUseCase,
	}
}

// Get handles GET /income requests.
func (c *IncomeController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	month, year, ok := parsePeriodQuery(ctx)
	if !ok {
		return
	}

	output, err := c.getIncomeUseCase.Execute(ctx.Request.Context(), income.GetIncomeInput{
		UserID: userID,
		Month:  month,
		Year:   year,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	response := dto.GetIncomeResponse{
		Additional: make([]dto.AdditionalIncomeResponse, len(output.Additional)),
	}
	if output.Income != nil {
		r := dto.ToIncomeResponse(output.Income)
		response.Income = &r
	}
	for i, a := range output.Additional {
		response.Additional[i] = dto.ToAdditionalIncomeResponse(a)
	}
	ctx.JSON(http.StatusOK, response)
}

// Upsert handles PUT /income requests.
func (c *IncomeController) Upsert(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	var req dto.UpsertIncomeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error())
		return
	}

	output, err := c.upsertIncomeUseCase.Execute(ctx.Request.Context(), income.UpsertIncomeInput{
		UserID:          userID,
		Month:           req.Month,
		Year:            req.Year,
		GrossIncome:     decimal.NewFromFloat(req.GrossIncome),
		TaxDeduction:    decimal.NewFromFloat(req.TaxDeduction),
		NISDeduction:    decimal.NewFromFloat(req.NISDeduction),
		OtherDeductions: decimal.NewFromFloat(req.OtherDeductions),
		NetIncome:       decimal.NewFromFloat(req.NetIncome),
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIncomeResponse(output.Income))
}

// AddAdditional handles POST /income/additional requests.
func (c *IncomeController) AddAdditional(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	var req dto.AddAdditionalIncomeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error())
		return
	}

	output, err := c.addAdditionalUseCase.Execute(ctx.Request.Context(), income.AddAdditionalIncomeInput{
		UserID: userID,
		Month:  req.Month,
		Year:   req.Year,
		Label:  req.Label,
		Amount: decimal.NewFromFloat(req.Amount),
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToAdditionalIncomeResponse(output.Income))
}

// UpdateAdditional handles PATCH /income/additional/:id requests.
func (c *IncomeController) UpdateAdditional(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateAdditionalIncomeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error())
		return
	}

	input := income.UpdateAdditionalIncomeInput{
		UserID: userID,
		ID:     id,
		Label:  req.Label,
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}

	output, err := c.updateAdditionalUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAdditionalIncomeResponse(output.Income))
}

// DeleteAdditional handles DELETE /income/additional/:id requests.
func (c *IncomeController) DeleteAdditional(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.deleteAdditionalUseCase.Execute(ctx.Request.Context(), income.DeleteAdditionalIncomeInput{
		UserID: userID,
		ID:     id,
	}); err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// parsePeriodQuery reads the month and year query parameters. It writes
// the 400 response itself when either is missing or not a number.
func parsePeriodQuery(ctx *gin.Context) (month, year int, ok bool) {
	month, err := strconv.Atoi(ctx.Query("month"))
	if err != nil {
		badRequest(ctx, "month must be a number")
		return 0, 0, false
	}
	year, err = strconv.Atoi(ctx.Query("year"))
	if err != nil {
		badRequest(ctx, "year must be a number")
		return 0, 0, false
	}
	return month, year, true
}

// parseIDParam reads a UUID path parameter, writing the 400 response when
// it is malformed.
func parseIDParam(ctx *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		badRequest(ctx, "Invalid "+name+" parameter")
		return uuid.Nil, false
	}
	return id, true
}
