package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetbook/backend/internal/application/usecase/goal"
	"github.com/budgetbook/backend/internal/integration/entrypoint/dto"
	"github.com/budgetbook/backend/internal/integration/entrypoint/middleware"
)

// GoalController handles goal endpoints.
type GoalController struct {
	listGoalsUseCase     *goal.ListGoalsUseCase
	createGoalUseCase    *goal.CreateGoalUseCase
	updateGoalUseCase    *goal.UpdateGoalUseCase
	deleteGoalUseCase    *goal.DeleteGoalUseCase
	linkAccountUseCase   *goal.LinkAccountUseCase
	unlinkAccountUseCase *goal.UnlinkAccountUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	listGoalsUseCase *goal.ListGoalsUseCase,
	createGoalUseCase *goal.CreateGoalUseCase,
	updateGoalUseCase *goal.UpdateGoalUseCase,
	deleteGoalUseCase *goal.DeleteGoalUseCase,
	linkAccountUseCase *goal.LinkAccountUseCase,
	unlinkAccountUseCase *goal.UnlinkAccountUseCase,
) *GoalController {
	return &GoalController{
		listGoalsUseCase:     listGoalsUseCase,
		createGoalUseCase:    createGoalUseCase,
		updateGoalUseCase:    updateGoalUseCase,
		deleteGoalUseCase:    deleteGoalUseCase,
		linkAccountUseCase:   linkAccountUseCase,
		unlinkAccountUseCase: unlinkAccountUseCase,
	}
}

// List handles GET /goals requests.
func (c *GoalController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	output, err := c.listGoalsUseCase.Execute(ctx.Request.Context(), goal.ListGoalsInput{
		UserID: userID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalListResponse(output))
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	var req dto.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error())
		return
	}

	input := goal.CreateGoalInput{
		UserID:       userID,
		Name:         req.Name,
		TargetAmount: decimal.NewFromFloat(req.TargetAmount),
	}
	if req.TargetDate != nil {
		targetDate, ok := parseDate(ctx, *req.TargetDate)
		if !ok {
			return
		}
		input.TargetDate = &targetDate
	}

	output, err := c.createGoalUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGoalResponse(output.Goal, []string{}, 0))
}

// Update handles PATCH /goals/:id requests.
func (c *GoalController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error())
		return
	}

	input := goal.UpdateGoalInput{
		UserID:          userID,
		ID:              id,
		Name:            req.Name,
		ClearTargetDate: req.ClearTargetDate,
	}
	if req.TargetAmount != nil {
		target := decimal.NewFromFloat(*req.TargetAmount)
		input.TargetAmount = &target
	}
	if req.TargetDate != nil {
		targetDate, ok := parseDate(ctx, *req.TargetDate)
		if !ok {
			return
		}
		input.TargetDate = &targetDate
	}

	output, err := c.updateGoalUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal, nil, 0))
}

// Delete handles DELETE /goals/:id requests.
func (c *GoalController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.deleteGoalUseCase.Execute(ctx.Request.Context(), goal.DeleteGoalInput{
		UserID: userID,
		ID:     id,
	}); err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// LinkAccount handles POST /goals/:id/link requests.
func (c *GoalController) LinkAccount(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	goalID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.LinkAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error())
		return
	}

	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		badRequest(ctx, "Invalid accountId")
		return
	}

	if err := c.linkAccountUseCase.Execute(ctx.Request.Context(), goal.LinkAccountInput{
		UserID:    userID,
		GoalID:    goalID,
		AccountID: accountID,
	}); err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// UnlinkAccount handles DELETE /goals/:id/link/:accountId requests.
func (c *GoalController) UnlinkAccount(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	goalID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	accountID, ok := parseIDParam(ctx, "accountId")
	if !ok {
		return
	}

	if err := c.unlinkAccountUseCase.Execute(ctx.Request.Context(), goal.UnlinkAccountInput{
		UserID:    userID,
		GoalID:    goalID,
		AccountID: accountID,
	}); err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// parseDate parses a YYYY-MM-DD date string, writing the 400 response when
// it is malformed.
func parseDate(ctx *gin.Context, raw string) (time.Time, bool) {
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		badRequest(ctx, "Date must be in YYYY-MM-DD format")
		return time.Time{}, false
	}
	return parsed, true
}
