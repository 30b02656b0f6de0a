package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/budgetbook/backend/internal/application/usecase/dashboard"
	"github.com/budgetbook/backend/internal/integration/entrypoint/dto"
	"github.com/budgetbook/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	getOverviewUseCase *dashboard.GetOverviewUseCase
	getChangesUseCase  *dashboard.GetChangesUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	getOverviewUseCase *dashboard.GetOverviewUseCase,
	getChangesUseCase *dashboard.GetChangesUseCase,
) *DashboardController {
	return &DashboardController{
		getOverviewUseCase: getOverviewUseCase,
		getChangesUseCase:  getChangesUseCase,
	}
}

// GetOverview handles GET /dashboard/overview requests. Without month and
// year parameters the overview covers all recorded months up to the
// current one.
func (c *DashboardController) GetOverview(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	monthStr := ctx.Query("month")
	yearStr := ctx.Query("year")

	input := dashboard.GetOverviewInput{UserID: userID}
	if monthStr == "" && yearStr == "" {
		input.AllTime = true
	} else {
		month, err := strconv.Atoi(monthStr)
		if err != nil {
			badRequest(ctx, "month must be a number")
			return
		}
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			badRequest(ctx, "year must be a number")
			return
		}
		input.Month = month
		input.Year = year
	}

	output, err := c.getOverviewUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOverviewResponse(output))
}

// GetChanges handles GET /dashboard/changes requests.
func (c *DashboardController) GetChanges(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	output, err := c.getChangesUseCase.Execute(ctx.Request.Context(), dashboard.GetChangesInput{
		UserID: userID,
		Limit:  ctx.DefaultQuery("limit", "12"),
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToChangesResponse(output))
}
