package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budgetbook/backend/internal/application/usecase/insight"
	"github.com/budgetbook/backend/internal/integration/entrypoint/dto"
	"github.com/budgetbook/backend/internal/integration/entrypoint/middleware"
)

// InsightController handles AI insight endpoints.
type InsightController struct {
	generateInsightUseCase *insight.GenerateInsightUseCase
	listInsightsUseCase    *insight.ListInsightsUseCase
}

// NewInsightController creates a new insight controller instance.
func NewInsightController(
	generateInsightUseCase *insight.GenerateInsightUseCase,
	listInsightsUseCase *insight.ListInsightsUseCase,
) *InsightController {
	return &InsightController{
		generateInsightUseCase: generateInsightUseCase,
		listInsightsUseCase:    listInsightsUseCase,
	}
}

// List handles GET /insights requests.
func (c *InsightController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	output, err := c.listInsightsUseCase.Execute(ctx.Request.Context(), insight.ListInsightsInput{
		UserID: userID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInsightListResponse(output.Insights))
}

// Generate handles POST /insights/generate requests.
func (c *InsightController) Generate(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	var req dto.GenerateInsightRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error())
		return
	}

	output, err := c.generateInsightUseCase.Execute(ctx.Request.Context(), insight.GenerateInsightInput{
		UserID: userID,
		Month:  req.Month,
		Year:   req.Year,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToInsightResponse(output.Insight))
}
