package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/budgetbook/backend/internal/application/usecase/subscription"
	"github.com/budgetbook/backend/internal/integration/entrypoint/dto"
	"github.com/budgetbook/backend/internal/integration/entrypoint/middleware"
)

// SubscriptionController handles subscription endpoints.
type SubscriptionController struct {
	listSubscriptionsUseCase  *subscription.ListSubscriptionsUseCase
	createSubscriptionUseCase *subscription.CreateSubscriptionUseCase
	updateSubscriptionUseCase *subscription.UpdateSubscriptionUseCase
	deleteSubscriptionUseCase *subscription.DeleteSubscriptionUseCase
}

// NewSubscriptionController creates a new subscription controller instance.
func NewSubscriptionController(
	listSubscriptionsUseCase *subscription.ListSubscriptionsUseCase,
	createSubscriptionUseCase *subscription.CreateSubscriptionUseCase,
	updateSubscriptionUseCase *subscription.UpdateSubscriptionUseCase,
	deleteSubscriptionUseCase *subscription.DeleteSubscriptionUseCase,
) *SubscriptionController {
	return &SubscriptionController{
		listSubscriptionsUseCase:  listSubscriptionsUseCase,
		createSubscriptionUseCase: createSubscriptionUseCase,
		updateSubscriptionUseCase: updateSubscriptionUseCase,
		deleteSubscriptionUseCase: deleteSubscriptionUseCase,
	}
}

// List handles GET /subscriptions requests.
func (c *SubscriptionController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	output, err := c.listSubscriptionsUseCase.Execute(ctx.Request.Context(), subscription.ListSubscriptionsInput{
		UserID: userID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSubscriptionListResponse(output))
}

// Create handles POST /subscriptions requests.
func (c *SubscriptionController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	var req dto.CreateSubscriptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error())
		return
	}

	output, err := c.createSubscriptionUseCase.Execute(ctx.Request.Context(), subscription.CreateSubscriptionInput{
		UserID:     userID,
		Name:       req.Name,
		Amount:     decimal.NewFromFloat(req.Amount),
		BillingDay: req.BillingDay,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSubscriptionResponse(output.Subscription))
}

// Update handles PATCH /subscriptions/:id requests.
func (c *SubscriptionController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateSubscriptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error())
		return
	}

	input := subscription.UpdateSubscriptionInput{
		UserID:          userID,
		ID:              id,
		Name:            req.Name,
		BillingDay:      req.BillingDay,
		ClearBillingDay: req.ClearBillingDay,
		IsActive:        req.IsActive,
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}

	output, err := c.updateSubscriptionUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSubscriptionResponse(output.Subscription))
}

// Delete handles DELETE /subscriptions/:id requests.
func (c *SubscriptionController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.deleteSubscriptionUseCase.Execute(ctx.Request.Context(), subscription.DeleteSubscriptionInput{
		UserID: userID,
		ID:     id,
	}); err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
