// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/budgetbook/backend/internal/integration/entrypoint/controller"
	"github.com/budgetbook/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	dashboardController    *controller.DashboardController
	incomeController       *controller.IncomeController
	expenseController      *controller.ExpenseController
	savingsController      *controller.SavingsController
	goalController         *controller.GoalController
	debtController         *controller.DebtController
	subscriptionController *controller.SubscriptionController
	insightController      *controller.InsightController
	insightRateLimiter     *middleware.RateLimiter
	authMiddleware         *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	dashboardController *controller.DashboardController,
	incomeController *controller.IncomeController,
	expenseController *controller.ExpenseController,
	savingsController *controller.SavingsController,
	goalController *controller.GoalController,
	debtController *controller.DebtController,
	subscriptionController *controller.SubscriptionController,
	insightController *controller.InsightController,
	insightRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:       healthController,
		dashboardController:    dashboardController,
		incomeController:       incomeController,
		expenseController:      expenseController,
		savingsController:      savingsController,
		goalController:         goalController,
		debtController:         debtController,
		subscriptionController: subscriptionController,
		insightController:      insightController,
		insightRateLimiter:     insightRateLimiter,
		authMiddleware:         authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes. Every /api/v1 route
// requires an authenticated session.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	v1.Use(r.authMiddleware.Authenticate())
	{
		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("/overview", r.dashboardController.GetOverview)
			dashboard.GET("/changes", r.dashboardController.GetChanges)
		}

		income := v1.Group("/income")
		{
			income.GET("", r.incomeController.Get)
			income.PUT("", r.incomeController.Upsert)
			income.POST("/additional", r.incomeController.AddAdditional)
			income.PATCH("/additional/:id", r.incomeController.UpdateAdditional)
			income.DELETE("/additional/:id", r.incomeController.DeleteAdditional)
		}

		expenses := v1.Group("/expenses")
		{
			expenses.GET("", r.expenseController.List)
			expenses.POST("", r.expenseController.Create)
			expenses.GET("/categories", r.expenseController.ListCategories)
			expenses.PATCH("/:id", r.expenseController.Update)
			expenses.DELETE("/:id", r.expenseController.Delete)
		}

		savings := v1.Group("/savings")
		{
			savings.GET("/accounts", r.savingsController.ListAccounts)
			savings.POST("/accounts", r.savingsController.CreateAccount)
			savings.PATCH("/accounts/:id", r.savingsController.UpdateAccount)
			savings.DELETE("/accounts/:id", r.savingsController.DeleteAccount)
			savings.GET("/transactions", r.savingsController.ListTransactions)
			savings.POST("/transactions", r.savingsController.AddTransaction)
			savings.DELETE("/transactions/:id", r.savingsController.DeleteTransaction)
		}

		goals := v1.Group("/goals")
		{
			goals.GET("", r.goalController.List)
			goals.POST("", r.goalController.Create)
			goals.PATCH("/:id", r.goalController.Update)
			goals.DELETE("/:id", r.goalController.Delete)
			goals.POST("/:id/link", r.goalController.LinkAccount)
			goals.DELETE("/:id/link/:accountId", r.goalController.UnlinkAccount)
		}

		debts := v1.Group("/debts")
		{
			debts.GET("", r.debtController.List)
			debts.POST("", r.debtController.Create)
			debts.PATCH("/:id", r.debtController.Update)
			debts.DELETE("/:id", r.debtController.Delete)
		}

		subscriptions := v1.Group("/subscriptions")
		{
			subscriptions.GET("", r.subscriptionController.List)
			subscriptions.POST("", r.subscriptionController.Create)
			subscriptions.PATCH("/:id", r.subscriptionController.Update)
			subscriptions.DELETE("/:id", r.subscriptionController.Delete)
		}

		insights := v1.Group("/insights")
		{
			insights.GET("", r.insightController.List)
			insights.POST("/generate", r.insightRateLimiter.Middleware(), r.insightController.Generate)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
