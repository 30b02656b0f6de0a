// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/budgetbook/backend/config"
	"github.com/budgetbook/backend/internal/application/usecase/dashboard"
	"github.com/budgetbook/backend/internal/application/usecase/debt"
	"github.com/budgetbook/backend/internal/application/usecase/expense"
	"github.com/budgetbook/backend/internal/application/usecase/goal"
	"github.com/budgetbook/backend/internal/application/usecase/income"
	"github.com/budgetbook/backend/internal/application/usecase/insight"
	"github.com/budgetbook/backend/internal/application/usecase/savings"
	"github.com/budgetbook/backend/internal/application/usecase/subscription"
	"github.com/budgetbook/backend/internal/infra/server/router"
	"github.com/budgetbook/backend/internal/integration/adapters"
	"github.com/budgetbook/backend/internal/integration/entrypoint/controller"
	"github.com/budgetbook/backend/internal/integration/entrypoint/middleware"
	"github.com/budgetbook/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Repositories
	monthRepo := persistence.NewMonthRepository(db)
	incomeRepo := persistence.NewIncomeRepository(db)
	additionalIncomeRepo := persistence.NewAdditionalIncomeRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	savingsRepo := persistence.NewSavingsRepository(db)
	goalRepo := persistence.NewGoalRepository(db)
	debtRepo := persistence.NewDebtRepository(db)
	subscriptionRepo := persistence.NewSubscriptionRepository(db)
	insightRepo := persistence.NewInsightRepository(db)
	dashboardRepo := persistence.NewDashboardRepository(db)

	// Adapters/services
	sessionService := adapters.NewSessionService(cfg.Session.JWTSecret, redisClient)
	aiService := adapters.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.Model)

	// Dashboard use cases
	getOverviewUseCase := dashboard.NewGetOverviewUseCase(monthRepo, dashboardRepo)
	getChangesUseCase := dashboard.NewGetChangesUseCase(monthRepo, dashboardRepo)

	// Income use cases
	getIncomeUseCase := income.NewGetIncomeUseCase(monthRepo, incomeRepo, additionalIncomeRepo)
	upsertIncomeUseCase := income.NewUpsertIncomeUseCase(monthRepo, incomeRepo)
	addAdditionalUseCase := income.NewAddAdditionalIncomeUseCase(monthRepo, additionalIncomeRepo)
	updateAdditionalUseCase := income.NewUpdateAdditionalIncomeUseCase(additionalIncomeRepo)
	deleteAdditionalUseCase := income.NewDeleteAdditionalIncomeUseCase(additionalIncomeRepo)

	// Expense use cases
	listExpensesUseCase := expense.NewListExpensesUseCase(monthRepo, expenseRepo)
	createExpenseUseCase := expense.NewCreateExpenseUseCase(monthRepo, expenseRepo, categoryRepo)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo, categoryRepo)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo)
	listCategoriesUseCase := expense.NewListCategoriesUseCase(categoryRepo)

	// Savings use cases
	listAccountsUseCase := savings.NewListAccountsUseCase(savingsRepo)
	createAccountUseCase := savings.NewCreateAccountUseCase(savingsRepo)
	updateAccountUseCase := savings.NewUpdateAccountUseCase(savingsRepo)
	deleteAccountUseCase := savings.NewDeleteAccountUseCase(savingsRepo)
	listTransactionsUseCase := savings.NewListTransactionsUseCase(savingsRepo)
	addTransactionUseCase := savings.NewAddTransactionUseCase(monthRepo, savingsRepo)
	deleteTransactionUseCase := savings.NewDeleteTransactionUseCase(savingsRepo)

	// Goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo, savingsRepo)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)
	linkAccountUseCase := goal.NewLinkAccountUseCase(goalRepo, savingsRepo)
	unlinkAccountUseCase := goal.NewUnlinkAccountUseCase(goalRepo)

	// Debt use cases
	listDebtsUseCase := debt.NewListDebtsUseCase(debtRepo)
	createDebtUseCase := debt.NewCreateDebtUseCase(debtRepo)
	updateDebtUseCase := debt.NewUpdateDebtUseCase(debtRepo)
	deleteDebtUseCase := debt.NewDeleteDebtUseCase(debtRepo)

	// Subscription use cases
	listSubscriptionsUseCase := subscription.NewListSubscriptionsUseCase(subscriptionRepo)
	createSubscriptionUseCase := subscription.NewCreateSubscriptionUseCase(subscriptionRepo)
	updateSubscriptionUseCase := subscription.NewUpdateSubscriptionUseCase(subscriptionRepo)
	deleteSubscriptionUseCase := subscription.NewDeleteSubscriptionUseCase(subscriptionRepo)

	// Insight use cases
	generateInsightUseCase := insight.NewGenerateInsightUseCase(monthRepo, getOverviewUseCase, insightRepo, aiService)
	listInsightsUseCase := insight.NewListInsightsUseCase(insightRepo)

	// Controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	dashboardController := controller.NewDashboardController(getOverviewUseCase, getChangesUseCase)

	incomeController := controller.NewIncomeController(
		getIncomeUseCase,
		upsertIncomeUseCase,
		addAdditionalUseCase,
		updateAdditionalUseCase,
		deleteAdditionalUseCase,
	)

	expenseController := controller.NewExpenseController(
		listExpensesUseCase,
		createExpenseUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
		listCategoriesUseCase,
	)

	savingsController := controller.NewSavingsController(
		listAccountsUseCase,
		createAccountUseCase,
		updateAccountUseCase,
		deleteAccountUseCase,
		listTransactionsUseCase,
		addTransactionUseCase,
		deleteTransactionUseCase,
	)

	goalController := controller.NewGoalController(
		listGoalsUseCase,
		createGoalUseCase,
		updateGoalUseCase,
		deleteGoalUseCase,
		linkAccountUseCase,
		unlinkAccountUseCase,
	)

	debtController := controller.NewDebtController(
		listDebtsUseCase,
		createDebtUseCase,
		updateDebtUseCase,
		deleteDebtUseCase,
	)

	subscriptionController := controller.NewSubscriptionController(
		listSubscriptionsUseCase,
		createSubscriptionUseCase,
		updateSubscriptionUseCase,
		deleteSubscriptionUseCase,
	)

	insightController := controller.NewInsightController(generateInsightUseCase, listInsightsUseCase)

	// Middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var insightRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		insightRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		insightRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(sessionService)

	r := router.NewRouter(
		healthController,
		dashboardController,
		incomeController,
		expenseController,
		savingsController,
		goalController,
		debtController,
		subscriptionController,
		insightController,
		insightRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
