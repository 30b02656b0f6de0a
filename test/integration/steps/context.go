// Package steps wires the application against in-process fakes and
// provides the step definitions for the feature suite.
package steps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

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
	"github.com/budgetbook/backend/internal/integration/persistence/model"
	"github.com/budgetbook/backend/test/integration/mock"
)

// testJWTSecret signs the session tokens the suite issues. It matches the
// secret the session service under test verifies with.
const testJWTSecret = "integration-test-secret"

// defaultUserID is the user scenarios act as unless they say otherwise.
const defaultUserID = "3f2a8c1e-9b4d-4e6a-8f0c-2d7b5a193c44"

var suiteOnce sync.Once
var suite *testSuite

// testSuite holds the resources shared by every scenario. Redis is not
// held here; mock.NewRedis returns the suite singleton directly.
type testSuite struct {
	server *httptest.Server
	db     *mock.Db
	ai     *mock.AIService
}

// TestContext carries per-scenario state between steps.
type TestContext struct {
	response     *http.Response
	responseBody []byte

	token string
	jti   string

	vars map[string]string
}

type contextKey struct{}

// GetTestContext retrieves the scenario state from the godog context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the scenario state in the godog context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// startSuite boots the application once against the in-process fakes.
func startSuite() *testSuite {
	suiteOnce.Do(func() {
		gin.SetMode(gin.TestMode)

		db := mock.NewDb(map[string]any{
			"months":               &model.MonthModel{},
			"income":               &model.IncomeModel{},
			"additional_income":    &model.AdditionalIncomeModel{},
			"expense_categories":   &model.ExpenseCategoryModel{},
			"expenses":             &model.ExpenseModel{},
			"savings_accounts":     &model.SavingsAccountModel{},
			"savings_transactions": &model.SavingsTransactionModel{},
			"goals":                &model.GoalModel{},
			"goal_accounts":        &model.GoalAccountModel{},
			"debts":                &model.DebtModel{},
			"subscriptions":        &model.SubscriptionModel{},
			"insights":             &model.InsightModel{},
		})
		ai := mock.NewAIService()

		engine := buildEngine(db, ai)

		suite = &testSuite{
			server: httptest.NewServer(engine),
			db:     db,
			ai:     ai,
		}
	})
	return suite
}

// buildEngine wires repositories, use cases, controllers, and middleware
// the same way the production injector does, substituting the AI fake.
func buildEngine(db *mock.Db, ai *mock.AIService) *gin.Engine {
	conn := db.Conn

	monthRepo := persistence.NewMonthRepository(conn)
	incomeRepo := persistence.NewIncomeRepository(conn)
	additionalIncomeRepo := persistence.NewAdditionalIncomeRepository(conn)
	expenseRepo := persistence.NewExpenseRepository(conn)
	categoryRepo := persistence.NewCategoryRepository(conn)
	savingsRepo := persistence.NewSavingsRepository(conn)
	goalRepo := persistence.NewGoalRepository(conn)
	debtRepo := persistence.NewDebtRepository(conn)
	subscriptionRepo := persistence.NewSubscriptionRepository(conn)
	insightRepo := persistence.NewInsightRepository(conn)
	dashboardRepo := persistence.NewDashboardRepository(conn)

	sessionService := adapters.NewSessionService(testJWTSecret, mock.NewRedis())

	getOverviewUseCase := dashboard.NewGetOverviewUseCase(monthRepo, dashboardRepo)
	getChangesUseCase := dashboard.NewGetChangesUseCase(monthRepo, dashboardRepo)

	healthController := controller.NewHealthController(func() bool { return true })
	dashboardController := controller.NewDashboardController(getOverviewUseCase, getChangesUseCase)
	incomeController := controller.NewIncomeController(
		income.NewGetIncomeUseCase(monthRepo, incomeRepo, additionalIncomeRepo),
		income.NewUpsertIncomeUseCase(monthRepo, incomeRepo),
		income.NewAddAdditionalIncomeUseCase(monthRepo, additionalIncomeRepo),
		income.NewUpdateAdditionalIncomeUseCase(additionalIncomeRepo),
		income.NewDeleteAdditionalIncomeUseCase(additionalIncomeRepo),
	)
	expenseController := controller.NewExpenseController(
		expense.NewListExpensesUseCase(monthRepo, expenseRepo),
		expense.NewCreateExpenseUseCase(monthRepo, expenseRepo, categoryRepo),
		expense.NewUpdateExpenseUseCase(expenseRepo, categoryRepo),
		expense.NewDeleteExpenseUseCase(expenseRepo),
		expense.NewListCategoriesUseCase(categoryRepo),
	)
	savingsController := controller.NewSavingsController(
		savings.NewListAccountsUseCase(savingsRepo),
		savings.NewCreateAccountUseCase(savingsRepo),
		savings.NewUpdateAccountUseCase(savingsRepo),
		savings.NewDeleteAccountUseCase(savingsRepo),
		savings.NewListTransactionsUseCase(savingsRepo),
		savings.NewAddTransactionUseCase(monthRepo, savingsRepo),
		savings.NewDeleteTransactionUseCase(savingsRepo),
	)
	goalController := controller.NewGoalController(
		goal.NewListGoalsUseCase(goalRepo, savingsRepo),
		goal.NewCreateGoalUseCase(goalRepo),
		goal.NewUpdateGoalUseCase(goalRepo),
		goal.NewDeleteGoalUseCase(goalRepo),
		goal.NewLinkAccountUseCase(goalRepo, savingsRepo),
		goal.NewUnlinkAccountUseCase(goalRepo),
	)
	debtController := controller.NewDebtController(
		debt.NewListDebtsUseCase(debtRepo),
		debt.NewCreateDebtUseCase(debtRepo),
		debt.NewUpdateDebtUseCase(debtRepo),
		debt.NewDeleteDebtUseCase(debtRepo),
	)
	subscriptionController := controller.NewSubscriptionController(
		subscription.NewListSubscriptionsUseCase(subscriptionRepo),
		subscription.NewCreateSubscriptionUseCase(subscriptionRepo),
		subscription.NewUpdateSubscriptionUseCase(subscriptionRepo),
		subscription.NewDeleteSubscriptionUseCase(subscriptionRepo),
	)
	insightController := controller.NewInsightController(
		insight.NewGenerateInsightUseCase(monthRepo, getOverviewUseCase, insightRepo, ai),
		insight.NewListInsightsUseCase(insightRepo),
	)

	insightRateLimiter := middleware.NewRateLimiterWithConfig(1000, time.Minute)
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
	return r.Setup("test")
}

// InitializeTestSuite boots the shared server before any scenario runs.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		startSuite()
	})
	ctx.AfterSuite(func() {
		if suite != nil && suite.server != nil {
			suite.server.Close()
		}
	})
}

// InitializeScenario registers step definitions and resets state between
// scenarios.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		s := startSuite()
		if err := s.db.Reset(); err != nil {
			return ctx, err
		}
		if err := mock.ClearRedis(mock.NewRedis()); err != nil {
			return ctx, err
		}
		s.ai.Reset()

		tc := &TestContext{vars: make(map[string]string)}
		return SetTestContext(ctx, tc), nil
	})

	registerAuthSteps(ctx)
	registerRequestSteps(ctx)
	registerResponseSteps(ctx)
	registerDatabaseSteps(ctx)
	registerAISteps(ctx)
}
