package api

import (
	"net/http"

	"finhealth-server/src/handlers"
	"finhealth-server/src/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRouter(pool *pgxpool.Pool, allowedOrigins []string, isDemo bool) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware(allowedOrigins))
	r.Use(middleware.DemoModeMiddleware(isDemo))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", handlers.Login(pool))
		r.Post("/register", handlers.Register(pool))

		// Protected routes
		r.With(middleware.JWTAuthMiddleware).Group(func(r chi.Router) {
			// User
			r.Get("/user/{user_id}", handlers.GetUser(pool))
			r.Put("/user", handlers.UpdateUser(pool))
			r.Post("/user/change-password", handlers.ChangePassword(pool))
			r.Delete("/user", handlers.DeleteUser(pool))

			// Incomes
			r.Post("/incomes", handlers.CreateIncome(pool))
			r.Get("/incomes", handlers.GetAllIncomesForUser(pool))
			r.Get("/incomes/{income_id}", handlers.GetIncomeByID(pool))
			r.Put("/incomes/{income_id}", handlers.UpdateIncome(pool))
			r.Delete("/incomes/{income_id}", handlers.DeleteIncome(pool))

			// Expenses
			r.Post("/expenses", handlers.CreateExpense(pool))
			r.Get("/expenses", handlers.GetAllExpensesForUser(pool))
			r.Get("/expenses/{expense_id}", handlers.GetExpenseByID(pool))
			r.Put("/expenses/{expense_id}", handlers.UpdateExpense(pool))
			r.Delete("/expenses/{expense_id}", handlers.DeleteExpense(pool))

			// Assets
			r.Post("/assets", handlers.CreateAsset(pool))
			r.Get("/assets", handlers.GetAllAssetsForUser(pool))
			r.Get("/assets/{asset_id}", handlers.GetAssetByID(pool))
			r.Put("/assets/{asset_id}", handlers.UpdateAsset(pool))
			r.Delete("/assets/{asset_id}", handlers.DeleteAsset(pool))

			// Liabilities
			r.Post("/liabilities", handlers.CreateLiability(pool))
			r.Get("/liabilities", handlers.GetAllLiabilitiesForUser(pool))
			r.Get("/liabilities/{liability_id}", handlers.GetLiabilityByID(pool))
			r.Put("/liabilities/{liability_id}", handlers.UpdateLiability(pool))
			r.Delete("/liabilities/{liability_id}", handlers.DeleteLiability(pool))

			// Analysis
			r.Get("/analysis/financial-health/{user_id}", handlers.GetFinancialHealth(pool))
			r.Get("/analysis/budget-split/{user_id}", handlers.GetBudgetSplitAnalysis(pool))
			r.Get("/analysis/debt-limit/{user_id}", handlers.GetDebtLimitAnalysis(pool))
			r.Get("/analysis/overspending/{user_id}", handlers.GetOverspendingAnalysis(pool))
			r.Get("/analysis/emergency-fund/{user_id}", handlers.GetEmergencyFundAnalysis(pool))
			r.Get("/analysis/investments/{user_id}", handlers.GetInvestmentAnalysis(pool))
			r.Get("/analysis/education/{user_id}", handlers.GetEducationInvestmentAnalysis(pool))
			r.Get("/analysis/luxury-spending/{user_id}", handlers.GetLuxurySpendingAnalysis(pool))
			r.Get("/analysis/contingency-reserve/{user_id}", handlers.GetContingencyReserveAnalysis(pool))
		})

		// Super Admin Routes
		r.With(middleware.JWTAuthMiddleware, middleware.SuperAdminMiddleware).Group(func(r chi.Router) {
			r.Get("/admin/users", handlers.GetAllUsers(pool))
			r.Post("/admin/user/lock/{user_id}", handlers.LockUser(pool))
			r.Post("/admin/user/unlock/{user_id}", handlers.UnlockUser(pool))
			r.Post("/admin/cache/clear", handlers.ClearCache())
		})
	})

	return r
}
