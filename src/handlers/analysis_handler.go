package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	cache "finhealth-server/src/db"
	db "finhealth-server/src/db/sql"
	"finhealth-server/src/engine"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// analysisTarget resolves the {user_id} route param and enforces that the
// authenticated user only analyzes their own records.
func analysisTarget(w http.ResponseWriter, r *http.Request) (int, bool) {
	authedID := r.Context().Value("user_id").(int64)
	targetIDStr := chi.URLParam(r, "user_id")
	targetID, err := strconv.Atoi(targetIDStr)
	if err != nil {
		log.Printf("ERROR: Invalid user id param: %s", targetIDStr)
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return 0, false
	}
	if int64(targetID) != authedID {
		log.Printf("ERROR: User %d attempted to analyze user %d", authedID, targetID)
		http.Error(w, "forbidden", http.StatusForbidden)
		return 0, false
	}
	return targetID, true
}

// analysisWindow reads the days query param. Absent means the default window;
// present but outside the accepted range is a client error.
func analysisWindow(w http.ResponseWriter, r *http.Request) (int, bool) {
	daysStr := r.URL.Query().Get("days")
	if daysStr == "" {
		return engine.DefaultWindowDays, true
	}
	days, err := strconv.Atoi(daysStr)
	if err != nil || days < engine.MinWindowDays || days > engine.MaxWindowDays {
		log.Printf("ERROR: Invalid analysis window %q", daysStr)
		http.Error(w, "days must be a whole number between 1 and 365", http.StatusBadRequest)
		return 0, false
	}
	return days, true
}

func analysisMetrics(pool *pgxpool.Pool, w http.ResponseWriter, r *http.Request) (*engine.MetricSet, bool) {
	userID, ok := analysisTarget(w, r)
	if !ok {
		return nil, false
	}
	days, ok := analysisWindow(w, r)
	if !ok {
		return nil, false
	}
	evaluator := engine.NewEvaluator(db.NewStore(pool))
	metrics, err := evaluator.Metrics(r.Context(), userID, days)
	if err != nil {
		log.Printf("ERROR: Failed to gather metrics for user %d: %v", userID, err)
		http.Error(w, "failed to analyze records", http.StatusInternalServerError)
		return nil, false
	}
	return metrics, true
}

func writeVerdict(w http.ResponseWriter, verdict interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(verdict)
}

// GetFinancialHealth runs the full rule set and returns the aggregate report.
// Finished reports are cached per (user, window); any record write drops them.
func GetFinancialHealth(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := analysisTarget(w, r)
		if !ok {
			return
		}
		days, ok := analysisWindow(w, r)
		if !ok {
			return
		}

		cacheKey := cache.ReportCacheKey(userID, days)
		if cached, found := cache.Cache.Get(cacheKey); found {
			log.Printf("INFO: Health report cache hit for user %d, %d days", userID, days)
			writeVerdict(w, cached.(*engine.HealthReport))
			return
		}

		evaluator := engine.NewEvaluator(db.NewStore(pool))
		report, err := evaluator.Evaluate(r.Context(), userID, days)
		if err != nil {
			log.Printf("ERROR: Failed to evaluate financial health for user %d: %v", userID, err)
			http.Error(w, "failed to analyze records", http.StatusInternalServerError)
			return
		}

		cache.SetReportCache(cacheKey, report)
		log.Printf("INFO: Evaluated financial health for user %d, %d days, score %.2f", userID, days, report.Score.Percentage)
		writeVerdict(w, report)
	}
}

func GetBudgetSplitAnalysis(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metrics, ok := analysisMetrics(pool, w, r)
		if !ok {
			return
		}
		writeVerdict(w, engine.Rule503020(metrics.TotalIncome, metrics.Needs(), metrics.Wants(), metrics.SavingsBucket()))
	}
}

func GetDebtLimitAnalysis(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metrics, ok := analysisMetrics(pool, w, r)
		if !ok {
			return
		}
		writeVerdict(w, engine.RuleDebtLimit(metrics.TotalIncome, metrics.TotalLiabilityPayment))
	}
}

func GetOverspendingAnalysis(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metrics, ok := analysisMetrics(pool, w, r)
		if !ok {
			return
		}
		writeVerdict(w, engine.RuleOverspending(metrics.TotalIncome, metrics.TotalExpense))
	}
}

func GetEmergencyFundAnalysis(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metrics, ok := analysisMetrics(pool, w, r)
		if !ok {
			return
		}
		writeVerdict(w, engine.RuleEmergencyFund(metrics.TotalIncome, metrics.EmergencyFund()))
	}
}

func GetInvestmentAnalysis(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metrics, ok := analysisMetrics(pool, w, r)
		if !ok {
			return
		}
		writeVerdict(w, engine.RuleNoInvestments(metrics.TotalAssetValue, metrics.TotalAssetMonthlyFlow))
	}
}

func GetEducationInvestmentAnalysis(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metrics, ok := analysisMetrics(pool, w, r)
		if !ok {
			return
		}
		writeVerdict(w, engine.RuleEducationInvestment(metrics.Education(), metrics.TotalIncome))
	}
}

func GetLuxurySpendingAnalysis(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metrics, ok := analysisMetrics(pool, w, r)
		if !ok {
			return
		}
		writeVerdict(w, engine.RuleLuxuryVsEducation(metrics.Luxury(), metrics.Education(), metrics.TotalAssetValue))
	}
}

func GetContingencyReserveAnalysis(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metrics, ok := analysisMetrics(pool, w, r)
		if !ok {
			return
		}
		writeVerdict(w, engine.RuleContingencyReserve(metrics.TotalIncome, metrics.LiquidSavings()))
	}
}
