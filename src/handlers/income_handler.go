package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	cache "finhealth-server/src/db"
	db "finhealth-server/src/db/sql"
	"finhealth-server/src/models"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Record dates arrive as plain calendar days.
func parseRecordDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}

func CreateIncome(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		var req struct {
			Amount   float64 `json:"amount"`
			Category string  `json:"category"`
			Date     string  `json:"date"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create income request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if req.Amount <= 0 {
			log.Printf("ERROR: Invalid income amount %v for user %d", req.Amount, userID)
			http.Error(w, "amount must be greater than 0", http.StatusBadRequest)
			return
		}
		if req.Category == "" {
			http.Error(w, "category is required", http.StatusBadRequest)
			return
		}
		date, err := parseRecordDate(req.Date)
		if err != nil {
			log.Printf("ERROR: Invalid income date %q for user %d: %v", req.Date, userID, err)
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		income := &models.Income{
			UserID:   int(userID),
			Amount:   req.Amount,
			Category: req.Category,
			Date:     date,
		}
		created, err := db.CreateIncome(r.Context(), pool, income)
		if err != nil {
			log.Printf("ERROR: Failed to create income for user %d: %v", userID, err)
			http.Error(w, "failed to create income", http.StatusInternalServerError)
			return
		}
		cache.ClearUserReportCaches(int(userID))
		log.Printf("INFO: Created income id %d for user %d, category %s", created.ID, userID, created.Category)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func GetIncomeByID(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		incomeIDStr := chi.URLParam(r, "income_id")
		incomeID, err := strconv.Atoi(incomeIDStr)
		if err != nil {
			log.Printf("ERROR: Invalid income id param: %s", incomeIDStr)
			http.Error(w, "invalid income id", http.StatusBadRequest)
			return
		}
		income, err := db.GetIncomeByID(r.Context(), pool, int(userID), incomeID)
		if err != nil {
			log.Printf("ERROR: Income id %d not found for user %d: %v", incomeID, userID, err)
			http.Error(w, "income not found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(income)
	}
}

func GetAllIncomesForUser(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		incomes, err := db.GetAllIncomesForUser(r.Context(), pool, int(userID))
		if err != nil {
			log.Printf("ERROR: Failed to get incomes for user %d: %v", userID, err)
			http.Error(w, "failed to get incomes", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(incomes)
	}
}

func UpdateIncome(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		incomeIDStr := chi.URLParam(r, "income_id")
		incomeID, err := strconv.Atoi(incomeIDStr)
		if err != nil {
			log.Printf("ERROR: Invalid income id param: %s", incomeIDStr)
			http.Error(w, "invalid income id", http.StatusBadRequest)
			return
		}
		var req struct {
			Amount   float64 `json:"amount"`
			Category string  `json:"category"`
			Date     string  `json:"date"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update income request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if req.Amount <= 0 {
			http.Error(w, "amount must be greater than 0", http.StatusBadRequest)
			return
		}
		date, err := parseRecordDate(req.Date)
		if err != nil {
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		income := &models.Income{
			ID:       incomeID,
			UserID:   int(userID),
			Amount:   req.Amount,
			Category: req.Category,
			Date:     date,
		}
		updated, err := db.UpdateIncome(r.Context(), pool, income)
		if err != nil {
			log.Printf("ERROR: Failed to update income id %d for user %d: %v", incomeID, userID, err)
			http.Error(w, "failed to update income", http.StatusInternalServerError)
			return
		}
		cache.ClearUserReportCaches(int(userID))
		log.Printf("INFO: Updated income id %d for user %d", updated.ID, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	}
}

func DeleteIncome(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		incomeIDStr := chi.URLParam(r, "income_id")
		incomeID, err := strconv.Atoi(incomeIDStr)
		if err != nil {
			log.Printf("ERROR: Invalid income id param: %s", incomeIDStr)
			http.Error(w, "invalid income id", http.StatusBadRequest)
			return
		}
		err = db.DeleteIncome(r.Context(), pool, int(userID), incomeID)
		if err != nil {
			log.Printf("ERROR: Failed to delete income id %d for user %d: %v", incomeID, userID, err)
			http.Error(w, "failed to delete income", http.StatusInternalServerError)
			return
		}
		cache.ClearUserReportCaches(int(userID))
		log.Printf("INFO: Deleted income id %d for user %d", incomeID, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "income deleted"})
	}
}
