package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	cache "finhealth-server/src/db"
	db "finhealth-server/src/db/sql"
	"finhealth-server/src/models"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func CreateExpense(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		var req struct {
			Amount   float64 `json:"amount"`
			Category string  `json:"category"`
			Date     string  `json:"date"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create expense request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if req.Amount <= 0 {
			log.Printf("ERROR: Invalid expense amount %v for user %d", req.Amount, userID)
			http.Error(w, "amount must be greater than 0", http.StatusBadRequest)
			return
		}
		if req.Category == "" {
			http.Error(w, "category is required", http.StatusBadRequest)
			return
		}
		date, err := parseRecordDate(req.Date)
		if err != nil {
			log.Printf("ERROR: Invalid expense date %q for user %d: %v", req.Date, userID, err)
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		expense := &models.Expense{
			UserID:   int(userID),
			Amount:   req.Amount,
			Category: req.Category,
			Date:     date,
		}
		created, err := db.CreateExpense(r.Context(), pool, expense)
		if err != nil {
			log.Printf("ERROR: Failed to create expense for user %d: %v", userID, err)
			http.Error(w, "failed to create expense", http.StatusInternalServerError)
			return
		}
		cache.ClearUserReportCaches(int(userID))
		log.Printf("INFO: Created expense id %d for user %d, category %s", created.ID, userID, created.Category)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func GetExpenseByID(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		expenseIDStr := chi.URLParam(r, "expense_id")
		expenseID, err := strconv.Atoi(expenseIDStr)
		if err != nil {
			log.Printf("ERROR: Invalid expense id param: %s", expenseIDStr)
			http.Error(w, "invalid expense id", http.StatusBadRequest)
			return
		}
		expense, err := db.GetExpenseByID(r.Context(), pool, int(userID), expenseID)
		if err != nil {
			log.Printf("ERROR: Expense id %d not found for user %d: %v", expenseID, userID, err)
			http.Error(w, "expense not found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(expense)
	}
}

func GetAllExpensesForUser(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		expenses, err := db.GetAllExpensesForUser(r.Context(), pool, int(userID))
		if err != nil {
			log.Printf("ERROR: Failed to get expenses for user %d: %v", userID, err)
			http.Error(w, "failed to get expenses", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(expenses)
	}
}

func UpdateExpense(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		expenseIDStr := chi.URLParam(r, "expense_id")
		expenseID, err := strconv.Atoi(expenseIDStr)
		if err != nil {
			log.Printf("ERROR: Invalid expense id param: %s", expenseIDStr)
			http.Error(w, "invalid expense id", http.StatusBadRequest)
			return
		}
		var req struct {
			Amount   float64 `json:"amount"`
			Category string  `json:"category"`
			Date     string  `json:"date"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update expense request body for user %d: %v", userID, err)
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
		expense := &models.Expense{
			ID:       expenseID,
			UserID:   int(userID),
			Amount:   req.Amount,
			Category: req.Category,
			Date:     date,
		}
		updated, err := db.UpdateExpense(r.Context(), pool, expense)
		if err != nil {
			log.Printf("ERROR: Failed to update expense id %d for user %d: %v", expenseID, userID, err)
			http.Error(w, "failed to update expense", http.StatusInternalServerError)
			return
		}
		cache.ClearUserReportCaches(int(userID))
		log.Printf("INFO: Updated expense id %d for user %d", updated.ID, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	}
}

func DeleteExpense(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		expenseIDStr := chi.URLParam(r, "expense_id")
		expenseID, err := strconv.Atoi(expenseIDStr)
		if err != nil {
			log.Printf("ERROR: Invalid expense id param: %s", expenseIDStr)
			http.Error(w, "invalid expense id", http.StatusBadRequest)
			return
		}
		err = db.DeleteExpense(r.Context(), pool, int(userID), expenseID)
		if err != nil {
			log.Printf("ERROR: Failed to delete expense id %d for user %d: %v", expenseID, userID, err)
			http.Error(w, "failed to delete expense", http.StatusInternalServerError)
			return
		}
		cache.ClearUserReportCaches(int(userID))
		log.Printf("INFO: Deleted expense id %d for user %d", expenseID, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "expense deleted"})
	}
}
