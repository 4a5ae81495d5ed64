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

func CreateLiability(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		var req struct {
			Name           string  `json:"name"`
			Type           string  `json:"type"`
			TotalAmount    float64 `json:"total_amount"`
			MonthlyPayment float64 `json:"monthly_payment"`
			DueDate        string  `json:"due_date"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create liability request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if req.Name == "" || req.Type == "" {
			http.Error(w, "name and type are required", http.StatusBadRequest)
			return
		}
		if req.TotalAmount <= 0 {
			log.Printf("ERROR: Invalid liability total %v for user %d", req.TotalAmount, userID)
			http.Error(w, "total_amount must be greater than 0", http.StatusBadRequest)
			return
		}
		if req.MonthlyPayment < 0 {
			http.Error(w, "monthly_payment must not be negative", http.StatusBadRequest)
			return
		}
		dueDate, err := parseRecordDate(req.DueDate)
		if err != nil {
			log.Printf("ERROR: Invalid liability due date %q for user %d: %v", req.DueDate, userID, err)
			http.Error(w, "due_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		liability := &models.Liability{
			UserID:         int(userID),
			Name:           req.Name,
			Type:           req.Type,
			TotalAmount:    req.TotalAmount,
			MonthlyPayment: req.MonthlyPayment,
			DueDate:        dueDate,
		}
		created, err := db.CreateLiability(r.Context(), pool, liability)
		if err != nil {
			log.Printf("ERROR: Failed to create liability for user %d: %v", userID, err)
			http.Error(w, "failed to create liability", http.StatusInternalServerError)
			return
		}
		cache.ClearUserReportCaches(int(userID))
		log.Printf("INFO: Created liability id %d for user %d, type %s", created.ID, userID, created.Type)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func GetLiabilityByID(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		liabilityIDStr := chi.URLParam(r, "liability_id")
		liabilityID, err := strconv.Atoi(liabilityIDStr)
		if err != nil {
			log.Printf("ERROR: Invalid liability id param: %s", liabilityIDStr)
			http.Error(w, "invalid liability id", http.StatusBadRequest)
			return
		}
		liability, err := db.GetLiabilityByID(r.Context(), pool, int(userID), liabilityID)
		if err != nil {
			log.Printf("ERROR: Liability id %d not found for user %d: %v", liabilityID, userID, err)
			http.Error(w, "liability not found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(liability)
	}
}

func GetAllLiabilitiesForUser(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		liabilities, err := db.GetAllLiabilitiesForUser(r.Context(), pool, int(userID))
		if err != nil {
			log.Printf("ERROR: Failed to get liabilities for user %d: %v", userID, err)
			http.Error(w, "failed to get liabilities", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(liabilities)
	}
}

func UpdateLiability(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		liabilityIDStr := chi.URLParam(r, "liability_id")
		liabilityID, err := strconv.Atoi(liabilityIDStr)
		if err != nil {
			log.Printf("ERROR: Invalid liability id param: %s", liabilityIDStr)
			http.Error(w, "invalid liability id", http.StatusBadRequest)
			return
		}
		var req struct {
			Name           string  `json:"name"`
			Type           string  `json:"type"`
			TotalAmount    float64 `json:"total_amount"`
			MonthlyPayment float64 `json:"monthly_payment"`
			DueDate        string  `json:"due_date"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update liability request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if req.TotalAmount <= 0 {
			http.Error(w, "total_amount must be greater than 0", http.StatusBadRequest)
			return
		}
		if req.MonthlyPayment < 0 {
			http.Error(w, "monthly_payment must not be negative", http.StatusBadRequest)
			return
		}
		dueDate, err := parseRecordDate(req.DueDate)
		if err != nil {
			http.Error(w, "due_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		liability := &models.Liability{
			ID:             liabilityID,
			UserID:         int(userID),
			Name:           req.Name,
			Type:           req.Type,
			TotalAmount:    req.TotalAmount,
			MonthlyPayment: req.MonthlyPayment,
			DueDate:        dueDate,
		}
		updated, err := db.UpdateLiability(r.Context(), pool, liability)
		if err != nil {
			log.Printf("ERROR: Failed to update liability id %d for user %d: %v", liabilityID, userID, err)
			http.Error(w, "failed to update liability", http.StatusInternalServerError)
			return
		}
		cache.ClearUserReportCaches(int(userID))
		log.Printf("INFO: Updated liability id %d for user %d", updated.ID, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	}
}

func DeleteLiability(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		liabilityIDStr := chi.URLParam(r, "liability_id")
		liabilityID, err := strconv.Atoi(liabilityIDStr)
		if err != nil {
			log.Printf("ERROR: Invalid liability id param: %s", liabilityIDStr)
			http.Error(w, "invalid liability id", http.StatusBadRequest)
			return
		}
		err = db.DeleteLiability(r.Context(), pool, int(userID), liabilityID)
		if err != nil {
			log.Printf("ERROR: Failed to delete liability id %d for user %d: %v", liabilityID, userID, err)
			http.Error(w, "failed to delete liability", http.StatusInternalServerError)
			return
		}
		cache.ClearUserReportCaches(int(userID))
		log.Printf("INFO: Deleted liability id %d for user %d", liabilityID, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "liability deleted"})
	}
}
