package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	cache "finhealth-server/src/db"
	db "finhealth-server/src/db/sql"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func GetAllUsers(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := db.GetAllUsers(r.Context(), pool)
		if err != nil {
			log.Printf("ERROR: Failed to get all users: %v", err)
			http.Error(w, "failed to get users", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(users)
	}
}

func setUserLocked(pool *pgxpool.Pool, locked bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userIDStr := chi.URLParam(r, "user_id")
		userID, err := strconv.Atoi(userIDStr)
		if err != nil {
			log.Printf("ERROR: Invalid user id param: %s", userIDStr)
			http.Error(w, "invalid user id", http.StatusBadRequest)
			return
		}
		if err := db.SetUserLocked(r.Context(), pool, userID, locked); err != nil {
			log.Printf("ERROR: Failed to set locked=%t for user %d: %v", locked, userID, err)
			http.Error(w, "failed to update user", http.StatusInternalServerError)
			return
		}
		log.Printf("INFO: Set locked=%t for user %d", locked, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]bool{"locked": locked})
	}
}

func LockUser(pool *pgxpool.Pool) http.HandlerFunc {
	return setUserLocked(pool, true)
}

func UnlockUser(pool *pgxpool.Pool) http.HandlerFunc {
	return setUserLocked(pool, false)
}

func ClearCache() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cache.ClearAllReportCaches()
		log.Printf("INFO: Cleared all report caches")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "cache cleared"})
	}
}
