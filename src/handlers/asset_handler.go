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

func CreateAsset(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		var req struct {
			Name        string   `json:"name"`
			Type        string   `json:"type"`
			Value       float64  `json:"value"`
			MonthlyFlow *float64 `json:"monthly_flow"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create asset request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if req.Name == "" || req.Type == "" {
			http.Error(w, "name and type are required", http.StatusBadRequest)
			return
		}
		if req.Value < 0 {
			log.Printf("ERROR: Invalid asset value %v for user %d", req.Value, userID)
			http.Error(w, "value must not be negative", http.StatusBadRequest)
			return
		}
		asset := &models.Asset{
			UserID:      int(userID),
			Name:        req.Name,
			Type:        req.Type,
			Value:       req.Value,
			MonthlyFlow: req.MonthlyFlow,
		}
		created, err := db.CreateAsset(r.Context(), pool, asset)
		if err != nil {
			log.Printf("ERROR: Failed to create asset for user %d: %v", userID, err)
			http.Error(w, "failed to create asset", http.StatusInternalServerError)
			return
		}
		cache.ClearUserReportCaches(int(userID))
		log.Printf("INFO: Created asset id %d for user %d, type %s", created.ID, userID, created.Type)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func GetAssetByID(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		assetIDStr := chi.URLParam(r, "asset_id")
		assetID, err := strconv.Atoi(assetIDStr)
		if err != nil {
			log.Printf("ERROR: Invalid asset id param: %s", assetIDStr)
			http.Error(w, "invalid asset id", http.StatusBadRequest)
			return
		}
		asset, err := db.GetAssetByID(r.Context(), pool, int(userID), assetID)
		if err != nil {
			log.Printf("ERROR: Asset id %d not found for user %d: %v", assetID, userID, err)
			http.Error(w, "asset not found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(asset)
	}
}

func GetAllAssetsForUser(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		assets, err := db.GetAllAssetsForUser(r.Context(), pool, int(userID))
		if err != nil {
			log.Printf("ERROR: Failed to get assets for user %d: %v", userID, err)
			http.Error(w, "failed to get assets", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(assets)
	}
}

func UpdateAsset(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		assetIDStr := chi.URLParam(r, "asset_id")
		assetID, err := strconv.Atoi(assetIDStr)
		if err != nil {
			log.Printf("ERROR: Invalid asset id param: %s", assetIDStr)
			http.Error(w, "invalid asset id", http.StatusBadRequest)
			return
		}
		var req struct {
			Name        string   `json:"name"`
			Type        string   `json:"type"`
			Value       float64  `json:"value"`
			MonthlyFlow *float64 `json:"monthly_flow"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update asset request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if req.Value < 0 {
			http.Error(w, "value must not be negative", http.StatusBadRequest)
			return
		}
		asset := &models.Asset{
			ID:          assetID,
			UserID:      int(userID),
			Name:        req.Name,
			Type:        req.Type,
			Value:       req.Value,
			MonthlyFlow: req.MonthlyFlow,
		}
		updated, err := db.UpdateAsset(r.Context(), pool, asset)
		if err != nil {
			log.Printf("ERROR: Failed to update asset id %d for user %d: %v", assetID, userID, err)
			http.Error(w, "failed to update asset", http.StatusInternalServerError)
			return
		}
		cache.ClearUserReportCaches(int(userID))
		log.Printf("INFO: Updated asset id %d for user %d", updated.ID, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	}
}

func DeleteAsset(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		assetIDStr := chi.URLParam(r, "asset_id")
		assetID, err := strconv.Atoi(assetIDStr)
		if err != nil {
			log.Printf("ERROR: Invalid asset id param: %s", assetIDStr)
			http.Error(w, "invalid asset id", http.StatusBadRequest)
			return
		}
		err = db.DeleteAsset(r.Context(), pool, int(userID), assetID)
		if err != nil {
			log.Printf("ERROR: Failed to delete asset id %d for user %d: %v", assetID, userID, err)
			http.Error(w, "failed to delete asset", http.StatusInternalServerError)
			return
		}
		cache.ClearUserReportCaches(int(userID))
		log.Printf("INFO: Deleted asset id %d for user %d", assetID, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "asset deleted"})
	}
}
