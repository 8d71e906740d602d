package rounds

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"golf-tracker/internal/auth"
	"golf-tracker/internal/models"
	"golf-tracker/internal/storage"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"
)

type CreateRequest struct {
	Score        int     `json:"score"`
	CourseRating float64 `json:"course_rating"`
	CourseSlope  int     `json:"course_slope"`
	Date         string  `json:"date"`
	Course       *string `json:"course"`
	Tees         *string `json:"tees"`
	Yardage      *int    `json:"yardage"`
	Par          *int    `json:"par"`
}

// UpdateRequest is a partial update: absent fields are left as they are.
type UpdateRequest struct {
	Score        *int     `json:"score"`
	CourseRating *float64 `json:"course_rating"`
	CourseSlope  *int     `json:"course_slope"`
	Date         *string  `json:"date"`
	Course       *string  `json:"course"`
	Tees         *string  `json:"tees"`
	Yardage      *int     `json:"yardage"`
	Par          *int     `json:"par"`
}

type RoundResponse struct {
	ID           int64   `json:"id"`
	Date         string  `json:"date"`
	Score        int     `json:"score"`
	CourseRating float64 `json:"course_rating"`
	CourseSlope  int     `json:"course_slope"`
	Course       *string `json:"course"`
	Tees         *string `json:"tees"`
	Yardage      *int    `json:"yardage"`
	Par          *int    `json:"par"`
}

func toResponse(r models.Round) RoundResponse {
	return RoundResponse{
		ID:           r.ID,
		Date:         r.Date.Format(models.DateLayout),
		Score:        r.Score,
		CourseRating: r.CourseRating,
		CourseSlope:  r.CourseSlope,
		Course:       r.Course,
		Tees:         r.Tees,
		Yardage:      r.Yardage,
		Par:          r.Par,
	}
}

// CreateHandler serves POST /rounds.
func CreateHandler(store *storage.RoundStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req CreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if req.Score <= 0 {
			http.Error(w, "score must be a positive integer", http.StatusBadRequest)
			return
		}
		if req.CourseSlope == 0 {
			http.Error(w, "course_slope must be nonzero", http.StatusBadRequest)
			return
		}

		date := today()
		if req.Date != "" {
			parsed, err := time.ParseInLocation(models.DateLayout, req.Date, time.UTC)
			if err != nil {
				http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			date = parsed
		}

		round := models.Round{
			UserID:       userID,
			Date:         date,
			Score:        req.Score,
			CourseRating: req.CourseRating,
			CourseSlope:  req.CourseSlope,
			Course:       req.Course,
			Tees:         req.Tees,
			Yardage:      req.Yardage,
			Par:          req.Par,
		}
		if err := store.CreateRound(r.Context(), &round); err != nil {
			slog.Error("create round failed", "user_id", userID, "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(toResponse(round))
	}
}

// ListHandler serves GET /rounds.
func ListHandler(store *storage.RoundStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		rounds, err := store.RoundsForUser(r.Context(), userID)
		if err != nil {
			slog.Error("list rounds failed", "user_id", userID, "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]RoundResponse, 0, len(rounds))
		for _, round := range rounds {
			out = append(out, toResponse(round))
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(out)
	}
}

// UpdateHandler serves PUT /rounds/{roundID}.
func UpdateHandler(store *storage.RoundStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		roundID, err := strconv.ParseInt(chi.URLParam(r, "roundID"), 10, 64)
		if err != nil {
			http.Error(w, "invalid round id", http.StatusBadRequest)
			return
		}

		var req UpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if req.Score != nil && *req.Score <= 0 {
			http.Error(w, "score must be a positive integer", http.StatusBadRequest)
			return
		}
		if req.CourseSlope != nil && *req.CourseSlope == 0 {
			http.Error(w, "course_slope must be nonzero", http.StatusBadRequest)
			return
		}

		patch := models.RoundPatch{
			Score:        req.Score,
			CourseRating: req.CourseRating,
			CourseSlope:  req.CourseSlope,
			Course:       req.Course,
			Tees:         req.Tees,
			Yardage:      req.Yardage,
			Par:          req.Par,
		}
		if req.Date != nil {
			parsed, err := time.ParseInLocation(models.DateLayout, *req.Date, time.UTC)
			if err != nil {
				http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			patch.Date = &parsed
		}

		round, err := store.UpdateRound(r.Context(), userID, roundID, patch)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				http.Error(w, "round not found", http.StatusNotFound)
				return
			}
			slog.Error("update round failed", "user_id", userID, "round_id", roundID, "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(toResponse(*round))
	}
}

// DeleteHandler serves DELETE /rounds/{roundID}.
func DeleteHandler(store *storage.RoundStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		roundID, err := strconv.ParseInt(chi.URLParam(r, "roundID"), 10, 64)
		if err != nil {
			http.Error(w, "invalid round id", http.StatusBadRequest)
			return
		}

		if err := store.DeleteRound(r.Context(), userID, roundID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				http.Error(w, "round not found", http.StatusNotFound)
				return
			}
			slog.Error("delete round failed", "user_id", userID, "round_id", roundID, "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "round deleted"})
	}
}

func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
