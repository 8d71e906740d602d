package handicap

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"golf-tracker/internal/auth"
)

type ProjectRequest struct {
	Score        int     `json:"score"`
	CourseRating float64 `json:"course_rating"`
	CourseSlope  int     `json:"course_slope"`
}

type HandicapResponse struct {
	Handicap *float64 `json:"handicap"`
}

type ProjectedResponse struct {
	ProjectedHandicap *float64 `json:"projected_handicap"`
}

// Handler serves GET /handicap.
func Handler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		index, err := svc.Current(r.Context(), userID)
		if err != nil {
			if errors.Is(err, ErrZeroSlope) {
				http.Error(w, "a stored round has zero course slope", http.StatusBadRequest)
				return
			}
			slog.Error("handicap calculation failed", "user_id", userID, "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(HandicapResponse{Handicap: index})
	}
}

// ProjectHandler serves POST /handicap/calculate.
func ProjectHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req ProjectRequest
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

		index, err := svc.Project(r.Context(), userID, req.Score, req.CourseRating, req.CourseSlope)
		if err != nil {
			if errors.Is(err, ErrZeroSlope) {
				http.Error(w, "a stored round has zero course slope", http.StatusBadRequest)
				return
			}
			slog.Error("projected handicap failed", "user_id", userID, "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ProjectedResponse{ProjectedHandicap: index})
	}
}
