package courses

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"golf-tracker/internal/auth"
	"golf-tracker/internal/models"
)

// Entry is one known course/tee combination, with the setup numbers from
// the first round recorded on it.
type Entry struct {
	Course       string  `json:"course"`
	Tees         string  `json:"tees"`
	CourseRating float64 `json:"course_rating"`
	CourseSlope  int     `json:"course_slope"`
	Yardage      *int    `json:"yardage"`
	Par          *int    `json:"par"`
}

// Distinct builds the catalog of course/tee combinations appearing in
// rounds. Rounds missing either a course or tees are skipped; duplicates
// of a (course, tees) pair are dropped, first occurrence wins, and the
// output keeps the input order.
func Distinct(rounds []models.Round) []Entry {
	type key struct {
		course, tees string
	}
	seen := make(map[key]struct{})
	entries := []Entry{}
	for _, r := range rounds {
		if r.Course == nil || *r.Course == "" || r.Tees == nil || *r.Tees == "" {
			continue
		}
		k := key{course: *r.Course, tees: *r.Tees}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		entries = append(entries, Entry{
			Course:       *r.Course,
			Tees:         *r.Tees,
			CourseRating: r.CourseRating,
			CourseSlope:  r.CourseSlope,
			Yardage:      r.Yardage,
			Par:          r.Par,
		})
	}
	return entries
}

// RoundLister supplies all rounds of a user in insertion order.
type RoundLister interface {
	RoundsForUser(ctx context.Context, userID int64) ([]models.Round, error)
}

// Handler serves GET /courses.
func Handler(store RoundLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		rounds, err := store.RoundsForUser(r.Context(), userID)
		if err != nil {
			slog.Error("course catalog failed", "user_id", userID, "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Distinct(rounds))
	}
}
