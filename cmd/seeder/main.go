// Seeds a demo user with a year of fake round history, handy for poking at
// the API locally.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"time"

	"golf-tracker/internal/auth"
	"golf-tracker/internal/handicap"
	"golf-tracker/internal/models"
	"golf-tracker/internal/storage"

	"github.com/brianvoe/gofakeit/v7"
)

func main() {
	dbPath := flag.String("db", "golf.db", "path to sqlite database")
	email := flag.String("email", "demo@example.com", "demo user email")
	password := flag.String("password", "demo-password", "demo user password")
	count := flag.Int("rounds", 25, "number of rounds to seed")
	flag.Parse()

	db, err := storage.Open(*dbPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}

	user, err := auth.RegisterUser(db, *email, *password)
	if err != nil {
		slog.Error("failed to create demo user", "error", err)
		os.Exit(1)
	}

	store := storage.NewRoundStore(db)
	ctx := context.Background()

	tees := []string{"Blue", "White", "Red", "Gold"}
	for i := 0; i < *count; i++ {
		course := gofakeit.City() + " Golf Club"
		tee := tees[gofakeit.Number(0, len(tees)-1)]
		yardage := gofakeit.Number(5800, 7200)
		par := gofakeit.Number(70, 72)
		round := models.Round{
			UserID:       user.ID,
			Date:         time.Now().UTC().AddDate(0, 0, -gofakeit.Number(0, 365)),
			Score:        gofakeit.Number(76, 102),
			CourseRating: math.Round(gofakeit.Float64Range(68, 75)*10) / 10,
			CourseSlope:  gofakeit.Number(110, 140),
			Course:       &course,
			Tees:         &tee,
			Yardage:      &yardage,
			Par:          &par,
		}
		if err := store.CreateRound(ctx, &round); err != nil {
			slog.Error("failed to seed round", "error", err)
			os.Exit(1)
		}
	}

	index, err := handicap.NewService(store).Current(ctx, user.ID)
	if err != nil {
		slog.Error("failed to compute seeded handicap", "error", err)
		os.Exit(1)
	}
	if index == nil {
		fmt.Printf("seeded 0 rounds for %s (user %d), no handicap yet\n", *email, user.ID)
		return
	}

	fmt.Printf("seeded %d rounds for %s (user %d), handicap %.1f\n", *count, *email, user.ID, *index)
}
