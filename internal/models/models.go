package models

import "time"

// DateLayout is the wire format for round dates.
const DateLayout = "2006-01-02"

type User struct {
	ID           int64
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Rounds       []Round
}

// Round is one played round of golf. Course, Tees, Yardage and Par are
// optional and stay nil when the player did not record them.
type Round struct {
	ID           int64
	UserID       int64     `gorm:"index;not null"`
	Date         time.Time `gorm:"not null"`
	Score        int       `gorm:"not null"`
	CourseRating float64   `gorm:"not null"`
	CourseSlope  int       `gorm:"not null"`
	Course       *string
	Tees         *string
	Yardage      *int
	Par          *int
}

// RoundPatch is a partial update: nil fields are left untouched.
type RoundPatch struct {
	Score        *int
	CourseRating *float64
	CourseSlope  *int
	Date         *time.Time
	Course       *string
	Tees         *string
	Yardage      *int
	Par          *int
}
