package models

import "time"

// LibraryRegistration is a public submission to join the mosque library.
type LibraryRegistration struct {
	ID            string    `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	Birthdate     time.Time `db:"birthdate" json:"birthdate"`
	School        string    `db:"school" json:"school"`
	SchoolYear    string    `db:"school_year" json:"school_year"`
	RoomNumber    string    `db:"room_number" json:"room_number"`
	Wilaya        string    `db:"wilaya" json:"wilaya"`
	Phone         string    `db:"phone" json:"phone"`
	Email         string    `db:"email" json:"email"`
	PrayerPromise bool      `db:"prayer_promise" json:"prayer_promise"`
	PictureURL    string    `db:"picture_url" json:"picture_url"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// CourseRegistration is a public submission for a Quran course (dawra).
type CourseRegistration struct {
	ID           string    `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Birthdate    time.Time `db:"birthdate" json:"birthdate"`
	State        string    `db:"state" json:"state"`
	School       string    `db:"school" json:"school"`
	Phone        string    `db:"phone" json:"phone"`
	Email        string    `db:"email" json:"email"`
	Telegram     string    `db:"telegram" json:"telegram,omitempty"`
	Memorization string    `db:"memorization" json:"memorization"`
	Narration    string    `db:"narration" json:"narration,omitempty"`
	Tajweed      string    `db:"tajweed" json:"tajweed,omitempty"`
	SessionTime  string    `db:"session_time" json:"session_time"`
	Notes        string    `db:"notes" json:"notes,omitempty"`
	Commitment   bool      `db:"commitment" json:"commitment"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
