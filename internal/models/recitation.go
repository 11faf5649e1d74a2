package models

import "time"

// RecitationRanks enumerates the slots a recitation may occupy.
var RecitationRanks = []int{1, 2, 3}

// Recitation is a Quran recitation surfaced on the site. Rank is unique
// across the collection; creating into an occupied rank replaces the
// occupant (slot semantics).
type Recitation struct {
	ID        string    `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	AudioURL  string    `db:"audio_url" json:"audio_url"`
	Rank      int       `db:"rank" json:"rank"`
	Featured  bool      `db:"featured" json:"featured"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
