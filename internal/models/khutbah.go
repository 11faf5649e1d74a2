package models

import "time"

// KhutbahSubject is an announced Friday sermon subject. At most one subject
// may be featured on the main page at any time.
type KhutbahSubject struct {
	ID        string    `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Featured  bool      `db:"featured" json:"featured"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
