package models

import (
	"time"

	"github.com/lib/pq"
)

// Book is a library catalogue entry with up to a configured number of
// images stored in the external object store.
type Book struct {
	ID          string         `db:"id" json:"id"`
	Title       string         `db:"title" json:"title"`
	Description string         `db:"description" json:"description"`
	Images      pq.StringArray `db:"images" json:"images"`
	Featured    bool           `db:"featured" json:"featured"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
}
