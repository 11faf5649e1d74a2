package models

import "time"

// Weekday is the fixed day enumeration for opening hours. The week starts
// on Saturday to match the site's display order.
type Weekday string

const (
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
)

// WeekdayOrder lists the days in display order.
var WeekdayOrder = []Weekday{Saturday, Sunday, Monday, Tuesday, Wednesday, Thursday, Friday}

// Valid reports whether the day is one of the seven known weekdays.
func (d Weekday) Valid() bool {
	for _, day := range WeekdayOrder {
		if d == day {
			return true
		}
	}
	return false
}

// OpeningHours holds the library hours for one weekday, keyed by day.
// Open and Close are nil exactly when IsClosed is true.
type OpeningHours struct {
	Day       Weekday   `db:"day" json:"day"`
	Open      *string   `db:"open_time" json:"open"`
	Close     *string   `db:"close_time" json:"close"`
	IsClosed  bool      `db:"is_closed" json:"is_closed"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
