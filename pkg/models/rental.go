package models

import "time"

const DateLayout = "2006-01-02"

type Rental struct {
	Car       *Car      `json:"car"`
	Customer  *Customer `json:"customer"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

func (r *Rental) Days() int {
	return RentalDays(r.StartDate, r.EndDate)
}

func (r *Rental) TotalPrice() float64 {
	return r.Car.Price(r.Days())
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// RentalDays counts calendar days from start to end, excluding the start day.
// Only the date part is used, so zones and DST shifts do not matter.
func RentalDays(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours() / 24)
}
