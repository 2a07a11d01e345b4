// Package fixture generates synthetic user and layover records.
// Randomness comes from an injected Faker and time from an injected clock,
// so a fixed seed and a fixed clock reproduce a run exactly.
package fixture

import "time"

// User is a synthetic account record.
type User struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	FirstName      string `json:"first_name"`
	ProfilePicture string `json:"profile_picture"`
}

// Layover is a synthetic stay at an airport between two flights.
// Arrive is always Depart plus StayDays calendar days.
type Layover struct {
	IATACode string    `json:"iata_code"`
	Depart   time.Time `json:"depart"`
	Arrive   time.Time `json:"arrive"`
}

// Duration returns the time spent between depart and arrive.
func (l Layover) Duration() time.Duration {
	return l.Arrive.Sub(l.Depart)
}
