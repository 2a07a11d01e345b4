package fixture

import "github.com/brianvoe/gofakeit/v6"

// Faker is the subset of *gofakeit.Faker the generators draw from.
type Faker interface {
	Email() string
	FirstName() string
	Password(lower, upper, numeric, special, space bool, num int) string
	UUID() string
	Number(min, max int) int
}

// NewFaker returns a gofakeit source. A zero seed draws the seed from
// crypto/rand, so every run differs.
func NewFaker(seed int64) *gofakeit.Faker {
	return gofakeit.New(seed)
}
