package fixture

import (
	"fmt"
	"iter"
)

const (
	passwordLen  = 16
	avatarWidth  = 256
	avatarHeight = 256
)

// UserGenerator produces User fixtures.
type UserGenerator struct {
	faker Faker
}

// NewUserGenerator creates a generator drawing from f.
func NewUserGenerator(f Faker) *UserGenerator {
	return &UserGenerator{faker: f}
}

// One produces a single user.
func (g *UserGenerator) One() User {
	return User{
		Email:          g.faker.Email(),
		Password:       g.faker.Password(true, true, true, true, false, passwordLen),
		FirstName:      g.faker.FirstName(),
		ProfilePicture: g.avatar(),
	}
}

// avatar returns a picsum image URL seeded per user.
func (g *UserGenerator) avatar() string {
	return fmt.Sprintf("https://picsum.photos/seed/%s/%d/%d", g.faker.UUID(), avatarWidth, avatarHeight)
}

// Generate yields count users, each built when the consumer asks for it.
// A count of zero or less yields nothing.
func (g *UserGenerator) Generate(count int) iter.Seq[User] {
	return func(yield func(User) bool) {
		for range max(count, 0) {
			if !yield(g.One()) {
				return
			}
		}
	}
}
