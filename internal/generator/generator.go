// Package generator produces random user and student records.
package generator

import (
	"strings"
	"sync"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	"fakeuser/internal/domain"
)

const (
	MinAge = 18
	MaxAge = 60
)

// Generator wraps a seeded faker. It is safe for concurrent use.
type Generator struct {
	mu    sync.Mutex
	faker *gofakeit.Faker
	seed  uint64
}

// New creates a generator. A zero seed is replaced with one derived from the clock;
// Seed reports the value actually used so runs can be reproduced.
func New(seed uint64) *Generator {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Generator{
		faker: gofakeit.New(seed),
		seed:  seed,
	}
}

// Seed returns the seed the generator was built with.
func (g *Generator) Seed() uint64 {
	return g.seed
}

// GenerateUser returns a fresh set of user fields. Age is uniform in [MinAge, MaxAge].
//
// The uuid and email back unique columns, so they do not follow the seed: the uuid is
// drawn from crypto/rand and tags the email's local part. Two generators built with
// the same seed therefore never produce the same identity.
func (g *Generator) GenerateUser() domain.UserFields {
	id := uuid.New()

	g.mu.Lock()
	defer g.mu.Unlock()

	return domain.UserFields{
		UUID:  id.String(),
		Name:  g.faker.Name(),
		Email: tagEmail(g.faker.Email(), id),
		Phone: g.faker.PhoneFormatted(),
		City:  g.faker.City(),
		Age:   g.faker.IntRange(MinAge, MaxAge),
	}
}

// GenerateStudent returns a student in one of domain.Departments.
func (g *Generator) GenerateStudent() domain.Student {
	g.mu.Lock()
	defer g.mu.Unlock()

	return domain.Student{
		ID:         g.faker.UUID(),
		Name:       g.faker.Name(),
		Department: g.faker.RandomString(domain.Departments),
	}
}

// tagEmail appends the first uuid group to the local part: jane@x.org -> jane.1b4e28ba@x.org.
func tagEmail(email string, id uuid.UUID) string {
	tag := id.String()[:8]
	local, domainPart, ok := strings.Cut(email, "@")
	if !ok {
		return email + "." + tag
	}
	return local + "." + tag + "@" + domainPart
}
