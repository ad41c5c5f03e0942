package generator

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fakeuser/internal/domain"
)

func TestNewSeededDeterministic(t *testing.T) {
	first := New(42)
	second := New(42)

	a, b := first.GenerateUser(), second.GenerateUser()
	assert.Equal(t, a.Name, b.Name)
	assert.Equal(t, a.Phone, b.Phone)
	assert.Equal(t, a.City, b.City)
	assert.Equal(t, a.Age, b.Age)
	assert.Equal(t, first.GenerateStudent(), second.GenerateStudent())
}

func TestSameSeedYieldsDistinctIdentities(t *testing.T) {
	first := New(42)
	second := New(42)

	for i := 0; i < 20; i++ {
		a, b := first.GenerateUser(), second.GenerateUser()
		assert.NotEqual(t, a.UUID, b.UUID)
		assert.NotEqual(t, a.Email, b.Email)
	}
}

func TestTagEmail(t *testing.T) {
	id := uuid.MustParse("1b4e28ba-2fa1-11d2-883f-0016d3cca427")

	assert.Equal(t, "jane.1b4e28ba@example.org", tagEmail("jane@example.org", id))
	assert.Equal(t, "jane.1b4e28ba", tagEmail("jane", id))
}

func TestNewZeroSeedPicksSeed(t *testing.T) {
	g := New(0)
	assert.NotZero(t, g.Seed())
}

func TestGenerateUserPopulatesAllFields(t *testing.T) {
	g := New(7)
	for i := 0; i < 200; i++ {
		f := g.GenerateUser()

		_, err := uuid.Parse(f.UUID)
		require.NoError(t, err, "uuid %q", f.UUID)
		assert.NotEmpty(t, f.Name)
		assert.Contains(t, f.Email, "."+f.UUID[:8]+"@")
		assert.NotEmpty(t, f.Phone)
		assert.NotEmpty(t, f.City)
		assert.GreaterOrEqual(t, f.Age, MinAge)
		assert.LessOrEqual(t, f.Age, MaxAge)
	}
}

func TestGenerateStudentDepartment(t *testing.T) {
	g := New(3)
	for i := 0; i < 50; i++ {
		s := g.GenerateStudent()
		assert.NotEmpty(t, s.ID)
		assert.NotEmpty(t, s.Name)
		assert.Contains(t, domain.Departments, s.Department)
	}
}

func TestGenerateUserConcurrent(t *testing.T) {
	g := New(11)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				g.GenerateUser()
			}
		}()
	}
	wg.Wait()
}
