package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserPatchApplyOnlySetFields(t *testing.T) {
	u := &User{ID: 7, UUID: "u-1", Name: "Ada", Email: "ada@example.com", Phone: "555", City: "Paris", Age: 30}
	age := 99
	UserPatch{Age: &age}.Apply(u)

	assert.Equal(t, &User{ID: 7, UUID: "u-1", Name: "Ada", Email: "ada@example.com", Phone: "555", City: "Paris", Age: 99}, u)
}

func TestUserPatchIsEmpty(t *testing.T) {
	assert.True(t, UserPatch{}.IsEmpty())

	city := "Lyon"
	assert.False(t, UserPatch{City: &city}.IsEmpty())
}

func TestNewUserCopiesFields(t *testing.T) {
	u := NewUser(UserFields{UUID: "u", Name: "n", Email: "e", Phone: "p", City: "c", Age: 18})
	assert.Zero(t, u.ID)
	assert.Equal(t, "u", u.UUID)
	assert.Equal(t, 18, u.Age)
}
