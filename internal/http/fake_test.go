package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fakeuser/internal/generator"
)

func TestGetFakeUser(t *testing.T) {
	logger, _ := test.NewNullLogger()
	router := gin.New()
	NewFakeHandler(generator.New(5), logger).RegisterRoutes(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fake/user", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[FakeUserResponse](t, rec)
	_, err := uuid.Parse(resp.ID)
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Name)
	assert.Contains(t, resp.Email, "@")
	assert.GreaterOrEqual(t, resp.Age, generator.MinAge)
	assert.LessOrEqual(t, resp.Age, generator.MaxAge)

	fields := decode[map[string]any](t, rec)
	assert.ElementsMatch(t, []string{"id", "name", "email", "phone", "city", "age"}, mapKeys(fields))
}

func TestGetFakeUserDoesNotRepeat(t *testing.T) {
	logger, _ := test.NewNullLogger()
	router := gin.New()
	NewFakeHandler(generator.New(8), logger).RegisterRoutes(router)

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fake/user", nil))
		id := decode[FakeUserResponse](t, rec).ID
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func mapKeys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
