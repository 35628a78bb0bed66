// internal/handlers/users/handler_test.go
package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plantscape-service/internal/common/logger"
	"plantscape-service/internal/models"
)

type failingStore struct{}

func (failingStore) ListUsers(ctx context.Context) ([]models.User, error) {
	return nil, errors.New("backend down")
}

func (failingStore) SaveUsers(ctx context.Context, users []models.User) error {
	return errors.New("backend down")
}

func getUsers(t *testing.T, store Store) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := NewHandler(store, logger.NewTestLogger(t))
	r := gin.New()
	r.GET("/users", h.Handle)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestUsersReturnsLegacyPlantFormat(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, SeedSampleUsers(context.Background(), store))

	w := getUsers(t, store)

	assert.Equal(t, http.StatusOK, w.Code)

	// Plants serialize as bare name strings, not objects
	var raw []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	require.Len(t, raw, 9)
	assert.Equal(t, "Raj", raw[0]["name"])

	plants, ok := raw[0]["plants"].([]interface{})
	require.True(t, ok)
	assert.Equal(t, "Spider Plant", plants[0])
}

func TestUsersEmptyStoreReturnsEmptyArray(t *testing.T) {
	w := getUsers(t, NewMemoryStore())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestUsersStoreFailure(t *testing.T) {
	w := getUsers(t, failingStore{})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to load users")
}
