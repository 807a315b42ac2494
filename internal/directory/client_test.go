package directory_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user-directory-console/internal/config"
	"github.com/user-directory-console/internal/directory"
	"github.com/user-directory-console/internal/models"
)

func newTestClient(server *httptest.Server) *directory.Client {
	cfg := &config.ClientConfig{
		BaseURL:        server.URL,
		RequestTimeout: 5 * time.Second,
	}
	return directory.NewClient(cfg, zerolog.Nop())
}

func TestClient_Create(t *testing.T) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path

		var user models.User
		require.NoError(t, json.NewDecoder(r.Body).Decode(&user))
		user.ID = "abc-123"

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(user)
	}))
	defer server.Close()

	client := newTestClient(server)
	created, err := client.Create(context.Background(), &models.User{Username: "jdoe"})

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/users", gotPath)
	assert.Equal(t, "abc-123", created.ID)
	assert.Equal(t, "jdoe", created.Username)
}

func TestClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/users", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]models.User{
			{ID: "1", Username: "one"},
			{ID: "2", Username: "two"},
		})
	}))
	defer server.Close()

	client := newTestClient(server)
	users, err := client.List(context.Background())

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "one", users[0].Username)
}

func TestClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/42", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.User{ID: "42", Username: "target"})
	}))
	defer server.Close()

	client := newTestClient(server)
	user, err := client.Get(context.Background(), "42")

	require.NoError(t, err)
	assert.Equal(t, "target", user.Username)
}

func TestClient_Update(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/users/42", r.URL.Path)

		var user models.User
		require.NoError(t, json.NewDecoder(r.Body).Decode(&user))
		user.ID = "42"

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(user)
	}))
	defer server.Close()

	client := newTestClient(server)
	updated, err := client.Update(context.Background(), "42", &models.User{Username: "renamed"})

	require.NoError(t, err)
	assert.Equal(t, "42", updated.ID)
	assert.Equal(t, "renamed", updated.Username)
}

func TestClient_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/users/42", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := newTestClient(server)
	assert.NoError(t, client.Delete(context.Background(), "42"))
}

func TestClient_NonSuccessStatusIsOpaque(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError, http.StatusBadRequest} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":"detail the client must not inspect"}`, status)
		}))

		client := newTestClient(server)

		_, err := client.Get(context.Background(), "42")
		assert.Error(t, err, "status %d must surface as an error", status)

		_, err = client.List(context.Background())
		assert.Error(t, err)

		err = client.Delete(context.Background(), "42")
		assert.Error(t, err)

		server.Close()
	}
}

func TestClient_UnreachableServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // immediately unreachable

	client := newTestClient(server)
	_, err := client.List(context.Background())
	assert.Error(t, err)
}
