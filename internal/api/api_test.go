package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/user-directory-console/internal/api"
	"github.com/user-directory-console/internal/mocks"
	"github.com/user-directory-console/internal/models"
	"github.com/user-directory-console/internal/service"
)

func setupTestRouter() (*gin.Engine, *mocks.MockUserService) {
	gin.SetMode(gin.TestMode)

	mockUser := mocks.NewMockUserService()
	services := &service.Services{
		User: mockUser,
	}

	log := zerolog.Nop()
	router := api.NewRouter(services, log)

	return router, mockUser
}

func seedUser(m *mocks.MockUserService, id, username string) {
	m.Users[id] = &models.User{ID: id, Username: username, FirstName: "Test",
		LastName: "User", Email: username + "@example.com", PhoneNumber: "5551234567"}
	m.Order = append(m.Order, id)
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := setupTestRouter()

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	if response["status"] != "healthy" {
		t.Errorf("Expected status 'healthy', got %v", response["status"])
	}
	if response["service"] != "user-directory" {
		t.Errorf("Expected service name, got %v", response["service"])
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router, mockUser := setupTestRouter()
	seedUser(mockUser, "1", "one")
	seedUser(mockUser, "2", "two")

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response struct {
		Database map[string]int `json:"database"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)

	if response.Database["users"] != 2 {
		t.Errorf("Expected 2 users, got %d", response.Database["users"])
	}
}

func TestCreateUser(t *testing.T) {
	router, _ := setupTestRouter()

	body, _ := json.Marshal(models.User{
		Username:    "jdoe",
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       "jane@example.com",
		PhoneNumber: "5551234567",
	})
	req := httptest.NewRequest("POST", "/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var created models.User
	json.Unmarshal(w.Body.Bytes(), &created)

	if created.ID == "" {
		t.Error("Expected created user to have an assigned id")
	}
	if created.Username != "jdoe" {
		t.Errorf("Expected username 'jdoe', got %q", created.Username)
	}
}

func TestCreateUser_InvalidBody(t *testing.T) {
	router, _ := setupTestRouter()

	req := httptest.NewRequest("POST", "/users", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestListUsers(t *testing.T) {
	router, mockUser := setupTestRouter()
	seedUser(mockUser, "1", "one")
	seedUser(mockUser, "2", "two")

	req := httptest.NewRequest("GET", "/users", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var users []models.User
	json.Unmarshal(w.Body.Bytes(), &users)

	if len(users) != 2 {
		t.Errorf("Expected 2 users, got %d", len(users))
	}
}

func TestListUsers_EmptyDirectoryReturnsArray(t *testing.T) {
	router, _ := setupTestRouter()

	req := httptest.NewRequest("GET", "/users", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if body := bytes.TrimSpace(w.Body.Bytes()); string(body) != "[]" {
		t.Errorf("Expected empty JSON array, got %s", body)
	}
}

func TestGetUserByID(t *testing.T) {
	router, mockUser := setupTestRouter()
	seedUser(mockUser, "abc", "target")

	req := httptest.NewRequest("GET", "/users/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var user models.User
	json.Unmarshal(w.Body.Bytes(), &user)
	if user.Username != "target" {
		t.Errorf("Expected username 'target', got %q", user.Username)
	}
}

func TestGetUserByID_NotFound(t *testing.T) {
	router, _ := setupTestRouter()

	req := httptest.NewRequest("GET", "/users/missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}

func TestUpdateUser(t *testing.T) {
	router, mockUser := setupTestRouter()
	seedUser(mockUser, "abc", "before")

	body, _ := json.Marshal(models.User{
		Username:    "after",
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       "jane@example.com",
		PhoneNumber: "5551234567",
	})
	req := httptest.NewRequest("PUT", "/users/abc", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var updated models.User
	json.Unmarshal(w.Body.Bytes(), &updated)
	if updated.Username != "after" {
		t.Errorf("Expected username 'after', got %q", updated.Username)
	}
}

func TestUpdateUser_NotFound(t *testing.T) {
	router, _ := setupTestRouter()

	body, _ := json.Marshal(models.User{Username: "ghost"})
	req := httptest.NewRequest("PUT", "/users/missing", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}

func TestDeleteUser(t *testing.T) {
	router, mockUser := setupTestRouter()
	seedUser(mockUser, "abc", "doomed")

	req := httptest.NewRequest("DELETE", "/users/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", w.Code)
	}
	if _, ok := mockUser.Users["abc"]; ok {
		t.Error("Expected user to be removed")
	}
}

func TestDeleteUser_NotFound(t *testing.T) {
	router, _ := setupTestRouter()

	req := httptest.NewRequest("DELETE", "/users/missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}

func TestServiceErrorReturns500(t *testing.T) {
	router, mockUser := setupTestRouter()
	mockUser.ListError = mocks.ErrRemote

	req := httptest.NewRequest("GET", "/users", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", w.Code)
	}
}
