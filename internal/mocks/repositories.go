package mocks

import (
	"context"
	"sort"

	"github.com/user-directory-console/internal/models"
)

// MockUserRepository is a map-backed implementation of UserRepository
type MockUserRepository struct {
	Users       map[string]*models.User
	InsertError error
	QueryError  error
	CreateCalls int
	UpdateCalls int
	DeleteCalls int
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		Users: make(map[string]*models.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	m.CreateCalls++
	if m.InsertError != nil {
		return m.InsertError
	}
	copied := *user
	m.Users[user.ID] = &copied
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	if m.QueryError != nil {
		return nil, m.QueryError
	}
	user, ok := m.Users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (m *MockUserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	if m.QueryError != nil {
		return nil, m.QueryError
	}
	users := make([]models.User, 0, len(m.Users))
	for _, u := range m.Users {
		users = append(users, *u)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})
	return users, nil
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) (bool, error) {
	m.UpdateCalls++
	if m.InsertError != nil {
		return false, m.InsertError
	}
	if _, ok := m.Users[user.ID]; !ok {
		return false, nil
	}
	copied := *user
	m.Users[user.ID] = &copied
	return true, nil
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) (bool, error) {
	m.DeleteCalls++
	if m.InsertError != nil {
		return false, m.InsertError
	}
	if _, ok := m.Users[id]; !ok {
		return false, nil
	}
	delete(m.Users, id)
	return true, nil
}

func (m *MockUserRepository) Count(ctx context.Context) (int, error) {
	if m.QueryError != nil {
		return 0, m.QueryError
	}
	return len(m.Users), nil
}
