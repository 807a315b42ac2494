package mocks

import (
	"context"

	"github.com/user-directory-console/internal/models"
)

// MockUserService is a mock implementation of service.UserService
type MockUserService struct {
	Users       map[string]*models.User
	Order       []string
	CreateError error
	ListError   error
	GetError    error
	UpdateError error
	DeleteError error
	NextID      string
}

func NewMockUserService() *MockUserService {
	return &MockUserService{
		Users:  make(map[string]*models.User),
		NextID: "generated-id",
	}
}

func (m *MockUserService) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if m.CreateError != nil {
		return nil, m.CreateError
	}
	copied := *user
	copied.ID = m.NextID
	m.Users[copied.ID] = &copied
	m.Order = append(m.Order, copied.ID)
	return &copied, nil
}

func (m *MockUserService) List(ctx context.Context) ([]models.User, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	users := make([]models.User, 0, len(m.Order))
	for _, id := range m.Order {
		if u, ok := m.Users[id]; ok {
			users = append(users, *u)
		}
	}
	return users, nil
}

func (m *MockUserService) Get(ctx context.Context, id string) (*models.User, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	user, ok := m.Users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (m *MockUserService) Update(ctx context.Context, id string, user *models.User) (*models.User, error) {
	if m.UpdateError != nil {
		return nil, m.UpdateError
	}
	existing, ok := m.Users[id]
	if !ok {
		return nil, nil
	}
	existing.Username = user.Username
	existing.FirstName = user.FirstName
	existing.LastName = user.LastName
	existing.Email = user.Email
	existing.PhoneNumber = user.PhoneNumber
	copied := *existing
	return &copied, nil
}

func (m *MockUserService) Delete(ctx context.Context, id string) (bool, error) {
	if m.DeleteError != nil {
		return false, m.DeleteError
	}
	if _, ok := m.Users[id]; !ok {
		return false, nil
	}
	delete(m.Users, id)
	for i, oid := range m.Order {
		if oid == id {
			m.Order = append(m.Order[:i], m.Order[i+1:]...)
			break
		}
	}
	return true, nil
}

func (m *MockUserService) Count(ctx context.Context) (int, error) {
	return len(m.Users), nil
}
