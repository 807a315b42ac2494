package mocks

import (
	"context"
	"errors"

	"github.com/user-directory-console/internal/models"
)

// ErrRemote is the opaque failure the mock directory returns when an
// operation is configured to fail.
var ErrRemote = errors.New("directory service unavailable")

// MockDirectory is an in-memory implementation of directory.API for
// coordinator tests. Each operation can be made to fail independently and
// records how often it was called.
type MockDirectory struct {
	Records map[string]*models.User
	Order   []string
	NextID  string

	FailCreate bool
	FailList   bool
	FailGet    bool
	FailUpdate bool
	FailDelete bool

	CreateCalls int
	ListCalls   int
	GetCalls    int
	UpdateCalls int
	DeleteCalls int
}

func NewMockDirectory() *MockDirectory {
	return &MockDirectory{
		Records: make(map[string]*models.User),
		NextID:  "1",
	}
}

// Seed stores a record directly, bypassing the Create bookkeeping.
func (m *MockDirectory) Seed(user models.User) {
	m.Records[user.ID] = &user
	m.Order = append(m.Order, user.ID)
}

func (m *MockDirectory) Create(ctx context.Context, user *models.User) (*models.User, error) {
	m.CreateCalls++
	if m.FailCreate {
		return nil, ErrRemote
	}
	created := *user
	created.ID = m.NextID
	m.Records[created.ID] = &created
	m.Order = append(m.Order, created.ID)
	return &created, nil
}

func (m *MockDirectory) List(ctx context.Context) ([]models.User, error) {
	m.ListCalls++
	if m.FailList {
		return nil, ErrRemote
	}
	users := make([]models.User, 0, len(m.Order))
	for _, id := range m.Order {
		if u, ok := m.Records[id]; ok {
			users = append(users, *u)
		}
	}
	return users, nil
}

func (m *MockDirectory) Get(ctx context.Context, id string) (*models.User, error) {
	m.GetCalls++
	if m.FailGet {
		return nil, ErrRemote
	}
	user, ok := m.Records[id]
	if !ok {
		return nil, ErrRemote
	}
	copied := *user
	return &copied, nil
}

func (m *MockDirectory) Update(ctx context.Context, id string, user *models.User) (*models.User, error) {
	m.UpdateCalls++
	if m.FailUpdate {
		return nil, ErrRemote
	}
	existing, ok := m.Records[id]
	if !ok {
		return nil, ErrRemote
	}
	existing.Username = user.Username
	existing.FirstName = user.FirstName
	existing.LastName = user.LastName
	existing.Email = user.Email
	existing.PhoneNumber = user.PhoneNumber
	copied := *existing
	return &copied, nil
}

func (m *MockDirectory) Delete(ctx context.Context, id string) error {
	m.DeleteCalls++
	if m.FailDelete {
		return ErrRemote
	}
	if _, ok := m.Records[id]; !ok {
		return ErrRemote
	}
	delete(m.Records, id)
	for i, oid := range m.Order {
		if oid == id {
			m.Order = append(m.Order[:i], m.Order[i+1:]...)
			break
		}
	}
	return nil
}
