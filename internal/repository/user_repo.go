package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/user-directory-console/internal/database"
	"github.com/user-directory-console/internal/models"
)

// userRepo is the concrete implementation of UserRepository
type userRepo struct {
	db *database.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *database.DB) UserRepository {
	return &userRepo{db: db}
}

// Create inserts a new user
func (r *userRepo) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, username, first_name, last_name, email, phone_number, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Username, user.FirstName, user.LastName,
		user.Email, user.PhoneNumber, user.CreatedAt, user.UpdatedAt,
	)
	return err
}

// GetByID retrieves a user by ID; returns nil when no row matches
func (r *userRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `
		SELECT id, username, first_name, last_name, email, phone_number, created_at, updated_at
		FROM users WHERE id = $1
	`

	var user models.User
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Username, &user.FirstName, &user.LastName,
		&user.Email, &user.PhoneNumber, &user.CreatedAt, &user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetAll retrieves every user ordered by creation time
func (r *userRepo) GetAll(ctx context.Context) ([]models.User, error) {
	query := `
		SELECT id, username, first_name, last_name, email, phone_number, created_at, updated_at
		FROM users ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		err := rows.Scan(
			&user.ID, &user.Username, &user.FirstName, &user.LastName,
			&user.Email, &user.PhoneNumber, &user.CreatedAt, &user.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// Update replaces the mutable attributes of a user; reports whether a row matched
func (r *userRepo) Update(ctx context.Context, user *models.User) (bool, error) {
	query := `
		UPDATE users
		SET username = $2, first_name = $3, last_name = $4, email = $5, phone_number = $6, updated_at = $7
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query,
		user.ID, user.Username, user.FirstName, user.LastName,
		user.Email, user.PhoneNumber, time.Now(),
	)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}

// Delete removes a user by ID; reports whether a row matched
func (r *userRepo) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}

// Count returns the total number of users
func (r *userRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&count)
	return count, err
}
