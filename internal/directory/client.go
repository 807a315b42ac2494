package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/user-directory-console/internal/config"
	"github.com/user-directory-console/internal/models"
)

// API is the set of operations the user directory service exposes. The
// coordinator depends on this interface so tests can substitute a fake.
type API interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id string) (*models.User, error)
	Update(ctx context.Context, id string, user *models.User) (*models.User, error)
	Delete(ctx context.Context, id string) error
}

// Client talks to the directory service over HTTP. Every operation maps to a
// single request against the /users resource; any non-2xx response is reported
// as an opaque error with no inspection of the body.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// NewClient creates a directory service client from configuration
func NewClient(cfg *config.ClientConfig, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.RequestTimeout},
		log:     log.With().Str("component", "directory_client").Logger(),
	}
}

// Create persists a new user and returns the record with its assigned id
func (c *Client) Create(ctx context.Context, user *models.User) (*models.User, error) {
	var created models.User
	if err := c.do(ctx, http.MethodPost, c.usersURL(""), user, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// List retrieves all users from the directory
func (c *Client) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, http.MethodGet, c.usersURL(""), nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Get retrieves a single user by id
func (c *Client) Get(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, c.usersURL(id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Update replaces the user stored under id and returns the updated record
func (c *Client) Update(ctx context.Context, id string, user *models.User) (*models.User, error) {
	var updated models.User
	if err := c.do(ctx, http.MethodPut, c.usersURL(id), user, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the user stored under id
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, c.usersURL(id), nil, nil)
}

func (c *Client) usersURL(id string) string {
	if id == "" {
		return c.baseURL + "/users"
	}
	return c.baseURL + "/users/" + id
}

// do issues a single request and decodes the JSON response into out when out
// is non-nil. Failures are uniform: transport errors and non-2xx statuses both
// surface as a plain error the caller does not branch on.
func (c *Client) do(ctx context.Context, method, url string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Str("method", method).Str("url", url).Msg("Request failed")
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		c.log.Debug().Int("status", resp.StatusCode).Str("method", method).Str("url", url).Msg("Non-2xx response")
		return fmt.Errorf("directory service returned status %d", resp.StatusCode)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
