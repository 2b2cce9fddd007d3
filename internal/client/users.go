package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/webportal/portal-client/internal/core/domain"
)

// UsersClient consumes the backend /users endpoints through the mediator.
// Failures surface as *domain.RequestError (unwrap with FromError).
type UsersClient struct {
	baseURL string
	http    *http.Client
}

func NewUsersClient(baseURL string, hc *http.Client) *UsersClient {
	return &UsersClient{baseURL: baseURL, http: hc}
}

func (c *UsersClient) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := c.do(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *UsersClient) Get(ctx context.Context, id int) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d", id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *UsersClient) Create(ctx context.Context, user domain.User) (*domain.User, error) {
	var created domain.User
	if err := c.do(ctx, http.MethodPost, "/users", user, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *UsersClient) Update(ctx context.Context, id int, user domain.User) (*domain.User, error) {
	var updated domain.User
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/users/%d", id), user, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *UsersClient) Delete(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, nil)
}

// do performs one exchange. The mediator owns header attachment and
// failure classification; this only builds the request and decodes the
// success body.
func (c *UsersClient) do(ctx context.Context, method, path string, in, out any) error {
	var body *bytes.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
