package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/cardkeeper/internal/client/models"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is the body of both login and signup.
type AuthResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	User    *models.User `json:"userInfo"`
	Message string       `json:"message,omitempty"`
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	return c.authenticate(ctx, "/auth/login", req)
}

func (c *Client) Signup(ctx context.Context, req SignupRequest) (*AuthResponse, error) {
	return c.authenticate(ctx, "/auth/signup", req)
}

func (c *Client) authenticate(ctx context.Context, path string, body any) (*AuthResponse, error) {
	var out AuthResponse
	r := c.request(ctx).SetBody(body).SetResult(&out)
	if err := c.execute(r, http.MethodPost, path); err != nil {
		return nil, err
	}
	return &out, nil
}
