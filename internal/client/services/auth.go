// Package services contains the application services of the cardkeeper
// client. They sit between the terminal views and the API client: they
// translate form data into request bodies and backend replies into results
// the views can render.
package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/cardkeeper/internal/client/api"
	"github.com/dmitrijs2005/cardkeeper/internal/client/models"
)

// AuthAPI is the part of the API client the auth service needs.
// *api.Client implements it.
type AuthAPI interface {
	Login(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error)
	Signup(ctx context.Context, req api.SignupRequest) (*api.AuthResponse, error)
}

// AuthResult is the outcome of a login or signup attempt.
//
// A failure declared by the backend (success:false, or a 4xx with a message)
// is a result with Success=false and a nil error. Transport and server faults
// are returned as errors instead.
type AuthResult struct {
	Success bool
	Token   string
	User    models.User
	Message string
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: authenticate an existing account.
//   - Signup: create an account; the backend logs the new user in.
//
// Neither method touches the session; persisting a successful result is
// the caller's job (session.Manager.Login).
type AuthService interface {
	Login(ctx context.Context, username, password string) (AuthResult, error)
	Signup(ctx context.Context, username, email, password string) (AuthResult, error)
}

type authService struct {
	api AuthAPI
}

// NewAuthService constructs an AuthService bound to the given API client.
func NewAuthService(c AuthAPI) AuthService {
	return &authService{api: c}
}

func (s *authService) Login(ctx context.Context, username, password string) (AuthResult, error) {
	resp, err := s.api.Login(ctx, api.LoginRequest{Username: username, Password: password})
	return toResult(resp, err, "login")
}

func (s *authService) Signup(ctx context.Context, username, email, password string) (AuthResult, error) {
	resp, err := s.api.Signup(ctx, api.SignupRequest{Username: username, Email: email, Password: password})
	return toResult(resp, err, "signup")
}

func toResult(resp *api.AuthResponse, err error, op string) (AuthResult, error) {
	if err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.StatusCode < http.StatusInternalServerError {
			return AuthResult{Message: apiErr.Message}, nil
		}
		return AuthResult{}, fmt.Errorf("%s error: %w", op, err)
	}

	if resp == nil || !resp.Success || resp.Token == "" || resp.User == nil {
		res := AuthResult{}
		if resp != nil {
			res.Message = resp.Message
		}
		return res, nil
	}

	return AuthResult{
		Success: true,
		Token:   resp.Token,
		User:    *resp.User,
		Message: resp.Message,
	}, nil
}
