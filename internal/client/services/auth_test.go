package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/cardkeeper/internal/client/api"
	"github.com/dmitrijs2005/cardkeeper/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAuthAPI implements AuthAPI for unit tests.
type fakeAuthAPI struct {
	LoginResp  *api.AuthResponse
	LoginErr   error
	SignupResp *api.AuthResponse
	SignupErr  error

	LastLogin  api.LoginRequest
	LastSignup api.SignupRequest
}

func (f *fakeAuthAPI) Login(_ context.Context, req api.LoginRequest) (*api.AuthResponse, error) {
	f.LastLogin = req
	return f.LoginResp, f.LoginErr
}

func (f *fakeAuthAPI) Signup(_ context.Context, req api.SignupRequest) (*api.AuthResponse, error) {
	f.LastSignup = req
	return f.SignupResp, f.SignupErr
}

func TestAuthService_Login_Success(t *testing.T) {
	user := &models.User{ID: "1", Username: "alice", Email: "a@example.com"}
	fc := &fakeAuthAPI{LoginResp: &api.AuthResponse{Success: true, Token: "jwt", User: user}}
	svc := NewAuthService(fc)

	res, err := svc.Login(context.Background(), "alice", "secret1")
	require.NoError(t, err)

	assert.Equal(t, api.LoginRequest{Username: "alice", Password: "secret1"}, fc.LastLogin)
	assert.True(t, res.Success)
	assert.Equal(t, "jwt", res.Token)
	assert.Equal(t, *user, res.User)
}

func TestAuthService_Login_Failures(t *testing.T) {
	user := &models.User{ID: "1", Username: "alice"}

	tests := []struct {
		name    string
		resp    *api.AuthResponse
		err     error
		wantMsg string
		wantErr error
	}{
		{
			name:    "backend declares failure",
			resp:    &api.AuthResponse{Success: false, Message: "Invalid credentials"},
			wantMsg: "Invalid credentials",
		},
		{
			name: "success without token",
			resp: &api.AuthResponse{Success: true, User: user},
		},
		{
			name: "success without user",
			resp: &api.AuthResponse{Success: true, Token: "jwt"},
		},
		{
			name:    "client error status",
			err:     &api.Error{StatusCode: http.StatusUnauthorized, Message: "Bad credentials"},
			wantMsg: "Bad credentials",
		},
		{
			name:    "server error",
			err:     &api.Error{StatusCode: http.StatusInternalServerError, Message: "db down"},
			wantErr: &api.Error{},
		},
		{
			name:    "unavailable",
			err:     fmt.Errorf("%w: dial", api.ErrUnavailable),
			wantErr: api.ErrUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAuthService(&fakeAuthAPI{LoginResp: tt.resp, LoginErr: tt.err})

			res, err := svc.Login(context.Background(), "alice", "secret1")

			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tt.wantErr, api.ErrUnavailable) {
					assert.ErrorIs(t, err, api.ErrUnavailable)
				} else {
					var apiErr *api.Error
					assert.ErrorAs(t, err, &apiErr)
				}
				assert.False(t, res.Success)
				return
			}

			require.NoError(t, err)
			assert.False(t, res.Success)
			assert.Equal(t, tt.wantMsg, res.Message)
			assert.Empty(t, res.Token)
		})
	}
}

func TestAuthService_Signup(t *testing.T) {
	user := &models.User{ID: "9", Username: "bob", Email: "bob@example.com"}
	fc := &fakeAuthAPI{SignupResp: &api.AuthResponse{Success: true, Token: "jwt", User: user}}
	svc := NewAuthService(fc)

	res, err := svc.Signup(context.Background(), "bob", "bob@example.com", "secret1")
	require.NoError(t, err)

	assert.Equal(t, api.SignupRequest{Username: "bob", Email: "bob@example.com", Password: "secret1"}, fc.LastSignup)
	assert.True(t, res.Success)
	assert.Equal(t, "bob", res.User.Username)
}

func TestAuthService_Signup_Conflict(t *testing.T) {
	svc := NewAuthService(&fakeAuthAPI{
		SignupErr: &api.Error{StatusCode: http.StatusConflict, Message: "Username already exists"},
	})

	res, err := svc.Signup(context.Background(), "bob", "bob@example.com", "secret1")
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "Username already exists", res.Message)
}

func TestAuthService_AgainstHTTPBackend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path != "/api/auth/login" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"success":true,"token":"abc","userInfo":{"id":4,"username":"dave","email":"d@x.io"}}`))
	}))
	defer srv.Close()

	svc := NewAuthService(api.New(srv.URL+"/api", nil))

	res, err := svc.Login(context.Background(), "dave", "secret1")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, models.User{ID: "4", Username: "dave", Email: "d@x.io"}, res.User)
}
