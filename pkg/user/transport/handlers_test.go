package transport

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopsquare/pkg/user/model"
	"shopsquare/pkg/user/service"
)

func TestRegisterEndpoint(t *testing.T) {
	svc := &stubUserService{}
	srv := httptest.NewServer(Router(svc))
	defer srv.Close()

	t.Run("Response omits the password hash", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/api/users/register", "application/json",
			strings.NewReader(`{"email":"a@b.c","name":"Ann","password":"secret"}`))
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "a@b.c", body["email"])
		_, present := body["passwordHash"]
		assert.False(t, present)
	})

	t.Run("Duplicate email is a conflict", func(t *testing.T) {
		svc.registerErr = model.ErrEmailTaken
		resp, err := http.Post(srv.URL+"/api/users/register", "application/json",
			strings.NewReader(`{"email":"a@b.c","name":"Ann","password":"secret"}`))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		svc.registerErr = nil
	})

	t.Run("Blank email is a validation error", func(t *testing.T) {
		svc.registerErr = service.ErrEmailRequired
		resp, err := http.Post(srv.URL+"/api/users/register", "application/json",
			strings.NewReader(`{"name":"Ann","password":"secret"}`))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		svc.registerErr = nil
	})
}

func TestLoginEndpoint(t *testing.T) {
	svc := &stubUserService{}
	srv := httptest.NewServer(Router(svc))
	defer srv.Close()

	t.Run("Success returns user and token", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/api/users/login", "application/json",
			strings.NewReader(`{"email":"a@b.c","password":"secret"}`))
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.NotEmpty(t, body["token"])
		assert.NotNil(t, body["user"])
	})

	t.Run("Bad credentials are unauthorized", func(t *testing.T) {
		svc.loginErr = service.ErrInvalidCredentials
		resp, err := http.Post(srv.URL+"/api/users/login", "application/json",
			strings.NewReader(`{"email":"a@b.c","password":"wrong"}`))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		svc.loginErr = nil
	})
}

func TestDeleteEndpoint(t *testing.T) {
	svc := &stubUserService{}
	srv := httptest.NewServer(Router(svc))
	defer srv.Close()

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/api/users/3", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "User deleted successfully", string(body))
}

type stubUserService struct {
	registerErr error
	loginErr    error
}

func (s *stubUserService) CreateUser(_ context.Context, draft model.User) (*model.User, error) {
	draft.ID = 1
	return &draft, nil
}

func (s *stubUserService) GetUserByID(_ context.Context, id int) (*model.User, error) {
	return &model.User{ID: id}, nil
}

func (s *stubUserService) GetAllUsers(context.Context) ([]model.User, error) { return nil, nil }

func (s *stubUserService) UpdateUser(_ context.Context, id int, draft model.User) (*model.User, error) {
	draft.ID = id
	return &draft, nil
}

func (s *stubUserService) DeleteUser(context.Context, int) error { return nil }

func (s *stubUserService) Register(_ context.Context, email, name, _, role string) (*model.User, error) {
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	return &model.User{ID: 1, Email: email, Name: name, PasswordHash: "$2a$10$stub", Role: model.ParseRole(role)}, nil
}

func (s *stubUserService) Login(_ context.Context, email, _ string) (*model.User, string, error) {
	if s.loginErr != nil {
		return nil, "", s.loginErr
	}
	return &model.User{ID: 1, Email: email}, "stub-token", nil
}
