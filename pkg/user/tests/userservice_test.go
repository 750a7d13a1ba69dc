package tests

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopsquare/pkg/user/auth"
	"shopsquare/pkg/user/model"
	"shopsquare/pkg/user/service"
)

func setup(t *testing.T) (service.UserService, *mockUserRepository) {
	repo := &mockUserRepository{store: make(map[int]*model.User)}
	userService := service.NewUserService(repo, service.TokenConfig{Secret: "test-secret", TTL: time.Hour})
	return userService, repo
}

func TestRegister(t *testing.T) {
	userService, repo := setup(t)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		user, err := userService.Register(ctx, "test@example.com", "John Doe", "password123", "")

		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "test@example.com", user.Email)
		assert.Equal(t, model.RoleCustomer, user.Role)
		assert.True(t, strings.HasPrefix(user.PasswordHash, "$2a$") || strings.HasPrefix(user.PasswordHash, "$2b$"))
		assert.NotEqual(t, "password123", user.PasswordHash)

		saved, err := repo.FindByEmail(ctx, "test@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, saved.ID)
	})

	t.Run("Fail on email taken", func(t *testing.T) {
		_, err := userService.Register(ctx, "test@example.com", "Jane Doe", "password123", "")
		assert.ErrorIs(t, err, model.ErrEmailTaken)
	})

	t.Run("Fail on blank fields", func(t *testing.T) {
		_, err := userService.Register(ctx, "  ", "Jack", "password123", "")
		assert.ErrorIs(t, err, service.ErrEmailRequired)

		_, err = userService.Register(ctx, "jack@example.com", "", "password123", "")
		assert.ErrorIs(t, err, service.ErrNameRequired)

		_, err = userService.Register(ctx, "jack@example.com", "Jack", "   ", "")
		assert.ErrorIs(t, err, service.ErrPasswordRequired)
	})

	t.Run("Role is normalized", func(t *testing.T) {
		user, err := userService.Register(ctx, "vendor@example.com", "Vera", "password123", "vendor")
		require.NoError(t, err)
		assert.Equal(t, model.RoleVendor, user.Role)

		user, err = userService.Register(ctx, "odd@example.com", "Otto", "password123", "superuser")
		require.NoError(t, err)
		assert.Equal(t, model.RoleCustomer, user.Role)
	})
}

func TestLogin(t *testing.T) {
	userService, repo := setup(t)
	ctx := context.Background()

	registered, err := userService.Register(ctx, "login@example.com", "Lena", "correct-horse", "")
	require.NoError(t, err)

	t.Run("Success with bcrypt hash", func(t *testing.T) {
		user, token, err := userService.Login(ctx, "login@example.com", "correct-horse")

		require.NoError(t, err)
		assert.Equal(t, registered.ID, user.ID)
		require.NotEmpty(t, token)

		claims, err := auth.ParseToken("test-secret", token)
		require.NoError(t, err)
		assert.Equal(t, registered.ID, claims.UserID)
		assert.Equal(t, "login@example.com", claims.Email)
	})

	t.Run("Success with legacy plaintext record", func(t *testing.T) {
		legacy := &model.User{Email: "legacy@example.com", Name: "Old Timer", PasswordHash: "plain-secret", Role: model.RoleCustomer}
		require.NoError(t, repo.Create(ctx, legacy))

		user, token, err := userService.Login(ctx, "legacy@example.com", "plain-secret")
		require.NoError(t, err)
		assert.Equal(t, legacy.ID, user.ID)
		assert.NotEmpty(t, token)
	})

	t.Run("Wrong password is unauthorized", func(t *testing.T) {
		_, _, err := userService.Login(ctx, "login@example.com", "wrong")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("Unknown email is unauthorized", func(t *testing.T) {
		_, _, err := userService.Login(ctx, "nobody@example.com", "whatever")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestUpdateUser(t *testing.T) {
	userService, _ := setup(t)
	ctx := context.Background()

	user, err := userService.Register(ctx, "update@example.com", "Before", "password123", "")
	require.NoError(t, err)

	t.Run("Full replace", func(t *testing.T) {
		updated, err := userService.UpdateUser(ctx, user.ID, model.User{
			Email:        "after@example.com",
			Name:         "After",
			PasswordHash: "raw-value",
			Role:         model.RoleAdmin,
		})

		require.NoError(t, err)
		assert.Equal(t, "after@example.com", updated.Email)
		assert.Equal(t, "After", updated.Name)
		assert.Equal(t, "raw-value", updated.PasswordHash)
		assert.Equal(t, model.RoleAdmin, updated.Role)
	})

	t.Run("Unknown id", func(t *testing.T) {
		_, err := userService.UpdateUser(ctx, 9999, model.User{Email: "x@example.com"})
		assert.ErrorIs(t, err, model.ErrUserNotFound)
	})
}

type mockUserRepository struct {
	store  map[int]*model.User
	nextID int
}

func (m *mockUserRepository) Create(_ context.Context, user *model.User) error {
	m.nextID++
	user.ID = m.nextID
	m.store[user.ID] = user
	return nil
}

func (m *mockUserRepository) Update(_ context.Context, user *model.User) error {
	m.store[user.ID] = user
	return nil
}

func (m *mockUserRepository) Find(_ context.Context, id int) (*model.User, error) {
	if user, ok := m.store[id]; ok {
		return user, nil
	}
	return nil, model.ErrUserNotFound
}

func (m *mockUserRepository) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, user := range m.store {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, model.ErrUserNotFound
}

func (m *mockUserRepository) FindAll(_ context.Context) ([]model.User, error) {
	users := make([]model.User, 0, len(m.store))
	for _, user := range m.store {
		users = append(users, *user)
	}
	return users, nil
}

func (m *mockUserRepository) Delete(_ context.Context, id int) error {
	delete(m.store, id)
	return nil
}
