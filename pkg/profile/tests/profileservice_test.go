package tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopsquare/pkg/platform/refcheck"
	"shopsquare/pkg/profile/model"
	"shopsquare/pkg/profile/service"
)

func setup(t *testing.T) (service.ProfileService, *mockProfileRepository, *stubChecker) {
	repo := &mockProfileRepository{store: make(map[int]*model.Profile)}
	users := &stubChecker{}
	profileService := service.NewProfileService(repo, users)
	return profileService, repo, users
}

func TestCreateProfile(t *testing.T) {
	profileService, repo, users := setup(t)
	ctx := context.Background()

	t.Run("Success with user check", func(t *testing.T) {
		profile, err := profileService.CreateProfile(ctx, model.Profile{UserID: 3, Name: "Ann", Address: "Main St 1", Phone: "555-0100"})

		require.NoError(t, err)
		assert.NotZero(t, profile.ID)
		assert.False(t, profile.CreatedAt.IsZero())
		assert.Equal(t, []int{3}, users.calls)
	})

	t.Run("No check without user reference", func(t *testing.T) {
		users.calls = nil
		_, err := profileService.CreateProfile(ctx, model.Profile{Name: "Anonymous"})
		require.NoError(t, err)
		assert.Empty(t, users.calls)
	})

	t.Run("Failed check aborts", func(t *testing.T) {
		users.err = refcheck.ErrNotConfirmed
		before := len(repo.store)

		_, err := profileService.CreateProfile(ctx, model.Profile{UserID: 42, Name: "Ghost"})

		assert.ErrorIs(t, err, refcheck.ErrNotConfirmed)
		assert.Len(t, repo.store, before)
		users.err = nil
	})
}

func TestUpdateProfile(t *testing.T) {
	profileService, _, users := setup(t)
	ctx := context.Background()

	profile, err := profileService.CreateProfile(ctx, model.Profile{UserID: 3, Name: "Before"})
	require.NoError(t, err)
	createdAt := profile.CreatedAt

	t.Run("Replaces fields, keeps createdAt, no re-check", func(t *testing.T) {
		users.calls = nil
		updated, err := profileService.UpdateProfile(ctx, profile.ID, model.Profile{UserID: 8, Name: "After", Address: "Elsewhere"})

		require.NoError(t, err)
		assert.Equal(t, 8, updated.UserID)
		assert.Equal(t, "After", updated.Name)
		assert.Equal(t, createdAt, updated.CreatedAt)
		assert.Empty(t, users.calls)
	})

	t.Run("Unknown id", func(t *testing.T) {
		_, err := profileService.UpdateProfile(ctx, 9999, model.Profile{Name: "X"})
		assert.ErrorIs(t, err, model.ErrProfileNotFound)
	})
}

type stubChecker struct {
	err   error
	calls []int
}

func (s *stubChecker) Confirm(_ context.Context, id int) error {
	s.calls = append(s.calls, id)
	return s.err
}

type mockProfileRepository struct {
	store  map[int]*model.Profile
	nextID int
}

func (m *mockProfileRepository) Create(_ context.Context, profile *model.Profile) error {
	m.nextID++
	profile.ID = m.nextID
	m.store[profile.ID] = profile
	return nil
}

func (m *mockProfileRepository) Update(_ context.Context, profile *model.Profile) error {
	m.store[profile.ID] = profile
	return nil
}

func (m *mockProfileRepository) Find(_ context.Context, id int) (*model.Profile, error) {
	if profile, ok := m.store[id]; ok {
		copied := *profile
		return &copied, nil
	}
	return nil, model.ErrProfileNotFound
}

func (m *mockProfileRepository) FindAll(_ context.Context) ([]model.Profile, error) {
	profiles := make([]model.Profile, 0, len(m.store))
	for _, profile := range m.store {
		profiles = append(profiles, *profile)
	}
	return profiles, nil
}

func (m *mockProfileRepository) Delete(_ context.Context, id int) error {
	delete(m.store, id)
	return nil
}
