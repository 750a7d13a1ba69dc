package service

import (
	"context"
	"time"

	"shopsquare/pkg/platform/refcheck"
	"shopsquare/pkg/profile/model"
)

type ProfileService interface {
	CreateProfile(ctx context.Context, draft model.Profile) (*model.Profile, error)
	GetProfileByID(ctx context.Context, id int) (*model.Profile, error)
	GetAllProfiles(ctx context.Context) ([]model.Profile, error)
	UpdateProfile(ctx context.Context, id int, draft model.Profile) (*model.Profile, error)
	DeleteProfile(ctx context.Context, id int) error
}

func NewProfileService(repo model.ProfileRepository, users refcheck.Checker) ProfileService {
	return &profileService{repo: repo, users: users}
}

type profileService struct {
	repo  model.ProfileRepository
	users refcheck.Checker
}

func (s *profileService) CreateProfile(ctx context.Context, draft model.Profile) (*model.Profile, error) {
	if draft.UserID > 0 {
		if err := refcheck.Validate(ctx, s.users, draft.UserID, refcheck.FailFast); err != nil {
			return nil, err
		}
	}

	draft.CreatedAt = time.Now().UTC()
	if err := s.repo.Create(ctx, &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

func (s *profileService) GetProfileByID(ctx context.Context, id int) (*model.Profile, error) {
	return s.repo.Find(ctx, id)
}

func (s *profileService) GetAllProfiles(ctx context.Context) ([]model.Profile, error) {
	return s.repo.FindAll(ctx)
}

func (s *profileService) UpdateProfile(ctx context.Context, id int, draft model.Profile) (*model.Profile, error) {
	profile, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	// createdAt stays as written at creation time.
	profile.UserID = draft.UserID
	profile.Name = draft.Name
	profile.Address = draft.Address
	profile.Phone = draft.Phone

	if err := s.repo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *profileService) DeleteProfile(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
