package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"shopsquare/pkg/user/auth"
	"shopsquare/pkg/user/model"
)

var (
	ErrEmailRequired      = errors.New("email is required")
	ErrNameRequired       = errors.New("name is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// TokenConfig parameterizes login token issuance.
type TokenConfig struct {
	Secret string
	TTL    time.Duration
}

type UserService interface {
	CreateUser(ctx context.Context, draft model.User) (*model.User, error)
	GetUserByID(ctx context.Context, id int) (*model.User, error)
	GetAllUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, id int, draft model.User) (*model.User, error)
	DeleteUser(ctx context.Context, id int) error

	Register(ctx context.Context, email, name, password, role string) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
}

func NewUserService(repo model.UserRepository, tokens TokenConfig) UserService {
	return &userService{repo: repo, tokens: tokens}
}

type userService struct {
	repo   model.UserRepository
	tokens TokenConfig
}

func (s *userService) CreateUser(ctx context.Context, draft model.User) (*model.User, error) {
	if err := s.repo.Create(ctx, &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

func (s *userService) GetUserByID(ctx context.Context, id int) (*model.User, error) {
	return s.repo.Find(ctx, id)
}

func (s *userService) GetAllUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *userService) UpdateUser(ctx context.Context, id int, draft model.User) (*model.User, error) {
	user, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Email = draft.Email
	user.Name = draft.Name
	user.PasswordHash = draft.PasswordHash
	user.Role = draft.Role

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *userService) Register(ctx context.Context, email, name, password, role string) (*model.User, error) {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)
	password = strings.TrimSpace(password)

	if email == "" {
		return nil, ErrEmailRequired
	}
	if name == "" {
		return nil, ErrNameRequired
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, model.ErrEmailTaken
	} else if !errors.Is(err, model.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Role:         model.ParseRole(role),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)

	if email == "" {
		return nil, "", ErrEmailRequired
	}
	if password == "" {
		return nil, "", ErrPasswordRequired
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !passwordMatches(user.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(s.tokens.Secret, s.tokens.TTL, user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// passwordMatches verifies the password against the stored value. Records
// written by this service hold bcrypt hashes; records predating hashing are
// stored as plaintext and compared byte for byte.
func passwordMatches(stored, password string) bool {
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}
	return stored == password
}
