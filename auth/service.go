package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/store"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type Service struct {
	users  *store.UserRepo
	tokens *Tokens
	cost   int
}

func NewService(users *store.UserRepo, tokens *Tokens, bcryptCost int) *Service {
	if bcryptCost < bcrypt.MinCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{users: users, tokens: tokens, cost: bcryptCost}
}

func (s *Service) Tokens() *Tokens { return s.tokens }

// Authenticate checks email and password against the stored hash. Unknown emails,
// accounts without a password and wrong passwords all yield ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	u, err := s.users.ByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !u.HasPassword() {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// Register creates a USER account with a bcrypt hash of password.
func (s *Service) Register(ctx context.Context, email, password, name string) (*models.User, error) {
	hash, err := HashPassword(password, s.cost)
	if err != nil {
		return nil, err
	}
	u := &models.User{Email: email, Name: name, Password: hash, Role: models.RoleUser}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login authenticates and issues a session token.
func (s *Service) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	u, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, "", err
	}
	token, err := s.tokens.Issue(PrincipalFor(u))
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
