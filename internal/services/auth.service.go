package services

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/mobileshop/pos/internal/model"
	"github.com/mobileshop/pos/internal/repository"
	"github.com/mobileshop/pos/pkg/logger"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidPIN         = errors.New("invalid pin")
	ErrNoSession          = errors.New("no valid session")
)

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByCredentials(ctx context.Context, username, password string) (*model.User, error)
	GetByPIN(ctx context.Context, pin string) (*model.User, error)
}

// AuthService authenticates the single operator. A successful login writes a
// session marker file next to the store; Revalidate checks it against the
// users table once at startup.
type AuthService struct {
	users       UserRepository
	sessionPath string
}

func NewAuthService(users UserRepository, sessionPath string) *AuthService {
	return &AuthService{
		users:       users,
		sessionPath: sessionPath,
	}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.users.GetByCredentials(ctx, username, password)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.writeSession(user.ID); err != nil {
		logger.Warn("failed to persist session marker", "error", err)
	}
	return user, nil
}

func (s *AuthService) LoginWithPIN(ctx context.Context, pin string) (*model.User, error) {
	user, err := s.users.GetByPIN(ctx, pin)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidPIN
		}
		return nil, err
	}

	if err := s.writeSession(user.ID); err != nil {
		logger.Warn("failed to persist session marker", "error", err)
	}
	return user, nil
}

// Revalidate loads the session marker and checks the referenced user still
// exists. A stale marker is discarded and the operator must log in again.
func (s *AuthService) Revalidate(ctx context.Context) (*model.User, error) {
	data, err := os.ReadFile(s.sessionPath)
	if err != nil {
		return nil, ErrNoSession
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		s.discard()
		return nil, ErrNoSession
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.discard()
			return nil, ErrNoSession
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Logout() {
	s.discard()
}

func (s *AuthService) writeSession(userID int64) error {
	session := model.Session{
		UserID:    userID,
		Token:     uuid.NewString(),
		CreatedAt: time.Now(),
	}
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return os.WriteFile(s.sessionPath, data, 0o600)
}

func (s *AuthService) discard() {
	_ = os.Remove(s.sessionPath)
}
