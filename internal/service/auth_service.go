package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/elhoucineqara/saascompare/internal/domain"
	"github.com/elhoucineqara/saascompare/internal/logger"
	"github.com/elhoucineqara/saascompare/internal/metrics"
	"github.com/elhoucineqara/saascompare/internal/repository"
	"github.com/elhoucineqara/saascompare/internal/validator"
)

// AuthService handles accounts, credential checks and login sessions.
type AuthService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	validator   *validator.Validator
	sessionTTL  time.Duration
	bcryptCost  int
}

// NewAuthService creates a new AuthService.
func NewAuthService(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	v *validator.Validator,
	sessionTTL time.Duration,
	bcryptCost int,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		validator:   v,
		sessionTTL:  sessionTTL,
		bcryptCost:  bcryptCost,
	}
}

// Register creates a self-service account with the user role.
func (s *AuthService) Register(ctx context.Context, in domain.RegisterInput) (*domain.User, error) {
	user, err := s.CreateUser(ctx, in, domain.RoleUser)
	metrics.RecordAuthAttempt("register", err == nil)
	return user, err
}

// CreateUser creates an account with the given role.
func (s *AuthService) CreateUser(ctx context.Context, in domain.RegisterInput, role string) (*domain.User, error) {
	if err := s.validator.ValidatePassword(in.Password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	ts := now()
	user := &domain.User{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(in.Name),
		Email:        normalizeEmail(in.Email),
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}
	if err := s.validator.ValidateUser(user); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.GetByEmail(ctx, user.Email)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if existing != nil {
		return nil, domain.ConflictError("user", "email", user.Email)
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "User created",
		slog.String("user_id", user.ID),
		slog.String("role", user.Role))
	return user, nil
}

// Login checks credentials and opens a session. Unknown emails and wrong
// passwords both yield domain.ErrUnauthorized.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Session, *domain.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		metrics.RecordAuthAttempt("login", false)
		return nil, nil, domain.ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		metrics.RecordAuthAttempt("login", false)
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, nil, domain.ErrUnauthorized
		}
		return nil, nil, fmt.Errorf("compare password: %w", err)
	}

	ts := now()
	session := &domain.Session{
		Token:     uuid.New().String(),
		UserID:    user.ID,
		ExpiresAt: ts.Add(s.sessionTTL),
		CreatedAt: ts,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, nil, fmt.Errorf("create session: %w", err)
	}

	metrics.RecordAuthAttempt("login", true)
	logger.WithUserID(user.ID).InfoContext(ctx, "User logged in")
	return session, user, nil
}

// Logout destroys the session. Unknown tokens are ignored.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessionRepo.Delete(ctx, token)
}

// Authenticate resolves a session token to its user.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrUnauthorized
	}

	session, err := s.sessionRepo.Get(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if session == nil {
		return nil, domain.ErrUnauthorized
	}
	if session.Expired(time.Now()) {
		if err := s.sessionRepo.Delete(ctx, token); err != nil {
			logger.WarnContext(ctx, "Failed to delete expired session", slog.String("error", err.Error()))
		}
		return nil, domain.ErrUnauthorized
	}

	user, err := s.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
