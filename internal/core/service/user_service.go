package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/batforeningen/marina-api/internal/api/metrics"
	"github.com/batforeningen/marina-api/internal/core/domain"
	"github.com/batforeningen/marina-api/internal/core/ports"
	"github.com/batforeningen/marina-api/pkg/validate"
)

// bcryptCost matches what the club's member passwords were originally
// hashed with; changing it would only affect new signups.
const bcryptCost = 12

// dummyHash is compared against on login when no user matches the
// username, so the failure path costs a bcrypt verification either way
// and username enumeration by latency stays impractical.
var dummyHash = []byte("$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW")

// UserService implements signup, login and the admin panel operations.
type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

// Create validates one signup candidate and persists it. Validators run
// in a fixed order; the first failure wins.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if err := validate.Username(input.Username); err != nil {
		return nil, err
	}
	if err := validate.Email(input.Email); err != nil {
		return nil, err
	}
	if err := validate.Password(input.Password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     strings.TrimSpace(input.Username),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	metrics.SignupsTotal.Inc()
	s.log.Info().Str("username", created.Username).Msg("user created")
	return created, nil
}

// CreateMany processes candidates independently: one bad entry never
// aborts the batch. The result carries per-item outcomes plus counts.
func (s *UserService) CreateMany(ctx context.Context, inputs []ports.CreateUserInput) (*ports.BulkCreateResult, error) {
	result := &ports.BulkCreateResult{
		Results: []ports.BulkItemResult{},
		Errors:  []ports.BulkItemError{},
	}

	for i, input := range inputs {
		created, err := s.Create(ctx, input)
		if err != nil {
			result.Errors = append(result.Errors, ports.BulkItemError{
				Index:    i,
				Username: input.Username,
				Reason:   err.Error(),
			})
			continue
		}
		result.Results = append(result.Results, ports.BulkItemResult{
			Index:    i,
			Username: created.Username,
			Email:    created.Email,
		})
	}

	result.Success = len(result.Results)
	result.Failed = len(result.Errors)
	s.log.Info().Int("success", result.Success).Int("failed", result.Failed).Msg("bulk user creation finished")
	return result, nil
}

// Login verifies credentials and returns the role flag. The bcrypt
// comparison always runs, even when the username does not resolve, and
// every failure surfaces as ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, username, password string) (bool, error) {
	if username == "" || password == "" {
		return false, &validate.FieldError{Field: "credentials", Reason: "username and password are required"}
	}

	user, err := s.repo.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return false, domain.ErrInvalidCredentials
		}
		return false, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return false, domain.ErrInvalidCredentials
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return user.IsAdmin, nil
}

func (s *UserService) ListUsernames(ctx context.Context) ([]string, error) {
	return s.repo.ListUsernames(ctx)
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

// ToggleAdmin flips the role flag on the target user.
func (s *UserService) ToggleAdmin(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.repo.ToggleAdmin(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", user.ID).Bool("is_admin", user.IsAdmin).Msg("admin flag toggled")
	return user, nil
}
