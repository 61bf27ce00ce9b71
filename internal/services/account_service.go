package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"fitnessforge/internal/models"
	"fitnessforge/internal/repository"
	"fitnessforge/internal/tracing"
	"fitnessforge/internal/utils"

	"go.opentelemetry.io/otel/attribute"
)

type TokenIssuer interface {
	Issue(userID uint, username string) (string, error)
}

type RegisterInput struct {
	Username string `json:"username" example:"jdoe"`
	Email    string `json:"email" example:"jdoe@example.com"`
	Password string `json:"password" example:"s3cret-pass"`
}

type AccountService struct {
	users    repository.UserRepository
	profiles repository.ProfileRepository
	tokens   TokenIssuer
	now      func() time.Time
}

func NewAccountService(users repository.UserRepository, profiles repository.ProfileRepository, tokens TokenIssuer) *AccountService {
	return &AccountService{
		users:    users,
		profiles: profiles,
		tokens:   tokens,
		now:      time.Now,
	}
}

// Register creates the user together with a placeholder profile.
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (_ *models.User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.account.register")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	var missing []string
	if in.Username == "" {
		missing = append(missing, "username")
	}
	if in.Email == "" {
		missing = append(missing, "email")
	}
	if in.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Missing: missing}
	}

	exists, err := s.users.ExistsByUsernameOrEmail(ctx, in.Username, in.Email)
	if err != nil {
		return nil, upstream("check existing user", err)
	}
	if exists {
		return nil, ErrConflict
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, upstream("hash password", err)
	}

	user := &models.User{
		Username: in.Username,
		Email:    in.Email,
		Password: hash,
	}
	if err := s.users.CreateWithProfile(ctx, user, models.DefaultProfile(0, s.now().UTC())); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, upstream("create user", err)
	}

	span.SetAttributes(attribute.Int("user.id", int(user.ID)))
	return user, nil
}

// Login checks the credentials and returns a signed token.
func (s *AccountService) Login(ctx context.Context, email, password string) (_ string, _ *models.User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.account.login")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	email = strings.ToLower(strings.TrimSpace(email))
	var missing []string
	if email == "" {
		missing = append(missing, "email")
	}
	if password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return "", nil, &ValidationError{Missing: missing}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrUserNotFound
		}
		return "", nil, upstream("find user", err)
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return "", nil, upstream("issue token", err)
	}
	return token, user, nil
}

// Current returns the user and their profile.
func (s *AccountService) Current(ctx context.Context, userID uint) (*models.User, *models.Profile, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, upstream("find user", err)
	}

	profile, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrProfileNotFound
		}
		return nil, nil, upstream("find profile", err)
	}
	return user, profile, nil
}
