package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"tuneeng_backend/internal/feature/auth/domain/entity"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention, the interface is defined by the consumer
// (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns ErrDuplicateUser when a
	// uniqueness constraint fires at commit time.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves the user matching the email address.
	// It returns ErrUserNotFound when no such user exists.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByUsername retrieves the user matching the username.
	// It returns ErrUserNotFound when no such user exists.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByID retrieves the user matching the ID.
	// It returns ErrUserNotFound when no such user exists.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// TokenIssuer defines the interface for access token generation.
// It is implemented by the jwt platform package.
type TokenIssuer interface {
	GenerateToken(userID uint, email string) (string, error)
}

// authUsecase implements the authentication business logic.
type authUsecase struct {
	users  UserRepository
	tokens TokenIssuer
}

// NewAuthUsecase creates a new authUsecase instance.
func NewAuthUsecase(users UserRepository, tokens TokenIssuer) *authUsecase {
	return &authUsecase{
		users:  users,
		tokens: tokens,
	}
}

// deriveUsername defaults the username from the email local-part.
func deriveUsername(email string) string {
	return strings.SplitN(email, "@", 2)[0]
}

// Register validates the input, checks email/username uniqueness, and
// persists a new user with a hashed password. Validation runs before any
// store access.
func (u *authUsecase) Register(ctx context.Context, email, password, fullName, username string) (*entity.User, error) {
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	if err := validateFullName(fullName); err != nil {
		return nil, err
	}
	// A derived username is not validated, matching the registration
	// contract: rules apply only to caller-provided handles.
	if username != "" {
		if err := validateUsername(username); err != nil {
			return nil, err
		}
	} else {
		username = deriveUsername(email)
	}

	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	if _, err := u.users.FindByUsername(ctx, username); err == nil {
		return nil, ErrUsernameAlreadyTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hashed, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:    email,
		Password: hashed,
		FullName: fullName,
		Username: username,
	}
	if err := u.users.Create(ctx, user); err != nil {
		// A registration racing past the pre-checks still surfaces as a
		// conflict, not a server error.
		if errors.Is(err, ErrDuplicateUser) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	return user, nil
}

// Login authenticates a user and returns a signed access token on success.
// A bcrypt comparison runs even when the user does not exist so the two
// failure cases are indistinguishable by timing.
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, *entity.User, error) {
	user, err := u.users.FindByEmail(ctx, email)

	// Dummy hash keeps bcrypt.CompareHashAndPassword on the missing-user path.
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, tokenErr := u.tokens.GenerateToken(user.ID, user.Email)
	if tokenErr != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", tokenErr)
	}

	return token, user, nil
}

// CurrentUser resolves a token subject to its user record.
// It returns ErrUserNotFound when the subject no longer exists.
func (u *authUsecase) CurrentUser(ctx context.Context, userID uint) (*entity.User, error) {
	return u.users.FindByID(ctx, userID)
}
