package services

//go:generate mockgen -source=user.go -destination=user_mock.go -package=services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sbilibin2017/neko-list/internal/hasher"
	"github.com/sbilibin2017/neko-list/internal/logger"
	"github.com/sbilibin2017/neko-list/internal/models"
	"github.com/sbilibin2017/neko-list/internal/repositories"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.UserDB) (*models.UserDB, error)
}

// PasswordHasher turns plaintext passwords into stored digests.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Compare(digest, plaintext string) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID int64) (string, error)
}

// UserService handles registration, login and user lookups.
type UserService struct {
	reader UserReader
	writer UserWriter
	hasher PasswordHasher
	jwt    JWTGenerator
	now    func() time.Time
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer UserWriter, hasher PasswordHasher, jwt JWTGenerator) *UserService {
	return &UserService{
		reader: reader,
		writer: writer,
		hasher: hasher,
		jwt:    jwt,
		now:    utcNow,
	}
}

func utcNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// normalizeEmail trims and lowercases an email address.
func normalizeEmail(email string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(email))
}

// Register creates a user with a unique email.
func (svc *UserService) Register(ctx context.Context, req models.RegisterRequest) (*models.UserDB, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = normalizeEmail(req.Email)
	req.Country = trimOptional(req.Country)
	req.Hobby = trimOptional(req.Hobby)

	if err := validateStruct(req); err != nil {
		return nil, err
	}

	existing, err := svc.reader.GetByEmail(ctx, req.Email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "email", req.Email, "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Infow("email already registered", "email", req.Email)
		return nil, ErrEmailAlreadyRegistered
	}

	digest, err := svc.hasher.Hash(req.Password)
	if errors.Is(err, hasher.ErrTooLong) {
		return nil, &ValidationError{Field: "password", Message: "password must be at most 72 bytes"}
	}
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	now := svc.now()
	user, err := svc.writer.Save(ctx, &models.UserDB{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: digest,
		Country:      req.Country,
		Hobby:        req.Hobby,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		// A concurrent registration can pass the pre-check; the unique index decides.
		if errors.Is(err, repositories.ErrDuplicate) {
			logger.Log.Infow("email already registered", "email", req.Email)
			return nil, ErrEmailAlreadyRegistered
		}
		logger.Log.Errorw("failed to save user", "email", req.Email, "err", err)
		return nil, err
	}

	return user, nil
}

// Login checks the credentials and returns the user with a signed access token.
// Unknown email and wrong password fail with the same error.
func (svc *UserService) Login(ctx context.Context, req models.LoginRequest) (*models.UserDB, string, error) {
	email := normalizeEmail(req.Email)

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "email", email, "err", err)
		return nil, "", err
	}
	if user == nil {
		logger.Log.Infow("login with unknown email", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	if err := svc.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		logger.Log.Infow("invalid credentials", "user_id", user.ID)
		return nil, "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "user_id", user.ID, "err", err)
		return nil, "", err
	}

	return user, token, nil
}

// GetByID returns the user with the given id.
func (svc *UserService) GetByID(ctx context.Context, id int64) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", id, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
