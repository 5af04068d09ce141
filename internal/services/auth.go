package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"github.com/ekovalova/contactbook/internal/jwt"
	"github.com/ekovalova/contactbook/internal/logger"
	"github.com/ekovalova/contactbook/internal/models"
	"github.com/ekovalova/contactbook/internal/validation"
)

// Error variables
var (
	ErrUserAlreadyExists     = errors.New("username or email already exists")
	ErrUserDoesNotExist      = errors.New("user does not exist")
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrInvalidToken          = errors.New("invalid or expired token")
	ErrEmailAlreadyConfirmed = errors.New("email already confirmed")
)

// uniqueViolation is the SQLSTATE for a unique constraint violation. The
// database index is the authoritative uniqueness guard; service-level
// existence checks are only an early exit.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, email, passwordHash string) (*models.UserDB, error)
	SetRefreshToken(ctx context.Context, userID uuid.UUID, token *string) error
	SetConfirmed(ctx context.Context, email string) error
	SetAvatar(ctx context.Context, email, url string) (*models.UserDB, error)
}

// Tokener defines an interface for issuing and verifying scoped tokens.
type Tokener interface {
	Generate(ctx context.Context, userID uuid.UUID, email string, scope jwt.Scope) (string, error)
	GetClaims(ctx context.Context, tokenString string, expected jwt.Scope) (*jwt.Claims, error)
}

// Mailer sends confirmation mail. Delivery failures never fail the
// operation that triggered them.
type Mailer interface {
	SendConfirmation(ctx context.Context, to, token string) error
}

// AuthService handles registration, login and the token lifecycle.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    Tokener
	mailer Mailer
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt Tokener, mailer Mailer) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
		mailer: mailer,
	}
}

// sendConfirmation issues an email-scope token and mails it.
func (svc *AuthService) sendConfirmation(ctx context.Context, user *models.UserDB) {
	if svc.mailer == nil {
		logger.Log.Warnw("mailer not configured, skipping confirmation mail", "email", user.Email)
		return
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, user.Email, jwt.ScopeEmail)
	if err != nil {
		logger.Log.Errorw("failed to generate confirmation token", "email", user.Email, "err", err)
		return
	}

	if err := svc.mailer.SendConfirmation(ctx, user.Email, token); err != nil {
		logger.Log.Errorw("failed to send confirmation mail", "email", user.Email, "err", err)
	}
}

// Register registers a new user and sends a confirmation mail.
func (svc *AuthService) Register(ctx context.Context, username, email, password string) (*models.UserDB, error) {
	if err := validation.ValidateRegistration(username, email, password); err != nil {
		return nil, err
	}

	exists, err := svc.reader.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if exists {
		logger.Log.Errorw("user already exists", "username", username, "email", email)
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user, err := svc.writer.Save(ctx, username, email, string(hashedPassword))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	svc.sendConfirmation(ctx, user)

	return user, nil
}

// Login authenticates a user and returns an access/refresh token pair.
// The refresh token is stored on the user record so that replayed tokens
// can be detected once a newer one supersedes them.
func (svc *AuthService) Login(ctx context.Context, email, password string) (accessToken, refreshToken string, err error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "email", email)
		return "", "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "email", email)
		return "", "", ErrInvalidCredentials
	}

	return svc.issuePair(ctx, user)
}

// Refresh exchanges a valid refresh token for a new access/refresh pair.
// The presented token must match the one currently stored on the user
// record; anything else is treated as stolen or superseded.
func (svc *AuthService) Refresh(ctx context.Context, refreshToken string) (newAccess, newRefresh string, err error) {
	claims, err := svc.jwt.GetClaims(ctx, refreshToken, jwt.ScopeRefresh)
	if err != nil {
		logger.Log.Errorw("invalid refresh token", "err", err)
		return "", "", ErrInvalidToken
	}

	user, err := svc.reader.GetByID(ctx, claims.UserID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", "", err
	}
	if user == nil {
		return "", "", ErrInvalidToken
	}

	if user.RefreshToken == nil || *user.RefreshToken != refreshToken {
		// A newer token superseded this one server-side. Invalidate the
		// session entirely.
		logger.Log.Errorw("refresh token does not match stored token", "user_id", user.UserID)
		if clearErr := svc.writer.SetRefreshToken(ctx, user.UserID, nil); clearErr != nil {
			logger.Log.Errorw("failed to clear refresh token", "err", clearErr)
		}
		return "", "", ErrInvalidToken
	}

	return svc.issuePair(ctx, user)
}

// Logout clears the stored refresh token.
func (svc *AuthService) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := svc.writer.SetRefreshToken(ctx, userID, nil); err != nil {
		logger.Log.Errorw("failed to clear refresh token", "user_id", userID, "err", err)
		return err
	}
	return nil
}

// ConfirmEmail marks the email embedded in an email-scope token as
// confirmed.
func (svc *AuthService) ConfirmEmail(ctx context.Context, token string) error {
	claims, err := svc.jwt.GetClaims(ctx, token, jwt.ScopeEmail)
	if err != nil {
		logger.Log.Errorw("invalid confirmation token", "err", err)
		return ErrInvalidToken
	}

	user, err := svc.reader.GetByEmail(ctx, claims.Email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return err
	}
	if user == nil {
		return ErrUserDoesNotExist
	}
	if user.Confirmed {
		return ErrEmailAlreadyConfirmed
	}

	if err := svc.writer.SetConfirmed(ctx, claims.Email); err != nil {
		logger.Log.Errorw("failed to confirm email", "email", claims.Email, "err", err)
		return err
	}
	return nil
}

// RequestConfirmation re-sends the confirmation mail for an unconfirmed
// account.
func (svc *AuthService) RequestConfirmation(ctx context.Context, email string) error {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return err
	}
	if user == nil {
		return ErrUserDoesNotExist
	}
	if user.Confirmed {
		return ErrEmailAlreadyConfirmed
	}

	svc.sendConfirmation(ctx, user)
	return nil
}

func (svc *AuthService) issuePair(ctx context.Context, user *models.UserDB) (accessToken, refreshToken string, err error) {
	accessToken, err = svc.jwt.Generate(ctx, user.UserID, user.Email, jwt.ScopeAccess)
	if err != nil {
		logger.Log.Errorw("failed to generate access token", "err", err)
		return "", "", err
	}

	refreshToken, err = svc.jwt.Generate(ctx, user.UserID, user.Email, jwt.ScopeRefresh)
	if err != nil {
		logger.Log.Errorw("failed to generate refresh token", "err", err)
		return "", "", err
	}

	if err = svc.writer.SetRefreshToken(ctx, user.UserID, &refreshToken); err != nil {
		logger.Log.Errorw("failed to store refresh token", "err", err)
		return "", "", err
	}

	return accessToken, refreshToken, nil
}
