package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/geoauth/internal/domain/entity"
	"github.com/oksasatya/geoauth/internal/domain/repository"
	"github.com/oksasatya/geoauth/pkg/helpers"
	"github.com/oksasatya/geoauth/pkg/mailer"
	"github.com/oksasatya/geoauth/pkg/validation"
)

// CodeStore holds the short-lived verification codes, keyed by email. A code
// is valid only within its TTL window; a successful verification does not
// delete it, eviction is by TTL alone.
type CodeStore interface {
	Set(ctx context.Context, email, code string, ttl time.Duration) error
	Get(ctx context.Context, email string) (string, bool, error)
}

// AuthService orchestrates the one-time-code flow: code issuance,
// verification with mismatch recovery, account creation, password reset and
// change, and profile retrieval. All collaborators are injected at startup.
type AuthService struct {
	Repo     repository.UserRepository
	Codes    CodeStore
	Notifier mailer.Notifier
	JWT      *helpers.JWTManager
	Logger   *logrus.Logger
	CodeTTL  time.Duration
}

func NewAuthService(repo repository.UserRepository, codes CodeStore, notifier mailer.Notifier, jwt *helpers.JWTManager, logger *logrus.Logger, codeTTL time.Duration) *AuthService {
	if codeTTL <= 0 {
		codeTTL = 5 * time.Minute
	}
	return &AuthService{Repo: repo, Codes: codes, Notifier: notifier, JWT: jwt, Logger: logger, CodeTTL: codeTTL}
}

// TokenResult is the credential payload returned on successful verification.
type TokenResult struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int    `json:"expiresIn"`
}

// issueCode generates a fresh code, stores it under the email with the
// configured TTL (overwriting any previous code), and emails it.
func (s *AuthService) issueCode(ctx context.Context, email, subject string) error {
	code := helpers.GenVerificationCode()
	if err := s.Codes.Set(ctx, email, code, s.CodeTTL); err != nil {
		s.Logger.WithError(err).WithField("email", email).Error("store verification code failed")
		return err
	}
	html, err := mailer.CodeEmailHTML(code, int(s.CodeTTL.Minutes()))
	if err != nil {
		return err
	}
	if err := s.Notifier.Send(ctx, email, subject, html); err != nil {
		s.Logger.WithError(err).WithField("email", email).Error("send verification email failed")
		return err
	}
	return nil
}

// SendCode emails a verification code for registration or login.
func (s *AuthService) SendCode(ctx context.Context, email string) error {
	if !validation.IsEmail(email) {
		return ErrInvalidEmail
	}
	return s.issueCode(ctx, email, mailer.SubjectVerificationCode)
}

// ForgotPassword emails a password-reset code. Same store and TTL mechanics
// as SendCode, framed as a reset.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	if !validation.IsEmail(email) {
		return ErrInvalidEmail
	}
	return s.issueCode(ctx, email, mailer.SubjectPasswordResetCode)
}

// VerifyCode checks the submitted code against the stored one and issues a
// token pair. A mismatch is recovery, not failure: a new code is stored and
// emailed, and ErrCodeMismatch is returned. There is no attempt limit.
//
// On match: a missing user is created (password required), a passwordless
// user with a password supplied gets it bound, and an existing password is
// never overwritten here.
func (s *AuthService) VerifyCode(ctx context.Context, email, code, name, password string) (*TokenResult, error) {
	if !validation.IsEmail(email) {
		return nil, ErrInvalidEmail
	}
	if password != "" && !validation.IsStrongPassword(password) {
		return nil, ErrWeakPassword
	}

	stored, ok, err := s.Codes.Get(ctx, email)
	if err != nil {
		s.Logger.WithError(err).WithField("email", email).Error("read verification code failed")
		return nil, err
	}
	if !ok {
		return nil, ErrCodeExpired
	}
	if stored != code {
		if err := s.issueCode(ctx, email, mailer.SubjectNewVerificationCode); err != nil {
			return nil, err
		}
		return nil, ErrCodeMismatch
	}

	u, err := s.Repo.GetByEmail(ctx, email)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		if password == "" {
			return nil, ErrPasswordRequired
		}
		hash, hErr := helpers.HashPassword(password)
		if hErr != nil {
			return nil, hErr
		}
		u = &entity.User{Email: email, Name: name, PasswordHash: &hash}
		if err := s.Repo.Create(ctx, u); err != nil {
			s.Logger.WithError(err).WithField("email", email).Error("create user failed")
			return nil, err
		}
	case err != nil:
		s.Logger.WithError(err).WithField("email", email).Error("lookup user failed")
		return nil, err
	case !u.HasPassword() && password != "":
		// First-time password binding for a previously code-only account.
		hash, hErr := helpers.HashPassword(password)
		if hErr != nil {
			return nil, hErr
		}
		if err := s.Repo.UpdatePasswordByEmail(ctx, email, hash); err != nil {
			s.Logger.WithError(err).WithField("email", email).Error("bind password failed")
			return nil, err
		}
	}

	return s.issueTokens(u.ID)
}

func (s *AuthService) issueTokens(userID string) (*TokenResult, error) {
	access, _, err := s.JWT.GenerateAccessToken(userID)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", userID).Error("generate access token failed")
		return nil, err
	}
	refresh, _, err := s.JWT.GenerateRefreshToken(userID)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", userID).Error("generate refresh token failed")
		return nil, err
	}
	return &TokenResult{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int(s.JWT.AccessTTL.Seconds()),
	}, nil
}

// ResetPassword sets a new password after an exact code match. Unlike
// VerifyCode there is no resend on mismatch; this is a single-shot check.
func (s *AuthService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	if !validation.IsEmail(email) {
		return ErrInvalidEmail
	}
	if !validation.IsStrongPassword(newPassword) {
		return ErrWeakPassword
	}

	stored, ok, err := s.Codes.Get(ctx, email)
	if err != nil {
		s.Logger.WithError(err).WithField("email", email).Error("read reset code failed")
		return err
	}
	if !ok || stored != code {
		return ErrInvalidOrExpiredCode
	}

	hash, err := helpers.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.Repo.UpdatePasswordByEmail(ctx, email, hash); err != nil {
		s.Logger.WithError(err).WithField("email", email).Error("reset password failed")
		return err
	}
	return nil
}

// ChangePassword verifies the old password and persists a new one for an
// authenticated user.
func (s *AuthService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	if !validation.IsStrongPassword(newPassword) {
		return ErrWeakPassword
	}

	u, err := s.Repo.GetByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", userID).Error("lookup user failed")
		return err
	}
	if !u.HasPassword() {
		return ErrNoPasswordSet
	}
	if !helpers.CompareHashAndPassword(*u.PasswordHash, oldPassword) {
		return ErrInvalidCredentials
	}

	hash, err := helpers.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.Repo.UpdatePasswordByID(ctx, userID, hash); err != nil {
		s.Logger.WithError(err).WithField("user_id", userID).Error("change password failed")
		return err
	}
	return nil
}

// GetProfile returns the {id, email, name} projection for a user.
func (s *AuthService) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
