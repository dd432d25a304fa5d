package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskdeck/backend/domain"
	"github.com/taskdeck/backend/repository"
)

var errInvalidCredentials = domain.NewError(domain.ErrCodeUnauthorized, "invalid email or password")

// Config carries the token settings for the auth use case.
type Config struct {
	JWTSecret  string
	JWTIssuer  string
	AccessTTL  time.Duration
	SessionTTL time.Duration
}

type UseCase struct {
	users    repository.UserRepository
	profiles repository.ProfileRepository
	actions  repository.QuickActionRepository
	sessions repository.SessionRepository
	cfg      Config
	logger   *zap.Logger
}

func New(
	users repository.UserRepository,
	profiles repository.ProfileRepository,
	actions repository.QuickActionRepository,
	sessions repository.SessionRepository,
	cfg Config,
	logger *zap.Logger,
) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = time.Hour
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 24 * time.Hour
	}
	return &UseCase{
		users:    users,
		profiles: profiles,
		actions:  actions,
		sessions: sessions,
		cfg:      cfg,
		logger:   logger,
	}
}

type RegisterParams struct {
	Username        string
	Email           string
	Password        string
	PasswordConfirm string
	FirstName       string
	LastName        string
}

// Result is returned by Register and Login: the identity plus a signed
// access token bound to a revocable session.
type Result struct {
	User        *domain.User
	AccessToken string
	Session     *domain.Session
}

// Register creates a new user, provisions its profile and default quick
// actions, and logs it in.
func (uc *UseCase) Register(ctx context.Context, params RegisterParams) (*Result, error) {
	user := &domain.User{
		Username:  strings.TrimSpace(params.Username),
		Email:     strings.TrimSpace(params.Email),
		FirstName: params.FirstName,
		LastName:  params.LastName,
	}
	if err := user.ValidateSignup(params.Password); err != nil {
		return nil, err
	}
	if params.Password != params.PasswordConfirm {
		errs := domain.FieldErrors{}
		errs.Add("password2", "passwords do not match")
		return nil, errs
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = string(hash)

	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}

	// Explicit provisioning step, not a storage-layer hook: the dependency
	// on profile and quick-action creation stays visible and testable.
	if err := uc.Provision(ctx, user.ID); err != nil {
		uc.logger.Error("default provisioning incomplete",
			zap.String("user_id", user.ID), zap.Error(err))
	}

	return uc.issue(ctx, user)
}

// Provision creates the user's profile and the default quick actions.
// Idempotent: rows that already exist (profile, or a quick action with the
// same label) are skipped, so a retry never duplicates.
func (uc *UseCase) Provision(ctx context.Context, userID string) error {
	profile := &domain.Profile{UserID: userID}
	if err := uc.profiles.Create(ctx, profile); err != nil {
		if !domain.IsDomainError(err, domain.ErrCodeConflict) {
			return err
		}
	}

	for _, action := range domain.DefaultQuickActions(userID) {
		action := action
		if err := uc.actions.Create(ctx, &action); err != nil {
			if errors.Is(err, domain.ErrDuplicateLabel) {
				continue
			}
			return err
		}
	}
	return nil
}

type LoginParams struct {
	Email    string
	Password string
}

// Login verifies the credential and issues a session-bound access token.
// Unknown emails and bad passwords are indistinguishable to the caller.
func (uc *UseCase) Login(ctx context.Context, params LoginParams) (*Result, error) {
	user, err := uc.users.GetByEmail(ctx, strings.TrimSpace(params.Email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, errInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(params.Password)) != nil {
		return nil, errInvalidCredentials
	}

	return uc.issue(ctx, user)
}

// Logout revokes the session referenced by the access token.
func (uc *UseCase) Logout(ctx context.Context, sessionID string) error {
	return uc.sessions.Delete(ctx, sessionID)
}

// ChangePassword replaces the stored credential after verifying the current
// one and the new password's minimum length.
func (uc *UseCase) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	errs := domain.FieldErrors{}
	if currentPassword == "" {
		errs.Add("current_password", "this field is required")
	}
	if newPassword == "" {
		errs.Add("new_password", "this field is required")
	}
	if err := errs.Err(); err != nil {
		return err
	}

	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
		errs.Add("current_password", "current password is incorrect")
		return errs
	}
	if err := domain.ValidateNewPassword(newPassword); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.users.UpdatePassword(ctx, userID, string(hash))
}

// IdentityPatch carries the optional identity fields of update_user. Nil
// means "leave unchanged".
type IdentityPatch struct {
	Email     *string
	FirstName *string
	LastName  *string
}

// UpdateIdentity applies the patch, checking email uniqueness against all
// other users before accepting a new address.
func (uc *UseCase) UpdateIdentity(ctx context.Context, userID string, patch IdentityPatch) (*domain.User, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if patch.Email != nil && *patch.Email != "" && *patch.Email != user.Email {
		taken, err := uc.users.EmailTaken(ctx, *patch.Email, userID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.ErrEmailTaken
		}
		user.Email = *patch.Email
	}
	if patch.FirstName != nil {
		user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		user.LastName = *patch.LastName
	}

	if err := uc.users.UpdateIdentity(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *UseCase) issue(ctx context.Context, user *domain.User) (*Result, error) {
	now := time.Now()
	session := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(uc.cfg.SessionTTL),
	}
	if err := uc.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":    user.ID,
		"session_id": session.ID,
		"iss":        uc.cfg.JWTIssuer,
		"iat":        now.Unix(),
		"exp":        now.Add(uc.cfg.AccessTTL).Unix(),
	})
	signed, err := token.SignedString([]byte(uc.cfg.JWTSecret))
	if err != nil {
		return nil, err
	}

	return &Result{
		User:        user,
		AccessToken: signed,
		Session:     session,
	}, nil
}
