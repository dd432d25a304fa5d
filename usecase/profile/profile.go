package profile

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/taskdeck/backend/domain"
	"github.com/taskdeck/backend/internal/infrastructure/blob"
	"github.com/taskdeck/backend/repository"
)

type UseCase struct {
	profiles  repository.ProfileRepository
	users     repository.UserRepository
	photos    *blob.Store
	maxUpload int
	logger    *zap.Logger
}

func New(
	profiles repository.ProfileRepository,
	users repository.UserRepository,
	photos *blob.Store,
	maxUploadBytes int,
	logger *zap.Logger,
) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxUploadBytes <= 0 {
		maxUploadBytes = 2 << 20
	}
	return &UseCase{
		profiles:  profiles,
		users:     users,
		photos:    photos,
		maxUpload: maxUploadBytes,
		logger:    logger,
	}
}

// Get returns the caller's profile and its owning user, creating the profile
// lazily for accounts that predate provisioning.
func (uc *UseCase) Get(ctx context.Context, userID string) (*domain.Profile, *domain.User, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	profile, err := uc.getOrCreate(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return profile, user, nil
}

// Patch carries partial profile changes; nil fields are left unchanged.
type Patch struct {
	DisplayName *string
	Bio         *string
}

// Update applies the patch to the caller's profile.
func (uc *UseCase) Update(ctx context.Context, userID string, patch Patch) (*domain.Profile, *domain.User, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	profile, err := uc.getOrCreate(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	if patch.DisplayName != nil {
		profile.DisplayName = *patch.DisplayName
	}
	if patch.Bio != nil {
		profile.Bio = *patch.Bio
	}

	if err := profile.Validate(); err != nil {
		return nil, nil, err
	}
	if err := uc.profiles.Update(ctx, profile); err != nil {
		return nil, nil, err
	}
	return profile, user, nil
}

// UploadPhoto stores the image in the blob store and points the profile at
// it, replacing any previous photo.
func (uc *UseCase) UploadPhoto(ctx context.Context, userID, contentType string, data []byte) (*domain.Profile, error) {
	errs := domain.FieldErrors{}
	if len(data) == 0 {
		errs.Add("profile_photo", "no file was submitted")
	} else if len(data) > uc.maxUpload {
		errs.Add("profile_photo", "uploaded file exceeds the size limit")
	}
	if contentType != "" && !strings.HasPrefix(contentType, "image/") {
		errs.Add("profile_photo", "uploaded file is not an image")
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	profile, err := uc.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	key := uuid.NewString()
	if err := uc.photos.Put(key, blob.Object{ContentType: contentType, Data: data}); err != nil {
		return nil, err
	}

	previous := profile.PhotoKey
	profile.PhotoKey = key
	if err := uc.profiles.Update(ctx, profile); err != nil {
		// Keep the store consistent with the row we failed to update.
		if delErr := uc.photos.Delete(key); delErr != nil {
			uc.logger.Warn("orphaned photo blob", zap.String("key", key), zap.Error(delErr))
		}
		return nil, err
	}

	if previous != "" {
		if err := uc.photos.Delete(previous); err != nil {
			uc.logger.Warn("failed to delete replaced photo", zap.String("key", previous), zap.Error(err))
		}
	}
	return profile, nil
}

// Photo returns the caller's stored profile photo.
func (uc *UseCase) Photo(ctx context.Context, userID string) (*blob.Object, error) {
	profile, err := uc.profiles.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile.PhotoKey == "" {
		return nil, domain.ErrPhotoNotFound
	}
	return uc.photos.Get(profile.PhotoKey)
}

func (uc *UseCase) getOrCreate(ctx context.Context, userID string) (*domain.Profile, error) {
	profile, err := uc.profiles.GetByUser(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !domain.IsDomainError(err, domain.ErrCodeNotFound) {
		return nil, err
	}

	profile = &domain.Profile{UserID: userID}
	if createErr := uc.profiles.Create(ctx, profile); createErr != nil {
		// Lost a race with a concurrent create; the row exists now.
		if domain.IsDomainError(createErr, domain.ErrCodeConflict) {
			return uc.profiles.GetByUser(ctx, userID)
		}
		return nil, createErr
	}
	return profile, nil
}
