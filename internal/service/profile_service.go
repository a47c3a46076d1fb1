package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"menucraft/internal/domain"
	"menucraft/internal/repository"

	"github.com/google/uuid"
)

// DefaultProfileRole is assigned to profiles provisioned on first login
const DefaultProfileRole = "owner"

// ProfileService resolves the verified identity-provider subject of a
// request into a local profile, provisioning one when necessary.
type ProfileService interface {
	// EnsureProfile returns the profile for the given identity-provider
	// subject. Resolution order: an already-linked profile, then a legacy
	// profile matched by email (which gets linked), then a freshly created
	// one.
	EnsureProfile(ctx context.Context, authUserID, email string, fullName, avatarURL *string) (*domain.Profile, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
}

type profileService struct {
	profiles repository.ProfileRepository
}

// NewProfileService creates a new instance of ProfileService
func NewProfileService(profiles repository.ProfileRepository) ProfileService {
	return &profileService{profiles: profiles}
}

func (s *profileService) EnsureProfile(ctx context.Context, authUserID, email string, fullName, avatarURL *string) (*domain.Profile, error) {
	profile, err := s.profiles.FindByAuthUserID(ctx, authUserID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, fmt.Errorf("failed to look up profile: %w", err)
	}

	// Adopt a pre-migration profile that matches by email
	if email != "" {
		legacy, err := s.profiles.FindLegacyByEmail(ctx, email)
		if err == nil {
			if err := s.profiles.LinkAuthUser(ctx, legacy.ID, authUserID); err != nil {
				return nil, fmt.Errorf("failed to adopt legacy profile: %w", err)
			}
			legacy.AuthUserID = &authUserID
			return legacy, nil
		}
		if !errors.Is(err, repository.ErrProfileNotFound) {
			return nil, fmt.Errorf("failed to look up legacy profile: %w", err)
		}
	}

	now := time.Now()
	profile = &domain.Profile{
		ID:         uuid.New(),
		AuthUserID: &authUserID,
		Email:      email,
		FullName:   fullName,
		AvatarURL:  avatarURL,
		Role:       DefaultProfileRole,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.profiles.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to provision profile: %w", err)
	}

	return profile, nil
}

func (s *profileService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	profile, err := s.profiles.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}
