package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"menucraft/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile with this email already exists")
)

// ProfileRepository defines the interface for profile data access
type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	FindByAuthUserID(ctx context.Context, authUserID string) (*domain.Profile, error)
	FindLegacyByEmail(ctx context.Context, email string) (*domain.Profile, error)
	LinkAuthUser(ctx context.Context, id uuid.UUID, authUserID string) error
}

type profileRepository struct {
	db *sql.DB
}

// NewProfileRepository creates a new instance of ProfileRepository
func NewProfileRepository(db *sql.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// Create inserts a new profile into the database using parameterized queries
func (r *profileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (id, auth_user_id, email, full_name, avatar_url, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		profile.ID,
		profile.AuthUserID,
		profile.Email,
		profile.FullName,
		profile.AvatarURL,
		profile.Role,
		profile.CreatedAt,
		profile.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err, "profiles_email_key") {
			return ErrProfileAlreadyExists
		}
		return fmt.Errorf("failed to create profile: %w", err)
	}

	return nil
}

// FindByID retrieves a profile by ID using parameterized queries
func (r *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	query := `
		SELECT id, auth_user_id, email, full_name, avatar_url, role, created_at, updated_at
		FROM profiles
		WHERE id = $1
	`

	return r.findOne(ctx, query, id)
}

// FindByAuthUserID retrieves a profile by its identity-provider subject
func (r *profileRepository) FindByAuthUserID(ctx context.Context, authUserID string) (*domain.Profile, error) {
	query := `
		SELECT id, auth_user_id, email, full_name, avatar_url, role, created_at, updated_at
		FROM profiles
		WHERE auth_user_id = $1
	`

	return r.findOne(ctx, query, authUserID)
}

// FindLegacyByEmail retrieves a pre-migration profile that has not yet been
// linked to an identity-provider subject.
func (r *profileRepository) FindLegacyByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	query := `
		SELECT id, auth_user_id, email, full_name, avatar_url, role, created_at, updated_at
		FROM profiles
		WHERE email = $1 AND auth_user_id IS NULL
	`

	return r.findOne(ctx, query, email)
}

// LinkAuthUser attaches an identity-provider subject to an existing profile
func (r *profileRepository) LinkAuthUser(ctx context.Context, id uuid.UUID, authUserID string) error {
	query := `UPDATE profiles SET auth_user_id = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, authUserID)
	if err != nil {
		return fmt.Errorf("failed to link auth user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrProfileNotFound
	}

	return nil
}

func (r *profileRepository) findOne(ctx context.Context, query string, arg interface{}) (*domain.Profile, error) {
	profile := &domain.Profile{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&profile.ID,
		&profile.AuthUserID,
		&profile.Email,
		&profile.FullName,
		&profile.AvatarURL,
		&profile.Role,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}

	return profile, nil
}
