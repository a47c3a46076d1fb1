package repository

import (
	"context"
	"database/sql"
	"log"
	"testing"
	"time"

	"menucraft/internal/domain"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	_ "github.com/jackc/pgx/v5/stdlib"
)

var testDB *sql.DB

func setupTestDB() (func(context.Context, ...testcontainers.TerminateOption) error, error) {
	var (
		dbName = "testdb"
		dbPwd  = "password"
		dbUser = "user"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:15",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		return nil, err
	}

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), "5432/tcp")
	if err != nil {
		return dbContainer.Terminate, err
	}

	connStr := "postgres://" + dbUser + ":" + dbPwd + "@" + dbHost + ":" + dbPort.Port() + "/" + dbName + "?sslmode=disable"
	testDB, err = sql.Open("pgx", connStr)
	if err != nil {
		return dbContainer.Terminate, err
	}

	// Apply the real schema so tests exercise the same DDL production runs
	if err := goose.SetDialect("postgres"); err != nil {
		return dbContainer.Terminate, err
	}
	if err := goose.Up(testDB, "../../migrations"); err != nil {
		return dbContainer.Terminate, err
	}

	return dbContainer.Terminate, nil
}

func TestMain(m *testing.M) {
	teardown, err := setupTestDB()
	if err != nil {
		log.Fatalf("could not start postgres container: %v", err)
	}

	m.Run()

	if teardown != nil {
		if err := teardown(context.Background()); err != nil {
			log.Fatalf("could not teardown postgres container: %v", err)
		}
	}
}

// createTestProfile inserts a profile to own test fixtures. Each caller gets
// a distinct email to avoid tripping the unique constraint across tests.
func createTestProfile(t *testing.T) *domain.Profile {
	t.Helper()

	repo := NewProfileRepository(testDB)
	authUserID := "auth|" + uuid.New().String()
	profile := &domain.Profile{
		ID:         uuid.New(),
		AuthUserID: &authUserID,
		Email:      uuid.New().String() + "@example.com",
		Role:       "owner",
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := repo.Create(context.Background(), profile); err != nil {
		t.Fatalf("Failed to create test profile: %v", err)
	}

	return profile
}

// createTestBusiness inserts a business owned by the given profile
func createTestBusiness(t *testing.T, profileID uuid.UUID) *domain.Business {
	t.Helper()

	repo := NewBusinessRepository(testDB)
	business := &domain.Business{
		ID:           uuid.New(),
		ProfileID:    profileID,
		Name:         "Test Business",
		Slug:         "test-business-" + uuid.New().String()[:8],
		BusinessType: domain.BusinessTypeRestaurant,
		Currency:     "USD",
		IsActive:     true,
		IsPublished:  false,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := repo.Create(context.Background(), business); err != nil {
		t.Fatalf("Failed to create test business: %v", err)
	}

	return business
}

// createTestCategory inserts a category under the given business
func createTestCategory(t *testing.T, businessID uuid.UUID, name string, sortOrder int) *domain.Category {
	t.Helper()

	repo := NewCategoryRepository(testDB)
	category := &domain.Category{
		ID:         uuid.New(),
		BusinessID: businessID,
		Name:       name,
		SortOrder:  sortOrder,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := repo.Create(context.Background(), category); err != nil {
		t.Fatalf("Failed to create test category: %v", err)
	}

	return category
}
