package testutil

import (
	"fmt"
	"net/http/httptest"
	"testing"

	"clinic-api/internal/api"
	"clinic-api/internal/config"
	"clinic-api/internal/domain"
	"clinic-api/internal/repository"
	repoPostgres "clinic-api/internal/repository/postgres"
	"clinic-api/internal/service"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens an in-memory SQLite database with the full schema. The gorm
// repositories are driver-agnostic, so tests run without a Postgres instance.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// cache=shared with a unique name keeps the database alive across the
	// connections gorm pools, while isolating parallel tests
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&domain.User{},
		&domain.Appointment{},
	)
	if err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return db
}

// Truncate clears all tables for test isolation.
func Truncate(t *testing.T, db *gorm.DB) {
	t.Helper()

	for _, table := range []string{"appointments", "users"} {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("warning: failed to truncate %s: %v", table, err)
		}
	}
}

// TestConfig returns a configuration suitable for testing.
func TestConfig() *config.Config {
	return &config.Config{
		Port:               "0", // Random port
		Environment:        "test",
		JWTSecret:          "test-jwt-secret-key-for-testing-only",
		JWTExpirationHours: 1,
		AuthRateLimit:      1000, // Effectively unlimited for tests
		AuthRateBurst:      1000,
	}
}

// TestServer holds all components for integration testing.
type TestServer struct {
	Server   *httptest.Server
	DB       *gorm.DB
	Repos    *repository.Repositories
	Services *service.Services
	Config   *config.Config
}

// NewTestServer creates a complete test server with all dependencies.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	db := NewTestDB(t)
	cfg := TestConfig()

	repos := repoPostgres.NewRepositories(db)
	services := service.NewServices(repos, cfg)
	router := api.NewRouter(services, cfg)

	server := httptest.NewServer(router)

	ts := &TestServer{
		Server:   server,
		DB:       db,
		Repos:    repos,
		Services: services,
		Config:   cfg,
	}

	t.Cleanup(func() {
		server.Close()
	})

	return ts
}

// URL joins the test server base URL with a path.
func (ts *TestServer) URL(path string) string {
	return ts.Server.URL + path
}
