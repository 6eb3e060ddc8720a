package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"traderhub-be/internal/repository/unitofwork"
	"traderhub-be/pkg/database"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.AcquiredPlanRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	// Verify Data Access (implies columns exist)
	t.Run("Check Profile Repository", func(t *testing.T) {
		count, err := uow.ProfileRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Profile count: %d", count)
	})

	t.Run("Check Request Repository", func(t *testing.T) {
		count, err := uow.RequestRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Request count: %d", count)
	})

	t.Run("Check History Repository", func(t *testing.T) {
		count, err := uow.HistoryRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("History count: %d", count)
	})

	t.Run("Check System Log Repository", func(t *testing.T) {
		count, err := uow.SystemLogRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("System log count: %d", count)
	})
}

func TestTransactionRollback(t *testing.T) {
	godotenv.Load("../../.env")

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	err = uow.Begin(context.Background())
	assert.NoError(t, err)

	// Double begin must fail
	err = uow.Begin(context.Background())
	assert.Error(t, err)

	err = uow.Rollback()
	assert.NoError(t, err)
}
