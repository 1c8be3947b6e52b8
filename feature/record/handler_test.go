package record_test

import (
	"net/http/httptest"
	"testing"

	"lab-inventory/feature/record"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupMockDB creates a mock GORM DB for testing error paths.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func setupApp(t *testing.T, db *gorm.DB) *fiber.App {
	t.Helper()

	feature := record.NewFeature(db, zap.NewNop(), nil, "")
	app := fiber.New()
	api := app.Group("/api")
	assert.NoError(t, feature.Load(api))
	return app
}

func TestHandleListRecords(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		db := setupDB(t)
		seedRecords(t, db, 2)
		app := setupApp(t, db)

		resp, err := app.Test(httptest.NewRequest("GET", "/api/records/", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("StoreError", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery("SELECT").WillReturnError(sqlmock.ErrCancelled)
		app := setupApp(t, db)

		resp, err := app.Test(httptest.NewRequest("GET", "/api/records/", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	})
}

func TestHandleExportRecords(t *testing.T) {
	db := setupDB(t)
	seedRecords(t, db, 1)
	app := setupApp(t, db)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/records/export", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "records-")
}
