package reagent_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"lab-inventory/feature/reagent"
	"lab-inventory/feature/reagent/models"
	"lab-inventory/feature/record"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db := setupDB(t)
	logger := zap.NewNop()
	feature := reagent.NewFeature(db, logger, record.NewRecorder(db, logger))

	app := fiber.New()
	api := app.Group("/api")
	assert.NoError(t, feature.Load(api))

	return app, db
}

func TestHandleStockIn(t *testing.T) {
	app, db := setupApp(t)

	t.Run("Created", func(t *testing.T) {
		body, _ := json.Marshal(stockInRequest())
		req := httptest.NewRequest("POST", "/api/reagents/in", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		var count int64
		assert.NoError(t, db.Model(&models.Reagent{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("ValidationFailure", func(t *testing.T) {
		payload := stockInRequest()
		payload.Qty = 0
		body, _ := json.Marshal(payload)
		req := httptest.NewRequest("POST", "/api/reagents/in", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("MalformedBody", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/reagents/in", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestHandleStockOut(t *testing.T) {
	app, db := setupApp(t)

	// Seed one batch through the API.
	body, _ := json.Marshal(stockInRequest())
	req := httptest.NewRequest("POST", "/api/reagents/in", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var batch models.ReagentBatch
	assert.NoError(t, db.First(&batch).Error)

	post := func(payload reagent.StockOutRequest) int {
		body, _ := json.Marshal(payload)
		req := httptest.NewRequest("POST", "/api/reagents/out", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		assert.NoError(t, err)
		return resp.StatusCode
	}

	base := reagent.StockOutRequest{
		BatchID:     batch.ID,
		ReagentName: "NaCl",
		BatchNo:     "B1",
		User:        "bob",
		Purpose:     "assay",
	}

	t.Run("UnknownBatch", func(t *testing.T) {
		payload := base
		payload.BatchID = "missing"
		payload.Amount = 10
		assert.Equal(t, fiber.StatusNotFound, post(payload))
	})

	t.Run("ExcessiveAmount", func(t *testing.T) {
		payload := base
		payload.Amount = 1000
		assert.Equal(t, fiber.StatusBadRequest, post(payload))
	})

	t.Run("Success", func(t *testing.T) {
		payload := base
		payload.Amount = 10
		assert.Equal(t, fiber.StatusOK, post(payload))
	})
}

func TestHandleListReagents(t *testing.T) {
	app, _ := setupApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/reagents/", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
