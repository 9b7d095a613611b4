package middlewares

import (
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"techforge-backend/database"
	"techforge-backend/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupIdempotencyDB(t *testing.T) {
	t.Helper()
	// A named in-memory database per test keeps stored keys isolated while
	// letting GORM's pool share the single underlying instance.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.IdempotencyKey{}))

	prev := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = prev })
}

func newIdempotencyApp(calls *int) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userID", "user-1")
		return c.Next()
	})
	app.Use(Idempotency())
	app.Post("/api/project", func(c *fiber.Ctx) error {
		*calls++
		return c.JSON(fiber.Map{"call": *calls})
	})
	return app
}

func postProject(t *testing.T, app *fiber.App, key, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, "/api/project", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if key != "" {
		req.Header.Set("Idempotency-Key", key)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(raw)
}

func TestIdempotencyReplaysStoredResponse(t *testing.T) {
	setupIdempotencyDB(t)
	calls := 0
	app := newIdempotencyApp(&calls)

	status1, body1 := postProject(t, app, "key-1", `{"name":"Gudang"}`)
	status2, body2 := postProject(t, app, "key-1", `{"name":"Gudang"}`)

	assert.Equal(t, 1, calls, "handler must run once per key")
	assert.Equal(t, status1, status2)
	assert.Equal(t, body1, body2, "replay must return the stored body verbatim")
}

func TestIdempotencyRejectsKeyReuseWithDifferentRequest(t *testing.T) {
	setupIdempotencyDB(t)
	calls := 0
	app := newIdempotencyApp(&calls)

	postProject(t, app, "key-1", `{"name":"Gudang"}`)
	status, _ := postProject(t, app, "key-1", `{"name":"Kantor"}`)

	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, 1, calls)
}

func TestIdempotencyWithoutKeyRunsEveryTime(t *testing.T) {
	setupIdempotencyDB(t)
	calls := 0
	app := newIdempotencyApp(&calls)

	postProject(t, app, "", `{"name":"Gudang"}`)
	postProject(t, app, "", `{"name":"Gudang"}`)

	assert.Equal(t, 2, calls)
}
