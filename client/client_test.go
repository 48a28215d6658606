package client

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"path/filepath"
	"testing"

	"reviews/config"
	"reviews/database"
	"reviews/models"
	"reviews/routers"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func startServer(t *testing.T) string {
	t.Helper()
	cfg := &config.Config{
		DBDriver:    "sqlite",
		DBName:      filepath.Join(t.TempDir(), "reviews.db"),
		LogLevel:    "error",
		AppEnv:      "development",
		CORSOrigins: "*",
	}

	store, err := database.Open(cfg, zap.NewNop())
	require.NoError(t, err)

	app := routers.NewApp(routers.Options{
		Config:    cfg,
		Logger:    zap.NewNop(),
		Store:     store,
		AccessLog: io.Discard,
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go app.Listener(ln)

	t.Cleanup(func() {
		app.Shutdown()
		store.Close()
	})
	return "http://" + ln.Addr().String()
}

func TestCreateAndList(t *testing.T) {
	ctx := context.Background()
	c := New(startServer(t))

	good, err := c.Create(ctx, "Мне очень нравится")
	require.NoError(t, err)
	assert.Equal(t, models.SentimentPositive, good.Sentiment)
	assert.NotZero(t, good.ID)
	assert.NotEmpty(t, good.CreatedAt)

	bad, err := c.Create(ctx, "Ненавижу это")
	require.NoError(t, err)
	assert.Equal(t, models.SentimentNegative, bad.Sentiment)
	assert.Greater(t, bad.ID, good.ID)

	all, err := c.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []models.Review{*good, *bad}, all)

	negative, err := c.List(ctx, "negative")
	require.NoError(t, err)
	assert.Equal(t, []models.Review{*bad}, negative)

	neutral, err := c.List(ctx, "neutral")
	require.NoError(t, err)
	assert.Empty(t, neutral)
}

func TestAPIError(t *testing.T) {
	c := New(startServer(t))

	resp, err := c.http.R().
		SetHeader(fiber.HeaderContentType, fiber.MIMEApplicationJSON).
		SetBody(`{}`).
		SetError(&errorBody{}).
		Post("/reviews")
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode())

	var apiErr *APIError
	require.True(t, errors.As(apiError(resp), &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Missing 'text' in request body", apiErr.Message)
}
