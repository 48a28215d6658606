package reviewValidators

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Post("/reviews", CreateReview(), func(c *fiber.Ctx) error {
		req := c.Locals(ValidatedReviewKey).(*CreateReviewRequest)
		return c.JSON(fiber.Map{"text": *req.Text})
	})
	app.Get("/reviews", ListReviews(), func(c *fiber.Ctx) error {
		req := c.Locals(ValidatedListKey).(*ListReviewsRequest)
		return c.JSON(fiber.Map{"sentiment": req.Sentiment})
	})
	return app
}

func post(t *testing.T, app *fiber.App, body, contentType string) (int, map[string]string) {
	t.Helper()
	req := httptest.NewRequest("POST", "/reviews", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)

	var out map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestCreateReview(t *testing.T) {
	app := newTestApp()

	tests := []struct {
		name        string
		body        string
		contentType string
		wantStatus  int
	}{
		{"text present", `{"text":"Это хорошо"}`, fiber.MIMEApplicationJSON, fiber.StatusOK},
		{"empty text accepted", `{"text":""}`, fiber.MIMEApplicationJSON, fiber.StatusOK},
		{"charset suffix", `{"text":"x"}`, "application/json; charset=utf-8", fiber.StatusOK},
		{"missing text", `{}`, fiber.MIMEApplicationJSON, fiber.StatusBadRequest},
		{"null text", `{"text":null}`, fiber.MIMEApplicationJSON, fiber.StatusBadRequest},
		{"other field", `{"body":"Это хорошо"}`, fiber.MIMEApplicationJSON, fiber.StatusBadRequest},
		{"malformed", `{"text":`, fiber.MIMEApplicationJSON, fiber.StatusBadRequest},
		{"json null", `null`, fiber.MIMEApplicationJSON, fiber.StatusBadRequest},
		{"no content type", `{"text":"x"}`, "", fiber.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := post(t, app, tt.body, tt.contentType)
			assert.Equal(t, tt.wantStatus, status)
			if tt.wantStatus == fiber.StatusBadRequest {
				assert.Equal(t, MissingTextMessage, body["error"])
			}
		})
	}
}

func TestListReviews(t *testing.T) {
	app := newTestApp()

	for query, want := range map[string]string{
		"/reviews":                    "",
		"/reviews?sentiment=positive": "positive",
		"/reviews?sentiment=whatever": "whatever",
	} {
		resp, err := app.Test(httptest.NewRequest("GET", query, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var out map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.Equal(t, want, out["sentiment"], query)
	}
}
