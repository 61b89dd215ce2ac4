package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"trivia-api/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePage(t *testing.T) {
	vm := middleware.NewValidationMiddleware()
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Get("/questions", vm.ValidatePage(), func(c *fiber.Ctx) error {
		return c.SendString(strconv.Itoa(middleware.PageFrom(c)))
	})

	tests := []struct {
		query  string
		status int
		body   string
	}{
		{"", http.StatusOK, "1"},
		{"?page=3", http.StatusOK, "3"},
		{"?page=0", http.StatusBadRequest, ""},
		{"?page=abc", http.StatusBadRequest, ""},
	}

	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/questions"+tc.query, nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tc.status, resp.StatusCode)
			if tc.body != "" {
				body, _ := io.ReadAll(resp.Body)
				assert.Equal(t, tc.body, string(body))
			}
		})
	}
}

func TestValidateIDParam(t *testing.T) {
	vm := middleware.NewValidationMiddleware()
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Delete("/questions/:id", vm.ValidateIDParam(), func(c *fiber.Ctx) error {
		return c.SendString(middleware.IDFrom(c))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/questions/01HZX3V9K6Q2W8E5R7T1Y4U0PA", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "01HZX3V9K6Q2W8E5R7T1Y4U0PA", string(body))

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/questions/bad$id", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
