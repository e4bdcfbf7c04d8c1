package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/rowanleith/whelpline/internal/db"
	"github.com/rowanleith/whelpline/internal/services"
)

const testSecretKey = "test-secret-key-0123456789abcdef"

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	database, err := db.OpenSQLiteInMemory()
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler, err := NewHandler(database, testSecretKey, time.UTC, false, services.ForecastConfig{PreferUnified: true})
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database
}

func doJSON(t *testing.T, app *fiber.App, method string, path string, payload any, authCookie string) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode request payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")
	if authCookie != "" {
		request.AddCookie(&http.Cookie{Name: authCookieName, Value: authCookie})
	}

	response, err := app.Test(request, 10000)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func decodeJSON(t *testing.T, response *http.Response, target any) {
	t.Helper()
	defer response.Body.Close()
	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

func responseCookieValue(t *testing.T, response *http.Response, name string) string {
	t.Helper()
	for _, cookie := range response.Cookies() {
		if cookie.Name == name {
			return cookie.Value
		}
	}
	return ""
}

// registerTestUser creates an account through the API and returns its auth
// cookie value.
func registerTestUser(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	response := doJSON(t, app, http.MethodPost, "/api/auth/register", map[string]any{
		"email":    email,
		"password": "sturdy-password-1",
	}, "")
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("register returned %d", response.StatusCode)
	}

	cookie := responseCookieValue(t, response, authCookieName)
	if cookie == "" {
		t.Fatal("register did not set the auth cookie")
	}
	response.Body.Close()
	return cookie
}

func createTestDog(t *testing.T, app *fiber.App, cookie string, name string) uint {
	t.Helper()

	response := doJSON(t, app, http.MethodPost, "/api/dogs", map[string]any{
		"name":       name,
		"sex":        "female",
		"birth_date": "2022-03-01",
	}, cookie)
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("create dog returned %d", response.StatusCode)
	}

	payload := struct {
		Dog struct {
			ID uint `json:"ID"`
		} `json:"dog"`
	}{}
	decodeJSON(t, response, &payload)
	if payload.Dog.ID == 0 {
		t.Fatal("create dog returned no id")
	}
	return payload.Dog.ID
}
