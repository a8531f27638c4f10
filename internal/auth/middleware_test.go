package auth

import (
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

func protectedApp(m *JWTManager) *fiber.App {
	app := fiber.New()
	app.Use(Middleware(m))
	app.Get("/me", func(c *fiber.Ctx) error {
		return c.SendString(strconv.FormatInt(SupplierID(c), 10))
	})
	return app
}

func TestMiddlewareNoToken(t *testing.T) {
	app := protectedApp(testManager(time.Hour))

	resp, err := app.Test(httptest.NewRequest("GET", "/me", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestMiddlewareBadFormat(t *testing.T) {
	app := protectedApp(testManager(time.Hour))

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Basic abc123")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestMiddlewareValidToken(t *testing.T) {
	m := testManager(time.Hour)
	app := protectedApp(m)

	token, err := m.Generate(42, "supplier@example.com")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	buf := make([]byte, 16)
	n, _ := resp.Body.Read(buf)
	if got := string(buf[:n]); got != "42" {
		t.Errorf("body = %q, want 42", got)
	}
}

func TestMiddlewareExpiredToken(t *testing.T) {
	expired := testManager(-time.Minute)
	app := protectedApp(expired)

	token, err := expired.Generate(1, "old@example.com")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}
