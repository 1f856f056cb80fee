package middleware

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestDefaultPolicyAdmitsAPIRoutes(t *testing.T) {
	policy := DefaultPolicy()

	for _, path := range []string{
		"/api/auth/login",
		"/api/utenti",
		"/api/veicoli/disponibili",
		"/api/database/reset-movimento-sequence",
	} {
		rule, ok := policy.RuleFor(path)
		if !ok {
			t.Fatalf("no rule for %s", path)
		}
		if rule.RequireAuth {
			t.Fatalf("shipped policy must admit %s unauthenticated", path)
		}
	}
}

func TestRuleForPrefersFirstMatch(t *testing.T) {
	policy := RoutePolicy{
		{Prefix: "/api/database", RequireAuth: true},
		{Prefix: "/api", RequireAuth: false},
	}

	rule, ok := policy.RuleFor("/api/database/reset-movimento-sequence")
	if !ok || !rule.RequireAuth {
		t.Fatalf("expected the specific prefix to win, got %+v", rule)
	}

	rule, ok = policy.RuleFor("/api/utenti")
	if !ok || rule.RequireAuth {
		t.Fatalf("expected the catch-all prefix, got %+v", rule)
	}
}

func TestEnforceBlocksProtectedPrefixWithoutSession(t *testing.T) {
	policy := RoutePolicy{
		{Prefix: "/api/database", RequireAuth: true},
		{Prefix: "/api", RequireAuth: false},
	}

	app := fiber.New()
	app.Use(policy.Enforce())
	app.Get("/api/database/reset-movimento-sequence", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/api/utenti", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	req, _ := http.NewRequest(http.MethodGet, "/api/database/reset-movimento-sequence", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session cookie, got %d", resp.StatusCode)
	}

	req, _ = http.NewRequest(http.MethodGet, "/api/utenti", nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected open route to pass, got %d", resp.StatusCode)
	}
}
