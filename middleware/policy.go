package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// RouteRule maps a path prefix to an authentication requirement. The first
// matching rule wins, so more specific prefixes go first.
type RouteRule struct {
	Prefix      string
	RequireAuth bool
}

// RoutePolicy is the authorization table for the whole HTTP surface: an
// explicit, testable replacement for per-environment security wiring.
type RoutePolicy []RouteRule

// DefaultPolicy reproduces the shipped behavior: every API route is open,
// login included. The table exists so that protecting a group is a
// one-line change; whether the open /api prefix is actually intended is an
// open question inherited from the product.
func DefaultPolicy() RoutePolicy {
	return RoutePolicy{
		{Prefix: "/api/auth/login", RequireAuth: false},
		{Prefix: "/api", RequireAuth: false},
	}
}

// RuleFor returns the first rule whose prefix matches the path, and whether
// any rule matched.
func (p RoutePolicy) RuleFor(path string) (RouteRule, bool) {
	for _, rule := range p {
		if strings.HasPrefix(path, rule.Prefix) {
			return rule, true
		}
	}
	return RouteRule{}, false
}

// Enforce runs Verify for paths whose rule requires authentication and
// passes everything else through. Unmatched paths fall through as well;
// route registration decides what exists.
func (p RoutePolicy) Enforce() fiber.Handler {
	verify := Verify()
	return func(c *fiber.Ctx) error {
		rule, ok := p.RuleFor(c.Path())
		if ok && rule.RequireAuth {
			return verify(c)
		}
		return c.Next()
	}
}
