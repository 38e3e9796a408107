package middleware

import (
	"context"
	"log/slog"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"
	"github.com/google/uuid"
)

const (
	localsShopper  = "shopper"
	sessionVisitor = "visitor_id"
)

// TokenVerifier verifies raw OIDC ID tokens. *oidc.IDTokenVerifier satisfies it.
type TokenVerifier interface {
	Verify(ctx context.Context, rawIDToken string) (*oidc.IDToken, error)
}

// NewOIDCVerifier discovers the issuer and returns a verifier for clientID.
func NewOIDCVerifier(ctx context.Context, issuer, clientID string) (*oidc.IDTokenVerifier, error) {
	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, err
	}
	return provider.Verifier(&oidc.Config{ClientID: clientID}), nil
}

// ShopperMiddleware identifies the shopper making each request.
type ShopperMiddleware struct {
	verifier TokenVerifier
}

// NewShopperMiddleware creates the middleware. A nil verifier means every
// shopper is an anonymous visitor.
func NewShopperMiddleware(verifier TokenVerifier) *ShopperMiddleware {
	return &ShopperMiddleware{verifier: verifier}
}

// Identify stores the shopper id in the request locals. A verified bearer ID
// token gives "sub:<subject>"; anything else gives "visitor:<uuid>" with the
// uuid kept in the session.
func (m *ShopperMiddleware) Identify(c fiber.Ctx) error {
	if id, ok := m.fromBearer(c); ok {
		c.Locals(localsShopper, id)
		return c.Next()
	}

	sess := session.FromContext(c)
	if sess == nil {
		c.Locals(localsShopper, "visitor:"+uuid.NewString())
		return c.Next()
	}

	visitor, _ := sess.Get(sessionVisitor).(string)
	if visitor == "" {
		visitor = uuid.NewString()
		sess.Set(sessionVisitor, visitor)
	}
	c.Locals(localsShopper, "visitor:"+visitor)
	return c.Next()
}

func (m *ShopperMiddleware) fromBearer(c fiber.Ctx) (string, bool) {
	if m.verifier == nil {
		return "", false
	}
	auth := c.Get(fiber.HeaderAuthorization)
	raw, found := strings.CutPrefix(auth, "Bearer ")
	if !found || raw == "" {
		return "", false
	}

	token, err := m.verifier.Verify(c.Context(), raw)
	if err != nil {
		slog.Debug("bearer token rejected, using visitor identity", "error", err)
		return "", false
	}
	if token.Subject == "" {
		return "", false
	}
	return "sub:" + token.Subject, true
}

// Shopper returns the shopper id set by Identify, or "" when the middleware
// did not run.
func Shopper(c fiber.Ctx) string {
	id, _ := c.Locals(localsShopper).(string)
	return id
}
