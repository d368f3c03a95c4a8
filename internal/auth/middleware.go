package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/solutions-kit/os-tracker/internal/domain"
)

const sessionKey = "auth_session"

// SessionMiddleware resolves the caller's session from an optional bearer
// token. Requests without a valid token proceed with an anonymous session:
// read operations stay available, and mutating operations are rejected by
// the core with a permission error rather than a transport-level 401.
type SessionMiddleware struct {
	tokens *TokenManager
}

// NewSessionMiddleware constructs middleware.
func NewSessionMiddleware(tokens *TokenManager) *SessionMiddleware {
	return &SessionMiddleware{tokens: tokens}
}

// Handle attaches the resolved session to the request context.
func (m *SessionMiddleware) Handle(c *fiber.Ctx) error {
	session := Anonymous

	if authHeader := c.Get("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			if claims, err := m.tokens.ParseToken(parts[1]); err == nil {
				switch claims.Role {
				case domain.RoleAdmin:
					session = AdminSession(c.Get("X-Actor"))
				case domain.RoleViewer:
					session = ViewerSession()
				}
			}
		}
	}

	c.Locals(sessionKey, session)
	return c.Next()
}

// SessionFromContext retrieves the caller's session, defaulting to anonymous.
func SessionFromContext(c *fiber.Ctx) Session {
	val := c.Locals(sessionKey)
	if val == nil {
		return Anonymous
	}
	session, ok := val.(Session)
	if !ok {
		return Anonymous
	}
	return session
}
