package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"deliveryledger/internal/core/application/usecases/queries"
	"deliveryledger/internal/core/domain/model/kernel"
	"deliveryledger/internal/generated/servers"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// callerContextKey is the echo context key holding the resolved caller id.
const callerContextKey = "deliveryledger.caller"

// AuthMiddleware verifies the bearer token issued by the external identity
// provider and resolves its subject to a staff member. The service never
// issues tokens itself; it only consumes them.
type AuthMiddleware struct {
	secret   []byte
	resolver queries.ResolveCallerQueryHandler
	logger   *slog.Logger
}

// NewAuthMiddleware creates the authentication middleware.
func NewAuthMiddleware(
	secret []byte, resolver queries.ResolveCallerQueryHandler, logger *slog.Logger,
) AuthMiddleware {
	return AuthMiddleware{
		secret:   secret,
		resolver: resolver,
		logger:   logger,
	}
}

// Middleware returns the echo middleware function. An unknown subject gets
// 401: the token verifies but nobody in the ledger carries the account.
// Deactivated staff still authenticate; the command side refuses them per
// operation so the denial lands in the audit trail.
func (m AuthMiddleware) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			subject, err := m.verify(ctx.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, servers.Error{
					Code:    http.StatusUnauthorized,
					Message: "Invalid or missing bearer token",
				})
			}

			query, err := queries.NewResolveCallerQuery(subject)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, servers.Error{
					Code:    http.StatusUnauthorized,
					Message: "Invalid token subject",
				})
			}

			caller, err := m.resolver.Handle(ctx.Request().Context(), query)
			if err != nil {
				m.logger.Warn("caller resolution failed", "subject", subject, "error", err)
				return ctx.JSON(http.StatusUnauthorized, servers.Error{
					Code:    http.StatusUnauthorized,
					Message: "Unknown account",
				})
			}

			ctx.Set(callerContextKey, caller.StaffID)
			return next(ctx)
		}
	}
}

func (m AuthMiddleware) verify(header string) (string, error) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", fmt.Errorf("malformed authorization header")
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return "", err
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", fmt.Errorf("token carries no subject")
	}
	return subject, nil
}

// callerID extracts the resolved staff id placed by the middleware.
func callerID(ctx echo.Context) (kernel.UUID, bool) {
	id, ok := ctx.Get(callerContextKey).(kernel.UUID)
	return id, ok
}
