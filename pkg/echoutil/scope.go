package echoutil

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ActorHeader carries the acting user's id, set by the gateway in front.
const ActorHeader = "X-Zbi-Actor"

// Scope is the per-request fact sheet threaded into every store call:
// who acts, under which request id, started when.
type Scope struct {
	RequestId string
	Actor     string
	Start     time.Time
}

type scopeKey struct{}

// WithScope stamps a Scope into the request context. The request id is
// taken from the X-Request-Id header when the caller sent one, minted
// fresh otherwise. Install this before LogHandlerFunc so the log lines
// carry the scope.
func WithScope() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			requestId := req.Header.Get(echo.HeaderXRequestID)
			if requestId == "" {
				requestId = uuid.NewString()
			}
			scope := Scope{
				RequestId: requestId,
				Actor:     req.Header.Get(ActorHeader),
				Start:     time.Now(),
			}

			ctx := context.WithValue(req.Context(), scopeKey{}, scope)
			c.SetRequest(req.WithContext(ctx))
			return next(c)
		}
	}
}

// ScopeOf returns the Scope stamped by WithScope, or the zero Scope
// when the middleware is not installed.
func ScopeOf(ctx context.Context) Scope {
	scope, _ := ctx.Value(scopeKey{}).(Scope)
	return scope
}
