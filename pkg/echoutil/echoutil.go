package echoutil

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// SetLevel sets the echo logger level from its string expression.
// Unknown expressions fall back to info.
func SetLevel(e *echo.Echo, loglevel string) {
	switch strings.ToLower(loglevel) {
	case "debug":
		e.Logger.SetLevel(log.DEBUG)
	case "warn":
		e.Logger.SetLevel(log.WARN)
	case "error":
		e.Logger.SetLevel(log.ERROR)
	case "off":
		e.Logger.SetLevel(log.OFF)
	default:
		e.Logger.SetLevel(log.INFO)
	}
}

// LogHandlerFunc logs each request line and its response status,
// tagged with the request scope stamped by WithScope.
func LogHandlerFunc(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		scope := ScopeOf(req.Context())
		c.Logger().Infof(
			"accept: [%s] %s %s (actor: %q)",
			scope.RequestId, req.Method, req.RequestURI, scope.Actor,
		)

		err := next(c)

		elapsed := time.Duration(0)
		if !scope.Start.IsZero() {
			elapsed = time.Since(scope.Start)
		}
		if err != nil {
			c.Logger().Warnf(
				"respond: [%s] %s %s --> error: %s (in %s)",
				scope.RequestId, req.Method, req.RequestURI, err, elapsed,
			)
		} else {
			c.Logger().Infof(
				"respond: [%s] %s %s --> %d (in %s)",
				scope.RequestId, req.Method, req.RequestURI, c.Response().Status, elapsed,
			)
		}
		return err
	}
}
