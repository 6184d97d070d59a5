package middleware

import (
	"fmt"
	"runtime/debug"

	applogger "MLService/pkg/logger"

	"github.com/labstack/echo/v4"
)

// Recover converts panics anywhere below into a handled response. The panic and
// its stack are logged in full server-side; what the caller sees is up to the
// supplied handler.
func Recover(l *applogger.Logger, handler func(c echo.Context, err error) error) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					err, ok := r.(error)
					if !ok {
						err = fmt.Errorf("%v", r)
					}
					l.Error("panic recovered",
						applogger.Error(err),
						applogger.String("stack", string(debug.Stack())),
					)
					_ = handler(c, err)
				}
			}()
			return next(c)
		}
	}
}
