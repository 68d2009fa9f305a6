package echoapi

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// instructorMiddleware only lets instructors and admins through.
func instructorMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			sess, err := getContextSession(ctx)
			if err != nil {
				return errors.Wrap(err, "getting context session")
			}
			if sess.IsInstructor() {
				return next(ctx)
			}
			return errHttpForbidden
		}
	}
}
