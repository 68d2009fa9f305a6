package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/masomo-lms/portal/core"
	"github.com/masomo-lms/portal/core/portal"
)

var (
	errUnauthorized  = echo.NewHTTPError(http.StatusUnauthorized, "user not authenticated")
	errHttpForbidden = echo.NewHTTPError(http.StatusForbidden, "permission denied")
	errHttpNotFound  = echo.NewHTTPError(http.StatusNotFound, "not found")
)

// newAppHTTPErrorHandler returns a custom echo.HTTPErrorHandler that knows how to handle our errors.
// Only unexpected errors (500) are logged.
func newAppHTTPErrorHandler(logger core.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		code, message := errorResponse(err)
		if code == http.StatusInternalServerError {
			msg := http.StatusText(code)
			sess, _ := getContextSession(ctx)
			logger.Error(msg, errors.Wrap(err, msg), sess, map[string]interface{}{
				"method": ctx.Request().Method,
				"path":   ctx.Path(),
			})
		}

		if ctx.Echo().Debug {
			message = err.Error()
		} else if m, ok := message.(string); ok {
			message = echo.Map{"error": m}
		}

		if ctx.Response().Committed {
			return
		}
		if ctx.Request().Method == http.MethodHead { // Issue #608
			err = ctx.NoContent(code)
		} else {
			err = ctx.JSON(code, message)
		}
		if err != nil {
			ctx.Echo().Logger.Error(err)
		}
	}
}

// errorResponse maps err to a status code and a JSON-able message.
func errorResponse(err error) (int, interface{}) {
	switch cause := errors.Cause(err).(type) {
	case *echo.HTTPError:
		if cause == middleware.ErrJWTMissing {
			return http.StatusUnauthorized, cause.Message
		}
		if herr, ok := cause.Internal.(*echo.HTTPError); ok {
			cause = herr
		}
		return cause.Code, cause.Message
	case validator.ValidationErrors:
		return http.StatusBadRequest, core.TranslateErrors(cause)
	case *core.ValidationError:
		if len(cause.Fields) == 0 {
			return http.StatusBadRequest, cause.Error()
		}
		fldErrs := make(map[string]string, len(cause.Fields))
		for _, fErr := range cause.Fields {
			fldErrs[fErr.Field] = fErr.Error
		}
		return http.StatusBadRequest, fldErrs
	}

	switch errors.Cause(err) {
	case portal.ErrNotFound:
		return http.StatusNotFound, errHttpNotFound.Message
	case portal.ErrForbidden:
		return http.StatusForbidden, errHttpForbidden.Message
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}
