package echoapi

import (
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/scolarite/core"
)

var (
	errHttpNotFound = echo.NewHTTPError(http.StatusNotFound, "not found")
)

// newAppHTTPErrorHandler returns the echo.HTTPErrorHandler of the API.
// Bad input gets a 400 with a {field: message} body; unexpected errors are logged and answered with a 500.
// signalShutdown is called when the error asks for the Server to stop (see core.IsShutdown).
func newAppHTTPErrorHandler(logger core.Logger, translator ut.Translator, signalShutdown func()) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		code, body, known := errorResponse(err, translator)
		if !known {
			logger.Error(http.StatusText(code), err, map[string]interface{}{
				"method": ctx.Request().Method,
				"path":   ctx.Path(),
			})
			if core.IsShutdown(err) {
				signalShutdown()
			}
		}

		if ctx.Echo().Debug {
			body = err.Error()
		}
		if msg, ok := body.(string); ok {
			body = echo.Map{"error": msg}
		}
		if ctx.Response().Committed {
			return
		}

		var sendErr error
		if ctx.Request().Method == http.MethodHead {
			sendErr = ctx.NoContent(code)
		} else {
			sendErr = ctx.JSON(code, body)
		}
		if sendErr != nil {
			ctx.Echo().Logger.Error(sendErr)
		}
	}
}

// errorResponse maps err to a status code and a response body: a message or a field map.
// known is false for errors the API does not expect, which are all 500s.
func errorResponse(err error, translator ut.Translator) (code int, body interface{}, known bool) {
	switch cause := errors.Cause(err).(type) {
	case *echo.HTTPError:
		if inner, ok := cause.Internal.(*echo.HTTPError); ok {
			cause = inner
		}
		return cause.Code, cause.Message, true

	case validator.ValidationErrors:
		flds := make(map[string]string, len(cause))
		for _, fe := range cause {
			flds[fe.Field()] = fe.Translate(translator)
		}
		return http.StatusBadRequest, flds, true

	case *core.ValidationError:
		if flds := cause.FieldMap(); flds != nil {
			return http.StatusBadRequest, flds, true
		}
		return http.StatusBadRequest, cause.Error(), true
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), false
}
