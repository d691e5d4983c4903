package server

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/zshield/zshield-api/internal/apperr"
)

// ResponseMeta accompanies every API response.
type ResponseMeta struct {
	Timestamp time.Time `json:"timestamp"`
}

// SuccessResponse is the uniform success envelope.
type SuccessResponse struct {
	Success bool         `json:"success"`
	Data    any          `json:"data"`
	Meta    ResponseMeta `json:"meta"`
}

// ErrorBody is the error payload inside the failure envelope.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorResponse is the uniform failure envelope.
type ErrorResponse struct {
	Success bool         `json:"success"`
	Error   ErrorBody    `json:"error"`
	Meta    ResponseMeta `json:"meta"`
}

// ok writes a 200 success envelope.
func ok(c echo.Context, data any) error {
	return okStatus(c, http.StatusOK, data)
}

// okStatus writes a success envelope with an explicit status.
func okStatus(c echo.Context, status int, data any) error {
	return c.JSON(status, SuccessResponse{
		Success: true,
		Data:    data,
		Meta:    ResponseMeta{Timestamp: time.Now().UTC()},
	})
}

// errorEnvelope builds the failure envelope for an application error.
func errorEnvelope(appErr *apperr.Error) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Error: ErrorBody{
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: appErr.Details,
		},
		Meta: ResponseMeta{Timestamp: time.Now().UTC()},
	}
}

// ErrorHandler returns the echo error handler converting any escaped error
// into the uniform envelope. Typed application errors keep their status
// and code; echo HTTP errors map onto generic codes; everything else is
// downgraded to UNKNOWN_ERROR/500.
func ErrorHandler(logger logrus.FieldLogger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var appErr *apperr.Error
		if he, okCast := err.(*echo.HTTPError); okCast {
			code := apperr.CodeInternal
			switch he.Code {
			case http.StatusNotFound:
				code = apperr.CodeNotFound
			case http.StatusBadRequest:
				code = apperr.CodeValidation
			}
			appErr = apperr.New(code, http.StatusText(he.Code), he.Code)
		} else {
			appErr = apperr.From(err)
		}

		if appErr.Operational {
			logger.Warnf("api error: %s (%s)", appErr.Message, appErr.Code)
		} else {
			logger.WithError(err).Errorf("api error: %s", appErr.Message)
		}

		_ = c.JSON(appErr.Status, errorEnvelope(appErr))
	}
}
