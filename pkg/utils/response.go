package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	apperrors "turftrack/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type HTTPResponse struct {
	Status  bool        `json:"status"`
	Body    interface{} `json:"body,omitempty"`
	Message string      `json:"message"`
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int) error {
	return ctx.JSON(code, &HTTPResponse{
		Status:  true,
		Body:    body,
		Message: message,
	})
}

// ErrorResponse maps application errors onto HTTP responses. HttpError wins,
// then validator errors (400 with the first offending field), then the
// sentinel table, and anything else is a logged 500.
func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Err != nil {
			logger.Error("HTTP error",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
				zap.Any("context", httpErr.Context),
			)
		}

		response := map[string]interface{}{
			"status":  false,
			"message": httpErr.Message,
		}
		if httpErr.Details != nil {
			response["body"] = httpErr.Details
		}
		return c.JSON(httpErr.Code, response)
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		first := validationErrors[0]
		var msgs []string
		for _, e := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("field '%s' failed on rule '%s'", e.Field(), e.Tag()))
		}
		httpErr := apperrors.NewHttpError(http.StatusBadRequest,
			"validation error: "+strings.Join(msgs, "; "), nil, nil).
			WithDetails(map[string]interface{}{"field": first.Field()})
		return c.JSON(httpErr.Code, map[string]interface{}{
			"status":  false,
			"message": httpErr.Message,
			"body":    httpErr.Details,
		})
	}

	for sentinel, statusCode := range sentinelStatusCodes {
		if errors.Is(err, sentinel) {
			return c.JSON(statusCode, map[string]interface{}{
				"status":  false,
				"message": sentinel.Error(),
			})
		}
	}

	logger.Error("unexpected error", zap.Error(err))
	return c.JSON(http.StatusInternalServerError, map[string]interface{}{
		"status":  false,
		"message": "internal server error",
	})
}

var sentinelStatusCodes = map[error]int{
	apperrors.ErrNotFound:                http.StatusNotFound,
	apperrors.ErrBadRequest:              http.StatusBadRequest,
	apperrors.ErrUnauthorized:            http.StatusUnauthorized,
	apperrors.ErrForbidden:               http.StatusForbidden,
	apperrors.ErrUserIDNotFoundInContext: http.StatusUnauthorized,
	apperrors.ErrInvalidCredentials:      http.StatusUnauthorized,
	apperrors.ErrEmptyAuthHeader:         http.StatusUnauthorized,
	apperrors.ErrInvalidAuthHeader:       http.StatusUnauthorized,
	apperrors.ErrInvalidToken:            http.StatusUnauthorized,
	apperrors.ErrTokenExpired:            http.StatusUnauthorized,
	apperrors.ErrTokenIsNotRefresh:       http.StatusUnauthorized,
	apperrors.ErrTokenIsNotAccess:        http.StatusUnauthorized,
	apperrors.ErrEmailTaken:              http.StatusConflict,
	apperrors.ErrDuplicateListing:        http.StatusConflict,
	apperrors.ErrListingNotActive:        http.StatusBadRequest,
	apperrors.ErrSelfConversation:        http.StatusBadRequest,
}
