package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"construction-marketplace/internal/marketerrors"
	"construction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

// accountKey is the gin context key carrying the authenticated caller account
const accountKey = "caller_account"

// SetCallerAccount stores the verified caller account on the request context
func SetCallerAccount(c *gin.Context, account string) {
	c.Set(accountKey, account)
}

// CallerAccount returns the account stored by the auth middleware, or ""
// when the route is unauthenticated.
func CallerAccount(c *gin.Context) string {
	account, _ := c.Get(accountKey)
	s, _ := account.(string)
	return s
}

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// ParseIDParam parses a numeric path parameter
func ParseIDParam(c *gin.Context, name string) (uint64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, raw, err)
	}
	return id, nil
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, marketerrors.ErrProjectNotFound):
		return http.StatusNotFound, "project not found"
	case errors.Is(err, marketerrors.ErrBidNotFound):
		return http.StatusNotFound, "bid not found"
	case errors.Is(err, marketerrors.ErrUnauthorized):
		return http.StatusForbidden, "caller is not authorized"
	case errors.Is(err, marketerrors.ErrEmergencyStopped):
		return http.StatusServiceUnavailable, "marketplace is emergency stopped"
	case errors.Is(err, marketerrors.ErrProjectNotActive):
		return http.StatusConflict, "project is not active"
	case errors.Is(err, marketerrors.ErrInsufficientFunds):
		return http.StatusPaymentRequired, "escrowed value must equal bid amount"
	case errors.Is(err, marketerrors.ErrInvalidMilestoneIndex):
		return http.StatusBadRequest, "milestone index out of range"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
