package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxSession extracts the session claims injected by the Auth middleware
// and fast-fails before any service call: both identities must be present,
// otherwise the token is structurally valid but operationally unusable.
func ctxSession(c echo.Context) (username, groupID string, err error) {
	username, _ = c.Get("username").(string)
	if username == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	groupID, _ = c.Get("group_id").(string)
	if groupID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "token missing group identity")
	}

	return username, groupID, nil
}
