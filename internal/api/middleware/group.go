package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/famgift/exchange-system/internal/core/domain"
	"github.com/famgift/exchange-system/internal/core/ports"
)

// GroupAccess rejects sessions whose group no longer exists in the roster.
// A token stays syntactically valid until it expires, but the group behind
// it may have been retired from configuration in the meantime.
func GroupAccess(groups ports.GroupSource) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			groupID, _ := c.Get("group_id").(string)
			if groupID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "token missing group identity")
			}

			if _, err := groups.GroupByID(groupID); err != nil {
				if errors.Is(err, domain.ErrGroupNotFound) {
					return c.JSON(http.StatusForbidden, map[string]string{"error": "group no longer configured"})
				}
				return err
			}
			return next(c)
		}
	}
}
