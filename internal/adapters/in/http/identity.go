package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// CustomerIDHeader carries the authenticated customer id.
const CustomerIDHeader = "X-Customer-Id"

const customerIDKey = "customerId"

func customerIdentity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Request().Header.Get(CustomerIDHeader), 10, 64)
		if err != nil || id <= 0 {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: "missing or invalid " + CustomerIDHeader + " header",
			})
		}
		c.Set(customerIDKey, id)
		return next(c)
	}
}

func customerID(c echo.Context) int64 {
	id, _ := c.Get(customerIDKey).(int64)
	return id
}

func pathID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	return id, err == nil
}
