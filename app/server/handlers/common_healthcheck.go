package handlers

import (
	"eduzone-backend/app/server/types"
	"net/http"

	"github.com/labstack/echo/v4"
)

func (a *App) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, &types.HealthStatus{
		Status: "up",
	})
}
