package handlers

import (
	"eduzone-backend/app/server/types"

	"github.com/labstack/echo/v4"
)

// er 统一的失败响应，具体原因只进日志不出接口
func (a *App) er(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, &types.Message{
		Success: false,
		Message: message,
	})
}
