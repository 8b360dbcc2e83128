package handlers

import (
	"eduzone-backend/app/filestore/store"
	"eduzone-backend/app/server/types"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type App struct {
	l  *zap.Logger     // 日志
	st *store.JSONFile // 文件存储
}

func NewApp(l *zap.Logger, st *store.JSONFile) *App {
	return &App{
		l:  l,
		st: st,
	}
}

// er 统一的失败响应，具体原因只进日志不出接口
func (a *App) er(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, &types.Message{
		Success: false,
		Message: message,
	})
}
